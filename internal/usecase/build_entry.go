package usecase

import (
	"context"
	"fmt"

	"github.com/3-lines-studio/duoserve/internal/core"
)

type BuildInput struct {
	Settings  core.Settings
	Plugins   []core.Plugin
	Entry     string
	SourceMap core.SourceMapMode
}

type BuildService struct {
	bundler Bundler
}

func NewBuildService(bundler Bundler) *BuildService {
	return &BuildService{
		bundler: bundler,
	}
}

// Build compiles one entry in development mode. Nothing is cached; every
// call runs the bundler again.
func (s *BuildService) Build(ctx context.Context, input BuildInput) (core.BuildResult, error) {
	job := core.BuildJob{
		Root:        input.Settings.Root,
		Entry:       input.Entry,
		Development: true,
		Cache:       input.Settings.Cache,
		Token:       input.Settings.Token,
		Global:      input.Settings.Global,
		Copy:        input.Settings.Copy,
		SourceMap:   input.SourceMap,
		Plugins:     input.Plugins,
	}

	result, err := s.bundler.Build(ctx, job)
	if err != nil {
		return core.BuildResult{}, fmt.Errorf("%w: %s: %w", core.ErrBuild, input.Entry, err)
	}
	return result, nil
}
