package usecase

import (
	"context"

	"github.com/3-lines-studio/duoserve/internal/adapters/fs"
	"github.com/3-lines-studio/duoserve/internal/core"
)

type Bundler interface {
	Build(ctx context.Context, job core.BuildJob) (core.BuildResult, error)
}

type FileSystem = fs.FileSystem
