package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/duoserve/internal/core"
)

// batchTags are the entry tags written by BuildTo, in build order.
var batchTags = []string{"js", "css"}

type BuildToInput struct {
	Settings    core.Settings
	Entries     map[string][]string
	Plugins     []core.Plugin
	Destination string
}

type BuildToOutput struct {
	Destination string
	Files       []string
}

type ExportService struct {
	pages  *PageService
	builds *BuildService
	fs     FileSystem
	logger *slog.Logger
}

func NewExportService(pages *PageService, builds *BuildService, fs FileSystem, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{
		pages:  pages,
		builds: builds,
		fs:     fs,
		logger: logger,
	}
}

// BuildTo writes the rendered page, every js and css entry and the
// configured favicon and static files under Destination. Tasks run
// concurrently up to Settings.Concurrency; the first failure is returned and
// whatever was already written stays on disk.
func (s *ExportService) BuildTo(ctx context.Context, input BuildToInput) (BuildToOutput, error) {
	settings := input.Settings
	dest := core.ResolvePath(settings.Root, input.Destination)
	out := &outputWriter{fs: s.fs, logger: s.logger}

	g := new(errgroup.Group)
	if settings.Concurrency > 0 {
		g.SetLimit(settings.Concurrency)
	}

	g.Go(func() error {
		html, err := s.pages.Render(ctx, RenderInput{
			Settings: settings,
			Entries:  input.Entries,
			Base:     "",
		})
		if err != nil {
			return err
		}
		return out.write(filepath.Join(dest, "index.html"), []byte(html))
	})

	for _, tag := range batchTags {
		for _, entry := range input.Entries[tag] {
			g.Go(func() error {
				return s.buildEntry(ctx, out, input, dest, entry)
			})
		}
	}

	if settings.Favicon != "" {
		g.Go(func() error {
			src := core.ResolvePath(settings.Root, settings.Favicon)
			return out.copy(src, filepath.Join(dest, filepath.Base(src)))
		})
	}

	if settings.Static != "" {
		g.Go(func() error {
			return out.copy(core.ResolvePath(settings.Root, settings.Static), dest)
		})
	}

	if err := g.Wait(); err != nil {
		return BuildToOutput{}, err
	}

	return BuildToOutput{
		Destination: dest,
		Files:       out.sorted(),
	}, nil
}

func (s *ExportService) buildEntry(ctx context.Context, out *outputWriter, input BuildToInput, dest, entry string) error {
	result, err := s.builds.Build(ctx, BuildInput{
		Settings:  input.Settings,
		Plugins:   input.Plugins,
		Entry:     entry,
		SourceMap: core.SourceMapExternal,
	})
	if err != nil {
		return err
	}

	target := core.OutputPath(dest, entry)
	if err := out.write(target, result.Code); err != nil {
		return err
	}

	if result.HasMap() {
		if err := out.write(target+".map", result.Map); err != nil {
			return err
		}
	}

	for _, asset := range result.Assets {
		if err := out.write(core.OutputPath(dest, asset.Path), asset.Contents); err != nil {
			return err
		}
	}
	return nil
}

// outputWriter writes batch output and records every path it produced.
type outputWriter struct {
	fs     FileSystem
	logger *slog.Logger

	mu    sync.Mutex
	files []string
}

func (w *outputWriter) write(path string, data []byte) error {
	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWrite, filepath.Dir(path), err)
	}
	if err := w.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWrite, path, err)
	}

	w.record(path)
	w.logger.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}

func (w *outputWriter) copy(src, dst string) error {
	if err := w.fs.CopyTree(src, dst); err != nil {
		return fmt.Errorf("%w: %s: %w", core.ErrWrite, src, err)
	}

	w.record(dst)
	w.logger.Debug("copied", "src", src, "dst", dst)
	return nil
}

func (w *outputWriter) record(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.files = append(w.files, path)
}

func (w *outputWriter) sorted() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := slices.Clone(w.files)
	slices.Sort(files)
	return slices.Compact(files)
}
