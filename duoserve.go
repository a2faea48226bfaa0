package duoserve

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/3-lines-studio/duoserve/internal/adapters/env"
	"github.com/3-lines-studio/duoserve/internal/adapters/esbuild"
	"github.com/3-lines-studio/duoserve/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/duoserve/internal/adapters/http"
	"github.com/3-lines-studio/duoserve/internal/core"
	"github.com/3-lines-studio/duoserve/internal/usecase"
)

type Settings = core.Settings

type BodySource = core.BodySource

type BodyProducerFunc = core.BodyProducerFunc

type Plugin = core.Plugin

type PluginBuild = api.PluginBuild

type PluginFunc = core.PluginFunc

type BuildJob = core.BuildJob

type BuildResult = core.BuildResult

// Bundler compiles a single entry. The default is the in-process esbuild
// bundler.
type Bundler = usecase.Bundler

type Asset = core.Asset

type SourceMapMode = core.SourceMapMode

const (
	SourceMapNone     = core.SourceMapNone
	SourceMapInline   = core.SourceMapInline
	SourceMapExternal = core.SourceMapExternal
)

var (
	ErrTemplateRead   = core.ErrTemplateRead
	ErrTemplateParse  = core.ErrTemplateParse
	ErrTemplateRender = core.ErrTemplateRender
	ErrBodyRead       = core.ErrBodyRead
	ErrBuild          = core.ErrBuild
	ErrWrite          = core.ErrWrite
)

func NoBody() BodySource {
	return core.NoBody()
}

// BodyFile reads the page body from path, relative to the project root
// unless absolute. An empty path means no body.
func BodyFile(path string) BodySource {
	return core.BodyFromFile(path)
}

func BodyString(html string) BodySource {
	return core.BodyFromString(html)
}

func BodyFunc(fn BodyProducerFunc) BodySource {
	return core.BodyFromFunc(fn)
}

func NamedPlugin(name string, setup func(build PluginBuild)) Plugin {
	return core.NamedPlugin(name, setup)
}

// Server is a development server for a single page built from registered
// js and css entries. Configure it with the chainable setters, then mount
// Handler or call BuildTo to write a static copy.
type Server struct {
	mu       sync.RWMutex
	settings core.Settings
	plugins  []core.Plugin
	entries  *core.EntryRegistry

	fs      usecase.FileSystem
	bundler usecase.Bundler
	logger  *slog.Logger

	pages  *usecase.PageService
	builds *usecase.BuildService
	export *usecase.ExportService
}

type Option func(*Server)

func WithBundler(bundler Bundler) Option {
	return func(s *Server) {
		s.bundler = bundler
	}
}

func WithFileSystem(fs usecase.FileSystem) Option {
	return func(s *Server) {
		s.fs = fs
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server for the project at root; an empty root means the
// working directory. GH_TOKEN, when set, seeds the token.
func New(root string, opts ...Option) *Server {
	settings := core.DefaultSettings()
	if root != "" {
		settings.Root = root
	}
	if token := env.Token(); token != "" {
		settings.Token = token
	}

	s := &Server{
		settings: settings,
		entries:  core.NewEntryRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.fs == nil {
		s.fs = fs.NewOSFileSystem()
	}
	if s.bundler == nil {
		s.bundler = esbuild.NewBundler()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.pages = usecase.NewPageService(s.fs)
	s.builds = usecase.NewBuildService(s.bundler)
	s.export = usecase.NewExportService(s.pages, s.builds, s.fs, s.logger)

	return s
}

func (s *Server) update(fn func(settings *core.Settings)) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
	return s
}

func (s *Server) Root(root string) *Server {
	return s.update(func(st *core.Settings) { st.Root = root })
}

func (s *Server) Title(title string) *Server {
	return s.update(func(st *core.Settings) { st.Title = title })
}

func (s *Server) Body(body BodySource) *Server {
	return s.update(func(st *core.Settings) { st.Body = body })
}

// HTML sets the page template file. An empty path restores the built-in
// template.
func (s *Server) HTML(path string) *Server {
	return s.update(func(st *core.Settings) { st.Template = path })
}

func (s *Server) Token(token string) *Server {
	return s.update(func(st *core.Settings) { st.Token = token })
}

func (s *Server) Cache(enabled bool) *Server {
	return s.update(func(st *core.Settings) { st.Cache = enabled })
}

func (s *Server) Copy(enabled bool) *Server {
	return s.update(func(st *core.Settings) { st.Copy = &enabled })
}

func (s *Server) Global(name string) *Server {
	return s.update(func(st *core.Settings) { st.Global = name })
}

// Logging sets the request log format. Empty disables request logging.
func (s *Server) Logging(format string) *Server {
	return s.update(func(st *core.Settings) { st.Logging = format })
}

func (s *Server) Favicon(path string) *Server {
	return s.update(func(st *core.Settings) { st.Favicon = path })
}

// Static sets a directory whose contents BuildTo copies into the output.
func (s *Server) Static(dir string) *Server {
	return s.update(func(st *core.Settings) { st.Static = dir })
}

// Concurrency limits parallel BuildTo tasks. Zero or less removes the limit.
func (s *Server) Concurrency(n int) *Server {
	return s.update(func(st *core.Settings) { st.Concurrency = n })
}

// Entry registers entry files. Paths are kept verbatim, duplicates
// included, and grouped by extension.
func (s *Server) Entry(paths ...string) *Server {
	s.entries.Add(paths...)
	return s
}

// Use appends bundler plugins. They run in the order added.
func (s *Server) Use(plugins ...Plugin) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plugins = append(s.plugins, plugins...)
	return s
}

// Settings returns a copy of the current configuration.
func (s *Server) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := s.settings
	if settings.Copy != nil {
		v := *settings.Copy
		settings.Copy = &v
	}
	return settings
}

func (s *Server) Plugins() []Plugin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Plugin(nil), s.plugins...)
}

// Entries returns the registered entries grouped by extension tag.
func (s *Server) Entries() map[string][]string {
	return s.entries.Snapshot()
}

func (s *Server) HasEntry(path string) bool {
	return s.entries.Has(path)
}

// Render renders the page with asset URLs prefixed by base.
func (s *Server) Render(ctx context.Context, base string) (string, error) {
	return s.pages.Render(ctx, usecase.RenderInput{
		Settings: s.Settings(),
		Entries:  s.Entries(),
		Base:     base,
	})
}

// Build compiles one entry in development mode.
func (s *Server) Build(ctx context.Context, entry string, mode SourceMapMode) (BuildResult, error) {
	return s.builds.Build(ctx, usecase.BuildInput{
		Settings:  s.Settings(),
		Plugins:   s.Plugins(),
		Entry:     entry,
		SourceMap: mode,
	})
}

// BuildTo writes a static copy of the page and its entries to dest,
// relative to the project root unless absolute. It returns the written
// paths, sorted.
func (s *Server) BuildTo(ctx context.Context, dest string) ([]string, error) {
	out, err := s.export.BuildTo(ctx, usecase.BuildToInput{
		Settings:    s.Settings(),
		Entries:     s.Entries(),
		Plugins:     s.Plugins(),
		Destination: dest,
	})
	if err != nil {
		return nil, err
	}
	return out.Files, nil
}

// Handler returns the HTTP handler. Request logging is decided when it is
// created; every other setting is read per request.
func (s *Server) Handler() http.Handler {
	return httpadapter.NewRouter(httpadapter.RouterConfig{
		Renderer: s,
		Builder:  s,
		Root: func() string {
			return s.Settings().Root
		},
		Favicon: func() string {
			settings := s.Settings()
			if settings.Favicon == "" {
				return ""
			}
			return core.ResolvePath(settings.Root, settings.Favicon)
		},
		RequestLogging: s.Settings().Logging != "",
		Logger:         s.logger,
	})
}

// ListenAndServe serves Handler on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "root", s.Settings().Root)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		return nil
	}
}
