package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/3-lines-studio/duoserve/internal/core"
)

type RouterConfig struct {
	Renderer PageRenderer
	Builder  EntryBuilder
	// Root and Favicon are resolved per request.
	Root    func() string
	Favicon func() string
	// RequestLogging enables chi's request logger.
	RequestLogging bool
	Logger         *slog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	if cfg.RequestLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Compress(5))
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/favicon.ico", NewFaviconHandler(cfg.Favicon))

	static := NewStaticHandler(core.BuildPrefix, cfg.Root)
	r.Method(http.MethodGet, core.BuildPrefix+"*", NewBuildHandler(cfg.Builder, static, logger))

	r.Method(http.MethodGet, "/*", NewPageHandler(cfg.Renderer, core.BuildPrefix, logger))

	return r
}
