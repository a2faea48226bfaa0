package http

import (
	"context"
	"log/slog"
	"net/http"
)

type PageRenderer interface {
	Render(ctx context.Context, base string) (string, error)
}

type PageHandler struct {
	renderer PageRenderer
	base     string
	logger   *slog.Logger
}

func NewPageHandler(renderer PageRenderer, base string, logger *slog.Logger) http.Handler {
	return &PageHandler{
		renderer: renderer,
		base:     base,
		logger:   logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	html, err := h.renderer.Render(req.Context(), h.base)
	if err != nil {
		serveError(w, req, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
