package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/3-lines-studio/duoserve/internal/core"
)

type EntryBuilder interface {
	HasEntry(entry string) bool
	Build(ctx context.Context, entry string, mode core.SourceMapMode) (core.BuildResult, error)
}

// BuildHandler compiles registered entries on request. Anything under the
// build prefix that is not a registered entry goes to next.
type BuildHandler struct {
	builder EntryBuilder
	next    http.Handler
	logger  *slog.Logger
}

func NewBuildHandler(builder EntryBuilder, next http.Handler, logger *slog.Logger) http.Handler {
	return &BuildHandler{
		builder: builder,
		next:    next,
		logger:  logger,
	}
}

func (h *BuildHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	entry, ok := core.EntryFromRequestPath(req.URL.Path)
	if !ok || !h.builder.HasEntry(entry) {
		h.next.ServeHTTP(w, req)
		return
	}

	result, err := h.builder.Build(req.Context(), entry, core.SourceMapInline)
	if err != nil {
		serveError(w, req, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", core.ContentType(entry))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Code)
}
