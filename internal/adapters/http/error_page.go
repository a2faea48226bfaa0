package http

import (
	"bytes"
	"html"
	"log/slog"
	"net/http"

	"github.com/3-lines-studio/duoserve/internal/core"
	"github.com/3-lines-studio/duoserve/internal/page"
)

// serveError logs err and answers with the error page. This is a dev tool,
// so the message is always shown.
func serveError(w http.ResponseWriter, req *http.Request, logger *slog.Logger, err error) {
	logger.Error("request failed", "path", req.URL.Path, "error", err)

	data := core.ErrorData{
		Message: err.Error(),
		Path:    req.URL.Path,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := page.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
