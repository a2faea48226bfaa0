package http

import (
	"net/http"
	"os"
	"strings"
)

// StaticHandler serves files below the directory returned by root, after
// stripping prefix from the request path. root is read on every request so
// a changed project root takes effect immediately.
type StaticHandler struct {
	root   func() string
	prefix string
}

func NewStaticHandler(prefix string, root func() string) http.Handler {
	return &StaticHandler{
		root:   root,
		prefix: strings.TrimSuffix(prefix, "/"),
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	fileServer := http.FileServer(http.Dir(h.root()))
	http.StripPrefix(h.prefix, fileServer).ServeHTTP(w, req)
}

// FaviconHandler serves the file returned by path, or 404 when it is empty.
type FaviconHandler struct {
	path func() string
}

func NewFaviconHandler(path func() string) http.Handler {
	return &FaviconHandler{path: path}
}

func (h *FaviconHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := h.path()
	if path == "" {
		http.NotFound(w, req)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, req)
		return
	}

	http.ServeFile(w, req, path)
}
