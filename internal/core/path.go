package core

import (
	"net/url"
	"path/filepath"
	"strings"
)

// BuildPrefix is the URL namespace built entries and their sibling static
// files are served under.
const BuildPrefix = "/build/"

// EntryFromRequestPath extracts the entry path from a request under
// BuildPrefix. The second result is false when the path is outside it.
func EntryFromRequestPath(requestPath string) (string, bool) {
	rest, ok := strings.CutPrefix(requestPath, BuildPrefix)
	if !ok {
		return "", false
	}
	if unescaped, err := url.PathUnescape(rest); err == nil {
		rest = unescaped
	}
	return rest, rest != ""
}

// ResolvePath resolves path against root unless it is already absolute.
func ResolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// OutputPath is where an entry (or an entry-relative asset) lands inside the
// batch destination directory.
func OutputPath(destination, rel string) string {
	return filepath.Join(destination, filepath.FromSlash(rel))
}
