package core

import (
	"path/filepath"
	"strings"
)

// ExtensionTag returns the grouping tag for an entry path: the text after the
// last dot of the final path element, byte for byte. "app.JS" is tagged "JS"
// and "Makefile" gets the empty tag.
func ExtensionTag(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
