package templates

import (
	"embed"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode"
)

//go:embed all:starter
var starterFS embed.FS

//go:embed all:library
var libraryFS embed.FS

var validTemplates = []string{"starter", "library"}

var ErrInvalidTemplate = errors.New("invalid template name")

func GetTemplate(name string) (fs.FS, error) {
	switch name {
	case "starter":
		return fs.Sub(starterFS, "starter")
	case "library":
		return fs.Sub(libraryFS, "library")
	default:
		return nil, ErrInvalidTemplate
	}
}

func Names() []string {
	return append([]string(nil), validTemplates...)
}

type TemplateData struct {
	Title  string
	Global string
}

func ProcessFilename(filename string, data TemplateData) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	result := string(content)
	result = strings.ReplaceAll(result, "{{.Title}}", data.Title)
	result = strings.ReplaceAll(result, "{{.Global}}", data.Global)

	return []byte(result)
}

// DeriveData names the project after its directory.
func DeriveData(projectDir string) TemplateData {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		base = "myapp"
	}
	return TemplateData{
		Title:  base,
		Global: globalName(base),
	}
}

// globalName turns a directory name into a JavaScript identifier:
// "my-lib" becomes "myLib".
func globalName(name string) string {
	var b strings.Builder
	upper := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_' || r == '$' || (unicode.IsDigit(r) && b.Len() > 0):
			if upper && b.Len() > 0 {
				r = unicode.ToUpper(r)
			}
			b.WriteRune(r)
			upper = false
		default:
			upper = true
		}
	}
	if b.Len() == 0 {
		return "app"
	}
	return b.String()
}
