package page

import (
	_ "embed"
	"html/template"
)

// DefaultTemplateSource is the page template used when no template file is
// configured. It is parsed on every render, like a template file would be.
//
//go:embed page.html
var DefaultTemplateSource string

//go:embed error.html
var errorTemplateSource string

var ErrorTemplate = template.Must(template.New("error").Parse(errorTemplateSource))
