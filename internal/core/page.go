package core

import "html/template"

// PageData is the context handed to the page template. CSS and JS are the
// registered entry lists as-is; templates prefix them with Base.
type PageData struct {
	Base    string
	Title   string
	Body    template.HTML
	CSS     []string
	JS      []string
	Entries map[string][]string
}

func NewPageData(base, title, body string, entries map[string][]string) PageData {
	if entries == nil {
		entries = map[string][]string{}
	}
	return PageData{
		Base:    base,
		Title:   title,
		Body:    template.HTML(body),
		CSS:     entries["css"],
		JS:      entries["js"],
		Entries: entries,
	}
}
