package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/3-lines-studio/duoserve/internal/core"
	"github.com/3-lines-studio/duoserve/internal/page"
)

type RenderInput struct {
	Settings core.Settings
	Entries  map[string][]string
	Base     string
}

type PageService struct {
	fs FileSystem
}

func NewPageService(fs FileSystem) *PageService {
	return &PageService{
		fs: fs,
	}
}

// Template reads and compiles the page template. The file is read on every
// call so edits show up on the next request.
func (s *PageService) Template(settings core.Settings) (*template.Template, error) {
	name := "page"
	source := page.DefaultTemplateSource

	if settings.Template != "" {
		path := core.ResolvePath(settings.Root, settings.Template)
		data, err := s.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", core.ErrTemplateRead, path, err)
		}
		name = path
		source = string(data)
	}

	tmpl, err := template.New(name).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrTemplateParse, name, err)
	}
	return tmpl, nil
}

func (s *PageService) Body(ctx context.Context, settings core.Settings) (string, error) {
	body := settings.Body

	switch body.Kind {
	case core.BodyNone:
		return "", nil

	case core.BodyLiteral:
		return body.Literal, nil

	case core.BodyProducer:
		html, err := body.Producer(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %w", core.ErrBodyRead, err)
		}
		return html, nil

	case core.BodyFile:
		path := core.ResolvePath(settings.Root, body.Path)
		data, err := s.fs.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", core.ErrBodyRead, path, err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("%w: unknown body kind %d", core.ErrBodyRead, body.Kind)
	}
}

func (s *PageService) Render(ctx context.Context, input RenderInput) (string, error) {
	tmpl, err := s.Template(input.Settings)
	if err != nil {
		return "", err
	}

	body, err := s.Body(ctx, input.Settings)
	if err != nil {
		return "", err
	}

	data := core.NewPageData(input.Base, input.Settings.Title, body, input.Entries)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %w", core.ErrTemplateRender, err)
	}
	return buf.String(), nil
}
