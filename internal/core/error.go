package core

import "errors"

var (
	ErrTemplateRead   = errors.New("template read failed")
	ErrTemplateParse  = errors.New("template parse failed")
	ErrTemplateRender = errors.New("template render failed")
	ErrBodyRead       = errors.New("body read failed")
	ErrBuild          = errors.New("build failed")
	ErrWrite          = errors.New("write failed")
)

type ErrorData struct {
	Message string
	Path    string
}
