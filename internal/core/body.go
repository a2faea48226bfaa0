package core

import "context"

type BodyKind int

const (
	BodyNone BodyKind = iota
	BodyFile
	BodyLiteral
	BodyProducer
)

// BodyProducerFunc computes the page body on every render.
type BodyProducerFunc func(ctx context.Context) (string, error)

// BodySource is the optional HTML placed in the page body. Build one with
// NoBody, BodyFromFile, BodyFromString or BodyFromFunc.
type BodySource struct {
	Kind     BodyKind
	Path     string
	Literal  string
	Producer BodyProducerFunc
}

func NoBody() BodySource {
	return BodySource{Kind: BodyNone}
}

func BodyFromFile(path string) BodySource {
	if path == "" {
		return NoBody()
	}
	return BodySource{Kind: BodyFile, Path: path}
}

func BodyFromString(html string) BodySource {
	return BodySource{Kind: BodyLiteral, Literal: html}
}

func BodyFromFunc(fn BodyProducerFunc) BodySource {
	if fn == nil {
		return NoBody()
	}
	return BodySource{Kind: BodyProducer, Producer: fn}
}
