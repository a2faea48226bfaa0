package core

import (
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
)

type SourceMapMode int

const (
	SourceMapNone SourceMapMode = iota
	SourceMapInline
	SourceMapExternal
)

// Plugin hooks into every bundler run. Plugins are applied in the order they
// were registered.
type Plugin interface {
	Apply(build api.PluginBuild)
}

type PluginFunc func(build api.PluginBuild)

func (f PluginFunc) Apply(build api.PluginBuild) {
	f(build)
}

type namedPlugin struct {
	name  string
	setup func(build api.PluginBuild)
}

func (p namedPlugin) Apply(build api.PluginBuild) {
	p.setup(build)
}

func (p namedPlugin) Name() string {
	return p.name
}

// NamedPlugin attaches a name to setup, shown in bundler diagnostics.
func NamedPlugin(name string, setup func(build api.PluginBuild)) Plugin {
	return namedPlugin{name: name, setup: setup}
}

func PluginName(p Plugin, index int) string {
	if named, ok := p.(interface{ Name() string }); ok && named.Name() != "" {
		return named.Name()
	}
	return fmt.Sprintf("plugin-%d", index)
}

// BuildJob is one bundler invocation for a single entry file.
type BuildJob struct {
	Root        string
	Entry       string
	Development bool
	Cache       bool
	Token       string
	Global      string
	Copy        *bool
	SourceMap   SourceMapMode
	Plugins     []Plugin
}

// Asset is a file the bundler emitted next to the entry output, with Path
// relative to the output root.
type Asset struct {
	Path     string
	Contents []byte
}

type BuildResult struct {
	Code   []byte
	Map    []byte
	Assets []Asset
}

func (r BuildResult) HasMap() bool {
	return len(r.Map) > 0
}
