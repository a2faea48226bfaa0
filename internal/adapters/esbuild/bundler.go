package esbuild

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/3-lines-studio/duoserve/internal/core"
)

// outputDirName is the virtual output directory builds are laid out in. With
// Write disabled nothing is ever written there.
const outputDirName = ".duoserve"

var assetExts = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".webp",
	".woff", ".woff2", ".ttf", ".eot",
}

var defaultAuthHosts = []string{
	"github.com",
	"api.github.com",
	"raw.githubusercontent.com",
	"codeload.github.com",
}

type Bundler struct {
	client    *http.Client
	authHosts []string
	remote    *remoteCache
}

type Option func(*Bundler)

func WithHTTPClient(client *http.Client) Option {
	return func(b *Bundler) {
		b.client = client
	}
}

// WithAuthHosts replaces the hosts that receive the token when remote
// modules are fetched.
func WithAuthHosts(hosts ...string) Option {
	return func(b *Bundler) {
		b.authHosts = hosts
	}
}

func NewBundler(opts ...Option) *Bundler {
	b := &Bundler{
		client:    http.DefaultClient,
		authHosts: defaultAuthHosts,
		remote:    &remoteCache{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bundler) Build(ctx context.Context, job core.BuildJob) (core.BuildResult, error) {
	if err := ctx.Err(); err != nil {
		return core.BuildResult{}, err
	}

	root, err := filepath.Abs(job.Root)
	if err != nil {
		return core.BuildResult{}, fmt.Errorf("failed to resolve root %s: %w", job.Root, err)
	}
	outdir := filepath.Join(root, outputDirName)

	opts := api.BuildOptions{
		EntryPoints:       []string{filepath.Join(root, filepath.FromSlash(job.Entry))},
		AbsWorkingDir:     root,
		Outdir:            outdir,
		Outbase:           root,
		AssetNames:        "[dir]/[name]",
		Bundle:            true,
		Write:             false,
		LogLevel:          api.LogLevelSilent,
		Sourcemap:         sourceMap(job.SourceMap),
		SourcesContent:    api.SourcesContentInclude,
		MinifyWhitespace:  !job.Development,
		MinifyIdentifiers: !job.Development,
		MinifySyntax:      !job.Development,
		Define: map[string]string{
			"process.env.NODE_ENV": nodeEnv(job.Development),
		},
		Plugins: b.plugins(ctx, job),
	}

	if job.Global != "" {
		opts.Format = api.FormatIIFE
		opts.GlobalName = job.Global
	}

	if job.Copy != nil && *job.Copy {
		opts.Loader = make(map[string]api.Loader, len(assetExts))
		for _, ext := range assetExts {
			opts.Loader[ext] = api.LoaderCopy
		}
	} else {
		opts.External = make([]string, 0, len(assetExts))
		for _, ext := range assetExts {
			opts.External = append(opts.External, "*"+ext)
		}
	}

	result := api.Build(opts)
	if len(result.Errors) > 0 {
		return core.BuildResult{}, fmt.Errorf("%s", formatMessages(result.Errors))
	}

	return collectOutput(outdir, job.Entry, result.OutputFiles)
}

// plugins returns the job's plugins in registration order followed by the
// remote module loader.
func (b *Bundler) plugins(ctx context.Context, job core.BuildJob) []api.Plugin {
	plugins := make([]api.Plugin, 0, len(job.Plugins)+1)
	for i, p := range job.Plugins {
		plugins = append(plugins, api.Plugin{
			Name:  core.PluginName(p, i),
			Setup: p.Apply,
		})
	}
	return append(plugins, b.remotePlugin(ctx, job.Token, job.Cache))
}

func collectOutput(outdir, entry string, files []api.OutputFile) (core.BuildResult, error) {
	want := outputName(entry)

	var result core.BuildResult
	found := false
	for _, file := range files {
		rel, err := filepath.Rel(outdir, file.Path)
		if err != nil {
			return core.BuildResult{}, fmt.Errorf("unexpected output path %s: %w", file.Path, err)
		}
		rel = filepath.ToSlash(rel)

		switch rel {
		case want:
			result.Code = file.Contents
			found = true
		case want + ".map":
			result.Map = file.Contents
		default:
			result.Assets = append(result.Assets, core.Asset{Path: rel, Contents: file.Contents})
		}
	}

	if !found {
		return core.BuildResult{}, fmt.Errorf("no output produced for %s", entry)
	}
	return result, nil
}

// outputName is the output path of an entry relative to the output dir:
// stylesheets keep their extension, everything else compiles to .js.
func outputName(entry string) string {
	name := strings.TrimPrefix(path.Clean(filepath.ToSlash(entry)), "./")
	ext := path.Ext(name)
	if ext == ".css" {
		return name
	}
	return strings.TrimSuffix(name, ext) + ".js"
}

func sourceMap(mode core.SourceMapMode) api.SourceMap {
	switch mode {
	case core.SourceMapInline:
		return api.SourceMapInline
	case core.SourceMapExternal:
		return api.SourceMapExternal
	default:
		return api.SourceMapNone
	}
}

func nodeEnv(development bool) string {
	if development {
		return `"development"`
	}
	return `"production"`
}

func formatMessages(msgs []api.Message) string {
	formatted := api.FormatMessages(msgs, api.FormatMessagesOptions{
		Kind: api.ErrorMessage,
	})
	return strings.TrimSpace(strings.Join(formatted, ""))
}
