package esbuild

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"slices"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
)

const remoteNamespace = "remote-url"

// remoteCache keeps fetched remote modules for the life of the bundler.
type remoteCache struct {
	modules sync.Map
}

func (c *remoteCache) get(key string) (string, bool) {
	v, ok := c.modules.Load(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

func (c *remoteCache) put(key, contents string) {
	c.modules.Store(key, contents)
}

// remotePlugin lets entries import modules by http(s) URL. Relative imports
// inside a remote module resolve against its URL.
func (b *Bundler) remotePlugin(ctx context.Context, token string, useCache bool) api.Plugin {
	return api.Plugin{
		Name: "duoserve-remote",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `^https?://`},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					return api.OnResolveResult{Path: args.Path, Namespace: remoteNamespace}, nil
				})

			build.OnResolve(api.OnResolveOptions{Filter: `.*`, Namespace: remoteNamespace},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					base, err := url.Parse(args.Importer)
					if err != nil {
						return api.OnResolveResult{}, err
					}
					ref, err := url.Parse(args.Path)
					if err != nil {
						return api.OnResolveResult{}, err
					}
					return api.OnResolveResult{
						Path:      base.ResolveReference(ref).String(),
						Namespace: remoteNamespace,
					}, nil
				})

			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: remoteNamespace},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					contents, err := b.fetch(ctx, args.Path, token, useCache)
					if err != nil {
						return api.OnLoadResult{}, err
					}
					return api.OnLoadResult{
						Contents: &contents,
						Loader:   remoteLoader(args.Path),
					}, nil
				})
		},
	}
}

func (b *Bundler) fetch(ctx context.Context, rawURL, token string, useCache bool) (string, error) {
	if useCache {
		if contents, ok := b.remote.get(rawURL); ok {
			return contents, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	if token != "" && slices.Contains(b.authHosts, req.URL.Hostname()) {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch %s: %s", rawURL, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", rawURL, err)
	}

	contents := string(data)
	if useCache {
		b.remote.put(rawURL, contents)
	}
	return contents, nil
}

func remoteLoader(rawURL string) api.Loader {
	u, err := url.Parse(rawURL)
	if err != nil {
		return api.LoaderJS
	}

	switch path.Ext(u.Path) {
	case ".css":
		return api.LoaderCSS
	case ".json":
		return api.LoaderJSON
	case ".jsx":
		return api.LoaderJSX
	case ".ts", ".mts":
		return api.LoaderTS
	case ".tsx":
		return api.LoaderTSX
	default:
		return api.LoaderJS
	}
}
