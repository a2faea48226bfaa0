package example

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/duoserve"
)

// Dir is the example project on disk.
func Dir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "site")
}

func New(root string) *duoserve.Server {
	return duoserve.New(root).
		Title("duoserve example").
		Body(duoserve.BodyFile("body.html")).
		Favicon("public/logo.svg").
		Copy(true).
		Entry("index.js", "index.css").
		Use(BuildInfo("example"))
}

// BuildInfo serves the virtual module "build:info" to entries.
func BuildInfo(name string) duoserve.Plugin {
	return duoserve.NamedPlugin("build-info", func(build duoserve.PluginBuild) {
		build.OnResolve(api.OnResolveOptions{Filter: `^build:info$`},
			func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				return api.OnResolveResult{Path: args.Path, Namespace: "build-info"}, nil
			})

		build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: "build-info"},
			func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				data, err := json.Marshal(map[string]string{"name": name})
				if err != nil {
					return api.OnLoadResult{}, err
				}
				contents := string(data)
				return api.OnLoadResult{Contents: &contents, Loader: api.LoaderJSON}, nil
			})
	})
}

// Router mounts the dev server next to a small JSON API.
func Router(s *duoserve.Server) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/hello", func(w http.ResponseWriter, req *http.Request) {
		name := req.URL.Query().Get("name")
		if name == "" {
			name = "World"
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Hello, " + name})
	})

	r.Mount("/", s.Handler())
	return r
}
