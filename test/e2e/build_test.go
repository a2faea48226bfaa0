package e2e

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildTo(t *testing.T) {
	server := newTestServer(t)
	dest := t.TempDir()

	files, err := server.app.BuildTo(context.Background(), dest)
	if err != nil {
		t.Fatalf("BuildTo() error = %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected written files")
	}

	for _, name := range []string{
		"index.html",
		"index.js",
		"index.js.map",
		"index.css",
		"index.css.map",
		"public/logo.svg",
		"logo.svg",
	} {
		if _, err := os.Stat(filepath.Join(dest, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	html, err := os.ReadFile(filepath.Join(dest, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	matchSnapshot(t, string(html))

	js, err := os.ReadFile(filepath.Join(dest, "index.js"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(js), "sourceMappingURL=index.js.map") {
		t.Error("expected a reference to the external source map")
	}
}

func TestBuildToTwiceIsStable(t *testing.T) {
	server := newTestServer(t)
	dest := t.TempDir()

	read := func() map[string]string {
		t.Helper()
		if _, err := server.app.BuildTo(context.Background(), dest); err != nil {
			t.Fatalf("BuildTo() error = %v", err)
		}
		out := map[string]string{}
		for _, name := range []string{"index.html", "index.js", "index.css"} {
			data, err := os.ReadFile(filepath.Join(dest, name))
			if err != nil {
				t.Fatal(err)
			}
			out[name] = string(data)
		}
		return out
	}

	first, second := read(), read()
	for name := range first {
		if first[name] != second[name] {
			t.Errorf("%s changed between builds", name)
		}
	}
}
