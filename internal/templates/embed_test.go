package templates

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/3-lines-studio/duoserve/internal/config"
)

func TestProcessFilename(t *testing.T) {
	data := TemplateData{Title: "site"}

	tests := []struct {
		name         string
		filename     string
		wantFilename string
		wantIsTmpl   bool
	}{
		{
			name:         "tmpl file gets processed",
			filename:     "duoserve.yaml.tmpl",
			wantFilename: "duoserve.yaml",
			wantIsTmpl:   true,
		},
		{
			name:         "regular file unchanged",
			filename:     "index.js",
			wantFilename: "index.js",
			wantIsTmpl:   false,
		},
		{
			name:         "nested tmpl file",
			filename:     "lib/greet.js.tmpl",
			wantFilename: "lib/greet.js",
			wantIsTmpl:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFilename, gotIsTmpl := ProcessFilename(tt.filename, data)
			if gotFilename != tt.wantFilename {
				t.Errorf("ProcessFilename(%q) filename = %q, want %q", tt.filename, gotFilename, tt.wantFilename)
			}
			if gotIsTmpl != tt.wantIsTmpl {
				t.Errorf("ProcessFilename(%q) isTmpl = %v, want %v", tt.filename, gotIsTmpl, tt.wantIsTmpl)
			}
		})
	}
}

func TestProcessContent(t *testing.T) {
	data := TemplateData{Title: "my site", Global: "mySite"}

	tests := []struct {
		name       string
		content    string
		isTemplate bool
		want       string
	}{
		{
			name:       "non-template content unchanged",
			content:    "title: {{.Title}}",
			isTemplate: false,
			want:       "title: {{.Title}}",
		},
		{
			name:       "title placeholder",
			content:    "title: {{.Title}}\n",
			isTemplate: true,
			want:       "title: my site\n",
		},
		{
			name:       "global placeholder repeated",
			content:    "global: {{.Global}} # {{.Global}}",
			isTemplate: true,
			want:       "global: mySite # mySite",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProcessContent([]byte(tt.content), tt.isTemplate, data)
			if string(got) != tt.want {
				t.Errorf("ProcessContent(%q) = %q, want %q", tt.content, string(got), tt.want)
			}
		})
	}
}

func TestDeriveData(t *testing.T) {
	tests := []struct {
		name       string
		projectDir string
		wantTitle  string
		wantGlobal string
	}{
		{name: "normal directory name", projectDir: "/home/user/myapp", wantTitle: "myapp", wantGlobal: "myapp"},
		{name: "dashed name", projectDir: "/src/my-lib", wantTitle: "my-lib", wantGlobal: "myLib"},
		{name: "leading digit", projectDir: "/src/2d-chart", wantTitle: "2d-chart", wantGlobal: "dChart"},
		{name: "current directory", projectDir: ".", wantTitle: "myapp", wantGlobal: "myapp"},
		{name: "root directory", projectDir: "/", wantTitle: "myapp", wantGlobal: "myapp"},
		{name: "empty directory", projectDir: "", wantTitle: "myapp", wantGlobal: "myapp"},
		{name: "no identifier characters", projectDir: "/src/---", wantTitle: "---", wantGlobal: "app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveData(tt.projectDir)
			if got.Title != tt.wantTitle || got.Global != tt.wantGlobal {
				t.Errorf("DeriveData(%q) = %+v, want title %q global %q", tt.projectDir, got, tt.wantTitle, tt.wantGlobal)
			}
		})
	}
}

func TestGetTemplate(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			templateFS, err := GetTemplate(name)
			if err != nil {
				t.Fatalf("GetTemplate(%q) error = %v", name, err)
			}

			for _, file := range []string{"duoserve.yaml.tmpl", "index.js", ".gitignore"} {
				if _, err := fs.ReadFile(templateFS, file); err != nil {
					t.Errorf("%s template is missing %s: %v", name, file, err)
				}
			}
		})
	}

	if _, err := GetTemplate("invalid"); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("GetTemplate(invalid) error = %v, want %v", err, ErrInvalidTemplate)
	}
}

func TestProjectFilesAreValidConfig(t *testing.T) {
	data := TemplateData{Title: "demo", Global: "demo"}

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			templateFS, err := GetTemplate(name)
			if err != nil {
				t.Fatal(err)
			}

			raw, err := fs.ReadFile(templateFS, "duoserve.yaml.tmpl")
			if err != nil {
				t.Fatal(err)
			}

			cfg, err := config.Parse(ProcessContent(raw, true, data))
			if err != nil {
				t.Fatalf("generated project file does not parse: %v", err)
			}
			if cfg.Title != "demo" || len(cfg.Entries) == 0 {
				t.Errorf("unexpected config %+v", cfg)
			}
		})
	}
}

func TestLibraryTemplateSetsGlobal(t *testing.T) {
	templateFS, err := GetTemplate("library")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := fs.ReadFile(templateFS, "duoserve.yaml.tmpl")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "global: {{.Global}}") {
		t.Errorf("library project file should set a global name:\n%s", raw)
	}
}
