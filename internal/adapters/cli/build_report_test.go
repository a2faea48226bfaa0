package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestBuildReportSuccess(t *testing.T) {
	var out, errOut bytes.Buffer
	output := NewOutput(&out, &errOut)

	dest := filepath.Join("site", "out")
	report := NewBuildReport(output, dest)
	report.SetEntryCount(2)
	report.SetFiles([]string{
		filepath.Join(dest, "index.html"),
		filepath.Join(dest, "lib", "app.js"),
	})
	report.Render()

	got := out.String()
	for _, want := range []string{
		"✓ 2 entries registered",
		"✓ 2 files written",
		"    index.html",
		"    lib/app.js",
		"Build complete in",
		"Output: " + dest,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\033[") {
		t.Error("colors should be disabled for non-terminal writers")
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", errOut.String())
	}
	if report.HasFailures() {
		t.Error("HasFailures() = true, want false")
	}
}

func TestBuildReportFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	report := NewBuildReport(NewOutput(&out, &errOut), "out")
	report.Fail(errors.New("build failed: index.js: boom"))
	report.Render()

	if !report.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
	if !strings.Contains(errOut.String(), "build failed: index.js: boom") {
		t.Errorf("expected error on stderr, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "files written") {
		t.Errorf("failed build should not list files:\n%s", out.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 250 * time.Millisecond, want: "250ms"},
		{in: 1500 * time.Millisecond, want: "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.in); got != tt.want {
				t.Errorf("formatDuration() = %q, want %q", got, tt.want)
			}
		})
	}
}
