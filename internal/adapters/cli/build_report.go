package cli

import (
	"fmt"
	"path/filepath"
	"time"
)

// BuildReport summarizes one batch build for the terminal.
type BuildReport struct {
	output    *Output
	startTime time.Time
	outputDir string
	files     []string
	entries   int
	err       error
}

func NewBuildReport(output *Output, outputDir string) *BuildReport {
	return &BuildReport{
		output:    output,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *BuildReport) SetEntryCount(count int) {
	r.entries = count
}

func (r *BuildReport) SetFiles(files []string) {
	r.files = files
}

func (r *BuildReport) Fail(err error) {
	r.err = err
}

func (r *BuildReport) HasFailures() bool {
	return r.err != nil
}

func (r *BuildReport) Render() {
	duration := time.Since(r.startTime)

	r.output.PrintSuccess("%d entries registered", r.entries)

	if r.err != nil {
		r.output.PrintError("Build failed after %s", formatDuration(duration))
		r.output.PrintError("%s", r.err.Error())
		return
	}

	r.output.PrintSuccess("%d files written", len(r.files))
	for _, file := range r.files {
		r.output.PrintFile(r.relative(file))
	}
	r.output.PrintSuccess("Build complete in %s", formatDuration(duration))

	if r.outputDir != "" {
		r.output.PrintDone("\n  " + r.output.Gray("Output: "+r.outputDir))
	}
}

func (r *BuildReport) relative(path string) string {
	if r.outputDir == "" {
		return path
	}
	rel, err := filepath.Rel(r.outputDir, path)
	if err != nil || rel == "." {
		return path
	}
	return filepath.ToSlash(rel)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
