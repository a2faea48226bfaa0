package core

import (
	"os"
	"runtime"
)

const DefaultTitle = "duo-serve"

// Settings holds everything a server instance is configured with. It is a
// plain value: copying it yields an independent configuration.
type Settings struct {
	Root     string
	Title    string
	Body     BodySource
	Template string
	Token    string
	Cache    bool
	// Copy is nil until set, in which case the bundler default applies.
	Copy        *bool
	Global      string
	Logging     string
	Favicon     string
	Static      string
	Concurrency int
}

func DefaultSettings() Settings {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}

	return Settings{
		Root:        root,
		Title:       DefaultTitle,
		Body:        NoBody(),
		Cache:       true,
		Logging:     "dev",
		Concurrency: runtime.NumCPU(),
	}
}

// CopyEnabled reports the effective copy flag.
func (s Settings) CopyEnabled() bool {
	return s.Copy != nil && *s.Copy
}
