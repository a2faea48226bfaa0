// Package config loads the optional duoserve.yaml project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/duoserve"
)

// DefaultFile is the project file looked up when none is given.
const DefaultFile = "duoserve.yaml"

// DefaultOut is the batch output directory when the file names none.
const DefaultOut = "build"

var (
	ErrBodyConflict       = errors.New("body and body_html are mutually exclusive")
	ErrConcurrencyInvalid = errors.New("concurrency must not be negative")
)

// Config mirrors the server settings. Unset fields leave the server's
// value alone.
type Config struct {
	Root        string   `yaml:"root"`
	Title       string   `yaml:"title"`
	Body        string   `yaml:"body"`
	BodyHTML    string   `yaml:"body_html"`
	Template    string   `yaml:"template"`
	Entries     []string `yaml:"entries"`
	Global      string   `yaml:"global"`
	Cache       *bool    `yaml:"cache"`
	Copy        *bool    `yaml:"copy"`
	Logging     *string  `yaml:"logging"`
	Favicon     string   `yaml:"favicon"`
	Static      string   `yaml:"static"`
	Concurrency *int     `yaml:"concurrency"`
	Out         string   `yaml:"out"`
}

// LoadConfig reads and validates the project file at path. The project root
// is the file's directory unless root says otherwise; a relative root is
// resolved against that directory. When path is the default file and it
// does not exist, an empty config is returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && filepath.Base(path) == DefaultFile {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if !filepath.IsAbs(config.Root) {
		config.Root = filepath.Join(filepath.Dir(path), config.Root)
	}
	return config, nil
}

// Parse decodes and validates a project file. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var config Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Body != "" && c.BodyHTML != "" {
		return ErrBodyConflict
	}
	if c.Concurrency != nil && *c.Concurrency < 0 {
		return ErrConcurrencyInvalid
	}
	return nil
}

// OutDir is the batch destination, DefaultOut when unset.
func (c *Config) OutDir() string {
	if c.Out == "" {
		return DefaultOut
	}
	return c.Out
}

// Apply copies every set field onto s.
func (c *Config) Apply(s *duoserve.Server) *duoserve.Server {
	if c.Root != "" {
		s.Root(c.Root)
	}
	if c.Title != "" {
		s.Title(c.Title)
	}

	switch {
	case c.Body != "":
		s.Body(duoserve.BodyFile(c.Body))
	case c.BodyHTML != "":
		s.Body(duoserve.BodyString(c.BodyHTML))
	}

	if c.Template != "" {
		s.HTML(c.Template)
	}
	if c.Global != "" {
		s.Global(c.Global)
	}
	if c.Cache != nil {
		s.Cache(*c.Cache)
	}
	if c.Copy != nil {
		s.Copy(*c.Copy)
	}
	if c.Logging != nil {
		s.Logging(*c.Logging)
	}
	if c.Favicon != "" {
		s.Favicon(c.Favicon)
	}
	if c.Static != "" {
		s.Static(c.Static)
	}
	if c.Concurrency != nil {
		s.Concurrency(*c.Concurrency)
	}
	if len(c.Entries) > 0 {
		s.Entry(c.Entries...)
	}
	return s
}
