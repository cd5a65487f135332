// Package config loads and validates the site configuration (site.yaml).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/solis-lang/sitegen/internal/highlight"
	"github.com/solis-lang/sitegen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigPath = errors.New("config path cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrMissingSiteName = errors.New("site.name is required")
	ErrInvalidBaseURL  = errors.New("site.baseUrl must be an absolute http(s) URL")
	ErrInvalidBasePath = errors.New("site.basePath must not contain spaces or '..'")
	ErrFieldTooLong    = errors.New("config field exceeds maximum length")
)

// Field length limits.
const (
	MaxNameLength     = 100
	MaxTaglineLength  = 200
	MaxBaseURLLength  = 2048
	MaxBasePathLength = 200
)

// DefaultConfigFile is looked up in the working directory when --config is
// not given.
const DefaultConfigFile = "site.yaml"

// Config holds all configuration for one site build.
type Config struct {
	Site      SiteConfig  `yaml:"site"`
	Paths     PathsConfig `yaml:"paths"`
	Build     BuildConfig `yaml:"build"`
	Highlight string      `yaml:"highlight"` // chroma style name
}

// SiteConfig identifies the site itself.
type SiteConfig struct {
	Name     string `yaml:"name"`     // language/project name, used in titles
	Tagline  string `yaml:"tagline"`  // short description for the landing page
	BaseURL  string `yaml:"baseUrl"`  // canonical origin, e.g. https://solis-lang.org
	BasePath string `yaml:"basePath"` // deployment subpath, empty = served from root
}

// PathsConfig locates the inputs and output of a build.
type PathsConfig struct {
	Content string `yaml:"content"` // markdown tree (default "content")
	Static  string `yaml:"static"`  // files copied verbatim (default "static")
	Output  string `yaml:"output"`  // build destination (default "public")
	Sidebar string `yaml:"sidebar"` // sidebar YAML (default "sidebar.yaml")
	Assets  string `yaml:"assets"`  // template/style overrides, empty = embedded only
}

// BuildConfig holds build behavior toggles.
type BuildConfig struct {
	Minify        bool `yaml:"minify"`
	IncludeDrafts bool `yaml:"includeDrafts"`
}

// Default returns the configuration used when no site.yaml exists.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Content: "content",
			Static:  "static",
			Output:  "public",
			Sidebar: "sidebar.yaml",
		},
		Highlight: highlight.DefaultStyle,
	}
}

// Load reads a config file, applies defaults for unset paths, and validates.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults restores defaults for paths the file explicitly blanked.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Paths.Content == "" {
		c.Paths.Content = d.Paths.Content
	}
	if c.Paths.Static == "" {
		c.Paths.Static = d.Paths.Static
	}
	if c.Paths.Output == "" {
		c.Paths.Output = d.Paths.Output
	}
	if c.Paths.Sidebar == "" {
		c.Paths.Sidebar = d.Paths.Sidebar
	}
	if c.Highlight == "" {
		c.Highlight = d.Highlight
	}
}

// Validate checks field constraints. The base path itself is normalized by
// the link rebaser at build time, not here; config only rejects values that
// can't be normalized into anything sensible.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Site.Name) == "" {
		return ErrMissingSiteName
	}
	if err := checkLen("site.name", c.Site.Name, MaxNameLength); err != nil {
		return err
	}
	if err := checkLen("site.tagline", c.Site.Tagline, MaxTaglineLength); err != nil {
		return err
	}

	if c.Site.BaseURL != "" {
		if err := checkLen("site.baseUrl", c.Site.BaseURL, MaxBaseURLLength); err != nil {
			return err
		}
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Site.BaseURL)
		}
	}

	if c.Site.BasePath != "" {
		if err := checkLen("site.basePath", c.Site.BasePath, MaxBasePathLength); err != nil {
			return err
		}
		if strings.ContainsAny(c.Site.BasePath, " \t") || strings.Contains(c.Site.BasePath, "..") {
			return fmt.Errorf("%w: %q", ErrInvalidBasePath, c.Site.BasePath)
		}
	}

	return highlight.ValidateStyle(c.Highlight)
}

func checkLen(field, value string, limit int) error {
	if len(value) > limit {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrFieldTooLong, field, len(value), limit)
	}
	return nil
}
