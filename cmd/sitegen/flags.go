package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/solis-lang/sitegen/internal/config"
	"github.com/solis-lang/sitegen/internal/fileutil"
)

// ErrUnknownCommand indicates the CLI was invoked with an unknown subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common   commonFlags
	output   string
	basePath string
	minify   bool
	drafts   bool
	workers  int
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common commonFlags
	addr   string
	watch  bool
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	common commonFlags
}

func addCommonFlags(fs *flag.FlagSet, c *commonFlags) {
	fs.StringVarP(&c.config, "config", "c", "", "site config file (default site.yaml if present)")
	fs.BoolVarP(&c.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "verbose output")
}

func parseBuildFlags(args []string) (*buildFlags, error) {
	f := &buildFlags{}
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory (overrides config)")
	fs.StringVar(&f.basePath, "base-path", "", "deployment base path (overrides config)")
	fs.BoolVar(&f.minify, "minify", false, "minify HTML and CSS output")
	fs.BoolVar(&f.drafts, "drafts", false, "include draft pages")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page workers (0 = auto)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

func parseServeFlags(args []string) (*serveFlags, error) {
	f := &serveFlags{}
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.addr, "addr", "a", "127.0.0.1:8080", "listen address")
	fs.BoolVar(&f.watch, "watch", true, "rebuild on content changes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

func parseCheckFlags(args []string) (*checkFlags, error) {
	f := &checkFlags{}
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// loadConfig resolves the effective site config: an explicit --config path
// must exist; otherwise site.yaml is used when present, else defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if fileutil.FileExists(config.DefaultConfigFile) {
		return config.Load(config.DefaultConfigFile)
	}
	cfg := config.Default()
	cfg.Site.Name = "Site"
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("default config invalid: %w", err)
	}
	return cfg, nil
}
