package main

import (
	"context"
	"fmt"

	"github.com/solis-lang/sitegen"
	"github.com/solis-lang/sitegen/internal/config"
)

// runBuild renders the site once and reports the outcome.
func runBuild(ctx context.Context, flags *buildFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	applyBuildFlags(flags, cfg)

	svc, err := sitegen.New(cfg, sitegen.WithWorkers(flags.workers))
	if err != nil {
		return err
	}

	result, err := svc.Build(ctx)
	if err != nil {
		return err
	}

	failed := result.Failed()
	for _, p := range failed {
		fmt.Fprintf(env.Stderr, "FAIL %s: %v\n", p.SourcePath, p.Err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Built %d pages (%d failed, %d static files) in %s -> %s\n",
			len(result.Pages), len(failed), result.StaticFiles,
			result.Duration.Round(timeRounding), cfg.Paths.Output)
	}
	if flags.common.verbose {
		for _, p := range result.Pages {
			if p.Err == nil {
				fmt.Fprintf(env.Stdout, "  %-40s %s\n", p.Route, p.Duration.Round(timeRounding))
			}
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d pages", sitegen.ErrBuildFailed, len(failed), len(result.Pages))
	}
	return nil
}

// applyBuildFlags merges CLI flags into the loaded config (CLI wins).
func applyBuildFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Paths.Output = flags.output
	}
	if flags.basePath != "" {
		cfg.Site.BasePath = flags.basePath
	}
	if flags.minify {
		cfg.Build.Minify = true
	}
	if flags.drafts {
		cfg.Build.IncludeDrafts = true
	}
}
