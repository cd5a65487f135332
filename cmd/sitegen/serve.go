package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/solis-lang/sitegen"
	"github.com/solis-lang/sitegen/internal/server"
)

// runServe builds the site, then serves it with rebuild-on-change.
func runServe(ctx context.Context, flags *serveFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	svc, err := sitegen.New(cfg)
	if err != nil {
		return err
	}

	rebuild := func(ctx context.Context) error {
		result, err := svc.Build(ctx)
		if err != nil {
			return err
		}
		for _, p := range result.Failed() {
			fmt.Fprintf(env.Stderr, "FAIL %s: %v\n", p.SourcePath, p.Err)
		}
		return nil
	}

	// Initial build; page failures are reported but don't stop the preview.
	if err := rebuild(ctx); err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv, err := server.New(server.Options{
		Addr:      flags.addr,
		OutputDir: cfg.Paths.Output,
		BasePath:  svc.Rebaser().BasePath(),
		Logger:    log,
	})
	if err != nil {
		return err
	}

	if flags.watch {
		// The sidebar file is deliberately not watched: its parent directory
		// usually contains the output tree, and watching it would make every
		// build retrigger itself.
		watcher, err := server.NewWatcher(
			[]string{cfg.Paths.Content, cfg.Paths.Static, cfg.Paths.Assets},
			rebuild,
			log,
		)
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("watcher stopped", "error", err)
			}
		}()
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Serving %s at %s\n", cfg.Paths.Output, srv.URL())
	}

	err = srv.ListenAndServe(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
