package main

import (
	"errors"
	"fmt"

	"github.com/solis-lang/sitegen/internal/content"
	"github.com/solis-lang/sitegen/internal/linkcheck"
)

// ErrBrokenLinks indicates the check command found unresolvable links.
var ErrBrokenLinks = errors.New("broken internal links found")

// runCheck verifies internal links across all content.
func runCheck(flags *checkFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	pages, err := content.Discover(cfg.Paths.Content)
	if err != nil {
		return err
	}

	broken, err := linkcheck.Check(pages, cfg.Paths.Static)
	if err != nil {
		return err
	}

	for _, b := range broken {
		fmt.Fprintln(env.Stderr, b.String())
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Checked %d pages: %d broken links\n", len(pages), len(broken))
	}

	if len(broken) > 0 {
		return fmt.Errorf("%w: %d", ErrBrokenLinks, len(broken))
	}
	return nil
}
