package main

import (
	"errors"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/solis-lang/sitegen/internal/assets"
	"github.com/solis-lang/sitegen/internal/config"
	"github.com/solis-lang/sitegen/internal/content"
	"github.com/solis-lang/sitegen/internal/highlight"
	"github.com/solis-lang/sitegen/internal/sidebar"
)

// timeRounding keeps durations in progress output readable.
const timeRounding = time.Millisecond

// Exit codes for the sitegen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error, failed pages, broken links
	ExitUsage   = 2 // Invalid flags, config, or content schema
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, content.ErrContentRootNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrMissingSiteName) ||
		errors.Is(err, config.ErrInvalidBaseURL) ||
		errors.Is(err, config.ErrInvalidBasePath) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, highlight.ErrUnknownStyle) ||
		errors.Is(err, sidebar.ErrSidebarParse) ||
		errors.Is(err, sidebar.ErrUnresolvableLink) ||
		errors.Is(err, assets.ErrInvalidBaseDir) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
