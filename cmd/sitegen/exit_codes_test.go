package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/solis-lang/sitegen"
	"github.com/solis-lang/sitegen/internal/config"
	"github.com/solis-lang/sitegen/internal/content"
	"github.com/solis-lang/sitegen/internal/highlight"
	"github.com/solis-lang/sitegen/internal/sidebar"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "unknown command", err: ErrUnknownCommand, want: ExitUsage},
		{name: "wrapped unknown command", err: fmt.Errorf("%w: %q", ErrUnknownCommand, "bulid"), want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "missing site name", err: config.ErrMissingSiteName, want: ExitUsage},
		{name: "invalid base path", err: config.ErrInvalidBasePath, want: ExitUsage},
		{name: "unknown highlight style", err: highlight.ErrUnknownStyle, want: ExitUsage},
		{name: "unresolvable sidebar link", err: sidebar.ErrUnresolvableLink, want: ExitUsage},
		{name: "content root missing", err: content.ErrContentRootNotFound, want: ExitIO},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: fmt.Errorf("opening: %w", os.ErrPermission), want: ExitIO},
		{name: "failed pages", err: sitegen.ErrBuildFailed, want: ExitGeneral},
		{name: "broken links", err: ErrBrokenLinks, want: ExitGeneral},
		{name: "arbitrary error", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
