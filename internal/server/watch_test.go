package server

import (
	"context"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{
			name:  "write to markdown",
			event: fsnotify.Event{Name: "content/docs/tour.md", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "create",
			event: fsnotify.Event{Name: "content/blog/new.md", Op: fsnotify.Create},
			want:  true,
		},
		{
			name:  "remove",
			event: fsnotify.Event{Name: "static/logo.png", Op: fsnotify.Remove},
			want:  true,
		},
		{
			name:  "chmod only",
			event: fsnotify.Event{Name: "content/docs/tour.md", Op: fsnotify.Chmod},
			want:  false,
		},
		{
			name:  "vim swap file",
			event: fsnotify.Event{Name: "content/docs/.tour.md.swp", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "backup file",
			event: fsnotify.Event{Name: "content/docs/tour.md~", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "dotfile",
			event: fsnotify.Event{Name: "content/.DS_Store", Op: fsnotify.Create},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, relevant(tt.event))
		})
	}
}

func TestNewWatcher_SkipsMissingDirs(t *testing.T) {
	t.Parallel()

	rebuild := func(context.Context) error { return nil }
	w, err := NewWatcher([]string{t.TempDir(), "", "does-not-exist"}, rebuild, quietLogger())
	require.NoError(t, err)
	require.NoError(t, w.watcher.Close())
}

func TestWatcher_RunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	rebuild := func(context.Context) error { return nil }
	w, err := NewWatcher([]string{t.TempDir()}, rebuild, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = w.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
