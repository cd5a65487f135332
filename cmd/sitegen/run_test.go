package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv()
	err := run(nil, env)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("run() error = %v, want %v", err, ErrUnknownCommand)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Error("run() did not print usage to stderr")
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	err := run([]string{"bulid"}, env)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("run() error = %v, want %v", err, ErrUnknownCommand)
	}
	if !strings.Contains(err.Error(), "bulid") {
		t.Errorf("run() error %q does not name the bad command", err)
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := run([]string{"version"}, env); err != nil {
		t.Fatalf("run(version) error = %v", err)
	}
	if !strings.Contains(stdout.String(), "sitegen") {
		t.Errorf("version output = %q", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bare help", args: []string{"help"}, want: "Usage:"},
		{name: "help build", args: []string{"help", "build"}, want: "--base-path"},
		{name: "help serve", args: []string{"help", "serve"}, want: "--addr"},
		{name: "help check", args: []string{"help", "check"}, want: "check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv()
			if err := run(tt.args, env); err != nil {
				t.Fatalf("run(%v) error = %v", tt.args, err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("help output missing %q:\n%s", tt.want, stdout.String())
			}
		})
	}
}
