package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/solis-lang/sitegen"
)

// scaffoldSite writes a small site into a temp dir and chdirs into it so the
// default config paths resolve.
func scaffoldSite(t *testing.T, pages map[string]string) {
	t.Helper()
	root := t.TempDir()
	for rel, body := range pages {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(root)
}

func TestRunBuild(t *testing.T) {
	scaffoldSite(t, map[string]string{
		"site.yaml": "site:\n  name: Solis\n",
		"content/docs/index.md": `---
title: Docs
---
# Docs
`,
	})

	env, stdout, stderr := testEnv()
	flags, err := parseBuildFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := runBuild(context.Background(), flags, env); err != nil {
		t.Fatalf("runBuild() error = %v\nstderr: %s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Built 1 pages (0 failed") {
		t.Errorf("summary = %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join("public", "docs", "index.html")); err != nil {
		t.Errorf("output page missing: %v", err)
	}
}

func TestRunBuild_Quiet(t *testing.T) {
	scaffoldSite(t, map[string]string{
		"content/docs/index.md": "---\ntitle: Docs\n---\n# Docs\n",
	})

	env, stdout, _ := testEnv()
	flags, err := parseBuildFlags([]string{"-q"})
	if err != nil {
		t.Fatal(err)
	}

	if err := runBuild(context.Background(), flags, env); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet build wrote to stdout: %q", stdout.String())
	}
}

func TestRunBuild_ReportsPageFailures(t *testing.T) {
	scaffoldSite(t, map[string]string{
		"content/docs/good.md": "---\ntitle: Good\n---\nfine\n",
		"content/docs/bad.md":  "no frontmatter\n",
	})

	env, _, stderr := testEnv()
	flags, err := parseBuildFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	err = runBuild(context.Background(), flags, env)
	if !errors.Is(err, sitegen.ErrBuildFailed) {
		t.Fatalf("runBuild() error = %v, want %v", err, sitegen.ErrBuildFailed)
	}
	if !strings.Contains(stderr.String(), "bad.md") {
		t.Errorf("stderr does not name the failing page: %q", stderr.String())
	}
	if got := exitCodeFor(err); got != ExitGeneral {
		t.Errorf("exit code = %d, want %d", got, ExitGeneral)
	}
}

func TestRunBuild_OutputFlagOverridesConfig(t *testing.T) {
	scaffoldSite(t, map[string]string{
		"site.yaml":             "site:\n  name: Solis\npaths:\n  output: ignored\n",
		"content/docs/index.md": "---\ntitle: Docs\n---\n# Docs\n",
	})

	env, _, _ := testEnv()
	flags, err := parseBuildFlags([]string{"-o", "dist"})
	if err != nil {
		t.Fatal(err)
	}

	if err := runBuild(context.Background(), flags, env); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join("dist", "docs", "index.html")); err != nil {
		t.Errorf("page not written to flag output dir: %v", err)
	}
}
