package main

import (
	"errors"
	"strings"
	"testing"
)

func TestRunCheck(t *testing.T) {
	scaffoldSite(t, map[string]string{
		"content/docs/index.md": "---\ntitle: Docs\n---\nSee the [tour](/docs/tour/).\n",
		"content/docs/tour.md":  "---\ntitle: Tour\n---\nBack to [docs](/docs/).\n",
	})

	env, stdout, _ := testEnv()
	flags, err := parseCheckFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := runCheck(flags, env); err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Checked 2 pages: 0 broken links") {
		t.Errorf("summary = %q", stdout.String())
	}
}

func TestRunCheck_BrokenLinks(t *testing.T) {
	scaffoldSite(t, map[string]string{
		"content/docs/index.md": "---\ntitle: Docs\n---\nSee the [ghost](/docs/ghost/).\n",
	})

	env, _, stderr := testEnv()
	flags, err := parseCheckFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	err = runCheck(flags, env)
	if !errors.Is(err, ErrBrokenLinks) {
		t.Fatalf("runCheck() error = %v, want %v", err, ErrBrokenLinks)
	}
	if !strings.Contains(stderr.String(), "/docs/ghost/") {
		t.Errorf("stderr does not list the broken link: %q", stderr.String())
	}
	if got := exitCodeFor(err); got != ExitGeneral {
		t.Errorf("exit code = %d, want %d", got, ExitGeneral)
	}
}
