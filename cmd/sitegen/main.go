package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	verbose := hasFlag(os.Args[1:], "--verbose", "-v")

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	env := DefaultEnv()
	if err := run(os.Args[1:], env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func hasFlag(args []string, long, short string) bool {
	for _, a := range args {
		if a == long || a == short {
			return true
		}
	}
	return false
}
