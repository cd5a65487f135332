package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
)

// run dispatches to the requested subcommand.
func run(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: no command given", ErrUnknownCommand)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "build":
		flags, err := parseBuildFlags(rest)
		if err != nil {
			return err
		}
		return runBuild(context.Background(), flags, env)

	case "serve":
		flags, err := parseServeFlags(rest)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx, flags, env)

	case "check":
		flags, err := parseCheckFlags(rest)
		if err != nil {
			return err
		}
		return runCheck(flags, env)

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "sitegen %s\n", Version)
		return nil

	case "help", "--help", "-h":
		runHelp(rest, env)
		return nil

	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}
