package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render the site into the output directory")
	fmt.Fprintln(w, "  serve      Build and serve the site locally, rebuilding on change")
	fmt.Fprintln(w, "  check      Verify internal links across all content")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitegen help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every content collection into static HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>      Site config file (default site.yaml if present)")
	fmt.Fprintln(w, "  -o, --output <dir>       Output directory (overrides config)")
	fmt.Fprintln(w, "      --base-path <path>   Deployment base path, e.g. /solis (overrides config)")
	fmt.Fprintln(w, "      --minify             Minify HTML and CSS output")
	fmt.Fprintln(w, "      --drafts             Include draft pages")
	fmt.Fprintln(w, "  -w, --workers <n>        Parallel page workers (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet              Suppress progress output")
	fmt.Fprintln(w, "  -v, --verbose            Per-page timing output")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site and serve it locally under the configured base path.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>   Site config file (default site.yaml if present)")
	fmt.Fprintln(w, "  -a, --addr <addr>     Listen address (default 127.0.0.1:8080)")
	fmt.Fprintln(w, "      --watch           Rebuild on content changes (default true)")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitegen check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Verify that internal links in Markdown sources resolve to pages")
	fmt.Fprintln(w, "or static files. External URLs are not fetched.")
}

// runHelp handles the help command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
