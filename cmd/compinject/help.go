package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: compinject <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inject     Add component scripts and stylesheets to an HTML page")
	fmt.Fprintln(w, "  list       List known components and their assets")
	fmt.Fprintln(w, "  probe      Report the legacy IE version for a User-Agent")
	fmt.Fprintln(w, "  doctor     Check that --browser mode can run")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'compinject help <command>' for details on a specific command.")
}

// printInjectUsage prints usage for the inject command.
func printInjectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: compinject inject <page.html|URL|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Add each asset of the given components to the page, skipping files")
	fmt.Fprintln(w, "already present (compared by file name). Unknown components are ignored.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Components:")
	fmt.Fprintln(w, "  -C, --component <names>   Components to import (repeatable, comma separated)")
	fmt.Fprintln(w, "  -b, --base <url>          Base URL for \"$\" and bare asset paths")
	fmt.Fprintln(w, "      --loader-url <url>    Derive the base from the loader script URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "      --browser             Inject into the live DOM via headless Chrome")
	fmt.Fprintln(w, "      --browser-bin <path>  Chrome binary")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Page load timeout (e.g., 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors and warnings")
	fmt.Fprintln(w, "  -v, --verbose             Log every injected and skipped asset")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  compinject inject page.html -C syntax -b /static/components/")
	fmt.Fprintln(w, "  cat page.html | compinject inject - -C syntax,wdatepicker -o out.html")
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: compinject list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Include components from a config file")
	fmt.Fprintln(w, "      --yaml                Print as YAML (config file format)")
}

// printProbeUsage prints usage for the probe command.
func printProbeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: compinject probe <user-agent>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Prints 6 if the User-Agent names MSIE 6.0, otherwise 8.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: compinject doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Checks Chrome availability and the temp directory for --browser mode.")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "inject":
		printInjectUsage(env.Stdout)
	case "list":
		printListUsage(env.Stdout)
	case "probe":
		printProbeUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stdout)
	}
}
