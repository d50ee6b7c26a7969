package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// browserFlags holds live-document flags.
type browserFlags struct {
	enabled bool
	bin     string
	timeout string
}

// injectFlags holds all flags for the inject command.
type injectFlags struct {
	common     commonFlags
	output     string
	components []string
	base       string
	loaderURL  string
	browser    browserFlags

	// Set when the flag was given explicitly, so config values apply otherwise.
	baseSet      bool
	loaderURLSet bool
}

// listFlags holds flags for the list command.
type listFlags struct {
	config string
	yaml   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors and warnings")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every injected and skipped asset")
}

// addBrowserFlags adds headless browser flags to a FlagSet.
func addBrowserFlags(fs *flag.FlagSet, f *browserFlags) {
	fs.BoolVar(&f.enabled, "browser", false, "load the page in headless Chrome and inject into the live DOM")
	fs.StringVar(&f.bin, "browser-bin", "", "Chrome binary (default: ROD_BROWSER_BIN or auto-download)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load timeout (e.g., 30s, 2m)")
}

func parseInjectFlags(args []string, stderr io.Writer) (*injectFlags, []string, error) {
	fs := flag.NewFlagSet("inject", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &injectFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.StringSliceVarP(&f.components, "component", "C", nil, "component to import (repeatable, comma separated)")
	fs.StringVarP(&f.base, "base", "b", "", "base URL for relative asset paths")
	fs.StringVar(&f.loaderURL, "loader-url", "", "loader script URL to derive the base from")
	addCommonFlags(fs, &f.common)
	addBrowserFlags(fs, &f.browser)

	fs.Usage = func() { printInjectUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.baseSet = fs.Changed("base")
	f.loaderURLSet = fs.Changed("loader-url")
	return f, fs.Args(), nil
}

func parseListFlags(args []string, stderr io.Writer) (*listFlags, []string, error) {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &listFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.yaml, "yaml", false, "print the registry as YAML")

	fs.Usage = func() { printListUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
