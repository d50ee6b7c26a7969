package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	compinject "github.com/alnah/go-compinject"
	"github.com/alnah/go-compinject/internal/config"
	"github.com/alnah/go-compinject/internal/fileutil"
	"github.com/alnah/go-compinject/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrTooManyInputs  = errors.New("only one input may be given")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// stdinArg selects standard input as the page source.
const stdinArg = "-"

// filePermissions is used for the output file: rw-r--r--.
const filePermissions = 0o644

// runInjectCmd parses flags, runs the injection and maps errors to exit codes.
func runInjectCmd(args []string, env *Environment) int {
	flags, positional, err := parseInjectFlags(args, env.Stderr)
	if err != nil {
		return ExitUsage
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	defer func() { _ = logger.Sync() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	undo, _ := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
	defer undo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runInject(ctx, positional, flags, env, logger); err != nil {
		logger.Error("inject failed" + errorHint(err, flags.common.config, os.Getenv), zap.Error(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// injectSettings is the merged result of config file and flags.
type injectSettings struct {
	base       string
	loaderURL  string
	registry   *compinject.Registry
	browserBin string
	timeout    time.Duration
}

// resolveSettings loads the config file (if any) and lets explicit flags win.
func resolveSettings(flags *injectFlags) (*injectSettings, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		loaded, err := config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	s := &injectSettings{
		base:       cfg.Base,
		loaderURL:  cfg.LoaderURL,
		registry:   compinject.DefaultRegistry(),
		browserBin: cfg.Browser.Bin,
	}
	if flags.baseSet {
		s.base = flags.base
	}
	if flags.loaderURLSet {
		s.loaderURL = flags.loaderURL
	}
	if flags.browser.bin != "" {
		s.browserBin = flags.browser.bin
	}

	for _, e := range cfg.Components {
		s.registry = s.registry.With(compinject.Component{Name: e.Name, Assets: e.Assets})
	}

	timeout, err := cfg.BrowserTimeout()
	if err != nil {
		return nil, err
	}
	if flags.browser.timeout != "" {
		timeout, err = time.ParseDuration(flags.browser.timeout)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, flags.browser.timeout)
		}
	}
	s.timeout = timeout

	return s, nil
}

// importerOptions builds importer options. An explicit base wins over a
// loader URL.
func (s *injectSettings) importerOptions(logger *zap.Logger) []compinject.Option {
	opts := []compinject.Option{
		compinject.WithRegistry(s.registry),
		compinject.WithLogger(logger),
	}
	switch {
	case s.base != "":
		opts = append(opts, compinject.WithBaseURL(s.base))
	case s.loaderURL != "":
		opts = append(opts, compinject.WithLoaderURL(s.loaderURL))
	}
	return opts
}

// runInject imports the requested components into one page.
func runInject(ctx context.Context, positional []string, flags *injectFlags, env *Environment, logger *zap.Logger) error {
	if len(positional) == 0 {
		return ErrNoInput
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyInputs, len(positional))
	}
	input := positional[0]

	settings, err := resolveSettings(flags)
	if err != nil {
		return err
	}

	imp := compinject.NewImporter(settings.importerOptions(logger)...)
	if len(flags.components) == 0 {
		logger.Warn("no components requested; page is written unchanged")
	}
	if unknown := unknownComponents(settings.registry, flags.components); len(unknown) > 0 {
		logger.Warn("unknown components are skipped"+hints.ForUnknownComponents(settings.registry.Names()),
			zap.Strings("components", unknown))
	}
	logger.Debug("importing",
		zap.Strings("components", flags.components),
		zap.String("base", imp.Base()))

	var out []byte
	if flags.browser.enabled {
		out, err = injectLive(ctx, input, flags.components, imp, settings, env, logger)
	} else {
		out, err = injectStatic(ctx, input, flags.components, imp, env)
	}
	if err != nil {
		return err
	}

	return writeOutput(flags.output, out, env)
}

// unknownComponents returns the requested names the registry lacks.
func unknownComponents(reg *compinject.Registry, names []string) []string {
	var unknown []string
	for _, name := range names {
		if _, ok := reg.Lookup(name); !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// errorHint picks an actionable hint for err, or returns "".
func errorHint(err error, configName string, getenv func(string) string) string {
	switch {
	case errors.Is(err, compinject.ErrBrowserConnect):
		return hints.ForBrowserConnect(getenv)
	case errors.Is(err, compinject.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(configName):
		return hints.ForConfigNotFound(config.SearchPaths(configName))
	}
	return ""
}

// injectStatic parses the page with the HTML backend.
func injectStatic(ctx context.Context, input string, components []string, imp *compinject.Importer, env *Environment) ([]byte, error) {
	src, err := readInput(input, env)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imp.ImportHTML(ctx, bytes.NewReader(src), &buf, components...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// injectLive loads the page in headless Chrome and injects into the DOM.
// URLs are opened directly; files and stdin go through a file:// URL.
func injectLive(ctx context.Context, input string, components []string, imp *compinject.Importer, s *injectSettings, env *Environment, logger *zap.Logger) ([]byte, error) {
	url, cleanup, err := pageURL(input, env)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	opts := []compinject.BrowserOption{
		compinject.WithBrowserBin(s.browserBin),
		compinject.WithBrowserLogger(logger),
	}
	if s.timeout > 0 {
		opts = append(opts, compinject.WithBrowserTimeout(s.timeout))
	}
	browser := compinject.NewBrowser(opts...)
	defer func() { _ = browser.Close() }()

	doc, err := browser.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = doc.Close() }()

	if err := imp.Import(ctx, doc, components...); err != nil {
		return nil, err
	}

	html, err := doc.HTML(ctx)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// pageURL returns a URL the browser can open for input.
func pageURL(input string, env *Environment) (url string, cleanup func(), err error) {
	noop := func() {}

	if fileutil.IsURL(input) {
		return input, noop, nil
	}

	if input == stdinArg {
		src, err := readInput(input, env)
		if err != nil {
			return "", nil, err
		}
		path, cleanup, err := fileutil.WriteTempFile(string(src), "html")
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		url, err := fileutil.FileURL(path)
		if err != nil {
			cleanup()
			return "", nil, err
		}
		return url, cleanup, nil
	}

	if !fileutil.FileExists(input) {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrReadInput, input, os.ErrNotExist)
	}
	url, err = fileutil.FileURL(input)
	if err != nil {
		return "", nil, err
	}
	return url, noop, nil
}

// readInput reads the page from a file or, for "-", from stdin.
func readInput(input string, env *Environment) ([]byte, error) {
	if input == stdinArg {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(input) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

// writeOutput writes to the output file, or stdout when path is empty.
func writeOutput(path string, data []byte, env *Environment) error {
	if path == "" {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil { // #nosec G306 -- HTML output is meant to be readable
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
