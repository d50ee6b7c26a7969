package compinject

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Importer adds component assets to documents.
// An Importer is safe for concurrent use across different documents.
type Importer struct {
	base     string
	registry *Registry
	logger   *zap.Logger
}

// Option configures an Importer.
type Option func(*Importer)

// WithBaseURL sets the prefix for relative asset paths. It is used as is,
// so it normally ends with "/". An empty base leaves relative paths relative
// to the page.
func WithBaseURL(base string) Option {
	return func(im *Importer) {
		im.base = base
	}
}

// WithLoaderURL derives the base URL from the loader script URL by dropping
// DefaultLoaderName. The base is empty when the URL does not end with it.
func WithLoaderURL(loaderURL string) Option {
	return func(im *Importer) {
		im.base = BaseFromLoaderURL(loaderURL, DefaultLoaderName)
	}
}

// WithRegistry sets the component table.
// Panics if r is nil (programmer error).
func WithRegistry(r *Registry) Option {
	if r == nil {
		panic("compinject: WithRegistry registry must not be nil")
	}
	return func(im *Importer) {
		im.registry = r
	}
}

// WithLogger sets the logger. Skipped and injected assets are logged at
// debug level.
func WithLogger(l *zap.Logger) Option {
	return func(im *Importer) {
		if l != nil {
			im.logger = l
		}
	}
}

// NewImporter returns an Importer using DefaultRegistry and an empty base
// unless options say otherwise.
func NewImporter(opts ...Option) *Importer {
	im := &Importer{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(im)
	}
	if im.registry == nil {
		im.registry = DefaultRegistry()
	}
	return im
}

// Base returns the prefix used for relative asset paths.
func (im *Importer) Base() string {
	return im.base
}

// Registry returns the component table.
func (im *Importer) Registry() *Registry {
	return im.registry
}

// Import ensures every asset of every named component is in doc once.
// Unknown names are skipped. Errors come only from doc or ctx; on error the
// assets added so far stay in the document.
func (im *Importer) Import(ctx context.Context, doc Document, names ...string) error {
	for _, name := range names {
		assets, ok := im.registry.Lookup(name)
		if !ok {
			im.logger.Debug("unknown component", zap.String("component", name))
			continue
		}
		for _, asset := range assets {
			if err := im.ImportAsset(ctx, doc, asset); err != nil {
				return err
			}
		}
	}
	return nil
}

// ImportAsset resolves a single asset path and appends it to doc unless an
// element with the same file name is already there. Paths that are neither
// .js nor .css are skipped.
func (im *Importer) ImportAsset(ctx context.Context, doc Document, asset string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	url := ResolvePath(im.base, asset)
	kind := KindOf(url)

	var existing []string
	var err error
	switch kind {
	case KindScript:
		existing, err = doc.ScriptSources(ctx)
	case KindStylesheet:
		existing, err = doc.StylesheetHrefs(ctx)
	default:
		im.logger.Debug("unsupported asset type", zap.String("asset", asset))
		return nil
	}
	if err != nil {
		return err
	}

	name := FileName(url)
	for _, src := range existing {
		if FileName(src) == name {
			im.logger.Debug("asset already present",
				zap.String("asset", asset),
				zap.String("match", src))
			return nil
		}
	}

	if kind == KindScript {
		err = doc.AppendScript(ctx, url)
	} else {
		err = doc.AppendStylesheet(ctx, url)
	}
	if err != nil {
		return err
	}
	im.logger.Debug("asset injected",
		zap.Stringer("kind", kind),
		zap.String("url", url))
	return nil
}

// ImportHTML parses an HTML page from r, imports the named components and
// writes the result to w.
func (im *Importer) ImportHTML(ctx context.Context, r io.Reader, w io.Writer, names ...string) error {
	doc, err := ParseHTML(r)
	if err != nil {
		return err
	}
	if err := im.Import(ctx, doc, names...); err != nil {
		return err
	}
	return doc.Render(w)
}
