package compinject

import (
	"context"
	"slices"
	"sync"
)

// Document is the page the importer reads existing assets from and appends
// new ones to.
type Document interface {
	// ScriptSources returns the src of every script element that has one.
	ScriptSources(ctx context.Context) ([]string, error)
	// StylesheetHrefs returns the href of every link element that has one.
	StylesheetHrefs(ctx context.Context) ([]string, error)
	// AppendScript adds <script src="src" type="text/javascript">.
	AppendScript(ctx context.Context, src string) error
	// AppendStylesheet adds <link href="href" rel="stylesheet" type="text/css">.
	AppendStylesheet(ctx context.Context, href string) error
}

// Compile-time interface checks
var (
	_ Document = (*MemoryDocument)(nil)
	_ Document = (*HTMLDocument)(nil)
	_ Document = (*BrowserDocument)(nil)
)

// MemoryDocument is an in-memory Document. The zero value is an empty page.
type MemoryDocument struct {
	mu          sync.Mutex
	scripts     []string
	stylesheets []string
	appended    []string
}

// NewMemoryDocument returns a document that already holds the given script
// sources and stylesheet hrefs.
func NewMemoryDocument(scripts, stylesheets []string) *MemoryDocument {
	return &MemoryDocument{
		scripts:     slices.Clone(scripts),
		stylesheets: slices.Clone(stylesheets),
	}
}

func (d *MemoryDocument) ScriptSources(context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.scripts), nil
}

func (d *MemoryDocument) StylesheetHrefs(context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.stylesheets), nil
}

func (d *MemoryDocument) AppendScript(_ context.Context, src string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scripts = append(d.scripts, src)
	d.appended = append(d.appended, src)
	return nil
}

func (d *MemoryDocument) AppendStylesheet(_ context.Context, href string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stylesheets = append(d.stylesheets, href)
	d.appended = append(d.appended, href)
	return nil
}

// Appended returns every URL added through AppendScript or AppendStylesheet,
// in call order.
func (d *MemoryDocument) Appended() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.appended)
}
