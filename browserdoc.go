package compinject

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
)

const (
	jsScriptSources = `() => Array.from(document.getElementsByTagName("script"), s => s.src).filter(Boolean)`
	jsLinkHrefs     = `() => Array.from(document.getElementsByTagName("link"), l => l.href).filter(Boolean)`

	jsAppendScript = `(src) => {
		const el = document.createElement("script");
		el.src = src;
		el.type = "text/javascript";
		(document.head || document.body || document.documentElement).appendChild(el);
	}`

	jsAppendStylesheet = `(href) => {
		const el = document.createElement("link");
		el.href = href;
		el.rel = "stylesheet";
		el.type = "text/css";
		(document.head || document.body || document.documentElement).appendChild(el);
	}`
)

// BrowserDocument is a Document backed by a live page. Sources and hrefs are
// read from the DOM properties, so they are absolute URLs.
type BrowserDocument struct {
	page *rod.Page
}

// NewBrowserDocument wraps an already loaded page.
func NewBrowserDocument(page *rod.Page) *BrowserDocument {
	return &BrowserDocument{page: page}
}

func (d *BrowserDocument) ScriptSources(ctx context.Context) ([]string, error) {
	return d.evalStrings(ctx, jsScriptSources)
}

func (d *BrowserDocument) StylesheetHrefs(ctx context.Context) ([]string, error) {
	return d.evalStrings(ctx, jsLinkHrefs)
}

func (d *BrowserDocument) AppendScript(ctx context.Context, src string) error {
	if _, err := d.page.Context(ctx).Eval(jsAppendScript, src); err != nil {
		return fmt.Errorf("%w: appending script %s: %v", ErrDocumentUpdate, src, err)
	}
	return nil
}

func (d *BrowserDocument) AppendStylesheet(ctx context.Context, href string) error {
	if _, err := d.page.Context(ctx).Eval(jsAppendStylesheet, href); err != nil {
		return fmt.Errorf("%w: appending stylesheet %s: %v", ErrDocumentUpdate, href, err)
	}
	return nil
}

// HTML returns the page's current serialized markup.
func (d *BrowserDocument) HTML(ctx context.Context) (string, error) {
	out, err := d.page.Context(ctx).HTML()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentQuery, err)
	}
	return out, nil
}

// Close closes the underlying page.
func (d *BrowserDocument) Close() error {
	return d.page.Close()
}

func (d *BrowserDocument) evalStrings(ctx context.Context, js string) ([]string, error) {
	res, err := d.page.Context(ctx).Eval(js)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentQuery, err)
	}
	values := res.Value.Arr()
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Str())
	}
	return out, nil
}
