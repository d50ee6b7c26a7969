// Package compinject adds the script and stylesheet assets of named
// components to HTML documents, each file at most once.
//
// # Quick Start
//
// Parse a page, import components, render it back:
//
//	imp := compinject.NewImporter(
//	    compinject.WithBaseURL("/static/components/"),
//	)
//
//	err := imp.ImportHTML(ctx, in, out, "syntax", "wdatepicker")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// A component is an ordered list of asset paths. The built-in registry
// (DefaultRegistry) knows "syntax" and "wdatepicker"; extend it with
// Registry.With. Unknown component names are ignored.
//
// # Path Resolution
//
// A path starting with "$", or one without any "/", is relative to the base
// URL given with WithBaseURL (or derived from the loader script URL with
// WithLoaderURL). Any other path is used as is:
//
//	"$syntax/js/shCore.js"  -> "/static/components/syntax/js/shCore.js"
//	"app.js"                -> "/static/components/app.js"
//	"/vendor/jquery.js"     -> "/vendor/jquery.js"
//
// Only .js and .css assets are injected; other extensions are skipped.
//
// # Deduplication
//
// Before adding an asset the importer lists the document's existing scripts
// (for .js) or stylesheet links (for .css) and skips the asset when any of
// them has the same file name, ignoring directories and hosts. Importing the
// same component twice is therefore a no-op the second time.
//
// # Documents
//
// The importer talks to a Document. Three implementations are provided:
//
//	MemoryDocument   - plain slices, for tests and programmatic use
//	HTMLDocument     - an HTML tree parsed with golang.org/x/net/html
//	BrowserDocument  - a live page in headless Chrome (go-rod)
//
// # Legacy Browser Probe
//
// LegacyIEVersion reports 6 for user agents naming "MSIE 6.0" and 8 for
// everything else.
package compinject
