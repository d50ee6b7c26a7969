package compinject

import "errors"

// Sentinel errors for library operations.
//
// Bad input never produces an error: unknown components and unsupported
// extensions are skipped. These cover document backend failures only.
var (
	ErrHTMLParse  = errors.New("failed to parse HTML document")
	ErrHTMLRender = errors.New("failed to render HTML document")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrDocumentQuery  = errors.New("failed to query document")
	ErrDocumentUpdate = errors.New("failed to update document")
)
