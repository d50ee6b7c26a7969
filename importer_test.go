package compinject

// Notes:
// - Import is exercised against MemoryDocument for the dedup and ordering
//   rules and against a failing document for error propagation. The
//   HTMLDocument path is covered in htmldoc_test.go and the browser path in
//   browser_integration_test.go.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testBase = "/static/components/"

// ---------------------------------------------------------------------------
// Test Infrastructure - Failing document
// ---------------------------------------------------------------------------

var errBackend = errors.New("backend down")

// failingDocument fails on the configured operation and records appends.
type failingDocument struct {
	MemoryDocument
	failQuery  bool
	failAppend bool
}

func (d *failingDocument) ScriptSources(ctx context.Context) ([]string, error) {
	if d.failQuery {
		return nil, errBackend
	}
	return d.MemoryDocument.ScriptSources(ctx)
}

func (d *failingDocument) StylesheetHrefs(ctx context.Context) ([]string, error) {
	if d.failQuery {
		return nil, errBackend
	}
	return d.MemoryDocument.StylesheetHrefs(ctx)
}

func (d *failingDocument) AppendScript(ctx context.Context, src string) error {
	if d.failAppend {
		return errBackend
	}
	return d.MemoryDocument.AppendScript(ctx, src)
}

func (d *failingDocument) AppendStylesheet(ctx context.Context, href string) error {
	if d.failAppend {
		return errBackend
	}
	return d.MemoryDocument.AppendStylesheet(ctx, href)
}

// ---------------------------------------------------------------------------
// TestImport - Component assets land once, in order
// ---------------------------------------------------------------------------

func TestImport_KnownComponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		component string
		want      []string
	}{
		{
			name:      "syntax",
			component: "syntax",
			want: []string{
				testBase + "syntax/css/shCore.css",
				testBase + "syntax/css/shThemeDefault.css",
				testBase + "syntax/js/shCore.js",
				testBase + "syntax/js/shBrushJScript.js",
				testBase + "syntax/js/shBrushXml.js",
			},
		},
		{
			name:      "wdatepicker",
			component: "wdatepicker",
			want: []string{
				testBase + "WdatePicker/dependecies/jquery.js",
				testBase + "WdatePicker/css/WdatePicker.css",
				testBase + "WdatePicker/js/WdatePicker.js",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &MemoryDocument{}
			imp := NewImporter(WithBaseURL(testBase))
			if err := imp.Import(context.Background(), doc, tt.component); err != nil {
				t.Fatalf("Import() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, doc.Appended()); diff != "" {
				t.Errorf("appended mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImport_Idempotent(t *testing.T) {
	t.Parallel()

	doc := &MemoryDocument{}
	imp := NewImporter(WithBaseURL(testBase))
	ctx := context.Background()

	if err := imp.Import(ctx, doc, "syntax", "wdatepicker"); err != nil {
		t.Fatalf("first Import() unexpected error: %v", err)
	}
	first := doc.Appended()

	if err := imp.Import(ctx, doc, "syntax", "wdatepicker", "syntax"); err != nil {
		t.Fatalf("second Import() unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, doc.Appended()); diff != "" {
		t.Errorf("second import added assets (-first +now):\n%s", diff)
	}

	scripts, _ := doc.ScriptSources(ctx)
	seen := map[string]int{}
	for _, s := range scripts {
		seen[FileName(s)]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("script %s present %d times", name, n)
		}
	}
}

func TestImport_UnknownComponentIsNoOp(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	doc := &MemoryDocument{}
	imp := NewImporter(WithBaseURL(testBase), WithLogger(zap.New(core)))

	if err := imp.Import(context.Background(), doc, "charts", "", "SYNTAX"); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}
	if got := doc.Appended(); len(got) != 0 {
		t.Errorf("unknown components mutated the document: %v", got)
	}
	if n := logs.FilterMessage("unknown component").Len(); n != 3 {
		t.Errorf("logged %d unknown components, want 3", n)
	}
}

func TestImport_NoNames(t *testing.T) {
	t.Parallel()

	doc := &MemoryDocument{}
	if err := NewImporter().Import(context.Background(), doc); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}
	if len(doc.Appended()) != 0 {
		t.Error("Import() with no names mutated the document")
	}
}

func TestImport_DedupByFileNameOnly(t *testing.T) {
	t.Parallel()

	// Page already loads jquery from a CDN and a theme from elsewhere.
	doc := NewMemoryDocument(
		[]string{"https://cdn.example.com/libs/1.4/jquery.js"},
		[]string{"http://other.example.com/css/WdatePicker.css"},
	)
	imp := NewImporter(WithBaseURL(testBase))

	if err := imp.Import(context.Background(), doc, "wdatepicker"); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}

	want := []string{testBase + "WdatePicker/js/WdatePicker.js"}
	if diff := cmp.Diff(want, doc.Appended()); diff != "" {
		t.Errorf("appended mismatch (-want +got):\n%s", diff)
	}
}

func TestImport_DedupIsPerKind(t *testing.T) {
	t.Parallel()

	// A script named like a stylesheet must not block the stylesheet.
	doc := NewMemoryDocument([]string{"/x/shCore.css"}, nil)
	imp := NewImporter(WithRegistry(NewRegistry(Component{Name: "c", Assets: []string{"$shCore.css"}})))

	if err := imp.Import(context.Background(), doc, "c"); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"shCore.css"}, doc.Appended()); diff != "" {
		t.Errorf("appended mismatch (-want +got):\n%s", diff)
	}
}

func TestImport_SkipsUnsupportedExtensions(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Component{
		Name:   "mixed",
		Assets: []string{"$img/logo.png", "$fonts/a.woff2", "$js/app.JS", "$css/app.CSS", "README"},
	})
	doc := &MemoryDocument{}
	imp := NewImporter(WithBaseURL(testBase), WithRegistry(reg))

	if err := imp.Import(context.Background(), doc, "mixed"); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}

	want := []string{testBase + "js/app.JS", testBase + "css/app.CSS"}
	if diff := cmp.Diff(want, doc.Appended()); diff != "" {
		t.Errorf("appended mismatch (-want +got):\n%s", diff)
	}
	scripts, _ := doc.ScriptSources(context.Background())
	if len(scripts) != 1 {
		t.Errorf("scripts = %v, want only app.JS", scripts)
	}
}

func TestImport_VerbatimPaths(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(Component{
		Name:   "cdn",
		Assets: []string{"https://cdn.example.com/lib.js", "local.css"},
	})
	doc := &MemoryDocument{}
	imp := NewImporter(WithBaseURL(testBase), WithRegistry(reg))

	if err := imp.Import(context.Background(), doc, "cdn"); err != nil {
		t.Fatalf("Import() unexpected error: %v", err)
	}
	want := []string{"https://cdn.example.com/lib.js", testBase + "local.css"}
	if diff := cmp.Diff(want, doc.Appended()); diff != "" {
		t.Errorf("appended mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestImport - Errors come only from the document and the context
// ---------------------------------------------------------------------------

func TestImport_DocumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *failingDocument
	}{
		{name: "query fails", doc: &failingDocument{failQuery: true}},
		{name: "append fails", doc: &failingDocument{failAppend: true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewImporter().Import(context.Background(), tt.doc, "syntax")
			if !errors.Is(err, errBackend) {
				t.Errorf("Import() error = %v, want errBackend", err)
			}
		})
	}
}

func TestImport_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := &MemoryDocument{}
	err := NewImporter().Import(ctx, doc, "syntax")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Import() error = %v, want context.Canceled", err)
	}
	if len(doc.Appended()) != 0 {
		t.Error("canceled import mutated the document")
	}
}

// ---------------------------------------------------------------------------
// TestNewImporter - Options
// ---------------------------------------------------------------------------

func TestNewImporter_Defaults(t *testing.T) {
	t.Parallel()

	imp := NewImporter()
	if imp.Base() != "" {
		t.Errorf("Base() = %q, want empty", imp.Base())
	}
	if diff := cmp.Diff(DefaultRegistry().Names(), imp.Registry().Names()); diff != "" {
		t.Errorf("default registry mismatch (-want +got):\n%s", diff)
	}
}

func TestWithLoaderURL(t *testing.T) {
	t.Parallel()

	imp := NewImporter(WithLoaderURL("http://example.com/static/components/components-init.js"))
	if imp.Base() != "http://example.com/static/components/" {
		t.Errorf("Base() = %q", imp.Base())
	}

	imp = NewImporter(WithLoaderURL("http://example.com/static/app.js"))
	if imp.Base() != "" {
		t.Errorf("Base() = %q, want empty for non-loader URL", imp.Base())
	}
}

func TestWithRegistry_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for nil registry, got none")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "must not be nil") {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	WithRegistry(nil)
}
