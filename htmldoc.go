package compinject

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLDocument is a Document backed by a parsed HTML tree.
type HTMLDocument struct {
	root *html.Node
}

// ParseHTML parses a full HTML page. The parser always synthesizes <html>,
// <head> and <body>, so fragments are accepted too.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}
	return &HTMLDocument{root: root}, nil
}

// ScriptSources returns the non-empty src attribute of every <script>.
func (d *HTMLDocument) ScriptSources(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return collectAttr(d.root, atom.Script, "src"), nil
}

// StylesheetHrefs returns the non-empty href attribute of every <link>.
func (d *HTMLDocument) StylesheetHrefs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return collectAttr(d.root, atom.Link, "href"), nil
}

// AppendScript appends a script element to <head>.
func (d *HTMLDocument) AppendScript(ctx context.Context, src string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.insertionPoint().AppendChild(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Script,
		Data:     "script",
		Attr: []html.Attribute{
			{Key: "src", Val: src},
			{Key: "type", Val: "text/javascript"},
		},
	})
	return nil
}

// AppendStylesheet appends a stylesheet link element to <head>.
func (d *HTMLDocument) AppendStylesheet(ctx context.Context, href string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.insertionPoint().AppendChild(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Link,
		Data:     "link",
		Attr: []html.Attribute{
			{Key: "href", Val: href},
			{Key: "rel", Val: "stylesheet"},
			{Key: "type", Val: "text/css"},
		},
	})
	return nil
}

// Render writes the document as HTML.
func (d *HTMLDocument) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return nil
}

// String renders the document, returning "" on failure.
func (d *HTMLDocument) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// insertionPoint tries <head> first, then <body>, then the document root.
func (d *HTMLDocument) insertionPoint() *html.Node {
	if head := findElement(d.root, atom.Head); head != nil {
		return head
	}
	if body := findElement(d.root, atom.Body); body != nil {
		return body
	}
	return d.root
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// collectAttr walks the tree in document order and returns the non-empty
// values of key on elements of type a.
func collectAttr(n *html.Node, a atom.Atom, key string) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			for _, attr := range n.Attr {
				if attr.Namespace == "" && attr.Key == key && attr.Val != "" {
					out = append(out, attr.Val)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
