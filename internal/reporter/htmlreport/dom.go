package htmlreport

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// appendAll appends children to parent and returns parent.
func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
	return parent
}

// withText returns an element holding a single text node.
func withText(a atom.Atom, text string, attrs ...html.Attribute) *html.Node {
	return appendAll(element(a, attrs...), textNode(text))
}

func link(href, text string) *html.Node {
	return withText(atom.A, text, attr("href", href))
}

// newDocument returns the document node and its body.
func newDocument(title string) (doc, body *html.Node) {
	doc = &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := appendAll(element(atom.Head),
		element(atom.Meta, attr("charset", "utf-8")),
		element(atom.Meta, attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1.0")),
		withText(atom.Title, title),
		withText(atom.Style, reportCSS),
	)
	body = element(atom.Body)
	appendAll(doc, appendAll(element(atom.Html, attr("lang", "en")), head, body))
	return doc, body
}

func writeDocument(path string, doc *html.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := html.Render(w, doc); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func table(headers ...string) (tbl, tbody *html.Node) {
	row := element(atom.Tr)
	for _, h := range headers {
		appendAll(row, withText(atom.Th, h))
	}
	tbody = element(atom.Tbody)
	tbl = appendAll(element(atom.Table, attr("class", "overview")),
		appendAll(element(atom.Thead), row), tbody)
	return tbl, tbody
}

func tableRow(cells ...*html.Node) *html.Node {
	row := element(atom.Tr)
	for _, c := range cells {
		if c.DataAtom != atom.Td && c.DataAtom != atom.Th {
			c = appendAll(element(atom.Td), c)
		}
		row.AppendChild(c)
	}
	return row
}

const reportCSS = `
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2em; color: #111827; }
h1 { font-size: 1.5em; }
a { color: #1d4ed8; text-decoration: none; }
.cards { display: flex; gap: 1em; flex-wrap: wrap; margin-bottom: 2em; }
.card { border: 1px solid #d1d5db; border-radius: 6px; padding: 0.8em 1.2em; min-width: 12em; }
.card .header { color: #6b7280; font-size: 0.85em; }
.card .value { font-size: 1.6em; font-weight: bold; }
table.overview { border-collapse: collapse; width: 100%; }
table.overview th, table.overview td { border-bottom: 1px solid #e5e7eb; padding: 0.3em 0.6em; text-align: left; }
.right { text-align: right; }
.bar { display: inline-block; width: 100px; height: 0.8em; background: #dc2626; }
.bar span { display: block; height: 100%; background: #059669; }
.green { background: #d1fae5; }
.red { background: #fee2e2; }
.orange { background: #fef3c7; }
`

// percentText formats a percentage with two decimals.
func percentText(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
