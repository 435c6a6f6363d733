/*
Package html renders segment trees as HTML tables and reads values back from
HTML tables.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/segtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

// RenderNodes writes the node table of a tree as an HTML <table>, one row per
// node in pre-order. Rows of nodes with a pending delta carry class "pending".
// The tree is left untouched.
func RenderNodes[V, D any](tree *segtree.Tree[V, D], w io.Writer) error {
	if w == nil || tree == nil {
		return segtree.ErrIllegalArguments
	}
	table := element("table", "class", "segtree-nodes")
	table.AppendChild(headerRow("node", "span", "depth", "aggregate", "pending delta"))
	tree.Walk(func(info segtree.NodeInfo[V, D]) {
		var tr *html.Node
		delta := ""
		if info.Pending {
			tr = element("tr", "class", "pending")
			delta = fmt.Sprintf("%v", info.Delta)
		} else {
			tr = element("tr")
		}
		appendCells(tr, "td",
			strconv.Itoa(info.Index),
			fmt.Sprintf("[%d,%d]", info.Lo, info.Hi),
			strconv.Itoa(info.Depth),
			fmt.Sprintf("%v", info.Value),
			delta)
		table.AppendChild(tr)
	})
	return render(w, table)
}

// RenderValues writes all values of a tree as an HTML <table> with a single
// row, one cell per value.
//
// Reading all values resolves every pending delta of the tree.
func RenderValues[V, D any](tree *segtree.Tree[V, D], w io.Writer) error {
	if w == nil || tree == nil {
		return segtree.ErrIllegalArguments
	}
	table := element("table", "class", "segtree-values")
	tr := element("tr")
	for _, v := range tree.Values() {
		appendCells(tr, "td", fmt.Sprintf("%v", v))
	}
	table.AppendChild(tr)
	return render(w, table)
}

// Values reads the text of all <td> cells of an HTML fragment, in document
// order, and converts each of them to a value using parse.
// It does no interpretation of layout and styling.
func Values[V any](input io.Reader, parse func(string) (V, error)) ([]V, error) {
	if input == nil || parse == nil {
		return nil, segtree.ErrIllegalArguments
	}
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, context)
	if err != nil {
		return nil, err
	}
	var values []V
	for _, n := range nodes {
		if values, err = collectCells(n, values, parse); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("html: read %d values", len(values))
	return values, nil
}

func collectCells[V any](n *html.Node, values []V, parse func(string) (V, error)) ([]V, error) {
	if n.Type == html.ElementNode && n.Data == "td" {
		var b strings.Builder
		innerText(n, &b)
		text := strings.TrimSpace(b.String())
		v, err := parse(text)
		if err != nil {
			return values, fmt.Errorf("html: cell %d: %w", len(values), err)
		}
		return append(values, v), nil
	}
	var err error
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if values, err = collectCells(c, values, parse); err != nil {
			return values, err
		}
	}
	return values, nil
}

func innerText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		innerText(c, b)
	}
}

// --- Building HTML nodes ---------------------------------------------------

func element(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func headerRow(titles ...string) *html.Node {
	tr := element("tr")
	appendCells(tr, "th", titles...)
	return tr
}

func appendCells(tr *html.Node, tag string, texts ...string) {
	for _, text := range texts {
		cell := element(tag)
		cell.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		tr.AppendChild(cell)
	}
}

func render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		tracer().Errorf("html: rendering failed: %v", err)
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
