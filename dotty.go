package segtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes show their span and their cached aggregate. Nodes with a pending
// delta are highlighted and show the delta as well. Tree2Dot does not resolve
// pending deltas, i.e., it displays the tree exactly as it is.
func Tree2Dot[V, D any](tree *Tree[V, D], w io.Writer) error {
	if tree == nil || w == nil {
		return ErrIllegalArguments
	}
	var nodelist, edgelist strings.Builder
	tree.Walk(func(info NodeInfo[V, D]) {
		styles := nodeDotStyles(info)
		label := fmt.Sprintf("[%d,%d]\\n%v", info.Lo, info.Hi, info.Value)
		if info.Pending {
			label += fmt.Sprintf("\\nΔ %v", info.Delta)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", info.Index, escapeDot(label), styles)
		if !info.IsLeaf() {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", info.Index, 2*info.Index+1)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", info.Index, 2*info.Index+2)
		}
	})
	b := &strings.Builder{}
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		T().Errorf("segtree DOT: %s", err.Error())
		return err
	}
	return nil
}

func escapeDot(label string) string {
	return strings.ReplaceAll(label, "\"", "\\\"")
}

func nodeDotStyles[V, D any](info NodeInfo[V, D]) string {
	s := ",style=filled"
	if info.IsLeaf() {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	depth := min(info.Depth, len(hexcolors)-1)
	if info.Pending {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[depth])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
