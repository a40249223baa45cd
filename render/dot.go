// Copyright (c) 2024 cocococoa
//
// MIT License

// Package render outputs the structure of a BDD, obtained with Walk, in
// formats suitable for visualization.
package render

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"sort"

	"github.com/cocococoa/bdd"
)

// nodes returns the non-constant nodes reachable from h, in the order of
// Walk.
func nodes(h bdd.Handle) ([]bdd.NodeInfo, error) {
	res := []bdd.NodeInfo{}
	err := h.Walk(func(n bdd.NodeInfo) error {
		res = append(res, n)
		return nil
	})
	return res, err
}

// Dot writes a GraphViz DOT description of the BDD with root h. Nodes are
// listed by increasing identity. We do not draw the constant False and the
// arcs that go to it; false branches are dotted.
func Dot(w io.Writer, h bdd.Handle) error {
	list, err := nodes(h)
	if err != nil {
		return err
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, `1 [shape=box, label="1", style=filled, height=0.3, width=0.3];`)
	for _, v := range list {
		fmt.Fprintf(bw, "%d %s\n", v.ID, dotlabel(v))
		if v.Low != 0 {
			fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", v.ID, v.Low)
		}
		if v.High != 0 {
			fmt.Fprintf(bw, "%d -> %d [style=filled];\n", v.ID, v.High)
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotlabel(v bdd.NodeInfo) string {
	return fmt.Sprintf(`[label=<<FONT POINT-SIZE="20">%s</FONT> <FONT POINT-SIZE="10">[%d]</FONT>>];`,
		html.EscapeString(v.Label), v.ID)
}
