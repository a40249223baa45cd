// Copyright (c) 2024 cocococoa
//
// MIT License

package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cocococoa/bdd"
)

// TikZ writes a tikzpicture of the BDD with root h. The picture has one row
// per declared variable, labelled with the variable, and each node is placed
// to the right of the previous node on the same row. Nodes are named n<id>,
// with n0 and n1 for the constants. False branches are dashed.
func TikZ(w io.Writer, h bdd.Handle) error {
	list, err := nodes(h)
	if err != nil {
		return err
	}
	labels := h.Manager().Variables()
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `\begin{tikzpicture}[node distance=1cm]`)
	fmt.Fprintln(bw, `    \tikzstyle{BDDnode}=[circle,draw=black,inner sep=0pt,minimum size=5mm]`)
	fmt.Fprintln(bw, `    % variables`)
	for k, label := range labels {
		pos := "           "
		if k > 0 {
			pos = fmt.Sprintf("below of=v%d", k)
		}
		fmt.Fprintf(bw, "    \\node[%s] (v%d) {$\\mathit{%s}$};\n", pos, k+1, tikzescape(label))
	}

	fmt.Fprintln(bw, "\n    % nodes")
	// last[r] is the identity of the last node placed on row r
	last := make(map[int]int)
	for _, v := range list {
		pos := fmt.Sprintf("v%d", v.Var)
		if prev, ok := last[v.Var]; ok {
			pos = fmt.Sprintf("n%d", prev)
		}
		fmt.Fprintf(bw, "    \\node[xshift=0cm, BDDnode, right of=%s] (n%d) {\\small $%d$};\n", pos, v.ID, v.ID)
		last[v.Var] = v.ID
	}

	fmt.Fprintln(bw, "\n    % terminals")
	if len(labels) > 0 {
		fmt.Fprintf(bw, "    \\node[draw=black, style=rectangle, below of=v%d, xshift=1cm] (n0) {$0$};\n", len(labels))
	} else {
		fmt.Fprintln(bw, `    \node[draw=black, style=rectangle] (n0) {$0$};`)
	}
	fmt.Fprintln(bw, `    \node[draw=black, style=rectangle, right of=n0] (n1) {$1$};`)

	fmt.Fprintln(bw, "\n    % edges")
	for _, v := range list {
		fmt.Fprintf(bw, "    \\draw[->,dashed] (n%d) -> (n%d);\n", v.ID, v.Low)
		fmt.Fprintf(bw, "    \\draw[->       ] (n%d) -> (n%d);\n", v.ID, v.High)
	}
	fmt.Fprintln(bw, `\end{tikzpicture}`)
	return bw.Flush()
}

// tikzescape protects the characters of a label that have a special meaning
// in LaTeX math mode.
func tikzescape(s string) string {
	res := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '_', '#', '$', '%', '&', '{', '}':
			res = append(res, '\\', c)
		default:
			res = append(res, c)
		}
	}
	return string(res)
}
