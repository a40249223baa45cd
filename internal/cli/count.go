// Copyright (c) 2024 cocococoa
//
// MIT License

package cli

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/cocococoa/bdd"
	"github.com/cocococoa/bdd/internal/constraint"
)

// CountResult is the output of the count command.
type CountResult struct {
	Vertices    int        `json:"vertices"`
	Edges       int        `json:"edges"`
	Independent *SetResult `json:"independent"`
	Kernel      *SetResult `json:"kernel"`
}

// SetResult describes the BDD of a family of vertex sets.
type SetResult struct {
	Count *big.Int `json:"count"`
	Nodes int      `json:"nodes"`
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <graph>",
		Short: "Count the independent sets and kernels of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCount(opts *RootOptions, arg string, cmd *cobra.Command) error {
	g, err := loadGraph(arg)
	if err != nil {
		return err
	}
	m := opts.manager()
	vars := constraint.Variables(m, g)
	independence, err := constraint.Independence(m, g, vars)
	if err != nil {
		return err
	}
	kernel, err := constraint.Kernel(m, g, vars)
	if err != nil {
		return err
	}
	res := CountResult{Vertices: g.VertexCount(), Edges: g.EdgeCount()}
	if res.Independent, err = describe(m, independence); err != nil {
		return err
	}
	if res.Kernel, err = describe(m, kernel); err != nil {
		return err
	}
	opts.stats(cmd, m)

	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		return json.NewEncoder(w).Encode(res)
	}
	fmt.Fprintf(w, "graph:       %d vertices, %d edges\n", res.Vertices, res.Edges)
	fmt.Fprintf(w, "independent: %s (%d nodes)\n", res.Independent.Count, res.Independent.Nodes)
	fmt.Fprintf(w, "kernels:     %s (%d nodes)\n", res.Kernel.Count, res.Kernel.Nodes)
	return nil
}

func describe(m *bdd.Manager, h bdd.Handle) (*SetResult, error) {
	count, err := h.CountAnswers(m.Varnum())
	if err != nil {
		return nil, err
	}
	return &SetResult{Count: count, Nodes: h.CountNodes()}, nil
}
