// Copyright (c) 2024 cocococoa
//
// MIT License

package cli

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cocococoa/bdd"
	"github.com/cocococoa/bdd/internal/constraint"
	"github.com/cocococoa/bdd/render"
)

var renderers = map[string]func(io.Writer, bdd.Handle) error{
	"dot":  render.Dot,
	"tikz": render.TikZ,
}

// RenderOptions holds flags for the dot and tikz commands.
type RenderOptions struct {
	Kernel bool
}

// NewRenderCommand creates a command that draws the BDD of the independent
// sets of a graph, with the renderer of the given name (dot or tikz).
func NewRenderCommand(rootOpts *RootOptions, name string) *cobra.Command {
	opts := &RenderOptions{}
	cmd := &cobra.Command{
		Use:   name + " <graph>",
		Short: fmt.Sprintf("Output the BDD of the independent sets of a graph in %s format", name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, opts, name, args[0], cmd)
		},
	}
	cmd.Flags().BoolVarP(&opts.Kernel, "kernel", "k", false, "draw the kernels instead of the independent sets")
	return cmd
}

func runRender(rootOpts *RootOptions, opts *RenderOptions, name, arg string, cmd *cobra.Command) error {
	r, ok := renderers[name]
	if !ok {
		return fmt.Errorf("unknown renderer %q, expected one of %v", name, lo.Keys(renderers))
	}
	g, err := loadGraph(arg)
	if err != nil {
		return err
	}
	m := rootOpts.manager()
	vars := constraint.Variables(m, g)
	build := constraint.Independence
	if opts.Kernel {
		build = constraint.Kernel
	}
	h, err := build(m, g, vars)
	if err != nil {
		return err
	}
	rootOpts.stats(cmd, m)
	return r(cmd.OutOrStdout(), h)
}
