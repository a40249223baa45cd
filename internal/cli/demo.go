// Copyright (c) 2024 cocococoa
//
// MIT License

package cli

import (
	"github.com/spf13/cobra"

	"github.com/cocococoa/bdd"
	"github.com/cocococoa/bdd/render"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw the BDD of (a <=> b) & (c <=> d) in TikZ",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := rootOpts.manager()
			h, err := demo(m)
			if err != nil {
				return err
			}
			rootOpts.stats(cmd, m)
			return render.TikZ(cmd.OutOrStdout(), h)
		},
	}
	return cmd
}

func demo(m *bdd.Manager) (bdd.Handle, error) {
	a := m.DeclareVariable("a")
	b := m.DeclareVariable("b")
	c := m.DeclareVariable("c")
	d := m.DeclareVariable("d")
	ab, err := m.Eq(a, b)
	if err != nil {
		return bdd.Handle{}, err
	}
	cd, err := m.Eq(c, d)
	if err != nil {
		return bdd.Handle{}, err
	}
	return m.And(ab, cd)
}
