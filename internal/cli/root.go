// Copyright (c) 2024 cocococoa
//
// MIT License

// Package cli defines the commands of bddcount, a tool that counts and draws
// the independent sets and kernels of a graph.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/cocococoa/bdd"
	"github.com/cocococoa/bdd/internal/graph"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	NoMemo  bool
	Cache   int
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for bddcount.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bddcount",
		Short: "Count and draw vertex sets of a graph with BDD",
		Long: `Count the independent sets and the kernels of a graph using Binary Decision Diagrams.

A graph is either a YAML or JSON file, cycle:N for the cycle with N vertices,
or us for the map of the contiguous states of the USA.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !lo.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Cache < 0 {
				return fmt.Errorf("invalid cache size %d", opts.Cache)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print manager statistics on stderr")
	cmd.PersistentFlags().BoolVar(&opts.NoMemo, "no-memo", false, "disable the operation cache")
	cmd.PersistentFlags().IntVar(&opts.Cache, "cache", 0, "initial size of the operation cache (0 for default)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts, "dot"))
	cmd.AddCommand(NewRenderCommand(opts, "tikz"))
	cmd.AddCommand(NewDemoCommand(opts))

	return cmd
}

// manager returns a Manager configured with the global flags.
func (opts *RootOptions) manager() *bdd.Manager {
	return bdd.New(bdd.Memoize(!opts.NoMemo), bdd.Cachesize(opts.Cache))
}

// stats prints the statistics of m on the error output when verbose.
func (opts *RootOptions) stats(cmd *cobra.Command, m *bdd.Manager) {
	if opts.Verbose {
		fmt.Fprintln(cmd.ErrOrStderr(), m.Stats())
	}
}

// loadGraph resolves a graph argument: cycle:N, us, or the path of a graph
// file.
func loadGraph(arg string) (*graph.Graph, error) {
	switch {
	case arg == "us":
		return graph.UnitedStates(), nil
	case strings.HasPrefix(arg, "cycle:"):
		n, err := strconv.Atoi(strings.TrimPrefix(arg, "cycle:"))
		if err != nil {
			return nil, fmt.Errorf("invalid cycle %q: %w", arg, err)
		}
		return graph.Cycle(n)
	}
	return graph.Load(arg)
}
