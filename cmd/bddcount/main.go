// Copyright (c) 2024 cocococoa
//
// MIT License

// Command bddcount counts and draws the independent sets and kernels of a
// graph. Run bddcount --help for the list of commands.
package main

import (
	"os"

	"github.com/cocococoa/bdd/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
