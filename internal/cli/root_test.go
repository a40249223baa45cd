// Copyright (c) 2024 cocococoa
//
// MIT License

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its standard and error
// outputs.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "bddcount", cmd.Use)
	assert.Contains(t, cmd.Long, "kernels")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"count", "dot", "tikz", "demo"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	for _, name := range []string{"no-memo", "cache", "format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestCount(t *testing.T) {
	out, _, err := execute(t, "count", "cycle:6")
	require.NoError(t, err)
	assert.Contains(t, out, "graph:       6 vertices, 6 edges")
	assert.Contains(t, out, "independent: 18 (")
	assert.Contains(t, out, "kernels:     5 (")
}

func TestCountNoMemo(t *testing.T) {
	out, _, err := execute(t, "count", "--no-memo", "--cache", "11", "cycle:10")
	require.NoError(t, err)
	assert.Contains(t, out, "independent: 123 (")
	assert.Contains(t, out, "kernels:     17 (")
}

func TestCountJSON(t *testing.T) {
	out, _, err := execute(t, "count", "--format", "json", "../graph/testdata/c6.yaml")
	require.NoError(t, err)
	var res CountResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 6, res.Vertices)
	assert.Equal(t, 6, res.Edges)
	assert.Equal(t, "18", res.Independent.Count.String())
	assert.Equal(t, "5", res.Kernel.Count.String())
	assert.Greater(t, res.Kernel.Nodes, 2)
}

func TestCountFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"edges": [["x", "y"], ["y", "z"], ["z", "x"]]}`), 0o600))
	out, _, err := execute(t, "count", path)
	require.NoError(t, err)
	assert.Contains(t, out, "independent: 4 (")
	assert.Contains(t, out, "kernels:     3 (")
}

func TestVerbose(t *testing.T) {
	out, errOut, err := execute(t, "count", "-v", "cycle:4")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Varnum:     4")
	assert.NotContains(t, out, "Varnum")
}

func TestErrors(t *testing.T) {
	tests := [][]string{
		{"count"},
		{"count", "cycle:x"},
		{"count", "cycle:2"},
		{"count", "missing.yaml"},
		{"count", "--format", "xml", "cycle:4"},
		{"count", "--cache", "-1", "cycle:4"},
		{"dot", "graph.txt"},
		{"demo", "extra"},
	}
	for _, args := range tests {
		_, _, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestDot(t *testing.T) {
	out, _, err := execute(t, "dot", "cycle:4")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, `<FONT POINT-SIZE="20">v4</FONT>`)

	kernel, _, err := execute(t, "dot", "--kernel", "cycle:4")
	require.NoError(t, err)
	assert.NotEqual(t, out, kernel)
}

func TestTikz(t *testing.T) {
	out, _, err := execute(t, "tikz", "-k", "cycle:3")
	require.NoError(t, err)
	assert.Contains(t, out, `\begin{tikzpicture}`)
	assert.Contains(t, out, `(v3) {$\mathit{v3}$}`)
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)
	golden, err := os.ReadFile("../../render/testdata/golden/demo_tikz.golden")
	require.NoError(t, err)
	assert.Equal(t, string(golden), out)
}
