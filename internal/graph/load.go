// Copyright (c) 2024 cocococoa
//
// MIT License

package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a graph file.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// rawGraph is the content of a graph file. Vertices that only appear in
// edges are added after the listed ones, in order of appearance. Scalar IDs,
// such as numbers, are read as strings.
type rawGraph struct {
	Vertices []string   `mapstructure:"vertices"`
	Edges    [][]string `mapstructure:"edges"`
}

// FormatOf returns the format of a graph file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("graph: unknown format for file %q", path)
}

// Load reads a graph file, in YAML or JSON, such as:
//
//	vertices: [a, b, c]
//	edges:
//	  - [a, b]
//	  - [b, c]
func Load(path string) (*Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph file: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads a graph in the given format.
func Decode(r io.Reader, format Format) (*Graph, error) {
	var content map[string]any
	switch format {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&content); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case JSON:
		if err := json.NewDecoder(r).Decode(&content); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("graph: unknown format %q", format)
	}

	var raw rawGraph
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(content); err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}
	return raw.build()
}

func (raw rawGraph) build() (*Graph, error) {
	g := New()
	for _, v := range raw.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	edges := make([][2]string, 0, len(raw.Edges))
	for k, e := range raw.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("graph: edge %d has %d ends", k, len(e))
		}
		for _, v := range e {
			if v == "" {
				return nil, fmt.Errorf("graph: edge %d: %w", k, ErrEmptyVertexID)
			}
			if !g.HasVertex(v) {
				if err := g.AddVertex(v); err != nil {
					return nil, err
				}
			}
		}
		edges = append(edges, [2]string{e[0], e[1]})
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}
