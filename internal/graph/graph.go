// Copyright (c) 2024 cocococoa
//
// MIT License

// Package graph defines a small undirected simple graph with labelled
// vertices, used to build the constraints of package constraint, together
// with a few fixtures and a loader for graph files.
//
// Adjacency is stored in a lvlath core.Graph. The wrapper only records the
// order in which vertices are added, so that the variable ordering derived
// from a Graph is reproducible.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
)

// Sentinel errors for graph operations. All but ErrDuplicateVertex are the
// ones of package core.
var (
	// ErrEmptyVertexID indicates that the provided vertex has an empty ID.
	ErrEmptyVertexID = core.ErrEmptyVertexID

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = core.ErrVertexNotFound

	// ErrDuplicateVertex indicates that a vertex with the same ID already exists.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = core.ErrLoopNotAllowed
)

// Graph is an undirected graph without loops or parallel edges.
type Graph struct {
	g     *core.Graph
	ids   []string       // vertices, in insertion order
	index map[string]int // position of each vertex in ids
}

// New returns an empty Graph.
func New() *Graph {
	return wrap(core.NewGraph(), nil)
}

// wrap returns a Graph over g whose vertices, in order, are ids.
func wrap(g *core.Graph, ids []string) *Graph {
	res := &Graph{g: g, ids: ids, index: make(map[string]int, len(ids))}
	for k, id := range ids {
		res.index[id] = k
	}
	return res
}

// Core returns the underlying lvlath graph. It must not be modified.
func (g *Graph) Core() *core.Graph {
	return g.g
}

// AddVertex appends a vertex with the given ID.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if g.g.HasVertex(id) {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	if err := g.g.AddVertex(id); err != nil {
		return err
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	return nil
}

// AddEdge adds an edge between two existing vertices. Adding an edge that is
// already in the graph, in either direction, is a no-op.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// core.AddEdge creates missing ends, we do not.
	for _, v := range []string{from, to} {
		if !g.g.HasVertex(v) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, v)
		}
	}
	_, err := g.g.AddEdge(from, to, 0)
	switch {
	case errors.Is(err, core.ErrMultiEdgeNotAllowed):
		return nil
	case err != nil:
		return fmt.Errorf("%w: %q", err, from)
	}
	return nil
}

// HasEdge reports whether there is an edge between from and to.
func (g *Graph) HasEdge(from, to string) bool {
	return g.g.HasEdge(from, to)
}

// HasVertex reports whether the vertex ID exists.
func (g *Graph) HasVertex(id string) bool {
	return g.g.HasVertex(id)
}

// Vertices returns the IDs of the vertices, in insertion order.
func (g *Graph) Vertices() []string {
	res := make([]string, len(g.ids))
	copy(res, g.ids)
	return res
}

// Neighbors returns the IDs of the vertices adjacent to id, in vertex order.
func (g *Graph) Neighbors(id string) ([]string, error) {
	res, err := g.g.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, id)
	}
	sort.Slice(res, func(i, j int) bool { return g.index[res[i]] < g.index[res[j]] })
	return res, nil
}

// Edges returns the edges of the graph. Each edge is listed once, with its
// two ends in vertex order, and edges are sorted by their first then their
// second end.
func (g *Graph) Edges() [][2]string {
	res := make([][2]string, 0, g.g.EdgeCount())
	for k, u := range g.ids {
		next, _ := g.Neighbors(u)
		for _, v := range next {
			if g.index[v] > k {
				res = append(res, [2]string{u, v})
			}
		}
	}
	return res
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.ids)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return g.g.EdgeCount()
}
