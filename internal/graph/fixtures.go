// Copyright (c) 2024 cocococoa
//
// MIT License

package graph

import (
	"fmt"

	"github.com/katalvlaran/lvlath/builder"
)

// vertexID labels the i-th vertex of a fixture, counting from v1.
func vertexID(i int) string {
	return fmt.Sprintf("v%d", i+1)
}

// Cycle returns the cycle with n vertices, labelled v1 to vn, with an edge
// between v(i) and v(i+1) and between vn and v1. We return an error wrapping
// builder.ErrTooFewVertices if n is less than 3.
func Cycle(n int) (*Graph, error) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(vertexID)},
		builder.Cycle(n))
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = vertexID(i)
	}
	return wrap(g, ids), nil
}

// UnitedStates returns the adjacency graph of the 48 contiguous states of the
// USA and the District of Columbia. Vertices are listed from west to east.
func UnitedStates() *Graph {
	g, err := FromEdges(usStates, usBorders)
	if err != nil {
		panic(err)
	}
	return g
}

// FromEdges returns the graph with the given vertices and edges.
func FromEdges(vertices []string, edges [][2]string) (*Graph, error) {
	g := New()
	for _, v := range vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

var usStates = []string{
	"CA", "WA", "OR", "NV", "ID", "UT", "AZ", "MT", "WY", "CO", "NM", "ND", "SD", "NE", "KS",
	"OK", "TX", "MN", "IA", "MO", "AR", "LA", "WI", "IL", "MS", "MI", "IN", "KY", "TN", "AL",
	"OH", "WV", "VA", "GA", "FL", "PA", "MD", "DC", "NC", "SC", "VT", "NY", "NJ", "DE", "NH",
	"MA", "CT", "ME", "RI",
}

var usBorders = [][2]string{
	{"CA", "OR"}, {"CA", "NV"}, {"CA", "AZ"},
	{"WA", "OR"}, {"WA", "ID"},
	{"OR", "NV"}, {"OR", "ID"},
	{"NV", "ID"}, {"NV", "UT"}, {"NV", "AZ"},
	{"ID", "UT"}, {"ID", "MT"}, {"ID", "WY"},
	{"UT", "AZ"}, {"UT", "WY"}, {"UT", "CO"},
	{"AZ", "NM"},
	{"MT", "WY"}, {"MT", "ND"}, {"MT", "SD"},
	{"WY", "CO"}, {"WY", "SD"}, {"WY", "NE"},
	{"CO", "NM"}, {"CO", "NE"}, {"CO", "KS"}, {"CO", "OK"},
	{"NM", "OK"}, {"NM", "TX"},
	{"ND", "SD"}, {"ND", "MN"},
	{"SD", "NE"}, {"SD", "MN"}, {"SD", "IA"},
	{"NE", "KS"}, {"NE", "IA"}, {"NE", "MO"},
	{"KS", "OK"}, {"KS", "MO"},
	{"OK", "TX"}, {"OK", "MO"}, {"OK", "AR"},
	{"TX", "AR"}, {"TX", "LA"},
	{"MN", "IA"}, {"MN", "WI"},
	{"IA", "MO"}, {"IA", "WI"}, {"IA", "IL"},
	{"MO", "AR"}, {"MO", "IL"}, {"MO", "KY"}, {"MO", "TN"},
	{"AR", "LA"}, {"AR", "MS"}, {"AR", "TN"},
	{"LA", "MS"},
	{"WI", "IL"}, {"WI", "MI"},
	{"IL", "IN"}, {"IL", "KY"},
	{"MS", "TN"}, {"MS", "AL"},
	{"MI", "IN"}, {"MI", "OH"},
	{"IN", "KY"}, {"IN", "OH"},
	{"KY", "TN"}, {"KY", "OH"}, {"KY", "WV"}, {"KY", "VA"},
	{"TN", "AL"}, {"TN", "VA"}, {"TN", "GA"}, {"TN", "NC"},
	{"AL", "GA"}, {"AL", "FL"},
	{"OH", "WV"}, {"OH", "PA"},
	{"WV", "VA"}, {"WV", "PA"}, {"WV", "MD"},
	{"VA", "MD"}, {"VA", "DC"}, {"VA", "NC"},
	{"GA", "FL"}, {"GA", "NC"}, {"GA", "SC"},
	{"PA", "MD"}, {"PA", "NY"}, {"PA", "NJ"}, {"PA", "DE"},
	{"MD", "DC"}, {"MD", "DE"},
	{"NC", "SC"},
	{"VT", "NY"}, {"VT", "NH"}, {"VT", "MA"},
	{"NY", "NJ"}, {"NY", "MA"}, {"NY", "CT"},
	{"NJ", "DE"},
	{"NH", "MA"}, {"NH", "ME"},
	{"MA", "CT"}, {"MA", "RI"},
	{"CT", "RI"},
}
