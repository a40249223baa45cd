// Copyright (c) 2024 cocococoa
//
// MIT License

// Package constraint builds the BDD of classical vertex-set constraints over a
// graph, with one variable per vertex: a set of vertices is the assignment
// where exactly the variables of its members are true.
package constraint

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/cocococoa/bdd"
	"github.com/cocococoa/bdd/internal/graph"
)

// Vars maps the vertices of a graph to the variables of a Manager.
type Vars map[string]bdd.Handle

// Variables declares one variable per vertex of g, in vertex order, labelled
// with the ID of the vertex.
func Variables(m *bdd.Manager, g *graph.Graph) Vars {
	return lo.SliceToMap(g.Vertices(), func(v string) (string, bdd.Handle) {
		return v, m.DeclareVariable(v)
	})
}

func (vars Vars) lookup(v string) (bdd.Handle, error) {
	h, ok := vars[v]
	if !ok {
		return bdd.Handle{}, fmt.Errorf("no variable for vertex %q: %w", v, graph.ErrVertexNotFound)
	}
	return h, nil
}

// Independence returns the BDD of the independent sets of g, that is the sets
// without two adjacent vertices.
func Independence(m *bdd.Manager, g *graph.Graph, vars Vars) (bdd.Handle, error) {
	conflict := m.False()
	for _, e := range g.Edges() {
		u, err := vars.lookup(e[0])
		if err != nil {
			return bdd.Handle{}, err
		}
		v, err := vars.lookup(e[1])
		if err != nil {
			return bdd.Handle{}, err
		}
		uv, err := m.And(u, v)
		if err != nil {
			return bdd.Handle{}, err
		}
		if conflict, err = m.Or(conflict, uv); err != nil {
			return bdd.Handle{}, err
		}
	}
	return m.Not(conflict)
}

// Domination returns the BDD of the dominating sets of g, where every vertex
// is in the set or adjacent to a member of the set.
func Domination(m *bdd.Manager, g *graph.Graph, vars Vars) (bdd.Handle, error) {
	res := m.True()
	for _, v := range g.Vertices() {
		neighbors, err := g.Neighbors(v)
		if err != nil {
			return bdd.Handle{}, err
		}
		closed := make([]bdd.Handle, 0, len(neighbors)+1)
		for _, u := range append([]string{v}, neighbors...) {
			h, err := vars.lookup(u)
			if err != nil {
				return bdd.Handle{}, err
			}
			closed = append(closed, h)
		}
		covered, err := m.Ors(closed...)
		if err != nil {
			return bdd.Handle{}, err
		}
		if res, err = m.And(res, covered); err != nil {
			return bdd.Handle{}, err
		}
	}
	return res, nil
}

// Kernel returns the BDD of the kernels of g, the sets that are both
// independent and dominating.
func Kernel(m *bdd.Manager, g *graph.Graph, vars Vars) (bdd.Handle, error) {
	independence, err := Independence(m, g, vars)
	if err != nil {
		return bdd.Handle{}, err
	}
	domination, err := Domination(m, g, vars)
	if err != nil {
		return bdd.Handle{}, err
	}
	return m.And(independence, domination)
}

// Members returns the vertices of g whose variable is true in assignment,
// as passed to the callback of Allsat; don't care values count as false.
func Members(g *graph.Graph, vars Vars, assignment []int) []string {
	return lo.Filter(g.Vertices(), func(v string, _ int) bool {
		h, ok := vars[v]
		return ok && assignment[h.Var()-1] == 1
	})
}
