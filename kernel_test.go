// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireInvariantPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %v", r)
		require.ErrorIs(t, err, ErrInvariantViolation)
	}()
	f()
}

func TestConstants(t *testing.T) {
	m := New()
	assert.Equal(t, 0, m.False().ID())
	assert.Equal(t, 1, m.True().ID())
	assert.True(t, m.True().IsTrue())
	assert.True(t, m.False().IsFalse())
	assert.True(t, m.From(true).IsConst())
	assert.Equal(t, m.False(), m.From(false))
	assert.Len(t, m.nodes, 2)
	assert.Empty(t, m.unique)

	m.DeclareVariable("a")
	m.DeclareVariable("b")
	// constants stay the same, and are still ranked after every variable
	assert.Equal(t, 1, m.True().ID())
	assert.Equal(t, 3, m.True().Var())
	assert.Equal(t, 3, m.False().Var())
}

func TestMakenodeCanonicity(t *testing.T) {
	m := New(Varnum(3))
	x3 := m.makenode(3, 0, 1)
	n1 := m.makenode(2, 0, x3)
	produced := m.produced
	n2 := m.makenode(2, 0, x3)
	assert.Equal(t, n1, n2)
	assert.Equal(t, produced, m.produced, "no node allocated for an existing triple")

	n3 := m.makenode(2, x3, 0)
	assert.NotEqual(t, n1, n3)
	assert.Equal(t, produced+1, m.produced)
}

func TestMakenodeReduction(t *testing.T) {
	m := New(Varnum(3))
	x3 := m.makenode(3, 0, 1)
	for level := int32(1); level <= 2; level++ {
		produced := m.produced
		assert.Equal(t, x3, m.makenode(level, x3, x3))
		assert.Equal(t, 1, m.makenode(level, 1, 1))
		assert.Equal(t, 0, m.makenode(level, 0, 0))
		assert.Equal(t, produced, m.produced)
	}
}

func TestMakenodeInvariants(t *testing.T) {
	m := New(Varnum(2))
	x1 := m.makenode(1, 0, 1)
	// unknown variables
	requireInvariantPanic(t, func() { m.makenode(3, 0, 1) })
	requireInvariantPanic(t, func() { m.makenode(0, 0, 1) })
	// a child testing a smaller or equal rank
	requireInvariantPanic(t, func() { m.makenode(2, x1, 1) })
	requireInvariantPanic(t, func() { m.makenode(1, x1, 0) })
	// the reduction rule is checked after the rank of the variable
	requireInvariantPanic(t, func() { m.makenode(5, 1, 1) })
}

func TestIdentityPermanence(t *testing.T) {
	m := New()
	a := m.DeclareVariable("a")
	b := m.DeclareVariable("b")
	ab, err := m.And(a, b)
	require.NoError(t, err)
	before := m.nodes[ab.ID()]
	for i := 0; i < 5; i++ {
		c := m.DeclareVariable("c")
		_, err := m.Or(ab, c)
		require.NoError(t, err)
	}
	assert.Equal(t, before, m.nodes[ab.ID()])
	for k, v := range m.nodes[2:] {
		// identities are dense and every internal node is in the unique table
		id, ok := m.unique[nodekey{v.level, v.low, v.high}]
		require.True(t, ok)
		assert.Equal(t, k+2, id)
	}
}

func TestDeclareVariable(t *testing.T) {
	m := New()
	a := m.DeclareVariable("a")
	b := m.DeclareVariable("a")
	assert.NotEqual(t, a, b, "labels need not be unique")
	assert.Equal(t, 1, a.Var())
	assert.Equal(t, 2, b.Var())
	assert.True(t, a.Low().IsFalse())
	assert.True(t, a.High().IsTrue())
	assert.Equal(t, 2, m.Varnum())
	assert.Equal(t, []string{"a", "a"}, m.Variables())

	x, err := m.Ithvar(2)
	require.NoError(t, err)
	assert.Equal(t, b, x)
	nx, err := m.NIthvar(2)
	require.NoError(t, err)
	assert.Equal(t, nx, lo.Must(m.Not(b)))

	_, err = m.Ithvar(3)
	assert.ErrorIs(t, err, ErrUnknownVariable)
	_, err = m.Label(0)
	assert.ErrorIs(t, err, ErrUnknownVariable)
	label, err := m.Label(1)
	require.NoError(t, err)
	assert.Equal(t, "a", label)
}

func TestVarnumOption(t *testing.T) {
	m := New(Varnum(4), Nodesize(100), Cachesize(50), Cacheratio(0))
	assert.Equal(t, 4, m.Varnum())
	assert.Equal(t, []string{"x1", "x2", "x3", "x4"}, m.Variables())
	assert.Equal(t, 53, len(m.table), "cache size is rounded to a prime")
	assert.Equal(t, 6, len(m.nodes))
}

func TestNextPrime(t *testing.T) {
	tests := map[int]int{0: 3, 2: 3, 3: 3, 9: 11, 24: 29, 50: 53, 120: 127, 169: 173, 10000: 10007}
	for n, want := range tests {
		assert.Equal(t, want, nextPrime(n), "nextPrime(%d)", n)
	}
}
