// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/rand"
	"testing"

	"github.com/dalzilio/rudd"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buddy builds the formula f with the BuDDy-like implementation of package
// rudd, where variables are numbered from 0. Operators are expanded into a
// disjunction of minterms.
func (f *formula) buddy(b *rudd.BDD) rudd.Node {
	switch {
	case f.not:
		return b.Not(f.left.buddy(b))
	case f.left == nil:
		return b.Ithvar(f.rank - 1)
	}
	l, r := f.left.buddy(b), f.right.buddy(b)
	lit := func(n rudd.Node, v bool) rudd.Node {
		if v {
			return n
		}
		return b.Not(n)
	}
	res := b.False()
	for _, x := range []bool{false, true} {
		for _, y := range []bool{false, true} {
			if f.op.Eval(x, y) {
				res = b.Or(res, b.And(lit(l, x), lit(r, y)))
			}
		}
	}
	return res
}

func TestCountAgainstBuddy(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		varnum := 3 + r.Intn(10)
		f := randomFormula(r, varnum, 7)

		b, err := rudd.New(varnum, rudd.Nodesize(1000), rudd.Cachesize(500))
		require.NoError(t, err)
		expected := b.Satcount(f.buddy(b))

		m := New(Varnum(varnum))
		vars := lo.Times(varnum, func(k int) Handle { return lo.Must(m.Ithvar(k + 1)) })
		n, err := f.build(m, vars)
		require.NoError(t, err)
		actual, err := n.CountAnswers(varnum)
		require.NoError(t, err)
		assert.Equal(t, expected.String(), actual.String(), "%s", f)
	}
}
