// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"math/big"

	mapset "github.com/deckarep/golang-set/v2"
)

// Apply performs all of the basic binary operations on BDD, such as AND, OR
// etc. Left and right are the operands and op is the requested operation, see
// type Operator. Both operands must belong to m.
func (m *Manager) Apply(left, right Handle, op Operator) (Handle, error) {
	if err := m.checkptr(left); err != nil {
		return Handle{}, m.seterror(err, "wrong operand in call to Apply %s(left: %d, right: ...)", op, left.id)
	}
	if err := m.checkptr(right); err != nil {
		return Handle{}, m.seterror(err, "wrong operand in call to Apply %s(left: ..., right: %d)", op, right.id)
	}
	return m.handle(m.apply(left.id, right.id, op&0xF)), nil
}

// ApplyFunc is like Apply but for an operator given as a function. The
// function is only called on the four possible pairs of operands.
func (m *Manager) ApplyFunc(left, right Handle, f func(a, b bool) bool) (Handle, error) {
	return m.Apply(left, right, OperatorOf(f))
}

// apply is the Shannon expansion of op over left and right. Constants are
// ranked after every variable, so that a constant paired with a node always
// follows the branches of the node.
func (m *Manager) apply(left, right int, op Operator) int {
	// we deal with the cases where the two operands are constants
	if (left < 2) && (right < 2) {
		return op.res(left, right)
	}
	if res := op.shortcut(left, right); res >= 0 {
		return res
	}
	if m.memoize {
		if res := m.matchapply(left, right, op); res >= 0 {
			return res
		}
	}
	leftlvl := m.level(left)
	rightlvl := m.level(right)
	var res int
	switch {
	case leftlvl == rightlvl:
		low := m.apply(m.low(left), m.low(right), op)
		high := m.apply(m.high(left), m.high(right), op)
		res = m.makenode(leftlvl, low, high)
	case leftlvl < rightlvl:
		low := m.apply(m.low(left), right, op)
		high := m.apply(m.high(left), right, op)
		res = m.makenode(leftlvl, low, high)
	default:
		low := m.apply(left, m.low(right), op)
		high := m.apply(left, m.high(right), op)
		res = m.makenode(rightlvl, low, high)
	}
	if m.memoize {
		return m.setapply(left, right, op, res)
	}
	return res
}

// Not returns the negation of n. It is computed as (n xor True) using the
// same algorithm than Apply.
func (m *Manager) Not(n Handle) (Handle, error) {
	if err := m.checkptr(n); err != nil {
		return Handle{}, m.seterror(err, "wrong operand in call to Not (%d)", n.id)
	}
	return m.Apply(n, m.True(), OPxor)
}

// Ite, short for if-then-else operator, computes the BDD for the expression
// [(f & g) | (!f & h)].
func (m *Manager) Ite(f, g, h Handle) (Handle, error) {
	fg, err := m.Apply(f, g, OPand)
	if err != nil {
		return Handle{}, err
	}
	nfh, err := m.Apply(f, h, OPless)
	if err != nil {
		return Handle{}, err
	}
	return m.Apply(fg, nfh, OPor)
}

// ************************************************************

// CountAnswers computes the number of satisfying variable assignments for the
// function denoted by n, over the first totalVariables variables. The value of
// totalVariables must be equal to the number of declared variables; we return
// an error wrapping ErrCountMismatch otherwise.
//
// Variables that are not tested along a path are free and double the count,
// including the variables ranked before the root of n. Hence the result is
// 2^totalVariables for True and 0 for False. We use arbitrary-precision
// arithmetic to avoid possible overflows.
func (n Handle) CountAnswers(totalVariables int) (*big.Int, error) {
	res := big.NewInt(0)
	if n.m == nil {
		return res, ErrInvalidHandle
	}
	m := n.m
	if err := m.checkptr(n); err != nil {
		return res, m.seterror(err, "wrong operand in call to CountAnswers (%d)", n.id)
	}
	if totalVariables != len(m.labels) {
		return res, m.seterror(ErrCountMismatch, "CountAnswers(%d) with %d declared variables", totalVariables, len(m.labels))
	}
	// We compute 2^(level-1) with a bit shift for the variables above the root
	res.SetBit(res, int(m.level(n.id))-1, 1)
	satc := make(map[int]*big.Int)
	return res.Mul(res, m.satcount(n.id, satc)), nil
}

func (m *Manager) satcount(n int, satc map[int]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	// we use satc to memoize the value of satcount for each nodes
	res, ok := satc[n]
	if ok {
		return res
	}
	level := m.level(n)
	low := m.low(n)
	high := m.high(n)

	res = big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(m.level(low)-level-1), 1)
	res.Add(res, two.Mul(two, m.satcount(low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(m.level(high)-level-1), 1)
	res.Add(res, two.Mul(two, m.satcount(high, satc)))
	satc[n] = res
	return res
}

// CountNodes returns the number of distinct nodes reachable from n, including
// the constants. It returns 0 for an invalid Handle.
func (n Handle) CountNodes() int {
	if !n.Valid() {
		return 0
	}
	visited := mapset.NewThreadUnsafeSet[int]()
	stack := []int{n.id}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visited.Add(k) || k < 2 {
			continue
		}
		stack = append(stack, n.m.high(k), n.m.low(k))
	}
	return visited.Cardinality()
}

// Eval returns the value of the function denoted by n for a total assignment
// of the variables, where assignment[k] is the value of the variable of rank
// k+1.
func (n Handle) Eval(assignment []bool) (bool, error) {
	if n.m == nil {
		return false, ErrInvalidHandle
	}
	m := n.m
	if len(assignment) != len(m.labels) {
		return false, m.seterror(ErrCountMismatch, "Eval with %d values and %d declared variables", len(assignment), len(m.labels))
	}
	k := n.id
	for k > 1 {
		if assignment[m.nodes[k].level-1] {
			k = m.high(k)
		} else {
			k = m.low(k)
		}
	}
	return k == 1, nil
}

// Allsat iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length Varnum to f where
// entry k is either 0 if the variable of rank k+1 is false, 1 if it is true,
// and -1 if it is a don't care. The slice is reused between calls. We stop and
// return an error if f returns an error at some point.
//
// The following is an example of a callback handler that counts the number of
// possible assignments (such that we do not count don't care twice):
//
//	acc := new(int)
//	n.Allsat(func(varset []int) error {
//		*acc++
//		return nil
//	})
func (n Handle) Allsat(f func([]int) error) error {
	if !n.Valid() {
		return ErrInvalidHandle
	}
	prof := make([]int, len(n.m.labels))
	for k := range prof {
		prof[k] = -1
	}
	return n.m.allsat(n.id, prof, f)
}

func (m *Manager) allsat(n int, prof []int, f func([]int) error) error {
	if n == 1 {
		return f(prof)
	}
	if n == 0 {
		return nil
	}
	level := m.level(n)
	for i, child := range [2]int{m.low(n), m.high(n)} {
		if child == 0 {
			continue
		}
		prof[level-1] = i
		for v := m.level(child) - 1; v > level; v-- {
			prof[v-1] = -1
		}
		if err := m.allsat(child, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// ************************************************************

// NodeInfo describes a non-constant node during a Walk. Low and High are the
// identities of the successors, with 0 and 1 for the constants False and
// True.
type NodeInfo struct {
	ID    int    // Identity of the node
	Var   int    // Rank of the variable tested by the node
	Label string // Label of the variable
	Low   int    // Identity of the false branch
	High  int    // Identity of the true branch
}

// Walk calls f once on every non-constant node reachable from n. Nodes are
// visited in depth-first order, the false branch first, starting with n. We
// stop and return an error if f returns an error at some point.
func (n Handle) Walk(f func(NodeInfo) error) error {
	if !n.Valid() {
		return ErrInvalidHandle
	}
	m := n.m
	visited := mapset.NewThreadUnsafeSet[int]()
	stack := []int{n.id}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if k < 2 || !visited.Add(k) {
			continue
		}
		v := m.nodes[k]
		if err := f(NodeInfo{ID: k, Var: int(v.level), Label: m.labels[v.level-1], Low: v.low, High: v.high}); err != nil {
			return err
		}
		stack = append(stack, v.high, v.low)
	}
	return nil
}

// String returns a one-line description of n.
func (n Handle) String() string {
	if !n.Valid() {
		return "Error"
	}
	switch n.id {
	case 0:
		return "False"
	case 1:
		return "True"
	}
	v := n.m.nodes[n.id]
	return fmt.Sprintf("(%d[%d] ? %d : %d)", n.id, v.level, v.low, v.high)
}
