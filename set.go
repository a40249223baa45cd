// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// And returns the logical 'and' of two BDD.
func (m *Manager) And(x, y Handle) (Handle, error) {
	return m.Apply(x, y, OPand)
}

// Or returns the logical 'or' of two BDD.
func (m *Manager) Or(x, y Handle) (Handle, error) {
	return m.Apply(x, y, OPor)
}

// Xor returns the logical 'exclusive or' of two BDD.
func (m *Manager) Xor(x, y Handle) (Handle, error) {
	return m.Apply(x, y, OPxor)
}

// Eq returns the logical 'bi-implication' between two BDD.
func (m *Manager) Eq(x, y Handle) (Handle, error) {
	return m.Apply(x, y, OPbiimp)
}

// Imp returns the logical 'implication' between two BDD.
func (m *Manager) Imp(x, y Handle) (Handle, error) {
	return m.Apply(x, y, OPimp)
}

// Ands returns the logical 'and' of a sequence of BDD. The conjunction of an
// empty sequence is True.
func (m *Manager) Ands(n ...Handle) (Handle, error) {
	return m.fold(m.True(), OPand, n)
}

// Ors returns the logical 'or' of a sequence of BDD. The disjunction of an
// empty sequence is False.
func (m *Manager) Ors(n ...Handle) (Handle, error) {
	return m.fold(m.False(), OPor, n)
}

func (m *Manager) fold(unit Handle, op Operator, n []Handle) (Handle, error) {
	if len(n) == 0 {
		return unit, nil
	}
	res := n[0]
	if err := m.checkptr(res); err != nil {
		return Handle{}, m.seterror(err, "wrong operand in call to %s (0: %d)", op, res.id)
	}
	for _, v := range n[1:] {
		var err error
		if res, err = m.Apply(res, v, op); err != nil {
			return Handle{}, err
		}
	}
	return res, nil
}

// Equal tests equivalence between two BDD. Since diagrams are canonical, this
// is a comparison between identities.
func (m *Manager) Equal(x, y Handle) bool {
	return x.m == m && x == y
}
