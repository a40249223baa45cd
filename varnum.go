// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"log"
)

// DeclareVariable appends a new variable, with the given label, at the end of
// the variable ordering and returns the BDD for "the variable is true". The
// rank of the variable is the number of variables declared so far, starting
// from 1. Labels need not be unique; variables are never removed.
func (m *Manager) DeclareVariable(label string) Handle {
	if int32(len(m.labels)) >= _MAXVAR {
		panic(fmt.Errorf("cannot declare variable %q, already %d variables: %w", label, len(m.labels), ErrInvariantViolation))
	}
	m.labels = append(m.labels, label)
	rank := int32(len(m.labels))
	if _LOGLEVEL > 1 {
		log.Printf("declare variable %d (%s)\n", rank, label)
	}
	return m.handle(m.makenode(rank, 0, 1))
}

// Varnum returns the number of declared variables.
func (m *Manager) Varnum() int {
	return len(m.labels)
}

// Variables returns the labels of the declared variables, in rank order.
func (m *Manager) Variables() []string {
	res := make([]string, len(m.labels))
	copy(res, m.labels)
	return res
}

// Label returns the label of the variable with the given rank.
func (m *Manager) Label(rank int) (string, error) {
	if rank < 1 || rank > len(m.labels) {
		return "", m.seterror(ErrUnknownVariable, "label of variable %d", rank)
	}
	return m.labels[rank-1], nil
}

// Ithvar returns a BDD representing the variable with the given rank. The
// rank must be in the interval [1..Varnum].
func (m *Manager) Ithvar(rank int) (Handle, error) {
	if rank < 1 || rank > len(m.labels) {
		return Handle{}, m.seterror(ErrUnknownVariable, "Ithvar(%d)", rank)
	}
	return m.handle(m.makenode(int32(rank), 0, 1)), nil
}

// NIthvar returns a BDD representing the negation of the variable with the
// given rank. See Ithvar for further info.
func (m *Manager) NIthvar(rank int) (Handle, error) {
	if rank < 1 || rank > len(m.labels) {
		return Handle{}, m.seterror(ErrUnknownVariable, "NIthvar(%d)", rank)
	}
	return m.handle(m.makenode(int32(rank), 1, 0)), nil
}
