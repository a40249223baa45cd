// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"errors"
	"fmt"
)

// _MAXVAR is the maximal number of variables in a Manager. Levels are stored
// as int32 and the two constants use level Varnum()+1.
const _MAXVAR int32 = 0x1FFFFFFF

// _DEFAULTCACHESIZE is the initial number of entries in the apply cache.
const _DEFAULTCACHESIZE int = 10000

// _DEFAULTCACHERATIO is the default number of cache entries for every 100
// nodes in the node table.
const _DEFAULTCACHERATIO int = 25

// _DEFAULTNODESIZE is the initial capacity of the node table.
const _DEFAULTNODESIZE int = 1024

var (
	// ErrInvalidHandle is returned when an operation receives the zero Handle
	// or a Handle whose identity is unknown to its Manager.
	ErrInvalidHandle = errors.New("bdd: invalid handle")

	// ErrCrossManager is returned when handles built by two different
	// managers are combined.
	ErrCrossManager = errors.New("bdd: handles belong to different managers")

	// ErrCountMismatch is returned when the number of variables given by the
	// caller disagrees with the size of the variable registry.
	ErrCountMismatch = errors.New("bdd: variable count mismatch")

	// ErrUnknownVariable is returned when a rank outside [1..Varnum] is used.
	ErrUnknownVariable = errors.New("bdd: unknown variable")

	// ErrInvariantViolation is the value wrapped by the panics raised when a
	// node would break the ordering of the diagram. It denotes a programming
	// error and is never returned.
	ErrInvariantViolation = errors.New("bdd: invariant violation")
)

// makenode is the reduction primitive. It returns the identity of the unique
// node (level, low, high), creating it if needed. Every node of a Manager is
// built by this function.
func (m *Manager) makenode(level int32, low, high int) int {
	m.uniqueAccess++
	if level < 1 || int(level) > len(m.labels) {
		panic(fmt.Errorf("makenode(%d, %d, %d) with %d variables: %w", level, low, high, len(m.labels), ErrInvariantViolation))
	}
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low
	}
	if m.level(low) <= level || m.level(high) <= level {
		panic(fmt.Errorf("makenode(%d, %d[%d], %d[%d]) breaks variable order: %w",
			level, low, m.level(low), high, m.level(high), ErrInvariantViolation))
	}
	// otherwise try to find an existing node using the unique table
	if res, ok := m.nodehash(level, low, high); ok {
		m.uniqueHit++
		return res
	}
	m.uniqueMiss++
	res := m.setnode(level, low, high)
	m.cachegrow(len(m.nodes))
	return res
}
