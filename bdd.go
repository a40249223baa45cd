// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Manager owns the node table, the unique table, the variable registry and
// the operation cache of a family of BDD. All the Handle values returned by a
// Manager share its lifetime. A Manager is not safe for concurrent use.
type Manager struct {
	id     uuid.UUID // Identifier used to tag errors and statistics
	labels []string  // Variable registry; the rank of labels[k] is k+1
	tables           // Node store and unique table
	applycache       // Cache for apply results
	cacheStat        // Information about the caches
	configs          // Configurable parameters
	error            // Error status to help chain operations
}

// Handle is a reference to a node of a Manager. It represents the atomic unit
// of interactions and computations with a Manager. Two handles of the same
// Manager are equal (with ==) if and only if they denote the same Boolean
// function. The zero Handle is not valid.
type Handle struct {
	m  *Manager
	id int
}

// New returns a Manager with only the two constant nodes and the variables
// requested with the Varnum option, if any. Options are used to configure the
// size of the tables and the operation cache.
func New(options ...func(*configs)) *Manager {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	m := &Manager{
		id:      uuid.New(),
		tables:  maketables(c.nodesize),
		configs: *c,
	}
	m.cacheinit(c.cachesize)
	if _LOGLEVEL > 0 {
		log.Printf("new manager %s (nodesize: %d, cachesize: %d)\n", m.id, c.nodesize, len(m.table))
	}
	for k := 1; k <= c.varnum; k++ {
		m.DeclareVariable(fmt.Sprintf("x%d", k))
	}
	return m
}

// ID returns the unique identifier of m.
func (m *Manager) ID() uuid.UUID {
	return m.id
}

// True returns the Handle for the constant true.
func (m *Manager) True() Handle {
	return Handle{m, 1}
}

// False returns the Handle for the constant false.
func (m *Manager) False() Handle {
	return Handle{m, 0}
}

// From returns a (constant) Handle from a boolean value.
func (m *Manager) From(v bool) Handle {
	if v {
		return m.True()
	}
	return m.False()
}

// checkptr returns an error if h cannot be used as an operand for m.
func (m *Manager) checkptr(h Handle) error {
	if h.m == nil {
		return ErrInvalidHandle
	}
	if h.m != m {
		return fmt.Errorf("%w (%s and %s)", ErrCrossManager, m.id, h.m.id)
	}
	if h.id < 0 || h.id >= len(m.nodes) {
		return fmt.Errorf("%w (%d)", ErrInvalidHandle, h.id)
	}
	return nil
}

func (m *Manager) handle(n int) Handle {
	return Handle{m, n}
}

// ************************************************************

// Manager returns the Manager that created h, or nil for the zero Handle.
func (h Handle) Manager() *Manager {
	return h.m
}

// Valid reports whether h was returned by a Manager.
func (h Handle) Valid() bool {
	return h.m != nil && h.id >= 0 && h.id < len(h.m.nodes)
}

// ID returns the identity of the node. Constants False and True have always
// identity 0 and 1.
func (h Handle) ID() int {
	return h.id
}

// IsTrue reports whether h is the constant True.
func (h Handle) IsTrue() bool {
	return h.m != nil && h.id == 1
}

// IsFalse reports whether h is the constant False.
func (h Handle) IsFalse() bool {
	return h.m != nil && h.id == 0
}

// IsConst reports whether h is one of the two constants.
func (h Handle) IsConst() bool {
	return h.m != nil && h.id < 2
}

// Var returns the rank of the variable tested at the root of h. The constants
// have rank Varnum()+1, after every declared variable. It returns 0 for an
// invalid Handle.
func (h Handle) Var() int {
	if !h.Valid() {
		return 0
	}
	return int(h.m.level(h.id))
}

// Low returns the false branch of h. Constants are their own branches.
func (h Handle) Low() Handle {
	if !h.Valid() {
		return Handle{}
	}
	return Handle{h.m, h.m.low(h.id)}
}

// High returns the true branch of h. Constants are their own branches.
func (h Handle) High() Handle {
	if !h.Valid() {
		return Handle{}
	}
	return Handle{h.m, h.m.high(h.id)}
}
