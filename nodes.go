// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// node is an entry in the node table. The index of a node in the table is its
// identity. Constants False and True are always at index 0 and 1.
type node struct {
	level int32 // Rank of the variable, 0 for the two constants
	low   int   // Reference to the false branch
	high  int   // Reference to the true branch
}

// nodekey is the key of the unique table.
type nodekey struct {
	level int32
	low   int
	high  int
}

// tables holds the node store and the unique table. Nodes are never removed,
// so the identity of a node is stable for the lifetime of its Manager.
type tables struct {
	nodes        []node          // List of all the BDD nodes
	unique       map[nodekey]int // Unicity table, associates each triplet to a single node
	produced     int             // Total number of internal nodes ever produced
	uniqueAccess int             // accesses to the unique node table
	uniqueHit    int             // entries actually found in the unique node table
	uniqueMiss   int             // entries not found in the unique node table
}

func maketables(nodesize int) tables {
	t := tables{
		nodes:  make([]node, 2, nodesize),
		unique: make(map[nodekey]int, nodesize),
	}
	// creating bddzero and bddone. We do not add them to the unique table.
	t.nodes[0] = node{level: 0, low: 0, high: 0}
	t.nodes[1] = node{level: 0, low: 1, high: 1}
	return t
}

func (t *tables) nodehash(level int32, low, high int) (int, bool) {
	res, ok := t.unique[nodekey{level, low, high}]
	return res, ok
}

func (t *tables) setnode(level int32, low, high int) int {
	res := len(t.nodes)
	t.nodes = append(t.nodes, node{level, low, high})
	t.unique[nodekey{level, low, high}] = res
	t.produced++
	return res
}

func (t *tables) low(n int) int {
	return t.nodes[n].low
}

func (t *tables) high(n int) int {
	return t.nodes[n].high
}

// level returns the rank of the variable tested by node n. Constants are
// ranked after every declared variable.
func (m *Manager) level(n int) int32 {
	if n < 2 {
		return int32(len(m.labels)) + 1
	}
	return m.nodes[n].level
}
