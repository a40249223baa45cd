// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Hash functions

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR64(uint64(c), _PAIR(a, b, len), uint64(len)))
}

// _PAIR is a mapping function that maps (bijectively) a pair of integer (a, b)
// into a unique integer. It is therefore a perfect hash: no collisions
func _PAIR(a, b, len int) uint64 {
	return (((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len)
}

func _PAIR64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}

// ************************************************************

// The hash function for Apply is #(left, right, op).

func (m *Manager) matchapply(left, right int, op Operator) int {
	entry := m.table[_TRIPLE(left, right, int(op), len(m.table))]
	if entry.a == left && entry.b == right && entry.c == int(op) {
		m.opHit++
		return entry.res
	}
	m.opMiss++
	return -1
}

func (m *Manager) setapply(left, right int, op Operator, res int) int {
	m.table[_TRIPLE(left, right, int(op), len(m.table))] = cacheData{
		a:   left,
		b:   right,
		c:   int(op),
		res: res,
	}
	return res
}
