// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug
// +build debug

package bdd

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

// ******************************************************************************************************

func init() {
	log.SetOutput(os.Stdout)
}

// ******************************************************************************************************

// logTable logs the content of the node table, one node per line.
func (m *Manager) logTable() {
	if m.error != nil {
		log.Printf("ERROR: %s\n", m.error)
	}
	for k, n := range m.nodes {
		key := nodekey{n.level, n.low, n.high}
		if k < 2 {
			log.Printf("%-3d ( %-3d ,  %-3d ,  %-3d) | constant\n", k, m.level(k), n.low, n.high)
			continue
		}
		log.Printf("%-3d ( %-3d ,  %-3d ,  %-3d) | unique: %-3d | %s\n", k, n.level, n.low, n.high, m.unique[key], m.labels[n.level-1])
	}
}
