// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package bdd

import (
	"fmt"
	"log"
	"unsafe"
)

// stats returns information about the node and unique tables
func (m *Manager) stats() string {
	res := fmt.Sprintf("Manager:    %s\n", m.id)
	res += fmt.Sprintf("Varnum:     %d\n", len(m.labels))
	res += fmt.Sprintf("Nodes:      %d\n", len(m.nodes))
	res += fmt.Sprintf("Produced:   %d\n", m.produced)
	res += fmt.Sprintf("Size:       %s\n", humanSize(len(m.nodes), unsafe.Sizeof(node{})))
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", m.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", m.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d", m.uniqueMiss)
	return res
}

// Stats returns information about the Manager: its tables and, if enabled,
// the operation cache.
func (m *Manager) Stats() string {
	res := m.stats()
	if m.memoize {
		res += "\n==============\n"
		res += fmt.Sprintf("Cache Size:     %d\n", len(m.table))
		res += m.cacheStat.String()
	}
	if _DEBUG {
		log.Print("\n" + res)
		m.logTable()
	}
	return res
}

// humanSize returns a human readable version of the memory used by n values
// of size s.
func humanSize(n int, s uintptr) string {
	b := uint64(n) * uint64(s)
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for k := b / unit; k >= unit; k /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
