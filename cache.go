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
	"math/big"
)

// ************************************************************
// cache is used for caching apply results. It is a direct-mapped table: a
// new entry overwrites the previous one with the same hash. Since nodes are
// never reclaimed, entries never need to be invalidated.
type cache struct {
	table []cacheData
}

// cacheStat stores status information about cache usage
type cacheStat struct {
	opHit   int // entries found in the operator cache
	opMiss  int // entries not found in the operator cache
	resized int // number of times the cache was resized
}

// cacheData is a unit of information stored in the apply cache
type cacheData struct {
	res int
	a   int
	b   int
	c   int
}

type applycache struct {
	cache // Cache for apply results
}

// ************************************************************

// Basic functions shared by all caches

func (bc *cache) cacheinit(size int) {
	// we never check if the creation of the slice panic because of lack of memory
	size = nextPrime(size)
	bc.table = make([]cacheData, size)
	bc.cachereset()
}

// nextPrime returns the smallest odd prime greater than or equal to n, and 3
// when n is less than 3.
func nextPrime(n int) int {
	if n < 3 {
		return 3
	}
	n |= 1
	for ; ; n += 2 {
		if divisible(n, 3, 5, 7, 11, 13) {
			continue
		}
		// exact for inputs below 2^64
		if big.NewInt(int64(n)).ProbablyPrime(0) {
			return n
		}
	}
}

// divisible reports whether n has one of the given factors, other than n itself.
func divisible(n int, factors ...int) bool {
	for _, f := range factors {
		if n != f && n%f == 0 {
			return true
		}
	}
	return false
}

func (bc *cache) cachereset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// cachegrow resizes the apply cache when the node table has grown past the
// configured cache ratio. The content of the cache is lost.
func (m *Manager) cachegrow(nodes int) {
	if !m.memoize || m.cacheratio == 0 {
		return
	}
	if nodes*m.cacheratio/100 <= len(m.table) {
		return
	}
	size := 2 * len(m.table)
	if _LOGLEVEL > 0 {
		log.Printf("resize apply cache: %d -> %d (%d nodes)\n", len(m.table), size, nodes)
	}
	m.cacheinit(size)
	m.resized++
}

// ************************************************************

// Prints information about the cache performance. Hit and miss count is given
// for the operator cache.

func (c cacheStat) String() string {
	res := fmt.Sprintf("Operator Hits:  %d\n", c.opHit)
	res += fmt.Sprintf("Operator Miss:  %d\n", c.opMiss)
	res += fmt.Sprintf("Cache Resized:  %d", c.resized)
	return res
}
