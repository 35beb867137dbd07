// Package xindex provides xxHash64-keyed reverse lookup tables used by the
// pool types to resolve a descriptor or name string back to its index
// without a linear scan of the pool.
package xindex

import "github.com/cespare/xxhash/v2"

// Key computes the xxHash64 digest of data, used as the map key for reverse
// lookups so the tables don't retain a copy of every string they index.
func Key(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Index maps a hashed string key to a pool position (an index into a DEX
// id pool, or a composite index built by the caller for multi-field keys
// such as a member's class and name).
type Index struct {
	byKey map[uint64]uint32
}

// New creates an Index sized for the expected number of entries.
func New(sizeHint int) *Index {
	return &Index{
		byKey: make(map[uint64]uint32, sizeHint),
	}
}

// Set records that the given string key resolves to pos. It overwrites any
// prior entry for the same key, so when several positions share a key
// (e.g. overloaded methods keyed by class and name) the last one set wins.
func (idx *Index) Set(key string, pos uint32) {
	idx.byKey[Key(key)] = pos
}

// Lookup returns the pool position for key and whether it was found.
func (idx *Index) Lookup(key string) (uint32, bool) {
	pos, ok := idx.byKey[Key(key)]
	return pos, ok
}

// Len reports the number of entries currently indexed.
func (idx *Index) Len() int {
	return len(idx.byKey)
}
