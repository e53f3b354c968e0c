// Package ident hands out character identifiers used for invincibility
// bookkeeping and pathfinder exclusions.
package ident

import "sync/atomic"

// ID identifies a live character. The zero value is never allocated.
type ID uint32

// Allocator issues IDs that are unique for the life of the allocator.
type Allocator struct {
	last atomic.Uint32
}

// Next returns a fresh ID.
func (a *Allocator) Next() ID {
	return ID(a.last.Add(1))
}

var global Allocator

// Next returns a process-unique ID.
func Next() ID {
	return global.Next()
}
