package rangeallocator

import (
	"encoding/binary"
)

// Flags selects the placement mode for Allocate.
type Flags int

const (
	// ANY accepts the first free span at least length bytes long. hint
	// is ignored.
	ANY Flags = iota
	// EXACT requires the allocation to land exactly at hint.
	EXACT
	// ABOVE takes the first (lowest) free span that can hold the whole
	// allocation at or above hint and returns the top-justified address
	// within it, so the result is at least hint but not necessarily the
	// lowest such address.
	ABOVE
	// BELOW returns an address such that the whole allocation lies at
	// or below hint, bottom-justified within whichever span qualifies.
	BELOW
)

// Sentinel is the all-ones value of the address type, returned by
// Allocate when a request cannot be satisfied.
const Sentinel uint64 = ^uint64(0)

// signature stamps an Allocator with a checksum over its immutable
// construction parameters. Every public method checks it before
// touching engine state, so a zero-value or hand-forged Allocator
// (never passed through New) is rejected rather than dereferenced, and
// so is an Allocator after Close, which clears the signature. It is a
// misuse guard, not a correctness mechanism.
func signature(base, length, granularity uint64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], base)
	binary.LittleEndian.PutUint64(buf[8:16], length)
	binary.LittleEndian.PutUint64(buf[16:24], granularity)
	return xxHashBytes(buf[:])
}

func (a *Allocator) validSignature() bool {
	return a != nil && a.sig != 0 && a.sig == signature(a.base, a.length, a.granularity)
}
