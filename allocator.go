// Package rangeallocator implements a virtual address range allocator:
// it carves a contiguous interval [base, base+length) into disjoint
// sub-ranges on request and reclaims them on release. No bytes are ever
// touched — only numeric intervals are tracked — so it suits any
// subsystem that manages address space rather than physical storage:
// virtual-memory regions, PCI BAR windows, I/O port ranges, and similar.
package rangeallocator

// Allocator manages one address range. The zero value is not usable;
// construct one with New.
type Allocator struct {
	base        uint64
	length      uint64
	granularity uint64

	list  spanList
	store nodeStore

	sig uint64 // see handle.go
}

// New creates an Allocator over [base, base+length). length is rounded
// down to a multiple of granularity before use, so the Allocator's
// usable length may be smaller than the length passed in. base must
// already be aligned to granularity; New rejects a misaligned base
// rather than silently re-aligning it.
//
// A nil Config is equivalent to DefaultConfig().
func New(base, length, granularity uint64, cfg *Config) (*Allocator, error) {
	if granularity == 0 {
		return nil, ErrInvalidGranularity
	}
	if base == 0 || !aligned(base, granularity) {
		return nil, ErrInvalidBase
	}
	if length == 0 {
		return nil, ErrInvalidLength
	}
	if granularity > length {
		return nil, ErrGranularityExceedsLength
	}

	usable := roundDown(length, granularity)
	cfg = mergeConfig(cfg)

	a := &Allocator{base: base, length: usable, granularity: granularity}
	a.list.init()

	switch cfg.NodeStorage {
	case StrategyFreelist:
		a.store = newFreelistStore(cfg.PoolHint)
	default:
		granules := usable / granularity
		a.store = newPoolStore(int((granules + 1) / 2))
	}

	root := a.store.acquire()
	if root == nil {
		a.store.destroy()
		return nil, ErrNodeStorageExhausted
	}
	root.base = base
	root.length = usable
	a.list.insertAfter(root, &a.list.root)

	a.sig = signature(a.base, a.length, a.granularity)
	return a, nil
}

// Allocate finds and removes a sub-range of length bytes from the free
// list according to flags, returning its base address, or Sentinel if
// the request cannot be satisfied. length is rounded up to a multiple
// of granularity before the search. hint is interpreted per flags; it is
// ignored under ANY. Under EXACT, a hint that is not a multiple of
// granularity fails.
func (a *Allocator) Allocate(length uint64, flags Flags, hint uint64) uint64 {
	if !a.validSignature() {
		return Sentinel
	}
	if length == 0 {
		return Sentinel
	}
	length = roundUp(length, a.granularity)
	if length == 0 || length > a.length {
		return Sentinel
	}
	if flags == EXACT && !aligned(hint, a.granularity) {
		return Sentinel
	}

	root := &a.list.root
	for s := root.next; s != root; s = s.next {
		if !checkSpan(s, length, flags, hint) {
			continue
		}
		b := placementAddr(s, length, flags, hint)
		if !a.applyAllocation(s, b, length) {
			return Sentinel
		}
		return b
	}
	return Sentinel
}

// checkSpan reports whether s qualifies for a length-byte allocation
// under flags.
func checkSpan(s *Span, length uint64, flags Flags, hint uint64) bool {
	switch flags {
	case ANY:
		return s.length >= length
	case EXACT:
		return s.base <= hint && hint+length <= s.end()
	case ABOVE:
		if s.base >= hint {
			return s.length >= length
		}
		if s.end() >= hint {
			return s.end() >= hint+length
		}
		return false
	case BELOW:
		return s.length >= length && s.base+length <= hint
	default:
		return false
	}
}

// placementAddr computes the address Allocate returns once s has
// already been confirmed to qualify: ANY and BELOW take the span's low
// end (no interior fragment left below the allocation), EXACT takes
// hint exactly, ABOVE takes the span's high end (no interior fragment
// left above).
func placementAddr(s *Span, length uint64, flags Flags, hint uint64) uint64 {
	switch flags {
	case EXACT:
		return hint
	case ABOVE:
		return s.end() - length
	default: // ANY, BELOW
		return s.base
	}
}

// applyAllocation carves [b, b+length) out of s, mutating the free list
// in place: removing s entirely if the allocation consumes it whole,
// trimming one edge if the allocation sits flush against either end, or
// splitting s into two spans if the allocation falls in the interior.
// It reports false (no mutation performed) only in the unreachable case
// where node storage is exhausted mid-split.
func (a *Allocator) applyAllocation(s *Span, b, length uint64) bool {
	switch {
	case b == s.base && length == s.length:
		a.list.remove(s)
		a.store.release(s)
	case b == s.base:
		s.base += length
		s.length -= length
	case b+length == s.end():
		s.length -= length
	default:
		end := s.end()
		tail := a.store.acquire()
		if tail == nil {
			return false
		}
		tail.base = b + length
		tail.length = end - tail.base
		s.length = b - s.base
		a.list.insertAfter(tail, s)
	}
	return true
}

// Free releases [base, base+length) back to the free list. base is
// rounded down and length up to multiples of granularity first. Invalid
// ranges (zero length, out of bounds, partially out of bounds) and
// overlaps with an already-free region are silently ignored: the engine
// holds no record of live allocations and cannot distinguish a spurious
// free from a legitimate one beyond range and overlap checks.
func (a *Allocator) Free(base, length uint64) {
	if !a.validSignature() {
		return
	}
	if length == 0 {
		return
	}
	base = roundDown(base, a.granularity)
	length = roundUp(length, a.granularity)
	if length == 0 {
		return
	}
	if base < a.base || base >= a.base+a.length {
		return
	}
	if base+length > a.base+a.length {
		return
	}

	b, e := base, base+length
	root := &a.list.root

	for next := root.next; next != root; next = next.next {
		switch {
		case e < next.base:
			a.insertFreed(b, length, next.prev)
			return

		case e == next.base:
			next.base = b
			next.length += length
			return

		case b < next.end():
			// overlap with an already-free region: invalid double free.
			return

		case b == next.end():
			if nn := next.next; nn != root {
				if e > nn.base {
					return // overlap with the far neighbor
				}
				if e == nn.base {
					next.length += length + nn.length
					a.list.remove(nn)
					a.store.release(nn)
					return
				}
			}
			next.length += length
			return
		}
		// b > next.end(): fully past next, keep walking.
	}

	a.insertFreed(b, length, root.prev)
}

// insertFreed acquires a node for [b, b+length) and splices it in
// immediately after at. Exhaustion here would mean the node-storage
// bound was miscalculated; it is treated as a silent no-op rather than
// a panic, since Free never reports failure.
func (a *Allocator) insertFreed(b, length uint64, at *Span) {
	s := a.store.acquire()
	if s == nil {
		return
	}
	s.base = b
	s.length = length
	a.list.insertAfter(s, at)
}

// Close releases every Span back to the node store, then tears the
// store down. Callers holding addresses previously returned by Allocate
// receive no notification — the core keeps no record of them.
func (a *Allocator) Close() error {
	if !a.validSignature() {
		return nil
	}
	root := &a.list.root
	for s := root.next; s != root; {
		next := s.next
		a.store.release(s)
		s = next
	}
	a.list.init()
	a.store.destroy()
	a.sig = 0
	return nil
}

// Stats reports read-only bookkeeping over the current free list.
type Stats struct {
	Spans       int
	FreeBytes   uint64
	LargestFree uint64
}

func (a *Allocator) Stats() Stats {
	if !a.validSignature() {
		return Stats{}
	}
	var st Stats
	root := &a.list.root
	for s := root.next; s != root; s = s.next {
		st.Spans++
		st.FreeBytes += s.length
		if s.length > st.LargestFree {
			st.LargestFree = s.length
		}
	}
	return st
}
