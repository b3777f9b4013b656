package rangeallocator

// Span is a maximal contiguous free interval tracked by the free-list
// engine. next/prev are intrusive links used only while the Span sits in
// one of the engine's two lists: the address-ordered free list
// (spanlist.go) or a node store's own freelist (nodestore.go). A Span
// never belongs to both at once.
type Span struct {
	base   uint64
	length uint64
	next   *Span
	prev   *Span
}

// end returns the exclusive upper bound of the span.
func (s *Span) end() uint64 {
	return s.base + s.length
}

// contains reports whether [b, b+l) lies entirely within the span.
func (s *Span) contains(b, l uint64) bool {
	return s.base <= b && b+l <= s.end()
}

// adjacentBefore reports whether [b, b+l) ends exactly where s begins,
// i.e. the two intervals would coalesce into one.
func (s *Span) adjacentBefore(b, l uint64) bool {
	return b+l == s.base
}

// adjacentAfter reports whether [b, b+l) begins exactly where s ends.
func (s *Span) adjacentAfter(b, l uint64) bool {
	return b == s.end()
}

// reset clears a span before it is handed back to a node store, so a
// reused node never leaks stale base/length/link values into its next
// lifetime.
func (s *Span) reset() {
	s.base = 0
	s.length = 0
	s.next = nil
	s.prev = nil
}
