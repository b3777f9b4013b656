package rangeallocator

// spanList is a doubly linked, address-ordered list of free Spans. It is
// the free-list engine's container: the engine keeps it sorted strictly
// increasing by base and never lets two consecutive entries touch or
// overlap, splicing in O(1) at the mutation site rather than rebuilding
// the list. Every link is a real *Span pointer — nothing here lives
// outside normal Go heap/pool memory.
type spanList struct {
	root Span // sentinel; root.next is Front, root.prev is Back
	len  int
}

func (l *spanList) init() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}

func (l *spanList) Len() int {
	return l.len
}

func (l *spanList) Front() *Span {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// insertAfter splices s immediately after at (at may be the root
// sentinel, which makes s the new Front).
func (l *spanList) insertAfter(s, at *Span) {
	s.prev = at
	s.next = at.next
	at.next.prev = s
	at.next = s
	l.len++
}

// remove splices s out of the list. s's own links are left dangling; the
// caller is responsible for returning s to a node store.
func (l *spanList) remove(s *Span) {
	s.prev.next = s.next
	s.next.prev = s.prev
	l.len--
}

// forEach walks the list from Front to Back, calling f on each Span. f
// must not mutate the list's links; engine code that needs to mutate
// walks the list by hand (see Allocator.Allocate/Free) so it can track
// the previous node for splicing.
func (l *spanList) forEach(f func(s *Span)) {
	for s := l.root.next; s != &l.root; s = s.next {
		f(s)
	}
}
