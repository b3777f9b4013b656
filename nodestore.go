package rangeallocator

// nodeStore supplies and reclaims the Span nodes used by the free-list
// engine. The engine never constructs a Span directly — every node it
// links into its free list came from acquire(), and every node it drops
// goes back through release(). This indirection is what lets the two
// strategies below be interchangeable without the engine caring which
// one is in effect.
type nodeStore interface {
	acquire() *Span
	release(s *Span)
	destroy()
}

// poolStore is a contiguous slab of Span slots, sized once at
// construction to the proven worst-case free-span count for the managed
// range, with a free-slot stack threaded through the slab via each
// Span's intrusive next pointer. Every node is the same size, so there
// is no need to segregate the slab by size class.
type poolStore struct {
	slab []Span
	free *Span // head of the free-slot stack, linked via Span.next
}

// newPoolStore pre-allocates n slots. n should be
// ceil((length/granularity)/2), the worst case reached by alternating
// one allocated granule with one free granule.
func newPoolStore(n int) *poolStore {
	if n < 1 {
		n = 1
	}
	p := &poolStore{slab: make([]Span, n)}
	for i := range p.slab {
		p.slab[i].next = p.free
		p.free = &p.slab[i]
	}
	return p
}

func (p *poolStore) acquire() *Span {
	s := p.free
	if s == nil {
		return nil
	}
	p.free = s.next
	s.next = nil
	return s
}

func (p *poolStore) release(s *Span) {
	s.reset()
	s.next = p.free
	p.free = s
}

func (p *poolStore) destroy() {
	p.slab = nil
	p.free = nil
}

// freelistStore lazily allocates a Span on acquire() when the internal
// freelist is empty, returns released nodes to that freelist, and only
// lets the Go heap reclaim them once the store itself is destroyed.
type freelistStore struct {
	free *Span

	// hybrid priming: primeRemaining counts down slab slots handed out
	// from an initial pool-backed prefix before falling back to heap
	// allocation.
	slab           []Span
	primeRemaining int
}

func newFreelistStore(primeHint int) *freelistStore {
	f := &freelistStore{}
	if primeHint > 0 {
		f.slab = make([]Span, primeHint)
		f.primeRemaining = primeHint
	}
	return f
}

func (f *freelistStore) acquire() *Span {
	if f.free != nil {
		s := f.free
		f.free = s.next
		s.next = nil
		return s
	}
	if f.primeRemaining > 0 {
		idx := len(f.slab) - f.primeRemaining
		f.primeRemaining--
		return &f.slab[idx]
	}
	return &Span{}
}

func (f *freelistStore) release(s *Span) {
	s.reset()
	s.next = f.free
	f.free = s
}

func (f *freelistStore) destroy() {
	f.free = nil
	f.slab = nil
}
