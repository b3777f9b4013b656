package rangeallocator

import "sync"

// Guard wraps an *Allocator with a sync.Locker and forwards Allocate,
// Free and Close under lock. The core Allocator itself stays
// non-reentrant — it never locks anything — so Guard is strictly an
// opt-in boundary collaborator for callers who need one.
//
// A Guard's zero value is not usable; construct one with NewGuard.
type Guard struct {
	a    *Allocator
	lock sync.Locker
}

// NewGuard wraps a with a spinLock. Pass a custom Locker (e.g. a plain
// *sync.Mutex) via GuardWithLocker if a spinlock isn't appropriate for
// the caller's scheduling environment.
func NewGuard(a *Allocator) *Guard {
	return GuardWithLocker(a, &spinLock{})
}

// GuardWithLocker wraps a with the given Locker.
func GuardWithLocker(a *Allocator, lock sync.Locker) *Guard {
	return &Guard{a: a, lock: lock}
}

func (g *Guard) Allocate(length uint64, flags Flags, hint uint64) uint64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.a.Allocate(length, flags, hint)
}

func (g *Guard) Free(base, length uint64) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.a.Free(base, length)
}

func (g *Guard) Close() error {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.a.Close()
}

// Stats returns the wrapped Allocator's Stats under lock.
func (g *Guard) Stats() Stats {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.a.Stats()
}
