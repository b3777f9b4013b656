package rangeallocator

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// spinLock is a CAS-based sync.Locker, used as Guard's default Locker:
// cheap to construct, no timer, no background goroutine.
type spinLock struct {
	write int32
}

func (l *spinLock) Lock() {
	for !atomic.CompareAndSwapInt32(&l.write, 0, 1) {
		runtime.Gosched()
	}
}

func (l *spinLock) Unlock() {
	if !atomic.CompareAndSwapInt32(&l.write, 1, 0) {
		panic("rangeallocator: unlock of unlocked Guard")
	}
}

var _ sync.Locker = (*spinLock)(nil)
