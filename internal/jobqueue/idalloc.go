package jobqueue

import (
	"math"
	"sync"
)

// maxSkippedIDs bounds how many in-use ids ReserveFunc steps over before
// giving up and returning the next id regardless.
const maxSkippedIDs = 1 << 10

// IDAllocator issues job ids. Ids increase monotonically from 1; once the
// counter reaches its maximum it wraps back to zero, so the next id issued is
// 1 again. Ids are never 0.
//
// NOTE: after a wrap nothing stops an id being issued that is still held by a
// long-lived Job. Use ReserveFunc to skip ids known to be in use.
type IDAllocator struct {
	curr int32
	max  int32

	mu sync.Mutex
}

// NewIDAllocator creates an IDAllocator that wraps at math.MaxInt32.
func NewIDAllocator() *IDAllocator {
	return NewIDAllocatorWithMax(math.MaxInt32)
}

// NewIDAllocatorWithMax creates an IDAllocator that wraps at max. A max below
// 1 is treated as math.MaxInt32.
func NewIDAllocatorWithMax(max int32) *IDAllocator {
	if max < 1 {
		max = math.MaxInt32
	}

	return &IDAllocator{max: max}
}

// Reserve returns the next id.
func (a *IDAllocator) Reserve() int32 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.next()
}

// ReserveFunc returns the next id for which inUse returns false. inUse is
// called with the allocator locked and must not call back into it.
func (a *IDAllocator) ReserveFunc(inUse func(id int32) bool) int32 {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := a.next()
	for range maxSkippedIDs {
		if !inUse(id) {
			break
		}

		id = a.next()
	}

	return id
}

func (a *IDAllocator) next() int32 {
	a.curr++
	id := a.curr

	if a.curr >= a.max {
		a.curr = 0
	}

	return id
}
