// Package arena provides a slot allocator for objects addressed by small
// integer handles.
package arena

import "errors"

// Handle indexes a slot in an Arena.
type Handle uint32

// InvalidHandle never resolves.
const InvalidHandle = ^Handle(0)

// ErrExhausted is returned when no more slots can be allocated.
var ErrExhausted = errors.New("arena: slot allocation failed")

type slot[T any] struct {
	occupied bool
	value    T
}

// Arena is an array of slots with explicit occupied/free state. Freed
// slots stop resolving immediately and are reused by later allocations,
// lowest index first. An Arena performs no locking; callers serialize
// access.
type Arena[T any] struct {
	slots []slot[T]
	// cap limits the slot count; zero means unbounded.
	cap int
}

// New creates an unbounded arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// NewWithCap creates an arena holding at most n objects.
func NewWithCap[T any](n int) *Arena[T] {
	return &Arena[T]{cap: n}
}

// Allocate claims a free slot and returns its handle and a pointer to
// the zeroed object stored in it.
func (a *Arena[T]) Allocate() (Handle, *T, error) {
	for i := range a.slots {
		if !a.slots[i].occupied {
			var zero T
			a.slots[i] = slot[T]{occupied: true, value: zero}
			return Handle(i), &a.slots[i].value, nil
		}
	}
	if a.cap > 0 && len(a.slots) >= a.cap {
		return InvalidHandle, nil, ErrExhausted
	}
	a.slots = append(a.slots, slot[T]{occupied: true})
	h := Handle(len(a.slots) - 1)
	return h, &a.slots[h].value, nil
}

// Resolve returns the object stored at h, or nil when h is out of range
// or the slot is vacant.
func (a *Arena[T]) Resolve(h Handle) *T {
	if int(h) >= len(a.slots) || !a.slots[h].occupied {
		return nil
	}
	return &a.slots[h].value
}

// Free releases the slot at h. Freeing a vacant or out-of-range handle
// is a no-op.
func (a *Arena[T]) Free(h Handle) {
	if int(h) >= len(a.slots) {
		return
	}
	var zero T
	a.slots[h] = slot[T]{occupied: false, value: zero}
}

// Len reports the number of occupied slots.
func (a *Arena[T]) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].occupied {
			n++
		}
	}
	return n
}
