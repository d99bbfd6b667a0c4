package vector

import (
	"fmt"
	"math"
)

// Reserve grows the storage to hold at least n elements. It is a no-op
// when n is already within capacity; otherwise it allocates a slab of
// exactly n slots, moves every live element across, and releases the
// old slab. Size and element values are unchanged. Element addresses
// taken before a growing Reserve are invalid afterwards.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.data.Cap() {
		return
	}
	newData := NewRawStorage[T](n)
	v.install(&newData, v.size, 0)
}

// Resize changes the live element count to n. Shrinking destroys the
// elements [n, Len()); growing reserves capacity and constructs zero
// values in [Len(), n). Panics when n is negative.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n < 0:
		panic(fmt.Sprintf("vector: resize to negative size %d", n))
	case n < v.size:
		clear(v.data.Slice(n, v.size))
		v.size = n
	case n > v.size:
		v.Reserve(n)
		clear(v.data.Slice(v.size, n)) // construct the new zero values
		v.size = n
	}
}

// grownCapacity returns the slab size for growth forced by insertion:
// double the current size, from a minimum of one slot. Doubling keeps
// the total move work across n inserts linear and the reallocation
// count logarithmic.
func (v *Vector[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	if v.size > math.MaxInt/2 {
		panic("vector: capacity overflow")
	}
	return 2 * v.size
}

// install moves the live elements into newData, leaving a gap of the
// given width at position i (the caller has already placed any new
// element inside the gap), then adopts newData as the owned slab. The
// old slab is released for collection.
func (v *Vector[T]) install(newData *RawStorage[T], i, gap int) {
	moveSlots(newData, &v.data, 0, 0, i)
	moveSlots(newData, &v.data, i+gap, i, v.size-i)
	v.data.Swap(newData)
	newData.Release()
	v.grows++
	v.moved += v.size
}
