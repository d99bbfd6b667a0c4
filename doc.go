// Package vector implements a generic growable array built on manually
// managed storage.
//
// # Overview
//
// A Vector keeps its elements in one contiguous slab of slots that it
// allocates, grows, and releases itself. The slab is owned by a
// RawStorage, which hands out slot addresses and views but tracks no
// element lifetimes; the Vector layer decides which slots are live.
// This is particularly useful for:
//
//   - Workloads that want explicit control over when reallocation happens
//   - Measuring and tuning growth behavior via per-vector counters
//   - Element types with deep-copy semantics (see Cloner)
//   - Porting code written against contiguous-array containers
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release() // drop the slab when done
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(0, 0) // 0, 1, 2
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
//	last := v.PopBack()
//
// # Thread Safety
//
// Vector and RawStorage are not thread-safe. Callers that share a
// vector across goroutines must provide their own synchronization.
//
// # Memory Layout
//
// The slab holds exactly Cap() slots. Slots [0, Len()) are live and
// contiguous; slots [Len(), Cap()) are dead and hold zero values so
// that nothing they once referenced is kept alive. Growing allocates a
// new slab, moves the live elements across, and releases the old one;
// Reserve allocates exactly the requested capacity, while insertion
// doubles (0, 1, 2, 4, 8, ...) for amortized O(1) appends.
//
// # Pointer Stability
//
// At, Insert, Emplace, and EmplaceBack return addresses of live slots.
// Any operation that reallocates or shifts elements invalidates
// previously returned addresses and Slice views; the library does not
// track outstanding pointers.
//
// # Performance Characteristics
//
//   - PushBack/EmplaceBack/PopBack: O(1) amortized
//   - Insert/Emplace/Remove: O(n) in the elements after the position
//   - Reserve/Resize/Clone/CopyFrom: O(n)
//   - Swap/MoveFrom: O(1)
//
// # Important Notes
//
//   - Misuse (out-of-range positions, PopBack on empty) panics with a
//     "vector:"-prefixed message
//   - Errors from Emplace/EmplaceBack build callbacks are returned
//     unmodified and leave the vector observably unchanged
//   - Clone and CopyFrom deep-copy elements whose type implements Cloner
//
// # Metrics and Monitoring
//
// The vector counts its reallocations and the elements they transfer:
//
//	metrics := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization * 100)
//	fmt.Printf("Reallocations: %d\n", metrics.Grows)
//	fmt.Printf("Elements moved: %d\n", metrics.Moved)
package vector
