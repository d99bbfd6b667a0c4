package vector

import (
	"fmt"
	"math"
	"testing"
	"unsafe"
)

func TestNewRawStorage(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantNull bool
	}{
		{"zero capacity", 0, true},
		{"single slot", 1, false},
		{"many slots", 1024, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewRawStorage[int](tt.capacity)
			if s.Cap() != tt.capacity {
				t.Errorf("NewRawStorage(%d) capacity = %d, want %d", tt.capacity, s.Cap(), tt.capacity)
			}
			if s.IsNull() != tt.wantNull {
				t.Errorf("NewRawStorage(%d) IsNull() = %v, want %v", tt.capacity, s.IsNull(), tt.wantNull)
			}
		})
	}
}

func TestNewRawStorageNegative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on negative capacity")
		}
	}()
	NewRawStorage[int](-1)
}

func TestNewRawStorageOverflow(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on capacity whose byte size overflows")
		}
	}()
	// One slot past the largest addressable int64 count; must panic
	// before reaching the allocator.
	NewRawStorage[int64](math.MaxInt/8 + 1)
}

func TestRawStorageAt(t *testing.T) {
	s := NewRawStorage[int](4)

	// Write through slot addresses and read back
	for i := 0; i < 4; i++ {
		*s.At(i) = i * 10
	}
	for i := 0; i < 4; i++ {
		if got := *s.At(i); got != i*10 {
			t.Errorf("*At(%d) = %d, want %d", i, got, i*10)
		}
	}

	// Slots are laid out contiguously
	first := uintptr(unsafe.Pointer(s.At(0)))
	second := uintptr(unsafe.Pointer(s.At(1)))
	if second-first != unsafe.Sizeof(int(0)) {
		t.Errorf("slot stride = %d, want %d", second-first, unsafe.Sizeof(int(0)))
	}
}

func TestRawStorageAtOutOfRange(t *testing.T) {
	s := NewRawStorage[int](4)

	for _, i := range []int{-1, 4, 100} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic for At(%d) with capacity 4", i)
				}
			}()
			s.At(i)
		}()
	}
}

func TestRawStorageSlice(t *testing.T) {
	s := NewRawStorage[int](8)
	for i := 0; i < 8; i++ {
		*s.At(i) = i
	}

	// Full view
	full := s.Slice(0, 8)
	if len(full) != 8 {
		t.Errorf("Slice(0, 8) length = %d, want 8", len(full))
	}

	// Partial view starts at the right slot
	mid := s.Slice(2, 5)
	if len(mid) != 3 {
		t.Errorf("Slice(2, 5) length = %d, want 3", len(mid))
	}
	if mid[0] != 2 || mid[2] != 4 {
		t.Errorf("Slice(2, 5) = %v, want [2 3 4]", mid)
	}

	// Empty view
	if empty := s.Slice(3, 3); empty != nil {
		t.Errorf("Slice(3, 3) = %v, want nil", empty)
	}

	// Views alias the storage
	mid[0] = 99
	if *s.At(2) != 99 {
		t.Errorf("after write through view, *At(2) = %d, want 99", *s.At(2))
	}
}

func TestRawStorageSliceOutOfRange(t *testing.T) {
	s := NewRawStorage[int](4)

	cases := []struct{ i, j int }{
		{-1, 2},
		{0, 5},
		{3, 2},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Expected panic for Slice(%d, %d) with capacity 4", c.i, c.j)
				}
			}()
			s.Slice(c.i, c.j)
		}()
	}
}

func TestRawStorageSwap(t *testing.T) {
	a := NewRawStorage[int](2)
	b := NewRawStorage[int](5)
	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(&b)

	if a.Cap() != 5 || b.Cap() != 2 {
		t.Errorf("capacities after swap = %d, %d, want 5, 2", a.Cap(), b.Cap())
	}
	if *a.At(0) != 2 || *b.At(0) != 1 {
		t.Errorf("values after swap = %d, %d, want 2, 1", *a.At(0), *b.At(0))
	}
}

func TestRawStorageSwapWithNull(t *testing.T) {
	a := NewRawStorage[int](3)
	var b RawStorage[int] // the zero value is the null storage

	a.Swap(&b)

	if !a.IsNull() || a.Cap() != 0 {
		t.Error("Expected a to become the null storage after the swap")
	}
	if b.IsNull() || b.Cap() != 3 {
		t.Error("Expected b to own the slab after the swap")
	}
}

func TestRawStorageRelease(t *testing.T) {
	s := NewRawStorage[int](4)
	*s.At(0) = 42

	s.Release()

	if !s.IsNull() {
		t.Error("Expected null storage after Release()")
	}
	if s.Cap() != 0 {
		t.Errorf("Cap() after Release() = %d, want 0", s.Cap())
	}

	// Release on the null storage is a no-op
	s.Release()
	if !s.IsNull() {
		t.Error("Expected null storage to stay null after second Release()")
	}
}

func TestMoveSlots(t *testing.T) {
	src := NewRawStorage[*int](4)
	dst := NewRawStorage[*int](4)
	x, y := 1, 2
	*src.At(0) = &x
	*src.At(1) = &y

	moveSlots(&dst, &src, 1, 0, 2)

	if *dst.At(1) != &x || *dst.At(2) != &y {
		t.Error("moveSlots did not transfer the values")
	}
	// Vacated source slots must not keep the values reachable
	if *src.At(0) != nil || *src.At(1) != nil {
		t.Error("moveSlots left the vacated source slots live")
	}
}

func BenchmarkNewRawStorage(b *testing.B) {
	capacities := []int{8, 64, 256, 1024}

	for _, capacity := range capacities {
		b.Run(fmt.Sprintf("cap-%d", capacity), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := NewRawStorage[int](capacity)
				s.Release()
			}
		})
	}
}
