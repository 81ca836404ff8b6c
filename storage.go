package vector

import "fmt"

// RawStorage is a fixed-capacity block of raw slots for elements of type T.
// It is pure storage: it never constructs, reads or destroys elements and
// keeps no notion of which slots are live. The block is one typed
// allocation, so pointers inside values later placed in it stay visible to
// the garbage collector. Ownership of the block is unique; transfer it
// with MoveFrom or Swap, never by copying the struct.
type RawStorage[T any] struct {
	slots []T // backing memory; len(slots) is the capacity
}

// NewRawStorage allocates storage for capacity slots of T. The slots are
// raw zeroed memory, not live elements. capacity <= 0 yields an empty
// block that owns no allocation.
func NewRawStorage[T any](capacity int) RawStorage[T] {
	if capacity <= 0 {
		return RawStorage[T]{}
	}
	return RawStorage[T]{slots: make([]T, capacity)}
}

// Cap returns the slot capacity of the block.
func (s *RawStorage[T]) Cap() int {
	return len(s.slots)
}

// Slot returns the address of slot i without constructing or reading
// anything there. The slot may hold raw, non-live memory; interpreting it
// as a value is up to the caller.
func (s *RawStorage[T]) Slot(i int) *T {
	if i < 0 || i >= len(s.slots) {
		panic(fmt.Sprintf("vector: slot %d out of range [0, %d)", i, len(s.slots)))
	}
	return &s.slots[i]
}

// Swap exchanges ownership of the two blocks in constant time. No slot is
// read or written.
func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.slots, other.slots = other.slots, s.slots
}

// MoveFrom releases this block and takes ownership of src's, leaving src
// empty. Self-move is a no-op.
func (s *RawStorage[T]) MoveFrom(src *RawStorage[T]) {
	if s == src {
		return
	}
	s.Release()
	s.Swap(src)
}

// Release drops the backing memory without touching its contents. Safe to
// call on an empty block.
func (s *RawStorage[T]) Release() {
	s.slots = nil
}

// view returns slots [i, i+n) as a slice, for relocation and zeroing.
// Empty for n <= 0.
func (s *RawStorage[T]) view(i, n int) []T {
	if n <= 0 {
		return nil
	}
	return s.slots[i : i+n]
}

// clearSlots zeroes slots [i, i+n), which doubles as value initialization
// and keeps vacated slots from retaining heap objects.
func (s *RawStorage[T]) clearSlots(i, n int) {
	clear(s.view(i, n))
}
