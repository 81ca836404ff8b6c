package vector

import "fmt"

// Vector is a growable, contiguous, random-access container for elements
// of type T, built on one RawStorage block. Slots [0, Len()) hold live
// elements; the rest of the block is raw memory and is never handed out.
//
// Vector is not goroutine-safe. Callers must serialize access or keep one
// instance per goroutine.
type Vector[T any] struct {
	data     RawStorage[T]
	size     int
	hooks    hooks[T]
	resolved bool
	grows    uint64
}

// New returns an empty vector that owns no allocation.
func New[T any]() *Vector[T] {
	v := &Vector[T]{}
	v.ensure()
	return v
}

// NewWithSize returns a vector of n value-initialized (zero) elements in a
// block of exactly n slots. n <= 0 yields an empty vector.
func NewWithSize[T any](n int) *Vector[T] {
	v := New[T]()
	if n > 0 {
		v.data = NewRawStorage[T](n)
		v.data.clearSlots(0, n)
		v.size = n
	}
	return v
}

// ensure resolves the element type's lifecycle hooks. Lazy so that the
// zero Vector value is usable.
func (v *Vector[T]) ensure() {
	if !v.resolved {
		v.hooks = resolveHooks[T]()
		v.resolved = true
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the slot capacity of the current storage block.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

func (v *Vector[T]) boundsCheck(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, v.size))
	}
}

// Get returns a copy of element i. Panics when i is out of range.
func (v *Vector[T]) Get(i int) T {
	v.boundsCheck(i)
	return *v.data.Slot(i)
}

// At returns the address of element i for in-place reads and writes. The
// address is invalidated by any capacity change and by Insert/Erase at or
// before i. Panics when i is out of range.
func (v *Vector[T]) At(i int) *T {
	v.boundsCheck(i)
	return v.data.Slot(i)
}

// Front returns the address of the first element. Panics when empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns the address of the last element. Panics when empty.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Data returns the live region [0, Len()) as a mutable slice aliasing the
// vector's storage — the contiguous begin/end view. Nil when empty. Any
// capacity change invalidates the returned slice.
func (v *Vector[T]) Data() []T {
	return v.data.view(0, v.size)
}

// growCapacity is the amortized-doubling tier function: max(1, 2*cur).
func growCapacity(cur int) int {
	if cur == 0 {
		return 1
	}
	return cur * 2
}

// constructAt value-initializes slot i of s and, when init is non-nil,
// runs it on the fresh slot. A failing init returns the slot to raw zeroed
// memory before the error propagates.
func (v *Vector[T]) constructAt(s *RawStorage[T], i int, init func(*T) error) error {
	s.clearSlots(i, 1)
	if init == nil {
		return nil
	}
	if err := init(s.Slot(i)); err != nil {
		s.clearSlots(i, 1)
		return fmt.Errorf("vector: construct element %d: %w", i, err)
	}
	return nil
}

// transferInto moves the live elements of slots [from, from+n) into dst
// starting at dstIndex, following the transfer policy: shallow relocation
// when the element type allows it (infallible), per-element duplication
// via Clone otherwise. On a failing duplication the duplicates already
// constructed in dst are disposed and the originals are left intact.
// Disposal of the originals on success is the caller's job (relocation
// consumes them wholesale and needs none).
func (v *Vector[T]) transferInto(dst *RawStorage[T], dstIndex, from, n int) error {
	if n == 0 {
		return nil
	}
	if v.hooks.relocate {
		copy(dst.view(dstIndex, n), v.data.view(from, n))
		return nil
	}
	for k := 0; k < n; k++ {
		c, err := v.hooks.clone(*v.data.Slot(from + k))
		if err != nil {
			v.hooks.disposeRange(dst, dstIndex, k)
			return fmt.Errorf("vector: clone element %d: %w", from+k, err)
		}
		*dst.Slot(dstIndex + k) = c
	}
	return nil
}

// retireOld completes a growth step: disposes the transferred originals
// when the clone path was taken, swaps the fresh block in and releases the
// old one.
func (v *Vector[T]) retireOld(fresh *RawStorage[T]) {
	if !v.hooks.relocate {
		v.hooks.disposeRange(&v.data, 0, v.size)
	}
	v.data.Swap(fresh)
	fresh.Release()
	v.grows++
}

// Reserve grows the storage block to exactly n slots, relocating the live
// elements per the transfer policy. No-op when n does not exceed the
// current capacity; capacity never shrinks. On failure the vector is
// unchanged (strong guarantee).
func (v *Vector[T]) Reserve(n int) error {
	v.ensure()
	if n <= v.data.Cap() {
		return nil
	}
	fresh := NewRawStorage[T](n)
	if err := v.transferInto(&fresh, 0, 0, v.size); err != nil {
		fresh.Release()
		return err
	}
	v.retireOld(&fresh)
	return nil
}

// Resize sets the element count to n. Shrinking disposes the surplus
// elements [n, Len()) and returns their slots to raw memory; growing
// reserves capacity first, then value-initializes the new elements. The
// size is updated last. Panics when n is negative.
func (v *Vector[T]) Resize(n int) error {
	v.ensure()
	switch {
	case n < 0:
		panic(fmt.Sprintf("vector: resize to negative size %d", n))
	case n == v.size:
		return nil
	case n < v.size:
		v.hooks.disposeRange(&v.data, n, v.size-n)
		v.data.clearSlots(n, v.size-n)
	default:
		if err := v.Reserve(n); err != nil {
			return err
		}
		v.data.clearSlots(v.size, n-v.size)
	}
	v.size = n
	return nil
}

// PushBack appends val, taking ownership of it. Returns the address of the
// stored element; a capacity change invalidates all previously returned
// addresses. On failure the vector is unchanged and val is disposed.
func (v *Vector[T]) PushBack(val T) (*T, error) {
	return v.EmplaceBack(func(p *T) error { *p = val; return nil })
}

// EmplaceBack appends one element constructed in place by init; a nil init
// leaves it value-initialized. With free capacity the element is built
// directly into the next slot and no other element is touched. When the
// block is full the vector grows to max(1, 2*cap): the new element is
// constructed into the fresh block before any existing element is
// transferred, so a failing init is a complete no-op, and a failing
// clone-transfer discards the fresh block — new element included — leaving
// the original intact (strong guarantee).
func (v *Vector[T]) EmplaceBack(init func(*T) error) (*T, error) {
	v.ensure()
	if v.size < v.data.Cap() {
		if err := v.constructAt(&v.data, v.size, init); err != nil {
			return nil, err
		}
		v.size++
		return v.data.Slot(v.size - 1), nil
	}
	fresh := NewRawStorage[T](growCapacity(v.data.Cap()))
	if err := v.constructAt(&fresh, v.size, init); err != nil {
		fresh.Release()
		return nil, err
	}
	if err := v.transferInto(&fresh, 0, 0, v.size); err != nil {
		v.hooks.disposeOne(fresh.Slot(v.size))
		fresh.Release()
		return nil, err
	}
	v.retireOld(&fresh)
	v.size++
	return v.data.Slot(v.size - 1), nil
}

// Insert inserts val before position i, taking ownership of it. i ranges
// over [0, Len()]; Len() means append. Returns the address of the inserted
// element.
func (v *Vector[T]) Insert(i int, val T) (*T, error) {
	return v.Emplace(i, func(p *T) error { *p = val; return nil })
}

// Emplace inserts one element, constructed in place by init, before
// position i. With free capacity the element is first built in a local
// temporary — so a failing init has no effect — then [i, Len()) is shifted
// right one slot and the temporary deposited; the shift is a shallow
// relocation and cannot fail. When the block is full the vector grows to
// max(1, 2*cap): the element is constructed at its target index in the
// fresh block, the prefix and suffix are transferred around it per the
// transfer policy, and any failure discards the fresh block, leaving the
// original intact. Panics when i is outside [0, Len()].
func (v *Vector[T]) Emplace(i int, init func(*T) error) (*T, error) {
	v.ensure()
	if i < 0 || i > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", i, v.size))
	}
	if i == v.size {
		return v.EmplaceBack(init)
	}
	if v.size < v.data.Cap() {
		var tmp T
		if init != nil {
			if err := init(&tmp); err != nil {
				return nil, fmt.Errorf("vector: construct element %d: %w", i, err)
			}
		}
		copy(v.data.view(i+1, v.size-i), v.data.view(i, v.size-i))
		*v.data.Slot(i) = tmp
		v.size++
		return v.data.Slot(i), nil
	}
	fresh := NewRawStorage[T](growCapacity(v.data.Cap()))
	if err := v.constructAt(&fresh, i, init); err != nil {
		fresh.Release()
		return nil, err
	}
	if err := v.transferInto(&fresh, 0, 0, i); err != nil {
		v.hooks.disposeOne(fresh.Slot(i))
		fresh.Release()
		return nil, err
	}
	if err := v.transferInto(&fresh, i+1, i, v.size-i); err != nil {
		v.hooks.disposeRange(&fresh, 0, i)
		v.hooks.disposeOne(fresh.Slot(i))
		fresh.Release()
		return nil, err
	}
	v.retireOld(&fresh)
	v.size++
	return v.data.Slot(i), nil
}

// Erase removes element i: the element is disposed, the tail shifts left
// one slot and the vacated last slot returns to raw zeroed memory.
// Addresses at or after i are invalidated. Panics when i is out of range.
func (v *Vector[T]) Erase(i int) {
	v.ensure()
	v.boundsCheck(i)
	v.hooks.disposeOne(v.data.Slot(i))
	copy(v.data.view(i, v.size-i-1), v.data.view(i+1, v.size-i-1))
	v.data.clearSlots(v.size-1, 1)
	v.size--
}

// PopBack removes the last element; no-op when empty. Capacity is never
// reduced.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.ensure()
	v.hooks.disposeOne(v.data.Slot(v.size - 1))
	v.data.clearSlots(v.size-1, 1)
	v.size--
}

// Clone returns an independent copy with storage sized to exactly Len().
// Cloner element types are duplicated element-wise; a failing duplication
// disposes the copies made so far and releases the new block, leaving both
// vectors unchanged (strong guarantee).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.ensure()
	out := New[T]()
	if v.size == 0 {
		return out, nil
	}
	out.data = NewRawStorage[T](v.size)
	if v.hooks.clone == nil {
		copy(out.data.view(0, v.size), v.data.view(0, v.size))
	} else {
		for k := 0; k < v.size; k++ {
			c, err := v.hooks.clone(*v.data.Slot(k))
			if err != nil {
				v.hooks.disposeRange(&out.data, 0, k)
				out.data.Release()
				return nil, fmt.Errorf("vector: clone element %d: %w", k, err)
			}
			*out.data.Slot(k) = c
		}
	}
	out.size = v.size
	return out, nil
}

// duplicate returns a copy of *src, going through the Clone hook when the
// element type has one. k names the source index in error messages.
func (v *Vector[T]) duplicate(src *T, k int) (T, error) {
	if v.hooks.clone == nil {
		return *src, nil
	}
	c, err := v.hooks.clone(*src)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("vector: clone element %d: %w", k, err)
	}
	return c, nil
}

// CopyFrom makes this vector an element-wise copy of src. When src does
// not fit in the current block, the copy is built aside and swapped in, so
// a failure leaves this vector untouched. Otherwise the copy happens in
// place: elements over the common prefix are replaced (old value disposed
// only after its replacement exists), then the surplus tail is disposed or
// the extra suffix duplicated; the size is updated last. The in-place path
// gives the basic guarantee — a mid-way failure leaves a valid, leak-free
// but partially updated vector.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	v.ensure()
	if src.size > v.data.Cap() {
		dup, err := src.Clone()
		if err != nil {
			return err
		}
		grows := v.grows
		v.Swap(dup)
		// The swap traded reallocation counters with the temporary; this
		// vector's history continues, plus the block replacement itself.
		v.grows = grows + 1
		dup.Release()
		return nil
	}
	common := min(v.size, src.size)
	for k := 0; k < common; k++ {
		c, err := v.duplicate(src.data.Slot(k), k)
		if err != nil {
			return err
		}
		v.hooks.disposeOne(v.data.Slot(k))
		*v.data.Slot(k) = c
	}
	if src.size < v.size {
		v.hooks.disposeRange(&v.data, src.size, v.size-src.size)
		v.data.clearSlots(src.size, v.size-src.size)
	} else {
		for k := v.size; k < src.size; k++ {
			c, err := v.duplicate(src.data.Slot(k), k)
			if err != nil {
				v.hooks.disposeRange(&v.data, v.size, k-v.size)
				v.data.clearSlots(v.size, k-v.size)
				return err
			}
			*v.data.Slot(k) = c
		}
	}
	v.size = src.size
	return nil
}

// Swap exchanges contents with other in constant time. No element is
// touched.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.ensure()
	other.ensure()
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.grows, other.grows = other.grows, v.grows
}

// MoveFrom is constant-time move assignment: this vector takes src's
// contents and src is left holding whatever this vector held before.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	v.Swap(src)
}

// Clear disposes all live elements and returns their slots to raw memory,
// keeping the storage block for reuse.
func (v *Vector[T]) Clear() {
	v.ensure()
	v.hooks.disposeRange(&v.data, 0, v.size)
	v.data.clearSlots(0, v.size)
	v.size = 0
}

// Release disposes all live elements and drops the storage block. The
// vector afterwards is the empty zero state and may be reused.
func (v *Vector[T]) Release() {
	v.Clear()
	v.data.Release()
}
