// Package vector implements a growable, contiguous, random-access
// container built on raw, manually managed storage.
//
// # Overview
//
// A Vector keeps its elements in a single storage block (RawStorage) that
// is allocated but not initialized. Element lifetime is tracked separately
// from storage: slots [0, Len()) hold live elements, the rest of the block
// is raw memory that is never handed out. Appending is amortized O(1) via
// capacity doubling. This split is useful for:
//
//   - Element types with real destruction or duplication semantics
//     (Disposer / Cloner hooks)
//   - Predictable reallocation behavior and explicit capacity control
//   - Keeping N elements in one allocation instead of N
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release() // Clean up when done
//
//	// Append elements (amortized O(1))
//	v.PushBack(1)
//	v.PushBack(2)
//
//	// Contiguous view over the live region
//	for i, x := range v.Data() {
//		fmt.Println(i, x)
//	}
//
//	// Positional mutation
//	v.Insert(1, 99)
//	v.Erase(0)
//
//	// Capacity control
//	v.Reserve(100)
//	v.Resize(10)
//
// # Element Lifecycle
//
// Plain element types are relocated and duplicated with byte copies and no
// operation on them can fail. Three optional interfaces refine that:
//
//   - Cloner: duplication is meaningful and may fail. Clone, CopyFrom and
//     copy-based growth go through it, and growth preserves the strong
//     guarantee: a failing duplication leaves the vector untouched.
//   - Disposer: invoked exactly once for every live element that leaves
//     the container (erase, pop, shrink, clear, release, overwrite).
//   - Relocatable: marks a Cloner type whose values may still be moved
//     between storage blocks with a plain shallow copy.
//
// # Failure Semantics
//
// Operations that can fail only do so through element hooks; the wrapped
// error names the offending index. Whenever an operation promises the
// strong guarantee (growth, Clone, the aside path of CopyFrom), a failure
// leaves the vector exactly as it was. The in-place path of CopyFrom gives
// the basic guarantee: the vector stays valid and leak-free but may be
// partially updated. Out-of-range indices and positions are caller bugs
// and panic.
//
// # Important Notes
//
//   - Not safe for concurrent use; serialize access or keep one vector
//     per goroutine.
//   - Addresses returned by At, Front, Back, Data, PushBack and friends
//     are invalidated by any capacity change; Insert and Erase without a
//     capacity change invalidate addresses at or after the touched index.
//   - Element storage is one typed allocation scanned by the garbage
//     collector: heap objects referenced from live elements stay reachable
//     as long as the vector is. Vacated slots are zeroed so that removed
//     elements do not keep their referents alive.
//   - Hook detection asserts on *T, so both value- and pointer-receiver
//     implementations of Clone/Dispose are honored.
//
// # Metrics
//
// The vector reports basic statistics about its storage:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Reserved: %d bytes, reallocations: %d\n", m.BytesReserved, m.Grows)
package vector
