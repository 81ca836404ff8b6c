package vector

import "fmt"

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // Always clean up

	// Append elements; capacity doubles as needed
	for _, x := range []int{10, 20, 30} {
		v.PushBack(x)
	}
	fmt.Println(v.Data(), v.Len(), v.Cap())

	// Positional insertion and removal
	v.Insert(1, 99)
	fmt.Println(v.Data())
	v.Erase(0)
	v.PopBack()
	fmt.Println(v.Data())

	// Grow the size with value-initialized elements
	v.Resize(4)
	fmt.Println(v.Data(), v.Len())

	// Reserve changes capacity only
	v.Reserve(10)
	fmt.Println(v.Cap(), v.Utilization())

	// Output:
	// [10 20 30] 3 4
	// [10 99 20 30]
	// [99 20]
	// [99 20 0 0] 4
	// 10 0.4
}

// ExampleVector_Clone demonstrates that copies are independent
func ExampleVector_Clone() {
	v := New[string]()
	v.PushBack("a")
	v.PushBack("b")

	c, _ := v.Clone()
	c.PushBack("c")

	fmt.Println(v.Data())
	fmt.Println(c.Data())
	// Output:
	// [a b]
	// [a b c]
}

// tempFile releases its handle when it leaves the container.
type tempFile struct {
	name string
}

func (f tempFile) Dispose() {
	fmt.Println("closed", f.name)
}

// ExampleDisposer demonstrates the element destructor hook
func ExampleDisposer() {
	v := New[tempFile]()
	v.PushBack(tempFile{name: "a.tmp"})
	v.PushBack(tempFile{name: "b.tmp"})

	v.Release()
	// Output:
	// closed a.tmp
	// closed b.tmp
}

// ExampleVector_Metrics demonstrates the statistics snapshot
func ExampleVector_Metrics() {
	v := NewWithSize[int64](3)
	v.Reserve(8)

	m := v.Metrics()
	fmt.Printf("%d/%d slots, %d bytes reserved, %d reallocation(s)\n",
		m.Len, m.Cap, m.BytesReserved, m.Grows)
	// Output:
	// 3/8 slots, 64 bytes reserved, 1 reallocation(s)
}
