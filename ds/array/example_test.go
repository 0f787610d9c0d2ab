package array_test

import (
	"fmt"

	"github.com/cwbudde/algo-ds/ds/array"
)

func ExampleArray() {
	a, err := array.New[int](3)
	if err != nil {
		panic(err)
	}
	a.Fill(0)
	_ = a.Set(1, 5)
	fmt.Println(a.Values(), a.Len(), a.Cap())
	fmt.Println(a.Push(9))

	// Output:
	// [0 5 0] 3 3
	// array.Push: vector.PushBack: fixed capacity 3: capacity exceeded
}
