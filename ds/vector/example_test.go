package vector_test

import (
	"fmt"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/ds/vector"
)

func ExampleVector() {
	v := vector.New[int]()
	_ = v.PushBack(10)
	_ = v.PushBack(20)
	_ = v.Insert(1, 15)
	fmt.Println(v.Values(), v.Len())

	_ = v.EraseRange(0, 1)
	fmt.Println(v.Values(), v.Len())

	// Output:
	// [10 15 20] 3
	// [20] 1
}

func ExampleWithCapacity() {
	v, err := vector.WithCapacity[string](2, core.WithGrowth(core.GrowFixed))
	if err != nil {
		panic(err)
	}
	_ = v.PushBack("a")
	_ = v.PushBack("b")
	fmt.Println(v.PushBack("c"))

	// Output:
	// vector.PushBack: fixed capacity 2: capacity exceeded
}
