package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-toolkit/arr"
	"github.com/hasbyte1/go-toolkit/compare"
)

func ExampleMax() {
	v, ok := arr.Max(3, 9, 4)
	fmt.Println(v, ok)
	// Output: 9 true
}

func ExampleSort() {
	names := []string{"banana", "apple", "cherry"}
	fmt.Println(arr.Sort(names, compare.Natural[string]()))
	// Output: [apple banana cherry]
}

func ExampleMaxBy() {
	type file struct {
		name string
		size int
	}
	files := []file{{"a.log", 120}, {"b.log", 940}, {"c.log", 300}}
	largest, _ := arr.MaxBy(files, compare.Comparing(func(f file) int { return f.size }))
	fmt.Println(largest.name)
	// Output: b.log
}

func ExampleChunk() {
	for _, group := range arr.Chunk([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Println(group)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}
