package compare_test

import (
	"fmt"
	"slices"

	"github.com/hasbyte1/go-toolkit/compare"
)

func ExampleComparePtr() {
	x := 5
	fmt.Println(compare.ComparePtr(nil, &x))
	fmt.Println(compare.ComparePtr(nil, &x, true))
	// Output:
	// -1
	// 1
}

func ExampleComparingIndexed() {
	severities := compare.ComparingIndexed(
		func(s string) string { return s },
		true,
		"critical", "high", "medium", "low",
	)
	alerts := []string{"low", "critical", "unknown", "medium"}
	slices.SortStableFunc(alerts, severities)
	fmt.Println(alerts)
	// Output: [critical medium low unknown]
}

func ExampleChain() {
	type entry struct {
		dir  bool
		name string
	}
	entries := []entry{{false, "b.txt"}, {true, "src"}, {false, "a.txt"}}
	slices.SortStableFunc(entries, compare.Chain(
		compare.ComparingDesc(func(e entry) int {
			if e.dir {
				return 1
			}
			return 0
		}),
		compare.Comparing(func(e entry) string { return e.name }),
	))
	for _, e := range entries {
		fmt.Println(e.name)
	}
	// Output:
	// src
	// a.txt
	// b.txt
}

func ExampleIsIn() {
	fmt.Println(compare.IsIn(5, 1, 10))
	fmt.Println(compare.IsIn(5, 10, 1))
	fmt.Println(compare.IsInExclusive(10, 1, 10))
	// Output:
	// true
	// true
	// false
}
