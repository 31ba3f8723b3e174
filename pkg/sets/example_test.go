package sets_test

import (
	"fmt"

	"github.com/matzehuels/vennsets/pkg/sets"
)

func ExampleApply() {
	a := sets.Of(1, 2, 3)
	b := sets.Of(2, 3, 4)

	res, err := sets.Apply(sets.Intersection, a, b)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Strings(), res.Len())
	// Output: [2 3] 2
}

func ExampleClassify() {
	r := sets.Classify(sets.Of(1, 2, 3), sets.Of(2, 3, 4))
	fmt.Println("only A:", r.OnlyA)
	fmt.Println("only B:", r.OnlyB)
	fmt.Println("both:", r.Intersection)
	// Output:
	// only A: [1]
	// only B: [4]
	// both: [2 3]
}

func ExampleResult_Sort() {
	res, _ := sets.Apply(sets.Union, sets.Of(3, 1), sets.Of(2))
	res.Sort()
	fmt.Println(res.Strings())

	// Mixed kinds cannot be ordered; the original order is kept.
	mixed, _ := sets.Apply(sets.Union, sets.Of("b", 1), sets.Of("a"))
	fmt.Println(mixed.Sort(), mixed.Strings())
	// Output:
	// [1 2 3]
	// false [b 1 a]
}
