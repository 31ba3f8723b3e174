package pipeline_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/vennsets/pkg/pipeline"
	"github.com/matzehuels/vennsets/pkg/sets"
)

func ExampleRunner_Execute() {
	runner := pipeline.NewRunner(nil, nil, nil)
	defer runner.Close()

	res, err := runner.Execute(context.Background(), pipeline.Options{
		A:         sets.Of(1, 2, 3),
		B:         sets.Of(2, 3, 4),
		Operation: "intersection",
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Result.Strings(), res.Cardinality, res.Image.MIME())
	// Output: [2 3] 2 image/png
}

func ExampleCompute() {
	_, _, img, err := pipeline.Compute(sets.Of(1), sets.Of(2), "foo", false)
	fmt.Println(img == nil, err)
	// Output: true INVALID_OPERATION: invalid operation: "foo"
}
