// Package pkg holds the vennsets libraries.
//
// # Overview
//
// Vennsets applies a binary set operation to two collections and draws the
// result as a two-circle Venn diagram. The packages are layered:
//
//  1. [sets] - elements, collections, the six operations and region partition
//  2. [render/venn] - geometry, style profiles, labels, compositing, PNG encoding
//  3. [pipeline] - validate → compute → render, plus the cached [pipeline.Runner]
//  4. [cache], [history] - render cache and render history backends
//  5. [config], [errors], [observability], [buildinfo], [fonts] - shared infrastructure
//
// # Data flow
//
//	two collections + operation
//	         ↓
//	    [sets] (result, regions)
//	         ↓
//	    [render/venn] (scene → surface → PNG)
//	         ↓
//	    result list, cardinality, image
//
// # Quick Start
//
//	res, n, img, err := pipeline.Compute(sets.Of(1, 2, 3), sets.Of(2, 3, 4), "intersection", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Strings(), n) // [2 3] 2
//	os.WriteFile("intersection.png", img.Data, 0o644)
package pkg
