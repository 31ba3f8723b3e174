// Package venn draws two-set Venn diagrams that illustrate a set operation.
//
// # Overview
//
// Every diagram uses the same fixed geometry ([Layout]): circle A centred at
// (−0.6, 0), circle B at (0.6, 0), both with radius 1.2. What changes between
// operations is the styling ([StyleProfile]) and the text: a title and
// description per operation, the set names, the elements of each region, and
// for the Cartesian product a caption listing the first pairs.
//
// Rendering happens in two steps:
//
//	scene, err := venn.Compose(a, b, sets.Intersection) // layers + labels, no pixels
//	img, err := venn.RenderScene(scene, venn.WithScale(2))
//
// or in one:
//
//	img, err := venn.Render(a, b, sets.Intersection)
//	fmt.Println(img.DataURI())
//
// # Paint Order
//
// Layers are painted glows first, then circle A, circle B, and finally the
// intersection lens, which is drawn only when A ∩ B is non-empty. The lens is
// sampled on a regular grid ([DiagramSpec.LensMask]) and scaled onto the plot
// with bilinear interpolation. Labels are drawn last.
//
// # Resources
//
// Each call draws on its own surface backed by a pooled pixel buffer. The
// surface and its font faces are released on every exit path, and a panic
// while drawing is reported as an errors.ErrCodeRenderFailed error.
package venn
