// Package sets provides the element model and set algebra behind a Venn diagram.
//
// # Overview
//
// Callers supply two [Collection] values, A and B, and pick one of six
// [Operation] variants. This package computes:
//
//   - The operation result ([Apply]), optionally sorted ([Result.Sort])
//   - The diagram regions ([Classify]): elements only in A, only in B, and in both
//
// Collections are ordered slices interpreted as sets. Duplicates collapse under
// set operations (the first occurrence keeps its position) but are preserved
// verbatim for Cartesian pairing, so pair i*|B|+j is always (A[i], B[j]).
//
// # Elements
//
// An [Element] is a comparable scalar: a number, string, boolean, or null, as it
// would arrive in a JSON request. Elements of the same kind are ordered (numbers
// numerically, strings by Unicode collation); elements of different kinds are
// not mutually orderable. Sorting a result that mixes kinds keeps the original
// order instead of failing.
//
//	a := sets.Of(1, 2, 3)
//	b := sets.Of(2, 3, 4)
//	res, err := sets.Apply(sets.Intersection, a, b)
//	// res.Elements == [2 3]
//
//	regions := sets.Classify(a, b)
//	// regions.OnlyA == [1], regions.OnlyB == [4]
package sets
