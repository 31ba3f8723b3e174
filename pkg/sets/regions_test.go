package sets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	r := Classify(Of(1, 2, 3), Of(2, 3, 4))

	if diff := cmp.Diff([]Element(Of(1)), r.OnlyA, elementEq); diff != "" {
		t.Errorf("OnlyA mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Element(Of(4)), r.OnlyB, elementEq); diff != "" {
		t.Errorf("OnlyB mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Element(Of(2, 3)), r.Intersection, elementEq); diff != "" {
		t.Errorf("Intersection mismatch (-want +got):\n%s", diff)
	}
	if r.ProductSize != 9 {
		t.Errorf("ProductSize = %d, want 9", r.ProductSize)
	}
}

func TestClassifyPartition(t *testing.T) {
	cases := [][2]Collection{
		{Of(1, 2, 3), Of(2, 3, 4)},
		{Of(), Of()},
		{Of(1, 1, 1), Of()},
		{Of("a", "b", "c"), Of("c", "b", "a")},
		{Of(1, "1", true, nil), Of(nil, 1.0, "z")},
	}

	for _, c := range cases {
		a, b := c[0], c[1]
		r := Classify(a, b)

		seen := make(map[Element]int)
		for _, e := range r.All() {
			seen[e]++
		}
		for e, n := range seen {
			if n != 1 {
				t.Errorf("Classify(%v, %v): %v appears in %d regions", a, b, e, n)
			}
		}

		union := Unite(a, b)
		if len(union) != len(seen) {
			t.Errorf("Classify(%v, %v): regions cover %d elements, union has %d", a, b, len(seen), len(union))
		}
		for _, e := range union {
			if seen[e] != 1 {
				t.Errorf("Classify(%v, %v): union member %v missing from regions", a, b, e)
			}
		}
		if r.ProductSize != len(a)*len(b) {
			t.Errorf("ProductSize = %d, want %d", r.ProductSize, len(a)*len(b))
		}
	}
}

func TestRegionsEmpty(t *testing.T) {
	if !Classify(Of(), Of()).Empty() {
		t.Error("Classify of empty collections should be Empty")
	}
	if Classify(Of(1), Of()).Empty() {
		t.Error("Classify with an element should not be Empty")
	}
}
