package sets

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// orderer compares elements. It wraps a collator, which is not safe for
// concurrent use, so each sort builds its own.
type orderer struct {
	col *collate.Collator
}

func newOrderer() *orderer {
	return &orderer{col: collate.New(language.Und)}
}

// compare returns the ordering of a and b and whether they are mutually
// orderable. Only elements of the same kind are orderable.
func (o *orderer) compare(a, b Element) (int, bool) {
	if a.kind != b.kind {
		return 0, false
	}
	switch a.kind {
	case KindNumber:
		return cmp.Compare(a.num, b.num), true
	case KindString:
		return o.compareText(a.str, b.str), true
	case KindBool:
		return cmp.Compare(boolRank(a.b), boolRank(b.b)), true
	default:
		return 0, true
	}
}

// compareText orders strings by collation, breaking collation ties by code
// point so the order is total.
func (o *orderer) compareText(a, b string) int {
	if c := o.col.CompareString(a, b); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Orderable reports whether every pair of elements can be compared.
func Orderable(elems []Element) bool {
	if len(elems) < 2 {
		return true
	}
	kind := elems[0].kind
	for _, e := range elems[1:] {
		if e.kind != kind {
			return false
		}
	}
	return true
}

// SortElements sorts elems in place in natural order. If the elements are not
// mutually orderable the slice is left untouched and false is returned.
func SortElements(elems []Element) bool {
	if !Orderable(elems) {
		return false
	}
	o := newOrderer()
	slices.SortStableFunc(elems, func(a, b Element) int {
		c, _ := o.compare(a, b)
		return c
	})
	return true
}

// DisplaySorted returns a sorted copy of elems for display. Mutually orderable
// elements use natural order; mixed kinds fall back to ordering by display text,
// so this never fails.
func DisplaySorted(elems []Element) []Element {
	out := slices.Clone(elems)
	if SortElements(out) {
		return out
	}
	o := newOrderer()
	slices.SortStableFunc(out, func(a, b Element) int {
		return o.compareText(a.String(), b.String())
	})
	return out
}
