package sets

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/vennsets/pkg/errors"
)

// Pair is an ordered pair from a Cartesian product.
type Pair struct {
	A, B Element
}

// String formats the pair as "(a, b)".
func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.A, p.B)
}

// MarshalJSON encodes the pair as its display string.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// Result is the output sequence of an operation. Exactly one of Elements and
// Pairs is used: Pairs for CartesianProduct, Elements for everything else.
type Result struct {
	Op       Operation
	Elements []Element
	Pairs    []Pair
}

// Len returns the result cardinality.
func (r Result) Len() int {
	if r.Op == CartesianProduct {
		return len(r.Pairs)
	}
	return len(r.Elements)
}

// Strings returns the display form of every item in the result.
func (r Result) Strings() []string {
	out := make([]string, 0, r.Len())
	if r.Op == CartesianProduct {
		for _, p := range r.Pairs {
			out = append(out, p.String())
		}
		return out
	}
	for _, e := range r.Elements {
		out = append(out, e.String())
	}
	return out
}

// MarshalJSON encodes the result as a flat JSON array.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Op == CartesianProduct {
		if r.Pairs == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(r.Pairs)
	}
	if r.Elements == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Elements)
}

// Sort sorts the result in natural order and reports whether it did.
//
// Cartesian results are never sorted. If the elements are not mutually
// orderable the pre-sort order is kept; this is not an error.
func (r *Result) Sort() bool {
	if r.Op == CartesianProduct {
		return false
	}
	return SortElements(r.Elements)
}

// Apply computes op over a and b.
func Apply(op Operation, a, b Collection) (Result, error) {
	res := Result{Op: op}
	switch op {
	case Union:
		res.Elements = Unite(a, b)
	case Intersection:
		res.Elements = Intersect(a, b)
	case DifferenceAB:
		res.Elements = Subtract(a, b)
	case DifferenceBA:
		res.Elements = Subtract(b, a)
	case SymmetricDifference:
		res.Elements = SymmetricDiff(a, b)
	case CartesianProduct:
		res.Pairs = Product(a, b)
	default:
		return Result{}, errors.New(errors.ErrCodeInvalidOperation, "invalid operation: %d", int(op))
	}
	return res, nil
}

// Unite returns A∪B in first-occurrence order.
func Unite(a, b Collection) []Element {
	return newOrderedSet(a, b).items
}

// Intersect returns A∩B in A's order.
func Intersect(a, b Collection) []Element {
	sb := newOrderedSet(b)
	return newOrderedSet(a).filter(sb.contains)
}

// Subtract returns A−B in A's order.
func Subtract(a, b Collection) []Element {
	sb := newOrderedSet(b)
	return newOrderedSet(a).filter(func(e Element) bool { return !sb.contains(e) })
}

// SymmetricDiff returns (A−B)∪(B−A).
func SymmetricDiff(a, b Collection) []Element {
	return Unite(Subtract(a, b), Subtract(b, a))
}

// Product returns every pair (a, b) in row-major order over the raw
// collections, so len == len(a)*len(b) even when either contains duplicates.
func Product(a, b Collection) []Pair {
	out := make([]Pair, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, Pair{A: x, B: y})
		}
	}
	return out
}
