package sets

import (
	"strings"

	"github.com/matzehuels/vennsets/pkg/errors"
)

// Operation is one of the six binary set operations a diagram can illustrate.
type Operation int

// Operation variants. The zero value is not a valid operation.
const (
	Union Operation = iota + 1
	Intersection
	DifferenceAB
	DifferenceBA
	SymmetricDifference
	CartesianProduct
)

// canonical names, indexed by Operation.
var operationNames = [...]string{
	Union:               "union",
	Intersection:        "intersection",
	DifferenceAB:        "difference",
	DifferenceBA:        "difference_b",
	SymmetricDifference: "symmetric_difference",
	CartesianProduct:    "cartesian_product",
}

// operationAliases maps every accepted spelling to its operation, including
// the Portuguese names used by the legacy web front-end.
var operationAliases = map[string]Operation{
	"union":                Union,
	"uniao":                Union,
	"intersection":         Intersection,
	"intersecao":           Intersection,
	"difference":           DifferenceAB,
	"difference_ab":        DifferenceAB,
	"diff":                 DifferenceAB,
	"diferenca":            DifferenceAB,
	"difference_b":         DifferenceBA,
	"difference_ba":        DifferenceBA,
	"diferenca_b":          DifferenceBA,
	"symmetric_difference": SymmetricDifference,
	"sym_diff":             SymmetricDifference,
	"simetrica":            SymmetricDifference,
	"cartesian_product":    CartesianProduct,
	"cartesian":            CartesianProduct,
	"product":              CartesianProduct,
	"cartesiano":           CartesianProduct,
}

// Operations returns all valid operations in declaration order.
func Operations() []Operation {
	return []Operation{Union, Intersection, DifferenceAB, DifferenceBA, SymmetricDifference, CartesianProduct}
}

// ParseOperation resolves an operation name. Matching ignores case and
// surrounding whitespace. Unknown names fail with ErrCodeInvalidOperation.
func ParseOperation(name string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if op, ok := operationAliases[key]; ok {
		return op, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidOperation, "invalid operation: %q", name)
}

// Valid reports whether o is one of the six defined operations.
func (o Operation) Valid() bool {
	return o >= Union && o <= CartesianProduct
}

// String returns the canonical name.
func (o Operation) String() string {
	if !o.Valid() {
		return "invalid"
	}
	return operationNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o Operation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidOperation, "invalid operation: %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operation) UnmarshalText(text []byte) error {
	op, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
