package sets

import (
	"testing"

	"github.com/matzehuels/vennsets/pkg/errors"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		name    string
		want    Operation
		wantErr bool
	}{
		{"union", Union, false},
		{"UNION", Union, false},
		{" uniao ", Union, false},
		{"intersecao", Intersection, false},
		{"diferenca", DifferenceAB, false},
		{"diferenca_b", DifferenceBA, false},
		{"simetrica", SymmetricDifference, false},
		{"cartesiano", CartesianProduct, false},
		{"symmetric_difference", SymmetricDifference, false},
		{"cartesian_product", CartesianProduct, false},
		{"foo", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOperation(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOperation(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidOperation) {
				t.Errorf("error code = %v, want INVALID_OPERATION", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseOperation(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestOperationCanonicalNamesRoundTrip(t *testing.T) {
	for _, op := range Operations() {
		text, err := op.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", op, err)
		}
		var back Operation
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != op {
			t.Errorf("round trip %v -> %s -> %v", op, text, back)
		}
	}
}

func TestOperationInvalidString(t *testing.T) {
	if Operation(0).String() != "invalid" {
		t.Errorf("Operation(0).String() = %q", Operation(0).String())
	}
	if _, err := Operation(99).MarshalText(); err == nil {
		t.Error("MarshalText of invalid operation should fail")
	}
}
