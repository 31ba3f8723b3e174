package sets

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestElementString(t *testing.T) {
	tests := []struct {
		e    Element
		want string
	}{
		{Int(3), "3"},
		{Number(2.5), "2.5"},
		{Number(-0.0), "0"},
		{Number(1e21), "1000000000000000000000"},
		{String("maçã"), "maçã"},
		{Bool(true), "True"},
		{Bool(false), "False"},
		{Null(), "None"},
	}

	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestElementJSONRoundTrip(t *testing.T) {
	var c Collection
	if err := json.Unmarshal([]byte(`[1, 2.5, "x", true, null]`), &c); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Of(1, 2.5, "x", true, nil)
	if diff := cmp.Diff(want, c, elementEq); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[1,2.5,"x",true,null]` {
		t.Errorf("Marshal = %s", data)
	}
}

func TestElementRejectsComposites(t *testing.T) {
	for _, input := range []string{`[[1]]`, `[{"a":1}]`} {
		var c Collection
		if err := json.Unmarshal([]byte(input), &c); err == nil {
			t.Errorf("Unmarshal(%s) should fail", input)
		}
	}
}

func TestNumberNonFinite(t *testing.T) {
	if Number(math.NaN()).Kind() != KindString {
		t.Error("NaN should be stored as a string element")
	}
	if Number(math.Inf(1)).Kind() != KindString {
		t.Error("+Inf should be stored as a string element")
	}
}

func TestParseList(t *testing.T) {
	got := ParseList(" 1, 2 ,, apple , 3.5,NaN ,")
	want := Of(1, 2, "apple", 3.5, "NaN")
	if diff := cmp.Diff(want, got, elementEq); diff != "" {
		t.Errorf("ParseList mismatch (-want +got):\n%s", diff)
	}
	if got := ParseList(""); len(got) != 0 {
		t.Errorf("ParseList(\"\") = %v, want empty", got)
	}
}

func TestDisplaySorted(t *testing.T) {
	t.Run("natural order", func(t *testing.T) {
		got := DisplaySorted(Of(10, 9, 100))
		if diff := cmp.Diff([]Element(Of(9, 10, 100)), got, elementEq); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("mixed kinds by text", func(t *testing.T) {
		in := Of("b", 1, "a")
		got := DisplaySorted(in)
		if diff := cmp.Diff([]Element(Of(1, "a", "b")), got, elementEq); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
		if in[0] != String("b") {
			t.Error("DisplaySorted must not modify its input")
		}
	})

	t.Run("collation", func(t *testing.T) {
		got := DisplaySorted(Of("banana", "Apple", "apple"))
		if got[2] != String("banana") {
			t.Errorf("collated order = %v, want banana last", got)
		}
	})
}

func TestNumberDisplayAndKindEquality(t *testing.T) {
	if got := Number(1.0).String(); got != "1" {
		t.Errorf("Number(1.0).String() = %q, want %q", got, "1")
	}
	if Number(1.0) != Int(1) {
		t.Error("Number(1.0) and Int(1) should be the same element")
	}
	if Bool(true) == Int(1) {
		t.Error("Bool(true) and Int(1) should be distinct elements")
	}
	if got := Unite(Of(true), Of(1)); len(got) != 2 {
		t.Errorf("Unite({true}, {1}) = %v, want 2 elements", got)
	}
}
