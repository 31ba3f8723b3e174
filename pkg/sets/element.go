package sets

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the dynamic type of an Element.
type Kind uint8

// Element kinds, in the order they appear in JSON type names.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Element is an opaque, comparable set member.
//
// The zero value is the null element. Elements can be used as map keys and
// compared with ==; two numbers are equal when their float64 values are.
type Element struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Number returns a numeric element. NaN and infinities are stored as strings
// because they cannot be compared or encoded as JSON numbers.
func Number(f float64) Element {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return String(strconv.FormatFloat(f, 'g', -1, 64))
	}
	if f == 0 {
		f = 0 // fold -0
	}
	return Element{kind: KindNumber, num: f}
}

// Int returns a numeric element for an integer.
func Int(i int) Element { return Number(float64(i)) }

// String returns a string element.
func String(s string) Element { return Element{kind: KindString, str: s} }

// Bool returns a boolean element.
func Bool(b bool) Element { return Element{kind: KindBool, b: b} }

// Null returns the null element.
func Null() Element { return Element{} }

// Kind returns the element's kind.
func (e Element) Kind() Kind { return e.kind }

// Float returns the numeric value and whether e is a number.
func (e Element) Float() (float64, bool) { return e.num, e.kind == KindNumber }

// Text returns the string value and whether e is a string.
func (e Element) Text() (string, bool) { return e.str, e.kind == KindString }

// String returns the display form: numbers in shortest decimal form, strings
// verbatim, booleans as True/False and null as None.
func (e Element) String() string {
	switch e.kind {
	case KindNumber:
		return strconv.FormatFloat(e.num, 'f', -1, 64)
	case KindString:
		return e.str
	case KindBool:
		if e.b {
			return "True"
		}
		return "False"
	default:
		return "None"
	}
}

// MarshalJSON encodes the element as the JSON scalar it represents.
func (e Element) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case KindNumber:
		return json.Marshal(e.num)
	case KindString:
		return json.Marshal(e.str)
	case KindBool:
		return json.Marshal(e.b)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar. Arrays and objects are rejected because
// they have no identity as set members.
func (e *Element) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	el, err := FromValue(v)
	if err != nil {
		return err
	}
	*e = el
	return nil
}

// FromValue converts a Go scalar into an Element. It accepts the types produced
// by encoding/json (float64, string, bool, nil, json.Number) plus the common
// integer and float types.
func FromValue(v any) (Element, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Element:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Element{}, fmt.Errorf("invalid number %q: %w", x, err)
		}
		return Number(f), nil
	default:
		return Element{}, fmt.Errorf("unhashable element of type %T", v)
	}
}

// ParseElement interprets user-typed text the way the web form does: trimmed,
// numeric text becomes a number, anything else stays a string.
func ParseElement(s string) Element {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}
	return String(s)
}
