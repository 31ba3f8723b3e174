package pipeline

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/vennsets/pkg/errors"
	"github.com/matzehuels/vennsets/pkg/sets"
)

// request is the JSON body accepted by the HTTP API. The operation may be
// given under any of its historical field names.
type request struct {
	A        sets.Collection `json:"A"`
	B        sets.Collection `json:"B"`
	Op       string          `json:"operation"`
	OpShort  string          `json:"op"`
	OpLegacy string          `json:"operacao"`
	Sort     bool            `json:"sort"`
	Scale    float64         `json:"scale"`
}

// DecodeRequest reads a JSON render request. Malformed JSON or non-scalar
// elements fail with INVALID_INPUT; a missing operation fails with
// INVALID_OPERATION.
func DecodeRequest(r io.Reader) (Options, error) {
	var req request
	dec := json.NewDecoder(r)
	if err := dec.Decode(&req); err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body")
	}

	op := firstNonEmpty(req.Op, req.OpShort, req.OpLegacy)
	if op == "" {
		return Options{}, errors.New(errors.ErrCodeInvalidOperation, "operation is required")
	}
	return Options{
		A:         req.A,
		B:         req.B,
		Operation: op,
		Sort:      req.Sort,
		Scale:     req.Scale,
	}, nil
}

// ParseArgs builds options from comma-separated element lists as typed on
// the command line.
func ParseArgs(a, b, op string, sort bool) Options {
	return Options{
		A:         sets.ParseList(a),
		B:         sets.ParseList(b),
		Operation: op,
		Sort:      sort,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
