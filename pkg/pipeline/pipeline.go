// Package pipeline runs a Venn render request end to end.
//
// A request names two element collections, an operation and whether to sort
// the result. The pipeline validates it, computes the set operation, draws the
// diagram and encodes it:
//
//	validate → compute (pkg/sets) → render (pkg/render/venn) → encode
//
// [Compute] is the bare, stateless call. [Runner] wraps it for the CLI and the
// HTTP service with a render cache, de-duplication of concurrent identical
// requests, observability hooks and a render history.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    A:         sets.Of(1, 2, 3),
//	    B:         sets.Of(2, 3, 4),
//	    Operation: "intersection",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Result.Strings(), res.Cardinality, len(res.Image.Data))
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vennsets/pkg/errors"
	"github.com/matzehuels/vennsets/pkg/render/venn"
	"github.com/matzehuels/vennsets/pkg/sets"
)

const (
	// DefaultScale is the pixel density multiplier.
	DefaultScale = venn.DefaultScale

	// MaxScale bounds the pixel density a request may ask for.
	MaxScale = 4.0

	// DefaultTTL is how long rendered images stay cached.
	DefaultTTL = 24 * time.Hour
)

// Options describes one render request.
type Options struct {
	A         sets.Collection `json:"A"`
	B         sets.Collection `json:"B"`
	Operation string          `json:"operation"`
	Sort      bool            `json:"sort,omitempty"`
	Scale     float64         `json:"scale,omitempty"`
	Refresh   bool            `json:"-"` // bypass the cache read

	Logger *log.Logger `json:"-"`

	op        sets.Operation
	validated bool
}

// Result is the outcome of a render request.
type Result struct {
	Result      sets.Result
	Cardinality int
	Image       *venn.Image

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds timing and size information.
type Stats struct {
	SizeA, SizeB int
	ComputeTime  time.Duration
	RenderTime   time.Duration
	Total        time.Duration
}

// CacheInfo reports how the image was obtained.
type CacheInfo struct {
	Hit    bool // read from the render cache
	Shared bool // produced by a concurrent identical request
}

// ValidateAndSetDefaults parses the operation, enforces input limits and fills
// defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	op, err := sets.ParseOperation(o.Operation)
	if err != nil {
		return err
	}
	if err := validateCollection("A", o.A); err != nil {
		return err
	}
	if err := validateCollection("B", o.B); err != nil {
		return err
	}
	if op == sets.CartesianProduct {
		if err := errors.ValidateProductSize(len(o.A), len(o.B)); err != nil {
			return err
		}
	}

	switch {
	case o.Scale == 0:
		o.Scale = DefaultScale
	case o.Scale < 0 || o.Scale > MaxScale:
		return errors.New(errors.ErrCodeInvalidInput, "scale %.2f out of range (0, %.0f]", o.Scale, MaxScale)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.op = op
	o.Operation = op.String()
	o.validated = true
	return nil
}

// Op returns the parsed operation. Valid only after ValidateAndSetDefaults.
func (o *Options) Op() sets.Operation { return o.op }

func validateCollection(name string, c sets.Collection) error {
	if err := errors.ValidateCollectionSize(name, len(c)); err != nil {
		return err
	}
	for _, e := range c {
		if s, ok := e.Text(); ok {
			if err := errors.ValidateElementText(s); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "collection %s", name)
			}
		}
	}
	return nil
}

// Compute applies op to a and b, optionally sorts the result, and renders the
// diagram. It is the stateless core call behind Runner.Execute.
func Compute(a, b sets.Collection, opName string, sort bool, opts ...venn.Option) (sets.Result, int, *venn.Image, error) {
	op, err := sets.ParseOperation(opName)
	if err != nil {
		return sets.Result{}, 0, nil, err
	}
	res, err := compute(op, a, b, sort)
	if err != nil {
		return sets.Result{}, 0, nil, err
	}
	img, err := venn.Render(a, b, op, opts...)
	if err != nil {
		return sets.Result{}, 0, nil, err
	}
	return res, res.Len(), img, nil
}

func compute(op sets.Operation, a, b sets.Collection, sort bool) (sets.Result, error) {
	res, err := sets.Apply(op, a, b)
	if err != nil {
		return sets.Result{}, err
	}
	if sort {
		res.Sort()
	}
	return res, nil
}
