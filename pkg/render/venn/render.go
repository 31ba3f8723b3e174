package venn

import (
	"bytes"

	"github.com/matzehuels/vennsets/pkg/errors"
	"github.com/matzehuels/vennsets/pkg/sets"
)

// Rendering defaults.
const (
	DefaultPixelsPerUnit = 130.0
	DefaultDPI           = 120.0
	DefaultScale         = 1.0
)

// Option configures Render.
type Option func(*renderer)

type renderer struct {
	scale    float64
	gridSize int
}

// WithScale multiplies the pixel density (default 1.0). Values ≤ 0 are ignored.
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithGridSize sets the lens sampling grid (default and minimum MinGridSize).
func WithGridSize(n int) Option {
	return func(r *renderer) { r.gridSize = n }
}

func newRenderer(opts ...Option) renderer {
	r := renderer{scale: DefaultScale, gridSize: MinGridSize}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r renderer) transform(spec DiagramSpec) transform {
	view := spec.Bounds.Expand(canvasMargin, canvasMargin, canvasMargin, titleBandHeight+canvasMargin)
	return transform{view: view, scale: DefaultPixelsPerUnit * r.scale}
}

// Render draws the Venn diagram for op applied to a and b and encodes it as
// PNG. An invalid op fails with INVALID_OPERATION before any drawing; any
// drawing or encoding failure is reported as RENDER_FAILED.
func Render(a, b sets.Collection, op sets.Operation, opts ...Option) (*Image, error) {
	scene, err := Compose(a, b, op)
	if err != nil {
		return nil, err
	}
	return RenderScene(scene, opts...)
}

// RenderScene paints a composed scene onto a fresh surface and encodes it.
func RenderScene(scene Scene, opts ...Option) (img *Image, err error) {
	r := newRenderer(opts...)

	defer func() {
		if p := recover(); p != nil {
			img = nil
			err = errors.New(errors.ErrCodeRenderFailed, "render %s: %v", scene.Op, p)
		}
	}()

	s := acquireSurface(r.transform(scene.Spec), DefaultDPI*r.scale)
	defer s.release()

	if err := s.paintScene(scene, r.gridSize); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", scene.Op)
	}
	return s.encode()
}

func (s *surface) encode() (*Image, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return &Image{
		Data:   buf.Bytes(),
		Format: FormatPNG,
		Width:  s.dc.Width(),
		Height: s.dc.Height(),
	}, nil
}
