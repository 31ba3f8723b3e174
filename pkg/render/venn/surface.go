package venn

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/vennsets/pkg/fonts"
)

// buffers recycles canvas pixel buffers between renders. A buffer is owned by
// exactly one surface at a time.
var buffers sync.Pool

type faceKey struct {
	weight fonts.Weight
	size   float64
}

// surface is the per-call drawing target: a gg context over a pooled RGBA
// buffer plus the font faces opened while drawing.
type surface struct {
	dc    *gg.Context
	buf   *image.RGBA
	t     transform
	dpi   float64
	faces map[faceKey]font.Face
	done  bool
}

func acquireSurface(t transform, dpi float64) *surface {
	w, h := t.width(), t.height()
	buf, _ := buffers.Get().(*image.RGBA)
	if buf == nil || buf.Rect.Dx() != w || buf.Rect.Dy() != h {
		buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	dc := gg.NewContextForRGBA(buf)
	dc.SetColor(ColorBackground)
	dc.Clear()
	return &surface{dc: dc, buf: buf, t: t, dpi: dpi, faces: make(map[faceKey]font.Face)}
}

// release closes every face and returns the buffer to the pool. Calling it
// more than once is a no-op.
func (s *surface) release() {
	if s.done {
		return
	}
	s.done = true
	for _, f := range s.faces {
		f.Close()
	}
	s.faces = nil
	s.dc = nil
	buffers.Put(s.buf)
	s.buf = nil
}

// points converts a size in points to pixels at the surface resolution.
func (s *surface) points(pt float64) float64 { return pt * s.dpi / 72 }

func (s *surface) face(style TextStyle) (font.Face, error) {
	key := faceKey{weight: style.Weight, size: style.Size}
	if f, ok := s.faces[key]; ok {
		return f, nil
	}
	f, err := fonts.NewFace(style.Weight, style.Size, s.dpi)
	if err != nil {
		return nil, fmt.Errorf("font %s %.0fpt: %w", style.Weight, style.Size, err)
	}
	s.faces[key] = f
	return f, nil
}
