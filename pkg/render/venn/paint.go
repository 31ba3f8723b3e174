package venn

import (
	"image"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const lineSpacing = 1.3

func (s *surface) setColor(c colorful.Color, alpha float64) {
	s.dc.SetRGBA(c.R, c.G, c.B, alpha)
}

func (s *surface) paintScene(scene Scene, gridSize int) error {
	for _, l := range scene.Layers {
		if err := s.paintLayer(l, gridSize); err != nil {
			return err
		}
	}
	for _, l := range scene.Labels {
		if err := s.paintLabel(l); err != nil {
			return err
		}
	}
	return nil
}

func (s *surface) paintLayer(l Layer, gridSize int) error {
	switch l.Kind {
	case LayerLensGlow, LayerLens:
		return s.paintLens(l, gridSize)
	default:
		s.paintCircle(l)
		return nil
	}
}

func (s *surface) paintCircle(l Layer) {
	x, y := s.t.pt(l.Circle.Center)
	s.dc.DrawCircle(x, y, s.t.length(l.Circle.Radius))
	s.setColor(l.Fill, l.Alpha)
	if !l.Border {
		s.dc.Fill()
		return
	}
	s.dc.FillPreserve()
	s.setColor(ColorBorder, l.Alpha)
	s.dc.SetLineWidth(s.points(BorderWidth))
	s.dc.Stroke()
}

// paintLens fills the sampled lens by scaling its occupancy grid onto the plot
// rectangle and using it as a clip mask.
func (s *surface) paintLens(l Layer, gridSize int) error {
	grid := l.Lens.LensMask(gridSize)
	mask := image.NewAlpha(s.buf.Rect)
	draw.BiLinear.Scale(mask, s.t.rect(l.Lens.Bounds), grid, grid.Bounds(), draw.Src, nil)

	if err := s.dc.SetMask(mask); err != nil {
		return err
	}
	s.setColor(l.Fill, l.Alpha)
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.dc.Fill()
	s.dc.ResetClip()
	return nil
}

func (s *surface) paintLabel(l Label) error {
	if l.Text == "" {
		return nil
	}
	face, err := s.face(l.Style)
	if err != nil {
		return err
	}
	s.dc.SetFontFace(face)

	var lines []string
	if l.Wrap > 0 {
		lines = s.dc.WordWrap(l.Text, s.t.length(l.Wrap))
	} else {
		lines = strings.Split(l.Text, "\n")
	}

	lineH := s.dc.FontHeight()
	var w float64
	for _, line := range lines {
		lw, _ := s.dc.MeasureString(line)
		w = math.Max(w, lw)
	}
	h := lineH * (1 + lineSpacing*float64(len(lines)-1))
	x, y := s.t.pt(l.At)

	if l.Box != nil {
		pad := s.points(l.Box.Pad * l.Style.Size)
		s.dc.DrawRoundedRectangle(x-w/2-pad, y-h/2-pad, w+2*pad, h+2*pad, pad)
		s.setColor(l.Box.Fill, l.Box.FillAlpha)
		s.dc.FillPreserve()
		s.setColor(l.Box.Border, 1)
		s.dc.SetLineWidth(s.points(l.Box.BorderWidth))
		s.dc.Stroke()
	}

	s.setColor(l.Style.Color, 1)
	top := y - h/2
	for i, line := range lines {
		s.dc.DrawStringAnchored(line, x, top+lineH/2+float64(i)*lineH*lineSpacing, 0.5, 0.5)
	}
	return nil
}
