package venn

import (
	"image"
	"math"
)

// Point is a position in diagram (data) coordinates.
type Point struct {
	X, Y float64
}

// Circle is a circle in diagram coordinates.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	return math.Hypot(p.X-c.Center.X, p.Y-c.Center.Y) <= c.Radius
}

// Grow returns the circle with its radius increased by d.
func (c Circle) Grow(d float64) Circle {
	return Circle{Center: c.Center, Radius: c.Radius + d}
}

// Bounds is an axis-aligned rectangle in diagram coordinates.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Expand returns b grown by the given margins.
func (b Bounds) Expand(left, right, bottom, top float64) Bounds {
	return Bounds{XMin: b.XMin - left, XMax: b.XMax + right, YMin: b.YMin - bottom, YMax: b.YMax + top}
}

// DiagramSpec fixes the two-circle layout. It does not depend on input data.
type DiagramSpec struct {
	A, B   Circle
	Bounds Bounds
}

// Layout is the geometry every diagram is drawn with.
var Layout = DiagramSpec{
	A:      Circle{Center: Point{X: -0.6, Y: 0}, Radius: 1.2},
	B:      Circle{Center: Point{X: 0.6, Y: 0}, Radius: 1.2},
	Bounds: Bounds{XMin: -2.5, XMax: 2.5, YMin: -2.2, YMax: 2.5},
}

// Origin is the geometric centre of the diagram.
func (s DiagramSpec) Origin() Point {
	return Point{X: (s.A.Center.X + s.B.Center.X) / 2, Y: (s.A.Center.Y + s.B.Center.Y) / 2}
}

// InLens reports whether p lies inside both circles.
func (s DiagramSpec) InLens(p Point) bool {
	return s.A.Contains(p) && s.B.Contains(p)
}

// MinGridSize is the smallest sampling grid used for the lens mask.
const MinGridSize = 500

// LensMask samples an n×n regular grid spanning s.Bounds and marks every sample
// inside both circles. Row 0 of the returned mask is the top edge (YMax). n is
// clamped up to MinGridSize.
func (s DiagramSpec) LensMask(n int) *image.Alpha {
	if n < MinGridSize {
		n = MinGridSize
	}
	mask := image.NewAlpha(image.Rect(0, 0, n, n))
	dx := s.Bounds.Width() / float64(n-1)
	dy := s.Bounds.Height() / float64(n-1)

	for row := 0; row < n; row++ {
		y := s.Bounds.YMax - float64(row)*dy
		off := row * mask.Stride
		for col := 0; col < n; col++ {
			if s.InLens(Point{X: s.Bounds.XMin + float64(col)*dx, Y: y}) {
				mask.Pix[off+col] = 0xff
			}
		}
	}
	return mask
}

// transform maps diagram coordinates onto a pixel canvas with equal aspect.
type transform struct {
	view  Bounds  // visible diagram region
	scale float64 // pixels per diagram unit
}

func (t transform) width() int  { return int(math.Ceil(t.view.Width() * t.scale)) }
func (t transform) height() int { return int(math.Ceil(t.view.Height() * t.scale)) }

// pt converts a diagram point to pixel coordinates (y grows downward).
func (t transform) pt(p Point) (float64, float64) {
	return (p.X - t.view.XMin) * t.scale, (t.view.YMax - p.Y) * t.scale
}

// length converts a diagram distance to pixels.
func (t transform) length(d float64) float64 { return d * t.scale }

// rect converts diagram bounds to the enclosing pixel rectangle.
func (t transform) rect(b Bounds) image.Rectangle {
	x0, y0 := t.pt(Point{X: b.XMin, Y: b.YMax})
	x1, y1 := t.pt(Point{X: b.XMax, Y: b.YMin})
	return image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
}
