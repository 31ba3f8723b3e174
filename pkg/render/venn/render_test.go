package venn

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/vennsets/pkg/errors"
	"github.com/matzehuels/vennsets/pkg/sets"
)

func decode(t *testing.T, img *Image) image.Image {
	t.Helper()
	m, err := png.Decode(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return m
}

func TestRenderEveryOperation(t *testing.T) {
	a, b := sets.Of(1, 2, 3), sets.Of(2, 3, 4)
	for _, op := range sets.Operations() {
		t.Run(op.String(), func(t *testing.T) {
			img, err := Render(a, b, op)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if img.Format != FormatPNG || img.MIME() != "image/png" {
				t.Errorf("format = %s (%s)", img.Format, img.MIME())
			}
			m := decode(t, img)
			if m.Bounds().Dx() != img.Width || m.Bounds().Dy() != img.Height {
				t.Errorf("decoded %v, reported %dx%d", m.Bounds(), img.Width, img.Height)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	a, b := sets.Of("x", 1, 2.5), sets.Of(2.5, "y")
	first, err := Render(a, b, sets.SymmetricDifference)
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		again, err := Render(a, b, sets.SymmetricDifference)
		if err != nil {
			t.Fatal(err)
		}
		if again.Width != first.Width || again.Height != first.Height || again.Format != first.Format {
			t.Fatalf("image metadata differs: %dx%d vs %dx%d", again.Width, again.Height, first.Width, first.Height)
		}
		if !bytes.Equal(again.Data, first.Data) {
			t.Fatal("image bytes differ between identical renders")
		}
	}
}

func TestRenderInvalidOperation(t *testing.T) {
	img, err := Render(sets.Of(1), sets.Of(2), sets.Operation(42))
	if !errors.Is(err, errors.ErrCodeInvalidOperation) {
		t.Fatalf("error = %v, want INVALID_OPERATION", err)
	}
	if img != nil {
		t.Error("image returned for invalid operation")
	}
}

func TestRenderEmptySets(t *testing.T) {
	img, err := Render(nil, nil, sets.Union)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(img.Data) == 0 {
		t.Fatal("empty image")
	}
}

func TestRenderLargeCartesianOmitsCaption(t *testing.T) {
	a := sets.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	if _, err := Render(a, a, sets.CartesianProduct); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func TestRenderScale(t *testing.T) {
	small, err := Render(sets.Of(1), sets.Of(1), sets.Union)
	if err != nil {
		t.Fatal(err)
	}
	big, err := Render(sets.Of(1), sets.Of(1), sets.Union, WithScale(2))
	if err != nil {
		t.Fatal(err)
	}
	if big.Width < 2*small.Width-1 || big.Height < 2*small.Height-1 {
		t.Errorf("2x = %dx%d, 1x = %dx%d", big.Width, big.Height, small.Width, small.Height)
	}
}

func TestRenderLensOnlyWhenIntersecting(t *testing.T) {
	probe := func(a, b sets.Collection) color.Color {
		t.Helper()
		scene, err := Compose(a, b, sets.Union)
		if err != nil {
			t.Fatal(err)
		}
		img, err := RenderScene(scene)
		if err != nil {
			t.Fatal(err)
		}
		x, y := newRenderer().transform(scene.Spec).pt(Point{X: 0, Y: 0.8})
		return decode(t, img).At(int(x), int(y))
	}

	with := probe(sets.Of(1, 2), sets.Of(2, 3))
	without := probe(sets.Of(1), sets.Of(3))
	if with == without {
		t.Errorf("lens pixel %v identical with and without intersection", with)
	}
}

func TestImageDataURI(t *testing.T) {
	img := &Image{Data: []byte("png"), Format: FormatPNG}
	if got, want := img.DataURI(), "data:image/png;base64,cG5n"; got != want {
		t.Errorf("DataURI = %q, want %q", got, want)
	}
	rendered, err := Render(sets.Of(1), sets.Of(2), sets.Intersection)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(rendered.DataURI(), "data:image/png;base64,iVBOR") {
		t.Errorf("DataURI prefix = %.40s", rendered.DataURI())
	}
}

func TestSurfaceRelease(t *testing.T) {
	s := acquireSurface(newRenderer().transform(Layout), DefaultDPI)
	if _, err := s.face(regionText); err != nil {
		t.Fatalf("face: %v", err)
	}
	if len(s.faces) != 1 {
		t.Fatalf("faces = %d, want 1", len(s.faces))
	}
	s.release()
	if s.buf != nil || s.faces != nil {
		t.Error("release left resources attached")
	}
	s.release() // second release is a no-op
}

func TestSurfaceClearsReusedBuffer(t *testing.T) {
	tr := newRenderer().transform(Layout)
	s := acquireSurface(tr, DefaultDPI)
	s.dc.SetRGB(1, 0, 0)
	s.dc.Clear()
	s.release()

	s = acquireSurface(tr, DefaultDPI)
	defer s.release()
	if c := s.buf.RGBAAt(0, 0); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("reused buffer pixel = %v, want white", c)
	}
}
