// Package fonts provides the Go font family for raster text rendering.
//
// The fonts ship with golang.org/x/image, so they are compiled into the binary
// and available without system font dependencies. Parsed fonts are cached after
// first use; faces are created per caller because a font.Face is not safe for
// concurrent use.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight selects a font from the family.
type Weight int

const (
	Regular Weight = iota
	Medium
	Bold
	Italic
)

func (w Weight) String() string {
	switch w {
	case Regular:
		return "regular"
	case Medium:
		return "medium"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return fmt.Sprintf("Weight(%d)", int(w))
	}
}

// FontFamily is the family name of the embedded fonts.
const FontFamily = "Go"

var sources = map[Weight][]byte{
	Regular: goregular.TTF,
	Medium:  gomedium.TTF,
	Bold:    gobold.TTF,
	Italic:  goitalic.TTF,
}

// Cache for parsed fonts (computed once on first access).
var (
	parsed     map[Weight]*opentype.Font
	parseErr   error
	parsedOnce sync.Once
)

func load() (map[Weight]*opentype.Font, error) {
	parsedOnce.Do(func() {
		parsed = make(map[Weight]*opentype.Font, len(sources))
		for w, ttf := range sources {
			f, err := opentype.Parse(ttf)
			if err != nil {
				parseErr = fmt.Errorf("parse %s font: %w", w, err)
				return
			}
			parsed[w] = f
		}
	})
	return parsed, parseErr
}

// NewFace returns a face of the given weight at size points for a dpi-resolution
// output. The caller owns the face and should Close it when done.
func NewFace(w Weight, size, dpi float64) (font.Face, error) {
	fs, err := load()
	if err != nil {
		return nil, err
	}
	f, ok := fs[w]
	if !ok {
		return nil, fmt.Errorf("unknown font weight: %v", w)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
