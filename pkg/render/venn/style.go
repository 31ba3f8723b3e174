package venn

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/vennsets/pkg/errors"
	"github.com/matzehuels/vennsets/pkg/fonts"
	"github.com/matzehuels/vennsets/pkg/sets"
)

// Palette.
var (
	ColorA            = mustHex("#F49AC2") // pastel pink
	ColorB            = mustHex("#A7C7E7") // pastel blue
	ColorIntersection = mustHex("#C9A0DC") // light purple
	ColorBorder       = mustHex("#B284BE")
	ColorMuted        = mustHex("#E8E8E8")
	ColorBackground   = mustHex("#FFFFFF")
	ColorSetName      = mustHex("#7B68EE")
	ColorLabelText    = mustHex("#333333")
	ColorDescription  = mustHex("#666666")
	ColorCaptionText  = mustHex("#555555")
)

// Glow selects the halos drawn beneath the circles.
type Glow uint8

const (
	GlowA    Glow = 1 << iota // halo around circle A
	GlowB                     // halo around circle B
	GlowLens                  // soft fill under the lens
)

// Has reports whether all bits of f are set.
func (g Glow) Has(f Glow) bool { return g&f == f }

// Halo geometry and opacity.
const (
	GlowDelta     = 0.08
	GlowAlpha     = 0.15
	LensGlowAlpha = 0.25
)

// Circle outline width in points.
const BorderWidth = 2.5

// StyleProfile is the fixed visual treatment for one operation.
type StyleProfile struct {
	AlphaA, AlphaB, AlphaIntersection float64
	ColorA, ColorB, ColorIntersection colorful.Color
	Glow                              Glow

	Title       string
	TitleColor  colorful.Color
	Description string
}

// profiles is the single source of per-operation styling. Entries are never
// derived from input data.
var profiles = map[sets.Operation]StyleProfile{
	sets.Union: {
		AlphaA: 0.6, AlphaB: 0.6, AlphaIntersection: 0.75,
		ColorA: ColorA, ColorB: ColorB, ColorIntersection: ColorIntersection,
		Title:       "Union (A or B)",
		TitleColor:  mustHex("#D16BA5"),
		Description: "All elements of A or B",
	},
	sets.Intersection: {
		AlphaA: 0.3, AlphaB: 0.3, AlphaIntersection: 0.8,
		ColorA: ColorA, ColorB: ColorB, ColorIntersection: ColorIntersection,
		Glow:        GlowLens,
		Title:       "Intersection (A and B)",
		TitleColor:  mustHex("#7B68EE"),
		Description: "Elements common to A and B",
	},
	sets.DifferenceAB: {
		AlphaA: 0.7, AlphaB: 0.25, AlphaIntersection: 0.25,
		ColorA: ColorA, ColorB: ColorB, ColorIntersection: ColorB,
		Glow:        GlowA,
		Title:       "Difference (A - B)",
		TitleColor:  mustHex("#F49AC2"),
		Description: "Elements in A that are not in B",
	},
	sets.DifferenceBA: {
		AlphaA: 0.25, AlphaB: 0.7, AlphaIntersection: 0.25,
		ColorA: ColorA, ColorB: ColorB, ColorIntersection: ColorA,
		Glow:        GlowB,
		Title:       "Difference (B - A)",
		TitleColor:  mustHex("#A7C7E7"),
		Description: "Elements in B that are not in A",
	},
	sets.SymmetricDifference: {
		AlphaA: 0.7, AlphaB: 0.7, AlphaIntersection: 0.15,
		ColorA: ColorA, ColorB: ColorB, ColorIntersection: ColorMuted,
		Glow:        GlowA | GlowB,
		Title:       "Symmetric Difference (A xor B)",
		TitleColor:  mustHex("#B284BE"),
		Description: "Elements in A or B, but not in both",
	},
	sets.CartesianProduct: {
		AlphaA: 0.55, AlphaB: 0.55, AlphaIntersection: 0.7,
		ColorA: ColorA, ColorB: ColorB, ColorIntersection: ColorIntersection,
		Title:       "Cartesian Product (A × B)",
		TitleColor:  mustHex("#86A8E7"),
		Description: "All ordered pairs (a, b)",
	},
}

// ProfileFor returns the style profile for op.
func ProfileFor(op sets.Operation) (StyleProfile, error) {
	p, ok := profiles[op]
	if !ok {
		return StyleProfile{}, errors.New(errors.ErrCodeInvalidOperation, "invalid operation: %v", op)
	}
	return p, nil
}

// TextStyle describes how a label is typeset.
type TextStyle struct {
	Weight fonts.Weight
	Size   float64 // points
	Color  colorful.Color
}

// BoxStyle describes the rounded backing box behind a label.
type BoxStyle struct {
	Fill        colorful.Color
	FillAlpha   float64
	Border      colorful.Color
	BorderWidth float64 // points
	Pad         float64 // multiple of the font size
}

// Text and box styles.
var (
	titleText       = TextStyle{Weight: fonts.Bold, Size: 20}
	setNameText     = TextStyle{Weight: fonts.Bold, Size: 26, Color: ColorSetName}
	regionText      = TextStyle{Weight: fonts.Medium, Size: 10, Color: ColorLabelText}
	descriptionText = TextStyle{Weight: fonts.Italic, Size: 11, Color: ColorDescription}
	captionText     = TextStyle{Weight: fonts.Regular, Size: 9, Color: ColorCaptionText}

	regionBox = BoxStyle{
		Fill: ColorBackground, FillAlpha: 0.85,
		Border: mustHex("#E0E7FF"), BorderWidth: 1.5, Pad: 0.4,
	}
	captionBox = BoxStyle{
		Fill: mustHex("#FAF5FF"), FillAlpha: 0.9,
		Border: mustHex("#E0D4F7"), BorderWidth: 2, Pad: 0.5,
	}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("venn: bad colour %q: %v", s, err))
	}
	return c
}
