package venn

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/vennsets/pkg/sets"
)

// LayerKind identifies a shape layer of the diagram.
type LayerKind int

const (
	LayerLensGlow LayerKind = iota
	LayerGlowA
	LayerGlowB
	LayerCircleA
	LayerCircleB
	LayerLens
)

func (k LayerKind) String() string {
	switch k {
	case LayerLensGlow:
		return "lens-glow"
	case LayerGlowA:
		return "glow-a"
	case LayerGlowB:
		return "glow-b"
	case LayerCircleA:
		return "circle-a"
	case LayerCircleB:
		return "circle-b"
	case LayerLens:
		return "lens"
	default:
		return "unknown"
	}
}

// Layer is one filled shape. Circle layers fill Circle; lens layers fill the
// grid-sampled intersection of Lens.A and Lens.B.
type Layer struct {
	Kind   LayerKind
	Circle Circle
	Lens   DiagramSpec
	Fill   colorful.Color
	Alpha  float64
	Border bool // stroke the outline in ColorBorder at Alpha
}

// Scene is everything needed to paint one diagram. Layers are in paint order
// and are always painted before Labels.
type Scene struct {
	Op      sets.Operation
	Spec    DiagramSpec
	Profile StyleProfile
	Regions sets.Regions
	Layers  []Layer
	Labels  []Label
}

// Compose classifies a and b and lays out the shapes and labels for op. It
// performs no drawing.
func Compose(a, b sets.Collection, op sets.Operation) (Scene, error) {
	profile, err := ProfileFor(op)
	if err != nil {
		return Scene{}, err
	}
	spec := Layout
	regions := sets.Classify(a, b)
	hasLens := len(regions.Intersection) > 0

	var layers []Layer
	if profile.Glow.Has(GlowLens) && hasLens {
		layers = append(layers, Layer{
			Kind:  LayerLensGlow,
			Lens:  DiagramSpec{A: spec.A.Grow(GlowDelta), B: spec.B.Grow(GlowDelta), Bounds: spec.Bounds},
			Fill:  profile.ColorIntersection,
			Alpha: LensGlowAlpha,
		})
	}
	if profile.Glow.Has(GlowA) {
		layers = append(layers, Layer{Kind: LayerGlowA, Circle: spec.A.Grow(GlowDelta), Fill: profile.ColorA, Alpha: GlowAlpha})
	}
	if profile.Glow.Has(GlowB) {
		layers = append(layers, Layer{Kind: LayerGlowB, Circle: spec.B.Grow(GlowDelta), Fill: profile.ColorB, Alpha: GlowAlpha})
	}
	layers = append(layers,
		Layer{Kind: LayerCircleA, Circle: spec.A, Fill: profile.ColorA, Alpha: profile.AlphaA, Border: true},
		Layer{Kind: LayerCircleB, Circle: spec.B, Fill: profile.ColorB, Alpha: profile.AlphaB, Border: true},
	)
	if hasLens {
		layers = append(layers, Layer{Kind: LayerLens, Lens: spec, Fill: profile.ColorIntersection, Alpha: profile.AlphaIntersection})
	}

	return Scene{
		Op:      op,
		Spec:    spec,
		Profile: profile,
		Regions: regions,
		Layers:  layers,
		Labels:  PlaceLabels(spec, profile, op, a, b, regions),
	}, nil
}

// Kinds returns the layer kinds in paint order.
func (s Scene) Kinds() []LayerKind {
	kinds := make([]LayerKind, len(s.Layers))
	for i, l := range s.Layers {
		kinds[i] = l.Kind
	}
	return kinds
}

// Label returns the first label with the given role.
func (s Scene) Label(role LabelRole) (Label, bool) {
	for _, l := range s.Labels {
		if l.Role == role {
			return l, true
		}
	}
	return Label{}, false
}
