package venn

import (
	"strings"

	"github.com/matzehuels/vennsets/pkg/sets"
)

// Label limits and placement in diagram units.
const (
	MaxRegionItems    = 6  // elements shown per region before truncating
	MaxCaptionPairs   = 15 // pairs shown in the Cartesian caption
	MaxCaptionProduct = 20 // |A|·|B| above which the caption is omitted
	labelSeparator    = ", "
	ellipsis          = "..."
	regionLabelOffset = 0.5 // horizontal shift of OnlyA/OnlyB labels from their centres
	setNameLift       = 0.5 // height of the set names above the circle tops
	captionY          = -1.4
	descriptionY      = -2.0
	captionWrapWidth  = 4.4 // diagram units
	titleBandHeight   = 0.6 // diagram units above Bounds.YMax
	canvasMargin      = 0.15
)

// LabelRole identifies what a label describes.
type LabelRole int

const (
	RoleTitle LabelRole = iota
	RoleSetName
	RoleOnlyA
	RoleOnlyB
	RoleIntersection
	RoleDescription
	RoleCaption
)

func (r LabelRole) String() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleSetName:
		return "set-name"
	case RoleOnlyA:
		return "only-a"
	case RoleOnlyB:
		return "only-b"
	case RoleIntersection:
		return "intersection"
	case RoleDescription:
		return "description"
	case RoleCaption:
		return "caption"
	default:
		return "unknown"
	}
}

// Label is a piece of text centred at a diagram position.
type Label struct {
	Role  LabelRole
	Text  string
	At    Point
	Style TextStyle
	Box   *BoxStyle // nil for bare text
	Wrap  float64   // wrap width in diagram units; 0 disables wrapping
}

// FormatElements renders up to maxItems elements in display order joined by
// ", ". When elements are dropped an ellipsis is appended on its own line.
// An empty input yields "".
func FormatElements(elems []sets.Element, maxItems int) string {
	if len(elems) == 0 {
		return ""
	}
	sorted := sets.DisplaySorted(elems)
	truncated := len(sorted) > maxItems
	if truncated {
		sorted = sorted[:maxItems]
	}
	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = e.String()
	}
	text := strings.Join(parts, labelSeparator)
	if truncated {
		text += "\n" + ellipsis
	}
	return text
}

// FormatPairs renders up to maxPairs pairs joined by ", ", with a trailing
// ellipsis when more pairs exist.
func FormatPairs(pairs []sets.Pair, maxPairs int) string {
	n := min(len(pairs), maxPairs)
	parts := make([]string, n)
	for i := range n {
		parts[i] = pairs[i].String()
	}
	text := strings.Join(parts, labelSeparator)
	if len(pairs) > maxPairs {
		text += ellipsis
	}
	return text
}

// PlaceLabels lays out every text element of the diagram. Region labels appear
// only for non-empty regions. The Cartesian caption appears only when
// |A|·|B| ≤ MaxCaptionProduct.
func PlaceLabels(spec DiagramSpec, profile StyleProfile, op sets.Operation, a, b sets.Collection, r sets.Regions) []Label {
	title := titleText
	title.Color = profile.TitleColor

	labels := []Label{
		{Role: RoleTitle, Text: profile.Title, At: Point{X: spec.Origin().X, Y: spec.Bounds.YMax + titleBandHeight/2}, Style: title},
		{Role: RoleSetName, Text: "A", At: Point{X: spec.A.Center.X, Y: spec.A.Radius + setNameLift}, Style: setNameText},
		{Role: RoleSetName, Text: "B", At: Point{X: spec.B.Center.X, Y: spec.B.Radius + setNameLift}, Style: setNameText},
	}

	regions := []struct {
		role  LabelRole
		elems []sets.Element
		at    Point
	}{
		{RoleOnlyA, r.OnlyA, Point{X: spec.A.Center.X - regionLabelOffset, Y: spec.A.Center.Y}},
		{RoleOnlyB, r.OnlyB, Point{X: spec.B.Center.X + regionLabelOffset, Y: spec.B.Center.Y}},
		{RoleIntersection, r.Intersection, spec.Origin()},
	}
	for _, reg := range regions {
		if len(reg.elems) == 0 {
			continue
		}
		box := regionBox
		labels = append(labels, Label{
			Role:  reg.role,
			Text:  FormatElements(reg.elems, MaxRegionItems),
			At:    reg.at,
			Style: regionText,
			Box:   &box,
		})
	}

	labels = append(labels, Label{
		Role:  RoleDescription,
		Text:  profile.Description,
		At:    Point{X: spec.Origin().X, Y: descriptionY},
		Style: descriptionText,
	})

	if op == sets.CartesianProduct && r.ProductSize <= MaxCaptionProduct && r.ProductSize > 0 {
		box := captionBox
		labels = append(labels, Label{
			Role:  RoleCaption,
			Text:  FormatPairs(sets.Product(a, b), MaxCaptionPairs),
			At:    Point{X: spec.Origin().X, Y: captionY},
			Style: captionText,
			Box:   &box,
			Wrap:  captionWrapWidth,
		})
	}
	return labels
}
