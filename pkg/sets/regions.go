package sets

// Regions partitions A∪B into the three areas of a two-set Venn diagram.
// OnlyA, OnlyB and Intersection are pairwise disjoint and together equal A∪B.
type Regions struct {
	OnlyA        []Element
	OnlyB        []Element
	Intersection []Element

	// ProductSize is len(A)*len(B) over the raw collections. It gates the
	// Cartesian pair listing.
	ProductSize int
}

// Classify computes the regions for a and b.
func Classify(a, b Collection) Regions {
	sa := newOrderedSet(a)
	sb := newOrderedSet(b)
	return Regions{
		OnlyA:        sa.filter(func(e Element) bool { return !sb.contains(e) }),
		OnlyB:        sb.filter(func(e Element) bool { return !sa.contains(e) }),
		Intersection: sa.filter(sb.contains),
		ProductSize:  len(a) * len(b),
	}
}

// Empty reports whether both inputs were empty.
func (r Regions) Empty() bool {
	return len(r.OnlyA) == 0 && len(r.OnlyB) == 0 && len(r.Intersection) == 0
}

// All returns OnlyA, Intersection and OnlyB concatenated.
func (r Regions) All() []Element {
	out := make([]Element, 0, len(r.OnlyA)+len(r.OnlyB)+len(r.Intersection))
	out = append(out, r.OnlyA...)
	out = append(out, r.Intersection...)
	return append(out, r.OnlyB...)
}
