package sets

import (
	"fmt"
	"strings"
)

// Collection is an ordered sequence of elements interpreted as a set.
type Collection []Element

// Of builds a collection from Go scalars. It panics on unsupported types and is
// intended for tests and examples.
func Of(values ...any) Collection {
	c := make(Collection, 0, len(values))
	for _, v := range values {
		e, err := FromValue(v)
		if err != nil {
			panic(fmt.Sprintf("sets.Of: %v", err))
		}
		c = append(c, e)
	}
	return c
}

// ParseList splits comma-separated text into a collection. Items are trimmed,
// empty items are dropped, and numeric items become numbers.
func ParseList(text string) Collection {
	var c Collection
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c = append(c, ParseElement(part))
	}
	return c
}

// Len returns the number of elements including duplicates.
func (c Collection) Len() int { return len(c) }

// Unique returns the distinct elements in first-occurrence order.
func (c Collection) Unique() []Element {
	return newOrderedSet(c).items
}

// Contains reports whether e is a member of c.
func (c Collection) Contains(e Element) bool {
	for _, x := range c {
		if x == e {
			return true
		}
	}
	return false
}

// orderedSet is a set that remembers insertion order.
type orderedSet struct {
	index map[Element]struct{}
	items []Element
}

func newOrderedSet(elems ...[]Element) *orderedSet {
	s := &orderedSet{index: make(map[Element]struct{})}
	for _, list := range elems {
		for _, e := range list {
			s.add(e)
		}
	}
	return s
}

func (s *orderedSet) add(e Element) {
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = struct{}{}
	s.items = append(s.items, e)
}

func (s *orderedSet) contains(e Element) bool {
	_, ok := s.index[e]
	return ok
}

// filter returns members of s for which keep returns true, in order.
func (s *orderedSet) filter(keep func(Element) bool) []Element {
	out := make([]Element, 0, len(s.items))
	for _, e := range s.items {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
