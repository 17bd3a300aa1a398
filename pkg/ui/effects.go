package ui

import "fmt"

const (
	// VisibleClass is added to elements once they scroll into view
	VisibleClass = "show"
	// DefaultRevealThreshold is the fraction of the viewport an element's top must be above
	DefaultRevealThreshold = 0.75
)

// Rect is the vertical extent of an element relative to the viewport top
type Rect struct {
	Top    float64
	Bottom float64
}

// Element is anything that can be revealed on scroll
type Element struct {
	ID      string
	Rect    Rect
	Classes []string
}

// HasClass reports whether the element carries class c
func (e Element) HasClass(c string) bool {
	for _, have := range e.Classes {
		if have == c {
			return true
		}
	}
	return false
}

// InView reports whether a rect has entered the reveal zone:
// top at or above threshold*viewportHeight and bottom not above the viewport.
func InView(r Rect, viewportHeight, threshold float64) bool {
	return r.Top <= viewportHeight*threshold && r.Bottom >= 0
}

// Reveal applies the default threshold. It is run on load and after every scroll.
func Reveal(elements []Element, viewportHeight float64) []Element {
	return RevealWithThreshold(elements, viewportHeight, DefaultRevealThreshold)
}

// RevealWithThreshold returns a copy of elements where every element in view
// carries VisibleClass. Elements keep the class once added.
func RevealWithThreshold(elements []Element, viewportHeight, threshold float64) []Element {
	out := make([]Element, len(elements))
	for i, el := range elements {
		classes := make([]string, len(el.Classes))
		copy(classes, el.Classes)
		el.Classes = classes

		if InView(el.Rect, viewportHeight, threshold) && !el.HasClass(VisibleClass) {
			el.Classes = append(el.Classes, VisibleClass)
		}
		out[i] = el
	}
	return out
}

// StackRects lays out blocks of the given heights top to bottom, shifted up by
// scrollOffset, the way cards sit in a scrolling results pane.
func StackRects(heights []int, scrollOffset int) []Rect {
	rects := make([]Rect, len(heights))
	y := -scrollOffset
	for i, h := range heights {
		rects[i] = Rect{Top: float64(y), Bottom: float64(y + h)}
		y += h
	}
	return rects
}

// PointerEvent is a hover transition on a navigation item
type PointerEvent int

const (
	PointerEnter PointerEvent = iota
	PointerLeave
)

// Transform is a vertical offset in pixels (terminal rows in the TUI)
type Transform struct {
	TranslateY int
}

// String renders the transform as a CSS value
func (t Transform) String() string {
	if t.TranslateY == 0 {
		return "translateY(0)"
	}
	return fmt.Sprintf("translateY(%dpx)", t.TranslateY)
}

// Lifted reports whether the item is raised above its resting position
func (t Transform) Lifted() bool {
	return t.TranslateY < 0
}

// NavHover lifts a navigation item on enter and drops it back on leave
func NavHover(ev PointerEvent) Transform {
	if ev == PointerEnter {
		return Transform{TranslateY: -2}
	}
	return Transform{}
}
