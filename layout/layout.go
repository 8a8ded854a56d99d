// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements a flexbox measurement and layout engine.

An Engine owns an ordered collection of Nodes, each wrapping a
Measurable child. Measure partitions the children into flex lines,
resolves their sizes along the main and cross axes and returns the size
of the container. Layout then assigns every visible child its final
bounds.

The engine works in whole layout units and knows nothing about pixels,
density or rendering. Nesting is achieved by a child whose Measurable is
itself backed by an Engine.
*/
package layout

import (
	"fmt"
	"math"
)

// Mode is the kind of constraint a MeasureSpec places on a size.
type Mode uint8

const (
	// ModeUnconstrained places no limit on the size.
	ModeUnconstrained Mode = iota
	// ModeExactly requires the size to equal the spec size.
	ModeExactly
	// ModeAtMost limits the size to at most the spec size.
	ModeAtMost
)

// MeasureSpec constrains a measured size along one axis.
type MeasureSpec struct {
	Size int
	Mode Mode
}

// Size is a width and a height in layout units.
type Size struct {
	Width, Height int
}

// Unlimited is the maximum size of a Measurable without an upper
// bound.
const Unlimited = math.MaxInt32

// MakeMeasureSpec returns a spec of the given size and mode. It panics
// if size is negative.
func MakeMeasureSpec(size int, mode Mode) MeasureSpec {
	if size < 0 {
		panic(fmt.Errorf("layout: negative measure spec size %d", size))
	}
	return MeasureSpec{Size: size, Mode: mode}
}

// Exactly returns a spec requiring exactly size units.
func Exactly(size int) MeasureSpec {
	return MakeMeasureSpec(size, ModeExactly)
}

// AtMost returns a spec allowing up to size units.
func AtMost(size int) MeasureSpec {
	return MakeMeasureSpec(size, ModeAtMost)
}

// Unconstrained returns a spec with no size limit.
func Unconstrained() MeasureSpec {
	return MeasureSpec{Mode: ModeUnconstrained}
}

// ResolveSize reconciles a desired size with a spec.
func ResolveSize(size int, spec MeasureSpec) int {
	switch spec.Mode {
	case ModeExactly:
		return spec.Size
	case ModeAtMost:
		if size > spec.Size {
			return spec.Size
		}
		return size
	case ModeUnconstrained:
		return size
	default:
		panic("unreachable")
	}
}

func (s MeasureSpec) String() string {
	return fmt.Sprintf("%v(%d)", s.Mode, s.Size)
}

func (m Mode) String() string {
	switch m {
	case ModeUnconstrained:
		return "Unconstrained"
	case ModeExactly:
		return "Exactly"
	case ModeAtMost:
		return "AtMost"
	default:
		panic("unreachable")
	}
}

func (s Size) String() string {
	return fmt.Sprintf("(%d,%d)", s.Width, s.Height)
}

// Spacing is the space around the edges of a box. Start and End are
// the horizontal edges.
type Spacing struct {
	Start, End, Top, Bottom int
}

// NewSpacing returns the Spacing with the given edges, in CSS order.
// It panics if any edge is negative.
func NewSpacing(top, end, bottom, start int) Spacing {
	s := Spacing{Start: start, End: end, Top: top, Bottom: bottom}
	s.mustValidate()
	return s
}

// UniformSpacing returns a Spacing with a single value on all edges.
func UniformSpacing(v int) Spacing {
	return NewSpacing(v, v, v, v)
}

// Horizontal returns the sum of Start and End.
func (s Spacing) Horizontal() int {
	return s.Start + s.End
}

// Vertical returns the sum of Top and Bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

func (s Spacing) mustValidate() {
	if s.Start < 0 || s.End < 0 || s.Top < 0 || s.Bottom < 0 {
		panic(fmt.Errorf("layout: negative spacing %+v", s))
	}
}

type dimensionKind uint8

const (
	wrapContent dimensionKind = iota
	matchParent
	exact
)

// Dimension is the size a Measurable requests along one axis: an exact
// size, the size of its parent or the size of its content. The zero
// Dimension requests the size of its content.
type Dimension struct {
	kind dimensionKind
	size int
}

// Exact returns a Dimension of exactly size units. It panics if size is
// negative.
func Exact(size int) Dimension {
	if size < 0 {
		panic(fmt.Errorf("layout: negative dimension %d", size))
	}
	return Dimension{kind: exact, size: size}
}

// MatchParent returns a Dimension filling the space of the parent.
func MatchParent() Dimension {
	return Dimension{kind: matchParent}
}

// WrapContent returns a Dimension sized by content.
func WrapContent() Dimension {
	return Dimension{kind: wrapContent}
}

// Size returns the exact size of d and whether d is exact.
func (d Dimension) Size() (int, bool) {
	return d.size, d.kind == exact
}

// IsMatchParent reports whether d fills its parent.
func (d Dimension) IsMatchParent() bool {
	return d.kind == matchParent
}

// IsWrapContent reports whether d is sized by content.
func (d Dimension) IsWrapContent() bool {
	return d.kind == wrapContent
}

func (d Dimension) String() string {
	switch d.kind {
	case wrapContent:
		return "WrapContent"
	case matchParent:
		return "MatchParent"
	case exact:
		return fmt.Sprintf("Exact(%d)", d.size)
	default:
		panic("unreachable")
	}
}

// childSpec derives the spec of a child along one axis from the spec
// of its parent, the parent padding and child margins consumed along
// that axis, and the child's requested dimension.
func childSpec(parent MeasureSpec, used int, d Dimension) MeasureSpec {
	avail := parent.Size - used
	if avail < 0 {
		avail = 0
	}
	if size, ok := d.Size(); ok {
		return Exactly(size)
	}
	switch parent.Mode {
	case ModeExactly:
		if d.IsMatchParent() {
			return Exactly(avail)
		}
		return AtMost(avail)
	case ModeAtMost:
		return AtMost(avail)
	case ModeUnconstrained:
		return MakeMeasureSpec(avail, ModeUnconstrained)
	default:
		panic("unreachable")
	}
}
