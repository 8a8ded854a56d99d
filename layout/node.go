// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"
)

// Measurable is the capability a flex child offers the engine.
//
// Measure must be a pure function of its arguments, and the minimum and
// maximum sizes must agree with what Measure returns for ModeExactly
// specs within those bounds.
type Measurable interface {
	// RequestedWidth is the width the child asks for.
	RequestedWidth() Dimension
	// RequestedHeight is the height the child asks for.
	RequestedHeight() Dimension
	MinWidth() int
	MinHeight() int
	// MaxWidth returns Unlimited if the width has no upper bound.
	MaxWidth() int
	// MaxHeight returns Unlimited if the height has no upper bound.
	MaxHeight() int
	// Measure computes the size of the child under the given specs.
	Measure(width, height MeasureSpec) Size
}

// Baseliner is implemented by Measurables with a text baseline.
type Baseliner interface {
	// Baseline returns the distance from the top edge to the
	// baseline for the given measured size.
	Baseline(size Size) int
}

// AlignSelf overrides the cross axis alignment of a single node.
type AlignSelf uint8

const (
	// AlignSelfAuto uses the AlignItems of the engine.
	AlignSelfAuto AlignSelf = iota
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// DefaultOrder is the Order of a new Node.
const DefaultOrder = 1

// FlexBasis is an optional main size expressed as a fraction of the
// main size of the container. The zero FlexBasis is unset.
type FlexBasis struct {
	fraction float32
	set      bool
}

// Basis returns a FlexBasis of f times the container main size.
func Basis(f float32) FlexBasis {
	return FlexBasis{fraction: f, set: true}
}

// Fraction returns the basis fraction and whether it is set.
func (b FlexBasis) Fraction() (float32, bool) {
	return b.fraction, b.set
}

// Node is a child of an Engine. Its identity is its position in the
// engine's collection.
type Node struct {
	Measurable Measurable
	// Visible nodes take up space. Invisible nodes are skipped by
	// measurement and layout.
	Visible bool
	// Order controls the layout order. Nodes are laid out in
	// ascending Order, ties broken by collection index.
	Order int
	// FlexGrow is the weight of the node when distributing free
	// space.
	FlexGrow float32
	// FlexShrink is the weight of the node when distributing
	// missing space. A node with zero FlexShrink never shrinks.
	FlexShrink float32
	FlexBasis  FlexBasis
	AlignSelf  AlignSelf
	// WrapBefore forces the node to start a new line when the
	// engine wraps.
	WrapBefore bool
	Margin     Spacing
	// OnLayout, if set, receives the final bounds of the node
	// during Engine.Layout.
	OnLayout func(bounds image.Rectangle)

	measured Size
	bounds   image.Rectangle
}

// NewNode returns a visible Node with default flex properties.
func NewNode(m Measurable) *Node {
	return &Node{
		Measurable: m,
		Visible:    true,
		Order:      DefaultOrder,
		FlexShrink: 1,
	}
}

// MeasuredSize returns the size computed by the last Engine.Measure.
func (n *Node) MeasuredSize() Size {
	return n.measured
}

// Bounds returns the bounds assigned by the last Engine.Layout, or the
// empty rectangle if the node was invisible.
func (n *Node) Bounds() image.Rectangle {
	return n.bounds
}

// baseline of the node at its measured size. Without a Baseliner the
// baseline is the bottom edge.
func (n *Node) baseline() int {
	if b, ok := n.Measurable.(Baseliner); ok {
		return b.Baseline(n.measured)
	}
	return n.measured.Height
}

func (n *Node) alignment(items AlignItems) AlignItems {
	switch n.AlignSelf {
	case AlignSelfAuto:
		return items
	case AlignSelfFlexStart:
		return AlignItemsFlexStart
	case AlignSelfFlexEnd:
		return AlignItemsFlexEnd
	case AlignSelfCenter:
		return AlignItemsCenter
	case AlignSelfBaseline:
		return AlignItemsBaseline
	case AlignSelfStretch:
		return AlignItemsStretch
	default:
		panic("unreachable")
	}
}

func (n *Node) place(r image.Rectangle) {
	n.bounds = r
	if n.OnLayout != nil {
		n.OnLayout(r)
	}
}

func (n *Node) String() string {
	return fmt.Sprintf("Node{order=%d grow=%g shrink=%g measured=%v}", n.Order, n.FlexGrow, n.FlexShrink, n.measured)
}

func (a AlignSelf) String() string {
	switch a {
	case AlignSelfAuto:
		return "Auto"
	case AlignSelfFlexStart:
		return "FlexStart"
	case AlignSelfFlexEnd:
		return "FlexEnd"
	case AlignSelfCenter:
		return "Center"
	case AlignSelfBaseline:
		return "Baseline"
	case AlignSelfStretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}
