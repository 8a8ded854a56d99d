// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"
)

// FlexWrap controls whether nodes wrap onto multiple lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	// WrapReverse wraps and stacks lines from the cross axis end.
	WrapReverse
)

// JustifyContent distributes nodes along the main axis of a line.
type JustifyContent uint8

const (
	JustifyFlexStart JustifyContent = iota
	JustifyFlexEnd
	JustifyCenter
	// JustifySpaceBetween distributes space evenly between nodes,
	// leaving no space at the start and end.
	JustifySpaceBetween
	// JustifySpaceAround distributes space evenly between nodes,
	// with half as much space at the start and end.
	JustifySpaceAround
	// JustifySpaceEvenly distributes space evenly between nodes and
	// at the start and end.
	JustifySpaceEvenly
)

// AlignItems positions nodes along the cross axis of their line.
type AlignItems uint8

const (
	AlignItemsFlexStart AlignItems = iota
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// AlignContent distributes lines along the cross axis when the
// container has an exact cross size.
type AlignContent uint8

const (
	AlignContentFlexStart AlignContent = iota
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentStretch
)

// NoMaxLines disables the line limit.
const NoMaxLines = 0

// Engine lays out a collection of nodes as a flex container.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	Direction      Direction
	Wrap           FlexWrap
	JustifyContent JustifyContent
	AlignItems     AlignItems
	AlignContent   AlignContent
	Padding        Spacing
	// MaxLines limits the number of lines. Values less than one
	// mean no limit.
	MaxLines int

	nodes []*Node
	// gen counts structural changes to nodes.
	gen uint64

	// Derived state, rebuilt by Measure.
	lines    []FlexLine
	order    []int
	orders   []int
	orderGen uint64
	frozen   []bool
	cache    measureCache
	measured bool
}

// NewEngine returns an Engine with the default container properties:
// a non-wrapping row with stretched items and lines.
func NewEngine() *Engine {
	return &Engine{
		Direction:    Row,
		AlignItems:   AlignItemsStretch,
		AlignContent: AlignContentStretch,
		MaxLines:     NoMaxLines,
	}
}

// Len returns the number of nodes.
func (e *Engine) Len() int {
	return len(e.nodes)
}

// Node returns the node at index i in insertion order.
func (e *Engine) Node(i int) *Node {
	return e.nodes[i]
}

// Nodes returns a copy of the node collection.
func (e *Engine) Nodes() []*Node {
	return slices.Clone(e.nodes)
}

// Add appends nodes to the collection.
func (e *Engine) Add(nodes ...*Node) {
	e.nodes = append(e.nodes, nodes...)
	e.changed()
}

// Insert inserts n at index i.
func (e *Engine) Insert(i int, n *Node) {
	e.nodes = slices.Insert(e.nodes, i, n)
	e.changed()
}

// Remove removes the node at index i.
func (e *Engine) Remove(i int) {
	e.nodes = slices.Delete(e.nodes, i, i+1)
	e.changed()
}

// Set replaces the node at index i.
func (e *Engine) Set(i int, n *Node) {
	e.nodes[i] = n
	e.changed()
}

// Clear removes every node.
func (e *Engine) Clear() {
	e.nodes = e.nodes[:0]
	e.changed()
}

func (e *Engine) changed() {
	e.gen++
	e.measured = false
}

// FlexLines returns the lines computed by the last Measure, spacer
// lines included.
func (e *Engine) FlexLines() []FlexLine {
	lines := make([]FlexLine, len(e.lines))
	for i, l := range e.lines {
		l.stretched = nil
		lines[i] = l
	}
	return lines
}

// LayoutOrder returns the insertion indices of the nodes in layout
// order, as computed by the last Measure.
func (e *Engine) LayoutOrder() []int {
	return slices.Clone(e.order)
}

// Measure computes the lines and node sizes of the container under the
// given specs and returns the size of the container.
func (e *Engine) Measure(width, height MeasureSpec) Size {
	e.Padding.mustValidate()
	for _, n := range e.nodes {
		n.Margin.mustValidate()
	}
	e.prepare()
	axis := e.Direction.Axis()
	e.lines = e.calculateFlexLines(width, height)
	e.determineMainSize(width, height)
	if axis == Horizontal && e.AlignItems == AlignItemsBaseline {
		e.alignBaselines()
	}
	mainSpec, crossSpec := axis.specs(width, height)
	e.determineCrossSize(crossSpec)
	e.stretchNodes()
	e.measured = true

	main := ResolveSize(e.largestMainSize(), mainSpec)
	cross := ResolveSize(e.sumOfCrossSize()+axis.crossSum(e.Padding), crossSpec)
	return axis.Size(main, cross)
}

// prepare rebuilds the layout order if the collection or any node
// order changed, and resets the per-pass state.
func (e *Engine) prepare() {
	if e.orderStale() {
		n := len(e.nodes)
		e.order = e.order[:0]
		for i := 0; i < n; i++ {
			e.order = append(e.order, i)
		}
		slices.SortStableFunc(e.order, func(a, b int) bool {
			return e.nodes[a].Order < e.nodes[b].Order
		})
		e.orders = e.orders[:0]
		for _, nd := range e.nodes {
			e.orders = append(e.orders, nd.Order)
		}
		e.orderGen = e.gen
	}
	if cap(e.frozen) < len(e.nodes) {
		e.frozen = make([]bool, len(e.nodes))
	}
	e.frozen = e.frozen[:len(e.nodes)]
	for i := range e.frozen {
		e.frozen[i] = false
	}
	e.cache.Reset()
}

func (e *Engine) orderStale() bool {
	if e.orderGen != e.gen || len(e.orders) != len(e.nodes) {
		return true
	}
	for i, n := range e.nodes {
		if e.orders[i] != n.Order {
			return true
		}
	}
	return false
}

// reordered returns the node at index i in layout order.
func (e *Engine) reordered(i int) *Node {
	return e.nodes[e.order[i]]
}

// measureNode measures n and stores its size, clamped to the bounds n
// declares. A clamped node is measured again with exact specs.
func (e *Engine) measureNode(n *Node, width, height MeasureSpec) {
	sz := e.measure(n, width, height)
	m := n.Measurable
	w := clamp(sz.Width, m.MinWidth(), m.MaxWidth())
	h := clamp(sz.Height, m.MinHeight(), m.MaxHeight())
	if w != sz.Width || h != sz.Height {
		e.measure(n, Exactly(w), Exactly(h))
	}
	n.measured = Size{Width: w, Height: h}
}

func (e *Engine) measure(n *Node, width, height MeasureSpec) Size {
	k := measureKey{node: n, width: width, height: height}
	if sz, ok := e.cache.Get(k); ok {
		return sz
	}
	sz := n.Measurable.Measure(width, height)
	e.cache.Put(k, sz)
	return sz
}

func (e *Engine) largestMainSize() int {
	largest := e.Direction.Axis().mainSum(e.Padding)
	for i := range e.lines {
		if s := e.lines[i].MainSize; s > largest {
			largest = s
		}
	}
	return largest
}

func (e *Engine) sumOfCrossSize() int {
	sum := 0
	for i := range e.lines {
		sum += e.lines[i].CrossSize
	}
	return sum
}

func (w FlexWrap) String() string {
	switch w {
	case NoWrap:
		return "NoWrap"
	case Wrap:
		return "Wrap"
	case WrapReverse:
		return "WrapReverse"
	default:
		panic("unreachable")
	}
}

func (j JustifyContent) String() string {
	switch j {
	case JustifyFlexStart:
		return "FlexStart"
	case JustifyFlexEnd:
		return "FlexEnd"
	case JustifyCenter:
		return "Center"
	case JustifySpaceBetween:
		return "SpaceBetween"
	case JustifySpaceAround:
		return "SpaceAround"
	case JustifySpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}

func (a AlignItems) String() string {
	switch a {
	case AlignItemsFlexStart:
		return "FlexStart"
	case AlignItemsFlexEnd:
		return "FlexEnd"
	case AlignItemsCenter:
		return "Center"
	case AlignItemsBaseline:
		return "Baseline"
	case AlignItemsStretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

func (a AlignContent) String() string {
	switch a {
	case AlignContentFlexStart:
		return "FlexStart"
	case AlignContentFlexEnd:
		return "FlexEnd"
	case AlignContentCenter:
		return "Center"
	case AlignContentSpaceBetween:
		return "SpaceBetween"
	case AlignContentSpaceAround:
		return "SpaceAround"
	case AlignContentStretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}
