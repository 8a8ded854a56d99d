// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Layout positions the visible nodes inside the container rectangle
// and delivers their bounds. Bounds are in the coordinate space of the
// rectangle. Measure must be called before Layout.
func (e *Engine) Layout(left, top, right, bottom int) {
	if !e.measured {
		panic("layout: Layout called before Measure")
	}
	for _, n := range e.nodes {
		if !n.Visible {
			n.bounds = image.Rectangle{}
		}
	}
	axis := e.Direction.Axis()
	origin := image.Point{X: left, Y: top}
	size := Size{Width: right - left, Height: bottom - top}
	crossStart, crossEnd := axis.crossEdges(e.Padding)
	// lineEdge is the cross position of the line edge nodes are
	// aligned from: the start edge, or the end edge for WrapReverse.
	lineEdge := crossStart
	if e.Wrap == WrapReverse {
		lineEdge = axis.Cross(size) - crossEnd
	}
	for i := range e.lines {
		l := &e.lines[i]
		if !l.IsSpacer() {
			e.layoutLine(l, origin, axis.Main(size), lineEdge)
		}
		if e.Wrap == WrapReverse {
			lineEdge -= l.CrossSize
		} else {
			lineEdge += l.CrossSize
		}
	}
}

func (e *Engine) layoutLine(l *FlexLine, origin image.Point, mainTotal, lineEdge int) {
	axis := e.Direction.Axis()
	reverse := e.Direction.Reversed()
	free := float32(mainTotal - l.MainSize)
	visible := float32(l.VisibleItemCount())
	var lead, gap float32
	switch e.JustifyContent {
	case JustifyFlexStart:
	case JustifyFlexEnd:
		lead = free
	case JustifyCenter:
		lead = free / 2
	case JustifySpaceBetween:
		gap = max(free, 0) / max(visible-1, 1)
	case JustifySpaceAround:
		if visible > 0 {
			gap = max(free, 0) / visible
		}
		lead = gap / 2
	case JustifySpaceEvenly:
		if visible > 0 {
			gap = max(free, 0) / (visible + 1)
		}
		lead = gap
	default:
		panic("unreachable")
	}
	// pos is the distance of the next node from the main start edge,
	// or from the main end edge when reversed.
	padStart, padEnd := axis.mainEdges(e.Padding)
	pos := lead
	if reverse {
		pos += float32(padEnd)
	} else {
		pos += float32(padStart)
	}
	for k := 0; k < l.ItemCount; k++ {
		node := e.reordered(l.FirstIndex + k)
		if !node.Visible {
			continue
		}
		mStart, mEnd := axis.mainEdges(node.Margin)
		nodeMain := axis.Main(node.measured)
		var main int
		if reverse {
			pos += float32(mEnd)
			main = mainTotal - round(pos) - nodeMain
			pos += float32(nodeMain+mStart) + gap
		} else {
			pos += float32(mStart)
			main = round(pos)
			pos += float32(nodeMain+mEnd) + gap
		}
		cross := e.crossPosition(node, l, lineEdge)
		node.place(axis.rect(origin, main, cross, node.measured))
	}
}

// crossPosition returns the cross axis position of node in l.
func (e *Engine) crossPosition(node *Node, l *FlexLine, lineEdge int) int {
	axis := e.Direction.Axis()
	mStart, mEnd := axis.crossEdges(node.Margin)
	nodeCross := axis.Cross(node.measured)
	align := node.alignment(e.AlignItems)
	if align == AlignItemsBaseline && axis != Horizontal {
		align = AlignItemsFlexStart
	}
	if e.Wrap != WrapReverse {
		switch align {
		case AlignItemsFlexStart, AlignItemsStretch:
			return lineEdge + mStart
		case AlignItemsFlexEnd:
			return lineEdge + l.CrossSize - nodeCross - mEnd
		case AlignItemsCenter:
			return lineEdge + (l.CrossSize-nodeCross+mStart-mEnd)/2
		case AlignItemsBaseline:
			return lineEdge + max(l.MaxBaseline-node.baseline(), mStart)
		default:
			panic("unreachable")
		}
	}
	// WrapReverse flips the start and end edges of the line.
	switch align {
	case AlignItemsFlexStart, AlignItemsStretch:
		return lineEdge - mEnd - nodeCross
	case AlignItemsFlexEnd:
		return lineEdge - l.CrossSize + mStart
	case AlignItemsCenter:
		return lineEdge - nodeCross - (l.CrossSize-nodeCross+mStart-mEnd)/2
	case AlignItemsBaseline:
		return lineEdge - max(l.MaxBaseline-nodeCross+node.baseline(), mEnd) - nodeCross
	default:
		panic("unreachable")
	}
}
