// SPDX-License-Identifier: Unlicense OR MIT

package layout

// FlexLine describes one line of nodes along the main axis. Indices
// refer to nodes in layout order.
//
// Lines without items are spacers inserted by AlignContent to reserve
// cross axis space.
type FlexLine struct {
	// FirstIndex and LastIndex are the inclusive range of nodes in
	// the line. For spacers LastIndex is FirstIndex-1.
	FirstIndex, LastIndex int
	// ItemCount includes invisible nodes.
	ItemCount          int
	InvisibleItemCount int
	// MainSize includes the main axis padding of the engine and the
	// main axis margins of the nodes.
	MainSize        int
	CrossSize       int
	TotalFlexGrow   float32
	TotalFlexShrink float32
	// MaxBaseline is the largest baseline plus top margin of the
	// nodes. It is only computed for horizontal main axes.
	MaxBaseline int
	// SumCrossSizeBefore is the cross size of all lines before this
	// one when the line was created.
	SumCrossSizeBefore int

	stretched []int
}

// VisibleItemCount returns the number of visible nodes in the line.
func (l *FlexLine) VisibleItemCount() int {
	return l.ItemCount - l.InvisibleItemCount
}

// IsSpacer reports whether l only reserves cross axis space.
func (l *FlexLine) IsSpacer() bool {
	return l.ItemCount == 0
}

func spacerLine(crossSize int) FlexLine {
	return FlexLine{LastIndex: -1, CrossSize: crossSize}
}
