// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Direction is the direction of the main axis of an Engine.
type Direction uint8

const (
	// Row lays out nodes from the start edge to the end edge.
	Row Direction = iota
	// RowReverse lays out nodes from the end edge to the start edge.
	RowReverse
	// Column lays out nodes from the top edge to the bottom edge.
	Column
	// ColumnReverse lays out nodes from the bottom edge to the top edge.
	ColumnReverse
)

// Axis returns the main axis of d.
func (d Direction) Axis() Axis {
	switch d {
	case Row, RowReverse:
		return Horizontal
	case Column, ColumnReverse:
		return Vertical
	default:
		panic("unreachable")
	}
}

// Reversed reports whether d runs against its axis.
func (d Direction) Reversed() bool {
	return d == RowReverse || d == ColumnReverse
}

// Main returns the main axis component of sz.
func (a Axis) Main(sz Size) int {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

// Cross returns the cross axis component of sz.
func (a Axis) Cross(sz Size) int {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

// Size returns the Size with the given main and cross components.
func (a Axis) Size(main, cross int) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func (a Axis) specs(width, height MeasureSpec) (main, cross MeasureSpec) {
	if a == Horizontal {
		return width, height
	}
	return height, width
}

func (a Axis) mainEdges(s Spacing) (start, end int) {
	if a == Horizontal {
		return s.Start, s.End
	}
	return s.Top, s.Bottom
}

func (a Axis) crossEdges(s Spacing) (start, end int) {
	if a == Horizontal {
		return s.Top, s.Bottom
	}
	return s.Start, s.End
}

func (a Axis) mainSum(s Spacing) int {
	start, end := a.mainEdges(s)
	return start + end
}

func (a Axis) crossSum(s Spacing) int {
	start, end := a.crossEdges(s)
	return start + end
}

func (a Axis) requested(m Measurable) (main, cross Dimension) {
	if a == Horizontal {
		return m.RequestedWidth(), m.RequestedHeight()
	}
	return m.RequestedHeight(), m.RequestedWidth()
}

func (a Axis) mainBounds(m Measurable) (min, max int) {
	if a == Horizontal {
		return m.MinWidth(), m.MaxWidth()
	}
	return m.MinHeight(), m.MaxHeight()
}

func (a Axis) crossBounds(m Measurable) (min, max int) {
	if a == Horizontal {
		return m.MinHeight(), m.MaxHeight()
	}
	return m.MinWidth(), m.MaxWidth()
}

// rect converts a main and cross axis position and size to a rectangle
// offset by origin.
func (a Axis) rect(origin image.Point, main, cross int, sz Size) image.Rectangle {
	var min image.Point
	if a == Horizontal {
		min = image.Point{X: main, Y: cross}
	} else {
		min = image.Point{X: cross, Y: main}
	}
	min = min.Add(origin)
	return image.Rectangle{
		Min: min,
		Max: min.Add(image.Point{X: sz.Width, Y: sz.Height}),
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case Row:
		return "Row"
	case RowReverse:
		return "RowReverse"
	case Column:
		return "Column"
	case ColumnReverse:
		return "ColumnReverse"
	default:
		panic("unreachable")
	}
}
