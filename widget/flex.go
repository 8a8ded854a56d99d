// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/flexbox/layout"
)

// Flex is a child backed by an Engine of its own.
type Flex struct {
	Engine        *layout.Engine
	Width, Height layout.Dimension
	Min           layout.Size
	// Max is the largest size of the container. Zero components
	// are unlimited.
	Max layout.Size
}

// NewFlex returns a Flex with a new Engine, sized by its content.
func NewFlex() *Flex {
	return &Flex{Engine: layout.NewEngine()}
}

// Node returns a node for f that lays out the children of f when
// the node itself is laid out.
func (f *Flex) Node() *layout.Node {
	n := layout.NewNode(f)
	n.OnLayout = f.Layout
	return n
}

func (f *Flex) RequestedWidth() layout.Dimension  { return f.Width }
func (f *Flex) RequestedHeight() layout.Dimension { return f.Height }
func (f *Flex) MinWidth() int                     { return f.Min.Width }
func (f *Flex) MinHeight() int                    { return f.Min.Height }
func (f *Flex) MaxWidth() int                     { return bound(f.Max.Width) }
func (f *Flex) MaxHeight() int                    { return bound(f.Max.Height) }

func (f *Flex) Measure(width, height layout.MeasureSpec) layout.Size {
	return f.Engine.Measure(width, height)
}

// Layout measures the children of f for the exact size of r and lays
// them out in r.
func (f *Flex) Layout(r image.Rectangle) {
	f.Engine.Measure(layout.Exactly(r.Dx()), layout.Exactly(r.Dy()))
	f.Engine.Layout(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
