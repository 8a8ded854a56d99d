// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/flexbox/layout"
)

// Box is a child with a fixed content size.
type Box struct {
	Width, Height layout.Dimension
	// Content is the size of the box when sized by content.
	Content layout.Size
	Min     layout.Size
	// Max is the largest size of the box. Zero components
	// are unlimited.
	Max layout.Size
}

func (b *Box) RequestedWidth() layout.Dimension  { return b.Width }
func (b *Box) RequestedHeight() layout.Dimension { return b.Height }
func (b *Box) MinWidth() int                     { return b.Min.Width }
func (b *Box) MinHeight() int                    { return b.Min.Height }
func (b *Box) MaxWidth() int                     { return bound(b.Max.Width) }
func (b *Box) MaxHeight() int                    { return bound(b.Max.Height) }

func (b *Box) Measure(width, height layout.MeasureSpec) layout.Size {
	return layout.Size{
		Width:  layout.ResolveSize(b.Content.Width, width),
		Height: layout.ResolveSize(b.Content.Height, height),
	}
}

func bound(max int) int {
	if max == 0 {
		return layout.Unlimited
	}
	return max
}
