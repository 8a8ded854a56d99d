// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"
	"image"

	"gioui.org/flexbox/layout"
)

func ExampleEngine() {
	e := layout.NewEngine()
	e.Wrap = layout.Wrap
	e.JustifyContent = layout.JustifyCenter
	for i := 0; i < 3; i++ {
		e.Add(layout.NewNode(fixed{40, 10}))
	}

	size := e.Measure(layout.Exactly(100), layout.Unconstrained())
	fmt.Println(size)

	e.Layout(0, 0, size.Width, size.Height)
	for _, n := range e.Nodes() {
		fmt.Println(n.Bounds())
	}

	// Output:
	// (100,20)
	// (10,0)-(50,10)
	// (50,0)-(90,10)
	// (30,10)-(70,20)
}

func ExampleNode_OnLayout() {
	e := layout.NewEngine()
	e.Direction = layout.Column
	e.Padding = layout.UniformSpacing(4)
	for i := 0; i < 2; i++ {
		n := layout.NewNode(fixed{20, 10})
		n.OnLayout = func(r image.Rectangle) {
			fmt.Println(r)
		}
		e.Add(n)
	}
	e.Measure(layout.Unconstrained(), layout.Unconstrained())
	e.Layout(100, 100, 128, 128)

	// Output:
	// (104,104)-(124,114)
	// (104,114)-(124,124)
}

func ExampleResolveSize() {
	fmt.Println(layout.ResolveSize(120, layout.AtMost(100)))
	fmt.Println(layout.ResolveSize(80, layout.AtMost(100)))
	fmt.Println(layout.ResolveSize(80, layout.Exactly(100)))

	// Output:
	// 100
	// 80
	// 100
}

// fixed is content of a fixed size.
type fixed struct {
	w, h int
}

func (f fixed) RequestedWidth() layout.Dimension  { return layout.WrapContent() }
func (f fixed) RequestedHeight() layout.Dimension { return layout.WrapContent() }
func (f fixed) MinWidth() int                     { return 0 }
func (f fixed) MinHeight() int                    { return 0 }
func (f fixed) MaxWidth() int                     { return layout.Unlimited }
func (f fixed) MaxHeight() int                    { return layout.Unlimited }

func (f fixed) Measure(width, height layout.MeasureSpec) layout.Size {
	return layout.Size{
		Width:  layout.ResolveSize(f.w, width),
		Height: layout.ResolveSize(f.h, height),
	}
}
