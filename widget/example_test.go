// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"fmt"

	"gioui.org/flexbox/layout"
	"gioui.org/flexbox/widget"
)

func ExampleLabel() {
	e := layout.NewEngine()
	e.AlignItems = layout.AlignItemsBaseline
	big := &widget.Box{Content: layout.Size{Width: 20, Height: 30}}
	label := layout.NewNode(&widget.Label{Text: "flex"})
	e.Add(layout.NewNode(big), label)

	size := e.Measure(layout.Unconstrained(), layout.Unconstrained())
	e.Layout(0, 0, size.Width, size.Height)
	fmt.Println(size)
	fmt.Println(label.Bounds())

	// Output:
	// (48,32)
	// (20,19)-(48,32)
}
