// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/flexbox/layout"
)

func TestBox(t *testing.T) {
	b := &Box{Content: layout.Size{Width: 30, Height: 20}}
	if got := b.Measure(layout.AtMost(10), layout.Unconstrained()); got != (layout.Size{Width: 10, Height: 20}) {
		t.Errorf("got %v, want (10,20)", got)
	}
	if b.MaxWidth() != layout.Unlimited {
		t.Errorf("zero Max is limited to %d", b.MaxWidth())
	}
	b.Max.Height = 5
	if b.MaxHeight() != 5 {
		t.Errorf("got max height %d, want 5", b.MaxHeight())
	}
}

func TestLabelWrap(t *testing.T) {
	l := &Label{Text: "hello world"}
	if got := l.Measure(layout.Unconstrained(), layout.Unconstrained()); got != (layout.Size{Width: 77, Height: 13}) {
		t.Errorf("single line: got %v, want (77,13)", got)
	}
	lines := l.layout(50 << 6)
	if len(lines) != 2 || lines[0].text != "hello" || lines[1].text != "world" {
		t.Fatalf("got lines %+v", lines)
	}
	if got := l.Measure(layout.AtMost(50), layout.Unconstrained()); got != (layout.Size{Width: 35, Height: 26}) {
		t.Errorf("wrapped: got %v, want (35,26)", got)
	}
	if got := l.Measure(layout.Exactly(50), layout.AtMost(20)); got != (layout.Size{Width: 50, Height: 20}) {
		t.Errorf("exact: got %v, want (50,20)", got)
	}
}

func TestLabelBreakWord(t *testing.T) {
	l := &Label{Text: "abcdefghij"}
	lines := l.layout(30 << 6)
	if len(lines) != 3 || lines[0].text != "abcd" || lines[2].text != "ij" {
		t.Errorf("got lines %+v", lines)
	}
}

func TestLabelNewlines(t *testing.T) {
	l := &Label{Text: "a\nb\nc", MaxLines: 2}
	if got := l.Measure(layout.Unconstrained(), layout.Unconstrained()); got != (layout.Size{Width: 7, Height: 26}) {
		t.Errorf("got %v, want (7,26)", got)
	}
}

func TestLabelBaseline(t *testing.T) {
	l := &Label{Text: "x"}
	if got := l.Baseline(layout.Size{}); got != 11 {
		t.Errorf("got baseline %d, want 11", got)
	}
	var _ layout.Baseliner = l
}

func TestLabelDraw(t *testing.T) {
	l := &Label{Text: "hi"}
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	r := image.Rect(10, 10, 40, 40)
	l.Draw(dst, r, image.NewUniform(color.Black))
	inside, outside := 0, 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			if dst.RGBAAt(x, y).A == 0 {
				continue
			}
			if image.Pt(x, y).In(r) {
				inside++
			} else {
				outside++
			}
		}
	}
	if inside == 0 {
		t.Error("no text drawn")
	}
	if outside != 0 {
		t.Errorf("%d pixels drawn outside the label", outside)
	}
}

func TestFlexNested(t *testing.T) {
	inner := NewFlex()
	inner.Engine.Direction = layout.Column
	a := layout.NewNode(&Box{Content: layout.Size{Width: 30, Height: 20}})
	b := layout.NewNode(&Box{Content: layout.Size{Width: 30, Height: 20}})
	inner.Engine.Add(a, b)

	outer := layout.NewEngine()
	outer.AlignItems = layout.AlignItemsFlexStart
	first := layout.NewNode(&Box{Content: layout.Size{Width: 50, Height: 50}})
	flex := inner.Node()
	outer.Add(first, flex)

	outer.Measure(layout.Exactly(200), layout.Exactly(100))
	if got := flex.MeasuredSize(); got != (layout.Size{Width: 30, Height: 40}) {
		t.Errorf("nested flex measured %v, want (30,40)", got)
	}
	outer.Layout(0, 0, 200, 100)
	want := []struct {
		n *layout.Node
		r image.Rectangle
	}{
		{first, image.Rect(0, 0, 50, 50)},
		{flex, image.Rect(50, 0, 80, 40)},
		{a, image.Rect(50, 0, 80, 20)},
		{b, image.Rect(50, 20, 80, 40)},
	}
	for i, w := range want {
		if got := w.n.Bounds(); got != w.r {
			t.Errorf("node %d: got bounds %v, want %v", i, got, w.r)
		}
	}
}
