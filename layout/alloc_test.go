// SPDX-License-Identifier: Unlicense OR MIT

//go:build !race
// +build !race

package layout

import (
	"testing"
)

func TestLayoutAllocs(t *testing.T) {
	e := newEngine(Row, newBox(40, 10), newBox(40, 20), newBox(40, 30))
	e.Wrap = Wrap
	e.JustifyContent = JustifySpaceEvenly
	e.AlignItems = AlignItemsCenter
	e.Measure(Exactly(100), Exactly(100))
	allocs := testing.AllocsPerRun(1, func() {
		e.Layout(0, 0, 100, 100)
	})
	if allocs != 0 {
		t.Errorf("expected no allocs, got %f", allocs)
	}
}
