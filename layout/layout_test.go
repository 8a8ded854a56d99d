// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"
)

func TestResolveSize(t *testing.T) {
	for _, size := range []int{0, 1, 50, 100, 1000} {
		if got := ResolveSize(size, Exactly(100)); got != 100 {
			t.Errorf("ResolveSize(%d, Exactly(100)) = %d, want 100", size, got)
		}
		if got, want := ResolveSize(size, AtMost(100)), min(size, 100); got != want {
			t.Errorf("ResolveSize(%d, AtMost(100)) = %d, want %d", size, got, want)
		}
		if got := ResolveSize(size, Unconstrained()); got != size {
			t.Errorf("ResolveSize(%d, Unconstrained) = %d, want %d", size, got, size)
		}
	}
}

func TestChildSpec(t *testing.T) {
	tests := []struct {
		parent MeasureSpec
		used   int
		dim    Dimension
		want   MeasureSpec
	}{
		{Exactly(100), 10, Exact(30), Exactly(30)},
		{AtMost(100), 10, Exact(300), Exactly(300)},
		{Unconstrained(), 10, Exact(30), Exactly(30)},
		{Exactly(100), 10, MatchParent(), Exactly(90)},
		{AtMost(100), 10, MatchParent(), AtMost(90)},
		{MakeMeasureSpec(100, ModeUnconstrained), 10, MatchParent(), MakeMeasureSpec(90, ModeUnconstrained)},
		{Exactly(100), 10, WrapContent(), AtMost(90)},
		{AtMost(100), 10, WrapContent(), AtMost(90)},
		{MakeMeasureSpec(100, ModeUnconstrained), 10, WrapContent(), MakeMeasureSpec(90, ModeUnconstrained)},
		{Exactly(5), 10, MatchParent(), Exactly(0)},
	}
	for _, test := range tests {
		if got := childSpec(test.parent, test.used, test.dim); got != test.want {
			t.Errorf("childSpec(%v, %d, %v) = %v, want %v", test.parent, test.used, test.dim, got, test.want)
		}
	}
}

func TestNegativeValuesPanic(t *testing.T) {
	tests := map[string]func(){
		"MakeMeasureSpec": func() { MakeMeasureSpec(-1, ModeExactly) },
		"Exactly":         func() { Exactly(-1) },
		"Exact":           func() { Exact(-5) },
		"NewSpacing":      func() { NewSpacing(0, 0, -1, 0) },
	}
	for name, f := range tests {
		if !panics(f) {
			t.Errorf("%s: negative value accepted", name)
		}
	}
}

func TestDimension(t *testing.T) {
	var d Dimension
	if !d.IsWrapContent() {
		t.Error("zero Dimension is not WrapContent")
	}
	if _, ok := d.Size(); ok {
		t.Error("zero Dimension has an exact size")
	}
	if s, ok := Exact(12).Size(); !ok || s != 12 {
		t.Errorf("Exact(12).Size() = %d, %v", s, ok)
	}
	if got := Exact(12).String(); got != "Exact(12)" {
		t.Errorf("Exact(12).String() = %q", got)
	}
}

func TestSpacing(t *testing.T) {
	s := NewSpacing(1, 2, 3, 4)
	if s.Top != 1 || s.End != 2 || s.Bottom != 3 || s.Start != 4 {
		t.Fatalf("NewSpacing(1, 2, 3, 4) = %+v", s)
	}
	if got := s.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %d, want 6", got)
	}
	if got := s.Vertical(); got != 4 {
		t.Errorf("Vertical() = %d, want 4", got)
	}
}

func TestAxisSpecsInvolution(t *testing.T) {
	w, h := Exactly(10), AtMost(20)
	for _, a := range []Axis{Horizontal, Vertical} {
		main, cross := a.specs(w, h)
		w2, h2 := a.specs(main, cross)
		if w2 != w || h2 != h {
			t.Errorf("%v: specs does not round trip", a)
		}
		sz := a.Size(3, 4)
		if a.Main(sz) != 3 || a.Cross(sz) != 4 {
			t.Errorf("%v: Size(3, 4) = %v", a, sz)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v    float32
		want int
	}{
		{0, 0}, {0.4, 0}, {0.5, 1}, {1.5, 2}, {-0.4, 0}, {-0.5, 0}, {-0.6, -1}, {116.667, 117},
	}
	for _, test := range tests {
		if got := round(test.v); got != test.want {
			t.Errorf("round(%v) = %d, want %d", test.v, got, test.want)
		}
	}
}

func panics(f func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	f()
	return false
}
