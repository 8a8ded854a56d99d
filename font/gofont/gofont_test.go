// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import (
	"testing"

	"golang.org/x/image/font"
)

func TestFaces(t *testing.T) {
	for st := Regular; st <= Mono; st++ {
		face, err := Face(st, 16)
		if err != nil {
			t.Fatalf("%v: %v", st, err)
		}
		m := face.Metrics()
		if m.Ascent <= 0 || m.Height <= 0 {
			t.Errorf("%v: got metrics %+v", st, m)
		}
		if w := font.MeasureString(face, "flex"); w <= 0 {
			t.Errorf("%v: empty advance for text", st)
		}
	}
}

func TestFaceScales(t *testing.T) {
	small, err := Face(Regular, 10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := Face(Regular, 20)
	if err != nil {
		t.Fatal(err)
	}
	if ws, wl := font.MeasureString(small, "flex"), font.MeasureString(large, "flex"); wl <= ws {
		t.Errorf("20px text (%v) not wider than 10px text (%v)", wl, ws)
	}
}

func TestParseStyle(t *testing.T) {
	for st := Regular; st <= Mono; st++ {
		got, err := ParseStyle(st.String())
		if err != nil || got != st {
			t.Errorf("ParseStyle(%q) = %v, %v", st.String(), got, err)
		}
	}
	if _, err := ParseStyle("fancy"); err == nil {
		t.Error("unknown style accepted")
	}
}
