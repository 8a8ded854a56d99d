// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units and values.

A Value is a value with a Unit attached.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. The
layout engine works in whole pixels; documents describe sizes in dp and
sp and a Metric converts them.
*/
package unit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is a value with a unit.
type Value struct {
	V float32
	U Unit
}

// Unit represents a unit for a Value.
type Unit uint8

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

const (
	// UnitPx represent device pixels in the resolution of
	// the underlying display.
	UnitPx Unit = iota
	// UnitDp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	UnitDp
	// UnitSp is like UnitDp but for font sizes.
	UnitSp
)

// Px returns the Value for v device pixels.
func Px(v float32) Value {
	return Value{V: v, U: UnitPx}
}

// Dp returns the Value for v device independent
// pixels.
func Dp(v float32) Value {
	return Value{V: v, U: UnitDp}
}

// Sp returns the Value for v scaled dps.
func Sp(v float32) Value {
	return Value{V: v, U: UnitSp}
}

func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.V, v.U)
}

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitDp:
		return "dp"
	case UnitSp:
		return "sp"
	default:
		panic("unknown unit")
	}
}

// Parse parses a number followed by one of the units "dp", "sp" or
// "px", such as "12dp". A number without a unit is in dp.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	i := 0
	for ; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != '.' && c != '-' {
			break
		}
	}
	num, suffix := s[:i], s[i:]
	f, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return Value{}, fmt.Errorf("unit: invalid number %q", num)
	}
	v := Dp(float32(f))
	switch suffix {
	case "", "dp":
	case "sp":
		v.U = UnitSp
	case "px":
		v.U = UnitPx
	default:
		return Value{}, fmt.Errorf("unit: unknown unit %q in %q", suffix, s)
	}
	return v, nil
}

// Px converts v to pixels, rounded to the nearest integer value.
func (c Metric) Px(v Value) int {
	var r float32
	switch v.U {
	case UnitPx:
		r = v.V
	case UnitDp:
		r = nonZero(c.PxPerDp) * v.V
	case UnitSp:
		r = nonZero(c.PxPerSp) * v.V
	default:
		panic("unknown unit")
	}
	return int(math.Round(float64(r)))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
