// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as scalable font faces.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Style selects a Go font.
type Style uint8

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
	Mono
)

var (
	once       sync.Once
	collection map[Style]*opentype.Font
)

func load() {
	once.Do(func() {
		collection = make(map[Style]*opentype.Font)
		register(Regular, goregular.TTF)
		register(Bold, gobold.TTF)
		register(Italic, goitalic.TTF)
		register(BoldItalic, gobolditalic.TTF)
		register(Mono, gomono.TTF)
	})
}

func register(s Style, ttf []byte) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	collection[s] = f
}

// Face returns a face of style s with a size of px pixels per em.
func Face(s Style, px float32) (font.Face, error) {
	load()
	f, ok := collection[s]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown style %d", s)
	}
	// At 72 DPI a point is a pixel.
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// ParseStyle returns the Style named by s.
func ParseStyle(s string) (Style, error) {
	for st := Regular; st <= Mono; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("gofont: unknown style %q", s)
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bolditalic"
	case Mono:
		return "mono"
	default:
		panic("unreachable")
	}
}
