// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/draw"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"gioui.org/flexbox/layout"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Label is a child sized by a text wrapped to the available width.
type Label struct {
	Text string
	// Face is the font face of the text. A nil Face uses a
	// 7x13 pixel bitmap font.
	Face font.Face
	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines      int
	Width, Height layout.Dimension
}

// A line of text and its width.
type line struct {
	text  string
	width fixed.Int26_6
}

func (l *Label) RequestedWidth() layout.Dimension  { return l.Width }
func (l *Label) RequestedHeight() layout.Dimension { return l.Height }
func (l *Label) MinWidth() int                     { return 0 }
func (l *Label) MinHeight() int                    { return 0 }
func (l *Label) MaxWidth() int                     { return layout.Unlimited }
func (l *Label) MaxHeight() int                    { return layout.Unlimited }

func (l *Label) Measure(width, height layout.MeasureSpec) layout.Size {
	lines := l.layout(maxDot(width))
	var w fixed.Int26_6
	for _, ln := range lines {
		if ln.width > w {
			w = ln.width
		}
	}
	h := l.face().Metrics().Height.Mul(fixed.I(len(lines)))
	return layout.Size{
		Width:  layout.ResolveSize(w.Ceil(), width),
		Height: layout.ResolveSize(h.Ceil(), height),
	}
}

// Baseline returns the ascent of the first line.
func (l *Label) Baseline(layout.Size) int {
	return l.face().Metrics().Ascent.Ceil()
}

// Draw draws the text wrapped to the width of r, clipped to r.
func (l *Label) Draw(dst draw.Image, r image.Rectangle, src image.Image) {
	face := l.face()
	m := face.Metrics()
	d := font.Drawer{
		Dst:  clipImage{dst, r},
		Src:  src,
		Face: face,
	}
	y := fixed.I(r.Min.Y) + m.Ascent
	for _, ln := range l.layout(fixed.I(r.Dx())) {
		d.Dot = fixed.Point26_6{X: fixed.I(r.Min.X), Y: y}
		d.DrawString(ln.text)
		y += m.Height
	}
}

func (l *Label) face() font.Face {
	if l.Face == nil {
		return basicfont.Face7x13
	}
	return l.Face
}

// layout breaks the text into lines no wider than maxWidth. Lines
// break after spaces, or inside words too wide for a line.
func (l *Label) layout(maxWidth fixed.Int26_6) []line {
	face := l.face()
	str := l.Text
	var lines []line
	var (
		start int
		x     fixed.Int26_6
		prev  = rune(-1)
		// brk is the offset after the last space of the line, and
		// brkX the width of the line before that space.
		brk  = -1
		brkX fixed.Int26_6
	)
	endLine := func(end int, width fixed.Int26_6, next int) {
		lines = append(lines, line{text: strings.TrimRightFunc(str[start:end], unicode.IsSpace), width: width})
		start = next
		x = 0
		prev = -1
		brk = -1
	}
	for i := 0; i < len(str); {
		c, s := utf8.DecodeRuneInString(str[i:])
		if c == '\n' {
			endLine(i, x, i+s)
			i += s
			continue
		}
		a, ok := face.GlyphAdvance(c)
		if !ok {
			i += s
			continue
		}
		if prev >= 0 {
			a += face.Kern(prev, c)
		}
		if !unicode.IsSpace(c) && i > start && x+a > maxWidth {
			if brk > start {
				i = brk
				endLine(brk, brkX, brk)
				continue
			}
			// If the line contains no word breaks, break off
			// the last rune.
			endLine(i, x, i)
			a, _ = face.GlyphAdvance(c)
		}
		if unicode.IsSpace(c) {
			brk = i + s
			brkX = x
		}
		x += a
		prev = c
		i += s
	}
	endLine(len(str), x, len(str))
	if l.MaxLines > 0 && len(lines) > l.MaxLines {
		lines = lines[:l.MaxLines]
	}
	return lines
}

// maxDot returns the widest line allowed by spec.
func maxDot(spec layout.MeasureSpec) fixed.Int26_6 {
	if spec.Mode == layout.ModeUnconstrained || spec.Size > math.MaxInt32>>6 {
		return fixed.Int26_6(math.MaxInt32)
	}
	return fixed.I(spec.Size)
}

// clipImage limits drawing to a rectangle.
type clipImage struct {
	draw.Image
	clip image.Rectangle
}

func (c clipImage) Bounds() image.Rectangle {
	return c.Image.Bounds().Intersect(c.clip)
}
