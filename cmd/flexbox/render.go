// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"gioui.org/flexbox/internal/doc"
	"gioui.org/flexbox/widget"
)

// fills colour the nodes by depth.
var fills = []color.RGBA{
	colornames.Lightsteelblue,
	colornames.Palegreen,
	colornames.Moccasin,
	colornames.Plum,
	colornames.Lightcoral,
}

// render draws the boxes of the document, outlined, with label text.
func render(d *doc.Document) *image.RGBA {
	img := image.NewRGBA(d.Bounds)
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)
	outline(img, d.Bounds, colornames.Dimgray)
	text := image.NewUniform(colornames.Black)
	for _, it := range d.Items {
		if it.Hidden {
			continue
		}
		r := it.Node.Bounds()
		fill := fills[it.Depth%len(fills)]
		draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Over)
		outline(img, r, colornames.Dimgray)
		if l, ok := it.Widget.(*widget.Label); ok {
			l.Draw(img, r, text)
		}
	}
	return img
}

// outline strokes the inside edge of r.
func outline(img draw.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		{Min: r.Min, Max: image.Pt(r.Max.X, r.Min.Y+1)},
		{Min: image.Pt(r.Min.X, r.Max.Y-1), Max: r.Max},
		{Min: r.Min, Max: image.Pt(r.Min.X+1, r.Max.Y)},
		{Min: image.Pt(r.Max.X-1, r.Min.Y), Max: r.Max},
	}
	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Src)
	}
}

func writePNG(path string, img image.Image, scale float64) (err error) {
	if scale != 1 {
		b := img.Bounds()
		size := image.Point{
			X: int(float64(b.Dx())*scale + .5),
			Y: int(float64(b.Dy())*scale + .5),
		}
		scaled := image.NewNRGBA(image.Rectangle{Max: size})
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		img = scaled
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
