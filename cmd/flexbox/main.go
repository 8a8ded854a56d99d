// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"gioui.org/flexbox/internal/doc"
	"gioui.org/flexbox/layout"
	"gioui.org/flexbox/unit"
)

var (
	width     = flag.String("width", "", "root width in pixels, or tty for the terminal width.")
	height    = flag.String("height", "", "root height in pixels.")
	mode      = flag.String("mode", "exactly", "constrain the root to exactly or atmost the -width and -height.")
	pngPath   = flag.String("png", "", "render the layout to a PNG file.")
	scale     = flag.Float64("scale", 1, "scale the rendered image.")
	pxPerDp   = flag.Float64("dp", 1, "pixels per dp and sp.")
	convertTo = flag.String("convert", "", "print the documents in another format (toml, yaml).")
	verbose   = flag.Bool("v", false, "log progress.")
)

type config struct {
	width, height layout.MeasureSpec
	metric        unit.Metric
	png           string
	scale         float64
	convert       string
	logger        *log.Logger
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "flexbox: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	paths := flag.Args()
	if len(paths) == 0 {
		return errors.New("specify a document")
	}
	m, err := parseMode(*mode)
	if err != nil {
		return err
	}
	cfg := config{
		png:     *pngPath,
		scale:   *scale,
		convert: *convertTo,
		metric:  unit.Metric{PxPerDp: float32(*pxPerDp), PxPerSp: float32(*pxPerDp)},
	}
	if *pxPerDp <= 0 {
		return fmt.Errorf("invalid -dp %g", *pxPerDp)
	}
	if *scale <= 0 {
		return fmt.Errorf("invalid -scale %g", *scale)
	}
	w := *width
	if w == "tty" {
		cols, err := ttyWidth()
		if err != nil {
			return fmt.Errorf("-width tty: %w", err)
		}
		w = strconv.Itoa(cols)
	}
	if cfg.width, err = parseSpec("-width", w, m); err != nil {
		return err
	}
	if cfg.height, err = parseSpec("-height", *height, m); err != nil {
		return err
	}
	if *verbose {
		cfg.logger = log.New(os.Stderr, "flexbox: ", 0)
	}
	return run(os.Stdout, cfg, paths)
}

// run lays out the documents concurrently and writes their results to
// w in argument order.
func run(w io.Writer, cfg config, paths []string) error {
	outs := make([]bytes.Buffer, len(paths))
	var docs errgroup.Group
	for i, path := range paths {
		i, path := i, path
		docs.Go(func() error {
			return process(&outs[i], cfg, path, len(paths) > 1)
		})
	}
	if err := docs.Wait(); err != nil {
		return err
	}
	for i := range outs {
		if _, err := outs[i].WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func process(w io.Writer, cfg config, path string, multi bool) error {
	n, err := doc.Load(path)
	if err != nil {
		return err
	}
	if cfg.convert != "" {
		f, err := doc.ParseFormat(cfg.convert)
		if err != nil {
			return err
		}
		return doc.Encode(w, n, f)
	}
	d, err := doc.Build(n, cfg.metric)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	sz := d.Layout(cfg.width, cfg.height)
	cfg.logf("%s: %d nodes, size %v", path, len(d.Items)+1, sz)
	printRect(w, d.Name, d.Bounds)
	for _, it := range d.Items {
		if !it.Hidden {
			printRect(w, it.Path, it.Node.Bounds())
		}
	}
	if cfg.png == "" {
		return nil
	}
	out := cfg.png
	if multi {
		ext := filepath.Ext(out)
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out = strings.TrimSuffix(out, ext) + "-" + base + ext
	}
	if err := writePNG(out, render(d), cfg.scale); err != nil {
		return err
	}
	cfg.logf("%s: wrote %s", path, out)
	return nil
}

func printRect(w io.Writer, path string, r image.Rectangle) {
	fmt.Fprintf(w, "%s %d %d %d %d\n", path, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func (c config) logf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func parseMode(s string) (layout.Mode, error) {
	switch s {
	case "exactly":
		return layout.ModeExactly, nil
	case "atmost":
		return layout.ModeAtMost, nil
	default:
		return 0, fmt.Errorf("invalid -mode %s", s)
	}
}

func parseSpec(name, s string, m layout.Mode) (layout.MeasureSpec, error) {
	if s == "" {
		return layout.Unconstrained(), nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return layout.MeasureSpec{}, fmt.Errorf("invalid %s %s", name, s)
	}
	return layout.MakeMeasureSpec(v, m), nil
}
