// SPDX-License-Identifier: Unlicense OR MIT

package doc

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"gioui.org/flexbox/font/gofont"
	"gioui.org/flexbox/layout"
	"gioui.org/flexbox/unit"
	"gioui.org/flexbox/widget"
)

// Document is a document built into nested engines.
type Document struct {
	// Name of the root node.
	Name string
	Root *widget.Flex
	// Items lists the descendants of the root in depth first
	// order.
	Items []Item
	// Bounds of the root from the last Layout.
	Bounds image.Rectangle
}

// Item is a descendant of the root.
type Item struct {
	// Path is the slash separated path of the node from the root.
	// Unnamed nodes are named by their index.
	Path string
	// Depth is the number of containers above the node.
	Depth int
	// Hidden reports whether the node or one of its containers is
	// hidden. Hidden items are not laid out.
	Hidden bool
	Node   *layout.Node
	Widget layout.Measurable
}

// defaultTextSize is the text size of labels with a font but no size.
var defaultTextSize = unit.Sp(13)

// Build converts the root document node to a Document, converting
// lengths with m. The root must be a flex container.
func Build(root *Node, m unit.Metric) (*Document, error) {
	name := root.Name
	if name == "" {
		name = "root"
	}
	b := &builder{metric: m}
	if k := root.kind(); k != "flex" {
		return nil, b.invalid(name, "root is a %s, not a flex container", k)
	}
	f, err := b.flex(name, 0, false, root)
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Root: f, Items: b.items}, nil
}

// Layout measures the root under the given specs and lays out the
// tree at the origin. It returns the size of the root.
func (d *Document) Layout(width, height layout.MeasureSpec) layout.Size {
	sz := d.Root.Measure(width, height)
	d.Bounds = image.Rectangle{Max: image.Point{X: sz.Width, Y: sz.Height}}
	d.Root.Layout(d.Bounds)
	return sz
}

type builder struct {
	metric unit.Metric
	items  []Item
}

func (n *Node) kind() string {
	switch {
	case n.Kind != "":
		return n.Kind
	case len(n.Children) > 0 || n.Direction != "":
		return "flex"
	case n.Text != "":
		return "label"
	default:
		return "box"
	}
}

func (b *builder) flex(path string, depth int, hidden bool, n *Node) (*widget.Flex, error) {
	f := widget.NewFlex()
	e := f.Engine
	var err error
	set := func(field, s string, parse func(string) error) {
		if err != nil || s == "" {
			return
		}
		if perr := parse(s); perr != nil {
			err = b.invalid(path, "%s: %v", field, perr)
		}
	}
	set("direction", n.Direction, func(s string) (err error) { e.Direction, err = parseEnum(s, directions); return })
	set("wrap", n.Wrap, func(s string) (err error) { e.Wrap, err = parseEnum(s, wraps); return })
	set("justify_content", n.JustifyContent, func(s string) (err error) { e.JustifyContent, err = parseEnum(s, justifies); return })
	set("align_items", n.AlignItems, func(s string) (err error) { e.AlignItems, err = parseEnum(s, alignItems); return })
	set("align_content", n.AlignContent, func(s string) (err error) { e.AlignContent, err = parseEnum(s, alignContents); return })
	set("padding", n.Padding, func(s string) (err error) { e.Padding, err = b.spacing(s); return })
	if err != nil {
		return nil, err
	}
	if n.MaxLines < 0 {
		return nil, b.invalid(path, "negative max_lines %d", n.MaxLines)
	}
	e.MaxLines = n.MaxLines
	if n.Text != "" || n.Content != "" {
		return nil, b.invalid(path, "flex containers have no text or content")
	}
	if f.Width, f.Height, err = b.dims(path, n); err != nil {
		return nil, err
	}
	if f.Min, f.Max, err = b.bounds(path, n); err != nil {
		return nil, err
	}
	for i := range n.Children {
		c := &n.Children[i]
		name := c.Name
		if name == "" {
			name = strconv.Itoa(i)
		}
		node, err := b.child(path+"/"+name, depth+1, hidden, c)
		if err != nil {
			return nil, err
		}
		e.Add(node)
	}
	return f, nil
}

func (b *builder) child(path string, depth int, hidden bool, n *Node) (*layout.Node, error) {
	var node *layout.Node
	hidden = hidden || n.Hidden
	// Containers list their children after themselves.
	idx := len(b.items)
	b.items = append(b.items, Item{Path: path, Depth: depth, Hidden: hidden})
	switch k := n.kind(); k {
	case "flex":
		f, err := b.flex(path, depth, hidden, n)
		if err != nil {
			return nil, err
		}
		node = f.Node()
	case "label":
		l, err := b.label(path, n)
		if err != nil {
			return nil, err
		}
		node = layout.NewNode(l)
	case "box":
		w, err := b.box(path, n)
		if err != nil {
			return nil, err
		}
		node = layout.NewNode(w)
	default:
		return nil, b.invalid(path, "unknown kind %q", k)
	}
	if err := b.item(path, node, n); err != nil {
		return nil, err
	}
	b.items[idx].Node = node
	b.items[idx].Widget = node.Measurable
	return node, nil
}

func (b *builder) label(path string, n *Node) (*widget.Label, error) {
	if len(n.Children) > 0 || n.Content != "" {
		return nil, b.invalid(path, "labels have no children or content")
	}
	l := &widget.Label{Text: n.Text, MaxLines: n.MaxLines}
	var err error
	if l.Width, l.Height, err = b.dims(path, n); err != nil {
		return nil, err
	}
	if n.Font == "" && n.TextSize == "" {
		return l, nil
	}
	style := gofont.Regular
	if n.Font != "" {
		if style, err = gofont.ParseStyle(n.Font); err != nil {
			return nil, b.invalid(path, "font: %v", err)
		}
	}
	px := b.metric.Px(defaultTextSize)
	if n.TextSize != "" {
		if px, err = b.length(n.TextSize); err != nil {
			return nil, b.invalid(path, "text_size: %v", err)
		}
	}
	if px == 0 {
		return nil, b.invalid(path, "text_size: %s is not positive", n.TextSize)
	}
	if l.Face, err = gofont.Face(style, float32(px)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func (b *builder) box(path string, n *Node) (*widget.Box, error) {
	if len(n.Children) > 0 || n.Text != "" {
		return nil, b.invalid(path, "boxes have no children or text")
	}
	w := new(widget.Box)
	var err error
	if n.Content != "" {
		vals, err := b.lengths(n.Content)
		if err != nil || len(vals) != 2 {
			return nil, b.invalid(path, "content: want width and height, got %q", n.Content)
		}
		w.Content = layout.Size{Width: vals[0], Height: vals[1]}
	}
	if w.Width, w.Height, err = b.dims(path, n); err != nil {
		return nil, err
	}
	if w.Min, w.Max, err = b.bounds(path, n); err != nil {
		return nil, err
	}
	return w, nil
}

// item applies the flex item properties of n to node.
func (b *builder) item(path string, node *layout.Node, n *Node) error {
	if n.Grow != nil {
		if *n.Grow < 0 {
			return b.invalid(path, "negative grow %g", *n.Grow)
		}
		node.FlexGrow = *n.Grow
	}
	if n.Shrink != nil {
		if *n.Shrink < 0 {
			return b.invalid(path, "negative shrink %g", *n.Shrink)
		}
		node.FlexShrink = *n.Shrink
	}
	if n.Basis != nil {
		if *n.Basis < 0 {
			return b.invalid(path, "negative basis %g", *n.Basis)
		}
		node.FlexBasis = layout.Basis(*n.Basis)
	}
	if n.Order != nil {
		node.Order = *n.Order
	}
	if n.AlignSelf != "" {
		a, err := parseEnum(n.AlignSelf, alignSelfs)
		if err != nil {
			return b.invalid(path, "align_self: %v", err)
		}
		node.AlignSelf = a
	}
	if n.Margin != "" {
		m, err := b.spacing(n.Margin)
		if err != nil {
			return b.invalid(path, "margin: %v", err)
		}
		node.Margin = m
	}
	node.WrapBefore = n.WrapBefore
	node.Visible = !n.Hidden
	return nil
}

func (b *builder) dims(path string, n *Node) (w, h layout.Dimension, err error) {
	if w, err = b.dimension(n.Width); err != nil {
		return w, h, b.invalid(path, "width: %v", err)
	}
	if h, err = b.dimension(n.Height); err != nil {
		return w, h, b.invalid(path, "height: %v", err)
	}
	return w, h, nil
}

func (b *builder) dimension(s string) (layout.Dimension, error) {
	switch s {
	case "", "wrap":
		return layout.WrapContent(), nil
	case "match":
		return layout.MatchParent(), nil
	}
	v, err := b.length(s)
	if err != nil {
		return layout.Dimension{}, err
	}
	return layout.Exact(v), nil
}

func (b *builder) bounds(path string, n *Node) (min, max layout.Size, err error) {
	fields := []struct {
		name string
		s    string
		v    *int
	}{
		{"min_width", n.MinWidth, &min.Width},
		{"min_height", n.MinHeight, &min.Height},
		{"max_width", n.MaxWidth, &max.Width},
		{"max_height", n.MaxHeight, &max.Height},
	}
	for _, f := range fields {
		if f.s == "" {
			continue
		}
		if *f.v, err = b.length(f.s); err != nil {
			return min, max, b.invalid(path, "%s: %v", f.name, err)
		}
	}
	if max.Width > 0 && max.Width < min.Width || max.Height > 0 && max.Height < min.Height {
		return min, max, b.invalid(path, "maximum size %v below minimum size %v", max, min)
	}
	return min, max, nil
}

// spacing parses one to four lengths in the order top, end, bottom,
// start.
func (b *builder) spacing(s string) (layout.Spacing, error) {
	v, err := b.lengths(s)
	if err != nil {
		return layout.Spacing{}, err
	}
	switch len(v) {
	case 1:
		return layout.UniformSpacing(v[0]), nil
	case 2:
		return layout.NewSpacing(v[0], v[1], v[0], v[1]), nil
	case 3:
		return layout.NewSpacing(v[0], v[1], v[2], v[1]), nil
	case 4:
		return layout.NewSpacing(v[0], v[1], v[2], v[3]), nil
	default:
		return layout.Spacing{}, fmt.Errorf("want 1 to 4 lengths, got %d", len(v))
	}
}

func (b *builder) lengths(s string) ([]int, error) {
	var vals []int
	for _, f := range strings.Fields(s) {
		v, err := b.length(f)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// length parses a non-negative length and converts it to pixels.
func (b *builder) length(s string) (int, error) {
	v, err := unit.Parse(s)
	if err != nil {
		return 0, err
	}
	if v.V < 0 {
		return 0, fmt.Errorf("negative length %v", v)
	}
	px := b.metric.Px(v)
	if px < 0 || px > layout.Unlimited {
		return 0, fmt.Errorf("length %v out of range", v)
	}
	return px, nil
}

func (b *builder) invalid(path, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", path, ErrInvalid, fmt.Sprintf(format, args...))
}
