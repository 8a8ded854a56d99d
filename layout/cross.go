// SPDX-License-Identifier: Unlicense OR MIT

package layout

// alignBaselines grows the cross size of every line to fit its nodes
// after they are shifted to a common baseline.
func (e *Engine) alignBaselines() {
	for i := range e.lines {
		l := &e.lines[i]
		largest := 0
		for k := 0; k < l.ItemCount; k++ {
			node := e.reordered(l.FirstIndex + k)
			if !node.Visible {
				continue
			}
			h := node.measured.Height
			if e.Wrap != WrapReverse {
				top := max(l.MaxBaseline-node.baseline(), node.Margin.Top)
				largest = max(largest, h+top+node.Margin.Bottom)
			} else {
				bottom := max(l.MaxBaseline-h+node.baseline(), node.Margin.Bottom)
				largest = max(largest, h+node.Margin.Top+bottom)
			}
		}
		l.CrossSize = largest
	}
}

// determineCrossSize distributes the cross space of a container with an
// exact cross size among its lines according to AlignContent. Free
// space is either added to the lines or reserved by spacer lines.
func (e *Engine) determineCrossSize(crossSpec MeasureSpec) {
	if crossSpec.Mode != ModeExactly || len(e.lines) == 0 {
		return
	}
	padding := e.Direction.Axis().crossSum(e.Padding)
	size := crossSpec.Size
	if len(e.lines) == 1 {
		e.lines[0].CrossSize = max(0, size-padding)
		return
	}
	total := e.sumOfCrossSize() + padding
	n := len(e.lines)
	switch e.AlignContent {
	case AlignContentFlexStart:
	case AlignContentFlexEnd:
		e.lines = append([]FlexLine{spacerLine(size - total)}, e.lines...)
	case AlignContentCenter:
		e.lines = centerLines(e.lines, size-total)
	case AlignContentSpaceAround:
		if total >= size {
			e.lines = centerLines(e.lines, size-total)
			break
		}
		space := (size - total) / (2 * n)
		lines := make([]FlexLine, 0, 3*n)
		for _, l := range e.lines {
			lines = append(lines, spacerLine(space), l, spacerLine(space))
		}
		e.lines = lines
	case AlignContentSpaceBetween:
		if total >= size {
			break
		}
		gap := float32(size-total) / float32(n-1)
		var fraction float32
		lines := make([]FlexLine, 0, 2*n-1)
		for i, l := range e.lines {
			lines = append(lines, l)
			if i == n-1 {
				break
			}
			raw := gap
			if i == n-2 {
				raw += fraction
				fraction = 0
			}
			space := round(raw)
			fraction += gap - float32(space)
			if fraction > 1 {
				space++
				fraction--
			} else if fraction < -1 {
				space--
				fraction++
			}
			lines = append(lines, spacerLine(space))
		}
		e.lines = lines
	case AlignContentStretch:
		if total >= size {
			break
		}
		unit := float32(size-total) / float32(n)
		var fraction float32
		for i := range e.lines {
			l := &e.lines[i]
			raw := float32(l.CrossSize) + unit
			if i == n-1 {
				raw += fraction
				fraction = 0
			}
			cross := round(raw)
			fraction += raw - float32(cross)
			if fraction > 1 {
				cross++
				fraction--
			} else if fraction < -1 {
				cross--
				fraction++
			}
			l.CrossSize = cross
		}
	default:
		panic("unreachable")
	}
}

// centerLines surrounds lines with two spacers sharing free.
func centerLines(lines []FlexLine, free int) []FlexLine {
	space := free / 2
	centered := make([]FlexLine, 0, len(lines)+2)
	centered = append(centered, spacerLine(space))
	centered = append(centered, lines...)
	return append(centered, spacerLine(space))
}

// stretchNodes measures every stretched node again with the cross size
// of its line, keeping its main size.
func (e *Engine) stretchNodes() {
	axis := e.Direction.Axis()
	for i := range e.lines {
		l := &e.lines[i]
		for _, idx := range l.stretched {
			node := e.reordered(idx)
			if !node.Visible {
				continue
			}
			cross := l.CrossSize - axis.crossSum(node.Margin)
			min, max := axis.crossBounds(node.Measurable)
			cross = clamp(cross, min, max)
			if cross < 0 {
				cross = 0
			}
			main := axis.Main(node.measured)
			e.measureAxes(node, Exactly(main), Exactly(cross))
		}
	}
}
