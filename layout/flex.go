// SPDX-License-Identifier: Unlicense OR MIT

package layout

// determineMainSize grows or shrinks the nodes of every line to the
// main size of the container.
func (e *Engine) determineMainSize(width, height MeasureSpec) {
	axis := e.Direction.Axis()
	mainSpec, crossSpec := axis.specs(width, height)
	var mainSize int
	switch mainSpec.Mode {
	case ModeExactly:
		mainSize = mainSpec.Size
	case ModeAtMost:
		mainSize = min(e.largestMainSize(), mainSpec.Size)
	case ModeUnconstrained:
		mainSize = e.largestMainSize()
	default:
		panic("unreachable")
	}
	for i := range e.lines {
		l := &e.lines[i]
		switch {
		case l.MainSize < mainSize && l.TotalFlexGrow > 0:
			e.flexLine(l, crossSpec, mainSize, true)
		case l.MainSize > mainSize && l.TotalFlexShrink > 0:
			e.flexLine(l, crossSpec, mainSize, false)
		}
	}
}

// flexLine distributes the free space of l to its nodes in proportion
// to their grow (or shrink) weights. A node reaching its maximum (or
// minimum) main size is frozen at that size, and the distribution
// repeats for the remaining nodes. Every repetition freezes at least
// one more node.
func (e *Engine) flexLine(l *FlexLine, crossSpec MeasureSpec, mainSize int, grow bool) {
	// Main size changes can change content-based cross sizes.
	l.CrossSize = 0
	for {
		if grow && (l.TotalFlexGrow <= 0 || l.MainSize > mainSize) {
			return
		}
		if !grow && (l.TotalFlexShrink <= 0 || l.MainSize < mainSize) {
			return
		}
		before := l.MainSize
		froze := e.flexPass(l, crossSpec, mainSize, grow)
		if !froze || before == l.MainSize {
			return
		}
	}
}

// flexPass performs one distribution over the unfrozen nodes of l and
// reports whether any node was frozen.
func (e *Engine) flexPass(l *FlexLine, crossSpec MeasureSpec, mainSize int, grow bool) bool {
	axis := e.Direction.Axis()
	var unit float32
	if grow {
		unit = float32(mainSize-l.MainSize) / l.TotalFlexGrow
	} else {
		unit = -float32(l.MainSize-mainSize) / l.TotalFlexShrink
	}
	l.MainSize = axis.mainSum(e.Padding)
	froze := false
	// fraction is the rounding error carried between nodes.
	var fraction float32
	largestCross := 0
	for k := 0; k < l.ItemCount; k++ {
		idx := l.FirstIndex + k
		node := e.reordered(idx)
		if !node.Visible {
			continue
		}
		weight := node.FlexShrink
		if grow {
			weight = node.FlexGrow
		}
		if !e.frozen[idx] && weight > 0 {
			raw := float32(axis.Main(node.measured)) + unit*weight
			if k == l.ItemCount-1 {
				raw += fraction
				fraction = 0
			}
			size := round(raw)
			minMain, maxMain := axis.mainBounds(node.Measurable)
			clamped := false
			switch {
			case grow && size > maxMain:
				size = maxMain
				clamped = true
			case !grow && size < minMain:
				size = minMain
				clamped = true
			default:
				fraction += raw - float32(size)
				if fraction > 1 {
					size++
					fraction--
				} else if fraction < -1 {
					size--
					fraction++
				}
			}
			if clamped {
				froze = true
				e.freeze(l, idx, weight, grow)
			}
			cross := e.crossSpec(node, crossSpec, l.SumCrossSizeBefore)
			e.measureAxes(node, Exactly(max(0, size)), cross)
		}
		largestCross = max(largestCross, axis.Cross(node.measured)+axis.crossSum(node.Margin))
		l.MainSize += axis.Main(node.measured) + axis.mainSum(node.Margin)
		l.CrossSize = max(l.CrossSize, largestCross)
	}
	return froze
}

func (e *Engine) freeze(l *FlexLine, idx int, weight float32, grow bool) {
	e.frozen[idx] = true
	if grow {
		l.TotalFlexGrow -= weight
	} else {
		l.TotalFlexShrink -= weight
	}
}
