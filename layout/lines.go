// SPDX-License-Identifier: Unlicense OR MIT

package layout

// calculateFlexLines measures every visible node for the first time
// and partitions the nodes into lines.
func (e *Engine) calculateFlexLines(width, height MeasureSpec) []FlexLine {
	axis := e.Direction.Axis()
	mainSpec, crossSpec := axis.specs(width, height)
	mainPadding := axis.mainSum(e.Padding)
	crossPadding := axis.crossSum(e.Padding)

	var lines []FlexLine
	line := FlexLine{MainSize: mainPadding}
	sumCrossSize := 0
	n := len(e.nodes)
	for i := 0; i < n; i++ {
		node := e.reordered(i)
		if !node.Visible {
			line.InvisibleItemCount++
			line.ItemCount++
			if isLastItem(i, n, &line) {
				lines = addLine(lines, line, i, sumCrossSize)
				sumCrossSize += line.CrossSize
			}
			continue
		}

		reqMain, reqCross := axis.requested(node.Measurable)
		if f, ok := node.FlexBasis.Fraction(); ok && mainSpec.Mode == ModeExactly {
			reqMain = Exact(max(0, round(float32(mainSpec.Size)*f)))
		}
		mainMargin := axis.mainSum(node.Margin)
		crossMargin := axis.crossSum(node.Margin)
		childMain := childSpec(mainSpec, mainPadding+mainMargin, reqMain)
		childCross := childSpec(crossSpec, crossPadding+crossMargin+sumCrossSize, reqCross)
		e.measureAxes(node, childMain, childCross)

		if e.wrapRequired(node, mainSpec, &line, axis.Main(node.measured)+mainMargin, len(lines)) {
			lines = addLine(lines, line, i-1, sumCrossSize)
			sumCrossSize += line.CrossSize
			if reqCross.IsMatchParent() {
				// The cross space left depends on the lines before.
				childCross = childSpec(crossSpec, crossPadding+crossMargin+sumCrossSize, reqCross)
				e.measureAxes(node, childMain, childCross)
			}
			line = FlexLine{FirstIndex: i, ItemCount: 1, MainSize: mainPadding}
		} else {
			line.ItemCount++
		}
		if node.alignment(e.AlignItems) == AlignItemsStretch {
			line.stretched = append(line.stretched, i)
		}

		line.MainSize += axis.Main(node.measured) + mainMargin
		line.TotalFlexGrow += node.FlexGrow
		line.TotalFlexShrink += node.FlexShrink
		line.CrossSize = max(line.CrossSize, axis.Cross(node.measured)+crossMargin)
		if axis == Horizontal {
			if e.Wrap != WrapReverse {
				line.MaxBaseline = max(line.MaxBaseline, node.baseline()+node.Margin.Top)
			} else {
				line.MaxBaseline = max(line.MaxBaseline, node.measured.Height-node.baseline()+node.Margin.Bottom)
			}
		}
		if isLastItem(i, n, &line) {
			lines = addLine(lines, line, i, sumCrossSize)
			sumCrossSize += line.CrossSize
		}
	}
	return lines
}

// wrapRequired reports whether node must start a new line. A line
// without visible nodes never wraps.
func (e *Engine) wrapRequired(node *Node, mainSpec MeasureSpec, line *FlexLine, nodeMain, lineCount int) bool {
	if e.Wrap == NoWrap || line.VisibleItemCount() == 0 {
		return false
	}
	// The line being built is not in lineCount yet.
	if e.MaxLines > 0 && e.MaxLines <= lineCount+1 {
		return false
	}
	if node.WrapBefore {
		return true
	}
	if mainSpec.Mode == ModeUnconstrained {
		return false
	}
	return mainSpec.Size < line.MainSize+nodeMain
}

func isLastItem(i, n int, line *FlexLine) bool {
	return i == n-1 && line.VisibleItemCount() != 0
}

func addLine(lines []FlexLine, line FlexLine, lastIndex, sumCrossSize int) []FlexLine {
	line.SumCrossSizeBefore = sumCrossSize
	line.LastIndex = lastIndex
	return append(lines, line)
}

// measureAxes measures node with specs given along the main and cross
// axes.
func (e *Engine) measureAxes(node *Node, main, cross MeasureSpec) {
	w, h := e.Direction.Axis().specs(main, cross)
	e.measureNode(node, w, h)
}

// crossSpec returns the cross axis spec of node in a line preceded by
// sumCrossSize of other lines, limited to the cross bounds of node.
func (e *Engine) crossSpec(node *Node, crossSpec MeasureSpec, sumCrossSize int) MeasureSpec {
	axis := e.Direction.Axis()
	_, reqCross := axis.requested(node.Measurable)
	used := axis.crossSum(e.Padding) + axis.crossSum(node.Margin) + sumCrossSize
	spec := childSpec(crossSpec, used, reqCross)
	min, max := axis.crossBounds(node.Measurable)
	if spec.Size > max {
		spec.Size = max
	} else if spec.Size < min {
		spec.Size = min
	}
	return spec
}
