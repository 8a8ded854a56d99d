// SPDX-License-Identifier: Unlicense OR MIT

package doc

import (
	"fmt"

	"gioui.org/flexbox/layout"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	directions = map[string]layout.Direction{
		"row":            layout.Row,
		"row-reverse":    layout.RowReverse,
		"column":         layout.Column,
		"column-reverse": layout.ColumnReverse,
	}
	wraps = map[string]layout.FlexWrap{
		"nowrap":       layout.NoWrap,
		"wrap":         layout.Wrap,
		"wrap-reverse": layout.WrapReverse,
	}
	justifies = map[string]layout.JustifyContent{
		"flex-start":    layout.JustifyFlexStart,
		"flex-end":      layout.JustifyFlexEnd,
		"center":        layout.JustifyCenter,
		"space-between": layout.JustifySpaceBetween,
		"space-around":  layout.JustifySpaceAround,
		"space-evenly":  layout.JustifySpaceEvenly,
	}
	alignItems = map[string]layout.AlignItems{
		"flex-start": layout.AlignItemsFlexStart,
		"flex-end":   layout.AlignItemsFlexEnd,
		"center":     layout.AlignItemsCenter,
		"baseline":   layout.AlignItemsBaseline,
		"stretch":    layout.AlignItemsStretch,
	}
	alignContents = map[string]layout.AlignContent{
		"flex-start":    layout.AlignContentFlexStart,
		"flex-end":      layout.AlignContentFlexEnd,
		"center":        layout.AlignContentCenter,
		"space-between": layout.AlignContentSpaceBetween,
		"space-around":  layout.AlignContentSpaceAround,
		"stretch":       layout.AlignContentStretch,
	}
	alignSelfs = map[string]layout.AlignSelf{
		"auto":       layout.AlignSelfAuto,
		"flex-start": layout.AlignSelfFlexStart,
		"flex-end":   layout.AlignSelfFlexEnd,
		"center":     layout.AlignSelfCenter,
		"baseline":   layout.AlignSelfBaseline,
		"stretch":    layout.AlignSelfStretch,
	}
)

func parseEnum[T any](s string, values map[string]T) (T, error) {
	if v, ok := values[s]; ok {
		return v, nil
	}
	names := maps.Keys(values)
	slices.Sort(names)
	var zero T
	return zero, fmt.Errorf("unknown value %q, want one of %v", s, names)
}
