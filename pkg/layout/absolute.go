package layout

import "sort"

// splitChildren partitions visible children into flow and absolute.
// Hidden children appear in neither list and take no part in layout.
func splitChildren(children []*Node) (flow, absolute []*Node) {
	for _, child := range children {
		if child == nil || child.Style.Hidden {
			continue
		}
		if child.Style.Position == PositionAbsolute {
			absolute = append(absolute, child)
		} else {
			flow = append(flow, child)
		}
	}
	return flow, absolute
}

// compositeOrder returns visible children in paint order: flow children
// in document order, then absolute children stable-sorted by ascending
// z-index. The highest z-index is visited last, so it is topmost.
func compositeOrder(children []*Node) []*Node {
	flow, absolute := splitChildren(children)
	if len(absolute) > 1 {
		sort.SliceStable(absolute, func(i, j int) bool {
			return absolute[i].Style.ZIndex < absolute[j].Style.ZIndex
		})
	}
	return append(flow, absolute...)
}

// placeAbsolute positions absolute children at their explicit
// coordinates, relative to the parent's border-box origin. Absolute
// placement never reads or affects flow geometry.
func placeAbsolute(absolute []*Node) {
	for _, child := range absolute {
		child.ensureState().pos = Point{X: child.Style.X, Y: child.Style.Y}
	}
}
