package layout

import "math"

// flexStrategy implements the Row/Column distribution algorithm. The
// same code serves both directions through axis swapping; generic
// containers pick their axis from the layout record.
type flexStrategy struct{}

// flexItem holds intermediate sizing state for one flow child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node       *Node
	base       float64 // outer main size before grow/shrink (content + margin)
	main       float64 // final outer main size
	cross      float64 // final outer cross size
	mainMargin float64
	minMain    float64 // content minimum, margin excluded
	maxMain    float64 // content maximum, +Inf when unset
	grow       float64
	shrink     float64
}

// flexDirection returns the main axis for a node. Row-like and
// column-like kinds are fixed; plain containers follow their record.
func flexDirection(n *Node) Direction {
	switch n.Kind {
	case KindRow, KindTableRow, KindTabBar:
		return DirectionRow
	case KindColumn, KindTableHead, KindTableBody, KindTableFoot,
		KindTabContent, KindTabPanel:
		return DirectionColumn
	default:
		return layoutOf(n).Direction
	}
}

func (f flexStrategy) Measure(p *Pass, n *Node, c Constraints) Size {
	isRow := flexDirection(n) == DirectionRow
	lay := layoutOf(n)
	pad := n.Style.Padding
	padMain, padCross := axisSums(pad, isRow)

	// Outer and content-box availability on each axis. May be +Inf.
	outerMain, outerCross := axisPair(c.MaxWidth, c.MaxHeight, isRow)
	contentMainAvail := outerMain
	if !math.IsInf(outerMain, 1) {
		contentMainAvail = max(0, outerMain-padMain)
	}
	contentCrossAvail := outerCross
	if !math.IsInf(outerCross, 1) {
		contentCrossAvail = max(0, outerCross-padCross)
	}
	mainBounded := !math.IsInf(contentMainAvail, 1)
	crossBounded := !math.IsInf(contentCrossAvail, 1)

	flow, absolute := splitChildren(n.Children)

	// Pass 1: base main sizes ignoring grow (explicit > percent >
	// intrinsic) plus flex factors.
	items := make([]flexItem, len(flow))
	var contentSize, totalGrow, totalShrink float64
	for i, child := range flow {
		it := &items[i]
		it.node = child
		it.mainMargin, _ = axisSums(child.Style.Margin, isRow)

		cl := layoutOf(child)
		it.grow = cl.Grow
		it.shrink = cl.Shrink

		parentMain := 0.0
		if mainBounded {
			parentMain = contentMainAvail
		}

		mainVal := axisValue(child.Style.Width, child.Style.Height, isRow)
		var base float64
		if mainVal.IsAuto() || !mainVal.valid() {
			if !mainVal.valid() {
				p.warnUnit(child, mainVal)
			}
			nat := p.natural(child)
			base, _ = axisPair(nat.Width, nat.Height, isRow)
		} else {
			base = mainVal.Resolve(parentMain, 0)
		}

		minVal := axisValue(cl.MinWidth, cl.MinHeight, isRow)
		maxVal := axisValue(cl.MaxWidth, cl.MaxHeight, isRow)
		it.minMain = p.resolve(child, minVal, parentMain, 0)
		it.maxMain = math.Inf(1)
		if !maxVal.IsAuto() {
			it.maxMain = p.resolve(child, maxVal, parentMain, math.Inf(1))
		}

		it.base = clamp(base, it.minMain, it.maxMain) + it.mainMargin
		contentSize += it.base
		totalGrow += it.grow
		totalShrink += it.shrink
	}
	if len(items) > 1 {
		contentSize += lay.Gap * float64(len(items)-1)
	}

	// Own main content size. An explicit dimension always wins; an auto
	// container takes the available space when it must distribute it
	// (grow factors or a non-start justify), otherwise it hugs content.
	mainStyle := axisValue(n.Style.Width, n.Style.Height, isRow)
	var ownMain float64
	switch {
	case !mainStyle.IsAuto() && mainStyle.valid():
		outerAvail := 0.0
		if mainBounded {
			outerAvail = outerMain
		}
		ownMain = max(0, mainStyle.Resolve(outerAvail, 0)-padMain)
	case mainBounded && (totalGrow > 0 || lay.Justify != JustifyStart):
		ownMain = contentMainAvail
	case mainBounded && contentSize > contentMainAvail:
		ownMain = contentMainAvail
	default:
		if !mainStyle.valid() {
			p.warnUnit(n, mainStyle)
		}
		ownMain = contentSize
	}

	// Pass 1 continued: distribute free main space.
	free := ownMain - contentSize
	switch {
	case free > 0 && totalGrow > 0:
		for i := range items {
			it := &items[i]
			it.main = it.base
			if it.grow > 0 {
				it.main += free * it.grow / totalGrow
			}
		}
	case free < 0 && totalShrink > 0:
		deficit := -free
		for i := range items {
			it := &items[i]
			it.main = it.base
			if it.shrink > 0 {
				it.main -= deficit * it.shrink / totalShrink
			}
			// Never shrink below the configured minimum.
			if floor := it.minMain + it.mainMargin; it.main < floor {
				it.main = floor
			}
		}
	default:
		for i := range items {
			items[i].main = items[i].base
		}
	}
	for i := range items {
		it := &items[i]
		it.main = clamp(it.main, it.minMain+it.mainMargin, it.maxMain+it.mainMargin)
	}

	// Cross sizes: explicit > percent > intrinsic, then the container's
	// own cross extent, then stretch overrides for auto children.
	var natCross float64
	for i := range items {
		it := &items[i]
		child := it.node
		_, crossMargin := axisSums(child.Style.Margin, isRow)

		parentCross := 0.0
		if crossBounded {
			parentCross = contentCrossAvail
		}

		crossVal := axisValue(child.Style.Height, child.Style.Width, isRow)
		var cc float64
		if crossVal.IsAuto() || !crossVal.valid() {
			if !crossVal.valid() {
				p.warnUnit(child, crossVal)
			}
			nat := p.natural(child)
			_, cc = axisPair(nat.Width, nat.Height, isRow)
		} else {
			cc = crossVal.Resolve(parentCross, 0)
		}
		it.cross = cc + crossMargin
		natCross = max(natCross, it.cross)
	}

	crossStyle := axisValue(n.Style.Height, n.Style.Width, isRow)
	var ownCross float64
	switch {
	case !crossStyle.IsAuto() && crossStyle.valid():
		outerAvail := 0.0
		if crossBounded {
			outerAvail = outerCross
		}
		ownCross = max(0, crossStyle.Resolve(outerAvail, 0)-padCross)
	case crossTight(c, isRow):
		ownCross = contentCrossAvail
	default:
		if !crossStyle.valid() {
			p.warnUnit(n, crossStyle)
		}
		ownCross = natCross
	}

	for i := range items {
		it := &items[i]
		crossVal := axisValue(it.node.Style.Height, it.node.Style.Width, isRow)
		if lay.Align == AlignStretch && crossVal.IsAuto() {
			// Stretch forces the container's content cross size unless
			// the child declared an explicit cross dimension.
			it.cross = ownCross
		}
	}

	// Recurse: each child gets its committed slot as a tight constraint.
	for i := range items {
		it := &items[i]
		_, crossMargin := axisSums(it.node.Style.Margin, isRow)
		childMain := max(0, it.main-it.mainMargin)
		childCross := max(0, it.cross-crossMargin)
		// axisPair is its own inverse: (main, cross) back to (w, h).
		cw, ch := axisPair(childMain, childCross, isRow)
		got := p.Layout(it.node, Tight(cw, ch))
		gm, gc := axisPair(got.Width, got.Height, isRow)
		it.main = gm + it.mainMargin
		it.cross = gc + crossMargin
	}

	contentW, contentH := axisPair(ownMain, ownCross, isRow)
	size := Size{
		Width:  contentW + pad.Horizontal(),
		Height: contentH + pad.Vertical(),
	}
	size = c.Constrain(p.clampToRecord(n, size, c))

	// Absolute children size independently within the content box the
	// container actually gets, after its own min/max and the incoming
	// constraints. They consume no flow space.
	absW := max(0, size.Width-pad.Horizontal())
	absH := max(0, size.Height-pad.Vertical())
	for _, child := range absolute {
		p.Layout(child, Loose(absW, absH))
	}

	return size
}

func (f flexStrategy) Arrange(p *Pass, n *Node) {
	st := n.state
	if st == nil {
		return
	}
	isRow := flexDirection(n) == DirectionRow
	lay := layoutOf(n)
	pad := n.Style.Padding

	contentW := max(0, st.size.Width-pad.Horizontal())
	contentH := max(0, st.size.Height-pad.Vertical())
	contentMain, contentCross := axisPair(contentW, contentH, isRow)

	flow, absolute := splitChildren(n.Children)

	// Re-derive outer extents from the sizes committed during Measure.
	type extent struct{ main, cross float64 }
	outer := make([]extent, len(flow))
	var used float64
	for i, child := range flow {
		var cs Size
		if child.state != nil && child.state.valid {
			cs = child.state.size
		}
		mm, cm := axisSums(child.Style.Margin, isRow)
		m, cr := axisPair(cs.Width, cs.Height, isRow)
		outer[i] = extent{main: m + mm, cross: cr + cm}
		used += outer[i].main
	}

	gaps := 0.0
	if len(flow) > 1 {
		gaps = lay.Gap * float64(len(flow)-1)
	}
	free := contentMain - used - gaps

	offset := justifyOffset(lay.Justify, free, len(flow))
	spacing := justifySpacing(lay.Justify, free, len(flow))
	p.Tracer().Distribution(n, lay.Justify, free, offset, spacing)

	leadMain, leadCross := axisPair(pad.Left, pad.Top, isRow)
	cursor := leadMain + offset
	for i, child := range flow {
		ao := alignOffset(lay.Align, contentCross, outer[i].cross)
		p.Tracer().Alignment(n, child, lay.Align, ao)

		mm := child.Style.Margin
		var marginMain, marginCross float64
		if isRow {
			marginMain, marginCross = mm.Left, mm.Top
		} else {
			marginMain, marginCross = mm.Top, mm.Left
		}

		mainPos := cursor + marginMain
		crossPos := leadCross + ao + marginCross

		x, y := axisPair(mainPos, crossPos, isRow)
		child.ensureState().pos = Point{X: x, Y: y}

		cursor += outer[i].main + lay.Gap + spacing
	}

	placeAbsolute(absolute)
}

func (f flexStrategy) Intrinsic(p *Pass, n *Node) (Size, bool) {
	isRow := flexDirection(n) == DirectionRow
	lay := layoutOf(n)
	pad := n.Style.Padding

	flow, _ := splitChildren(n.Children)
	var main, cross float64
	for _, child := range flow {
		nat := p.natural(child)
		mm, cm := axisSums(child.Style.Margin, isRow)
		m, cr := axisPair(nat.Width, nat.Height, isRow)
		main += m + mm
		cross = max(cross, cr+cm)
	}
	if len(flow) > 1 {
		main += lay.Gap * float64(len(flow)-1)
	}

	padMain, padCross := axisSums(pad, isRow)
	w, h := axisPair(main+padMain, cross+padCross, isRow)
	return Size{Width: w, Height: h}, true
}

// justifyOffset returns the leading offset for positioning children
// based on the justify mode and remaining free space.
func justifyOffset(justify Justify, free float64, itemCount int) float64 {
	if free <= 0 || itemCount == 0 {
		return 0
	}
	switch justify {
	case JustifyEnd:
		return free
	case JustifyCenter:
		return free / 2
	case JustifySpaceAround:
		return free / float64(itemCount*2)
	case JustifySpaceEvenly:
		return free / float64(itemCount+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// justifySpacing returns the extra spacing inserted between children
// based on the justify mode and remaining free space.
func justifySpacing(justify Justify, free float64, itemCount int) float64 {
	if free <= 0 || itemCount <= 1 {
		return 0
	}
	switch justify {
	case JustifySpaceBetween:
		return free / float64(itemCount-1)
	case JustifySpaceAround:
		return free / float64(itemCount)
	case JustifySpaceEvenly:
		return free / float64(itemCount+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// alignOffset returns the cross-axis offset for one child.
func alignOffset(align Align, crossSize, itemSize float64) float64 {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// axisSums returns (main, cross) sums of a four-sided inset.
func axisSums(e Edges, isRow bool) (main, cross float64) {
	if isRow {
		return e.Horizontal(), e.Vertical()
	}
	return e.Vertical(), e.Horizontal()
}

// axisPair maps an (x, y) pair to (main, cross) for the given axis.
func axisPair(x, y float64, isRow bool) (main, cross float64) {
	if isRow {
		return x, y
	}
	return y, x
}

// axisValue picks the main-axis value from a (width, height) pair.
func axisValue(w, h Value, isRow bool) Value {
	if isRow {
		return w
	}
	return h
}

// crossTight reports whether the cross axis is pinned to an exact size
// by the incoming constraints.
func crossTight(c Constraints, isRow bool) bool {
	if isRow {
		return c.BoundedHeight() && c.MinHeight == c.MaxHeight
	}
	return c.BoundedWidth() && c.MinWidth == c.MaxWidth
}
