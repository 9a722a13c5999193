package layout

// centerStrategy is the degenerate flex container: it fills the space
// it is given and centers each flow child on both axes, ignoring any
// declared alignment. Modals reuse it to float over the viewport.
type centerStrategy struct{}

func (centerStrategy) Measure(p *Pass, n *Node, c Constraints) Size {
	pad := n.Style.Padding
	aw := c.availableWidth(0)
	ah := c.availableHeight(0)

	// A centering container needs room: auto dimensions fill the
	// bounded constraint rather than hugging content.
	w := p.resolve(n, n.Style.Width, aw, aw)
	h := p.resolve(n, n.Style.Height, ah, ah)

	contentW := max(0, w-pad.Horizontal())
	contentH := max(0, h-pad.Vertical())

	flow, absolute := splitChildren(n.Children)
	var maxW, maxH float64
	for _, child := range flow {
		nat := p.natural(child)
		cw := p.resolve(child, child.Style.Width, contentW, nat.Width)
		ch := p.resolve(child, child.Style.Height, contentH, nat.Height)
		got := p.Layout(child, Tight(cw, ch))
		maxW = max(maxW, got.Width+child.Style.Margin.Horizontal())
		maxH = max(maxH, got.Height+child.Style.Margin.Vertical())
	}
	for _, child := range absolute {
		p.Layout(child, Loose(contentW, contentH))
	}

	// Unbounded axes with no explicit dimension hug the largest child.
	if n.Style.Width.IsAuto() && !c.BoundedWidth() {
		w = maxW + pad.Horizontal()
	}
	if n.Style.Height.IsAuto() && !c.BoundedHeight() {
		h = maxH + pad.Vertical()
	}

	return Size{Width: w, Height: h}
}

func (centerStrategy) Arrange(p *Pass, n *Node) {
	st := n.state
	if st == nil {
		return
	}
	pad := n.Style.Padding
	contentW := max(0, st.size.Width-pad.Horizontal())
	contentH := max(0, st.size.Height-pad.Vertical())

	flow, absolute := splitChildren(n.Children)
	for _, child := range flow {
		var cs Size
		if child.state != nil && child.state.valid {
			cs = child.state.size
		}
		m := child.Style.Margin
		outerW := cs.Width + m.Horizontal()
		outerH := cs.Height + m.Vertical()
		child.ensureState().pos = Point{
			X: pad.Left + (contentW-outerW)/2 + m.Left,
			Y: pad.Top + (contentH-outerH)/2 + m.Top,
		}
	}
	placeAbsolute(absolute)
}

func (centerStrategy) Intrinsic(p *Pass, n *Node) (Size, bool) {
	flow, _ := splitChildren(n.Children)
	var w, h float64
	for _, child := range flow {
		nat := p.natural(child)
		w = max(w, nat.Width+child.Style.Margin.Horizontal())
		h = max(h, nat.Height+child.Style.Margin.Vertical())
	}
	pad := n.Style.Padding
	return Size{Width: w + pad.Horizontal(), Height: h + pad.Vertical()}, true
}
