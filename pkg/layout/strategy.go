package layout

// Strategy is the per-kind layout behavior. Dispatch is a pure lookup
// on the node's Kind; there is no inheritance chain.
//
// Measure computes the node's own size under the given constraints and
// recursively lays out children (all children are measured before any
// are arranged). Arrange assigns each child a position relative to this
// node's border box. Intrinsic reports the content-driven natural size,
// ignoring constraints; ok is false when the kind has no natural size.
type Strategy interface {
	Measure(p *Pass, n *Node, c Constraints) Size
	Arrange(p *Pass, n *Node)
	Intrinsic(p *Pass, n *Node) (size Size, ok bool)
}

// defaultStrategy handles unregistered kinds: size comes purely from
// style (pixel or percent), zero otherwise. Children are still laid out
// so an unknown container doesn't orphan its subtree.
type defaultStrategy struct{}

func (defaultStrategy) Measure(p *Pass, n *Node, c Constraints) Size {
	w := p.resolve(n, n.Style.Width, c.availableWidth(0), 0)
	h := p.resolve(n, n.Style.Height, c.availableHeight(0), 0)

	pad := n.Style.Padding
	contentW := max(0, w-pad.Horizontal())
	contentH := max(0, h-pad.Vertical())

	flow, absolute := splitChildren(n.Children)
	for _, child := range flow {
		p.Layout(child, Loose(contentW, contentH))
	}
	for _, child := range absolute {
		p.Layout(child, Loose(contentW, contentH))
	}

	return Size{Width: w, Height: h}
}

func (defaultStrategy) Arrange(p *Pass, n *Node) {
	pad := n.Style.Padding
	flow, absolute := splitChildren(n.Children)
	for _, child := range flow {
		child.ensureState().pos = Point{X: pad.Left, Y: pad.Top}
	}
	placeAbsolute(absolute)
}

func (defaultStrategy) Intrinsic(*Pass, *Node) (Size, bool) {
	return Size{}, false
}
