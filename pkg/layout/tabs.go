package layout

// tabGroupStrategy stacks a label bar above a panel region. The group's
// flow children are the panels; Tabs[i] in the payload labels child i.
// Only the selected panel is laid out; the rest stay invalid so
// compositing and hit testing skip them.
type tabGroupStrategy struct{}

// barHeight derives the tab bar extent from the tallest label plus
// button chrome.
func (tabGroupStrategy) barHeight(p *Pass, n *Node) float64 {
	fs := n.Style.fontSize()
	h := fs*1.2 + buttonChromeHeight
	if tp, ok := n.Payload.(*TabGroupPayload); ok {
		for _, label := range tp.Tabs {
			_, lh := p.Text().Measure(label, fs, 0)
			h = max(h, lh+buttonChromeHeight)
		}
	}
	return h
}

func (s tabGroupStrategy) Measure(p *Pass, n *Node, c Constraints) Size {
	pad := n.Style.Padding
	aw := c.availableWidth(0)
	ah := c.availableHeight(0)

	barH := s.barHeight(p, n)
	flow, absolute := splitChildren(n.Children)
	selected := selectedPanel(n, len(flow))

	// A selection change retires the previous panel here: a stale cached
	// rect would keep compositing and hit testing on the old subtree.
	for i, panel := range flow {
		if i != selected {
			panel.invalidateTree()
		}
	}

	// Auto dimensions fill bounded space; a tab group is a region, not
	// a hugging widget.
	w := p.resolve(n, n.Style.Width, aw, aw)
	h := p.resolve(n, n.Style.Height, ah, ah)
	if n.Style.Width.IsAuto() && !c.BoundedWidth() {
		nat, _ := s.Intrinsic(p, n)
		w = nat.Width
	}
	if n.Style.Height.IsAuto() && !c.BoundedHeight() {
		nat, _ := s.Intrinsic(p, n)
		h = nat.Height
	}

	contentW := max(0, w-pad.Horizontal())
	panelH := max(0, h-pad.Vertical()-barH)

	if selected >= 0 {
		p.Layout(flow[selected], Tight(contentW, panelH))
	}
	for _, child := range absolute {
		p.Layout(child, Loose(contentW, max(0, h-pad.Vertical())))
	}

	return Size{Width: w, Height: h}
}

func (s tabGroupStrategy) Arrange(p *Pass, n *Node) {
	pad := n.Style.Padding
	barH := s.barHeight(p, n)

	flow, absolute := splitChildren(n.Children)
	selected := selectedPanel(n, len(flow))
	if selected >= 0 {
		flow[selected].ensureState().pos = Point{X: pad.Left, Y: pad.Top + barH}
	}
	placeAbsolute(absolute)
}

func (s tabGroupStrategy) Intrinsic(p *Pass, n *Node) (Size, bool) {
	fs := n.Style.fontSize()
	barH := s.barHeight(p, n)

	var barW float64
	if tp, ok := n.Payload.(*TabGroupPayload); ok {
		for _, label := range tp.Tabs {
			lw, _ := p.Text().Measure(label, fs, 0)
			barW += lw + buttonChromeWidth
		}
	}

	flow, _ := splitChildren(n.Children)
	var panelW, panelH float64
	if sel := selectedPanel(n, len(flow)); sel >= 0 {
		nat := p.natural(flow[sel])
		panelW, panelH = nat.Width, nat.Height
	}

	pad := n.Style.Padding
	return Size{
		Width:  max(barW, panelW) + pad.Horizontal(),
		Height: barH + panelH + pad.Vertical(),
	}, true
}

// selectedPanel clamps the payload's selected index into the panel
// range, or -1 when there are no panels.
func selectedPanel(n *Node, panels int) int {
	if panels == 0 {
		return -1
	}
	sel := 0
	if tp, ok := n.Payload.(*TabGroupPayload); ok {
		sel = tp.Selected
	}
	if sel < 0 {
		sel = 0
	}
	if sel >= panels {
		sel = panels - 1
	}
	return sel
}
