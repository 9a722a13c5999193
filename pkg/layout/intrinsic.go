package layout

// Chrome constants for widget leaves. Buttons pad their label; inputs
// have a fixed default field size; canvases fall back to the HTML
// default surface.
const (
	buttonChromeWidth  = 20
	buttonChromeHeight = 12
	inputDefaultWidth  = 200
	inputDefaultHeight = 30
	canvasDefaultW     = 300
	canvasDefaultH     = 150
	checkboxLabelGap   = 6
)

// leafStrategy sizes childless widget kinds: explicit style dimensions
// win, then percent, then the kind's intrinsic size.
type leafStrategy struct{}

func (leafStrategy) Measure(p *Pass, n *Node, c Constraints) Size {
	aw := c.availableWidth(0)
	ah := c.availableHeight(0)

	// Wrap text only when the width is auto and actually bounded.
	maxW := 0.0
	if n.Style.Width.IsAuto() && c.BoundedWidth() {
		maxW = max(0, c.MaxWidth-n.Style.Padding.Horizontal())
	}

	intr, _ := leafIntrinsic(p, n, maxW)
	w := p.resolve(n, n.Style.Width, aw, intr.Width)
	h := p.resolve(n, n.Style.Height, ah, intr.Height)
	return Size{Width: w, Height: h}
}

func (leafStrategy) Arrange(*Pass, *Node) {}

func (leafStrategy) Intrinsic(p *Pass, n *Node) (Size, bool) {
	return leafIntrinsic(p, n, 0)
}

// leafIntrinsic computes the natural size of a widget leaf. maxWidth of
// zero means no wrapping. ok is false for kinds with no natural size.
func leafIntrinsic(p *Pass, n *Node, maxWidth float64) (Size, bool) {
	fs := n.Style.fontSize()

	switch n.Kind {
	case KindText, KindLink, KindMarkdown, KindCodeBlock:
		w, h := p.Text().Measure(n.Text, fs, maxWidth)
		return Size{Width: w, Height: h}, true

	case KindHeading:
		level := 1
		if hp, ok := n.Payload.(*HeadingPayload); ok && hp.Level > 0 {
			level = hp.Level
		}
		scaled := fs * headingScale(level)
		w, h := p.Text().Measure(n.Text, scaled, maxWidth)
		return Size{Width: w, Height: h}, true

	case KindButton, KindTab:
		inner := maxWidth
		if inner > 0 {
			inner = max(0, inner-buttonChromeWidth)
		}
		w, h := p.Text().Measure(n.Text, fs, inner)
		return Size{Width: w + buttonChromeWidth, Height: h + buttonChromeHeight}, true

	case KindInput:
		return Size{Width: inputDefaultWidth, Height: inputDefaultHeight}, true

	case KindCheckbox:
		// Box edge follows the font size; the label sits beside it.
		box := fs
		if n.Text == "" {
			return Size{Width: box, Height: box}, true
		}
		w, h := p.Text().Measure(n.Text, fs, 0)
		return Size{Width: box + checkboxLabelGap + w, Height: max(box, h)}, true

	case KindDropdown:
		// A closed dropdown sizes to its widest option.
		var widest, lineH float64
		if dp, ok := n.Payload.(*DropdownPayload); ok {
			for _, opt := range dp.Options {
				w, h := p.Text().Measure(opt, fs, 0)
				widest = max(widest, w)
				lineH = max(lineH, h)
			}
		}
		if widest == 0 {
			widest, lineH = p.Text().Measure(n.Text, fs, 0)
		}
		return Size{
			Width:  widest + buttonChromeWidth,
			Height: lineH + buttonChromeHeight,
		}, true

	case KindCanvas:
		if cp, ok := n.Payload.(*CanvasPayload); ok && cp.Width > 0 && cp.Height > 0 {
			return Size{Width: cp.Width, Height: cp.Height}, true
		}
		return Size{Width: canvasDefaultW, Height: canvasDefaultH}, true

	case KindImage, KindSprite:
		if ip, ok := n.Payload.(*ImagePayload); ok {
			if w, h, ok := p.Media().NaturalSize(ip.Source); ok {
				return Size{Width: w, Height: h}, true
			}
		}
		return Size{}, true

	case KindSpacer:
		return Size{}, true
	}

	return Size{}, false
}

// natural returns a node's content-driven size: the kind's intrinsic
// when it has one, otherwise zero. Explicit pixel dimensions override
// the intrinsic on their axis; percent can't resolve without a parent
// and stays content-driven here.
func (p *Pass) natural(n *Node) Size {
	s, ok := p.engine.strategyFor(n.Kind).Intrinsic(p, n)
	if !ok {
		s = Size{}
	}
	if n.Style.Width.Unit == UnitPx {
		s.Width = n.Style.Width.Amount
	}
	if n.Style.Height.Unit == UnitPx {
		s.Height = n.Style.Height.Amount
	}
	return s
}
