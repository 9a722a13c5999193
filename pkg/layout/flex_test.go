package layout

import (
	"math"
	"testing"

	"github.com/vellum-ui/vellum/pkg/text"
)

const epsilon = 1e-9

func testEngine(opts ...Option) *Engine {
	base := []Option{WithTextMeasurer(text.Fixed{CharWidth: 10, LineHeight: 20})}
	return NewEngine(append(base, opts...)...)
}

func mustRect(t *testing.T, n *Node) Rect {
	t.Helper()
	rect, ok := n.Rect()
	if !ok {
		t.Fatalf("node %s has no valid rect", n.Kind)
	}
	return rect
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestFlexGrow(t *testing.T) {
	a := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)})
	a.Layout = &Layout{Grow: 1}
	b := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)})
	b.Layout = &Layout{Grow: 3}
	root := NewRow(Style{}, a, b)

	if err := testEngine().Layout(root, Tight(100, 50)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// 40 units of remaining space split 1:3 is +10 and +30.
	ra, rb := mustRect(t, a), mustRect(t, b)
	if !approx(ra.Width, 40) {
		t.Errorf("grow 1 child width = %v, want 40", ra.Width)
	}
	if !approx(rb.Width, 60) {
		t.Errorf("grow 3 child width = %v, want 60", rb.Width)
	}
	if !approx(ra.X, 0) || !approx(rb.X, 40) {
		t.Errorf("positions = %v, %v, want 0, 40", ra.X, rb.X)
	}
}

func TestFlexShrinkRespectsMinimum(t *testing.T) {
	a := NewNode(KindContainer, Style{Width: Px(80), Height: Px(10)})
	a.Layout = &Layout{Shrink: 1, MinWidth: Px(55)}
	b := NewNode(KindContainer, Style{Width: Px(80), Height: Px(10)})
	b.Layout = &Layout{Shrink: 1, MinWidth: Px(55)}
	root := NewRow(Style{}, a, b)

	if err := testEngine().Layout(root, Tight(100, 50)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// Proportional shrink would land at 50 each; the minimum wins.
	if w := mustRect(t, a).Width; !approx(w, 55) {
		t.Errorf("shrunk child width = %v, want 55", w)
	}
	if w := mustRect(t, b).Width; !approx(w, 55) {
		t.Errorf("shrunk child width = %v, want 55", w)
	}
}

func TestFlexJustifyConservation(t *testing.T) {
	type tc struct {
		justify Justify
		wantX   [3]float64
	}

	// Container main size 200, three 30-wide children, free space 110.
	tests := map[string]tc{
		"start":         {justify: JustifyStart, wantX: [3]float64{0, 30, 60}},
		"center":        {justify: JustifyCenter, wantX: [3]float64{55, 85, 115}},
		"end":           {justify: JustifyEnd, wantX: [3]float64{110, 140, 170}},
		"space-between": {justify: JustifySpaceBetween, wantX: [3]float64{0, 85, 170}},
		"space-around":  {justify: JustifySpaceAround, wantX: [3]float64{110.0 / 6, 85, 110.0/6 + 2*30 + 2*110.0/3}},
		"space-evenly":  {justify: JustifySpaceEvenly, wantX: [3]float64{27.5, 85, 142.5}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			children := make([]*Node, 3)
			for i := range children {
				children[i] = NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)})
			}
			root := NewRow(Style{}, children...)
			root.Layout = &Layout{Justify: tt.justify}

			if err := testEngine().Layout(root, Tight(200, 50)); err != nil {
				t.Fatalf("Layout: %v", err)
			}

			var total float64
			for i, child := range children {
				r := mustRect(t, child)
				if !approx(r.X, tt.wantX[i]) {
					t.Errorf("child %d x = %v, want %v", i, r.X, tt.wantX[i])
				}
				total += r.Width
			}

			// Conservation: sizes plus every distributed offset and gap
			// fill the container exactly.
			leading := justifyOffset(tt.justify, 110, 3)
			spacing := justifySpacing(tt.justify, 110, 3)
			trailing := 0.0
			switch tt.justify {
			case JustifyCenter:
				trailing = leading
			case JustifySpaceAround:
				trailing = leading
			case JustifySpaceEvenly:
				trailing = leading
			}
			filled := leading + total + 2*spacing + trailing
			if tt.justify == JustifyStart || tt.justify == JustifyEnd {
				filled += 110 - leading // undistributed free space
			}
			if !approx(filled, 200) {
				t.Errorf("distributed extent = %v, want 200", filled)
			}
			if total != 90 {
				t.Errorf("total child width = %v, want 90 (justify never resizes)", total)
			}
		})
	}
}

func TestFlexStretchCross(t *testing.T) {
	child := NewNode(KindContainer, Style{Width: Px(50)})
	explicit := NewNode(KindContainer, Style{Width: Px(50), Height: Px(20)})
	root := NewRow(Style{Padding: EdgeAll(5)}, child, explicit)
	root.Layout = &Layout{Align: AlignStretch}

	if err := testEngine().Layout(root, Tight(200, 60)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// Content cross size is 60 minus 5 padding per side.
	r := mustRect(t, child)
	if !approx(r.Height, 50) {
		t.Errorf("stretched child height = %v, want 50", r.Height)
	}
	if !approx(r.Y, 5) {
		t.Errorf("stretched child y = %v, want 5", r.Y)
	}

	// An explicit cross dimension overrides stretch.
	if h := mustRect(t, explicit).Height; !approx(h, 20) {
		t.Errorf("explicit child height = %v, want 20", h)
	}
}

func TestFlexColumnAxis(t *testing.T) {
	a := NewNode(KindContainer, Style{Width: Px(40), Height: Px(25)})
	b := NewNode(KindContainer, Style{Width: Px(40), Height: Px(25)})
	root := NewColumn(Style{}, a, b)
	root.Layout = &Layout{Gap: 10}

	if err := testEngine().Layout(root, Tight(100, 200)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	ra, rb := mustRect(t, a), mustRect(t, b)
	if !approx(ra.Y, 0) || !approx(rb.Y, 35) {
		t.Errorf("column positions y = %v, %v, want 0, 35", ra.Y, rb.Y)
	}
	if !approx(ra.X, 0) || !approx(rb.X, 0) {
		t.Errorf("column positions x = %v, %v, want 0, 0", ra.X, rb.X)
	}
}

func TestFlexGapAndMargin(t *testing.T) {
	a := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10), Margin: EdgeTRBL(0, 4, 0, 6)})
	b := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)})
	root := NewRow(Style{}, a, b)
	root.Layout = &Layout{Gap: 8}

	if err := testEngine().Layout(root, Tight(200, 50)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// a occupies 6 + 30 + 4 outer units, then the 8 gap.
	ra, rb := mustRect(t, a), mustRect(t, b)
	if !approx(ra.X, 6) {
		t.Errorf("a.x = %v, want 6 (leading margin)", ra.X)
	}
	if !approx(rb.X, 48) {
		t.Errorf("b.x = %v, want 48", rb.X)
	}
}

func TestCenterContainer(t *testing.T) {
	child := NewNode(KindContainer, Style{Width: Px(20), Height: Px(10)})
	root := NewCenter(Style{}, child)
	// Declared alignment is ignored by a centering container.
	root.Layout = &Layout{Align: AlignEnd, Justify: JustifyStart}

	if err := testEngine().Layout(root, Tight(100, 100)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	r := mustRect(t, child)
	if !approx(r.X, 40) || !approx(r.Y, 45) {
		t.Errorf("centered child at (%v, %v), want (40, 45)", r.X, r.Y)
	}
}

func TestNestedAutoContainerIntrinsic(t *testing.T) {
	// An auto-sized row inside a column must report its recursive
	// intrinsic size rather than collapsing to zero.
	inner := NewRow(Style{},
		NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)}),
		NewNode(KindContainer, Style{Width: Px(20), Height: Px(15)}),
	)
	inner.Layout = &Layout{Gap: 5}
	after := NewNode(KindContainer, Style{Width: Px(10), Height: Px(10)})
	root := NewColumn(Style{}, inner, after)

	if err := testEngine().Layout(root, Tight(200, 200)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	r := mustRect(t, inner)
	if !approx(r.Height, 15) {
		t.Errorf("inner row height = %v, want 15 (tallest child)", r.Height)
	}
	if y := mustRect(t, after).Y; !approx(y, 15) {
		t.Errorf("following child y = %v, want 15", y)
	}
}

func TestHiddenChildSkipped(t *testing.T) {
	a := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)})
	hidden := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10), Hidden: true})
	b := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)})
	root := NewRow(Style{}, a, hidden, b)

	if err := testEngine().Layout(root, Tight(200, 50)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if x := mustRect(t, b).X; !approx(x, 30) {
		t.Errorf("b.x = %v, want 30 (hidden sibling takes no space)", x)
	}
	if _, ok := hidden.Rect(); ok {
		t.Error("hidden child should have no valid rect")
	}
}
