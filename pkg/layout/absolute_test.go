package layout

import "testing"

func absChild(z int, x, y float64) *Node {
	return NewNode(KindContainer, Style{
		Position: PositionAbsolute,
		X:        x, Y: y,
		Width:  Px(20),
		Height: Px(20),
		ZIndex: z,
	})
}

func TestCompositeOrderSortsByZ(t *testing.T) {
	z5 := absChild(5, 10, 10)
	z1 := absChild(1, 10, 10)
	z3 := absChild(3, 10, 10)
	root := NewColumn(Style{}, z5, z1, z3)

	if err := testEngine().Layout(root, Tight(100, 100)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	order := compositeOrder(root.Children)
	want := []*Node{z1, z3, z5}
	for i, n := range want {
		if order[i] != n {
			t.Fatalf("composite order[%d] has z=%d, want z=%d",
				i, order[i].Style.ZIndex, n.Style.ZIndex)
		}
	}

	// The z=5 child is composited last, so it is topmost for hits.
	if hit := FindAt(root, 15, 15); hit != z5 {
		t.Errorf("FindAt returned z=%d, want z=5", hit.Style.ZIndex)
	}
}

func TestCompositeOrderIsStable(t *testing.T) {
	first := absChild(2, 0, 0)
	second := absChild(2, 0, 0)
	root := NewColumn(Style{}, first, second)

	if err := testEngine().Layout(root, Tight(100, 100)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	order := compositeOrder(root.Children)
	if order[0] != first || order[1] != second {
		t.Error("equal z-indexes must keep document order")
	}
}

func TestAllAbsoluteSkipsFlex(t *testing.T) {
	a := absChild(1, 30, 40)
	b := absChild(2, 5, 60)
	root := NewColumn(Style{}, a, b)
	root.Layout = &Layout{Gap: 99, Justify: JustifyCenter}

	if err := testEngine().Layout(root, Tight(100, 100)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// Explicit coordinates win; gap and justify never apply.
	ra, rb := mustRect(t, a), mustRect(t, b)
	if !approx(ra.X, 30) || !approx(ra.Y, 40) {
		t.Errorf("a at (%v, %v), want (30, 40)", ra.X, ra.Y)
	}
	if !approx(rb.X, 5) || !approx(rb.Y, 60) {
		t.Errorf("b at (%v, %v), want (5, 60)", rb.X, rb.Y)
	}
}

func TestMixedFlowAndAbsolute(t *testing.T) {
	flow1 := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)})
	overlay := absChild(4, 70, 0)
	flow2 := NewNode(KindContainer, Style{Width: Px(30), Height: Px(10)})
	root := NewRow(Style{}, flow1, overlay, flow2)

	if err := testEngine().Layout(root, Tight(200, 100)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// Flow children pack as if the absolute sibling did not exist.
	if x := mustRect(t, flow2).X; !approx(x, 30) {
		t.Errorf("flow2.x = %v, want 30", x)
	}
	if r := mustRect(t, overlay); !approx(r.X, 70) || !approx(r.Y, 0) {
		t.Errorf("overlay at (%v, %v), want (70, 0)", r.X, r.Y)
	}
}

func TestAbsoluteSizesAgainstClampedBox(t *testing.T) {
	overlay := NewNode(KindContainer, Style{
		Position: PositionAbsolute,
		Width:    Percent(50),
		Height:   Percent(100),
	})
	box := NewRow(Style{Width: Px(200), Height: Px(50)}, overlay)
	box.Layout = &Layout{MaxWidth: Px(100)}

	if err := testEngine().Layout(box, Loose(300, 300)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	// The max-width clamp shrinks the container to 100; percent children
	// resolve against the box the container actually gets.
	if r := mustRect(t, box); !approx(r.Width, 100) {
		t.Fatalf("container width = %v, want 100", r.Width)
	}
	r := mustRect(t, overlay)
	if !approx(r.Width, 50) || !approx(r.Height, 50) {
		t.Errorf("overlay = %v x %v, want 50 x 50", r.Width, r.Height)
	}
}

func TestFindAtPrefersChildren(t *testing.T) {
	inner := NewNode(KindContainer, Style{Width: Px(40), Height: Px(40)})
	root := NewColumn(Style{}, inner)

	if err := testEngine().Layout(root, Tight(100, 100)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if hit := FindAt(root, 10, 10); hit != inner {
		t.Errorf("FindAt inside child returned %v, want the child", hit.Kind)
	}
	if hit := FindAt(root, 90, 90); hit != root {
		t.Errorf("FindAt outside child returned %v, want the root", hit.Kind)
	}
	if hit := FindAt(root, 150, 150); hit != nil {
		t.Errorf("FindAt outside root returned %v, want nil", hit.Kind)
	}
}

func TestFindAtSkipsHiddenAndInvalid(t *testing.T) {
	hidden := NewNode(KindContainer, Style{Width: Px(40), Height: Px(40), Hidden: true})
	shown := NewNode(KindContainer, Style{Width: Px(40), Height: Px(40)})
	root := NewColumn(Style{}, hidden, shown)

	if err := testEngine().Layout(root, Tight(100, 100)); err != nil {
		t.Fatalf("Layout: %v", err)
	}

	if hit := FindAt(root, 10, 10); hit != shown {
		t.Errorf("FindAt returned %v, want the visible child", hit.Kind)
	}

	// A dirtied node's rect is invalid and must not be hit.
	shown.MarkDirty()
	if hit := FindAt(root, 10, 10); hit != nil {
		t.Errorf("FindAt over dirty tree returned %v, want nil", hit.Kind)
	}
}
