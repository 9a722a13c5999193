package layout

// Cell sizing floors: an empty cell still occupies a readable column,
// and rows never collapse below a clickable height.
const (
	emptyCellWidth = 100
	minRowHeight   = 30
)

// tableStrategy lays out a table root and drives its whole subtree
// (sections, rows, cells). Section and row kinds are never dispatched
// independently while they sit under a table.
type tableStrategy struct{}

// tableSection groups the rows of one head/body/foot child. Rows placed
// directly under the table get an implicit section with a nil node.
type tableSection struct {
	node *Node
	rows []*Node
}

// tableGrid is the measured geometry of a table subtree.
type tableGrid struct {
	sections []tableSection
	colW     []float64
	rowH     []float64
	totalW   float64
	totalH   float64
	rows     int
}

func (tableStrategy) Measure(p *Pass, n *Node, c Constraints) Size {
	tp, _ := n.Payload.(*TablePayload)
	grid := measureGrid(p, n, tp, c.availableWidth(0))

	// An explicit table width wider than the natural total spreads the
	// excess across columns in proportion to their natural widths.
	totalW := grid.totalW
	if !n.Style.Width.IsAuto() && n.Style.Width.valid() && len(grid.colW) > 0 {
		ownW := n.Style.Width.Resolve(c.availableWidth(0), totalW)
		if ownW > totalW {
			var natural float64
			for _, w := range grid.colW {
				natural += w
			}
			excess := ownW - totalW
			if natural > 0 {
				for i := range grid.colW {
					grid.colW[i] += excess * grid.colW[i] / natural
				}
			} else {
				share := excess / float64(len(grid.colW))
				for i := range grid.colW {
					grid.colW[i] += share
				}
			}
			totalW = ownW
		} else {
			totalW = ownW
		}
	}

	totalH := grid.totalH
	if !n.Style.Height.IsAuto() && n.Style.Height.valid() {
		totalH = n.Style.Height.Resolve(c.availableHeight(0), totalH)
	}

	if tp != nil {
		tp.ColumnWidths = grid.colW
		tp.RowHeights = grid.rowH
	}

	// Totals clamp to the incoming constraints; cells keep their
	// measured sizes and may overflow a clamped table.
	return c.Constrain(Size{Width: totalW, Height: totalH})
}

func (tableStrategy) Arrange(p *Pass, n *Node) {
	st := n.state
	if st == nil {
		return
	}
	tp, _ := n.Payload.(*TablePayload)
	pad := tp.cellPadding()
	bw := tp.borderWidth()

	grid := measureGrid(p, n, tp, st.constraints.availableWidth(0))
	colW := grid.colW
	rowH := grid.rowH
	if tp != nil && len(tp.ColumnWidths) > 0 {
		// Measure may have redistributed excess width into the columns.
		colW = tp.ColumnWidths
	}
	if tp != nil && len(tp.RowHeights) > 0 {
		rowH = tp.RowHeights
	}

	// Second traversal: assign parent-relative rects by accumulating
	// column and row offsets, with borders between cells when enabled.
	y := bw
	r := 0
	for _, sec := range grid.sections {
		sectionTop := y
		for _, row := range sec.rows {
			h := 0.0
			if r < len(rowH) {
				h = rowH[r]
			}
			rowTop := y - sectionTop
			if sec.node == nil {
				rowTop = y
			}
			p.commit(row, Point{X: 0, Y: rowTop}, Size{Width: st.size.Width, Height: h})

			x := bw
			ci := 0
			for _, cell := range visibleCells(row) {
				w := 0.0
				if ci < len(colW) {
					w = colW[ci]
				}
				p.commit(cell, Point{X: x, Y: 0}, Size{Width: w, Height: h})

				// Cell contents lay out inside the padded content box.
				inner := Loose(max(0, w-2*pad), max(0, h-2*pad))
				for _, child := range compositeOrder(cell.Children) {
					p.Layout(child, inner)
					child.ensureState().pos = Point{X: pad, Y: pad}
				}

				span, _ := cell.Payload.(*CellPayload)
				ci += span.colSpan()
				x += w + bw
			}

			y += h + bw
			r++
		}
		if sec.node != nil {
			p.commit(sec.node, Point{X: 0, Y: sectionTop},
				Size{Width: st.size.Width, Height: y - sectionTop})
		}
	}
}

func (tableStrategy) Intrinsic(p *Pass, n *Node) (Size, bool) {
	tp, _ := n.Payload.(*TablePayload)
	grid := measureGrid(p, n, tp, 0)
	return Size{Width: grid.totalW, Height: grid.totalH}, true
}

// measureGrid computes column widths, row heights, and natural totals.
// availW resolves pinned column widths; zero means unbounded.
func measureGrid(p *Pass, n *Node, tp *TablePayload, availW float64) tableGrid {
	grid := collectGrid(n)
	pad := tp.cellPadding()
	bw := tp.borderWidth()

	cols := 0
	for _, sec := range grid.sections {
		for _, row := range sec.rows {
			count := 0
			for _, cell := range visibleCells(row) {
				span, _ := cell.Payload.(*CellPayload)
				count += span.colSpan()
			}
			cols = max(cols, count)
			grid.rows++
		}
	}

	grid.colW = make([]float64, cols)
	grid.rowH = make([]float64, 0, grid.rows)

	// Pinned column widths seed the maxima before content sizing.
	if tp != nil {
		for i, spec := range tp.Columns {
			if i >= cols {
				break
			}
			if !spec.Width.IsAuto() && spec.Width.valid() {
				grid.colW[i] = spec.Width.Resolve(availW, 0)
			}
			grid.colW[i] = max(grid.colW[i], spec.Min)
		}
	}

	for _, sec := range grid.sections {
		for _, row := range sec.rows {
			rowHeight := 0.0
			ci := 0
			for _, cell := range visibleCells(row) {
				fs := cell.Style.fontSize()

				w := float64(emptyCellWidth)
				if cell.Text != "" {
					tw, _ := p.Text().Measure(cell.Text, fs, 0)
					w = tw + 2*pad
				}
				h := max(fs+2*pad, minRowHeight)

				if ci < cols {
					grid.colW[ci] = max(grid.colW[ci], w)
				}
				rowHeight = max(rowHeight, h)

				span, _ := cell.Payload.(*CellPayload)
				ci += span.colSpan()
			}
			grid.rowH = append(grid.rowH, rowHeight)
		}
	}

	for _, w := range grid.colW {
		grid.totalW += w
	}
	for _, h := range grid.rowH {
		grid.totalH += h
	}
	if bw > 0 {
		grid.totalW += bw * float64(cols+1)
		grid.totalH += bw * float64(len(grid.rowH)+1)
	}
	return grid
}

// collectGrid walks the table's children into sections and rows.
func collectGrid(n *Node) tableGrid {
	var grid tableGrid
	var implicit *tableSection
	for _, child := range n.Children {
		if child == nil || child.Style.Hidden {
			continue
		}
		switch child.Kind {
		case KindTableHead, KindTableBody, KindTableFoot:
			sec := tableSection{node: child}
			for _, row := range child.Children {
				if row != nil && !row.Style.Hidden && row.Kind == KindTableRow {
					sec.rows = append(sec.rows, row)
				}
			}
			grid.sections = append(grid.sections, sec)
			implicit = nil
		case KindTableRow:
			if implicit == nil {
				grid.sections = append(grid.sections, tableSection{})
				implicit = &grid.sections[len(grid.sections)-1]
			}
			implicit.rows = append(implicit.rows, child)
		}
	}
	return grid
}

// visibleCells returns the row's visible cell children.
func visibleCells(row *Node) []*Node {
	cells := make([]*Node, 0, len(row.Children))
	for _, c := range row.Children {
		if c == nil || c.Style.Hidden {
			continue
		}
		if c.Kind == KindTableCell || c.Kind == KindTableHeaderCell {
			cells = append(cells, c)
		}
	}
	return cells
}
