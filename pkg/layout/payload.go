package layout

// Payload is the per-kind data a node carries beyond style and text.
// It is a closed sum: each variant below pairs with one or more Kinds,
// and lives exactly as long as its owning node.
type Payload interface {
	payload()
}

// TablePayload configures a table root and receives its computed grid.
type TablePayload struct {
	// CellPadding is the inset applied inside every cell on all sides.
	// Zero means the default of 8.
	CellPadding float64

	// Borders enables border accounting: BorderWidth is inserted between
	// cells and around the table edge.
	Borders     bool
	BorderWidth float64

	// Columns optionally pins column widths ahead of content sizing.
	// Missing entries (or auto values) fall back to content-driven widths.
	Columns []ColumnSpec

	// Computed by layout. Read-only for consumers.
	ColumnWidths []float64
	RowHeights   []float64
}

func (*TablePayload) payload() {}

// cellPadding returns the effective cell padding.
func (t *TablePayload) cellPadding() float64 {
	if t == nil || t.CellPadding <= 0 {
		return 8
	}
	return t.CellPadding
}

// borderWidth returns the effective border width, zero when borders are off.
func (t *TablePayload) borderWidth() float64 {
	if t == nil || !t.Borders {
		return 0
	}
	if t.BorderWidth <= 0 {
		return 1
	}
	return t.BorderWidth
}

// ColumnSpec pins a table column's width before content sizing runs.
type ColumnSpec struct {
	// Width is honored when not auto; resolved against the table's
	// incoming width constraint.
	Width Value

	// Min floors the content-driven width.
	Min float64
}

// CellPayload carries span metadata for a table cell. Spans participate
// in column counting but geometry is never merged across them.
type CellPayload struct {
	ColSpan int // defaults to 1 when < 1
	RowSpan int // defaults to 1 when < 1
}

func (*CellPayload) payload() {}

// colSpan returns the effective column span.
func (c *CellPayload) colSpan() int {
	if c == nil || c.ColSpan < 1 {
		return 1
	}
	return c.ColSpan
}

// DropdownPayload holds the option list and selection of a dropdown.
// The closed dropdown sizes to its widest option.
type DropdownPayload struct {
	Options  []string
	Selected int
	Hovered  int
	Open     bool
}

func (*DropdownPayload) payload() {}

// TabGroupPayload holds tab labels and the selected index for a tab group.
// Child i of the group's content region pairs with Tabs[i].
type TabGroupPayload struct {
	Tabs     []string
	Selected int
}

func (*TabGroupPayload) payload() {}

// CanvasCommand is one entry of a canvas command buffer. Layout treats
// the buffer as opaque; only the drawing backend interprets it.
type CanvasCommand struct {
	Op   string
	Args []float64
}

// CanvasPayload holds a drawing command buffer and an optional explicit
// intrinsic size.
type CanvasPayload struct {
	Width, Height float64 // zero means the 300x150 default
	Commands      []CanvasCommand
}

func (*CanvasPayload) payload() {}

// ImagePayload names the source of an image or sprite leaf. The natural
// size comes from the engine's media sizer.
type ImagePayload struct {
	Source string
}

func (*ImagePayload) payload() {}

// HeadingPayload sets the heading level (1..6) for font scaling.
type HeadingPayload struct {
	Level int
}

func (*HeadingPayload) payload() {}

// headingScale maps a heading level to a font-size multiplier,
// following the conventional h1..h6 em scale.
func headingScale(level int) float64 {
	switch level {
	case 1:
		return 2.0
	case 2:
		return 1.5
	case 3:
		return 1.17
	case 5:
		return 0.83
	case 6:
		return 0.67
	default:
		return 1.0
	}
}
