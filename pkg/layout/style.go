package layout

// DefaultFontSize is used by text-bearing nodes that don't set Style.FontSize.
const DefaultFontSize = 16

// Direction is the main axis of a flex container.
type Direction uint8

const (
	DirectionColumn Direction = iota
	DirectionRow
)

// Justify controls main-axis distribution of free space.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align controls cross-axis placement of each child.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// String returns the CSS-style name of the justify mode.
func (j Justify) String() string {
	switch j {
	case JustifyCenter:
		return "center"
	case JustifyEnd:
		return "end"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return "start"
	}
}

// String returns the CSS-style name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return "start"
	}
}

// Position selects whether a node participates in flow layout or is
// placed at explicit coordinates.
type Position uint8

const (
	PositionFlow Position = iota
	PositionAbsolute
)

// Style holds the user-set visual and positioning properties of a node.
// The zero value is a flow-positioned, visible, auto-sized node.
type Style struct {
	Width  Value
	Height Value

	Padding Edges
	Margin  Edges

	// Position mode. Absolute nodes are placed at (X, Y) relative to the
	// parent's border box and do not consume flow space.
	Position Position
	X, Y     float64

	// ZIndex orders absolute siblings during compositing. Higher values
	// are composited later (topmost). Flow siblings ignore it.
	ZIndex int

	// Hidden nodes are skipped by layout, compositing, and hit testing.
	Hidden bool

	// FontSize feeds text measurement. Zero means DefaultFontSize.
	FontSize float64
}

// fontSize returns the effective font size for text measurement.
func (s Style) fontSize() float64 {
	if s.FontSize > 0 {
		return s.FontSize
	}
	return DefaultFontSize
}

// Layout holds the optional flex and constraint properties of a node.
// A nil *Layout on a Node means defaults: no bounds, no grow, shrink 1,
// no gap, JustifyStart, AlignStart.
type Layout struct {
	MinWidth  Value
	MaxWidth  Value
	MinHeight Value
	MaxHeight Value

	// Grow and Shrink are the flex factors. Shrink defaults to 1 when the
	// whole record is absent; an explicit record uses its values as given.
	Grow   float64
	Shrink float64

	Gap float64

	Justify   Justify
	Align     Align
	Direction Direction
}

// defaultLayout is applied when a node carries no layout record.
var defaultLayout = Layout{Shrink: 1}

// layoutOf returns the node's layout record or the defaults.
func layoutOf(n *Node) Layout {
	if n == nil || n.Layout == nil {
		return defaultLayout
	}
	return *n.Layout
}
