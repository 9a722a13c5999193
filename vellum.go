// vellum.go re-exports the component and layout types from pkg/layout.
// Any changes to pkg/layout types must be mirrored here.
package vellum

import "github.com/vellum-ui/vellum/pkg/layout"

// Kind identifies what a node is: container, widget, table part, and so on.
type Kind = layout.Kind

const (
	KindContainer       = layout.KindContainer
	KindRow             = layout.KindRow
	KindColumn          = layout.KindColumn
	KindCenter          = layout.KindCenter
	KindSpacer          = layout.KindSpacer
	KindText            = layout.KindText
	KindHeading         = layout.KindHeading
	KindLink            = layout.KindLink
	KindCodeBlock       = layout.KindCodeBlock
	KindMarkdown        = layout.KindMarkdown
	KindButton          = layout.KindButton
	KindInput           = layout.KindInput
	KindCheckbox        = layout.KindCheckbox
	KindDropdown        = layout.KindDropdown
	KindImage           = layout.KindImage
	KindSprite          = layout.KindSprite
	KindCanvas          = layout.KindCanvas
	KindTable           = layout.KindTable
	KindTableHead       = layout.KindTableHead
	KindTableBody       = layout.KindTableBody
	KindTableFoot       = layout.KindTableFoot
	KindTableRow        = layout.KindTableRow
	KindTableCell       = layout.KindTableCell
	KindTableHeaderCell = layout.KindTableHeaderCell
	KindTabGroup        = layout.KindTabGroup
	KindTabBar          = layout.KindTabBar
	KindTab             = layout.KindTab
	KindTabContent      = layout.KindTabContent
	KindTabPanel        = layout.KindTabPanel
	KindModal           = layout.KindModal
)

// Node is one element of the component tree.
type Node = layout.Node

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	DirectionColumn = layout.DirectionColumn
	DirectionRow    = layout.DirectionRow
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyCenter       = layout.JustifyCenter
	JustifyEnd          = layout.JustifyEnd
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
	AlignStretch = layout.AlignStretch
)

// Position selects flow layout or absolute placement.
type Position = layout.Position

const (
	PositionFlow     = layout.PositionFlow
	PositionAbsolute = layout.PositionAbsolute
)

// Value represents a dimension value (auto, pixels, or percent).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitPx      = layout.UnitPx
	UnitPercent = layout.UnitPercent
)

// Style holds a node's visual and box properties.
type Style = layout.Style

// Layout holds a node's flex and sizing properties.
type Layout = layout.Layout

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Constraints bound a node's size during a layout pass.
type Constraints = layout.Constraints

// Engine computes and caches layout for a component tree.
type Engine = layout.Engine

// Option configures an Engine.
type Option = layout.Option

// Strategy computes measurement and placement for one node kind.
type Strategy = layout.Strategy

// Tracer observes layout decisions as they are made.
type Tracer = layout.Tracer

// TextMeasurer reports the rendered extent of a string.
type TextMeasurer = layout.TextMeasurer

// MediaSizer reports the natural dimensions of an image source.
type MediaSizer = layout.MediaSizer

// Payload types carry kind-specific configuration on a Node.
type (
	TablePayload    = layout.TablePayload
	ColumnSpec      = layout.ColumnSpec
	CellPayload     = layout.CellPayload
	DropdownPayload = layout.DropdownPayload
	TabGroupPayload = layout.TabGroupPayload
	CanvasPayload   = layout.CanvasPayload
	CanvasCommand   = layout.CanvasCommand
	ImagePayload    = layout.ImagePayload
	HeadingPayload  = layout.HeadingPayload
)

// ErrCyclicTree reports a tree that contains itself.
var ErrCyclicTree = layout.ErrCyclicTree

// Auto creates a Value that sizes to content.
func Auto() Value { return layout.Auto() }

// Px creates a Value with an absolute pixel size.
func Px(n float64) Value { return layout.Px(n) }

// Percent creates a Value representing a percentage of available space.
func Percent(p float64) Value { return layout.Percent(p) }

// Tight creates constraints that force an exact size.
func Tight(width, height float64) Constraints { return layout.Tight(width, height) }

// Loose creates constraints bounded above but free below.
func Loose(width, height float64) Constraints { return layout.Loose(width, height) }

// Unbounded creates constraints with no upper bound.
func Unbounded() Constraints { return layout.Unbounded() }

// NewEngine creates a layout engine with the default strategy registry.
func NewEngine(opts ...Option) *Engine { return layout.NewEngine(opts...) }

// NewNode creates a node of the given kind.
func NewNode(kind Kind, style Style) *Node { return layout.NewNode(kind, style) }

// NewRow creates a row container with the given children.
func NewRow(style Style, children ...*Node) *Node { return layout.NewRow(style, children...) }

// NewColumn creates a column container with the given children.
func NewColumn(style Style, children ...*Node) *Node { return layout.NewColumn(style, children...) }

// NewCenter creates a container that centers a single child.
func NewCenter(style Style, child *Node) *Node { return layout.NewCenter(style, child) }

// NewText creates a text leaf.
func NewText(text string, style Style) *Node { return layout.NewText(text, style) }

// NewButton creates a button leaf with the given label.
func NewButton(label string, style Style) *Node { return layout.NewButton(label, style) }

// NewTable creates a table node with the given sections.
func NewTable(style Style, payload *TablePayload, sections ...*Node) *Node {
	return layout.NewTable(style, payload, sections...)
}

// FindAt returns the topmost visible node containing the point, or nil.
func FindAt(root *Node, x, y float64) *Node { return layout.FindAt(root, x, y) }

// Engine options, re-exported for callers that only import the root package.
var (
	WithTextMeasurer = layout.WithTextMeasurer
	WithMediaSizer   = layout.WithMediaSizer
	WithTracer       = layout.WithTracer
	WithStrategy     = layout.WithStrategy
)
