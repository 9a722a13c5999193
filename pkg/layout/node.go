package layout

// Kind identifies the component type of a node. The set is closed;
// strategy dispatch is a pure lookup on it.
type Kind uint8

const (
	KindContainer Kind = iota
	KindRow
	KindColumn
	KindCenter
	KindSpacer
	KindText
	KindHeading
	KindLink
	KindCodeBlock
	KindMarkdown
	KindButton
	KindInput
	KindCheckbox
	KindDropdown
	KindImage
	KindSprite
	KindCanvas
	KindTable
	KindTableHead
	KindTableBody
	KindTableFoot
	KindTableRow
	KindTableCell
	KindTableHeaderCell
	KindTabGroup
	KindTabBar
	KindTab
	KindTabContent
	KindTabPanel
	KindModal
)

var kindNames = map[Kind]string{
	KindContainer:       "container",
	KindRow:             "row",
	KindColumn:          "column",
	KindCenter:          "center",
	KindSpacer:          "spacer",
	KindText:            "text",
	KindHeading:         "heading",
	KindLink:            "link",
	KindCodeBlock:       "codeblock",
	KindMarkdown:        "markdown",
	KindButton:          "button",
	KindInput:           "input",
	KindCheckbox:        "checkbox",
	KindDropdown:        "dropdown",
	KindImage:           "image",
	KindSprite:          "sprite",
	KindCanvas:          "canvas",
	KindTable:           "table",
	KindTableHead:       "thead",
	KindTableBody:       "tbody",
	KindTableFoot:       "tfoot",
	KindTableRow:        "tr",
	KindTableCell:       "td",
	KindTableHeaderCell: "th",
	KindTabGroup:        "tabgroup",
	KindTabBar:          "tabbar",
	KindTab:             "tab",
	KindTabContent:      "tabcontent",
	KindTabPanel:        "tabpanel",
	KindModal:           "modal",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Node represents an element in the component tree.
type Node struct {
	// Configuration (user-set)
	Kind     Kind
	Style    Style
	Layout   *Layout // nil means defaults
	Text     string
	Payload  Payload
	Children []*Node

	// Internal state
	state  *State // lazily allocated on first measurement
	parent *Node  // back-pointer for dirty propagation
	dirty  bool   // needs recalculation
}

// NewNode creates a new node of the given kind with the given style.
func NewNode(kind Kind, style Style) *Node {
	return &Node{
		Kind:  kind,
		Style: style,
		dirty: true, // new nodes need layout
	}
}

// NewRow creates a Row container.
func NewRow(style Style, children ...*Node) *Node {
	n := NewNode(KindRow, style)
	n.AddChild(children...)
	return n
}

// NewColumn creates a Column container.
func NewColumn(style Style, children ...*Node) *Node {
	n := NewNode(KindColumn, style)
	n.AddChild(children...)
	return n
}

// NewCenter creates a Center container wrapping a single child.
func NewCenter(style Style, child *Node) *Node {
	n := NewNode(KindCenter, style)
	if child != nil {
		n.AddChild(child)
	}
	return n
}

// NewText creates a text leaf.
func NewText(text string, style Style) *Node {
	n := NewNode(KindText, style)
	n.Text = text
	return n
}

// NewButton creates a button leaf with a label.
func NewButton(label string, style Style) *Node {
	n := NewNode(KindButton, style)
	n.Text = label
	return n
}

// NewTable creates a table root with the given payload and section children.
func NewTable(style Style, payload *TablePayload, sections ...*Node) *Node {
	n := NewNode(KindTable, style)
	n.Payload = payload
	n.AddChild(sections...)
	return n
}

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// RemoveChild removes a child by pointer and marks dirty.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

// SetStyle replaces the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.Style = style
	n.MarkDirty()
}

// SetLayout replaces the layout record and marks the node dirty.
func (n *Node) SetLayout(l *Layout) {
	n.Layout = l
	n.MarkDirty()
}

// SetText replaces the text content and marks the node dirty.
// Any mutation path (builder, bindings, deserializer) must route text
// changes through here or computed rects go silently stale.
func (n *Node) SetText(text string) {
	n.Text = text
	n.MarkDirty()
}

// MarkDirty marks this node and all ancestors as needing recalculation.
// Their cached rects turn invalid and stay unreadable until the next
// pass recomputes them.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
		if node.state != nil {
			node.state.valid = false
		}
	}
	if n.state != nil {
		n.state.valid = false
	}
}

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Rect returns the viewport-absolute computed rect and whether it is
// valid. Consumers must not use the rect when ok is false.
func (n *Node) Rect() (Rect, bool) {
	if n.state == nil || !n.state.valid {
		return Rect{}, false
	}
	return n.state.rect, true
}

// Size returns the computed size and whether it is valid.
func (n *Node) Size() (Size, bool) {
	if n.state == nil || !n.state.valid {
		return Size{}, false
	}
	return n.state.size, true
}

// invalidateTree clears validity for the whole subtree. Used when the
// root viewport constraint changes, which can move every percent and
// flex dimension below it.
func (n *Node) invalidateTree() {
	n.dirty = true
	if n.state != nil {
		n.state.valid = false
	}
	for _, child := range n.Children {
		child.invalidateTree()
	}
}

// ensureState lazily allocates the layout-state cache.
func (n *Node) ensureState() *State {
	if n.state == nil {
		n.state = &State{}
	}
	return n.state
}
