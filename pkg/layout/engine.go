package layout

import (
	"errors"
	"fmt"

	"github.com/vellum-ui/vellum/pkg/text"
)

// ErrCyclicTree reports that the tree shares or cycles a node. It is
// the only fatal structural error; everything else degrades gracefully.
var ErrCyclicTree = errors.New("layout: cyclic tree")

// TextMeasurer maps text at a font size to a display size. A maxWidth
// above zero requests wrapping. pkg/text provides implementations.
type TextMeasurer interface {
	Measure(text string, fontSize, maxWidth float64) (width, height float64)
}

// MediaSizer reports the natural pixel size of an image-like source.
// pkg/media provides a decoder-backed implementation.
type MediaSizer interface {
	NaturalSize(source string) (width, height float64, ok bool)
}

// Engine runs layout passes over component trees. Construct one with
// NewEngine and share it; it carries no per-tree state besides the last
// viewport, used to invalidate on viewport changes.
type Engine struct {
	strategies map[Kind]Strategy
	fallback   Strategy
	text       TextMeasurer
	media      MediaSizer
	tracer     Tracer

	lastRoot     *Node
	lastViewport Constraints
}

// Option configures an Engine.
type Option func(*Engine)

// WithTextMeasurer replaces the default heuristic text measurer.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(e *Engine) {
		if m != nil {
			e.text = m
		}
	}
}

// WithMediaSizer installs a natural-size provider for image and sprite
// leaves. Without one they measure as zero-size boxes.
func WithMediaSizer(m MediaSizer) Option {
	return func(e *Engine) { e.media = m }
}

// WithTracer installs a sink for per-pass layout decisions.
func WithTracer(t Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

// WithStrategy registers or overrides the strategy for a kind.
func WithStrategy(kind Kind, s Strategy) Option {
	return func(e *Engine) {
		if s != nil {
			e.strategies[kind] = s
		}
	}
}

// NewEngine creates an engine with the built-in strategy registry, the
// heuristic text measurer, and no tracing.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		strategies: defaultStrategies(),
		fallback:   defaultStrategy{},
		text:       text.NewHeuristic(),
		tracer:     NopTracer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultStrategies builds the kind registry. Dispatch is a pure
// lookup; unlisted kinds use the fallback.
func defaultStrategies() map[Kind]Strategy {
	flex := flexStrategy{}
	leaf := leafStrategy{}
	center := centerStrategy{}

	m := map[Kind]Strategy{
		KindContainer:  flex,
		KindRow:        flex,
		KindColumn:     flex,
		KindTabBar:     flex,
		KindTabContent: flex,
		KindTabPanel:   flex,

		KindCenter: center,
		KindModal:  center,

		KindText:      leaf,
		KindHeading:   leaf,
		KindLink:      leaf,
		KindCodeBlock: leaf,
		KindMarkdown:  leaf,
		KindButton:    leaf,
		KindInput:     leaf,
		KindCheckbox:  leaf,
		KindDropdown:  leaf,
		KindImage:     leaf,
		KindSprite:    leaf,
		KindCanvas:    leaf,
		KindSpacer:    leaf,
		KindTab:       leaf,

		KindTable:    tableStrategy{},
		KindTabGroup: tabGroupStrategy{},

		// Table internals normally run under a table root; these
		// registrations cover standalone use.
		KindTableHead:       flex,
		KindTableBody:       flex,
		KindTableFoot:       flex,
		KindTableRow:        flex,
		KindTableCell:       leaf,
		KindTableHeaderCell: leaf,
	}
	return m
}

// strategyFor resolves the strategy for a kind.
func (e *Engine) strategyFor(k Kind) Strategy {
	if s, ok := e.strategies[k]; ok {
		return s
	}
	return e.fallback
}

// Layout runs one synchronous depth-first pass over the tree, then a
// finalize walk converting parent-relative positions to
// viewport-absolute rects. Clean subtrees are skipped. A viewport
// change invalidates the whole tree first, since every percent and
// flex dimension below the root may move.
//
// The only error is ErrCyclicTree from the structural pre-pass;
// per-node problems degrade to defaults and never halt siblings.
func (e *Engine) Layout(root *Node, viewport Constraints) error {
	if root == nil {
		return nil
	}
	if err := detectCycle(root); err != nil {
		return err
	}

	if root == e.lastRoot && viewport != e.lastViewport {
		root.invalidateTree()
	}
	e.lastRoot = root
	e.lastViewport = viewport

	p := &Pass{engine: e}
	p.Layout(root, viewport)
	finalize(root, Point{})
	return nil
}

// detectCycle walks the tree once with a visited set. The layout walk
// itself assumes acyclicity, so this runs before every pass.
func detectCycle(root *Node) error {
	visited := make(map[*Node]struct{})
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if _, seen := visited[n]; seen {
			return fmt.Errorf("%w: %s node reachable twice", ErrCyclicTree, n.Kind)
		}
		visited[n] = struct{}{}
		stack = append(stack, n.Children...)
	}
	return nil
}

// finalize derives viewport-absolute rects from the parent-relative
// positions set during arrange, visiting children in composite order.
// Invalid nodes (hidden or never laid out) end the walk for their
// subtree; their rects must never be read.
func finalize(n *Node, origin Point) {
	st := n.state
	if st == nil || !st.valid {
		return
	}
	x := origin.X + st.pos.X
	y := origin.Y + st.pos.Y
	st.rect = Rect{X: x, Y: y, Width: st.size.Width, Height: st.size.Height}

	for _, child := range compositeOrder(n.Children) {
		finalize(child, Point{X: x, Y: y})
	}
}

// Pass is the explicit per-pass context threaded through strategies.
// There is no hidden global; multiple engines and passes can coexist.
type Pass struct {
	engine *Engine
}

// Layout measures and arranges one node under the given constraints,
// returning its committed size. A clean node measured under identical
// constraints reuses its cache; dirty propagates up, so a clean node
// guarantees a clean subtree.
func (p *Pass) Layout(n *Node, c Constraints) Size {
	if n == nil || n.Style.Hidden {
		return Size{}
	}

	st := n.ensureState()
	if !n.dirty && st.valid && st.constraints == c {
		return st.size
	}

	strat := p.engine.strategyFor(n.Kind)
	size := strat.Measure(p, n, c)
	size = p.clampToRecord(n, size, c)
	size = c.Constrain(size)

	st.size = size
	st.constraints = c
	st.valid = true

	strat.Arrange(p, n)
	n.dirty = false
	return size
}

// Text returns the injected text measurer.
func (p *Pass) Text() TextMeasurer {
	return p.engine.text
}

// Media returns the injected media sizer, or a zero-size stub.
func (p *Pass) Media() MediaSizer {
	if p.engine.media == nil {
		return noMedia{}
	}
	return p.engine.media
}

// Tracer returns the injected trace sink.
func (p *Pass) Tracer() Tracer {
	return p.engine.tracer
}

// resolve is Value.Resolve with unknown-unit degradation: an
// unrecognized ordinal warns once through the tracer and acts as auto.
func (p *Pass) resolve(n *Node, v Value, parent, fallback float64) float64 {
	if !v.valid() {
		p.warnUnit(n, v)
		return fallback
	}
	return v.Resolve(parent, fallback)
}

func (p *Pass) warnUnit(n *Node, v Value) {
	p.engine.tracer.Warnf(n, "unknown dimension unit %d, treating as auto", v.Unit)
}

// clampToRecord applies the node's own min/max bounds to a measured size.
func (p *Pass) clampToRecord(n *Node, size Size, c Constraints) Size {
	lay := layoutOf(n)

	aw := c.availableWidth(size.Width)
	minW := p.resolve(n, lay.MinWidth, aw, 0)
	maxW := size.Width
	if lay.MaxWidth.IsAuto() {
		maxW = max(size.Width, minW)
	} else {
		maxW = p.resolve(n, lay.MaxWidth, aw, size.Width)
	}
	size.Width = clamp(size.Width, minW, maxW)

	ah := c.availableHeight(size.Height)
	minH := p.resolve(n, lay.MinHeight, ah, 0)
	maxH := size.Height
	if lay.MaxHeight.IsAuto() {
		maxH = max(size.Height, minH)
	} else {
		maxH = p.resolve(n, lay.MaxHeight, ah, size.Height)
	}
	size.Height = clamp(size.Height, minH, maxH)

	if size.Width < 0 {
		size.Width = 0
	}
	if size.Height < 0 {
		size.Height = 0
	}
	return size
}

// commit stores a position and size computed by a parent-driving
// strategy (tables drive their sections, rows, and cells directly).
func (p *Pass) commit(n *Node, pos Point, size Size) {
	st := n.ensureState()
	st.pos = pos
	st.size = size
	st.valid = true
	n.dirty = false
}

// noMedia is the zero-size stand-in when no media sizer is injected.
type noMedia struct{}

func (noMedia) NaturalSize(string) (float64, float64, bool) {
	return 0, 0, false
}
