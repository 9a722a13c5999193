// Package binding connects reactive expressions to tree nodes. A
// binding compiles once, evaluates against an environment map, and
// pushes the result into its node's text through SetText, which marks
// the node dirty so the next layout pass picks the change up. That
// dirty call is the contract: mutating a node without it leaves
// computed rects silently stale.
package binding

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/vellum-ui/vellum/pkg/layout"
)

// Binding ties one compiled expression to one node's text content.
type Binding struct {
	node    *layout.Node
	source  string
	program *vm.Program
	last    string
	evaled  bool
}

// Bind compiles source and attaches it to the node. The expression must
// evaluate to a value representable as text.
func Bind(node *layout.Node, source string) (*Binding, error) {
	if node == nil {
		return nil, fmt.Errorf("binding: nil node")
	}
	program, err := expr.Compile(source, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("binding: compile %q: %w", source, err)
	}
	return &Binding{node: node, source: source, program: program}, nil
}

// Source returns the original expression text.
func (b *Binding) Source() string {
	return b.source
}

// Apply evaluates the expression against env and updates the node's
// text. The node is marked dirty only when the value actually changed,
// preserving invalidation locality for untouched bindings.
func (b *Binding) Apply(env map[string]any) error {
	out, err := expr.Run(b.program, env)
	if err != nil {
		return fmt.Errorf("binding: eval %q: %w", b.source, err)
	}

	text := fmt.Sprint(out)
	if b.evaled && text == b.last {
		return nil
	}
	b.last = text
	b.evaled = true
	b.node.SetText(text)
	return nil
}

// Set is an ordered collection of bindings applied together, typically
// once per frame before layout.
type Set struct {
	bindings []*Binding
}

// Add compiles and registers a binding.
func (s *Set) Add(node *layout.Node, source string) (*Binding, error) {
	b, err := Bind(node, source)
	if err != nil {
		return nil, err
	}
	s.bindings = append(s.bindings, b)
	return b, nil
}

// Apply evaluates every binding against env. Evaluation continues past
// failures; the first error is returned after the sweep so one bad
// expression can't stall the rest of the tree.
func (s *Set) Apply(env map[string]any) error {
	var first error
	for _, b := range s.bindings {
		if err := b.Apply(env); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Len returns the number of registered bindings.
func (s *Set) Len() int {
	return len(s.bindings)
}
