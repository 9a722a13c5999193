package binding

import (
	"testing"

	"github.com/vellum-ui/vellum/pkg/layout"
	"github.com/vellum-ui/vellum/pkg/text"
)

func laidOut(t *testing.T, n *layout.Node) *layout.Engine {
	t.Helper()
	engine := layout.NewEngine(
		layout.WithTextMeasurer(text.Fixed{CharWidth: 10, LineHeight: 20}),
	)
	if err := engine.Layout(n, layout.Tight(400, 300)); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return engine
}

func TestBindUpdatesTextAndDirties(t *testing.T) {
	node := layout.NewText("", layout.Style{})
	root := layout.NewColumn(layout.Style{}, node)
	laidOut(t, root)

	b, err := Bind(node, `"hello " + name`)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	if err := b.Apply(map[string]any{"name": "world"}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if node.Text != "hello world" {
		t.Errorf("Text = %q, want %q", node.Text, "hello world")
	}
	if !node.IsDirty() {
		t.Error("a changed binding must dirty the node")
	}
}

func TestApplySkipsUnchangedValues(t *testing.T) {
	node := layout.NewText("", layout.Style{})
	root := layout.NewColumn(layout.Style{}, node)
	engine := laidOut(t, root)

	b, err := Bind(node, `count * 2`)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	env := map[string]any{"count": 21}
	if err := b.Apply(env); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := engine.Layout(root, layout.Tight(400, 300)); err != nil {
		t.Fatalf("relayout: %v", err)
	}

	// Same value: the node must stay clean so layout can skip it.
	if err := b.Apply(env); err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if node.IsDirty() {
		t.Error("unchanged binding must not dirty the node")
	}

	if err := b.Apply(map[string]any{"count": 4}); err != nil {
		t.Fatalf("Apply new value: %v", err)
	}
	if node.Text != "8" || !node.IsDirty() {
		t.Errorf("Text = %q dirty=%v, want %q and dirty", node.Text, node.IsDirty(), "8")
	}
}

func TestBindCompileError(t *testing.T) {
	node := layout.NewText("", layout.Style{})
	if _, err := Bind(node, `1 +`); err == nil {
		t.Error("expected a compile error")
	}
	if _, err := Bind(nil, `1`); err == nil {
		t.Error("expected an error for a nil node")
	}
}

func TestSetContinuesPastFailures(t *testing.T) {
	a := layout.NewText("", layout.Style{})
	b := layout.NewText("", layout.Style{})
	root := layout.NewColumn(layout.Style{}, a, b)
	laidOut(t, root)

	var set Set
	if _, err := set.Add(a, `missing.field`); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := set.Add(b, `"ok"`); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := set.Apply(map[string]any{})
	if err == nil {
		t.Error("expected the first failure to surface")
	}
	if b.Text != "ok" {
		t.Errorf("later binding skipped: Text = %q, want %q", b.Text, "ok")
	}
	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}
}
