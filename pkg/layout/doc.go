// Package layout computes geometry for retained component trees.
//
// A tree of Nodes plus a root viewport Constraints goes in; a
// viewport-absolute Rect per node comes out, cached on the node until
// something marks it dirty. The engine runs one synchronous depth-first
// pass: constraints flow top-down, sizes report bottom-up, and every
// container measures all of its children before arranging any of them.
//
// Per-kind behavior lives in strategies dispatched from a closed
// registry: flex rows and columns distribute free space with
// grow/shrink and justify/align, tables size a grid from their cells,
// absolute children bypass flow and composite by z-index, and widget
// leaves size to their text through an injected measurer.
//
// Basic use:
//
//	engine := layout.NewEngine()
//	root := layout.NewColumn(layout.Style{}, children...)
//	if err := engine.Layout(root, layout.Tight(800, 600)); err != nil {
//		// the tree has a structural cycle
//	}
//	rect, ok := root.Children[0].Rect()
package layout
