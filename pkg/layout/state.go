package layout

// State is the per-node layout cache. It is allocated lazily on first
// measurement and owned by the node.
//
// pos is parent-relative (set during arrange); rect is viewport-absolute
// (derived in the finalize walk). Consumers read rect only while valid
// is true; MarkDirty clears validity so a stale rect is never trusted.
type State struct {
	pos  Point // relative to parent's border-box origin
	size Size
	rect Rect

	// constraints the node was last measured under. A clean node measured
	// under identical constraints can reuse its cached size.
	constraints Constraints

	valid bool
}
