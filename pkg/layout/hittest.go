package layout

// FindAt returns the topmost node whose computed rect contains the
// point (x, y), or nil. Children are probed in reverse composite order
// so absolute children with higher z-index win over lower ones and all
// children win over their parent. Nodes whose rect is invalid are
// skipped; an invalid rect is never read.
func FindAt(root *Node, x, y float64) *Node {
	if root == nil || root.Style.Hidden {
		return nil
	}
	st := root.state
	if st == nil || !st.valid {
		return nil
	}

	order := compositeOrder(root.Children)
	for i := len(order) - 1; i >= 0; i-- {
		if hit := FindAt(order[i], x, y); hit != nil {
			return hit
		}
	}

	if st.rect.Contains(x, y) {
		return root
	}
	return nil
}
