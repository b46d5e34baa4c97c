package willowgui

// searchTarget claims t for the deepest, last-drawn visible node under the
// touch point. Children are tried topmost first; a node claims the touch only
// if none of its descendants did. Hidden or occluded nodes prune their whole
// subtree.
func (n *Node) searchTarget(t *Touch) {
	if n.props.Hidden || !n.visible || !n.transformValid {
		return
	}
	if !n.bounds.Contains(t.PageX, t.PageY) {
		return
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		n.children[i].searchTarget(t)
	}
	if t.Target == nil {
		t.Target = n
	}
}

// searchTarget tries the layer's roots topmost first.
func (l *Layer) searchTarget(t *Touch) {
	for i := len(l.roots) - 1; i >= 0 && t.Target == nil; i-- {
		l.roots[i].searchTarget(t)
	}
}

// searchTarget tries layers from the highest priority down.
func (s *System) searchTarget(t *Touch) {
	for i := len(s.layers) - 1; i >= 0 && t.Target == nil; i-- {
		s.layers[i].searchTarget(t)
	}
}

// HitTest returns the node a press at page point (x, y) would target, or nil.
func (s *System) HitTest(x, y float64) *Node {
	t := &Touch{PageX: x, PageY: y}
	s.searchTarget(t)
	return t.Target
}
