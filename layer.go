package willowgui

// LayerOptions configures a layer created by System.CreateLayer.
type LayerOptions struct {
	// Priority orders layers: higher priorities draw later and are
	// hit-tested first. Layers with equal priority keep creation order.
	Priority int
	// BaseWidth is the authored design width. Authored positions and shapes
	// are multiplied by viewport width / BaseWidth. Zero disables scaling.
	BaseWidth float64
}

// Layer is an ordered set of root nodes sharing a screen ratio.
type Layer struct {
	name        string
	priority    int
	baseWidth   float64
	screenRatio float64
	system      *System
	roots       []*Node
}

func newLayer(s *System, name string, opts LayerOptions) *Layer {
	l := &Layer{
		name:      name,
		priority:  opts.Priority,
		baseWidth: opts.BaseWidth,
		system:    s,
	}
	l.updateScreenRatio()
	return l
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Priority returns the layer priority.
func (l *Layer) Priority() int { return l.priority }

// ScreenRatio returns viewport width / base width, or 1 without a base width.
func (l *Layer) ScreenRatio() float64 { return l.screenRatio }

// System returns the owning system.
func (l *Layer) System() *System { return l.system }

// Roots returns the root list in draw order. The returned slice MUST NOT be mutated.
func (l *Layer) Roots() []*Node { return l.roots }

// CreateElement builds a node by kind name ("Container", "Label", ...).
// The node is not attached; pass it to AddRoot or Node.AddChild.
func (l *Layer) CreateElement(kind, name string, props Props) (*Node, error) {
	k, ok := ParseKind(kind)
	if !ok {
		return nil, configError(kind, ErrUnknownKind)
	}
	return NewNode(k, name, props)
}

// AddRoot appends root to the layer and computes its subtree transform.
// A node that already has a parent or layer is detached first.
func (l *Layer) AddRoot(root *Node) {
	l.insertRoot(root, len(l.roots))
}

// AddRootBefore inserts root immediately before sibling, or appends it when
// sibling is not a root of this layer.
func (l *Layer) AddRootBefore(root, sibling *Node) {
	index, from := len(l.roots), -1
	for i, r := range l.roots {
		if r == root {
			from = i
		}
		if r == sibling {
			index = i
		}
	}
	if from >= 0 && from < index {
		index--
	}
	l.insertRoot(root, index)
}

func (l *Layer) insertRoot(root *Node, index int) {
	if root == nil {
		panic("willowgui: cannot add nil root")
	}
	if root.parent != nil {
		root.parent.RemoveChild(root)
	} else if root.layer != nil {
		root.layer.RemoveRoot(root)
	}
	if index > len(l.roots) {
		index = len(l.roots)
	}
	l.roots = append(l.roots, nil)
	copy(l.roots[index+1:], l.roots[index:])
	l.roots[index] = root
	setSubtreeLayer(root, l)
	if l.system.debug {
		debugCheckTreeDepth(root)
	}
	root.w.attached(root)
	root.SetWorldTransform()
}

// RemoveRoot detaches root from the layer. No-op if root is not in it.
func (l *Layer) RemoveRoot(root *Node) {
	for i, r := range l.roots {
		if r == root {
			copy(l.roots[i:], l.roots[i+1:])
			l.roots[len(l.roots)-1] = nil
			l.roots = l.roots[:len(l.roots)-1]
			detachSubtree(root)
			return
		}
	}
}

// refresh recomputes the screen ratio and every root's subtree transform.
func (l *Layer) refresh() {
	l.updateScreenRatio()
	for _, r := range l.roots {
		r.SetWorldTransform()
	}
}

func (l *Layer) updateScreenRatio() {
	l.screenRatio = 1
	if l.baseWidth > 0 && l.system.width > 0 {
		l.screenRatio = l.system.width / l.baseWidth
	}
}

func (l *Layer) render(r Renderer) {
	for _, root := range l.roots {
		root.render(r)
	}
}

func (l *Layer) handleTouchCancel() {
	for i := len(l.roots) - 1; i >= 0; i-- {
		l.roots[i].handleTouchCancel()
	}
}
