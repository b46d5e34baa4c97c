package willowgui

// nodeIDCounter is a plain counter; willowgui is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a widget instance in the retained scene graph. A single flat struct
// is used for every widget kind; kind-specific behavior lives in w.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy. parent is non-owning; children are owned in draw order.
	parent   *Node
	children []*Node
	layer    *Layer

	props Props

	// Computed by SetWorldTransform.
	world          [6]float64
	bounds         Bounds
	visible        bool
	transformValid bool

	// offset is the accumulated scroll offset in authored units (x right, y down).
	offset Vec2

	w widget
}

// NewNode creates a node of the given kind. It returns a *ConfigError when
// props describe a widget that cannot render.
func NewNode(kind NodeKind, name string, props Props) (*Node, error) {
	if kind > KindScroll {
		return nil, configError(name, ErrUnknownKind)
	}
	return newNode(kind, name, props, newWidget(kind))
}

func newNode(kind NodeKind, name string, props Props, w widget) (*Node, error) {
	n := &Node{
		ID:    nextNodeID(),
		Name:  name,
		Kind:  kind,
		props: props,
		w:     w,
	}
	if err := w.validate(n, &n.props); err != nil {
		return nil, err
	}
	w.init(n)
	return n, nil
}

// mustNode is used by constructors whose kind has no failing validation.
func mustNode(kind NodeKind, name string, props Props) *Node {
	n, err := NewNode(kind, name, props)
	if err != nil {
		panic(err)
	}
	return n
}

// NewContainer creates a plain rectangle.
func NewContainer(name string, props Props) *Node {
	return mustNode(KindContainer, name, props)
}

// NewLabel creates a rectangle that draws Props.Text.
func NewLabel(name string, props Props) *Node {
	return mustNode(KindLabel, name, props)
}

// NewButton creates a label that shifts down-right while pressed.
func NewButton(name string, props Props) *Node {
	return mustNode(KindButton, name, props)
}

// NewCheckbox creates a toggle that reports Props.Checked through OnCheck
// when a touch ends on it.
func NewCheckbox(name string, props Props) *Node {
	return mustNode(KindCheckbox, name, props)
}

// NewRadioButton creates a radio group member. It is drawn selected when
// Props.Selected equals Props.ID.
func NewRadioButton(name string, props Props) *Node {
	return mustNode(KindRadioButton, name, props)
}

// NewSlider creates a rectangle filled to Props.Percent along Props.Layout.
func NewSlider(name string, props Props) (*Node, error) {
	return NewNode(KindSlider, name, props)
}

// NewSliderBar creates a track with a draggable thumb.
func NewSliderBar(name string, props Props) (*Node, error) {
	return NewNode(KindSliderBar, name, props)
}

// NewClip creates a node that scissors its children to its padded bounds.
func NewClip(name string, props Props) (*Node, error) {
	return NewNode(KindClip, name, props)
}

// NewScroll creates a clip whose children can be dragged.
func NewScroll(name string, props Props) (*Node, error) {
	return NewNode(KindScroll, name, props)
}

// --- Accessors ---

// Props returns a copy of the node's current props.
func (n *Node) Props() Props {
	return n.props
}

// Parent returns the parent node, or nil for a root or detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Layer returns the layer the node is attached to, or nil.
func (n *Node) Layer() *Layer {
	return n.layer
}

// Bounds returns the page-space bounds from the last transform propagation.
func (n *Node) Bounds() Bounds {
	return n.bounds
}

// Visible reports whether the node is drawn and hit-testable: it is not
// hidden and not occluded by its parent or the viewport.
func (n *Node) Visible() bool {
	return n.visible && !n.props.Hidden
}

// WorldTransform returns the node's world matrix as [a, b, c, d, tx, ty].
func (n *Node) WorldTransform() [6]float64 {
	return n.world
}

// Offset returns the accumulated scroll offset in authored units.
func (n *Node) Offset() Vec2 {
	return n.offset
}

// --- Tree manipulation ---

// AddChild appends child to this node's children and refreshes its subtree
// transform when this node's transform is known.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.insertChild(child, len(n.children))
}

// AddChildBefore inserts child immediately before sibling. If sibling is not
// a child of this node, child is appended.
func (n *Node) AddChildBefore(child, sibling *Node) {
	index, from := len(n.children), -1
	for i, c := range n.children {
		if c == child {
			from = i
		}
		if c == sibling {
			index = i
		}
	}
	// Removing child from an earlier slot shifts sibling left by one.
	if from >= 0 && from < index {
		index--
	}
	n.insertChild(child, index)
}

func (n *Node) insertChild(child *Node, index int) {
	if child == nil {
		panic("willowgui: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("willowgui: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	} else if child.layer != nil {
		child.layer.RemoveRoot(child)
	}
	// The index may have shifted if child was already one of n's children.
	if index > len(n.children) {
		index = len(n.children)
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	setSubtreeLayer(child, n.layer)
	if n.layer != nil && n.layer.system.debug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	child.w.attached(child)
	if n.transformValid {
		child.SetWorldTransform()
	}
	n.w.childrenChanged(n)
}

// RemoveChild detaches child from this node. The detached subtree keeps no
// layer and must be re-attached before it is drawn or hit again.
// Panics if child's parent is not n.
func (n *Node) RemoveChild(child *Node) {
	if child.parent != n {
		panic("willowgui: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.parent = nil
	detachSubtree(child)
	n.w.childrenChanged(n)
}

// RemoveFromParent detaches this node from its parent or layer.
// No-op if the node is detached.
func (n *Node) RemoveFromParent() {
	switch {
	case n.parent != nil:
		n.parent.RemoveChild(n)
	case n.layer != nil:
		n.layer.RemoveRoot(n)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func setSubtreeLayer(n *Node, l *Layer) {
	n.layer = l
	for _, c := range n.children {
		setSubtreeLayer(c, l)
	}
}

// detachSubtree clears layer membership and invalidates computed geometry.
func detachSubtree(n *Node) {
	n.layer = nil
	n.transformValid = false
	n.visible = false
	for _, c := range n.children {
		detachSubtree(c)
	}
}
