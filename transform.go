package willowgui

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Engine space is centered on the viewport with Y increasing upward. A node's
// own rectangle spans (0, 0) to (w, -h) in its local space, so its top-left
// corner sits at the local origin.

// localTransform computes the node's local affine matrix from its props.
// Returns [a, b, c, d, tx, ty].
//
// Scale and rotation pivot around the rectangle's center, then the result is
// translated by (X, -Y). X, Y, Shape and the scroll offset are authored units
// and are scaled by the layer's screen ratio.
func (n *Node) localTransform() [6]float64 {
	ratio := n.screenRatio()
	p := &n.props
	sx, sy := p.scale()
	w, h := p.Shape.X*ratio, p.Shape.Y*ratio
	x := (p.X + n.offset.X) * ratio
	y := (p.Y + n.offset.Y) * ratio

	sin, cos := math.Sincos(p.Rotation)
	return [6]float64{
		sx * cos,
		sx * sin,
		-sy * sin,
		sy * cos,
		(-sx*w*cos-sy*h*sin+w)/2 + x,
		(-sx*w*sin+sy*h*cos-h)/2 - y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// SetWorldTransform recomputes this node's world matrix, page bounds and
// visibility, then propagates to every descendant. A root is additionally
// shifted so that engine space is centered on the viewport.
func (n *Node) SetWorldTransform() {
	local := n.localTransform()
	vw, vh := n.viewport()
	if n.parent != nil {
		n.world = multiplyAffine(n.parent.world, local)
	} else {
		local[4] -= vw / 2
		local[5] += vh / 2
		n.world = local
	}

	ratio := n.screenRatio()
	n.bounds = computeBounds(n.world, n.props.Shape.X*ratio, n.props.Shape.Y*ratio, vw, vh)
	n.bounds.Rotated = isRotated(n.props.Rotation) || (n.parent != nil && n.parent.bounds.Rotated)
	n.visible = !occluded(n)
	n.transformValid = true
	n.w.transformed(n)

	for _, c := range n.children {
		c.SetWorldTransform()
	}
}

// SetOffset adds (dx, dy) authored units to the node's scroll offset and
// refreshes its subtree. The offset follows the screen ratio on resize.
func (n *Node) SetOffset(dx, dy float64) {
	n.offset.X += dx
	n.offset.Y += dy
	if n.transformValid {
		n.SetWorldTransform()
	}
}

// refreshTransform recomputes the subtree if the node's transform is known.
func (n *Node) refreshTransform() {
	if n.transformValid {
		n.SetWorldTransform()
	}
}

// --- Transform property setters ---

// SetPosition sets the authored X and Y and refreshes the subtree.
func (n *Node) SetPosition(x, y float64) {
	n.props.X = x
	n.props.Y = y
	n.refreshTransform()
}

// SetScale sets the authored ScaleX and ScaleY and refreshes the subtree.
func (n *Node) SetScale(sx, sy float64) {
	n.props.ScaleX = sx
	n.props.ScaleY = sy
	n.refreshTransform()
}

// SetRotation sets the rotation (in radians) and refreshes the subtree.
func (n *Node) SetRotation(r float64) {
	n.props.Rotation = r
	n.refreshTransform()
}

// SetShape sets the authored width and height and refreshes the subtree.
func (n *Node) SetShape(w, h float64) {
	n.props.Shape = Vec2{w, h}
	n.refreshTransform()
}

// --- Coordinate conversion ---

// PageMatrix returns the matrix that maps a point inside the node's
// rectangle, measured from its top-left corner with Y down, to page
// coordinates. Lengths are in page units.
func (n *Node) PageMatrix() [6]float64 {
	vw, vh := n.viewport()
	m := n.world
	return [6]float64{m[0], -m[1], -m[2], m[3], m[4] + vw/2, vh/2 - m[5]}
}

// LocalToPage converts a point inside the node's rectangle to page space.
func (n *Node) LocalToPage(lx, ly float64) (px, py float64) {
	return transformPoint(n.PageMatrix(), lx, ly)
}

// PageToLocal converts a page-space point to the node's rectangle space.
func (n *Node) PageToLocal(px, py float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.PageMatrix()), px, py)
}

// Size returns the node's rectangle size in page units before scaling.
func (n *Node) Size() (w, h float64) {
	ratio := n.screenRatio()
	return n.props.Shape.X * ratio, n.props.Shape.Y * ratio
}

func (n *Node) screenRatio() float64 {
	if n.layer == nil {
		return 1
	}
	return n.layer.screenRatio
}

func (n *Node) viewport() (w, h float64) {
	if n.layer == nil || n.layer.system == nil {
		return 0, 0
	}
	return n.layer.system.width, n.layer.system.height
}
