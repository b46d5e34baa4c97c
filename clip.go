package willowgui

// clipWidget scissors its children to its bounds shrunk by Padding. Padding
// is in authored units and scales with the node and the layer.
type clipWidget struct {
	baseWidget
	// inner is the padded content rectangle in page units.
	inner Rect
}

func (clipWidget) validate(n *Node, p *Props) error {
	if isRotated(p.Rotation) {
		return configError(n.Name, ErrClipRotation)
	}
	return nil
}

func (clipWidget) checkUpdate(prev, next *Props, payload *UpdatePayload) {
	if prev.Padding != next.Padding {
		payload.Others = true
	}
}

func (w *clipWidget) applyUpdate(n *Node, prev *Props, _ UpdatePayload) {
	if prev.Padding != n.props.Padding && n.transformValid {
		w.inner = innerRect(n)
	}
}

func (w *clipWidget) transformed(n *Node) {
	w.inner = innerRect(n)
}

// clipRect returns the scissor rectangle in device pixels.
func (w *clipWidget) clipRect(n *Node) (Rect, bool) {
	pr := n.pixelRatio()
	return Rect{
		X:      w.inner.X * pr,
		Y:      w.inner.Y * pr,
		Width:  w.inner.Width * pr,
		Height: w.inner.Height * pr,
	}, true
}

// innerRect returns n's page-space AABB shrunk by its scaled padding.
func innerRect(n *Node) Rect {
	p := &n.props
	sx, sy := p.scale()
	r := n.screenRatio()
	top := p.Padding.Top * sy * r
	right := p.Padding.Right * sx * r
	bottom := p.Padding.Bottom * sy * r
	left := p.Padding.Left * sx * r
	b := &n.bounds
	return Rect{
		X:      b.MinX + left,
		Y:      b.MinY + top,
		Width:  max(0, b.MaxX-b.MinX-left-right),
		Height: max(0, b.MaxY-b.MinY-top-bottom),
	}
}

// ClipRect returns the scissor rectangle of a Clip, Scroll or List clip in
// device pixels. ok is false for kinds that do not clip.
func (n *Node) ClipRect() (r Rect, ok bool) {
	if !n.transformValid {
		return Rect{}, false
	}
	return n.w.clipRect(n)
}

func (n *Node) pixelRatio() float64 {
	if n.layer == nil || n.layer.system == nil {
		return 1
	}
	return n.layer.system.pixelRatio
}
