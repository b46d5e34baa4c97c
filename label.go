package willowgui

// clickStep is how far a pressed Button shifts right and down, in page units.
const clickStep = 2

type labelWidget struct {
	baseWidget
}

func (labelWidget) checkUpdate(prev, next *Props, payload *UpdatePayload) {
	if prev.Text != next.Text ||
		prev.TextAlign != next.TextAlign ||
		prev.TextBaseline != next.TextBaseline ||
		prev.fontColor() != next.fontColor() ||
		prev.fontSize() != next.fontSize() ||
		prev.Font != next.Font ||
		prev.Border != next.Border ||
		prev.BorderColor != next.BorderColor {
		payload.Others = true
	}
}

func (labelWidget) appearance(n *Node) Appearance {
	return n.labelAppearance()
}

func (n *Node) labelAppearance() Appearance {
	a := n.baseAppearance()
	p := &n.props
	a.Text = p.Text
	a.TextAlign = p.TextAlign
	a.TextBaseline = p.TextBaseline
	a.FontColor = p.fontColor()
	a.FontSize = p.fontSize() * n.screenRatio()
	a.Font = p.Font
	a.Border = p.Border
	a.BorderColor = p.BorderColor
	return a
}

// buttonWidget is a label drawn offset by clickStep while a touch that
// started on it is down.
type buttonWidget struct {
	labelWidget
	pressed bool
}

func (w *buttonWidget) bubble(n *Node, e *Event) {
	switch e.Type {
	case EventTouchStart:
		w.pressed = true
	case EventTouchEnd:
		w.pressed = false
	}
}

func (w *buttonWidget) cancel(*Node) {
	w.pressed = false
}

func (w *buttonWidget) appearance(n *Node) Appearance {
	a := n.labelAppearance()
	if w.pressed {
		a.Offset = Vec2{clickStep, clickStep}
	}
	return a
}

// Pressed reports whether a Button is currently held down. Always false for
// other kinds.
func (n *Node) Pressed() bool {
	if b, ok := n.w.(*buttonWidget); ok {
		return b.pressed
	}
	return false
}
