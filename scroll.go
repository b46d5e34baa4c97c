package willowgui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollWidget is a clip whose children move together when dragged. head is
// the top-left of the children's combined extent; dragging keeps it within
// the padded inner rectangle whenever the content is larger than it.
type scrollWidget struct {
	clipWidget

	measured   bool
	positioned bool
	size       Vec2 // content extent, page units
	head       Vec2 // content top-left, page units
	prev       Vec2
	anim       *scrollAnim
}

// scrollAnim holds active ScrollTo tweens for the content head.
type scrollAnim struct {
	n         *Node
	w         *scrollWidget
	tweenX    *gween.Tween
	tweenY    *gween.Tween
	doneX     bool
	doneY     bool
	cancelled bool
}

func (w *scrollWidget) checkUpdate(prev, next *Props, payload *UpdatePayload) {
	w.clipWidget.checkUpdate(prev, next, payload)
	if prev.LockScrollX != next.LockScrollX ||
		prev.LockScrollY != next.LockScrollY ||
		prev.InitialPos != next.InitialPos {
		payload.Others = true
	}
}

func (w *scrollWidget) applyUpdate(n *Node, prev *Props, payload UpdatePayload) {
	w.clipWidget.applyUpdate(n, prev, payload)
	w.measured = false
}

func (w *scrollWidget) transformed(n *Node) {
	w.clipWidget.transformed(n)
	w.measured = false
}

func (w *scrollWidget) childrenChanged(*Node) {
	w.measured = false
}

func (w *scrollWidget) prepare(n *Node) {
	w.ensureMeasured(n)
}

func (w *scrollWidget) ensureMeasured(n *Node) {
	if !w.measured && n.transformValid {
		w.measure(n)
	}
}

// measure recomputes the content extent from the children's bounds. The
// first measurement also applies InitialPos.
func (w *scrollWidget) measure(n *Node) {
	w.measured = true
	if len(n.children) == 0 {
		w.size = Vec2{}
		w.head = Vec2{w.inner.X, w.inner.Y}
		return
	}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, c := range n.children {
		b := &c.bounds
		x0 = min(x0, b.MinX)
		y0 = min(y0, b.MinY)
		x1 = max(x1, b.MaxX)
		y1 = max(y1, b.MaxY)
	}
	w.size = Vec2{x1 - x0, y1 - y0}
	w.head = Vec2{x0, y0}
	Logger().Debug("scroll measured", "node", n.Name, "w", w.size.X, "h", w.size.Y)

	if w.positioned {
		return
	}
	w.positioned = true
	pos := n.props.InitialPos
	if pos == (Vec2{}) {
		return
	}
	r := n.screenRatio()
	target := Vec2{
		X: w.clampX(w.head.X - pos.X*r),
		Y: w.clampY(w.head.Y - pos.Y*r),
	}
	w.moveHead(n, target)
}

// minHead returns the lowest head position on each axis: content end flush
// with the inner rectangle's end.
func (w *scrollWidget) minHead() Vec2 {
	return Vec2{
		X: w.inner.X + w.inner.Width - w.size.X,
		Y: w.inner.Y + w.inner.Height - w.size.Y,
	}
}

func (w *scrollWidget) clampX(x float64) float64 {
	if w.size.X <= w.inner.Width {
		return w.head.X
	}
	return math.Max(w.minHead().X, math.Min(w.inner.X, x))
}

func (w *scrollWidget) clampY(y float64) float64 {
	if w.size.Y <= w.inner.Height {
		return w.head.Y
	}
	return math.Max(w.minHead().Y, math.Min(w.inner.Y, y))
}

// moveHead shifts every child so the content head lands on target.
func (w *scrollWidget) moveHead(n *Node, target Vec2) {
	dx := target.X - w.head.X
	dy := target.Y - w.head.Y
	if dx == 0 && dy == 0 {
		return
	}
	r := n.screenRatio()
	for _, c := range n.children {
		c.SetOffset(dx/r, dy/r)
	}
	w.head = target
}

func (w *scrollWidget) bubble(n *Node, e *Event) {
	t := e.primary()
	if t == nil {
		return
	}
	switch e.Type {
	case EventTouchStart:
		w.ensureMeasured(n)
		if w.anim != nil {
			w.anim.cancelled = true
			w.anim = nil
		}
		w.prev = Vec2{t.PageX, t.PageY}
	case EventTouchMove:
		w.ensureMeasured(n)
		w.drag(n, t)
	}
}

// drag scrolls along the dominant axis of the pointer movement since the
// last handled move.
func (w *scrollWidget) drag(n *Node, t *Touch) {
	dx := t.PageX - w.prev.X
	dy := t.PageY - w.prev.Y
	p := &n.props
	if math.Abs(dx) > math.Abs(dy) {
		if p.LockScrollX || w.size.X <= w.inner.Width {
			return
		}
		x := w.clampX(w.head.X + dx)
		if x == w.head.X {
			return
		}
		w.moveHead(n, Vec2{x, w.head.Y})
	} else {
		if p.LockScrollY || w.size.Y <= w.inner.Height {
			return
		}
		y := w.clampY(w.head.Y + dy)
		if y == w.head.Y {
			return
		}
		w.moveHead(n, Vec2{w.head.X, y})
	}
	w.prev = Vec2{t.PageX, t.PageY}
}

// ScrollTo animates a Scroll's content so that the authored point (x, y) of
// the content sits at the padded top-left corner, clamped to the scroll
// range. A non-positive duration jumps immediately. Returns false for other
// kinds or before the node is attached.
func (n *Node) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) bool {
	w, ok := n.w.(*scrollWidget)
	if !ok || !n.transformValid {
		return false
	}
	w.ensureMeasured(n)
	r := n.screenRatio()
	target := Vec2{
		X: w.clampX(w.inner.X - x*r),
		Y: w.clampY(w.inner.Y - y*r),
	}
	if w.anim != nil {
		w.anim.cancelled = true
		w.anim = nil
	}
	if duration <= 0 || n.layer == nil {
		w.moveHead(n, target)
		return true
	}
	if easeFn == nil {
		easeFn = ease.Linear
	}
	w.anim = &scrollAnim{
		n:      n,
		w:      w,
		tweenX: gween.New(float32(w.head.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(w.head.Y), float32(target.Y), duration, easeFn),
	}
	n.layer.system.startAnimation(w.anim)
	return true
}

// ScrollPosition returns how far a Scroll's content is scrolled from its
// padded top-left corner, in authored units.
func (n *Node) ScrollPosition() Vec2 {
	w, ok := n.w.(*scrollWidget)
	if !ok {
		return Vec2{}
	}
	w.ensureMeasured(n)
	r := n.screenRatio()
	return Vec2{(w.inner.X - w.head.X) / r, (w.inner.Y - w.head.Y) / r}
}

func (a *scrollAnim) advance(dt float32) bool {
	if a.cancelled || a.n.layer == nil {
		return true
	}
	x, y := a.w.head.X, a.w.head.Y
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		x = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		y = float64(val)
		a.doneY = done
	}
	a.w.moveHead(a.n, Vec2{x, y})
	if a.doneX && a.doneY {
		a.w.anim = nil
		return true
	}
	return false
}
