package willowgui

// fullFill is the fill fraction drawn for an unset Percent.
const fullFill = 1.01

func validateLayout(name string, p *Props) error {
	switch p.Layout {
	case "", LayoutRow, LayoutColumn:
		return nil
	}
	return configError(name, ErrInvalidLayout)
}

// sliderWidget fills Percent of its rectangle along Layout: left to right
// for rows, bottom to top for columns. A zero Percent draws a full fill.
type sliderWidget struct {
	baseWidget
}

func (sliderWidget) validate(n *Node, p *Props) error {
	return validateLayout(n.Name, p)
}

func (sliderWidget) checkUpdate(prev, next *Props, payload *UpdatePayload) {
	if prev.Percent != next.Percent || prev.layout() != next.layout() {
		payload.Others = true
	}
}

func (sliderWidget) appearance(n *Node) Appearance {
	a := n.baseAppearance()
	percent := n.props.Percent
	if percent == 0 {
		percent = fullFill
	}
	percent = clamp01(percent)
	if n.props.layout() == LayoutRow {
		a.FillX = percent
	} else {
		a.FillY = percent
	}
	return a
}

// sliderBarWidget owns two internal children: a Slider piece filled up to
// the thumb center and a draggable thumb. The bar's percent is the thumb
// position along the track, in [0, 1]; for columns 1 is the top.
type sliderBarWidget struct {
	baseWidget
	percent   float64
	prevPoint float64
	piece     *Node
	thumb     *Node
}

func (sliderBarWidget) validate(n *Node, p *Props) error {
	return validateLayout(n.Name, p)
}

func (w *sliderBarWidget) init(n *Node) {
	w.percent = clamp01(n.props.Percent)
	w.piece = mustNode(KindSlider, n.Name+"/piece", w.pieceProps(&n.props))
	thumb, err := newNode(kindSliderThumb, n.Name+"/thumb", w.thumbProps(&n.props), &thumbWidget{})
	if err != nil {
		panic(err)
	}
	w.thumb = thumb
	n.AddChild(w.piece)
	n.AddChild(w.thumb)
}

func (sliderBarWidget) checkUpdate(prev, next *Props, payload *UpdatePayload) {
	if prev.Percent != next.Percent ||
		prev.layout() != next.layout() ||
		prev.ThumbShape != next.ThumbShape ||
		!prev.TrackBackground.Equal(next.TrackBackground) ||
		!prev.PieceBackground.Equal(next.PieceBackground) ||
		!prev.ThumbBackground.Equal(next.ThumbBackground) {
		payload.Others = true
	}
}

func (w *sliderBarWidget) applyUpdate(n *Node, prev *Props, _ UpdatePayload) {
	if prev.Percent != n.props.Percent {
		w.percent = clamp01(n.props.Percent)
	}
	w.layoutChildren(n)
}

func (sliderBarWidget) appearance(n *Node) Appearance {
	a := n.baseAppearance()
	if !n.props.TrackBackground.IsZero() {
		a.Background = n.props.TrackBackground
	}
	return a
}

// sliderPercent is the piece fill that reaches the thumb center.
func (w *sliderBarWidget) sliderPercent(p *Props) float64 {
	if p.layout() == LayoutRow {
		if p.Shape.X <= 0 {
			return 1
		}
		return (w.percent*(p.Shape.X-p.ThumbShape.X) + p.ThumbShape.X/2) / p.Shape.X
	}
	if p.Shape.Y <= 0 {
		return 1
	}
	return (w.percent*(p.Shape.Y-p.ThumbShape.Y) + p.ThumbShape.Y/2) / p.Shape.Y
}

func (w *sliderBarWidget) pieceProps(p *Props) Props {
	return Props{
		ID:          "SliderPiece",
		Shape:       p.Shape,
		Layout:      p.layout(),
		Percent:     w.sliderPercent(p),
		Background:  p.PieceBackground,
		Transparent: p.Transparent,
	}
}

func (w *sliderBarWidget) thumbProps(p *Props) Props {
	tp := Props{
		ID:          "SliderThumb",
		Shape:       p.ThumbShape,
		Background:  p.ThumbBackground,
		Transparent: p.Transparent,
	}
	if p.layout() == LayoutRow {
		tp.X = w.percent * (p.Shape.X - p.ThumbShape.X)
		tp.Y = p.Shape.Y/2 - p.ThumbShape.Y/2
	} else {
		tp.X = p.Shape.X/2 - p.ThumbShape.X/2
		tp.Y = (1 - w.percent) * (p.Shape.Y - p.ThumbShape.Y)
	}
	return tp
}

func (w *sliderBarWidget) layoutChildren(n *Node) {
	// Internal props always validate.
	_ = w.piece.SetProps(w.pieceProps(&n.props))
	_ = w.thumb.SetProps(w.thumbProps(&n.props))
}

// setPercent moves the thumb to v, clamped to [0, 1], and optionally reports
// the new value through OnChange.
func (w *sliderBarWidget) setPercent(n *Node, v float64, notify bool) {
	w.percent = clamp01(v)
	w.layoutChildren(n)
	if notify && n.props.OnChange != nil {
		n.props.OnChange(w.percent)
	}
}

func (w *sliderBarWidget) dragStart(n *Node, e *Event) {
	t := e.primary()
	if t == nil {
		return
	}
	if n.props.layout() == LayoutRow {
		w.prevPoint = t.PageX
	} else {
		w.prevPoint = t.PageY
	}
}

func (w *sliderBarWidget) dragMove(n *Node, e *Event) {
	t := e.primary()
	if t == nil {
		return
	}
	p := &n.props
	point := t.PageY
	track, thumb := p.Shape.Y, p.ThumbShape.Y
	if p.layout() == LayoutRow {
		point = t.PageX
		track, thumb = p.Shape.X, p.ThumbShape.X
	}
	delta := (point - w.prevPoint) / n.screenRatio()
	if p.layout() == LayoutColumn {
		// Page Y grows downward; column percent grows upward.
		delta = -delta
	}
	w.prevPoint = point

	length := track - thumb
	pos := w.percent*length + thumb/2 + delta
	var next float64
	switch {
	case pos <= thumb/2:
		next = 0
	case pos >= thumb/2+length:
		next = 1
	default:
		next = (pos - thumb/2) / length
	}
	w.setPercent(n, next, true)
}

// thumbWidget forwards drags on a SliderBar's thumb to the bar.
type thumbWidget struct {
	baseWidget
}

func (thumbWidget) bubble(n *Node, e *Event) {
	if n.parent == nil {
		return
	}
	bar, ok := n.parent.w.(*sliderBarWidget)
	if !ok {
		return
	}
	switch e.Type {
	case EventTouchStart:
		bar.dragStart(n.parent, e)
	case EventTouchMove:
		bar.dragMove(n.parent, e)
	}
}

// Percent returns a SliderBar's current thumb position, or Props.Percent for
// other kinds.
func (n *Node) Percent() float64 {
	if bar, ok := n.w.(*sliderBarWidget); ok {
		return bar.percent
	}
	return n.props.Percent
}
