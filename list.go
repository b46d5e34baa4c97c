package willowgui

import "math"

// ListProps configures a List. The embedded Props describe the list's clip
// rectangle: Shape, X, Y, Padding, Background and handlers.
type ListProps struct {
	Props

	ItemWidth  float64
	ItemHeight float64
	// ColumnNum is the number of items per row. Values below 1 mean 1.
	ColumnNum int
	RowSpace  float64
	ItemCount int
	// RenderItem builds item index at the authored clip-local position
	// (x, y). Returning nil skips the item.
	RenderItem func(index int, x, y float64) *Node

	// ScrollBar adds a vertical scroll bar. Without RenderScrollBar a
	// default SliderBar is placed in the right padding, which must be
	// non-zero.
	ScrollBar bool
	// RenderScrollBar builds a custom scroll bar for the initial percent
	// (1 is the top) and list height. Call onScroll with a new percent to
	// move the list.
	RenderScrollBar func(percent, height float64, onScroll func(percent float64)) *Node

	// InitialScroll is how far the list starts scrolled down, in authored
	// units.
	InitialScroll float64
}

// List is a vertically scrolling grid of items: a transparent root holding
// a clip with the items and an optional scroll bar.
type List struct {
	props ListProps
	root  *Node
	clip  *Node
	bar   *Node
	items []*Node

	// head is the authored offset of the first row; 0 at the top, negative
	// when scrolled down.
	head  float64
	prevY float64
}

// listClipWidget is the clip of a List. Vertical drags on it scroll the list.
type listClipWidget struct {
	clipWidget
	list *List
}

func (w *listClipWidget) bubble(n *Node, e *Event) {
	t := e.primary()
	if t == nil {
		return
	}
	switch e.Type {
	case EventTouchStart:
		w.list.prevY = t.PageY
	case EventTouchMove:
		w.list.drag(t)
	}
}

// NewList builds a list. Attach List.Node to a layer or parent to show it.
func NewList(name string, p ListProps) (*List, error) {
	if p.ColumnNum < 1 {
		p.ColumnNum = 1
	}
	if p.ScrollBar && p.RenderScrollBar == nil && p.Padding.Right == 0 {
		return nil, configError(name, ErrMissingPadding)
	}
	l := &List{props: p}

	l.root = NewContainer(name, Props{
		X:           p.X,
		Y:           p.Y,
		Shape:       p.Shape,
		Background:  ColorBackground(Color{}),
		Transparent: true,
		Hidden:      p.Hidden,
	})

	clipProps := p.Props
	clipProps.X, clipProps.Y = 0, 0
	clipProps.Hidden = false
	clip, err := newNode(kindListClip, name+"/clip", clipProps, &listClipWidget{list: l})
	if err != nil {
		return nil, err
	}
	l.clip = clip
	l.root.AddChild(clip)

	l.head = l.clampHead(-p.InitialScroll)
	if p.RenderItem != nil {
		for i := range p.ItemCount {
			x, y := l.itemPosition(i)
			if item := p.RenderItem(i, x, y+l.head); item != nil {
				l.items = append(l.items, item)
				clip.AddChild(item)
			}
		}
	}

	if p.ScrollBar {
		if p.RenderScrollBar != nil {
			l.bar = p.RenderScrollBar(1-l.Percent(), p.Shape.Y, l.scrollFromBar)
		} else {
			l.bar, err = l.defaultScrollBar(name + "/scrollbar")
			if err != nil {
				return nil, err
			}
		}
		if l.bar != nil {
			l.root.AddChild(l.bar)
		}
	}
	return l, nil
}

func (l *List) defaultScrollBar(name string) (*Node, error) {
	p := &l.props
	right := p.Padding.Right
	return NewSliderBar(name, Props{
		Shape:           Vec2{right, p.Shape.Y},
		X:               p.Shape.X - right,
		Layout:          LayoutColumn,
		Percent:         1 - l.Percent(),
		OnChange:        l.scrollFromBar,
		TrackBackground: ColorBackground(Color{0.8, 0.8, 0.8, 1}),
		PieceBackground: ColorBackground(Color{0.8, 0.8, 0.8, 1}),
		ThumbShape:      Vec2{right, p.Shape.Y / 3},
		ThumbBackground: ColorBackground(Color{0.6, 0.6, 0.6, 1}),
	})
}

// Node returns the list's root node.
func (l *List) Node() *Node { return l.root }

// Clip returns the clip holding the items.
func (l *List) Clip() *Node { return l.clip }

// ScrollBar returns the scroll bar node, or nil.
func (l *List) ScrollBar() *Node { return l.bar }

// Items returns the item nodes in index order. The returned slice MUST NOT be mutated.
func (l *List) Items() []*Node { return l.items }

// Head returns the authored offset of the first row: 0 at the top and
// negative when scrolled down.
func (l *List) Head() float64 { return l.head }

// itemPosition returns the authored clip-local position of item index
// before scrolling. Columns are spread evenly across the padded width.
func (l *List) itemPosition(index int) (x, y float64) {
	p := &l.props
	cols := p.ColumnNum
	var colSpace float64
	if cols > 1 {
		colSpace = (p.Shape.X - p.Padding.Left - p.Padding.Right - float64(cols)*p.ItemWidth) / float64(cols-1)
	}
	x = p.Padding.Left + float64(index%cols)*(p.ItemWidth+colSpace)
	y = p.Padding.Top + float64(index/cols)*(p.ItemHeight+p.RowSpace)
	return x, y
}

// totalLength is the authored height of all rows.
func (l *List) totalLength() float64 {
	p := &l.props
	rows := int(math.Ceil(float64(p.ItemCount) / float64(p.ColumnNum)))
	if rows == 0 {
		return 0
	}
	return float64(rows)*p.ItemHeight + float64(rows-1)*p.RowSpace
}

func (l *List) innerHeight() float64 {
	p := &l.props
	return p.Shape.Y - p.Padding.Top - p.Padding.Bottom
}

func (l *List) scrollable() bool {
	return l.totalLength() > l.innerHeight()
}

func (l *List) clampHead(v float64) float64 {
	if !l.scrollable() {
		return 0
	}
	return math.Max(l.innerHeight()-l.totalLength(), math.Min(0, v))
}

// Percent returns how far the list is scrolled: 0 at the top, 1 at the
// bottom. Always 0 when the items fit.
func (l *List) Percent() float64 {
	if !l.scrollable() {
		return 0
	}
	return l.head / (l.innerHeight() - l.totalLength())
}

// SetPercent scrolls the list to percent (0 top, 1 bottom).
func (l *List) SetPercent(percent float64) {
	if !l.scrollable() {
		return
	}
	l.setHead(clamp01(percent) * (l.innerHeight() - l.totalLength()))
}

// scrollFromBar receives scroll bar changes, where 1 is the top.
func (l *List) scrollFromBar(percent float64) {
	l.SetPercent(1 - percent)
}

func (l *List) drag(t *Touch) {
	if !l.scrollable() {
		return
	}
	delta := (t.PageY - l.prevY) / l.root.screenRatio()
	l.setHead(l.head + delta)
	l.prevY = t.PageY
}

// setHead moves every item to the clamped head and keeps a default scroll
// bar in sync without reporting through its OnChange.
func (l *List) setHead(v float64) {
	v = l.clampHead(v)
	d := v - l.head
	if d == 0 {
		return
	}
	l.head = v
	for _, item := range l.items {
		item.SetOffset(0, d)
	}
	if l.bar == nil {
		return
	}
	if bar, ok := l.bar.w.(*sliderBarWidget); ok {
		bar.setPercent(l.bar, 1-l.Percent(), false)
	}
}
