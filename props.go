package willowgui

import "github.com/hajimehoshi/ebiten/v2/text/v2"

const defaultFontSize = 14

// Props is the authored description of a node. A single flat struct is used
// for every widget kind; fields that do not apply to a node's Kind are
// ignored.
type Props struct {
	// ID identifies the node to application code and radio groups.
	ID string

	// Shape is the authored width and height.
	Shape Vec2

	// Transform. A zero ScaleX or ScaleY is treated as 1.
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64

	// Style
	Background  Background
	Transparent bool
	// Hidden is the authored visibility override. A hidden node is neither
	// drawn nor hit.
	Hidden bool

	// Handlers. Each receives the bubbling event; OnTouchCancel is a
	// broadcast and carries no event.
	OnTouchStart  func(*Event)
	OnTouchMove   func(*Event)
	OnTouchEnd    func(*Event)
	OnTouchCancel func()
	OnClick       func(*Event)

	// Label and Button
	Text         string
	TextAlign    TextAlign
	TextBaseline TextBaseline
	FontColor    Color // zero means white
	FontSize     float64
	Font         *text.GoTextFaceSource
	Border       float64
	BorderColor  Color

	// Checkbox
	Checked             bool
	CheckedBackground   Background
	UncheckedBackground Background
	OnCheck             func(checked bool)

	// RadioButton
	Selected             string
	SelectedBackground   Background
	UnselectedBackground Background
	OnSelect             func(id string)

	// Slider and SliderBar
	Layout  Layout
	Percent float64

	// SliderBar
	TrackBackground Background
	PieceBackground Background
	ThumbBackground Background
	ThumbShape      Vec2
	OnChange        func(percent float64)

	// Clip, Scroll
	Padding Padding

	// Scroll
	LockScrollX bool
	LockScrollY bool
	InitialPos  Vec2
}

// UpdatePayload is the result of CheckUpdate: whether a prop change moved
// the node (Transform) and whether it changed its appearance (Others).
type UpdatePayload struct {
	Transform bool
	Others    bool
}

// Changed reports whether any part of the node needs updating.
func (p UpdatePayload) Changed() bool {
	return p.Transform || p.Others
}

func (p *Props) scale() (sx, sy float64) {
	sx, sy = p.ScaleX, p.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

func (p *Props) fontColor() Color {
	if p.FontColor == (Color{}) {
		return ColorWhite
	}
	return p.FontColor
}

func (p *Props) fontSize() float64 {
	if p.FontSize <= 0 {
		return defaultFontSize
	}
	return p.FontSize
}

func (p *Props) layout() Layout {
	if p.Layout == "" {
		return LayoutRow
	}
	return p.Layout
}

// checkBaseUpdate compares the props every kind shares.
func checkBaseUpdate(prev, next *Props) UpdatePayload {
	psx, psy := prev.scale()
	nsx, nsy := next.scale()
	return UpdatePayload{
		Transform: prev.X != next.X ||
			prev.Y != next.Y ||
			psx != nsx ||
			psy != nsy ||
			prev.Rotation != next.Rotation ||
			prev.Shape != next.Shape,
		Others: prev.Hidden != next.Hidden ||
			prev.Transparent != next.Transparent ||
			!prev.Background.Equal(next.Background),
	}
}
