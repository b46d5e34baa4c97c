package willowgui

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default background and font color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, shapes, and page coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in page coordinates. The origin is the
// top-left of the viewport, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersect returns the overlap of r and other. The result has zero size
// when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Padding is an inner margin in authored units.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// NodeKind distinguishes widget behavior for a Node.
type NodeKind uint8

const (
	KindContainer   NodeKind = iota // plain rectangle with a background
	KindLabel                       // rectangle with text
	KindButton                      // label with press feedback
	KindCheckbox                    // two-state toggle drawn from two backgrounds
	KindRadioButton                 // member of a radio group keyed by ID
	KindSlider                      // partially filled rectangle
	KindSliderBar                   // track with a draggable thumb
	KindClip                        // scissors its children to its padded bounds
	KindScroll                      // clip with drag scrolling
	kindSliderThumb                 // internal: thumb of a SliderBar
	kindListClip                    // internal: clip owned by a List
)

var kindNames = [...]string{
	KindContainer:   "Container",
	KindLabel:       "Label",
	KindButton:      "Button",
	KindCheckbox:    "Checkbox",
	KindRadioButton: "RadioButton",
	KindSlider:      "Slider",
	KindSliderBar:   "SliderBar",
	KindClip:        "Clip",
	KindScroll:      "Scroll",
	kindSliderThumb: "SliderThumb",
	kindListClip:    "ListClip",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind resolves an element type name as used by CreateElement.
// Internal kinds cannot be created by name.
func ParseKind(name string) (NodeKind, bool) {
	for k := KindContainer; k <= KindScroll; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// Layout is the fill direction of a Slider or SliderBar.
type Layout string

const (
	LayoutRow    Layout = "row"
	LayoutColumn Layout = "column"
)

// TextAlign controls horizontal text alignment within a Label.
type TextAlign uint8

const (
	TextAlignCenter TextAlign = iota // default
	TextAlignLeft
	TextAlignRight
)

// TextBaseline controls vertical text placement within a Label.
type TextBaseline uint8

const (
	TextBaselineMiddle TextBaseline = iota // default
	TextBaselineTop
	TextBaselineBottom
)
