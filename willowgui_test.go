package willowgui

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"right edge", 110, 40, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersect ---

func TestRectIntersect(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name  string
		other Rect
		want  Rect
	}{
		{"overlapping", Rect{50, 50, 100, 100}, Rect{50, 50, 60, 60}},
		{"fully contained", Rect{20, 20, 10, 10}, Rect{20, 20, 10, 10}},
		{"containing", Rect{0, 0, 200, 200}, Rect{10, 10, 100, 100}},
		{"adjacent right", Rect{110, 10, 50, 50}, Rect{110, 10, 0, 0}},
		{"disjoint", Rect{200, 200, 10, 10}, Rect{200, 200, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersect(tt.other); got != tt.want {
				t.Errorf("Intersect(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

// --- NodeKind ---

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want NodeKind
		ok   bool
	}{
		{"Container", KindContainer, true},
		{"Label", KindLabel, true},
		{"Button", KindButton, true},
		{"Checkbox", KindCheckbox, true},
		{"RadioButton", KindRadioButton, true},
		{"Slider", KindSlider, true},
		{"SliderBar", KindSliderBar, true},
		{"Clip", KindClip, true},
		{"Scroll", KindScroll, true},
		{"SliderThumb", 0, false},
		{"ListClip", 0, false},
		{"container", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKind(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNodeKindString(t *testing.T) {
	if got := KindSliderBar.String(); got != "SliderBar" {
		t.Errorf("KindSliderBar.String() = %q", got)
	}
	if got := NodeKind(200).String(); got != "Unknown" {
		t.Errorf("NodeKind(200).String() = %q, want Unknown", got)
	}
}

func TestEventTypeString(t *testing.T) {
	if got := EventClick.String(); got != "click" {
		t.Errorf("EventClick.String() = %q", got)
	}
	if got := EventType(99).String(); got != "unknown" {
		t.Errorf("EventType(99).String() = %q, want unknown", got)
	}
}

// --- Color ---

func TestColorToRGBA_Premultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
}

func TestColorToRGBA_Clamps(t *testing.T) {
	got := Color{R: 2, G: -1, B: 1, A: 1}.toRGBA()
	want := color.RGBA{R: 255, G: 0, B: 255, A: 255}
	if got != want {
		t.Errorf("toRGBA = %v, want %v", got, want)
	}
}

// --- Background ---

func TestBackgroundZeroPaintsWhite(t *testing.T) {
	var b Background
	if !b.IsZero() {
		t.Fatal("zero Background should report IsZero")
	}
	r := b.resolved()
	if r.Kind != BackgroundColor || r.Color != ColorWhite {
		t.Errorf("resolved zero background = %+v, want white", r)
	}
	if !b.Equal(ColorBackground(ColorWhite)) {
		t.Error("zero background should equal explicit white")
	}
}

func TestBackgroundTransparentColorIsNotZero(t *testing.T) {
	b := ColorBackground(Color{})
	if b.IsZero() {
		t.Error("an explicit transparent color is not the unset background")
	}
	if b.Equal(Background{}) {
		t.Error("transparent color should not equal the white default")
	}
}

func TestBackgroundEqual(t *testing.T) {
	img1 := ebiten.NewImage(4, 4)
	img2 := ebiten.NewImage(4, 4)
	red := Color{R: 1, A: 1}
	tests := []struct {
		name string
		a, b Background
		want bool
	}{
		{"same color", ColorBackground(red), ColorBackground(red), true},
		{"different color", ColorBackground(red), ColorBackground(ColorWhite), false},
		{"same texture", TextureBackground(img1), TextureBackground(img1), true},
		{"different texture", TextureBackground(img1), TextureBackground(img2), false},
		{"kind mismatch", TextureBackground(img1), ColorBackground(red), false},
		{"same uv", TextureMatrixBackground(img1, [6]float64{1, 0, 0, 1, 0, 0}), TextureMatrixBackground(img1, [6]float64{1, 0, 0, 1, 0, 0}), true},
		{"different uv", TextureMatrixBackground(img1, [6]float64{1, 0, 0, 1, 0, 0}), TextureMatrixBackground(img1, [6]float64{2, 0, 0, 1, 0, 0}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
