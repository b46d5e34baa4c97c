package willowgui

import (
	"slices"
	"testing"
)

// recordingRenderer records draw and clip calls as strings.
type recordingRenderer struct {
	calls       []string
	appearances map[string]Appearance
}

func (r *recordingRenderer) DrawNode(n *Node, a Appearance) {
	r.calls = append(r.calls, n.Name)
	if r.appearances == nil {
		r.appearances = make(map[string]Appearance)
	}
	r.appearances[n.Name] = a
}

func (r *recordingRenderer) PushClip(Rect) { r.calls = append(r.calls, "push") }
func (r *recordingRenderer) PopClip()      { r.calls = append(r.calls, "pop") }

func TestRender_Order(t *testing.T) {
	s, l := newTestSystem(t, 200, 100)
	root := box("root", 0, 0, 200, 100)
	clip, err := NewClip("clip", Props{Shape: Vec2{100, 100}})
	if err != nil {
		t.Fatal(err)
	}
	clip.AddChild(box("inner1", 0, 0, 10, 10))
	clip.AddChild(box("inner2", 20, 0, 10, 10))
	root.AddChild(clip)
	root.AddChild(box("after", 150, 0, 10, 10))
	hidden := box("hidden", 0, 0, 10, 10)
	root.AddChild(hidden)
	hp := hidden.Props()
	hp.Hidden = true
	hidden.SetProps(hp)
	root.AddChild(box("offscreen", 300, 0, 10, 10))
	l.AddRoot(root)

	var r recordingRenderer
	s.Render(&r)
	want := []string{"root", "clip", "push", "inner1", "inner2", "pop", "after"}
	if !slices.Equal(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestRender_LayersAscending(t *testing.T) {
	s := NewSystem(Options{Width: 100, Height: 100})
	hud, _ := s.CreateLayer("hud", LayerOptions{Priority: 5})
	world, _ := s.CreateLayer("world", LayerOptions{Priority: -5})
	hud.AddRoot(box("hudroot", 0, 0, 10, 10))
	world.AddRoot(box("worldroot", 0, 0, 10, 10))
	world.AddRoot(box("worldroot2", 0, 0, 10, 10))

	var r recordingRenderer
	s.Render(&r)
	if want := []string{"worldroot", "worldroot2", "hudroot"}; !slices.Equal(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}

func TestRender_PressedButtonAppearance(t *testing.T) {
	s, l := newTestSystem(t, 100, 100)
	btn := NewButton("btn", Props{Shape: Vec2{50, 50}, Text: "go", FontSize: 10})
	l.AddRoot(btn)
	s.HandleMouseDown(mouse(10, 10))

	var r recordingRenderer
	s.Render(&r)
	a := r.appearances["btn"]
	if a.Offset != (Vec2{2, 2}) || a.Text != "go" || a.FontSize != 10 {
		t.Errorf("appearance = %+v", a)
	}
}

func TestRender_ScaledFontSize(t *testing.T) {
	s := NewSystem(Options{Width: 400, Height: 200})
	l, _ := s.CreateLayer("ui", LayerOptions{BaseWidth: 200})
	lbl := NewLabel("lbl", Props{Shape: Vec2{50, 20}, Text: "hi", FontSize: 12})
	l.AddRoot(lbl)

	var r recordingRenderer
	s.Render(&r)
	assertNear(t, "FontSize", r.appearances["lbl"].FontSize, 24)
}

func TestEbitenRenderer_PageGeoM(t *testing.T) {
	_, l := newTestSystem(t, 200, 100)
	root := box("root", 0, 0, 200, 100)
	child := box("child", 10, 10, 50, 50)
	root.AddChild(child)
	l.AddRoot(root)

	r := NewEbitenRenderer(2)
	tests := []struct {
		name         string
		offset       Vec2
		x, y         float64
		wantX, wantY float64
	}{
		{"origin", Vec2{}, 0, 0, 20, 20},
		{"far corner", Vec2{}, 50, 50, 120, 120},
		{"pressed offset", Vec2{2, 2}, 0, 0, 24, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := r.pageGeoM(child, tt.offset)
			x, y := g.Apply(tt.x, tt.y)
			assertNear(t, "x", x, tt.wantX)
			assertNear(t, "y", y, tt.wantY)
		})
	}
}

func TestEbitenRenderer_DefaultPixelRatio(t *testing.T) {
	if r := NewEbitenRenderer(0); r.pixelRatio != 1 {
		t.Errorf("pixelRatio = %v, want 1", r.pixelRatio)
	}
}

func TestEbitenRenderer_PopEmptyClip(t *testing.T) {
	r := NewEbitenRenderer(1)
	r.PopClip()
	if len(r.clips) != 0 {
		t.Errorf("clips = %d, want 0", len(r.clips))
	}
}
