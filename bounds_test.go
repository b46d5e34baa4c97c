package willowgui

import (
	"math"
	"testing"
)

func TestBoundsContains_Axis(t *testing.T) {
	b := computeBounds([6]float64{1, 0, 0, 1, -90, 40}, 50, 50, 200, 100)
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 30, 30, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 60, 60, true},
		{"left of", 9.9, 30, false},
		{"below", 30, 60.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBoundsContains_Rotated(t *testing.T) {
	_, l := newTestSystem(t, 200, 200)
	// A 100x100 square turned 45 degrees about (100, 100) forms a diamond
	// whose half-diagonal is 50*sqrt(2).
	root := NewContainer("diamond", Props{X: 50, Y: 50, Shape: Vec2{100, 100}, Rotation: math.Pi / 4})
	l.AddRoot(root)
	b := root.Bounds()
	half := 50 * math.Sqrt2
	assertNear(t, "MinX", b.MinX, 100-half)
	assertNear(t, "MaxY", b.MaxY, 100+half)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 100, 100, true},
		{"near top vertex", 100, 40, true},
		{"near left vertex", 30, 100, true},
		{"aabb corner", 35, 35, false},
		{"aabb corner opposite", 165, 165, false},
		{"outside aabb", 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBoundsContains_RotatedZeroSize(t *testing.T) {
	b := Bounds{Rotated: true}
	if b.Contains(0, 0) {
		t.Error("zero-size rotated bounds should contain nothing")
	}
}

func TestBoundsAABB(t *testing.T) {
	b := Bounds{MinX: 10, MaxX: 60, MinY: 5, MaxY: 25}
	if got := b.AABB(); got != (Rect{10, 5, 50, 20}) {
		t.Errorf("AABB = %v", got)
	}
}

func TestIsRotated(t *testing.T) {
	tests := []struct {
		r    float64
		want bool
	}{
		{0, false},
		{2 * math.Pi, false},
		{-2 * math.Pi, false},
		{4 * math.Pi, false},
		{math.Pi / 2, true},
		{math.Pi, true},
		{-0.1, true},
	}
	for _, tt := range tests {
		if got := isRotated(tt.r); got != tt.want {
			t.Errorf("isRotated(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

// --- Occlusion ---

func TestOcclusion_ChildAgainstParent(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		visible    bool
	}{
		{"inside", 10, 10, 50, 50, true},
		{"overhanging right", 190, 0, 50, 50, true},
		{"overhanging top", 10, -40, 50, 50, true},
		{"touching right edge", 200, 0, 50, 50, false},
		{"touching left edge", -50, 0, 50, 50, false},
		{"touching top edge", 0, -50, 50, 50, false},
		{"touching bottom edge", 0, 100, 50, 50, false},
		{"far away", 500, 500, 10, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, l := newTestSystem(t, 400, 400)
			root := box("root", 0, 0, 200, 100)
			child := box("child", tt.x, tt.y, tt.w, tt.h)
			root.AddChild(child)
			l.AddRoot(root)
			if child.Visible() != tt.visible {
				t.Errorf("Visible = %v, want %v (bounds %+v)", child.Visible(), tt.visible, child.Bounds())
			}
		})
	}
}

func TestOcclusion_RootAgainstViewport(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		visible bool
	}{
		{"inside", 0, 0, true},
		{"partly left", -199, 0, true},
		{"partly below", 0, 99, true},
		{"right of viewport", 200, 0, false},
		{"left of viewport", -200, 0, false},
		{"above viewport", 0, -100, false},
		{"below viewport", 0, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, l := newTestSystem(t, 200, 100)
			root := box("root", tt.x, tt.y, 200, 100)
			l.AddRoot(root)
			if root.Visible() != tt.visible {
				t.Errorf("Visible = %v, want %v", root.Visible(), tt.visible)
			}
		})
	}
}

func TestOcclusion_ChildIgnoresViewport(t *testing.T) {
	_, l := newTestSystem(t, 100, 100)
	// The root hangs off the viewport; a child inside the root but outside
	// the viewport is still visible.
	root := box("root", 50, 0, 200, 100)
	child := box("child", 100, 0, 50, 50)
	root.AddChild(child)
	l.AddRoot(root)
	if !child.Visible() {
		t.Error("child overlapping its parent should be visible")
	}
}

func TestOcclusion_ZeroSizeParent(t *testing.T) {
	_, l := newTestSystem(t, 100, 100)
	root := box("root", 10, 10, 0, 0)
	child := box("child", 0, 0, 20, 20)
	root.AddChild(child)
	l.AddRoot(root)
	if child.Visible() {
		t.Error("child of a zero-size parent should be occluded")
	}
}

func TestOcclusion_Hidden(t *testing.T) {
	_, l := newTestSystem(t, 100, 100)
	root := NewContainer("root", Props{Shape: Vec2{100, 100}, Hidden: true})
	l.AddRoot(root)
	if root.Visible() {
		t.Error("hidden node should not be visible")
	}

	p := root.Props()
	p.Hidden = false
	if err := root.SetProps(p); err != nil {
		t.Fatal(err)
	}
	if !root.Visible() {
		t.Error("unhidden node should be visible")
	}
}

func TestOcclusion_FollowsMove(t *testing.T) {
	_, l := newTestSystem(t, 200, 100)
	root := box("root", 0, 0, 200, 100)
	child := box("child", 10, 10, 50, 50)
	root.AddChild(child)
	l.AddRoot(root)

	child.SetPosition(300, 10)
	if child.Visible() {
		t.Error("child moved out of its parent should be occluded")
	}
	child.SetPosition(10, 10)
	if !child.Visible() {
		t.Error("child moved back should be visible")
	}
}
