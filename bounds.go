package willowgui

import "math"

// Bounds is a node's rectangle in page space: its four transformed corners
// and their axis-aligned extent.
type Bounds struct {
	NW, NE, SE, SW         Vec2
	MinX, MaxX, MinY, MaxY float64
	// Rotated is set when the node or any ancestor has a non-zero rotation,
	// in which case the corners do not form an axis-aligned rectangle.
	Rotated bool
}

// computeBounds maps the local rectangle corners (0,0), (w,0), (w,-h) and
// (0,-h) through world into page space.
func computeBounds(world [6]float64, w, h, vw, vh float64) Bounds {
	toPage := func(x, y float64) Vec2 {
		ex, ey := transformPoint(world, x, y)
		return Vec2{ex + vw/2, vh/2 - ey}
	}
	b := Bounds{
		NW: toPage(0, 0),
		NE: toPage(w, 0),
		SE: toPage(w, -h),
		SW: toPage(0, -h),
	}
	b.MinX = min(b.NW.X, b.NE.X, b.SE.X, b.SW.X)
	b.MaxX = max(b.NW.X, b.NE.X, b.SE.X, b.SW.X)
	b.MinY = min(b.NW.Y, b.NE.Y, b.SE.Y, b.SW.Y)
	b.MaxY = max(b.NW.Y, b.NE.Y, b.SE.Y, b.SW.Y)
	return b
}

// AABB returns the axis-aligned extent as a Rect.
func (b Bounds) AABB() Rect {
	return Rect{X: b.MinX, Y: b.MinY, Width: b.MaxX - b.MinX, Height: b.MaxY - b.MinY}
}

// Contains reports whether the page point lies inside the bounds. For rotated
// bounds the point must also project inside both edges leaving NW. Edges are
// inclusive.
func (b Bounds) Contains(x, y float64) bool {
	if x < b.MinX || x > b.MaxX || y < b.MinY || y > b.MaxY {
		return false
	}
	if !b.Rotated {
		return true
	}

	ex, ey := b.NE.X-b.NW.X, b.NE.Y-b.NW.Y
	sx, sy := b.SW.X-b.NW.X, b.SW.Y-b.NW.Y
	w := math.Hypot(ex, ey)
	h := math.Hypot(sx, sy)
	if w == 0 || h == 0 {
		return false
	}
	dx, dy := x-b.NW.X, y-b.NW.Y
	u := (dx*ex + dy*ey) / w
	v := (dx*sx + dy*sy) / h
	return u >= 0 && u <= w && v >= 0 && v <= h
}

// isRotated reports whether r is not a whole number of turns.
func isRotated(r float64) bool {
	return math.Mod(r, 2*math.Pi) != 0
}

// occluded reports whether n must be skipped for drawing and hit testing.
// A child is occluded when its extent lies entirely outside its parent's; a
// root when it lies entirely outside the viewport. Touching edges count as
// outside.
func occluded(n *Node) bool {
	if n.props.Hidden {
		return true
	}
	b := &n.bounds
	if p := n.parent; p != nil {
		pb := &p.bounds
		return b.MaxX <= pb.MinX || b.MinX >= pb.MaxX ||
			b.MaxY <= pb.MinY || b.MinY >= pb.MaxY
	}
	vw, vh := n.viewport()
	return b.MaxX <= 0 || b.MinX >= vw || b.MaxY <= 0 || b.MinY >= vh
}
