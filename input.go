package willowgui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxPointers bounds tracked pointers: identifier 0 is the mouse, 1-9 are
// touches.
const maxPointers = 10

// inputDevice is the source of raw pointer state polled once per Update.
// Positions are in device pixels.
type inputDevice interface {
	cursorPosition() (x, y float64)
	mouseJustPressed() bool
	mouseJustReleased() bool
	appendTouchIDs(buf []ebiten.TouchID) []ebiten.TouchID
	touchPosition(id ebiten.TouchID) (x, y float64)
}

// ebitenDevice reads the live ebiten input state.
type ebitenDevice struct{}

func (ebitenDevice) cursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (ebitenDevice) mouseJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenDevice) mouseJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (ebitenDevice) appendTouchIDs(buf []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(buf)
}

func (ebitenDevice) touchPosition(id ebiten.TouchID) (float64, float64) {
	x, y := ebiten.TouchPosition(id)
	return float64(x), float64(y)
}

// pointerTracker turns polled device state into mouse and touch batch events.
type pointerTracker struct {
	lastMouse   MouseInput
	mouseInside bool

	touchMap [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	touchLast [maxPointers]PointerInput
	touchIDs  []ebiten.TouchID
}

// pollInput feeds one frame of device state through the dispatcher.
func (s *System) pollInput() {
	s.pollMouse()
	s.pollTouches()
}

func (s *System) pollMouse() {
	x, y := s.device.cursorPosition()
	m := MouseInput{
		OffsetX: x / s.pixelRatio,
		OffsetY: y / s.pixelRatio,
		ScreenX: x,
		ScreenY: y,
	}
	p := &s.pointer
	inside := m.OffsetX >= 0 && m.OffsetY >= 0 && m.OffsetX < s.width && m.OffsetY < s.height

	switch {
	case s.device.mouseJustPressed():
		s.HandleMouseDown(m)
	case s.device.mouseJustReleased():
		s.HandleMouseUp(m)
	case p.mouseInside && !inside:
		s.HandleMouseOut(m)
	case m != p.lastMouse:
		s.HandleMouseMove(m)
	}
	p.lastMouse = m
	p.mouseInside = inside
}

func (s *System) pollTouches() {
	p := &s.pointer
	ids := s.device.appendTouchIDs(p.touchIDs[:0])
	p.touchIDs = ids

	var active [maxPointers]bool
	var current, started, moved, ended []PointerInput
	for _, tid := range ids {
		slot, isNew := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		x, y := s.device.touchPosition(tid)
		pi := PointerInput{
			Identifier: slot,
			ClientX:    x / s.pixelRatio,
			ClientY:    y / s.pixelRatio,
			PageX:      x / s.pixelRatio,
			PageY:      y / s.pixelRatio,
			ScreenX:    x,
			ScreenY:    y,
		}
		current = append(current, pi)
		switch {
		case isNew:
			started = append(started, pi)
		case pi != p.touchLast[slot]:
			moved = append(moved, pi)
		}
		p.touchLast[slot] = pi
	}

	// Release slots whose touch disappeared, at their last position.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !active[i] {
			ended = append(ended, p.touchLast[i])
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}

	if len(moved) > 0 {
		s.HandleTouchMove(TouchBatch{Touches: current, ChangedTouches: moved})
	}
	if len(ended) > 0 {
		s.HandleTouchEnd(TouchBatch{Touches: current, ChangedTouches: ended})
	}
	if len(started) > 0 {
		s.HandleTouchStart(TouchBatch{Touches: current, ChangedTouches: started})
	}
}

// touchSlot maps an ebiten.TouchID to a pointer identifier (1-9).
// Returns the existing slot or allocates a new one, reporting whether it
// was allocated. Returns -1 if full.
func (p *pointerTracker) touchSlot(tid ebiten.TouchID) (int, bool) {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i, true
		}
	}
	return -1, false
}
