package willowgui

// syntheticKind identifies what an injected event feeds the dispatcher.
type syntheticKind uint8

const (
	syntheticPress syntheticKind = iota
	syntheticMove
	syntheticRelease
	syntheticCancel
	syntheticTouchStart
	syntheticTouchMove
	syntheticTouchEnd
)

// syntheticEvent represents a single injected pointer event in page
// coordinates. Touch kinds carry an identifier; mouse kinds use 0.
type syntheticEvent struct {
	kind syntheticKind
	id   int
	x, y float64
}

// InjectPress queues a mouse press at the given page coordinates. The event
// is consumed on the next Update.
func (s *System) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticPress, x: x, y: y})
}

// InjectMove queues a mouse move at the given page coordinates with the
// button held down. Use this between InjectPress and InjectRelease to
// simulate a drag.
func (s *System) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectRelease queues a mouse release at the given page coordinates.
func (s *System) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticRelease, x: x, y: y})
}

// InjectCancel queues a gesture cancel, as when the pointer leaves the canvas.
func (s *System) InjectCancel() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticCancel})
}

// InjectTap is a convenience that queues a press followed by a release
// at the same page coordinates. Consumes two frames.
func (s *System) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *System) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// InjectTouchStart queues a touch contact id (1-9) going down at (x, y).
func (s *System) InjectTouchStart(id int, x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticTouchStart, id: id, x: x, y: y})
}

// InjectTouchMove queues touch contact id moving to (x, y).
func (s *System) InjectTouchMove(id int, x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticTouchMove, id: id, x: x, y: y})
}

// InjectTouchEnd queues touch contact id lifting at (x, y).
func (s *System) InjectTouchEnd(id int, x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: syntheticTouchEnd, id: id, x: x, y: y})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the dispatcher. Returns true if an event was consumed (device
// input should be skipped).
func (s *System) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	m := MouseInput{OffsetX: evt.x, OffsetY: evt.y, ScreenX: evt.x * s.pixelRatio, ScreenY: evt.y * s.pixelRatio}
	pi := PointerInput{
		Identifier: evt.id,
		ClientX:    evt.x,
		ClientY:    evt.y,
		PageX:      evt.x,
		PageY:      evt.y,
		ScreenX:    evt.x * s.pixelRatio,
		ScreenY:    evt.y * s.pixelRatio,
	}

	switch evt.kind {
	case syntheticPress:
		s.HandleMouseDown(m)
	case syntheticMove:
		s.HandleMouseMove(m)
	case syntheticRelease:
		s.HandleMouseUp(m)
	case syntheticCancel:
		s.injectedTouches = s.injectedTouches[:0]
		s.HandleTouchCancel(TouchBatch{})
	case syntheticTouchStart:
		s.setInjectedTouch(pi)
		s.HandleTouchStart(TouchBatch{Touches: s.injectedTouches, ChangedTouches: []PointerInput{pi}})
	case syntheticTouchMove:
		s.setInjectedTouch(pi)
		s.HandleTouchMove(TouchBatch{Touches: s.injectedTouches, ChangedTouches: []PointerInput{pi}})
	case syntheticTouchEnd:
		s.removeInjectedTouch(evt.id)
		s.HandleTouchEnd(TouchBatch{Touches: s.injectedTouches, ChangedTouches: []PointerInput{pi}})
	}
	return true
}

// setInjectedTouch records pi as a contact that is down, replacing any
// contact with the same identifier.
func (s *System) setInjectedTouch(pi PointerInput) {
	for i := range s.injectedTouches {
		if s.injectedTouches[i].Identifier == pi.Identifier {
			s.injectedTouches[i] = pi
			return
		}
	}
	s.injectedTouches = append(s.injectedTouches, pi)
}

func (s *System) removeInjectedTouch(id int) {
	for i := range s.injectedTouches {
		if s.injectedTouches[i].Identifier == id {
			s.injectedTouches = append(s.injectedTouches[:i], s.injectedTouches[i+1:]...)
			return
		}
	}
}
