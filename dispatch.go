package willowgui

// mouseIdentifier is the pointer identifier used for mouse input.
const mouseIdentifier = 0

// MouseInput is one mouse sample. Offset coordinates are relative to the
// canvas and are used as page coordinates.
type MouseInput struct {
	OffsetX float64
	OffsetY float64
	ScreenX float64
	ScreenY float64
}

func (m MouseInput) touch() *Touch {
	return &Touch{
		Identifier: mouseIdentifier,
		ClientX:    m.OffsetX,
		ClientY:    m.OffsetY,
		PageX:      m.OffsetX,
		PageY:      m.OffsetY,
		ScreenX:    m.ScreenX,
		ScreenY:    m.ScreenY,
	}
}

// PointerInput is one contact in a device touch batch.
type PointerInput struct {
	Identifier int
	ClientX    float64
	ClientY    float64
	PageX      float64
	PageY      float64
	ScreenX    float64
	ScreenY    float64
}

func (p PointerInput) touch() *Touch {
	return &Touch{
		Identifier: p.Identifier,
		ClientX:    p.ClientX,
		ClientY:    p.ClientY,
		PageX:      p.PageX,
		PageY:      p.PageY,
		ScreenX:    p.ScreenX,
		ScreenY:    p.ScreenY,
	}
}

// TouchBatch is a device touch event: every contact still down, and the
// contacts that changed in this event.
type TouchBatch struct {
	Touches        []PointerInput
	ChangedTouches []PointerInput
}

// HandleMouseDown hit-tests the press and, when it lands on a node, opens the
// mouse session and dispatches TouchStart. It reports whether an event was
// dispatched.
func (s *System) HandleMouseDown(m MouseInput) bool {
	s.mouseDown = true
	t := m.touch()
	s.searchTarget(t)
	if t.Target == nil {
		return false
	}
	s.sessions.open(mouseIdentifier, t.Target, t.PageX, t.PageY)
	touches := []*Touch{t}
	s.dispatch(newEvent(EventTouchStart, t.Target, touches, touches))
	return true
}

// HandleMouseMove dispatches TouchMove to the node bound at press time. Moves
// without a pressed button are ignored.
func (s *System) HandleMouseMove(m MouseInput) bool {
	if !s.mouseDown {
		return false
	}
	sess := s.sessions.get(mouseIdentifier)
	if sess == nil {
		return false
	}
	t := m.touch()
	t.Target = sess.target
	sess.expand(t.PageX, t.PageY)
	touches := []*Touch{t}
	s.dispatch(newEvent(EventTouchMove, t.Target, touches, touches))
	return true
}

// HandleMouseUp dispatches TouchEnd, then Click when the gesture stayed
// within the click threshold, and closes every session.
func (s *System) HandleMouseUp(m MouseInput) bool {
	if !s.mouseDown {
		return false
	}
	s.mouseDown = false
	defer s.sessions.clear()

	sess := s.sessions.get(mouseIdentifier)
	if sess == nil {
		return false
	}
	t := m.touch()
	t.Target = sess.target
	s.release(sess, t, nil, []*Touch{t})
	return true
}

// HandleMouseOut aborts the current gesture.
func (s *System) HandleMouseOut(MouseInput) bool {
	s.cancel()
	return true
}

// HandleTouchStart opens a session for every pointer in the batch that is not
// yet tracked and whose press hit a node, then dispatches one TouchStart to
// the first changed pointer's target.
func (s *System) HandleTouchStart(b TouchBatch) bool {
	touches := make([]*Touch, 0, len(b.Touches))
	for _, p := range b.Touches {
		touches = append(touches, s.pressTouch(p))
	}
	changed := make([]*Touch, 0, len(b.ChangedTouches))
	for _, p := range b.ChangedTouches {
		if t := findTouch(touches, p.Identifier); t != nil {
			changed = append(changed, t)
			continue
		}
		changed = append(changed, s.pressTouch(p))
	}
	target := firstTarget(changed)
	if target == nil {
		return false
	}
	s.dispatch(newEvent(EventTouchStart, target.Target, touches, changed))
	return true
}

// pressTouch binds p to its existing session, or hit-tests it and opens one.
func (s *System) pressTouch(p PointerInput) *Touch {
	t := p.touch()
	if sess := s.sessions.get(p.Identifier); sess != nil {
		t.Target = sess.target
		return t
	}
	s.searchTarget(t)
	if t.Target != nil {
		s.sessions.open(p.Identifier, t.Target, t.PageX, t.PageY)
	}
	return t
}

// HandleTouchMove expands the session box of every tracked pointer and
// dispatches one TouchMove carrying the full batch to the first changed
// pointer's target.
func (s *System) HandleTouchMove(b TouchBatch) bool {
	touches := make([]*Touch, 0, len(b.Touches))
	for _, p := range b.Touches {
		touches = append(touches, s.moveTouch(p))
	}
	changed := make([]*Touch, 0, len(b.ChangedTouches))
	for _, p := range b.ChangedTouches {
		if t := findTouch(touches, p.Identifier); t != nil {
			changed = append(changed, t)
			continue
		}
		changed = append(changed, s.moveTouch(p))
	}
	target := firstTarget(changed)
	if target == nil {
		return false
	}
	s.dispatch(newEvent(EventTouchMove, target.Target, touches, changed))
	return true
}

func (s *System) moveTouch(p PointerInput) *Touch {
	t := p.touch()
	if sess := s.sessions.get(p.Identifier); sess != nil {
		t.Target = sess.target
		sess.expand(t.PageX, t.PageY)
	}
	return t
}

// HandleTouchEnd dispatches TouchEnd for the first released pointer that has
// a session, followed by Click when that pointer stayed within the click
// threshold. Every session is closed afterwards, including those of pointers
// that are still down.
func (s *System) HandleTouchEnd(b TouchBatch) bool {
	defer s.sessions.clear()

	touches := make([]*Touch, 0, len(b.Touches))
	for _, p := range b.Touches {
		t := p.touch()
		t.Target = s.sessions.target(p.Identifier)
		touches = append(touches, t)
	}
	changed := make([]*Touch, 0, len(b.ChangedTouches))
	for _, p := range b.ChangedTouches {
		t := p.touch()
		t.Target = s.sessions.target(p.Identifier)
		changed = append(changed, t)
	}
	released := firstTarget(changed)
	if released == nil {
		return false
	}
	sess := s.sessions.get(released.Identifier)
	s.release(sess, released, touches, changed)
	return true
}

// HandleTouchCancel aborts every gesture.
func (s *System) HandleTouchCancel(TouchBatch) bool {
	s.cancel()
	return true
}

// release dispatches TouchEnd to t's target and, when the session
// qualifies, Click.
func (s *System) release(sess *session, t *Touch, touches, changed []*Touch) {
	s.dispatch(newEvent(EventTouchEnd, t.Target, touches, changed))
	if sess.isClick() {
		s.dispatch(newEvent(EventClick, t.Target, nil, changed))
	}
}

// cancel clears every session and broadcasts TouchCancel to every node of
// every layer.
func (s *System) cancel() {
	s.mouseDown = false
	s.sessions.clear()
	for i := len(s.layers) - 1; i >= 0; i-- {
		s.layers[i].handleTouchCancel()
	}
	Logger().Debug("touch cancel")
	s.emit(&Event{Type: EventTouchCancel})
}

// dispatch bubbles e from its target and forwards it to the event sink.
func (s *System) dispatch(e *Event) {
	if t := e.primary(); t != nil {
		Logger().Debug("dispatch",
			"type", e.Type.String(),
			"target", e.Target.Name,
			"id", t.Identifier,
			"x", t.PageX,
			"y", t.PageY,
		)
	}
	e.Target.bubble(e)
	s.emit(e)
}

func findTouch(touches []*Touch, id int) *Touch {
	for _, t := range touches {
		if t.Identifier == id {
			return t
		}
	}
	return nil
}

// firstTarget returns the first touch bound to a node, or nil.
func firstTarget(touches []*Touch) *Touch {
	for _, t := range touches {
		if t.Target != nil {
			return t
		}
	}
	return nil
}
