package willowgui

// clickThreshold2 is the squared displacement below which a release counts
// as a click.
const clickThreshold2 = 10 * 10

// session is the gesture state for one pointer identifier: the node bound at
// press time and the bounding box of every position seen since.
type session struct {
	target                 *Node
	minX, maxX, minY, maxY float64
}

func (s *session) expand(x, y float64) {
	s.minX = min(s.minX, x)
	s.maxX = max(s.maxX, x)
	s.minY = min(s.minY, y)
	s.maxY = max(s.maxY, y)
}

// displacement2 is the squared diagonal of the session's bounding box.
func (s *session) displacement2() float64 {
	dx := s.maxX - s.minX
	dy := s.maxY - s.minY
	return dx*dx + dy*dy
}

func (s *session) isClick() bool {
	return s.displacement2() < clickThreshold2
}

// sessionTracker maps pointer identifiers to open sessions.
type sessionTracker struct {
	sessions map[int]*session
}

func (t *sessionTracker) open(id int, target *Node, x, y float64) *session {
	if t.sessions == nil {
		t.sessions = make(map[int]*session)
	}
	s := &session{target: target, minX: x, maxX: x, minY: y, maxY: y}
	t.sessions[id] = s
	return s
}

func (t *sessionTracker) get(id int) *session {
	return t.sessions[id]
}

// target returns the node bound to id, or nil.
func (t *sessionTracker) target(id int) *Node {
	if s := t.sessions[id]; s != nil {
		return s.target
	}
	return nil
}

func (t *sessionTracker) len() int {
	return len(t.sessions)
}

// clear drops every session.
func (t *sessionTracker) clear() {
	clear(t.sessions)
}
