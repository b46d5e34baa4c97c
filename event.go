package willowgui

// EventType identifies the kind of a dispatched Event.
type EventType uint8

const (
	EventTouchStart  EventType = iota // a pointer went down on the target
	EventTouchMove                    // a tracked pointer moved
	EventTouchEnd                     // a tracked pointer was released
	EventTouchCancel                  // the gesture was aborted; broadcast to every node
	EventClick                        // a release that stayed within the click threshold
)

var eventTypeNames = [...]string{
	EventTouchStart:  "touchstart",
	EventTouchMove:   "touchmove",
	EventTouchEnd:    "touchend",
	EventTouchCancel: "touchcancel",
	EventClick:       "click",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Touch is one pointer contact. Identifier 0 is the mouse. Target is the
// node the pointer's session is bound to, or nil when the press hit nothing.
type Touch struct {
	Identifier int
	ClientX    float64
	ClientY    float64
	PageX      float64
	PageY      float64
	ScreenX    float64
	ScreenY    float64
	Target     *Node
}

// Event is delivered to the target node and then to each ancestor in turn
// until Bubbles is cleared.
type Event struct {
	Type    EventType
	Bubbles bool

	// Touches holds every pointer currently down. ChangedTouches holds the
	// pointers that caused this event. TargetTouches is the subset of
	// Touches bound to Target.
	Touches        []*Touch
	ChangedTouches []*Touch
	TargetTouches  []*Touch

	// Target is the node the event was dispatched to. CurrentTarget is the
	// node whose handler is running.
	Target        *Node
	CurrentTarget *Node
}

func newEvent(typ EventType, target *Node, touches, changed []*Touch) *Event {
	return &Event{
		Type:           typ,
		Bubbles:        true,
		Touches:        touches,
		ChangedTouches: changed,
		TargetTouches:  touchesFor(touches, target),
		Target:         target,
	}
}

// StopPropagation prevents the event from reaching further ancestors. The
// handler and widget behavior of the current node still complete.
func (e *Event) StopPropagation() {
	e.Bubbles = false
}

// primary returns the first changed touch bound to Target, falling back to
// the first changed touch. Returns nil for events without touches.
func (e *Event) primary() *Touch {
	for _, t := range e.ChangedTouches {
		if t.Target == e.Target {
			return t
		}
	}
	if len(e.ChangedTouches) == 0 {
		return nil
	}
	return e.ChangedTouches[0]
}

func touchesFor(touches []*Touch, target *Node) []*Touch {
	var out []*Touch
	for _, t := range touches {
		if t.Target == target && target != nil {
			out = append(out, t)
		}
	}
	return out
}

func (n *Node) handlerFor(typ EventType) func(*Event) {
	switch typ {
	case EventTouchStart:
		return n.props.OnTouchStart
	case EventTouchMove:
		return n.props.OnTouchMove
	case EventTouchEnd:
		return n.props.OnTouchEnd
	case EventClick:
		return n.props.OnClick
	}
	return nil
}

// bubble delivers e to n and then to each ancestor. At every node the user
// handler runs first, then the widget's own reaction.
func (n *Node) bubble(e *Event) {
	for cur := n; cur != nil; cur = cur.parent {
		e.CurrentTarget = cur
		if h := cur.handlerFor(e.Type); h != nil {
			h(e)
		}
		cur.w.bubble(cur, e)
		if !e.Bubbles {
			return
		}
	}
}

// handleTouchCancel broadcasts a cancel to n and its whole subtree,
// parent before children.
func (n *Node) handleTouchCancel() {
	if n.props.OnTouchCancel != nil {
		n.props.OnTouchCancel()
	}
	n.w.cancel(n)
	for i := len(n.children) - 1; i >= 0; i-- {
		n.children[i].handleTouchCancel()
	}
}
