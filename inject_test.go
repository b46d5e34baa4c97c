package willowgui

import (
	"slices"
	"testing"
)

func TestInjectTap(t *testing.T) {
	s, _, _, log := dispatchTree(t)
	s.InjectTap(20, 20)
	if len(s.injectQueue) != 2 {
		t.Fatalf("queue = %d, want 2", len(s.injectQueue))
	}

	s.Update()
	if want := []string{"btn:touchstart", "root:touchstart"}; !slices.Equal(*log, want) {
		t.Errorf("after frame 1: %v, want %v", *log, want)
	}
	s.Update()
	if want := []string{
		"btn:touchstart", "root:touchstart",
		"btn:touchend", "root:touchend",
		"btn:click", "root:click",
	}; !slices.Equal(*log, want) {
		t.Errorf("after frame 2: %v, want %v", *log, want)
	}
	if len(s.injectQueue) != 0 {
		t.Errorf("queue = %d after two frames, want 0", len(s.injectQueue))
	}
}

func TestInjectDrag(t *testing.T) {
	tests := []struct {
		name      string
		frames    int
		wantMoves []float64
	}{
		{"minimum", 0, nil},
		{"two", 2, nil},
		{"four", 4, []float64{40, 70}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSystem(t, 200, 100)
			s.InjectDrag(10, 50, 100, 50, tt.frames)

			q := s.injectQueue
			if len(q) != 2+len(tt.wantMoves) {
				t.Fatalf("queue = %d, want %d", len(q), 2+len(tt.wantMoves))
			}
			if q[0].kind != syntheticPress || q[0].x != 10 {
				t.Errorf("first = %+v, want press at 10", q[0])
			}
			if last := q[len(q)-1]; last.kind != syntheticRelease || last.x != 100 {
				t.Errorf("last = %+v, want release at 100", last)
			}
			for i, want := range tt.wantMoves {
				ev := q[i+1]
				if ev.kind != syntheticMove {
					t.Errorf("q[%d].kind = %v, want move", i+1, ev.kind)
				}
				assertNear(t, "move x", ev.x, want)
			}
		})
	}
}

func TestInjectDrag_ScrollsList(t *testing.T) {
	s, list := listTestTree(t, ListProps{})
	s.InjectDrag(50, 60, 50, 20, 5)
	for range 5 {
		s.Update()
	}
	// Moves land at 50, 40 and 30; the release does not scroll.
	assertNear(t, "Head", list.Head(), -30)
}

func TestInjectTouches(t *testing.T) {
	s, l := newTestSystem(t, 200, 100)
	left := box("left", 0, 0, 100, 100)
	right := box("right", 100, 0, 100, 100)
	l.AddRoot(left)
	l.AddRoot(right)

	var ends []string
	p := left.Props()
	p.OnTouchEnd = func(e *Event) { ends = append(ends, e.Target.Name) }
	left.SetProps(p)

	s.InjectTouchStart(1, 50, 50)
	s.InjectTouchStart(2, 150, 50)
	s.InjectTouchMove(1, 52, 50)
	s.InjectTouchEnd(1, 52, 50)

	s.Update()
	s.Update()
	if s.sessions.len() != 2 {
		t.Fatalf("sessions = %d, want 2", s.sessions.len())
	}
	if len(s.injectedTouches) != 2 {
		t.Fatalf("injected touches = %d, want 2", len(s.injectedTouches))
	}
	s.Update()
	if s.injectedTouches[0].PageX != 52 {
		t.Errorf("touch 1 PageX = %v, want 52", s.injectedTouches[0].PageX)
	}
	s.Update()
	if !slices.Equal(ends, []string{"left"}) {
		t.Errorf("touchend targets = %v, want [left]", ends)
	}
	if len(s.injectedTouches) != 1 || s.injectedTouches[0].Identifier != 2 {
		t.Errorf("injected touches = %+v, want only identifier 2", s.injectedTouches)
	}
	if s.sessions.len() != 0 {
		t.Errorf("sessions = %d, want 0 after any release", s.sessions.len())
	}
}

func TestInjectCancel(t *testing.T) {
	s, _, btn, log := dispatchTree(t)
	s.InjectTouchStart(1, 20, 20)
	s.InjectCancel()

	s.Update()
	if !btn.Pressed() {
		t.Fatal("button not pressed after touchstart")
	}
	s.Update()
	if btn.Pressed() {
		t.Error("button still pressed after cancel")
	}
	if len(s.injectedTouches) != 0 {
		t.Errorf("injected touches = %d after cancel, want 0", len(s.injectedTouches))
	}
	if !slices.Contains(*log, "btn:touchcancel") {
		t.Errorf("events = %v, want btn:touchcancel", *log)
	}
}
