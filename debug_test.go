package willowgui

import (
	"log/slog"
	"strings"
	"testing"
)

func TestDebug_ChildCountWarning(t *testing.T) {
	s, l := newTestSystem(t, 100, 100)
	s.SetDebugMode(true)
	root := box("crowded", 0, 0, 100, 100)
	l.AddRoot(root)
	for range debugMaxChildCount {
		root.AddChild(box("c", 0, 0, 1, 1))
	}

	buf := captureLogs(t, slog.LevelWarn)
	root.AddChild(box("c", 0, 0, 1, 1))
	out := buf.String()
	if !strings.Contains(out, "child count exceeds threshold") || !strings.Contains(out, "node=crowded") {
		t.Errorf("log = %q, want a child count warning for crowded", out)
	}
}

func TestDebug_TreeDepthWarning(t *testing.T) {
	s, l := newTestSystem(t, 100, 100)
	s.SetDebugMode(true)
	parent := box("n0", 0, 0, 100, 100)
	l.AddRoot(parent)
	for range debugMaxTreeDepth - 1 {
		child := box("n", 0, 0, 100, 100)
		parent.AddChild(child)
		parent = child
	}

	buf := captureLogs(t, slog.LevelWarn)
	parent.AddChild(box("deep", 0, 0, 100, 100))
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Errorf("log = %q, want a depth warning", buf.String())
	}
}

func TestDebug_OffSkipsChecks(t *testing.T) {
	_, l := newTestSystem(t, 100, 100)
	root := box("root", 0, 0, 100, 100)
	l.AddRoot(root)
	buf := captureLogs(t, slog.LevelWarn)
	for range debugMaxChildCount + 1 {
		root.AddChild(box("c", 0, 0, 1, 1))
	}
	if buf.Len() != 0 {
		t.Errorf("log = %q, want nothing outside debug mode", buf.String())
	}
}

func TestDebugLog_FrameStats(t *testing.T) {
	s, _ := newTestSystem(t, 100, 100)
	buf := captureLogs(t, slog.LevelDebug)
	stats := debugStats{nodeCount: 3, clipCount: 1}

	s.debugLog(stats)
	if buf.Len() != 0 {
		t.Fatalf("stats logged outside debug mode: %q", buf.String())
	}
	s.SetDebugMode(true)
	s.debugLog(stats)
	if out := buf.String(); !strings.Contains(out, "nodes=3") || !strings.Contains(out, "clips=1") {
		t.Errorf("log = %q, want node and clip counts", out)
	}
}
