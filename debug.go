package willowgui

import "time"

// debugStats holds per-frame draw metrics.
// Only populated when the system is in debug mode.
type debugStats struct {
	drawTime  time.Duration
	nodeCount int
	clipCount int
}

// debugLog logs per-frame draw stats.
func (s *System) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	Logger().Debug("frame",
		"draw", stats.drawTime,
		"nodes", stats.nodeCount,
		"clips", stats.clipCount,
	)
}

// debugMaxTreeDepth is the depth above which a warning is logged.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugMaxChildCount is the child count above which a warning is logged.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("child count exceeds threshold",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
