package scrollkit

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and layout metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	inputTime  time.Duration
	updateTime time.Duration
	tables     int
	relayout   int
	visible    int
}

// collectStats sums layout metrics over the registered tables.
func (s *Scene) collectStats(stats *debugStats) {
	for _, u := range s.updaters {
		tv, ok := u.(*TableView)
		if !ok {
			continue
		}
		stats.tables++
		stats.relayout += tv.LastRelayoutCount()
		stats.visible += len(tv.VisibleIndexPaths())
	}
}

// debugLog prints timing and layout stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[scrollkit] frame %d | input: %v | update: %v | total: %v\n",
		s.frame, stats.inputTime, stats.updateTime, stats.inputTime+stats.updateTime)
	if stats.tables > 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[scrollkit] tables: %d | visible items: %d | relayout: %d\n",
			stats.tables, stats.visible, stats.relayout)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("scrollkit debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollkit] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
// Tables put every layout item on one scroll layer, so very long lists hit
// this first.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[scrollkit] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}
