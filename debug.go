package bough

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug atomic.Bool

func debugEnabled() bool {
	return globalDebug.Load()
}

// debugStats holds per-frame timing. Only populated when Scene.debug is true.
type debugStats struct {
	updateTime time.Duration
	renderTime time.Duration
	nodeCount  int
}

// debugLog writes the frame stats at debug level.
func (s *Scene) debugLog(stats debugStats) {
	Logger().Debug("frame",
		zap.Duration("update", stats.updateTime),
		zap.Duration("render", stats.renderTime),
		zap.Duration("total", stats.updateTime+stats.renderTime),
		zap.Int("nodes", stats.nodeCount),
	)
}

// debugRejectedAdd logs an AddChild that was turned into a no-op.
func debugRejectedAdd(parent, child *Node, reason string) {
	if !debugEnabled() {
		return
	}
	fields := []zap.Field{zap.String("parent", parent.Name), zap.String("reason", reason)}
	if child != nil {
		fields = append(fields, zap.String("child", child.Name), zap.Uint32("child_id", child.ID))
	}
	Logger().Warn("AddChild ignored", fields...)
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("tree depth exceeds threshold",
			zap.String("node", n.Name), zap.Int("depth", depth), zap.Int("threshold", debugMaxTreeDepth))
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node, count int) {
	if count > debugMaxChildCount {
		Logger().Warn("child count exceeds threshold",
			zap.String("node", n.Name), zap.Int("children", count), zap.Int("threshold", debugMaxChildCount))
	}
}
