package bough

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often the FPS widget re-reads the counters.
const fpsRefreshInterval = 0.5

// NewFPSWidget creates a node that prints the current FPS and TPS at its
// screen position. The text is refreshed every ~0.5 seconds and the node
// sorts above any sibling with a lower z order.
func NewFPSWidget() *Node {
	node := NewNodeSize("fps_widget", 100, 32)
	node.SetZOrder(math.MaxInt32)

	var (
		elapsed float64
		label   = "FPS: -\nTPS: -"
	)

	node.OnUpdate = func(dt float64) {
		elapsed += dt
		if elapsed < fpsRefreshInterval {
			return
		}
		elapsed = 0
		label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}

	node.OnDraw = func(screen *ebiten.Image) {
		if screen == nil {
			return
		}
		ebitenutil.DebugPrintAt(screen, label, int(node.ScreenX()), int(node.ScreenY()))
	}

	return node
}
