package bough

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the frame driver: it owns the root node and implements
// ebiten.Game, calling Update then Draw on the tree once per frame.
type Scene struct {
	// ClearColor fills the screen before the tree is drawn.
	ClearColor Color

	root       *Node
	store      EntityStore
	scale      *ScaleFactors
	updateFunc func() error

	designW, designH int

	debug bool
	stats debugStats
}

// NewScene creates a new scene with a pre-created root node. The scene drives
// DefaultScale; use SetScaleFactors to give it its own.
func NewScene() *Scene {
	return &Scene{
		ClearColor: ColorBlack,
		root:       NewNode("root"),
		scale:      DefaultScale,
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers a callback run at the start of every Update,
// before the tree is advanced. Returning an error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge that receives enter and exit
// events for every node rendered by this scene.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDesignSize sets the resolution the scene is authored at. Layout then
// fits the scale factors to the window. Zero values disable fitting.
func (s *Scene) SetDesignSize(w, h int) {
	s.designW, s.designH = w, h
}

// SetScaleFactors replaces the factors Layout writes to. Nodes read
// DefaultScale unless given their own Scaler, so a scene with private factors
// should hand them to its nodes with Node.SetScaler.
func (s *Scene) SetScaleFactors(f *ScaleFactors) {
	if f == nil {
		f = DefaultScale
	}
	s.scale = f
}

// SetDebugMode enables or disables debug mode. When enabled, rejected adds,
// tree depth and child count warnings, and per-frame timing stats are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug.Store(enabled)
}

// Update advances the tree by one tick of 1/TPS seconds.
func (s *Scene) Update() error {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return s.step(1 / float64(tps))
}

func (s *Scene) step(dt float64) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.root.Visible() {
		s.root.Update(dt)
	}

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
	return nil
}

// Draw clears the screen and renders the tree.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.RGBA())
	s.renderTree(screen)
}

// renderTree renders the root, firing its OnEnter on the first frame.
func (s *Scene) renderTree(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.root.Visible() {
		if !s.root.HasRendered() {
			s.root.enter(s.store)
		}
		s.root.render(screen, s.store)
	}

	if s.debug {
		s.stats.renderTime = time.Since(t0)
		s.stats.nodeCount = 1 + s.root.ChildCount()
		s.debugLog(s.stats)
		s.stats = debugStats{}
	}
}

// Layout fits the scale factors to the window when a design size is set and
// renders at the window's native resolution.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if s.designW > 0 && s.designH > 0 {
		s.scale.Fit(s.designW, s.designH, outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
