// Package bough is a minimal retained-mode scene graph for [Ebitengine].
//
// Bough provides the structural backbone that sprites, widgets and game
// objects are composed on: a tree of [Node] values with z-ordered children,
// a per-frame update and render traversal with lazy enter/exit lifecycle
// callbacks, and world-to-screen coordinates under a global scale factor.
// It draws nothing itself; content is supplied through [Node.OnDraw].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := bough.NewScene()
//	// ... add nodes ...
//	bough.Run(scene, bough.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// [Scene] implements [ebiten.Game], so it can also be passed to
// [ebiten.RunGame] directly.
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Scene.Root].
// A child's world position is its local position plus its parent's world
// position.
//
//	panel := bough.NewNodeRect("panel", bough.Rect{X: 20, Y: 20, Width: 200, Height: 100})
//	scene.Root().AddChild(panel)
//
//	button := bough.NewNodeSize("ok", 40, 16)
//	button.SetPosition(150, 74)
//	button.SetZOrder(1)
//	panel.AddChild(button)
//
// Children are kept sorted by z order (ties keep insertion order) and are
// drawn back to front. A node belongs to at most one parent; [Node.AddChild]
// reports false instead of reparenting.
//
// # Lifecycle
//
// [Node.OnEnter] fires once, just before a node's first render.
// [Node.RemoveFromParent] hides a node at once and schedules it; the parent's
// next render fires [Node.OnExit] and detaches it. This makes it safe for a
// node to remove itself from inside its own [Node.OnUpdate].
//
// # Concurrency
//
// Update and render run on the game goroutine, but children may be added or
// removed from any goroutine: each node guards its child list with its own
// mutex and traversal iterates over snapshots.
//
// # Scaling
//
// Screen coordinates are world coordinates multiplied by a [Scaler],
// [DefaultScale] unless a node has its own. [Scene.SetDesignSize] makes
// [Scene.Layout] fit the factors to the window.
//
// ECS integration (lifecycle events published to a [Donburi] world) lives in
// bough/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package bough
