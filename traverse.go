package bough

import "github.com/hajimehoshi/ebiten/v2"

// LifecycleEventType identifies a node lifecycle transition.
type LifecycleEventType uint8

const (
	EventEnter LifecycleEventType = iota // node is about to render for the first time
	EventExit                            // node is being swept from its parent
)

// String returns "enter" or "exit".
func (t LifecycleEventType) String() string {
	switch t {
	case EventEnter:
		return "enter"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// LifecycleEvent carries lifecycle data for the ECS bridge.
type LifecycleEvent struct {
	Type     LifecycleEventType
	NodeID   uint32
	EntityID uint32
	Name     string
}

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, lifecycle events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event LifecycleEvent)
}

// Update advances the node by dt seconds: the node's own OnUpdate runs
// first, then every visible child is updated recursively. Hidden children
// and their subtrees are skipped for the frame.
func (n *Node) Update(dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.Children() {
		if child.Visible() {
			child.Update(dt)
		}
	}
}

// Render draws the node and its subtree to screen. The node's own OnDraw
// runs first, then children are visited back to front:
//
//   - a child scheduled with RemoveFromParent gets OnExit and is detached;
//   - a visible child gets OnEnter before its first render, then renders;
//   - a hidden child is skipped and its lifecycle is untouched.
//
// The screen is only forwarded, never inspected, so a nil screen is valid
// for trees whose OnDraw callbacks tolerate it.
func (n *Node) Render(screen *ebiten.Image) {
	n.render(screen, nil)
}

func (n *Node) render(screen *ebiten.Image, store EntityStore) {
	if n.OnDraw != nil {
		n.OnDraw(screen)
	}
	for _, child := range n.Children() {
		switch {
		case child.RemovedFromParent():
			child.exit(store)
			n.RemoveChild(child)
		case child.Visible():
			if !child.HasRendered() {
				child.enter(store)
			}
			child.render(screen, store)
		}
	}
	n.rendered.Store(true)
}

func (n *Node) enter(store EntityStore) {
	if n.OnEnter != nil {
		n.OnEnter()
	}
	if store != nil {
		store.EmitEvent(n.lifecycleEvent(EventEnter))
	}
}

func (n *Node) exit(store EntityStore) {
	if n.OnExit != nil {
		n.OnExit()
	}
	if store != nil {
		store.EmitEvent(n.lifecycleEvent(EventExit))
	}
}

func (n *Node) lifecycleEvent(typ LifecycleEventType) LifecycleEvent {
	return LifecycleEvent{Type: typ, NodeID: n.ID, EntityID: n.EntityID, Name: n.Name}
}
