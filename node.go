package bough

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is atomic because nodes may be built on loader goroutines.
var nodeIDCounter atomic.Uint32

func nextNodeID() uint32 {
	return nodeIDCounter.Add(1)
}

// Node is the scene graph element. Every node is both a leaf and a potential
// container: it owns an ordered list of children, a local bounds rectangle,
// and the lifecycle flags that gate OnEnter and OnExit.
//
// A Node must not be copied after first use.
type Node struct {
	// Identity
	ID       uint32
	Name     string
	EntityID uint32
	UserData any

	// Per-node callbacks (nil by default; zero cost when unused). Assign them
	// before the node is attached to a live tree.
	OnEnter  func()
	OnExit   func()
	OnUpdate func(dt float64)
	OnDraw   func(screen *ebiten.Image)

	// Hierarchy. parent is a back pointer only; the parent owns the child.
	parent   atomic.Pointer[Node]
	mu       sync.Mutex // guards children
	children []*Node

	// Geometry
	boundsMu sync.RWMutex // guards bounds and scaler
	bounds   Rect
	scaler   Scaler

	// Ordering & lifecycle
	zOrder   atomic.Int64
	visible  atomic.Bool
	removed  atomic.Bool
	rendered atomic.Bool
}

// NewNode creates a detached, visible node with empty bounds.
func NewNode(name string) *Node {
	return NewNodeRect(name, Rect{})
}

// NewNodeSize creates a node at the local origin with the given size.
func NewNodeSize(name string, width, height float64) *Node {
	return NewNodeRect(name, Rect{Width: width, Height: height})
}

// NewNodeRect creates a node with the given local bounds.
func NewNodeRect(name string, bounds Rect) *Node {
	n := &Node{ID: nextNodeID(), Name: name, bounds: bounds}
	n.visible.Store(true)
	return n
}

// --- Tree manipulation ---

// AddChild attaches child to this node and re-sorts the children by z order.
// Children with equal z order keep their insertion order.
//
// AddChild never panics. It returns false and leaves both nodes untouched
// when child is nil, is this node, is an ancestor of this node, or already
// has a parent. Callers that need to move a node must remove it first.
func (n *Node) AddChild(child *Node) bool {
	switch {
	case child == nil:
		debugRejectedAdd(n, nil, "nil child")
		return false
	case isAncestor(child, n):
		debugRejectedAdd(n, child, "would create a cycle")
		return false
	}
	if !child.parent.CompareAndSwap(nil, n) {
		debugRejectedAdd(n, child, "already has a parent")
		return false
	}

	n.mu.Lock()
	n.children = append(n.children, child)
	sortByZOrder(n.children)
	count := len(n.children)
	n.mu.Unlock()

	if debugEnabled() {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n, count)
	}
	return true
}

// RemoveChild detaches every occurrence of child from this node. The detached
// child loses its parent and is marked removed (and therefore invisible).
// Removing a node that is not a child is a no-op.
//
// Explicit removal does not fire OnExit; only the deferred path through
// RemoveFromParent and the next Render does.
func (n *Node) RemoveChild(child *Node) {
	if child == nil {
		return
	}
	found := false
	n.mu.Lock()
	kept := n.children[:0]
	for _, c := range n.children {
		if c == child {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	clear(n.children[len(kept):])
	n.children = kept
	n.mu.Unlock()

	if found {
		child.detach(n)
	}
}

// RemoveChildren detaches all children with the same side effects as
// RemoveChild.
func (n *Node) RemoveChildren() {
	n.mu.Lock()
	old := n.children
	n.children = nil
	n.mu.Unlock()

	for _, child := range old {
		child.detach(n)
	}
}

// Children returns a snapshot of the children in z order. The copy is safe
// to iterate while other goroutines add or remove children.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.children)
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.children)
}

// ChildCount returns the total number of descendants: direct children plus,
// recursively, all of their children.
func (n *Node) ChildCount() int {
	children := n.Children()
	count := len(children)
	for _, child := range children {
		count += child.ChildCount()
	}
	return count
}

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent.Load()
}

// SetParent overwrites the parent back pointer without touching any child
// list. It exists for custom containers that manage their own registries;
// tree code should use AddChild and RemoveChild instead.
func (n *Node) SetParent(p *Node) {
	n.parent.Store(p)
}

// --- Ordering ---

// ZOrder returns the sort key among siblings. Lower values render first.
func (n *Node) ZOrder() int {
	return int(n.zOrder.Load())
}

// SetZOrder sets the sort key. If the node is attached, its parent's
// children are re-sorted immediately.
func (n *Node) SetZOrder(z int) {
	if int(n.zOrder.Swap(int64(z))) == z {
		return
	}
	if p := n.parent.Load(); p != nil {
		p.mu.Lock()
		sortByZOrder(p.children)
		p.mu.Unlock()
	}
}

// --- Lifecycle flags ---

// Visible reports whether the node takes part in update and render traversal.
func (n *Node) Visible() bool {
	return n.visible.Load()
}

// SetVisible shows or hides the node and its whole subtree.
func (n *Node) SetVisible(v bool) {
	n.visible.Store(v)
}

// RemoveFromParent schedules the node for removal: it becomes invisible at
// once and is detached, with OnExit, by its parent's next Render. Safe to
// call from the node's own OnUpdate.
func (n *Node) RemoveFromParent() {
	n.removed.Store(true)
	n.visible.Store(false)
}

// RemovedFromParent reports whether the node has been scheduled for removal
// or already removed.
func (n *Node) RemovedFromParent() bool {
	return n.removed.Load()
}

// HasRendered reports whether the node has completed at least one Render.
func (n *Node) HasRendered() bool {
	return n.rendered.Load()
}

// --- Helpers ---

// detach clears the back pointer (only if it still points at from) and marks
// the node removed.
func (n *Node) detach(from *Node) {
	n.parent.CompareAndSwap(from, nil)
	n.RemoveFromParent()
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent.Load() {
		if p == candidate {
			return true
		}
	}
	return false
}

// sortByZOrder stably sorts nodes by ascending z order. Callers hold the
// owning node's mu.
func sortByZOrder(nodes []*Node) {
	slices.SortStableFunc(nodes, func(a, b *Node) int {
		return cmp.Compare(a.ZOrder(), b.ZOrder())
	})
}
