package bough

// Coordinates come in three spaces:
//
//	local  - the node's own bounds, relative to its parent
//	world  - local offsets summed up the parent chain (unscaled)
//	screen - world multiplied by the node's Scaler
//
// Width and height are always stored and returned in unscaled units.

// --- Local ---

// X returns the local x offset relative to the parent.
func (n *Node) X() float64 {
	n.boundsMu.RLock()
	defer n.boundsMu.RUnlock()
	return n.bounds.X
}

// Y returns the local y offset relative to the parent.
func (n *Node) Y() float64 {
	n.boundsMu.RLock()
	defer n.boundsMu.RUnlock()
	return n.bounds.Y
}

// SetX sets the local x offset.
func (n *Node) SetX(x float64) {
	n.boundsMu.Lock()
	n.bounds.X = x
	n.boundsMu.Unlock()
}

// SetY sets the local y offset.
func (n *Node) SetY(y float64) {
	n.boundsMu.Lock()
	n.bounds.Y = y
	n.boundsMu.Unlock()
}

// SetPosition sets the local x and y offsets together.
func (n *Node) SetPosition(x, y float64) {
	n.boundsMu.Lock()
	n.bounds.X = x
	n.bounds.Y = y
	n.boundsMu.Unlock()
}

// Width returns the unscaled width.
func (n *Node) Width() float64 {
	n.boundsMu.RLock()
	defer n.boundsMu.RUnlock()
	return n.bounds.Width
}

// Height returns the unscaled height.
func (n *Node) Height() float64 {
	n.boundsMu.RLock()
	defer n.boundsMu.RUnlock()
	return n.bounds.Height
}

// SetWidth sets the unscaled width.
func (n *Node) SetWidth(w float64) {
	n.boundsMu.Lock()
	n.bounds.Width = w
	n.boundsMu.Unlock()
}

// SetHeight sets the unscaled height.
func (n *Node) SetHeight(h float64) {
	n.boundsMu.Lock()
	n.bounds.Height = h
	n.boundsMu.Unlock()
}

// SetSize sets the unscaled width and height together.
func (n *Node) SetSize(w, h float64) {
	n.boundsMu.Lock()
	n.bounds.Width = w
	n.bounds.Height = h
	n.boundsMu.Unlock()
}

// Bounds returns the local bounds rectangle.
func (n *Node) Bounds() Rect {
	n.boundsMu.RLock()
	defer n.boundsMu.RUnlock()
	return n.bounds
}

// --- World ---

// WorldX returns the x position in the root's unscaled space.
func (n *Node) WorldX() float64 {
	x := n.X()
	if p := n.parent.Load(); p != nil {
		x += p.WorldX()
	}
	return x
}

// WorldY returns the y position in the root's unscaled space.
func (n *Node) WorldY() float64 {
	y := n.Y()
	if p := n.parent.Load(); p != nil {
		y += p.WorldY()
	}
	return y
}

// SetWorldX stores x as the local offset. For a root node local and world
// coincide; for a nested node the result is x plus the parent's WorldX.
func (n *Node) SetWorldX(x float64) {
	n.SetX(x)
}

// SetWorldY stores y as the local offset. See SetWorldX.
func (n *Node) SetWorldY(y float64) {
	n.SetY(y)
}

// WorldBounds returns the bounds with the world position and unscaled size.
func (n *Node) WorldBounds() Rect {
	w, h := n.size()
	return Rect{X: n.WorldX(), Y: n.WorldY(), Width: w, Height: h}
}

// --- Screen ---

// Scaler returns the node's scale source: its own if set, else DefaultScale.
func (n *Node) Scaler() Scaler {
	n.boundsMu.RLock()
	defer n.boundsMu.RUnlock()
	if n.scaler != nil {
		return n.scaler
	}
	return DefaultScale
}

// SetScaler overrides the scale source for this node only. Pass nil to go
// back to DefaultScale. Descendants are not affected.
func (n *Node) SetScaler(s Scaler) {
	n.boundsMu.Lock()
	n.scaler = s
	n.boundsMu.Unlock()
}

// ScreenX returns WorldX multiplied by the current width factor. The factor
// is read on every call, so window resizes apply immediately.
func (n *Node) ScreenX() float64 {
	return n.WorldX() * n.Scaler().WidthScaleFactor()
}

// ScreenY returns WorldY multiplied by the current height factor.
func (n *Node) ScreenY() float64 {
	return n.WorldY() * n.Scaler().HeightScaleFactor()
}

// SetScreenX divides x by the width factor and stores it as the LOCAL x.
//
// NOTE: this is not the inverse of ScreenX for nested nodes. ScreenX scales
// the full world chain while SetScreenX writes the local offset, so on a
// child the resulting ScreenX is x plus the parent's ScreenX.
func (n *Node) SetScreenX(x float64) {
	n.SetX(x / n.Scaler().WidthScaleFactor())
}

// SetScreenY divides y by the height factor and stores it as the LOCAL y.
// The same parent offset caveat as SetScreenX applies.
func (n *Node) SetScreenY(y float64) {
	n.SetY(y / n.Scaler().HeightScaleFactor())
}

// ScreenBounds returns the bounds fully in screen space: scaled position and
// scaled size.
func (n *Node) ScreenBounds() Rect {
	w, h := n.size()
	s := n.Scaler()
	return Rect{
		X:      n.WorldX() * s.WidthScaleFactor(),
		Y:      n.WorldY() * s.HeightScaleFactor(),
		Width:  w * s.WidthScaleFactor(),
		Height: h * s.HeightScaleFactor(),
	}
}

// --- Intersection ---

// Intersects reports whether the node overlaps other. Nodes with a zero or
// negative width or height never intersect, and rectangles that only share
// an edge do not count.
//
// NOTE: positions are compared in screen space but sizes are unscaled. With
// scale factors other than 1.0 the tested area differs from ScreenBounds.
// Use ScreenBounds().Intersects for a consistent screen-space test.
func (n *Node) Intersects(other *Node) bool {
	if other == nil {
		return false
	}
	return n.hitRect().Intersects(other.hitRect())
}

// hitRect is the rectangle Intersects tests: screen position, unscaled size.
func (n *Node) hitRect() Rect {
	w, h := n.size()
	return Rect{X: n.ScreenX(), Y: n.ScreenY(), Width: w, Height: h}
}

func (n *Node) size() (w, h float64) {
	n.boundsMu.RLock()
	defer n.boundsMu.RUnlock()
	return n.bounds.Width, n.bounds.Height
}
