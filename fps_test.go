package bough

import (
	"math"
	"testing"
)

func TestNewFPSWidget(t *testing.T) {
	n := NewFPSWidget()
	if n.Name != "fps_widget" {
		t.Errorf("Name = %q", n.Name)
	}
	if n.ZOrder() != math.MaxInt32 {
		t.Errorf("ZOrder = %d, want top", n.ZOrder())
	}
	if n.OnUpdate == nil || n.OnDraw == nil {
		t.Fatal("widget should install update and draw hooks")
	}
}

func TestFPSWidgetSortsLast(t *testing.T) {
	root := NewNode("root")
	fps := NewFPSWidget()
	root.AddChild(fps)
	top := NewNode("top")
	top.SetZOrder(1000)
	root.AddChild(top)

	assertChildren(t, root, top, fps)
}

func TestFPSWidgetToleratesNilScreen(t *testing.T) {
	root := NewNode("root")
	root.AddChild(NewFPSWidget())
	root.Update(1)
	root.Render(nil) // should not panic
}
