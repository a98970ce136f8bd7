package bouncy

import "testing"

func TestContextMenuHitTest(t *testing.T) {
	var m ContextMenu
	if _, ok := m.HitTest(0, 0); ok {
		t.Error("closed menu should not hit")
	}

	m.OpenAt(100, 100, 640, 480)
	if !m.IsOpen() {
		t.Fatal("menu should be open")
	}
	tests := []struct {
		x, y float64
		want MenuCommand
		ok   bool
	}{
		{105, 105, MenuDefineBoundary, true},
		{105, 120, MenuDefineObject, true}, // border belongs to the lower row
		{219, 159, MenuStartMovement, true},
		{105, 160, 0, false},
		{99, 105, 0, false},
	}
	for _, tt := range tests {
		got, ok := m.HitTest(tt.x, tt.y)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("HitTest(%v,%v) = %v,%v want %v,%v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}

	m.Close()
	if m.IsOpen() {
		t.Error("menu should be closed")
	}
}

func TestContextMenuStaysOnScreen(t *testing.T) {
	var m ContextMenu
	m.OpenAt(630, 470, 640, 480)
	r := m.ItemRect(len(MenuCommands) - 1)
	if r.X+r.Width > 640 || r.Y+r.Height > 480 {
		t.Errorf("last item %+v spills off screen", r)
	}

	m.OpenAt(10, 10, 50, 30)
	if r := m.ItemRect(0); r.X < 0 || r.Y < 0 {
		t.Errorf("first item %+v has negative origin", r)
	}
}

func TestContextMenuHover(t *testing.T) {
	var m ContextMenu
	m.OpenAt(0, 0, 640, 480)
	m.Hover(10, 45)
	if m.hover != 2 {
		t.Errorf("hover = %d, want 2", m.hover)
	}
	m.Hover(500, 500)
	if m.hover != -1 {
		t.Errorf("hover = %d, want -1", m.hover)
	}
}
