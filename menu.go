package bouncy

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	menuItemWidth  = 120
	menuItemHeight = 20
	menuTextPadX   = 6
	menuTextPadY   = 2
)

// ContextMenu is the right-click popup listing the MenuCommands. Positions
// are screen pixels.
type ContextMenu struct {
	open  bool
	x, y  float64
	hover int
}

// IsOpen reports whether the menu is showing.
func (m *ContextMenu) IsOpen() bool { return m.open }

// OpenAt shows the menu with its top-left corner at (x, y), shifted so it
// stays inside a screen of w x h pixels.
func (m *ContextMenu) OpenAt(x, y, w, h float64) {
	mw := float64(menuItemWidth)
	mh := float64(menuItemHeight * len(MenuCommands))
	if x+mw > w {
		x = w - mw
	}
	if y+mh > h {
		y = h - mh
	}
	m.x = max(x, 0)
	m.y = max(y, 0)
	m.open = true
	m.hover = -1
}

// Close hides the menu.
func (m *ContextMenu) Close() {
	m.open = false
	m.hover = -1
}

// ItemRect returns the screen rectangle of entry i.
func (m *ContextMenu) ItemRect(i int) Rect {
	return Rect{
		X:      m.x,
		Y:      m.y + float64(i*menuItemHeight),
		Width:  menuItemWidth,
		Height: menuItemHeight,
	}
}

// itemAt returns the index of the entry under (x, y), or -1.
func (m *ContextMenu) itemAt(x, y float64) int {
	if !m.open {
		return -1
	}
	for i := range MenuCommands {
		r := m.ItemRect(i)
		// Half-open rows so a point on the border between entries picks one.
		if x >= r.X && x <= r.X+r.Width && y >= r.Y && y < r.Y+r.Height {
			return i
		}
	}
	return -1
}

// HitTest returns the command under (x, y).
func (m *ContextMenu) HitTest(x, y float64) (MenuCommand, bool) {
	i := m.itemAt(x, y)
	if i < 0 {
		return 0, false
	}
	return MenuCommands[i], true
}

// Hover highlights the entry under (x, y).
func (m *ContextMenu) Hover(x, y float64) {
	m.hover = m.itemAt(x, y)
}

var (
	menuBackground = color.RGBA{40, 40, 40, 235}
	menuHighlight  = color.RGBA{70, 90, 140, 255}
)

// Draw renders the open menu onto dst.
func (m *ContextMenu) Draw(dst *ebiten.Image) {
	if !m.open {
		return
	}
	for i, c := range MenuCommands {
		r := m.ItemRect(i)
		bg := menuBackground
		if i == m.hover {
			bg = menuHighlight
		}
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), bg, false)
		ebitenutil.DebugPrintAt(dst, c.Label(), int(r.X)+menuTextPadX, int(r.Y)+menuTextPadY)
	}
}
