package bouncy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyAction is what a key does outside the simulation's own keys.
type keyAction uint8

const (
	actionNone       keyAction = iota
	actionScreenshot           // capture the next frame to PNG
	actionToggleHUD            // show or hide the status overlay
)

// keyEvent maps a pressed key to a simulation event. The second result is
// false for keys the simulation does not handle.
func keyEvent(k ebiten.Key) (Event, bool) {
	switch k {
	case ebiten.KeyT:
		return Key('t'), true
	case ebiten.KeyR:
		return Key('r'), true
	case ebiten.KeyQ:
		return Key('q'), true
	case ebiten.KeyArrowUp:
		return DirectionInput(DirectionUp), true
	case ebiten.KeyArrowDown:
		return DirectionInput(DirectionDown), true
	case ebiten.KeyArrowLeft:
		return DirectionInput(DirectionLeft), true
	case ebiten.KeyArrowRight:
		return DirectionInput(DirectionRight), true
	}
	return Event{}, false
}

// frontEndKey maps keys handled by the window itself.
func frontEndKey(k ebiten.Key) keyAction {
	switch k {
	case ebiten.KeyP:
		return actionScreenshot
	case ebiten.KeyH:
		return actionToggleHUD
	}
	return actionNone
}

// pointerPress turns a button press at screen (sx, sy) into an event.
// Right presses open the context menu; a left press on an open menu picks an
// entry (or dismisses the menu) instead of adding a point.
func (g *Game) pointerPress(btn MouseButton, sx, sy float64) (Event, bool) {
	vp := g.renderer.Viewport
	switch btn {
	case MouseButtonRight:
		g.menu.OpenAt(sx, sy, vp.Width, vp.Height)
		return Event{}, false
	case MouseButtonLeft:
		if g.menu.IsOpen() {
			c, ok := g.menu.HitTest(sx, sy)
			g.menu.Close()
			if !ok {
				return Event{}, false
			}
			return Menu(c), true
		}
		if !vp.Contains(sx, sy) {
			return Event{}, false
		}
		return Click(vp.ToNDC(sx, sy)), true
	}
	return Event{}, false
}

// pollInput reads this frame's ebiten input and posts the resulting events.
func (g *Game) pollInput() {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	g.menu.Hover(sx, sy)

	buttons := [...]struct {
		eb  ebiten.MouseButton
		btn MouseButton
	}{
		{ebiten.MouseButtonLeft, MouseButtonLeft},
		{ebiten.MouseButtonRight, MouseButtonRight},
	}
	for _, b := range buttons {
		if !inpututil.IsMouseButtonJustPressed(b.eb) {
			continue
		}
		if ev, ok := g.pointerPress(b.btn, sx, sy); ok {
			g.loop.Post(ev)
		}
	}

	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		if ev, ok := keyEvent(k); ok {
			g.loop.Post(ev)
			continue
		}
		switch frontEndKey(k) {
		case actionScreenshot:
			g.Screenshot("manual")
		case actionToggleHUD:
			g.showHUD = !g.showHUD
		}
	}
}
