package bouncy

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestGame() *Game {
	return NewGame(newTestSim(), RunConfig{Width: 400, Height: 200, Palette: DefaultPalette()})
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want Event
		ok   bool
	}{
		{ebiten.KeyT, Key('t'), true},
		{ebiten.KeyR, Key('r'), true},
		{ebiten.KeyQ, Key('q'), true},
		{ebiten.KeyArrowUp, DirectionInput(DirectionUp), true},
		{ebiten.KeyArrowDown, DirectionInput(DirectionDown), true},
		{ebiten.KeyArrowLeft, DirectionInput(DirectionLeft), true},
		{ebiten.KeyArrowRight, DirectionInput(DirectionRight), true},
		{ebiten.KeyP, Event{}, false},
		{ebiten.KeySpace, Event{}, false},
	}
	for _, tt := range tests {
		got, ok := keyEvent(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("keyEvent(%v) = %v,%v want %v,%v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFrontEndKey(t *testing.T) {
	if frontEndKey(ebiten.KeyP) != actionScreenshot {
		t.Error("p should take a screenshot")
	}
	if frontEndKey(ebiten.KeyH) != actionToggleHUD {
		t.Error("h should toggle the HUD")
	}
	if frontEndKey(ebiten.KeyT) != actionNone {
		t.Error("t belongs to the simulation")
	}
}

func TestPointerLeftClickToNDC(t *testing.T) {
	g := newTestGame()
	ev, ok := g.pointerPress(MouseButtonLeft, 300, 50)
	if !ok || ev.Type != EventClick {
		t.Fatalf("got %v,%v", ev, ok)
	}
	assertPoint(t, "ndc", ev.Point, Pt(0.5, 0.5))

	if _, ok := g.pointerPress(MouseButtonLeft, 401, 50); ok {
		t.Error("click outside the viewport should be dropped")
	}
	if _, ok := g.pointerPress(MouseButtonMiddle, 10, 10); ok {
		t.Error("middle button does nothing")
	}
}

func TestPointerMenuFlow(t *testing.T) {
	g := newTestGame()
	if _, ok := g.pointerPress(MouseButtonRight, 20, 20); ok {
		t.Error("right press should only open the menu")
	}
	if !g.menu.IsOpen() {
		t.Fatal("menu should be open")
	}

	r := g.menu.ItemRect(1)
	ev, ok := g.pointerPress(MouseButtonLeft, r.X+5, r.Y+5)
	if !ok || ev != Menu(MenuDefineObject) {
		t.Errorf("got %v,%v want Define Object", ev, ok)
	}
	if g.menu.IsOpen() {
		t.Error("selecting an entry closes the menu")
	}

	// A left press away from an open menu dismisses it without a click.
	g.pointerPress(MouseButtonRight, 20, 20)
	if _, ok := g.pointerPress(MouseButtonLeft, 390, 190); ok {
		t.Error("dismissing the menu must not add a point")
	}
	if g.menu.IsOpen() {
		t.Error("menu should close")
	}
}

func TestGamePostAndLayout(t *testing.T) {
	g := newTestGame()
	w, h := g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %d,%d", w, h)
	}
	if g.renderer.Viewport != (Viewport{Width: 800, Height: 600}) {
		t.Errorf("viewport = %+v", g.renderer.Viewport)
	}

	g.Post(Menu(MenuDefineBoundary))
	if err := g.Loop().Drain(); err != nil {
		t.Fatal(err)
	}
	if g.Loop().Simulation().Mode() != ModeDefiningBoundary {
		t.Error("posted menu command should reach the simulation")
	}

	g.Screenshot("x")
	if len(g.screenshotQueue) != 1 {
		t.Error("screenshot should be queued")
	}
}

func TestHUDText(t *testing.T) {
	f := Frame{Mode: ModeDefiningObject, Translating: true, Velocity: Pt(3, 4), Speed: 2, Bounces: 7}
	got := hudText(f, 60, 60)
	want := "Mode: defining-object\nTranslate: on  Rotate: off\n|v|: 5.0000  spin: 2.00\nBounces: 7\nFPS: 60.0  TPS: 60.0"
	if got != want {
		t.Errorf("hudText =\n%s\nwant\n%s", got, want)
	}
}
