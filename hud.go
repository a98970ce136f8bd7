package bouncy

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	hudWidth  = 220
	hudHeight = 100
	// hudRefreshTicks throttles text rebuilds to roughly twice a second.
	hudRefreshTicks = 30
)

// hud is the status overlay in the top-left corner: mode, flags, speeds,
// bounce count and the measured FPS/TPS.
type hud struct {
	img      *ebiten.Image
	text     string
	lastTick uint64
	drawn    bool
}

// hudText formats the overlay for f.
func hudText(f Frame, fps, tps float64) string {
	return fmt.Sprintf("Mode: %s\nTranslate: %s  Rotate: %s\n|v|: %.4f  spin: %.2f\nBounces: %d\nFPS: %.1f  TPS: %.1f",
		f.Mode, onOff(f.Translating), onOff(f.Rotating),
		f.Velocity.Norm(), f.Speed, f.Bounces, fps, tps)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// draw refreshes the overlay when due and composites it onto dst.
func (h *hud) draw(dst *ebiten.Image, f Frame) {
	if h.img == nil {
		h.img = ebiten.NewImage(hudWidth, hudHeight)
	}
	if !h.drawn || f.Tick < h.lastTick || f.Tick-h.lastTick >= hudRefreshTicks {
		h.text = hudText(f, ebiten.ActualFPS(), ebiten.ActualTPS())
		h.lastTick = f.Tick
		h.drawn = true

		h.img.Clear()
		// Semi-transparent background for readability
		h.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(h.img, h.text)
	}
	dst.DrawImage(h.img, nil)
}
