package bouncy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash fades a highlight from 1 to 0 after each bounce. Level is read by
// renderers to blend the object color toward the flash color.
type flash struct {
	tween    *gween.Tween
	level    float64
	duration float32
}

// trigger restarts the fade at full intensity.
func (f *flash) trigger() {
	if f.duration <= 0 {
		return
	}
	f.tween = gween.New(1, 0, f.duration, ease.OutQuad)
	f.level = 1
}

// update advances the fade by dt seconds.
func (f *flash) update(dt float32) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(dt)
	f.level = float64(v)
	if done {
		f.tween = nil
		f.level = 0
	}
}
