// Package audio plays the short tone heard when the object bounces off the
// boundary.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Config controls the bounce tone.
type Config struct {
	Enabled   bool
	Frequency float64
	Duration  time.Duration
	Volume    float64 // linear gain in (0, 1]; 0 mutes
}

// Player owns the speaker. A Player whose Init failed stays silent instead
// of failing the demo.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	log         *zap.Logger
	initialized bool
}

// NewPlayer creates a player. It does not touch the audio device until Init.
func NewPlayer(cfg Config, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{cfg: cfg, log: log}
}

// Init opens the speaker. It is a no-op when audio is disabled or already
// initialized.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.log.Warn("audio disabled", zap.Error(err))
		return errors.Wrap(err, "init speaker")
	}
	p.initialized = true
	p.log.Debug("audio initialized",
		zap.Float64("frequency", p.cfg.Frequency),
		zap.Duration("duration", p.cfg.Duration),
	)
	return nil
}

// Active reports whether PlayBounce will make a sound.
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayBounce queues one bounce tone. It never blocks on the device.
func (p *Player) PlayBounce() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, err := newBounceTone(sampleRate, p.cfg.Frequency, p.cfg.Duration, p.cfg.Volume)
	if err != nil {
		p.log.Warn("bounce tone", zap.Error(err))
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// newBounceTone returns a sine tone of freq Hz lasting dur, scaled to the
// linear gain volume.
func newBounceTone(sr beep.SampleRate, freq float64, dur time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %vHz", freq)
	}
	vol := &effects.Volume{
		Streamer: beep.Take(sr.N(dur), sine),
		Base:     2,
		Silent:   volume <= 0,
	}
	if volume > 0 {
		vol.Volume = math.Log2(volume)
	}
	return vol, nil
}
