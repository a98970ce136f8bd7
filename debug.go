package bouncy

import (
	"time"

	"go.uber.org/zap"
)

// loopStats accumulates dispatch timings between stat lines.
// Only populated when Loop.debug is true.
type loopStats struct {
	events   [EventMenu + 1]int
	tickTime time.Duration
	drawTime time.Duration
}

func (s *loopStats) record(t EventType, d time.Duration) {
	if int(t) < len(s.events) {
		s.events[t]++
	}
	switch t {
	case EventTick:
		s.tickTime += d
	case EventRedraw:
		s.drawTime += d
	}
}

// debugLog emits one stat line every statsEvery ticks and resets the window.
func (l *Loop) debugLog() {
	if !l.debug || l.statsEvery == 0 {
		return
	}
	ticks := l.sim.Ticks()
	if ticks == 0 || ticks%l.statsEvery != 0 {
		return
	}
	m := l.sim.Motion()
	s := l.stats
	l.log.Debug("loop stats",
		zap.Uint64("tick", ticks),
		zap.Uint64("bounces", l.sim.Bounces()),
		zap.Int("ticks", s.events[EventTick]),
		zap.Int("redraws", s.events[EventRedraw]),
		zap.Int("inputs", s.events[EventClick]+s.events[EventKey]+s.events[EventDirection]+s.events[EventMenu]),
		zap.Duration("tick_time", s.tickTime),
		zap.Duration("draw_time", s.drawTime),
		zap.Float64("x", m.Position.X),
		zap.Float64("y", m.Position.Y),
		zap.Float64("velocity", m.Velocity.Norm()),
		zap.Float64("spin", m.Speed),
		zap.Int("queued", len(l.queue)),
	)
	l.stats = loopStats{}
}
