package bouncy

import (
	"time"

	"go.uber.org/zap"
)

const defaultQueueCap = 64

// Loop serializes every event touching a Simulation. Front ends Post input
// events as they arrive, then Drain once per frame; Redraw events are handed
// to the Renderer as a Frame.
type Loop struct {
	sim      *Simulation
	renderer Renderer
	queue    []Event
	log      *zap.Logger

	debug      bool
	statsEvery uint64
	stats      loopStats
}

// NewLoop creates a loop around sim. renderer may be nil and set later.
func NewLoop(sim *Simulation, renderer Renderer, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		sim:        sim,
		renderer:   renderer,
		queue:      make([]Event, 0, defaultQueueCap),
		log:        log,
		statsEvery: DefaultStatsEvery,
	}
}

// Simulation returns the simulation driven by the loop.
func (l *Loop) Simulation() *Simulation { return l.sim }

// SetRenderer replaces the renderer used for Redraw events.
func (l *Loop) SetRenderer(r Renderer) { l.renderer = r }

// Post queues ev for the next Drain.
func (l *Loop) Post(ev Event) {
	l.queue = append(l.queue, ev)
}

// Pending returns the number of queued events.
func (l *Loop) Pending() int { return len(l.queue) }

// Dispatch handles a single event immediately, bypassing the queue.
func (l *Loop) Dispatch(ev Event) error {
	if ev.Type == EventRedraw {
		l.Redraw()
		return nil
	}

	var t0 time.Time
	if l.debug {
		t0 = time.Now()
	}
	err := l.sim.Apply(ev)
	if l.debug {
		l.stats.record(ev.Type, time.Since(t0))
		if ev.Type == EventTick {
			l.debugLog()
		}
	}
	if err != nil {
		l.log.Info("loop stopped", zap.Stringer("event", ev), zap.Error(err))
	}
	return err
}

// Redraw hands the current Frame to the renderer, if any.
func (l *Loop) Redraw() {
	var t0 time.Time
	if l.debug {
		t0 = time.Now()
	}
	if l.renderer != nil {
		l.renderer.Render(l.sim.Frame())
	}
	if l.debug {
		l.stats.record(EventRedraw, time.Since(t0))
	}
}

// Drain dispatches queued events in FIFO order. It stops at the first error,
// leaving the events after it queued.
func (l *Loop) Drain() error {
	for i := 0; i < len(l.queue); i++ {
		if err := l.Dispatch(l.queue[i]); err != nil {
			n := copy(l.queue, l.queue[i+1:])
			l.queue = l.queue[:n]
			return err
		}
	}
	l.queue = l.queue[:0]
	return nil
}

// SetDebugMode enables per-event timing and periodic stat lines at debug
// level. every is the number of ticks between lines; zero keeps the default.
func (l *Loop) SetDebugMode(enabled bool, every int) {
	l.debug = enabled
	if every > 0 {
		l.statsEvery = uint64(every)
	}
	l.stats = loopStats{}
}
