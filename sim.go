package bouncy

import (
	"go.uber.org/zap"
)

// Bounce is reported to OnBounce observers after a tick reflected the
// object's velocity.
type Bounce struct {
	Tick     uint64
	Edge     int
	Normal   Point
	Position Point
	Velocity Point // velocity after reflection
}

// SimConfig holds the knobs a Simulation is built from.
type SimConfig struct {
	Motion       MotionState // initial motion, restored by MenuDefineBoundary
	Tuning       Tuning
	TPS          int
	FlashSeconds float64
}

// DefaultSimConfig mirrors the classroom demo.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Motion:       DefaultMotion(),
		Tuning:       DefaultTuning(),
		TPS:          DefaultTPS,
		FlashSeconds: DefaultFlashSeconds,
	}
}

// Simulation owns all demo state: both shapes, the motion state and the
// translate/rotate flags. It is not safe for concurrent use; the owning loop
// serializes every call.
type Simulation struct {
	shapes  ShapeBuilder
	motion  MotionState
	initial MotionState
	tuning  Tuning
	dt      float32

	translating bool
	rotating    bool

	ticks   uint64
	bounces uint64
	flash   flash

	observers []func(Bounce)
	log       *zap.Logger
}

// NewSimulation creates an idle simulation. A nil logger disables logging.
func NewSimulation(cfg SimConfig, log *zap.Logger) *Simulation {
	if log == nil {
		log = zap.NewNop()
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Simulation{
		motion:  cfg.Motion,
		initial: cfg.Motion,
		tuning:  cfg.Tuning,
		dt:      float32(1.0 / float64(tps)),
		flash:   flash{duration: float32(cfg.FlashSeconds)},
		log:     log,
	}
}

// OnBounce registers fn to be called after every bounce.
func (s *Simulation) OnBounce(fn func(Bounce)) {
	s.observers = append(s.observers, fn)
}

// Mode returns the current definition mode.
func (s *Simulation) Mode() Mode { return s.shapes.Mode() }

// Boundary returns a copy of the boundary vertices.
func (s *Simulation) Boundary() Polygon { return s.shapes.Boundary() }

// Object returns a copy of the object vertices.
func (s *Simulation) Object() Polygon { return s.shapes.Object() }

// Motion returns the current motion state.
func (s *Simulation) Motion() MotionState { return s.motion }

// SetMotion overwrites the current motion state.
func (s *Simulation) SetMotion(m MotionState) {
	m.Angle = wrapAngle(m.Angle)
	s.motion = m
}

// Translating reports whether ticks move the object.
func (s *Simulation) Translating() bool { return s.translating }

// Rotating reports whether ticks spin the object.
func (s *Simulation) Rotating() bool { return s.rotating }

// Ticks returns the number of ticks processed.
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Bounces returns the number of bounces since start.
func (s *Simulation) Bounces() uint64 { return s.bounces }

// FlashLevel returns the bounce highlight intensity in [0, 1].
func (s *Simulation) FlashLevel() float64 { return s.flash.level }

// SetMode switches the definition mode and stops all motion. Entering
// ModeDefiningBoundary clears both shapes and restores the initial motion
// state; entering ModeDefiningObject clears only the object.
func (s *Simulation) SetMode(m Mode) {
	s.shapes.SetMode(m)
	if m == ModeIdle {
		return
	}
	s.translating = false
	s.rotating = false
	if m == ModeDefiningBoundary {
		s.motion = s.initial
	}
	s.log.Debug("mode changed", zap.Stringer("mode", m))
}

// AddPoint appends p to the shape being defined. Returns false in idle mode.
func (s *Simulation) AddPoint(p Point) bool {
	return s.shapes.AddPoint(p)
}

// LoadShapes installs a boundary and object directly, leaving the mode and
// flags untouched.
func (s *Simulation) LoadShapes(boundary, object Polygon) {
	s.shapes.SetShapes(boundary, object)
}

// SetTranslating enables or disables translation.
func (s *Simulation) SetTranslating(on bool) { s.translating = on }

// SetRotating enables or disables rotation.
func (s *Simulation) SetRotating(on bool) { s.rotating = on }

// Tune applies a directional stimulus to the velocity or rotation speed.
func (s *Simulation) Tune(d Direction) {
	s.tuning.Apply(&s.motion, d)
}

// Step advances the simulation by one tick and returns the collision, if any.
func (s *Simulation) Step() Collision {
	s.ticks++
	s.flash.update(s.dt)

	c := Step(&s.motion, s.shapes.boundary.Edges(), s.translating, s.rotating)
	if !c.Hit {
		return c
	}

	s.bounces++
	s.flash.trigger()
	b := Bounce{
		Tick:     s.ticks,
		Edge:     c.Edge,
		Normal:   c.Normal,
		Position: s.motion.Position,
		Velocity: c.After,
	}
	s.log.Debug("bounce",
		zap.Uint64("tick", b.Tick),
		zap.Int("edge", b.Edge),
		zap.Float64("x", b.Position.X),
		zap.Float64("y", b.Position.Y),
	)
	for _, fn := range s.observers {
		fn(b)
	}
	return c
}

// Apply runs the state transition for ev. Redraw events do not change state
// and are ignored here. A 'q' key returns ErrQuit.
func (s *Simulation) Apply(ev Event) error {
	switch ev.Type {
	case EventTick:
		s.Step()
	case EventClick:
		s.AddPoint(ev.Point)
	case EventKey:
		switch ev.Key {
		case 't':
			s.translating = !s.translating
		case 'r':
			s.rotating = !s.rotating
		case 'q':
			return ErrQuit
		}
	case EventDirection:
		s.Tune(ev.Direction)
	case EventMenu:
		switch ev.Command {
		case MenuDefineBoundary:
			s.SetMode(ModeDefiningBoundary)
		case MenuDefineObject:
			s.SetMode(ModeDefiningObject)
		case MenuStartMovement:
			s.translating = true
		}
	}
	return nil
}

// Frame captures everything a renderer needs for one draw.
func (s *Simulation) Frame() Frame {
	object := s.shapes.Object()
	return Frame{
		Boundary:    s.shapes.Boundary(),
		Object:      object,
		Centroid:    object.Centroid(),
		Position:    s.motion.Position,
		Angle:       s.motion.Angle,
		Velocity:    s.motion.Velocity,
		Speed:       s.motion.Speed,
		Mode:        s.shapes.Mode(),
		Translating: s.translating,
		Rotating:    s.rotating,
		Tick:        s.ticks,
		Bounces:     s.bounces,
		Flash:       s.flash.level,
	}
}
