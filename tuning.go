package bouncy

// Defaults match the classroom demo this package reproduces.
const (
	DefaultTPS           = 60
	DefaultVelocityX     = 0.02 // NDC units per tick
	DefaultVelocityY     = 0.03 // NDC units per tick
	DefaultRotationSpeed = 2.0  // degrees per tick
	SpeedUpFactor        = 1.1
	SpeedDownFactor      = 0.9
	DefaultFlashSeconds  = 0.25
	DefaultStatsEvery    = 120 // ticks between debug stat lines
)

// DefaultMotion is the motion state the object starts with.
func DefaultMotion() MotionState {
	return MotionState{
		Velocity: Pt(DefaultVelocityX, DefaultVelocityY),
		Speed:    DefaultRotationSpeed,
	}
}

// Tuning holds the multipliers applied by directional input. Up and Right use
// Increase; Down and Left use Decrease.
type Tuning struct {
	Increase float64 `yaml:"increase"`
	Decrease float64 `yaml:"decrease"`
}

// DefaultTuning returns the ±10% multipliers.
func DefaultTuning() Tuning {
	return Tuning{Increase: SpeedUpFactor, Decrease: SpeedDownFactor}
}

// Apply scales the velocity (Up/Down) or the rotation speed (Left/Right).
// Values are not clamped.
func (t Tuning) Apply(m *MotionState, d Direction) {
	switch d {
	case DirectionUp:
		m.ScaleVelocity(t.Increase)
	case DirectionDown:
		m.ScaleVelocity(t.Decrease)
	case DirectionRight:
		m.ScaleSpeed(t.Increase)
	case DirectionLeft:
		m.ScaleSpeed(t.Decrease)
	}
}

// ScaleVelocity multiplies both velocity components by f.
func (m *MotionState) ScaleVelocity(f float64) {
	m.Velocity = m.Velocity.Mul(f)
}

// ScaleSpeed multiplies the rotation speed by f.
func (m *MotionState) ScaleSpeed(f float64) {
	m.Speed *= f
}
