package bouncy

import "math"

// MotionState is the object's rigid-body state. Position and Velocity are in
// NDC units; Velocity is the displacement applied per tick. Angle is in
// degrees and kept in [0, 360). Speed is degrees added to Angle per tick.
type MotionState struct {
	Position Point
	Velocity Point
	Angle    float64
	Speed    float64
}

// Collision describes the boundary edge the object bounced off during a tick.
// Hit is false when the tick moved the object freely.
type Collision struct {
	Hit    bool
	Edge   int   // index into the boundary edge list
	Normal Point // unit normal of the edge
	Before Point // velocity before reflection
	After  Point // velocity after reflection
}

// Reflect mirrors v about the unit normal n: v - 2(v·n)n.
func Reflect(v, n Point) Point {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Rotate advances Angle by Speed and wraps the result into [0, 360).
func (m *MotionState) Rotate() {
	m.Angle = wrapAngle(m.Angle + m.Speed)
}

// Translate moves the object one tick along its velocity. Edges are checked
// in order and the first edge whose bounding box contains the candidate
// position reflects the velocity; later edges are not consulted even when
// they are geometrically closer. Zero-length edges are skipped. Position is
// committed exactly once.
//
// Each box is grown by one tick of travel per axis, so a candidate stepping
// across an axis-aligned edge still lands in its otherwise zero-thick box.
func (m *MotionState) Translate(edges []Edge) Collision {
	next := m.Position.Add(m.Velocity)
	slack := Pt(math.Abs(m.Velocity.X), math.Abs(m.Velocity.Y))

	var c Collision
	for i, e := range edges {
		if !e.BoxContains(next, slack) {
			continue
		}
		n, ok := e.Normal()
		if !ok {
			continue
		}
		c = Collision{
			Hit:    true,
			Edge:   i,
			Normal: n,
			Before: m.Velocity,
			After:  Reflect(m.Velocity, n),
		}
		m.Velocity = c.After
		next = m.Position.Add(m.Velocity)
		break
	}

	m.Position = next
	return c
}

// Step runs one tick of the stepper: rotation first when rotating, then
// translation with collision handling when translating.
func Step(m *MotionState, edges []Edge, translating, rotating bool) Collision {
	if rotating {
		m.Rotate()
	}
	if !translating {
		return Collision{}
	}
	return m.Translate(edges)
}

// wrapAngle maps deg into [0, 360).
func wrapAngle(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to exactly 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}
