package bouncy

import "testing"

func TestInjectPolygonScenario(t *testing.T) {
	l := NewLoop(newTestSim(), nil, nil)
	l.InjectMenu(MenuDefineBoundary)
	l.InjectPolygon(unitSquare)
	l.InjectMenu(MenuDefineObject)
	l.InjectPolygon(Polygon{Pt(-0.1, -0.1), Pt(0.1, -0.1), Pt(0, 0.1)})
	l.InjectMenu(MenuStartMovement)
	l.InjectKey('r')
	l.InjectTicks(10)

	if l.Pending() != 1+4+1+3+1+1+10 {
		t.Fatalf("pending = %d", l.Pending())
	}
	if err := l.Drain(); err != nil {
		t.Fatal(err)
	}

	sim := l.Simulation()
	if len(sim.Boundary()) != 4 || len(sim.Object()) != 3 {
		t.Fatalf("boundary %d object %d", len(sim.Boundary()), len(sim.Object()))
	}
	if !sim.Translating() || !sim.Rotating() {
		t.Error("object should be translating and rotating")
	}
	assertPoint(t, "position", sim.Motion().Position, Pt(10*DefaultVelocityX, 10*DefaultVelocityY))
	assertNear(t, "angle", sim.Motion().Angle, 10*DefaultRotationSpeed)
}

func TestInjectDirection(t *testing.T) {
	l := NewLoop(newTestSim(), nil, nil)
	l.InjectDirection(DirectionRight)
	l.InjectDirection(DirectionRight)
	if err := l.Drain(); err != nil {
		t.Fatal(err)
	}
	assertNear(t, "speed", l.Simulation().Motion().Speed, DefaultRotationSpeed*1.21)
}

func TestInjectTicksZero(t *testing.T) {
	l := NewLoop(newTestSim(), nil, nil)
	l.InjectTicks(0)
	l.InjectTicks(-3)
	if l.Pending() != 0 {
		t.Errorf("pending = %d", l.Pending())
	}
}
