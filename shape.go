package bouncy

// ShapeBuilder collects the boundary and object vertices from clicks. The
// current Mode decides which sequence a click extends.
type ShapeBuilder struct {
	mode     Mode
	boundary Polygon
	object   Polygon
}

// Mode returns the current definition mode.
func (b *ShapeBuilder) Mode() Mode {
	return b.mode
}

// SetMode switches the definition mode. Entering ModeDefiningBoundary clears
// both shapes; entering ModeDefiningObject clears only the object. Switching
// to ModeIdle keeps both.
func (b *ShapeBuilder) SetMode(m Mode) {
	b.mode = m
	switch m {
	case ModeDefiningBoundary:
		b.boundary = b.boundary[:0]
		b.object = b.object[:0]
	case ModeDefiningObject:
		b.object = b.object[:0]
	}
}

// AddPoint appends p to the sequence selected by the current mode and
// reports whether it was stored. Idle mode drops the point.
func (b *ShapeBuilder) AddPoint(p Point) bool {
	switch b.mode {
	case ModeDefiningBoundary:
		b.boundary = append(b.boundary, p)
	case ModeDefiningObject:
		b.object = append(b.object, p)
	default:
		return false
	}
	return true
}

// Boundary returns a copy of the boundary vertices.
func (b *ShapeBuilder) Boundary() Polygon {
	return b.boundary.Clone()
}

// Object returns a copy of the object vertices.
func (b *ShapeBuilder) Object() Polygon {
	return b.object.Clone()
}

// SetShapes replaces both sequences without touching the mode. Used to
// preload scenarios.
func (b *ShapeBuilder) SetShapes(boundary, object Polygon) {
	b.boundary = boundary.Clone()
	b.object = object.Clone()
}
