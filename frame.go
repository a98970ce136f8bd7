package bouncy

// Frame is a read-only snapshot of the simulation handed to a Renderer.
// Slices are copies and may be kept by the renderer.
type Frame struct {
	Boundary Polygon
	Object   Polygon
	Centroid Point
	Position Point
	Angle    float64
	Velocity Point
	Speed    float64

	Mode        Mode
	Translating bool
	Rotating    bool
	Tick        uint64
	Bounces     uint64
	Flash       float64 // bounce highlight in [0, 1]
}

// ObjectTransform returns the transform placing the object for this frame.
func (f Frame) ObjectTransform() [6]float64 {
	return ObjectTransform(f.Position, f.Angle, f.Centroid)
}

// PlacedObject returns the object's vertices after the frame's transform.
func (f Frame) PlacedObject() Polygon {
	return f.Object.Transform(f.ObjectTransform())
}

// Renderer draws frames. Implementations own their output surface.
type Renderer interface {
	Render(f Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Frame)

// Render calls fn(f).
func (fn RendererFunc) Render(f Frame) { fn(f) }
