package bouncy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const markerRadius = 3

// Palette selects the colors used by ScreenRenderer.
type Palette struct {
	Background Color   `yaml:"background"`
	Boundary   Color   `yaml:"boundary"`
	Object     Color   `yaml:"object"`
	Flash      Color   `yaml:"flash"`
	LineWidth  float64 `yaml:"line_width"`
}

// DefaultPalette is white boundary, red object on black.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBlack,
		Boundary:   ColorWhite,
		Object:     ColorRed,
		Flash:      Color{1, 0.9, 0.3, 1},
		LineWidth:  1,
	}
}

// ScreenRenderer draws frames onto an ebiten image: the boundary as a stroked
// line loop and the object as a filled polygon under its frame transform.
// Set the target before each Render; Render is a no-op without one.
type ScreenRenderer struct {
	Palette  Palette
	Viewport Viewport

	target *ebiten.Image
}

// NewScreenRenderer creates a renderer with the given palette.
func NewScreenRenderer(p Palette) *ScreenRenderer {
	return &ScreenRenderer{Palette: p}
}

// SetTarget selects the image the next Render draws on and resizes the
// viewport to match it.
func (r *ScreenRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
	if img != nil {
		b := img.Bounds()
		r.Viewport = Viewport{Width: float64(b.Dx()), Height: float64(b.Dy())}
	}
}

// Render draws f onto the current target.
func (r *ScreenRenderer) Render(f Frame) {
	dst := r.target
	if dst == nil {
		return
	}
	dst.Fill(r.Palette.Background.RGBA())

	lw := float32(r.Palette.LineWidth)
	if lw <= 0 {
		lw = 1
	}

	boundary := r.Palette.Boundary.RGBA()
	for _, e := range boundarySegments(f, r.Viewport) {
		vector.StrokeLine(dst, float32(e.P1.X), float32(e.P1.Y), float32(e.P2.X), float32(e.P2.Y), lw, boundary, true)
	}

	tint := r.Palette.Object.Lerp(r.Palette.Flash, f.Flash)
	if verts, inds := buildPolygonFan(f.Object); verts != nil {
		transformVertices(verts, objectScreenMatrix(f, r.Viewport), tint)
		dst.DrawTriangles(verts, inds, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
	} else {
		obj := objectScreenPolygon(f, r.Viewport)
		for _, e := range obj.Edges() {
			vector.StrokeLine(dst, float32(e.P1.X), float32(e.P1.Y), float32(e.P2.X), float32(e.P2.Y), lw, tint.RGBA(), true)
		}
	}

	// Vertex markers for the shape under construction.
	switch f.Mode {
	case ModeDefiningBoundary:
		drawMarkers(dst, f.Boundary.Transform(r.Viewport.Matrix()), r.Palette.Boundary)
	case ModeDefiningObject:
		drawMarkers(dst, objectScreenPolygon(f, r.Viewport), r.Palette.Object)
	}
}

func drawMarkers(dst *ebiten.Image, pts Polygon, c Color) {
	for _, p := range pts {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), markerRadius, c.RGBA(), true)
	}
}

// boundarySegments returns the boundary edges in screen coordinates.
func boundarySegments(f Frame, vp Viewport) []Edge {
	return f.Boundary.Transform(vp.Matrix()).Edges()
}

// objectScreenMatrix composes the object transform with the viewport.
func objectScreenMatrix(f Frame, vp Viewport) [6]float64 {
	return multiplyAffine(vp.Matrix(), f.ObjectTransform())
}

// objectScreenPolygon returns the placed object in screen coordinates.
func objectScreenPolygon(f Frame, vp Viewport) Polygon {
	return f.Object.Transform(objectScreenMatrix(f, vp))
}
