package bouncy

// Viewport maps normalized device coordinates onto a screen of Width x Height
// pixels: NDC (-1, 1) is the top-left corner and (1, -1) the bottom-right.
type Viewport struct {
	Width, Height float64
}

// Matrix returns the affine matrix taking NDC to screen pixels.
func (v Viewport) Matrix() [6]float64 {
	hw, hh := v.Width/2, v.Height/2
	return [6]float64{hw, 0, 0, -hh, hw, hh}
}

// ToScreen converts an NDC point to screen coordinates.
func (v Viewport) ToScreen(p Point) (sx, sy float64) {
	return transformPoint(v.Matrix(), p.X, p.Y)
}

// ToNDC converts screen coordinates to an NDC point. A degenerate viewport
// maps everything to the origin.
func (v Viewport) ToNDC(sx, sy float64) Point {
	if v.Width <= 0 || v.Height <= 0 {
		return Point{}
	}
	x, y := transformPoint(invertAffine(v.Matrix()), sx, sy)
	return Point{X: x, Y: y}
}

// Contains reports whether the screen point lies inside the viewport.
func (v Viewport) Contains(sx, sy float64) bool {
	return Rect{Width: v.Width, Height: v.Height}.Contains(sx, sy)
}
