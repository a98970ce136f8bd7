package term

import (
	"math"

	"github.com/phanxgames/bouncy"
)

type cell uint8

const (
	cellEmpty cell = iota
	cellBoundary
	cellObject
	cellMarker
)

// CellToNDC returns the NDC point at the center of cell (x, y) on a w x h
// grid.
func CellToNDC(x, y, w, h int) bouncy.Point {
	vp := bouncy.Viewport{Width: float64(w), Height: float64(h)}
	return vp.ToNDC(float64(x)+0.5, float64(y)+0.5)
}

// NDCToCell returns the cell containing p and whether it lies on the grid.
func NDCToCell(p bouncy.Point, w, h int) (x, y int, ok bool) {
	vp := bouncy.Viewport{Width: float64(w), Height: float64(h)}
	sx, sy := vp.ToScreen(p)
	x, y = int(math.Floor(sx)), int(math.Floor(sy))
	return x, y, x >= 0 && x < w && y >= 0 && y < h
}

// rasterize samples a frame onto a w x h grid, row-major. The object is
// drawn over the boundary; vertex markers appear while a shape is being
// defined.
func rasterize(f bouncy.Frame, w, h int) []cell {
	grid := make([]cell, w*h)
	if w <= 0 || h <= 0 {
		return grid
	}
	set := func(p bouncy.Point, c cell) {
		if x, y, ok := NDCToCell(p, w, h); ok {
			grid[y*w+x] = c
		}
	}

	for _, e := range f.Boundary.Edges() {
		plotLine(e, w, h, func(p bouncy.Point) { set(p, cellBoundary) })
	}

	placed := f.PlacedObject()
	if len(placed) >= 3 {
		fillPolygon(grid, placed, w, h)
	} else {
		for _, p := range placed {
			set(p, cellObject)
		}
	}

	switch f.Mode {
	case bouncy.ModeDefiningBoundary:
		for _, p := range f.Boundary {
			set(p, cellMarker)
		}
	case bouncy.ModeDefiningObject:
		for _, p := range placed {
			set(p, cellMarker)
		}
	}
	return grid
}

// plotLine calls plot for NDC samples along e spaced at most one cell apart.
func plotLine(e bouncy.Edge, w, h int, plot func(bouncy.Point)) {
	dx := (e.P2.X - e.P1.X) / 2 * float64(w)
	dy := (e.P2.Y - e.P1.Y) / 2 * float64(h)
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		plot(e.P1)
		return
	}
	d := e.P2.Sub(e.P1).Mul(1 / float64(steps))
	for i := 0; i <= steps; i++ {
		plot(e.P1.Add(d.Mul(float64(i))))
	}
}

func fillPolygon(grid []cell, poly bouncy.Polygon, w, h int) {
	b := poly.Bounds()
	x0, y0, _ := NDCToCell(bouncy.Pt(b.X, b.Y+b.Height), w, h)
	x1, y1, _ := NDCToCell(bouncy.Pt(b.X+b.Width, b.Y), w, h)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, w-1), min(y1, h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if poly.Contains(CellToNDC(x, y, w, h)) {
				grid[y*w+x] = cellObject
			}
		}
	}
}
