package bouncy

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is the 1x1 source image for untextured fills. Created lazily so
// the package can be imported without a graphics context.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.RGBA())
	}
	return whitePixel
}

// buildPolygonFan generates untextured vertices and fan indices for a convex
// polygon: N vertices, 3*(N-2) indices. Fewer than three points yield nothing.
// Vertex positions are left in the polygon's own space; transformVertices
// places them.
func buildPolygonFan(points Polygon) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 || n > 0xFFFF {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	for i, p := range points {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5, // center of the white pixel
			SrcY:   0.5,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	// Vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	return verts, inds
}

// transformVertices applies an affine transform and color tint to src
// vertices in place.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Color components are premultiplied by the tint's alpha.
func transformVertices(verts []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range verts {
		v := &verts[i]
		ox := float64(v.DstX)
		oy := float64(v.DstY)
		v.DstX = float32(a*ox + c*oy + tx)
		v.DstY = float32(b*ox + d*oy + ty)
		v.ColorR *= cr * ca
		v.ColorG *= cg * ca
		v.ColorB *= cb * ca
		v.ColorA *= ca
	}
}
