package bouncy

import (
	"image/color"

	"github.com/pkg/errors"
)

// ErrQuit is returned by Dispatch when the user asks to leave the demo.
// Front ends translate it into their own shutdown signal.
var ErrQuit = errors.New("bouncy: quit requested")

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

var (
	// ColorWhite is the boundary color used by the original demo.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorRed is the object fill color used by the original demo.
	ColorRed = Color{1, 0, 0, 1}
	// ColorBlack is the default clear color.
	ColorBlack = Color{0, 0, 0, 1}
)

// Lerp blends c toward to by t, where t=0 yields c and t=1 yields to.
func (c Color) Lerp(to Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// RGBA converts c to a premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. For screen-space rects the origin is the
// top-left with Y increasing downward; NDC rects use Y up.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Mode selects where clicks append points.
type Mode uint8

const (
	ModeIdle             Mode = iota // clicks are ignored
	ModeDefiningBoundary             // clicks append to the boundary
	ModeDefiningObject               // clicks append to the object
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDefiningBoundary:
		return "defining-boundary"
	case ModeDefiningObject:
		return "defining-object"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button, opens the menu
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
