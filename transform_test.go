package bouncy

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPoint(t *testing.T, name string, got, want Point) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, -1, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	got := multiplyAffine(translateMatrix(1, 2), translateMatrix(3, 4))
	assertMatrix(t, "T*T", got, [6]float64{1, 0, 0, 1, 4, 6})
}

// --- invertAffine ---

func TestInvertAffineRoundTrip(t *testing.T) {
	m := multiplyAffine(translateMatrix(5, -3), rotateMatrix(30))
	inv := invertAffine(m)
	assertMatrix(t, "m*inv", multiplyAffine(m, inv), identityTransform)

	x, y := transformPoint(m, 1, 2)
	x, y = transformPoint(inv, x, y)
	assertNear(t, "x", x, 1)
	assertNear(t, "y", y, 2)
}

func TestInvertAffineSingular(t *testing.T) {
	got := invertAffine([6]float64{0, 0, 0, 0, 5, 5})
	assertMatrix(t, "singular", got, identityTransform)
}

// --- rotateMatrix ---

func TestRotateMatrix(t *testing.T) {
	tests := []struct {
		deg  float64
		in   Point
		want Point
	}{
		{0, Pt(1, 0), Pt(1, 0)},
		{90, Pt(1, 0), Pt(0, 1)},
		{180, Pt(1, 0), Pt(-1, 0)},
		{270, Pt(0, 1), Pt(1, 0)},
		{-90, Pt(1, 0), Pt(0, -1)},
	}
	for _, tt := range tests {
		x, y := transformPoint(rotateMatrix(tt.deg), tt.in.X, tt.in.Y)
		assertPoint(t, "rotate", Pt(x, y), tt.want)
	}
}

// --- ObjectTransform ---

func TestObjectTransformZeroIsIdentity(t *testing.T) {
	got := ObjectTransform(Point{}, 0, Pt(0.3, -0.2))
	assertMatrix(t, "zero", got, identityTransform)
}

func TestObjectTransformTranslationOnly(t *testing.T) {
	got := ObjectTransform(Pt(0.5, 0.25), 0, Pt(0.3, -0.2))
	assertMatrix(t, "translate", got, [6]float64{1, 0, 0, 1, 0.5, 0.25})
}

func TestObjectTransformSpinsAboutCentroid(t *testing.T) {
	c := Pt(0.3, -0.2)
	pos := Pt(0.1, 0.1)
	m := ObjectTransform(pos, 90, c)

	// The centroid only moves by pos.
	x, y := transformPoint(m, c.X, c.Y)
	assertPoint(t, "centroid", Pt(x, y), c.Add(pos))

	// A point right of the centroid ends up above it.
	x, y = transformPoint(m, c.X+0.1, c.Y)
	assertPoint(t, "arm", Pt(x, y), c.Add(pos).Add(Pt(0, 0.1)))
}

func TestObjectTransformPreservesDistances(t *testing.T) {
	p := Polygon{Pt(0, 0), Pt(0.2, 0), Pt(0.1, 0.3)}
	placed := p.Transform(ObjectTransform(Pt(-0.4, 0.2), 137, p.Centroid()))
	before := p.Edges()
	after := placed.Edges()
	for i := range before {
		got := after[i].P2.Sub(after[i].P1).Norm()
		want := before[i].P2.Sub(before[i].P1).Norm()
		assertNear(t, "edge length", got, want)
	}
}
