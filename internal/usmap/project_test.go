package usmap

import (
	"math"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestForward_Origin(t *testing.T) {
	p := DefaultProjection()
	x, y := p.Forward(-100, 45)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
}

func TestForward_EastOfOriginIsPositiveX(t *testing.T) {
	p := DefaultProjection()
	x, _ := p.Forward(-80, 45)
	assert.Greater(t, x, 0.0)

	x, _ = p.Forward(-120, 45)
	assert.Less(t, x, 0.0)
}

func TestForward_NorthOfOriginIsPositiveY(t *testing.T) {
	p := DefaultProjection()
	_, y := p.Forward(-100, 50)
	assert.Greater(t, y, 0.0)

	_, y = p.Forward(-100, 30)
	assert.Less(t, y, 0.0)
}

func TestProjectFeature_PreservesRingClosure(t *testing.T) {
	f := squareFeature("01", "AL", "Alabama", -86, 32, 2)
	require.NoError(t, DefaultProjection().ProjectFeature(f))

	flat := f.Geom.FlatCoords()
	n := len(flat)
	assert.Equal(t, flat[0], flat[n-2], "ring start x must equal ring end x")
	assert.Equal(t, flat[1], flat[n-1], "ring start y must equal ring end y")
}

func TestProjectFeature_AntipodeFails(t *testing.T) {
	// The antipode of the projection origin cannot be projected. A
	// degenerate ring pinned exactly on it hits the singularity.
	f := squareFeature("01", "AL", "Alabama", 80, -45, 0)

	err := DefaultProjection().ProjectFeature(f)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrProjection))
}

func TestTag(t *testing.T) {
	assert.Equal(t, "laea lat_0=45 lon_0=-100 R=6.370997e+06", DefaultProjection().Tag())
}

// squareFeature builds a single-ring square feature centered at (cx, cy)
// with the given half-width.
func squareFeature(fips, postal, name string, cx, cy, half float64) *Feature {
	ring := geom.NewLinearRingFlat(geom.XY, []float64{
		cx - half, cy - half,
		cx + half, cy - half,
		cx + half, cy + half,
		cx - half, cy + half,
		cx - half, cy - half,
	})
	poly := geom.NewPolygon(geom.XY)
	if err := poly.Push(ring); err != nil {
		panic(err)
	}
	mp := geom.NewMultiPolygon(geom.XY)
	if err := mp.Push(poly); err != nil {
		panic(err)
	}
	return &Feature{FIPS: fips, Postal: postal, Name: name, Geom: mp}
}

func centroidOf(f *Feature) (float64, float64) {
	b := f.Geom.Bounds()
	return (b.Min(0) + b.Max(0)) / 2, (b.Min(1) + b.Max(1)) / 2
}

func dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
