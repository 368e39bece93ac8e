package tickchart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlPointsTwoKnots(t *testing.T) {
	p1, p2, err := ControlPoints([]float64{0, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, p1)
	assert.Equal(t, []float64{2}, p2)
}

func TestControlPointsSymmetric(t *testing.T) {
	p1, p2, err := ControlPoints([]float64{0, 1, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 1}, p1, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0.5}, p2, 1e-12)
}

func TestControlPointsLinear(t *testing.T) {
	p1, p2, err := ControlPoints([]float64{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.0 / 3, 4.0 / 3, 7.0 / 3}, p1, 1e-9)
	assert.InDeltaSlice(t, []float64{2.0 / 3, 5.0 / 3, 8.0 / 3}, p2, 1e-9)
}

func TestControlPointsInsufficient(t *testing.T) {
	for _, k := range [][]float64{nil, {4}} {
		_, _, err := ControlPoints(k)
		require.ErrorIs(t, err, ErrInsufficientKnots)
	}
	_, err := FitSpline([]Point{NewPoint(1, 1)})
	require.ErrorIs(t, err, ErrInsufficientKnots)
}

func TestFitSplineInterpolates(t *testing.T) {
	knots := []Point{
		NewPoint(50, 200),
		NewPoint(80, 85),
		NewPoint(110, 100),
		NewPoint(140, 197),
		NewPoint(170, 36.5625),
		NewPoint(200, 235),
		NewPoint(230, 278),
	}
	segments, err := FitSpline(knots)
	require.NoError(t, err)
	require.Len(t, segments, len(knots)-1)
	for i, g := range segments {
		assert.Equal(t, knots[i], g.At(0))
		assert.Equal(t, knots[i+1], g.At(1))
		assert.Equal(t, knots[i], g.P0)
		assert.Equal(t, knots[i+1], g.P1)
	}
	// tangents are continuous at interior knots
	for i := 1; i < len(segments); i++ {
		var (
			prev = segments[i-1]
			next = segments[i]
		)
		assert.InDelta(t, prev.P1.X-prev.C2.X, next.C1.X-next.P0.X, 1e-9)
		assert.InDelta(t, prev.P1.Y-prev.C2.Y, next.C1.Y-next.P0.Y, 1e-9)
	}
}

func TestSegmentAt(t *testing.T) {
	g := Segment{
		P0: NewPoint(0, 0),
		C1: NewPoint(1, 3),
		C2: NewPoint(2, 3),
		P1: NewPoint(3, 0),
	}
	mid := g.At(0.5)
	assert.InDelta(t, 1.5, mid.X, 1e-12)
	assert.InDelta(t, 2.25, mid.Y, 1e-12)
}
