package tickchart

import (
	"errors"
)

var ErrInsufficientKnots = errors.New("spline: at least two knots are needed")

// Segment is a cubic Bezier curve between two consecutive knots.
type Segment struct {
	P0 Point
	C1 Point
	C2 Point
	P1 Point
}

// At evaluates the segment at t in [0, 1]. At(0) is P0 and At(1) is P1.
func (s Segment) At(t float64) Point {
	var (
		mt = 1 - t
		a  = mt * mt * mt
		b  = 3 * mt * mt * t
		c  = 3 * mt * t * t
		d  = t * t * t
	)
	return Point{
		X: a*s.P0.X + b*s.C1.X + c*s.C2.X + d*s.P1.X,
		Y: a*s.P0.Y + b*s.C1.Y + c*s.C2.Y + d*s.P1.Y,
	}
}

// FitSpline returns the Bezier segments of the natural cubic spline going
// through all the knots.
func FitSpline(knots []Point) ([]Segment, error) {
	if len(knots) < 2 {
		return nil, ErrInsufficientKnots
	}
	var (
		xs = make([]float64, len(knots))
		ys = make([]float64, len(knots))
	)
	for i := range knots {
		xs[i] = knots[i].X
		ys[i] = knots[i].Y
	}
	x1, x2, err := ControlPoints(xs)
	if err != nil {
		return nil, err
	}
	y1, y2, err := ControlPoints(ys)
	if err != nil {
		return nil, err
	}
	segments := make([]Segment, len(knots)-1)
	for i := range segments {
		segments[i] = Segment{
			P0: knots[i],
			C1: NewPoint(x1[i], y1[i]),
			C2: NewPoint(x2[i], y2[i]),
			P1: knots[i+1],
		}
	}
	return segments, nil
}

// ControlPoints computes the first and second control point coordinates of
// each segment of the natural cubic spline through k.
//
// The first control points solve a tridiagonal system with the Thomas
// algorithm. The system is diagonally dominant so no pivot is ever zero.
func ControlPoints(k []float64) ([]float64, []float64, error) {
	n := len(k) - 1
	if n < 1 {
		return nil, nil, ErrInsufficientKnots
	}
	var (
		p1 = make([]float64, n)
		p2 = make([]float64, n)
	)
	if n == 1 {
		p1[0] = (2*k[0] + k[1]) / 3
		p2[0] = (k[0] + 2*k[1]) / 3
		return p1, p2, nil
	}
	var (
		a = make([]float64, n)
		b = make([]float64, n)
		c = make([]float64, n)
		r = make([]float64, n)
	)
	b[0], c[0] = 2, 1
	r[0] = k[0] + 2*k[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], c[i] = 1, 4, 1
		r[i] = 4*k[i] + 2*k[i+1]
	}
	a[n-1], b[n-1], c[n-1] = 2, 7, 0
	r[n-1] = 8*k[n-1] + k[n]

	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m * c[i-1]
		r[i] -= m * r[i-1]
	}
	p1[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		p1[i] = (r[i] - c[i]*p1[i+1]) / b[i]
	}

	for i := 0; i < n-1; i++ {
		p2[i] = 2*k[i+1] - p1[i+1]
	}
	p2[n-1] = 0.5 * (k[n] + p1[n-1])
	return p1, p2, nil
}
