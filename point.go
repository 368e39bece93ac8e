package tickchart

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// Knot is the pixel position of a sample on the chart.
type Knot struct {
	Point
	Sample

	ValueLabel string
	DateLabel  string
}

func knotPoints(knots []Knot) []Point {
	all := make([]Point, len(knots))
	for i := range knots {
		all[i] = knots[i].Point
	}
	return all
}
