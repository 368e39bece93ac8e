package tickchart

type Orientation int

const (
	OrientBottom Orientation = 1 << iota
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft
}

// domainLine returns the two ends of the axis drawn on the given side of the
// area.
func domainLine(orient Orientation, area Rect) (Point, Point) {
	if orient.Vertical() {
		return NewPoint(area.Left(), area.Top()), NewPoint(area.Left(), area.Bottom())
	}
	return NewPoint(area.Left(), area.Bottom()), NewPoint(area.Right(), area.Bottom())
}
