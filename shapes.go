package tickchart

const MarkerSize = 5.0

// marker returns the square of side MarkerSize centred on pos.
func marker(pos Point) Rect {
	half := MarkerSize / 2
	return Rect{
		X: pos.X - half,
		Y: pos.Y - half,
		W: MarkerSize,
		H: MarkerSize,
	}
}
