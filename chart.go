package tickchart

const OffsetX = 40.0

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

var DefaultPadding = Padding{
	Top:    20,
	Right:  10,
	Bottom: 15,
	Left:   50,
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Frame is the size of the drawing surface and the margins kept around the
// plotting area.
type Frame struct {
	Width  float64
	Height float64

	Padding
}

func NewFrame(width, height float64) Frame {
	return Frame{
		Width:   width,
		Height:  height,
		Padding: DefaultPadding,
	}
}

func (f Frame) DrawingWidth() float64 {
	return max0(f.Width - f.Padding.Horizontal())
}

func (f Frame) DrawingHeight() float64 {
	return max0(f.Height - f.Padding.Vertical())
}

// Area returns the plotting rectangle: the frame minus its padding.
func (f Frame) Area() Rect {
	return Rect{
		X: f.Padding.Left,
		Y: f.Padding.Top,
		W: f.DrawingWidth(),
		H: f.DrawingHeight(),
	}
}

type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Left() float64 {
	return r.X
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Top() float64 {
	return r.Y
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func max0(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
