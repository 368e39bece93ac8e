package tickchart

import (
	"strconv"
)

// Gridline is an horizontal line of the chart placed at a tick of the value
// scale.
type Gridline struct {
	Value  float64
	Y      float64
	Label  string
	LabelX float64
}

// Layout is the pixel geometry of a chart. It only depends on the arguments
// given to ComputeLayout.
type Layout struct {
	Frame   Frame
	Area    Rect
	Options Options
	Scale   Scale

	Knots     []Knot
	Gridlines []Gridline
}

// ComputeLayout sorts the series by date and maps it in the area of the
// frame. The value scale always starts at 0.
func ComputeLayout(series Series, frame Frame, opts Options) Layout {
	var (
		sorted = series.Sorted()
		scale  = NiceScale(0, sorted.Max())
		area   = frame.Area()
		xs     = indexScaler{
			Range: NewRange(area.Left(), area.Right()),
			count: len(sorted),
		}
		ys = valueScaler{
			Range: NewRange(area.Top(), area.Bottom()),
			max:   scale.NiceMax,
		}
	)
	lay := Layout{
		Frame:   frame,
		Area:    area,
		Options: opts,
		Scale:   scale,
		Knots:   make([]Knot, 0, len(sorted)),
	}
	for i, s := range sorted {
		k := Knot{
			Point:      NewPoint(xs.Scale(i), ys.Scale(s.Value)),
			Sample:     s,
			ValueLabel: strconv.FormatFloat(s.Value, 'f', -1, 64),
			DateLabel:  s.Label(),
		}
		lay.Knots = append(lay.Knots, k)
	}
	for _, v := range scale.Ticks() {
		g := Gridline{
			Value: v,
			Y:     ys.Scale(v),
			Label: scale.Format(v),
		}
		g.LabelX = OffsetX - labelWidth(g.Label)
		lay.Gridlines = append(lay.Gridlines, g)
	}
	return lay
}

func (l Layout) Baseline() float64 {
	return l.Area.Bottom()
}

func (l Layout) Points() []Point {
	return knotPoints(l.Knots)
}

// labelWidth estimates the width in pixels of a label drawn with FontSize.
func labelWidth(str string) float64 {
	return float64(len(str)) * FontSize / 2
}

type indexScaler struct {
	Range
	count int
}

func (s indexScaler) Scale(i int) float64 {
	if s.count <= 1 {
		return s.F
	}
	return float64(i)*s.Len()/float64(s.count-1) + s.F
}

type valueScaler struct {
	Range
	max float64
}

func (s valueScaler) Scale(v float64) float64 {
	if s.max == 0 {
		return s.T
	}
	h := s.Len()
	if p := h * v; isFinite(p) {
		return h - p/s.max + s.F
	}
	return h - h*(v/s.max) + s.F
}
