package tickchart

import (
	"log/slog"
	"math"

	"github.com/midbel/slices"
)

// Renderer draws a Layout on a Surface. The zero value uses the default
// palette and the default logger.
type Renderer struct {
	Palette Palette
	Logger  *slog.Logger
}

func Render(s Surface, lay Layout) bool {
	var r Renderer
	return r.Render(s, lay)
}

// Render draws the whole chart, starting by clearing the frame. It returns
// false without drawing anything when the surface is not ready.
func (r Renderer) Render(s Surface, lay Layout) bool {
	if r.Palette.isZero() {
		r.Palette = DefaultPalette()
	}
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
	if s == nil || !s.Ready() {
		r.Logger.Debug("surface not ready, render skipped")
		return false
	}
	s.ClearRect(0, 0, lay.Frame.Width, lay.Frame.Height)

	s.SetStrokeColor(r.Palette.Border)
	s.StrokeRect(lay.Area.X, lay.Area.Y, lay.Area.W, lay.Area.H)

	r.drawGrid(s, lay)
	r.drawReferences(s, lay)
	r.drawCurve(s, lay)
	r.drawPoints(s, lay)
	r.drawAxis(s, lay)
	return true
}

func (r Renderer) drawGrid(s Surface, lay Layout) {
	var (
		style = lay.Options.gridStyle()
		left  = lay.Area.Left()
		right = lay.Area.Right()
	)
	s.SetFontSize(FontSize)
	s.SetFillColor(r.Palette.Text)
	for _, g := range lay.Gridlines {
		s.SetStrokeColor(r.Palette.Grid)
		drawLine(s, NewPoint(left, g.Y), NewPoint(right, g.Y), style)
		s.FillText(g.Label, g.LabelX, g.Y+FontSize/3)
	}
}

func (r Renderer) drawReferences(s Surface, lay Layout) {
	style := lay.Options.gridStyle()
	s.SetStrokeColor(r.Palette.Grid)
	for _, k := range lay.Knots {
		drawLine(s, NewPoint(k.X, lay.Area.Top()), NewPoint(k.X, lay.Baseline()), style)
	}
}

func (r Renderer) drawCurve(s Surface, lay Layout) {
	points := lay.Points()
	if len(points) < 2 {
		return
	}
	s.SetStrokeColor(r.Palette.Curve)
	s.BeginPath()
	fst := slices.Fst(points)
	s.MoveTo(fst.X, fst.Y)
	if lay.Options.SmoothedCurve {
		segments, err := FitSpline(points)
		if err == nil {
			for _, g := range segments {
				s.BezierCurveTo(g.C1.X, g.C1.Y, g.C2.X, g.C2.Y, g.P1.X, g.P1.Y)
			}
			s.Stroke()
			return
		}
		r.Logger.Debug("spline fit failed, drawing polyline", "err", err)
	}
	for _, pt := range slices.Rest(points) {
		s.LineTo(pt.X, pt.Y)
	}
	s.Stroke()
}

func (r Renderer) drawPoints(s Surface, lay Layout) {
	for _, k := range lay.Knots {
		m := marker(k.Point)
		s.SetFillColor(r.Palette.Marker)
		s.FillRect(m.X, m.Y, m.W, m.H)

		if !lay.Options.ShowValueLabels && !lay.Options.ShowAxisLabels {
			continue
		}
		s.SetFillColor(r.Palette.Text)
		if lay.Options.ShowValueLabels {
			x := k.X - labelWidth(k.ValueLabel)/2
			s.FillText(k.ValueLabel, x, m.Y-2)
		}
		if lay.Options.ShowAxisLabels {
			x := k.X - labelWidth(k.DateLabel)/2
			s.FillText(k.DateLabel, x, lay.Baseline()+FontSize+2)
		}
	}
}

func (r Renderer) drawAxis(s Surface, lay Layout) {
	s.SetStrokeColor(r.Palette.Axis)
	for _, o := range []Orientation{OrientLeft, OrientBottom} {
		fst, lst := domainLine(o, lay.Area)
		drawLine(s, fst, lst, StyleStraight)
	}
}

// drawLine strokes a segment from a to b, either in one go or as a sequence
// of short dashes.
func drawLine(s Surface, a, b Point, style LineStyle) {
	if style != StyleDashed {
		s.BeginPath()
		s.MoveTo(a.X, a.Y)
		s.LineTo(b.X, b.Y)
		s.Stroke()
		return
	}
	var (
		dx     = b.X - a.X
		dy     = b.Y - a.Y
		length = math.Hypot(dx, dy)
	)
	if length == 0 {
		return
	}
	dx, dy = dx/length, dy/length
	for t := 0.0; t < length-dashLength; t += dashLength + dashGap {
		s.BeginPath()
		s.MoveTo(a.X+dx*t, a.Y+dy*t)
		s.LineTo(a.X+dx*(t+dashLength), a.Y+dy*(t+dashLength))
		s.Stroke()
	}
}
