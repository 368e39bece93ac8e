// Package svgdraw implements a tickchart.Surface building an SVG document.
package svgdraw

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

const (
	defaultColor = "black"
	background   = "white"
)

type Canvas struct {
	Width  float64
	Height float64

	elems []svg.Element

	path     svg.Path
	commands int

	stroke string
	fill   string
	size   float64
}

func New(width, height float64) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		stroke: defaultColor,
		fill:   defaultColor,
		size:   12,
	}
}

// Ready reports whether the canvas has been given a size.
func (c *Canvas) Ready() bool {
	return c != nil && c.Width > 0 && c.Height > 0
}

func (c *Canvas) Len() int {
	return len(c.elems)
}

// Render writes the SVG document to w.
func (c *Canvas) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	for _, e := range c.elems {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// ClearRect drops everything drawn so far when the rectangle covers the
// whole canvas, otherwise it paints the background over the rectangle.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= c.Width && y+h >= c.Height {
		c.elems = c.elems[:0]
		return
	}
	c.elems = append(c.elems, c.rect(x, y, w, h, background))
}

func (c *Canvas) StrokeRect(x, y, w, h float64) {
	pat := getBasePath(c.stroke)
	pat.AbsMoveTo(svg.NewPos(x, y))
	pat.AbsLineTo(svg.NewPos(x+w, y))
	pat.AbsLineTo(svg.NewPos(x+w, y+h))
	pat.AbsLineTo(svg.NewPos(x, y+h))
	pat.ClosePath()
	c.elems = append(c.elems, pat.AsElement())
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.elems = append(c.elems, c.rect(x, y, w, h, c.fill))
}

func (c *Canvas) BeginPath() {
	c.path = svg.Path{}
	c.commands = 0
}

func (c *Canvas) MoveTo(x, y float64) {
	c.path.AbsMoveTo(svg.NewPos(x, y))
	c.commands++
}

func (c *Canvas) LineTo(x, y float64) {
	c.path.AbsLineTo(svg.NewPos(x, y))
	c.commands++
}

func (c *Canvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	var (
		pos   = svg.NewPos(x, y)
		ctrl1 = svg.NewPos(c1x, c1y)
		ctrl2 = svg.NewPos(c2x, c2y)
	)
	c.path.AbsCubicCurve(pos, ctrl1, ctrl2)
	c.commands++
}

// Stroke adds the current path to the document. The path is kept until the
// next call to BeginPath.
func (c *Canvas) Stroke() {
	if c.commands == 0 {
		return
	}
	pat := c.path
	pat.Stroke = svg.NewStroke(c.stroke, 1)
	pat.Fill = svg.NewFill("none")
	c.elems = append(c.elems, pat.AsElement())
}

func (c *Canvas) FillText(str string, x, y float64) {
	g := svg.NewGroup(svg.WithFill(svg.NewFill(c.fill)))

	txt := svg.NewText(str)
	txt.Pos = svg.NewPos(x, y)
	txt.Font = svg.NewFont(c.size)
	g.Append(txt.AsElement())

	c.elems = append(c.elems, g.AsElement())
}

func (c *Canvas) SetFontSize(size float64) {
	c.size = size
}

func (c *Canvas) SetStrokeColor(color string) {
	c.stroke = color
}

func (c *Canvas) SetFillColor(color string) {
	c.fill = color
}

func (c *Canvas) rect(x, y, w, h float64, fill string) svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(x, y)
	el.Dim = svg.NewDim(w, h)
	el.Fill = svg.NewFill(fill)
	return el.AsElement()
}

func getBasePath(stroke string) svg.Path {
	var pat svg.Path
	pat.Stroke = svg.NewStroke(stroke, 1)
	pat.Fill = svg.NewFill("none")
	return pat
}
