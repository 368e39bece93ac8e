// Package imgdraw implements a tickchart.Surface drawing on a raster image.
package imgdraw

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font/gofont/goregular"
)

const background = "#ffffff"

// Canvas wraps a gg context. Unlike an HTML canvas, the rectangle operations
// and Stroke consume the current path.
type Canvas struct {
	dc   *gg.Context
	font *truetype.Font

	stroke color.Color
	fill   color.Color
}

func New(width, height int) (*Canvas, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("imgdraw: parse font: %w", err)
	}
	c := Canvas{
		dc:     gg.NewContext(width, height),
		font:   f,
		stroke: color.Black,
		fill:   color.Black,
	}
	c.SetFontSize(12)
	c.ClearRect(0, 0, float64(width), float64(height))
	return &c, nil
}

func (c *Canvas) Ready() bool {
	return c != nil && c.dc != nil && c.dc.Width() > 0 && c.dc.Height() > 0
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.dc.ClearPath()
	c.dc.SetColor(ParseColor(background))
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.dc.ClearPath()
	c.dc.SetColor(c.stroke)
	c.dc.SetLineWidth(1)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Stroke()
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	c.dc.ClearPath()
	c.dc.SetColor(c.fill)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
}

func (c *Canvas) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

func (c *Canvas) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

func (c *Canvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (c *Canvas) Stroke() {
	c.dc.SetColor(c.stroke)
	c.dc.SetLineWidth(1)
	c.dc.Stroke()
}

func (c *Canvas) FillText(str string, x, y float64) {
	c.dc.SetColor(c.fill)
	c.dc.DrawString(str, x, y)
}

func (c *Canvas) SetFontSize(size float64) {
	face := truetype.NewFace(c.font, &truetype.Options{Size: size})
	c.dc.SetFontFace(face)
}

func (c *Canvas) SetStrokeColor(str string) {
	c.stroke = ParseColor(str)
}

func (c *Canvas) SetFillColor(str string) {
	c.fill = ParseColor(str)
}

// ParseColor reads an hexadecimal color, with or without its leading #.
func ParseColor(str string) color.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(str, "#"))
}
