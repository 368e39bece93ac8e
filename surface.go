package tickchart

import (
	"fmt"
	"strconv"
	"strings"
)

// Surface is the drawing target of a Renderer. A surface that is not ready
// yet is skipped without error.
type Surface interface {
	Ready() bool

	ClearRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	Stroke()

	FillText(str string, x, y float64)
	SetFontSize(size float64)
	SetStrokeColor(color string)
	SetFillColor(color string)
}

const (
	OpClearRect   = "clearRect"
	OpStrokeRect  = "strokeRect"
	OpFillRect    = "fillRect"
	OpBeginPath   = "beginPath"
	OpMoveTo      = "moveTo"
	OpLineTo      = "lineTo"
	OpBezierCurve = "bezierCurveTo"
	OpStroke      = "stroke"
	OpFillText    = "fillText"
	OpFontSize    = "fontSize"
	OpStrokeColor = "strokeColor"
	OpFillColor   = "fillColor"
)

type Call struct {
	Op   string
	Args []float64
	Text string
}

func (c Call) String() string {
	var str strings.Builder
	str.WriteString(c.Op)
	for _, a := range c.Args {
		str.WriteByte(' ')
		str.WriteString(strconv.FormatFloat(a, 'f', -1, 64))
	}
	if c.Text != "" {
		fmt.Fprintf(&str, " %q", c.Text)
	}
	return str.String()
}

// Recorder is a Surface keeping the list of calls made on it.
type Recorder struct {
	NotReady bool
	Calls    []Call
}

func (r *Recorder) Ready() bool {
	return r != nil && !r.NotReady
}

func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns the number of recorded calls of the given operation.
func (r *Recorder) Count(op string) int {
	var n int
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) String() string {
	var str strings.Builder
	for _, c := range r.Calls {
		str.WriteString(c.String())
		str.WriteByte('\n')
	}
	return str.String()
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(OpClearRect, "", x, y, w, h)
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.record(OpStrokeRect, "", x, y, w, h)
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.record(OpFillRect, "", x, y, w, h)
}

func (r *Recorder) BeginPath() {
	r.record(OpBeginPath, "")
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record(OpMoveTo, "", x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(OpLineTo, "", x, y)
}

func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record(OpBezierCurve, "", c1x, c1y, c2x, c2y, x, y)
}

func (r *Recorder) Stroke() {
	r.record(OpStroke, "")
}

func (r *Recorder) FillText(str string, x, y float64) {
	r.record(OpFillText, str, x, y)
}

func (r *Recorder) SetFontSize(size float64) {
	r.record(OpFontSize, "", size)
}

func (r *Recorder) SetStrokeColor(color string) {
	r.record(OpStrokeColor, color)
}

func (r *Recorder) SetFillColor(color string) {
	r.record(OpFillColor, color)
}

func (r *Recorder) record(op, text string, args ...float64) {
	r.Calls = append(r.Calls, Call{
		Op:   op,
		Args: args,
		Text: text,
	})
}
