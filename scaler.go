package tickchart

import (
	"math"
	"strconv"
)

const MaxTicks = 10

// maxTickCount bounds TickCount when the bounds come close to the largest
// float64.
const maxTickCount = 4 * MaxTicks

// Scale holds the bounds and spacing of a value axis. NiceMin and NiceMax
// are always integer multiples of TickSpacing, unless they had to be clamped
// to the float64 range.
type Scale struct {
	NiceMin     float64
	NiceMax     float64
	TickSpacing float64
	TickCount   int
}

// NiceScale picks round bounds and tick spacing covering [min, max].
//
// A zero width range (flat or single point series) has no magnitude to
// derive a spacing from: the spacing falls back to 1 and both bounds collapse
// on the value. Non finite bounds give the same scale as NiceScale(0, 0).
func NiceScale(min, max float64) Scale {
	if max < min {
		min, max = max, min
	}
	if !isFinite(min) || !isFinite(max) {
		return Scale{TickSpacing: 1, TickCount: 1}
	}
	spacing := 1.0
	if diff := max - min; diff > 0 {
		step := max/(MaxTicks-1) - min/(MaxTicks-1)
		if rg := niceNum(diff, false); isFinite(diff) && isFinite(rg) {
			step = rg / (MaxTicks - 1)
		}
		spacing = niceNum(step, true)
		if spacing <= 0 || !isFinite(spacing) {
			spacing = 1
		}
	}
	s := Scale{
		NiceMin:     math.Floor(min/spacing) * spacing,
		NiceMax:     math.Ceil(max/spacing) * spacing,
		TickSpacing: spacing,
	}
	// floor/ceil of a rounded quotient can land one step inside the range
	if s.NiceMin > min {
		s.NiceMin -= spacing
	}
	if s.NiceMax < max {
		s.NiceMax += spacing
	}
	s.NiceMin = math.Max(s.NiceMin, -math.MaxFloat64)
	s.NiceMax = math.Min(s.NiceMax, math.MaxFloat64)

	count := math.Round(s.NiceMax/spacing-s.NiceMin/spacing) + 1
	if !isFinite(count) || count > maxTickCount {
		count = maxTickCount
	}
	s.TickCount = int(count)
	return s
}

func (s Scale) Range() float64 {
	return s.NiceMax - s.NiceMin
}

// Ticks returns the tick values from NiceMin to NiceMax inclusive.
func (s Scale) Ticks() []float64 {
	var (
		all  = make([]float64, 0, s.TickCount)
		prec = s.precision()
	)
	for i := 0; i < s.TickCount; i++ {
		v := roundTo(s.NiceMin+float64(i)*s.TickSpacing, prec)
		if v > s.NiceMax {
			v = s.NiceMax
		}
		all = append(all, v)
	}
	return all
}

// Format returns the label of a tick value, using as many decimals as the
// spacing needs.
func (s Scale) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', s.precision(), 64)
}

func (s Scale) precision() int {
	if s.TickSpacing <= 0 || s.TickSpacing >= 1 {
		return 0
	}
	return int(math.Ceil(-math.Log10(s.TickSpacing) - 1e-9))
}

func niceNum(rg float64, round bool) float64 {
	if rg <= 0 || math.IsNaN(rg) || math.IsInf(rg, 0) {
		return 1
	}
	var (
		exponent = math.Floor(math.Log10(rg))
		fraction = rg / math.Pow(10, exponent)
		nice     float64
	)
	if round {
		switch {
		case fraction < 1.5:
			nice = 1
		case fraction < 3:
			nice = 2
		case fraction < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case fraction <= 1:
			nice = 1
		case fraction <= 2:
			nice = 2
		case fraction <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exponent)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func roundTo(v float64, prec int) float64 {
	if prec <= 0 {
		return math.Round(v)
	}
	p := math.Pow(10, float64(prec))
	return math.Round(v*p) / p
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}
