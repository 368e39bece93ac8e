package tickchart

import (
	"sort"
	"time"
)

// Sample is one value of a series. When the date can not be parsed, Time is
// the zero time and Parsed is false: the raw Date is then used for ordering
// and labels.
type Sample struct {
	Date   string
	Value  float64
	Time   time.Time
	Parsed bool
}

func NewSample(date string, value float64) Sample {
	s := Sample{
		Date:  date,
		Value: value,
	}
	s.Time, s.Parsed = ParseDate(date)
	return s
}

func (s Sample) Label() string {
	if !s.Parsed {
		return s.Date
	}
	return s.Time.Format(dateLabelFormat)
}

func (s Sample) normalize() Sample {
	if !s.Parsed {
		s.Time, s.Parsed = ParseDate(s.Date)
	}
	return s
}

func (s Sample) before(other Sample) bool {
	switch {
	case s.Parsed && other.Parsed:
		return s.Time.Before(other.Time)
	case s.Parsed != other.Parsed:
		return s.Parsed
	default:
		return s.Date < other.Date
	}
}

type Series []Sample

// Sorted returns a copy of the series ordered by date. Samples with the same
// date keep their relative order.
func (s Series) Sorted() Series {
	x := make(Series, len(s))
	for i := range s {
		x[i] = s[i].normalize()
	}
	sort.SliceStable(x, func(i, j int) bool {
		return x[i].before(x[j])
	})
	return x
}

// Max returns the largest value of the series, never less than 0.
func (s Series) Max() float64 {
	var max float64
	for i := range s {
		if s[i].Value > max {
			max = s[i].Value
		}
	}
	return max
}
