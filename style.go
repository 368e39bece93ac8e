package tickchart

type LineStyle int

const (
	StyleStraight LineStyle = iota
	StyleDashed
)

const (
	FontSize   = 10.0
	dashLength = 3.0
	dashGap    = 3.0
)

// Options selects the variants of the chart.
type Options struct {
	DashedGridlines bool `yaml:"dashed"`
	SmoothedCurve   bool `yaml:"smooth"`
	ShowValueLabels bool `yaml:"values"`
	ShowAxisLabels  bool `yaml:"labels"`
}

func (o Options) gridStyle() LineStyle {
	if o.DashedGridlines {
		return StyleDashed
	}
	return StyleStraight
}
