package tickchart

import (
	"fmt"
	"strings"
)

var (
	Category10 []string
	Tableau10  []string
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

type Palette struct {
	Border string
	Grid   string
	Curve  string
	Marker string
	Text   string
	Axis   string
}

func DefaultPalette() Palette {
	return Palette{
		Border: "#cccccc",
		Grid:   "#ffbbff",
		Curve:  Category10[0],
		Marker: Category10[1],
		Text:   "#333333",
		Axis:   "#000000",
	}
}

func (p Palette) isZero() bool {
	return p == Palette{}
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// SchemePalette returns the default palette with the curve and marker colors
// taken from the named color scheme.
func SchemePalette(name string) (Palette, error) {
	var scheme []string
	switch strings.ToLower(name) {
	case "", "category10":
		scheme = Category10
	case "tableau10":
		scheme = Tableau10
	default:
		return Palette{}, fmt.Errorf("%s: unknown color scheme", name)
	}
	p := DefaultPalette()
	p.Curve = scheme[0]
	p.Marker = scheme[1]
	return p, nil
}
