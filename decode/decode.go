package decode

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/tickchart"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type record struct {
	Date  string `json:"date" yaml:"date"`
	Value any    `json:"value" yaml:"value"`
}

type Decoder struct {
	file   string
	format string
	reader io.Reader

	Comma       rune
	DateColumn  int
	ValueColumn int
}

func NewDecoder(r io.Reader, format string) *Decoder {
	return &Decoder{
		reader:      r,
		format:      format,
		Comma:       ',',
		ValueColumn: 1,
	}
}

type Option func(*Decoder)

// WithColumns sets the index of the date and value columns of a CSV file.
func WithColumns(date, value int) Option {
	return func(d *Decoder) {
		d.DateColumn = date
		d.ValueColumn = value
	}
}

func WithComma(comma rune) Option {
	return func(d *Decoder) {
		d.Comma = comma
	}
}

// File decodes the series stored in file, guessing its format from the
// extension.
func File(file string, options ...Option) (tickchart.Series, error) {
	format, err := FormatOf(file)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	d := NewDecoder(r, format)
	d.file = file
	for _, o := range options {
		o(d)
	}
	return d.Decode()
}

func FormatOf(file string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", FormatError{Format: ext}
	}
}

func (d *Decoder) Decode() (tickchart.Series, error) {
	switch d.format {
	case FormatCSV:
		return d.decodeCSV()
	case FormatJSON:
		return d.decodeJSON()
	case FormatYAML:
		return d.decodeYAML()
	default:
		return nil, FormatError{Format: d.format}
	}
}

func (d *Decoder) decodeCSV() (tickchart.Series, error) {
	var (
		rs     = csv.NewReader(d.reader)
		series tickchart.Series
	)
	if d.Comma != 0 {
		rs.Comma = d.Comma
	}
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return series, nil
		}
		return nil, err
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		line, _ := rs.FieldPos(0)
		if d.DateColumn < 0 || d.DateColumn >= len(row) || d.ValueColumn < 0 || d.ValueColumn >= len(row) {
			return nil, d.decodeError(line, "invalid date/value index columns given")
		}
		s, err := d.makeSample(line, row[d.DateColumn], row[d.ValueColumn])
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

func (d *Decoder) decodeJSON() (tickchart.Series, error) {
	var list []record
	if err := json.NewDecoder(d.reader).Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", d.name(), err)
	}
	series := make(tickchart.Series, 0, len(list))
	for i, r := range list {
		s, err := d.makeSample(0, r.Date, r.Value)
		if err != nil {
			var e DecodeError
			if errors.As(err, &e) {
				e.Message = fmt.Sprintf("sample %d: %s", i, e.Message)
				return nil, e
			}
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

func (d *Decoder) decodeYAML() (tickchart.Series, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(d.reader).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", d.name(), err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, d.decodeError(root.Line, "expected a list of samples")
	}
	series := make(tickchart.Series, 0, len(root.Content))
	for _, n := range root.Content {
		var r record
		if err := n.Decode(&r); err != nil {
			return nil, d.decodeError(n.Line, err.Error())
		}
		s, err := d.makeSample(n.Line, r.Date, r.Value)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

func (d *Decoder) makeSample(line int, date string, value any) (tickchart.Sample, error) {
	switch x := value.(type) {
	case nil:
		return tickchart.Sample{}, d.decodeError(line, "missing value")
	case bool:
		return tickchart.Sample{}, d.decodeError(line, fmt.Sprintf("%t: invalid value", x))
	case string:
		value = strings.TrimSpace(x)
	}
	v, err := cast.ToFloat64E(value)
	if err != nil {
		return tickchart.Sample{}, d.decodeError(line, fmt.Sprintf("%v: invalid value", value))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return tickchart.Sample{}, d.decodeError(line, fmt.Sprintf("%v: value should be a positive number", value))
	}
	return tickchart.NewSample(strings.TrimSpace(date), v), nil
}

func (d *Decoder) decodeError(line int, msg string) error {
	return DecodeError{
		Position: Position{Line: line},
		File:     d.file,
		Message:  msg,
	}
}

func (d *Decoder) name() string {
	if d.file == "" {
		return "<input>"
	}
	return d.file
}
