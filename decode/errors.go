package decode

import (
	"fmt"
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// DecodeError reports an invalid sample. Line is 0 when the format does not
// give positions.
type DecodeError struct {
	Message string
	File    string
	Position
}

func (e DecodeError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", file, e.Message)
	}
	return fmt.Sprintf("%s:%s: %s", file, e.Position, e.Message)
}

type FormatError struct {
	Format string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format", e.Format)
}
