package cellref

import (
	"fmt"
	"strings"
)

// Range is an inclusive rectangle between two addresses.
type Range struct {
	Start Address
	End   Address
}

func (r Range) String() string {
	return r.Start.String() + ":" + r.End.String()
}

// Width returns the number of columns covered by the range.
func (r Range) Width() int {
	return r.End.Col - r.Start.Col + 1
}

// Height returns the number of rows covered by the range.
func (r Range) Height() int {
	return r.End.Row - r.Start.Row + 1
}

// ParseRange parses a "TopLeft:BottomRight" descriptor such as "A1:F20".
// A range whose end lies above or left of its start is rejected.
func ParseRange(s string) (Range, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%q: expected exactly one ':': %w", s, ErrMalformedRange)
	}

	start, err := ParseAddress(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w: %w", s, ErrMalformedRange, err)
	}
	end, err := ParseAddress(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w: %w", s, ErrMalformedRange, err)
	}

	if start.Col > end.Col || start.Row > end.Row {
		return Range{}, fmt.Errorf("%q: end precedes start: %w", s, ErrMalformedRange)
	}

	return Range{Start: start, End: end}, nil
}
