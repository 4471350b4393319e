package sheets

import (
	"fmt"
	"strings"

	"issue_translator/internal/cellref"
)

// Grid is a rectangular block of formatted cell text anchored at origin.
// Empty strings are reported as absent cells.
type Grid struct {
	ref    string
	origin cellref.Address
	values [][]string
}

// NewGrid anchors values at origin and derives the populated extent from them.
func NewGrid(origin cellref.Address, values [][]string) *Grid {
	width := 0
	for _, row := range values {
		width = max(width, len(row))
	}

	end := cellref.Address{
		Col: origin.Col + max(width, 1) - 1,
		Row: origin.Row + max(len(values), 1) - 1,
	}
	return &Grid{
		ref:    origin.String() + ":" + end.String(),
		origin: origin,
		values: values,
	}
}

func (g *Grid) Ref() string {
	return g.ref
}

func (g *Grid) Cell(addr cellref.Address) (string, bool) {
	r := addr.Row - g.origin.Row
	c := addr.Col - g.origin.Col
	if r < 0 || r >= len(g.values) || c < 0 || c >= len(g.values[r]) {
		return "", false
	}

	value := g.values[r][c]
	if value == "" {
		return "", false
	}
	return value, true
}

// trimTab strips a leading "Tab!" or "'My Tab'!" from an A1 range.
func trimTab(a1 string) string {
	if i := strings.LastIndex(a1, "!"); i >= 0 {
		return a1[i+1:]
	}
	return a1
}

// quoteTab quotes a tab name for use in A1 notation.
func quoteTab(name string) string {
	return fmt.Sprintf("'%s'", strings.ReplaceAll(name, "'", "''"))
}
