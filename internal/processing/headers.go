package processing

import (
	"issue_translator/internal/cellref"

	"github.com/rs/zerolog/log"
)

const headerRow = 1

// Header is a named column taken from row 1 of a sheet.
type Header struct {
	Col  int
	Name string
}

// Label returns the column letters of the header.
func (h Header) Label() string {
	return cellref.Address{Col: h.Col, Row: headerRow}.Label()
}

// ResolveHeaders scans row 1 from column A through column width and returns
// every column holding a non-empty value, left to right. Duplicate names are
// kept as separate headers.
func ResolveHeaders(width int, lookup cellref.Lookup) []Header {
	var headers []Header
	for col := 1; col <= width; col++ {
		name, ok := lookup(cellref.Address{Col: col, Row: headerRow})
		if !ok || name == "" {
			continue
		}
		headers = append(headers, Header{Col: col, Name: name})
	}

	log.Debug().
		Int("width", width).
		Int("headers", len(headers)).
		Msg("Resolved header row")
	return headers
}
