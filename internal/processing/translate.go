package processing

import (
	"context"
	"fmt"

	"issue_translator/internal/cellref"

	"github.com/rs/zerolog/log"
)

// Sheet is one table read from a cell source.
type Sheet interface {
	// Ref returns the populated extent, e.g. "A1:F20".
	Ref() string
	// Cell returns the formatted text at addr and whether a cell is present.
	Cell(addr cellref.Address) (string, bool)
}

// Source opens sheets by name.
type Source interface {
	Sheet(ctx context.Context, name string) (Sheet, error)
}

// Sink receives translated tables, header row first.
type Sink interface {
	WriteTable(ctx context.Context, name string, rows [][]string) error
}

// Summary describes one translated sheet.
type Summary struct {
	Sheet   string
	Range   string
	Rows    int
	Columns int
	Counts
}

// TranslateSheet filters and rewrites one sheet. On error no rows are returned.
func TranslateSheet(name string, sheet Sheet, rules Rules) ([][]string, Summary, error) {
	ref := sheet.Ref()
	rng, err := cellref.ParseRange(ref)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("sheet %q: %w", name, err)
	}

	headers := ResolveHeaders(rng.End.Col, sheet.Cell)
	transformer := NewTransformer(headers, rules)
	if len(transformer.Headers()) == 0 {
		log.Warn().
			Str("sheet", name).
			Int("headers", len(headers)).
			Msg("No whitelisted columns found in sheet")
	}

	table := NewTable(transformer.HeaderNames())
	for v := range cellref.Walk(rng, sheet.Cell) {
		if v.Addr.Row <= headerRow {
			continue
		}

		index, value, keep, err := transformer.Transform(v)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("sheet %q: %w", name, err)
		}
		if !keep {
			continue
		}
		if err := table.Set(v.Addr.Row, index, value); err != nil {
			return nil, Summary{}, fmt.Errorf("sheet %q: cell %s: %w", name, v.Addr, err)
		}

		log.Debug().
			Str("sheet", name).
			Str("cell", v.Addr.String()).
			Str("value", value).
			Msg("Translated cell")
	}

	summary := Summary{
		Sheet:   name,
		Range:   rng.String(),
		Rows:    table.Len(),
		Columns: len(transformer.Headers()),
		Counts:  transformer.Counts(),
	}
	return table.Rows(), summary, nil
}
