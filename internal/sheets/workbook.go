package sheets

import (
	"context"
	"fmt"

	"issue_translator/internal/cellref"
	"issue_translator/internal/processing"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Workbook reads sheets from a local .xlsx file.
type Workbook struct {
	path string
	file *excelize.File
}

func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	log.Debug().
		Str("path", path).
		Strs("sheets", f.GetSheetList()).
		Msg("Opened workbook")
	return &Workbook{path: path, file: f}, nil
}

// Sheet loads the formatted cell text of one worksheet.
func (w *Workbook) Sheet(_ context.Context, name string) (processing.Sheet, error) {
	index, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", name, err)
	}
	if index < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s", name, w.path)
	}

	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	// GetRows starts at A1 and drops trailing empty cells, so the grid's own
	// extent is the populated extent. The stored <dimension> is often stale.
	grid := NewGrid(cellref.Address{Col: 1, Row: 1}, rows)

	log.Debug().
		Str("sheet", name).
		Str("range", grid.Ref()).
		Int("rows", len(rows)).
		Msg("Read workbook sheet")
	return grid, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}
