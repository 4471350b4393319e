package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"issue_translator/internal/cellref"
	"issue_translator/internal/retry"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const outputPrefix = "translated-"

// CSVWriter writes each table to <Dir>/translated-<name>.csv.
type CSVWriter struct {
	Dir string
}

func (w *CSVWriter) Path(name string) string {
	return filepath.Join(w.Dir, outputPrefix+name+".csv")
}

func (w *CSVWriter) WriteTable(_ context.Context, name string, rows [][]string) error {
	path := w.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	log.Info().Str("path", path).Int("rows", len(rows)).Msg("Wrote CSV")
	return nil
}

func (w *CSVWriter) Close() error { return nil }

// XLSXWriter collects tables as worksheets of one workbook, saved on Close.
type XLSXWriter struct {
	path    string
	file    *excelize.File
	written int
}

func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path, file: excelize.NewFile()}
}

func (w *XLSXWriter) WriteTable(_ context.Context, name string, rows [][]string) error {
	if w.written == 0 {
		// reuse the default sheet a new workbook starts with
		if err := w.file.SetSheetName(w.file.GetSheetName(0), name); err != nil {
			return fmt.Errorf("failed to name worksheet %q: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add worksheet %q: %w", name, err)
	}

	for i, row := range rows {
		cell := cellref.Address{Col: 1, Row: i + 1}.String()
		if err := w.file.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", name, cell, err)
		}
	}
	w.written++

	log.Debug().Str("sheet", name).Int("rows", len(rows)).Msg("Added worksheet")
	return nil
}

func (w *XLSXWriter) Close() error {
	defer w.file.Close()
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save %s: %w", w.path, err)
	}
	log.Info().Str("path", w.path).Int("sheets", w.written).Msg("Wrote workbook")
	return nil
}

// SheetsWriter replaces the contents of tab <Prefix><name> in a Google spreadsheet.
// The tab must already exist.
type SheetsWriter struct {
	client *Client
	id     string
	prefix string
	policy retry.Config
}

func NewSheetsWriter(client *Client, spreadsheetID, prefix string, policy retry.Config) *SheetsWriter {
	return &SheetsWriter{client: client, id: spreadsheetID, prefix: prefix, policy: policy}
}

func (w *SheetsWriter) WriteTable(ctx context.Context, name string, rows [][]string) error {
	tab := quoteTab(w.prefix + name)

	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, v := range row {
			values[i][j] = v
		}
	}

	_, err := retry.WithRetry(ctx, w.policy, func(ctx context.Context) (struct{}, error) {
		if err := w.client.ClearRange(ctx, w.id, tab); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, w.client.UpdateRange(ctx, w.id, tab+"!A1", values)
	})
	if err != nil {
		return fmt.Errorf("tab %s: %w", tab, err)
	}

	log.Info().Str("tab", w.prefix+name).Int("rows", len(rows)).Msg("Wrote spreadsheet tab")
	return nil
}

func (w *SheetsWriter) Close() error { return nil }
