package sheets

import (
	"context"
	"fmt"
	"strings"

	"issue_translator/internal/cellref"
	"issue_translator/internal/processing"
	"issue_translator/internal/retry"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/sheets/v4"
)

// Spreadsheet reads tabs of a Google spreadsheet as sheets.
type Spreadsheet struct {
	client *Client
	id     string
	policy retry.Config
}

func NewSpreadsheet(client *Client, spreadsheetID string, policy retry.Config) *Spreadsheet {
	return &Spreadsheet{client: client, id: spreadsheetID, policy: policy}
}

// Sheet reads the whole tab called name.
func (s *Spreadsheet) Sheet(ctx context.Context, name string) (processing.Sheet, error) {
	resp, err := retry.WithRetry(ctx, s.policy, func(ctx context.Context) (*sheets.ValueRange, error) {
		return s.client.ReadSheet(ctx, s.id, quoteTab(name))
	})
	if err != nil {
		return nil, fmt.Errorf("tab %q: %w", name, err)
	}

	origin, err := rangeOrigin(resp.Range)
	if err != nil {
		return nil, fmt.Errorf("tab %q: %w", name, err)
	}

	grid := NewGrid(origin, stringValues(resp.Values))
	log.Debug().
		Str("sheet", name).
		Str("returned_range", resp.Range).
		Str("range", grid.Ref()).
		Int("rows", len(resp.Values)).
		Msg("Read spreadsheet tab")
	return grid, nil
}

// rangeOrigin returns the top-left address of an A1 range such as "'Tab'!B2:F9".
func rangeOrigin(a1 string) (cellref.Address, error) {
	ref := trimTab(a1)
	if ref == "" {
		return cellref.Address{Col: 1, Row: 1}, nil
	}
	if !strings.Contains(ref, ":") {
		return cellref.ParseAddress(ref)
	}
	rng, err := cellref.ParseRange(ref)
	if err != nil {
		return cellref.Address{}, err
	}
	return rng.Start, nil
}

func stringValues(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = make([]string, len(row))
		for j, v := range row {
			if v != nil {
				out[i][j] = fmt.Sprintf("%v", v)
			}
		}
	}
	return out
}
