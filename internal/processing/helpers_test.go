package processing

import (
	"context"
	"fmt"
	"testing"

	"issue_translator/internal/cellref"
	"issue_translator/internal/resolution"

	"github.com/stretchr/testify/require"
)

type fakeSheet struct {
	ref   string
	cells map[string]string
}

func (f fakeSheet) Ref() string { return f.ref }

func (f fakeSheet) Cell(addr cellref.Address) (string, bool) {
	v, ok := f.cells[addr.String()]
	return v, ok
}

// sheetFromRows lays rows out from A1; empty strings become absent cells.
func sheetFromRows(t *testing.T, rows [][]string) fakeSheet {
	t.Helper()
	cells := make(map[string]string)
	width := 0
	for r, row := range rows {
		width = max(width, len(row))
		for c, v := range row {
			if v == "" {
				continue
			}
			cells[cellref.Address{Col: c + 1, Row: r + 1}.String()] = v
		}
	}
	require.NotZero(t, width)
	end := cellref.Address{Col: width, Row: len(rows)}
	return fakeSheet{ref: "A1:" + end.String(), cells: cells}
}

func testRules(t *testing.T) Rules {
	t.Helper()
	keys, err := resolution.NewKeyRule("OLD", "NEW")
	require.NoError(t, err)
	return Rules{
		Columns:     []string{"Key", "Assignee", "Comment", "Summary"},
		UserColumns: []string{"Assignee"},
		Users:       resolution.UserTable{"alice": "a.smith"},
		Keys:        keys,
	}
}

type fakeSource map[string]Sheet

func (f fakeSource) Sheet(_ context.Context, name string) (Sheet, error) {
	s, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", name)
	}
	return s, nil
}

type memorySink struct {
	tables map[string][][]string
	order  []string
}

func (m *memorySink) WriteTable(_ context.Context, name string, rows [][]string) error {
	if m.tables == nil {
		m.tables = make(map[string][][]string)
	}
	m.tables[name] = rows
	m.order = append(m.order, name)
	return nil
}
