package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"issue_translator/internal/cellref"
	"issue_translator/internal/config"
	"issue_translator/internal/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return client
}

func testPolicy() retry.Config {
	return retry.Config{
		Name:       "test",
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   2 * time.Millisecond,
		Timeout:    5 * time.Second,
		Retryable:  config.IsTransientAPIError,
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestSpreadsheetSheet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/v4/spreadsheets/abc/values/'Issues'"), r.URL.Path)
		assert.Equal(t, "FORMATTED_VALUE", r.URL.Query().Get("valueRenderOption"))

		writeJSON(w, http.StatusOK, `{
			"range": "'Issues'!B2:D4",
			"majorDimension": "ROWS",
			"values": [["Key", "", "Assignee"], ["OLD-1", null, "alice"], [3.5]]
		}`)
	})

	sheet, err := NewSpreadsheet(client, "abc", testPolicy()).Sheet(context.Background(), "Issues")
	require.NoError(t, err)
	assert.Equal(t, "B2:D4", sheet.Ref())

	v, ok := sheet.Cell(cellref.Address{Col: 2, Row: 2})
	assert.True(t, ok)
	assert.Equal(t, "Key", v)

	_, ok = sheet.Cell(cellref.Address{Col: 3, Row: 3})
	assert.False(t, ok)

	v, ok = sheet.Cell(cellref.Address{Col: 4, Row: 3})
	assert.True(t, ok)
	assert.Equal(t, "alice", v)

	v, ok = sheet.Cell(cellref.Address{Col: 2, Row: 4})
	assert.True(t, ok)
	assert.Equal(t, "3.5", v)
}

func TestSpreadsheetSheetRetriesServerErrors(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			writeJSON(w, http.StatusServiceUnavailable, `{"error": {"code": 503, "message": "try later"}}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"range": "Issues!A1:A1", "values": [["Key"]]}`)
	})

	sheet, err := NewSpreadsheet(client, "abc", testPolicy()).Sheet(context.Background(), "Issues")
	require.NoError(t, err)
	assert.Equal(t, "A1:A1", sheet.Ref())
	assert.Equal(t, 2, calls)
}

func TestSpreadsheetSheetDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(w, http.StatusBadRequest, `{"error": {"code": 400, "message": "Unable to parse range"}}`)
	})

	_, err := NewSpreadsheet(client, "abc", testPolicy()).Sheet(context.Background(), "Nope")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Nope")
	assert.Equal(t, 1, calls)
}

func TestSheetsWriter(t *testing.T) {
	var requests []string
	var written sheets.ValueRange
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path[strings.Index(r.URL.Path, "/values/"):])
		if r.Method == http.MethodPut {
			assert.Equal(t, "RAW", r.URL.Query().Get("valueInputOption"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&written))
		}
		writeJSON(w, http.StatusOK, `{}`)
	})

	w := NewSheetsWriter(client, "out", "translated-", testPolicy())
	require.NoError(t, w.WriteTable(context.Background(), "Issues", translated))
	require.NoError(t, w.Close())

	assert.Equal(t, []string{
		"POST /values/'translated-Issues':clear",
		"PUT /values/'translated-Issues'!A1",
	}, requests)

	require.Len(t, written.Values, 3)
	assert.Equal(t, []interface{}{"NEW-2", "", "2020-01-02;carol;hi"}, written.Values[2])
}
