package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHeadersKeepsGaps(t *testing.T) {
	sheet := fakeSheet{ref: "A1:C2", cells: map[string]string{"A1": "Key", "C1": "Comment", "B2": "data"}}

	headers := ResolveHeaders(3, sheet.Cell)
	assert.Equal(t, []Header{{Col: 1, Name: "Key"}, {Col: 3, Name: "Comment"}}, headers)
	assert.Equal(t, "A", headers[0].Label())
	assert.Equal(t, "C", headers[1].Label())
}

func TestResolveHeadersSkipsEmptyAndKeepsDuplicates(t *testing.T) {
	sheet := fakeSheet{cells: map[string]string{"A1": "Comment", "B1": "", "C1": "Comment", "AB1": "Far"}}

	headers := ResolveHeaders(28, sheet.Cell)
	assert.Equal(t, []Header{{Col: 1, Name: "Comment"}, {Col: 3, Name: "Comment"}, {Col: 28, Name: "Far"}}, headers)
}

func TestResolveHeadersRespectsWidth(t *testing.T) {
	sheet := fakeSheet{cells: map[string]string{"A1": "Key", "D1": "Hidden"}}

	headers := ResolveHeaders(3, sheet.Cell)
	assert.Equal(t, []Header{{Col: 1, Name: "Key"}}, headers)
}
