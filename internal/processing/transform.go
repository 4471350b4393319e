package processing

import (
	"fmt"
	"slices"

	"issue_translator/internal/cellref"
	"issue_translator/internal/resolution"
)

// Rules is the static configuration applied to every sheet.
type Rules struct {
	Columns     []string // whitelisted header names
	UserColumns []string // header names holding a bare username
	Users       resolution.UserTable
	Keys        resolution.KeyRule
}

type columnKind int

const (
	plainColumn columnKind = iota
	userColumn
	commentColumn
)

type outputColumn struct {
	index  int
	header Header
	kind   columnKind
}

// Counts tallies the rewrites a Transformer performed.
type Counts struct {
	Keys     int
	Users    int
	Comments int
}

// Transformer rewrites the cells of one sheet. It is built from that sheet's
// headers and must not be shared between sheets.
type Transformer struct {
	rules   Rules
	columns map[int]outputColumn
	headers []Header
	counts  Counts
}

// NewTransformer keeps the headers whose name is whitelisted, in source order.
func NewTransformer(headers []Header, rules Rules) *Transformer {
	t := &Transformer{
		rules:   rules,
		columns: make(map[int]outputColumn),
	}

	for _, h := range headers {
		if !slices.Contains(rules.Columns, h.Name) {
			continue
		}

		kind := plainColumn
		switch {
		case slices.Contains(rules.UserColumns, h.Name):
			kind = userColumn
		case h.Name == resolution.CommentHeader:
			kind = commentColumn
		}

		t.columns[h.Col] = outputColumn{index: len(t.headers), header: h, kind: kind}
		t.headers = append(t.headers, h)
	}
	return t
}

// Headers returns the retained headers in output order.
func (t *Transformer) Headers() []Header {
	return t.headers
}

// HeaderNames returns the output header row.
func (t *Transformer) HeaderNames() []string {
	names := make([]string, len(t.headers))
	for i, h := range t.headers {
		names[i] = h.Name
	}
	return names
}

// Counts returns the rewrites performed so far.
func (t *Transformer) Counts() Counts {
	return t.counts
}

// Transform rewrites a single data cell. keep is false when the cell's column
// is not part of the output; index is the output column otherwise. An absent
// cell yields an empty value.
func (t *Transformer) Transform(v cellref.Visit) (index int, value string, keep bool, err error) {
	col, ok := t.columns[v.Addr.Col]
	if !ok {
		return 0, "", false, nil
	}
	if !v.Present {
		return col.index, "", true, nil
	}

	value = v.Value
	if rewritten, changed := t.rules.Keys.Apply(value); changed {
		value = rewritten
		t.counts.Keys++
	}

	switch col.kind {
	case userColumn:
		if translated, changed := t.rules.Users.Translate(value); changed {
			value = translated
			t.counts.Users++
		}
	case commentColumn:
		rewritten, changed, err := resolution.RewriteComment(value, t.rules.Users)
		if err != nil {
			return 0, "", false, fmt.Errorf("cell %s: %w", v.Addr, err)
		}
		if changed {
			value = rewritten
			t.counts.Comments++
		}
	}

	return col.index, value, true, nil
}
