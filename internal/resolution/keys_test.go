package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRuleApply(t *testing.T) {
	rule, err := NewKeyRule("OLD", "NEW")
	require.NoError(t, err)

	tests := []struct {
		in      string
		want    string
		changed bool
	}{
		{"OLD-42", "NEW-42", true},
		{"FOO-42", "FOO-42", false},
		{"OLD-", "OLD-", false},
		{"OLD42", "OLD42", false},
		{"see OLD-7 for details", "see NEW-7 for details", true},
		{"OLD-1 and OLD-2", "NEW-1 and OLD-2", true},
		{"OLD-0042", "NEW-0042", true},
		{"", "", false},
	}

	for _, tt := range tests {
		got, changed := rule.Apply(tt.in)
		assert.Equal(t, tt.want, got, "Apply(%q)", tt.in)
		assert.Equal(t, tt.changed, changed, "Apply(%q)", tt.in)
	}
}

func TestKeyRuleQuotesPrefix(t *testing.T) {
	rule, err := NewKeyRule("A.B", "C")
	require.NoError(t, err)

	got, _ := rule.Apply("AXB-1")
	assert.Equal(t, "AXB-1", got)

	got, _ = rule.Apply("A.B-1")
	assert.Equal(t, "C-1", got)
}

func TestZeroKeyRule(t *testing.T) {
	rule, err := NewKeyRule("", "")
	require.NoError(t, err)

	got, changed := rule.Apply("OLD-42")
	assert.False(t, changed)
	assert.Equal(t, "OLD-42", got)
	assert.Equal(t, "none", rule.String())
}

func TestNewKeyRuleRequiresBothPrefixes(t *testing.T) {
	_, err := NewKeyRule("OLD", "")
	assert.Error(t, err)
	_, err = NewKeyRule("", "NEW")
	assert.Error(t, err)
}
