package resolution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteComment(t *testing.T) {
	users := UserTable{"alice": "a.smith"}

	got, changed, err := RewriteComment("2020-01-01;alice;hello;world", users)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "2020-01-01;a.smith;hello;world", got)

	got, changed, err = RewriteComment("2020-01-01;ALICE;hi", users)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "2020-01-01;a.smith;hi", got)
}

func TestRewriteCommentUnknownUser(t *testing.T) {
	in := "2020-01-01;carol;hello;world"
	got, changed, err := RewriteComment(in, UserTable{"alice": "a.smith"})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, in, got)
}

func TestRewriteCommentEmptyText(t *testing.T) {
	got, _, err := RewriteComment("d;alice;", UserTable{"alice": "a.smith"})
	require.NoError(t, err)
	assert.Equal(t, "d;a.smith;", got)
}

func TestRewriteCommentMalformed(t *testing.T) {
	for _, in := range []string{"", "no separators", "2020-01-01;alice"} {
		_, _, err := RewriteComment(in, UserTable{"alice": "a.smith"})
		assert.ErrorIs(t, err, ErrMalformedComment, "RewriteComment(%q)", in)
	}
}
