package resolution

import (
	"errors"
	"fmt"
	"strings"
)

// CommentHeader is the column whose values carry an embedded username.
const CommentHeader = "Comment"

var ErrMalformedComment = errors.New("malformed comment")

const commentSeparator = ";"

// RewriteComment translates the author of a "date;user;text" comment.
// The text may itself contain ';'. When the author has no replacement the
// comment is returned unchanged.
func RewriteComment(value string, users UserTable) (string, bool, error) {
	parts := strings.SplitN(value, commentSeparator, 3)
	if len(parts) != 3 {
		return "", false, fmt.Errorf("%q: want date;user;text: %w", value, ErrMalformedComment)
	}

	date, user, text := parts[0], parts[1], parts[2]
	replacement, ok := users.Lookup(user)
	if !ok {
		return value, false, nil
	}

	return strings.Join([]string{date, replacement, text}, commentSeparator), true, nil
}
