package resolution

import (
	"fmt"
	"regexp"
)

// KeyRule rewrites issue keys from one project prefix to another, e.g. OLD-42 -> NEW-42.
// The zero value rewrites nothing.
type KeyRule struct {
	oldPrefix string
	newPrefix string
	pattern   *regexp.Regexp
}

// NewKeyRule compiles a rule matching "<oldPrefix>-<digits>".
func NewKeyRule(oldPrefix, newPrefix string) (KeyRule, error) {
	if oldPrefix == "" && newPrefix == "" {
		return KeyRule{}, nil
	}
	if oldPrefix == "" || newPrefix == "" {
		return KeyRule{}, fmt.Errorf("key prefixes must both be set (old=%q new=%q)", oldPrefix, newPrefix)
	}

	return KeyRule{
		oldPrefix: oldPrefix,
		newPrefix: newPrefix,
		pattern:   regexp.MustCompile(regexp.QuoteMeta(oldPrefix) + `-([0-9]+)`),
	}, nil
}

// Apply replaces the first key in value that carries the old prefix.
// Only the first occurrence is rewritten.
func (k KeyRule) Apply(value string) (string, bool) {
	if k.pattern == nil {
		return value, false
	}

	loc := k.pattern.FindStringSubmatchIndex(value)
	if loc == nil {
		return value, false
	}

	digits := value[loc[2]:loc[3]]
	return value[:loc[0]] + k.newPrefix + "-" + digits + value[loc[1]:], true
}

func (k KeyRule) String() string {
	if k.pattern == nil {
		return "none"
	}
	return k.oldPrefix + "-N -> " + k.newPrefix + "-N"
}
