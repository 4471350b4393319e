package resolution

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// UserTable maps a lowercase source username to its replacement.
type UserTable map[string]string

// NewUserTable builds a table from raw pairs, lowercasing the source names.
// Two source names that collide after lowercasing are rejected.
func NewUserTable(raw map[string]string) (UserTable, error) {
	users := make(UserTable, len(raw))
	for from, to := range raw {
		key := strings.ToLower(strings.TrimSpace(from))
		if key == "" {
			return nil, fmt.Errorf("empty source username")
		}
		if prev, ok := users[key]; ok && prev != to {
			return nil, fmt.Errorf("username %q mapped twice (%q and %q)", key, prev, to)
		}
		users[key] = to
	}
	return users, nil
}

// Lookup returns the replacement for name, matched case-insensitively.
func (u UserTable) Lookup(name string) (string, bool) {
	replacement, ok := u[strings.ToLower(name)]
	if !ok || replacement == "" {
		return "", false
	}
	return replacement, true
}

// Translate returns the replacement for name, or name itself when the table has no entry.
func (u UserTable) Translate(name string) (string, bool) {
	if replacement, ok := u.Lookup(name); ok {
		log.Debug().
			Str("from", name).
			Str("to", replacement).
			Msg("Translated user")
		return replacement, true
	}
	return name, false
}
