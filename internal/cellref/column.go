// Package cellref converts between spreadsheet column letters and indexes,
// parses A1-style cell addresses and ranges, and walks a range row by row.
package cellref

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrMalformedAddress = errors.New("malformed cell address")
	ErrMalformedRange   = errors.New("malformed cell range")
)

const alphabet = 26

var addressPattern = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// EncodeColumn returns the letter label for a 1-based column index: 1 -> "A", 27 -> "AA".
func EncodeColumn(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("column index %d: %w", n, ErrInvalidArgument)
	}

	var letters []byte
	for n > 0 {
		rem := (n - 1) % alphabet
		letters = append(letters, byte('A'+rem))
		n = (n - 1) / alphabet
	}

	// least significant letter was produced first
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters), nil
}

// DecodeColumn returns the 1-based column index for a letter label. Case is ignored.
func DecodeColumn(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("empty column label: %w", ErrInvalidArgument)
	}

	n := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("column label %q: %w", label, ErrInvalidArgument)
		}
		if n > (math.MaxInt-alphabet)/alphabet {
			return 0, fmt.Errorf("column label %q overflows: %w", label, ErrInvalidArgument)
		}
		n = n*alphabet + int(r-'A') + 1
	}
	return n, nil
}

// Address is a 1-based (column, row) coordinate.
type Address struct {
	Col int
	Row int
}

// Label returns the column letters of the address.
func (a Address) Label() string {
	label, err := EncodeColumn(a.Col)
	if err != nil {
		return "?"
	}
	return label
}

func (a Address) String() string {
	return a.Label() + strconv.Itoa(a.Row)
}

// ParseAddress parses an address such as "AB12".
func ParseAddress(s string) (Address, error) {
	m := addressPattern.FindStringSubmatch(s)
	if m == nil {
		return Address{}, fmt.Errorf("%q: %w", s, ErrMalformedAddress)
	}

	col, err := DecodeColumn(m[1])
	if err != nil {
		return Address{}, fmt.Errorf("%q: %w: %w", s, ErrMalformedAddress, err)
	}
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		return Address{}, fmt.Errorf("%q: row out of range: %w", s, ErrMalformedAddress)
	}

	return Address{Col: col, Row: row}, nil
}
