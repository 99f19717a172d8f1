package errors

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateNodeCount parses the node count argument.
//
// The validation rules:
//   - Must be a base-10 integer (surrounding spaces are ignored)
//   - Must not be negative
//   - Must not exceed max, unless max is 0
func ValidateNodeCount(arg string, max int) (int, error) {
	s := strings.TrimSpace(arg)
	if s == "" {
		return 0, New(ErrCodeInvalidCount, "node count cannot be empty")
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidCount, err, "node count must be an integer: %q", arg)
	}
	if n < 0 {
		return 0, New(ErrCodeInvalidCount, "node count must not be negative: %d", n)
	}
	if max > 0 && n > max {
		return 0, New(ErrCodeInvalidCount, "node count %d exceeds the limit of %d", n, max)
	}
	return n, nil
}

// ValidateMarker validates the glyph printed around snapshot values.
//
// Markers are kept short and printable so every snapshot stays on one line:
//   - No empty markers
//   - At most 8 runes
//   - No whitespace or control characters
func ValidateMarker(marker string) error {
	if marker == "" {
		return New(ErrCodeInvalidMarker, "marker cannot be empty")
	}

	const maxMarkerRunes = 8
	if utf8.RuneCountInString(marker) > maxMarkerRunes {
		return New(ErrCodeInvalidMarker, "marker too long (max %d characters)", maxMarkerRunes)
	}

	for _, r := range marker {
		if r == utf8.RuneError {
			return New(ErrCodeInvalidMarker, "marker is not valid UTF-8")
		}
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidMarker, "marker contains whitespace or control characters")
		}
	}

	return nil
}

// ValidateRankDir validates a Graphviz rank direction.
func ValidateRankDir(dir string) error {
	switch dir {
	case "", "LR", "RL", "TB", "BT":
		return nil
	default:
		return New(ErrCodeInvalidInput, "invalid rank direction %q (want LR, RL, TB or BT)", dir)
	}
}
