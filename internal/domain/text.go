package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CheckLength reports a validation message when the trimmed value of s is
// outside [minLen, maxLen] runes. A maxLen of zero means no upper bound.
// The empty string is returned when s is acceptable.
func CheckLength(s string, minLen, maxLen int) string {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	switch {
	case n == 0:
		return MsgRequired
	case n < minLen:
		return fmt.Sprintf("must be at least %d characters", minLen)
	case maxLen > 0 && n > maxLen:
		return fmt.Sprintf("must be at most %d characters", maxLen)
	default:
		return ""
	}
}
