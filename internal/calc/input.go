package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Cancel tokens accepted at any numeric prompt, case-insensitive.
const (
	cancelShort = "x"
	cancelLong  = "exit"
)

// ParseNumber parses user-entered text as a float64. A trimmed,
// case-insensitive "x" or "exit" reports cancelled=true instead. Any other
// non-numeric text yields an error the prompt loop recovers from by
// re-prompting; it is never surfaced as a failure.
func ParseNumber(text string) (value float64, cancelled bool, err error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == cancelShort || trimmed == cancelLong {
		return 0, true, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", strings.TrimSpace(text))
	}
	return v, false, nil
}
