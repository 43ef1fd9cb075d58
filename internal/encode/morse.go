// Package encode implements the number codecs used by the calculation log:
// Morse-coded digits for the running count and Roman numerals for timestamps.
package encode

import (
	"fmt"
	"strconv"
	"strings"
)

// digitToMorse maps decimal digits to their Morse representation.
var digitToMorse = map[rune]string{
	'0': "-----",
	'1': ".----",
	'2': "..---",
	'3': "...--",
	'4': "....-",
	'5': ".....",
	'6': "-....",
	'7': "--...",
	'8': "---..",
	'9': "----.",
}

// morseToDigit is the inverse of digitToMorse, built at init.
var morseToDigit = func() map[string]rune {
	m := make(map[string]rune, len(digitToMorse))
	for d, code := range digitToMorse {
		m[code] = d
	}
	return m
}()

// NumToMorse encodes a non-negative integer as space-separated Morse digits.
func NumToMorse(n int) string {
	if n < 0 {
		n = 0
	}
	digits := strconv.Itoa(n)
	codes := make([]string, 0, len(digits))
	for _, d := range digits {
		codes = append(codes, digitToMorse[d])
	}
	return strings.Join(codes, " ")
}

// MorseToNum decodes space-separated Morse digits back to an integer.
func MorseToNum(morse string) (int, error) {
	fields := strings.Fields(morse)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty morse sequence")
	}
	var sb strings.Builder
	for _, code := range fields {
		d, ok := morseToDigit[code]
		if !ok {
			return 0, fmt.Errorf("invalid morse digit %q", code)
		}
		sb.WriteRune(d)
	}
	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0, fmt.Errorf("invalid morse number %q: %w", morse, err)
	}
	return n, nil
}
