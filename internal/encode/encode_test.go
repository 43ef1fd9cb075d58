package encode

import (
	"testing"
	"time"
)

func TestNumToMorse(t *testing.T) {
	tests := []struct {
		name     string
		num      int
		expected string
	}{
		{
			name:     "single digit",
			num:      3,
			expected: "...--",
		},
		{
			name:     "zero",
			num:      0,
			expected: "-----",
		},
		{
			name:     "multiple digits",
			num:      42,
			expected: "....- ..---",
		},
		{
			name:     "repeated digits",
			num:      100,
			expected: ".---- ----- -----",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NumToMorse(tt.num)
			if result != tt.expected {
				t.Errorf("NumToMorse(%d) = %q, want %q", tt.num, result, tt.expected)
			}
		})
	}
}

func TestMorseRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 10, 99, 123, 4096, 999999} {
		decoded, err := MorseToNum(NumToMorse(n))
		if err != nil {
			t.Fatalf("MorseToNum(NumToMorse(%d)) error: %v", n, err)
		}
		if decoded != n {
			t.Errorf("round trip %d = %d", n, decoded)
		}
	}
}

func TestMorseToNumInvalid(t *testing.T) {
	tests := []struct {
		name  string
		morse string
	}{
		{name: "empty", morse: ""},
		{name: "whitespace only", morse: "   "},
		{name: "bad code", morse: ".-.-"},
		{name: "letter code", morse: ".-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := MorseToNum(tt.morse); err == nil {
				t.Errorf("MorseToNum(%q) expected error, got nil", tt.morse)
			}
		})
	}
}

func TestNumToRoman(t *testing.T) {
	tests := []struct {
		name     string
		num      int
		expected string
	}{
		{name: "zero", num: 0, expected: "N"},
		{name: "one", num: 1, expected: "I"},
		{name: "four", num: 4, expected: "IV"},
		{name: "nine", num: 9, expected: "IX"},
		{name: "fourteen", num: 14, expected: "XIV"},
		{name: "forty", num: 40, expected: "XL"},
		{name: "ninety", num: 90, expected: "XC"},
		{name: "year", num: 2024, expected: "MMXXIV"},
		{name: "max", num: 3999, expected: "MMMCMXCIX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NumToRoman(tt.num)
			if result != tt.expected {
				t.Errorf("NumToRoman(%d) = %q, want %q", tt.num, result, tt.expected)
			}
		})
	}
}

func TestRomanDate(t *testing.T) {
	d := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	expected := "XV.III.MMXXIV"
	if got := RomanDate(d); got != expected {
		t.Errorf("RomanDate = %q, want %q", got, expected)
	}
}
