package encode

import "time"

// romanValue pairs a numeral with its integer value, largest first.
type romanValue struct {
	numeral string
	value   int
}

var romanValues = []romanValue{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// NumToRoman converts a number below 4000 to Roman numerals.
// Zero is rendered as "N" (nulla).
func NumToRoman(n int) string {
	if n == 0 {
		return "N"
	}
	var out []byte
	for _, rv := range romanValues {
		for n >= rv.value {
			out = append(out, rv.numeral...)
			n -= rv.value
		}
	}
	return string(out)
}

// RomanDate formats a date as D.M.Y in Roman numerals.
func RomanDate(t time.Time) string {
	return NumToRoman(t.Day()) + "." + NumToRoman(int(t.Month())) + "." + NumToRoman(t.Year())
}
