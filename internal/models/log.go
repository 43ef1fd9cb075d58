package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/abacus-io/abacus/internal/calc"
	"github.com/abacus-io/abacus/internal/encode"
)

// Line layout of a calculation log entry:
//
//	Timestamp XV.III.MMXXIV Calculation 2.0 + 3.0 = 5.0
const (
	timestampPrefix = "Timestamp "
	calcMarker      = " Calculation "
)

// LogEntry is one recorded calculation. Raw holds the exact log line so
// entries round-trip losslessly through load/save even when the parsed
// fields are incomplete; Seq is the 1-based position within the log.
type LogEntry struct {
	Raw       string
	Seq       int
	Timestamp string // Roman-numeral D.M.Y
	A, B      string
	Op        calc.OpKind
	Result    string
	Parsed    bool
}

// NewLogEntry builds an entry for a completed calculation, stamped with the
// given date.
func NewLogEntry(a, b string, op calc.OpKind, result string, at time.Time) *LogEntry {
	ts := encode.RomanDate(at)
	return &LogEntry{
		Raw:       fmt.Sprintf("%s%s%s%s %s %s = %s", timestampPrefix, ts, calcMarker, a, op.Symbol(), b, result),
		Timestamp: ts,
		A:         a,
		B:         b,
		Op:        op,
		Result:    result,
		Parsed:    true,
	}
}

// ParseLogEntry reads an entry back from its log line. Lines that do not
// match the expected layout are kept verbatim with Parsed=false rather than
// rejected, so a hand-edited log still loads and saves intact.
func ParseLogEntry(line string) *LogEntry {
	entry := &LogEntry{Raw: line}

	rest, ok := strings.CutPrefix(line, timestampPrefix)
	if !ok {
		return entry
	}
	ts, rest, ok := strings.Cut(rest, calcMarker)
	if !ok {
		return entry
	}
	expr, result, ok := strings.Cut(rest, " = ")
	if !ok {
		return entry
	}

	// Operands may themselves start with '-', so split on the spaced operator.
	for _, op := range []calc.OpKind{calc.OpAdd, calc.OpSubtract, calc.OpMultiply, calc.OpDivide} {
		sep := " " + op.Symbol() + " "
		if a, b, found := strings.Cut(expr, sep); found {
			entry.Timestamp = ts
			entry.A = a
			entry.B = b
			entry.Op = op
			entry.Result = result
			entry.Parsed = true
			return entry
		}
	}
	return entry
}

// Describe returns a short human-readable form for list views.
func (e *LogEntry) Describe() string {
	if !e.Parsed {
		return e.Raw
	}
	return fmt.Sprintf("%s %s %s = %s", e.A, e.Op.Symbol(), e.B, e.Result)
}
