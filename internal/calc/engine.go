// Package calc implements the arithmetic engine: the four basic operations
// with overflow detection, and numeric input parsing with a cancel sentinel.
package calc

import (
	"errors"
	"math"
)

// Operation errors surfaced to the interactive loop. Neither aborts the
// session; no log entry is written when one occurs.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("number too big in magnitude")
)

// OpKind identifies one of the four basic operations.
type OpKind int

const (
	OpAdd OpKind = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// Symbol returns the operator glyph used in log entries and display
// (multiplication and division use their proper signs, not * and /).
func (op OpKind) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return "?"
}

// String returns the operation name.
func (op OpKind) String() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSubtract:
		return "subtraction"
	case OpMultiply:
		return "multiplication"
	case OpDivide:
		return "division"
	}
	return "unknown"
}

// OpKindFromSymbol maps an operator glyph back to its OpKind.
func OpKindFromSymbol(sym string) (OpKind, bool) {
	switch sym {
	case "+":
		return OpAdd, true
	case "-":
		return OpSubtract, true
	case "×":
		return OpMultiply, true
	case "÷":
		return OpDivide, true
	}
	return 0, false
}

// opFunc computes one operation. Implementations are pure.
type opFunc func(a, b float64) (float64, error)

// ops is the dispatch table for Apply.
var ops = map[OpKind]opFunc{
	OpAdd:      Add,
	OpSubtract: Subtract,
	OpMultiply: Multiply,
	OpDivide:   Divide,
}

// Apply dispatches to the operation for the given kind.
func Apply(op OpKind, a, b float64) (float64, error) {
	fn, ok := ops[op]
	if !ok {
		return 0, errors.New("unknown operation")
	}
	return fn(a, b)
}

// Add returns a+b, or ErrOverflow if the sum leaves the representable range.
func Add(a, b float64) (float64, error) {
	return checkOverflow(a + b)
}

// Subtract returns a-b, or ErrOverflow if the difference leaves the
// representable range.
func Subtract(a, b float64) (float64, error) {
	return checkOverflow(a - b)
}

// Multiply returns a*b, or ErrOverflow if the product leaves the
// representable range.
func Multiply(a, b float64) (float64, error) {
	return checkOverflow(a * b)
}

// Divide returns a/b. Fails with ErrDivisionByZero when b is zero and
// ErrOverflow when the quotient leaves the representable range.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return checkOverflow(a / b)
}

func checkOverflow(v float64) (float64, error) {
	if math.IsInf(v, 0) {
		return 0, ErrOverflow
	}
	return v, nil
}
