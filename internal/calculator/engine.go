// Package calculator implements the calculator input state machine: digit
// entry, a pending binary operator, a memory register and a bounded
// operation history.
//
// An Engine is not safe for concurrent use. Callers that share one must
// serialize transitions themselves.
package calculator

import (
	"fmt"
	"math"
	"strings"
)

// Operator is a binary operator
type Operator string

const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpPower    Operator = "^"
	OpPercent  Operator = "%"
)

// Valid reports whether op is a known binary operator
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower, OpPercent:
		return true
	}
	return false
}

// UnaryKind is an advanced single-operand operation
type UnaryKind string

const (
	UnarySqrt    UnaryKind = "sqrt"
	UnarySquare  UnaryKind = "square"
	UnaryInverse UnaryKind = "inverse"
	UnaryNegate  UnaryKind = "negate"
	UnaryPercent UnaryKind = "percent"
)

// Valid reports whether k is a known unary operation
func (k UnaryKind) Valid() bool {
	switch k {
	case UnarySqrt, UnarySquare, UnaryInverse, UnaryNegate, UnaryPercent:
		return true
	}
	return false
}

// MemoryKind is a memory register operation
type MemoryKind string

const (
	MemoryAdd      MemoryKind = "M+"
	MemorySubtract MemoryKind = "M-"
	MemoryRecall   MemoryKind = "MR"
	MemoryClear    MemoryKind = "MC"
)

// Valid reports whether k is a known memory operation
func (k MemoryKind) Valid() bool {
	switch k {
	case MemoryAdd, MemorySubtract, MemoryRecall, MemoryClear:
		return true
	}
	return false
}

const defaultDisplay = "0"

// Engine holds the state of one calculator session
type Engine struct {
	display      string
	firstOperand *float64
	operator     Operator
	awaiting     bool
	memory       float64
	history      *history
}

// New creates an engine showing "0" with empty memory and history
func New() *Engine {
	return &Engine{
		display: defaultDisplay,
		history: newHistory(HistoryLimit),
	}
}

// Digit enters a single digit ('0' through '9')
func (e *Engine) Digit(d byte) {
	if d < '0' || d > '9' {
		return
	}

	switch {
	case e.awaiting:
		e.display = string(d)
		e.awaiting = false
	case e.display == defaultDisplay:
		e.display = string(d)
	case validLiteral(e.display + string(d)):
		e.display += string(d)
	}
}

// Decimal enters a decimal point, at most once per operand
func (e *Engine) Decimal() {
	if e.awaiting {
		e.display = "0."
		e.awaiting = false
		return
	}
	// exponent forms ("1e+21") take no decimal point
	if !strings.ContainsAny(e.display, ".e") {
		e.display += "."
	}
}

// Backspace removes the last character of the display. An exponent left
// without digits ("1e+") is removed along with it.
func (e *Engine) Backspace() {
	next := e.display[:len(e.display)-1]
	for _, suffix := range []string{"e+", "e-", "e"} {
		if strings.HasSuffix(next, suffix) {
			next = strings.TrimSuffix(next, suffix)
			break
		}
	}
	if next == "" || next == "-" {
		next = defaultDisplay
	}
	e.display = next
}

// Operator selects a binary operator. When a second operand has been
// entered since the previous operator, the pending operation is evaluated
// first and its result becomes the new first operand.
func (e *Engine) Operator(op Operator) {
	if !op.Valid() {
		return
	}

	if e.operator != "" && !e.awaiting {
		result := e.evaluate()
		e.display = FormatNumber(result)
		e.firstOperand = &result
	} else {
		value := parseNumber(e.display)
		e.firstOperand = &value
	}

	e.awaiting = true
	e.operator = op
}

// Equals applies the pending operation and ends the chain
func (e *Engine) Equals() {
	result := e.evaluate()
	e.display = FormatNumber(result)
	e.firstOperand = nil
	e.operator = ""
	e.awaiting = false
}

// evaluate applies the pending operator to the first operand and the
// display. Without a pending operation it returns the display value.
func (e *Engine) evaluate() float64 {
	b := parseNumber(e.display)
	if e.firstOperand == nil || e.operator == "" {
		return b
	}
	a := *e.firstOperand

	var result float64
	switch e.operator {
	case OpAdd:
		result = a + b
	case OpSubtract:
		result = a - b
	case OpMultiply:
		result = a * b
	case OpDivide:
		// division by zero yields 0, not an error
		if b != 0 {
			result = a / b
		}
	case OpPower:
		result = math.Pow(a, b)
	case OpPercent:
		result = (a * b) / 100
	default:
		result = b
	}
	result = finite(result)

	e.history.add(fmt.Sprintf("%s %s %s = %s",
		FormatNumber(a), e.operator, FormatNumber(b), FormatNumber(result)))

	return result
}

// Unary applies an advanced operation to the display value. The pending
// operator and first operand are left alone.
func (e *Engine) Unary(kind UnaryKind) {
	if !kind.Valid() {
		return
	}

	x := parseNumber(e.display)
	var result float64
	switch kind {
	case UnarySqrt:
		result = math.Sqrt(x)
	case UnarySquare:
		result = x * x
	case UnaryInverse:
		if x != 0 {
			result = 1 / x
		}
	case UnaryNegate:
		result = -x
	case UnaryPercent:
		result = x / 100
	}
	result = finite(result)

	e.history.add(fmt.Sprintf("%s(%s) = %s", kind, FormatNumber(x), FormatNumber(result)))
	e.display = FormatNumber(result)
}

// Memory applies a memory register operation
func (e *Engine) Memory(kind MemoryKind) {
	switch kind {
	case MemoryAdd:
		e.memory = finite(e.memory + parseNumber(e.display))
	case MemorySubtract:
		e.memory = finite(e.memory - parseNumber(e.display))
	case MemoryRecall:
		e.display = FormatNumber(e.memory)
	case MemoryClear:
		e.memory = 0
	}
}

// Clear resets the display and any pending operation. Memory and history
// survive.
func (e *Engine) Clear() {
	e.display = defaultDisplay
	e.firstOperand = nil
	e.operator = ""
	e.awaiting = false
}

// ClearHistory empties the history
func (e *Engine) ClearHistory() {
	e.history.clear()
}

// Display returns the current display string
func (e *Engine) Display() string {
	return e.display
}

// PendingSummary returns "{first operand} {operator}" while an operation
// is pending, and "" otherwise.
func (e *Engine) PendingSummary() string {
	if e.firstOperand == nil || e.operator == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", FormatNumber(*e.firstOperand), e.operator)
}

// History returns the recorded operations, oldest first
func (e *Engine) History() []string {
	return e.history.list()
}

// MemoryValue returns the memory register
func (e *Engine) MemoryValue() float64 {
	return e.memory
}

// AwaitingOperand reports whether the next entry starts a new operand
func (e *Engine) AwaitingOperand() bool {
	return e.awaiting
}

// State is a read-only copy of an engine's state
type State struct {
	Display  string
	Pending  string
	Operator Operator
	History  []string
	Memory   float64
	Awaiting bool
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() State {
	return State{
		Display:  e.display,
		Pending:  e.PendingSummary(),
		Operator: e.operator,
		History:  e.History(),
		Memory:   e.memory,
		Awaiting: e.awaiting,
	}
}
