package calculator

import (
	"errors"
	"fmt"
)

// ErrUnknownInput is returned when a key or button has no mapping
var ErrUnknownInput = errors.New("unknown input")

// InputKind identifies which engine operation an input drives
type InputKind string

const (
	InputDigit        InputKind = "digit"
	InputDecimal      InputKind = "decimal"
	InputOperator     InputKind = "operator"
	InputEquals       InputKind = "equals"
	InputClear        InputKind = "clear"
	InputBackspace    InputKind = "backspace"
	InputUnary        InputKind = "unary"
	InputMemory       InputKind = "memory"
	InputClearHistory InputKind = "clear_history"
)

// Input is one discrete event, already resolved from its source
type Input struct {
	Kind     InputKind
	Digit    byte
	Operator Operator
	Unary    UnaryKind
	Memory   MemoryKind
}

// Apply performs the input's transition on e
func (in Input) Apply(e *Engine) {
	switch in.Kind {
	case InputDigit:
		e.Digit(in.Digit)
	case InputDecimal:
		e.Decimal()
	case InputOperator:
		e.Operator(in.Operator)
	case InputEquals:
		e.Equals()
	case InputClear:
		e.Clear()
	case InputBackspace:
		e.Backspace()
	case InputUnary:
		e.Unary(in.Unary)
	case InputMemory:
		e.Memory(in.Memory)
	case InputClearHistory:
		e.ClearHistory()
	}
}

// Press applies inputs in order
func (e *Engine) Press(inputs ...Input) {
	for _, in := range inputs {
		in.Apply(e)
	}
}

// keyInputs maps keyboard key names to inputs
var keyInputs = map[string]Input{
	".":         {Kind: InputDecimal},
	"+":         {Kind: InputOperator, Operator: OpAdd},
	"-":         {Kind: InputOperator, Operator: OpSubtract},
	"*":         {Kind: InputOperator, Operator: OpMultiply},
	"/":         {Kind: InputOperator, Operator: OpDivide},
	"Enter":     {Kind: InputEquals},
	"=":         {Kind: InputEquals},
	"Escape":    {Kind: InputClear},
	"c":         {Kind: InputClear},
	"C":         {Kind: InputClear},
	"Backspace": {Kind: InputBackspace},
}

// buttonInputs maps on-screen button ids and their labels to inputs
var buttonInputs = map[string]Input{
	".":             {Kind: InputDecimal},
	"+":             {Kind: InputOperator, Operator: OpAdd},
	"-":             {Kind: InputOperator, Operator: OpSubtract},
	"−":             {Kind: InputOperator, Operator: OpSubtract},
	"*":             {Kind: InputOperator, Operator: OpMultiply},
	"×":             {Kind: InputOperator, Operator: OpMultiply},
	"/":             {Kind: InputOperator, Operator: OpDivide},
	"÷":             {Kind: InputOperator, Operator: OpDivide},
	"^":             {Kind: InputOperator, Operator: OpPower},
	"x^y":           {Kind: InputOperator, Operator: OpPower},
	"%":             {Kind: InputOperator, Operator: OpPercent},
	"=":             {Kind: InputEquals},
	"clear":         {Kind: InputClear},
	"Clear":         {Kind: InputClear},
	"backspace":     {Kind: InputBackspace},
	"⌫":             {Kind: InputBackspace},
	"sqrt":          {Kind: InputUnary, Unary: UnarySqrt},
	"√":             {Kind: InputUnary, Unary: UnarySqrt},
	"√x":            {Kind: InputUnary, Unary: UnarySqrt},
	"square":        {Kind: InputUnary, Unary: UnarySquare},
	"x²":            {Kind: InputUnary, Unary: UnarySquare},
	"inverse":       {Kind: InputUnary, Unary: UnaryInverse},
	"1/x":           {Kind: InputUnary, Unary: UnaryInverse},
	"negate":        {Kind: InputUnary, Unary: UnaryNegate},
	"±":             {Kind: InputUnary, Unary: UnaryNegate},
	"percent":       {Kind: InputUnary, Unary: UnaryPercent},
	"MC":            {Kind: InputMemory, Memory: MemoryClear},
	"MR":            {Kind: InputMemory, Memory: MemoryRecall},
	"M+":            {Kind: InputMemory, Memory: MemoryAdd},
	"M-":            {Kind: InputMemory, Memory: MemorySubtract},
	"clear_history": {Kind: InputClearHistory},
	"Clear H":       {Kind: InputClearHistory},
}

func digitInput(name string) (Input, bool) {
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Input{Kind: InputDigit, Digit: name[0]}, true
	}
	return Input{}, false
}

// Key resolves a keyboard key name
func Key(name string) (Input, error) {
	if in, ok := digitInput(name); ok {
		return in, nil
	}
	if in, ok := keyInputs[name]; ok {
		return in, nil
	}
	return Input{}, fmt.Errorf("key %q: %w", name, ErrUnknownInput)
}

// Button resolves an on-screen button id or label. "%" on its own is the
// binary percent operator; the unary form is "percent".
func Button(id string) (Input, error) {
	if in, ok := digitInput(id); ok {
		return in, nil
	}
	if in, ok := buttonInputs[id]; ok {
		return in, nil
	}
	return Input{}, fmt.Errorf("button %q: %w", id, ErrUnknownInput)
}

// Keys resolves a sequence of key names. Nothing is returned if any name
// is unknown.
func Keys(names []string) ([]Input, error) {
	return resolve(names, Key)
}

// Buttons resolves a sequence of button ids
func Buttons(ids []string) ([]Input, error) {
	return resolve(ids, Button)
}

func resolve(names []string, lookup func(string) (Input, error)) ([]Input, error) {
	inputs := make([]Input, 0, len(names))
	for _, name := range names {
		in, err := lookup(name)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}
