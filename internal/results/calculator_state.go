package results

import "github.com/averycrespi/calc-mcp/internal/calculator"

// CalculatorState is the render-facing projection of an engine
type CalculatorState struct {
	Display string   `json:"display"`
	Pending string   `json:"pending,omitempty"` // "{first operand} {operator}" while an operation is pending
	History []string `json:"history"`           // Oldest first
	Memory  float64  `json:"memory,omitempty"`  // Omitted while the register is zero
}

// NewCalculatorState projects an engine snapshot
func NewCalculatorState(s calculator.State) CalculatorState {
	history := s.History
	if history == nil {
		history = []string{}
	}
	return CalculatorState{
		Display: s.Display,
		Pending: s.Pending,
		History: history,
		Memory:  s.Memory,
	}
}
