package results

// GetStateToolResult represents the result of the get state and clear history tools
type GetStateToolResult struct {
	Message string          `json:"message"`
	State   CalculatorState `json:"state"`
}
