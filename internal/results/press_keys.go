package results

// PressKeysToolResult represents the result of the press keys tool
type PressKeysToolResult struct {
	Message   string            `json:"message"`
	Arguments PressKeysToolArgs `json:"arguments"`
	State     CalculatorState   `json:"state"`
}

// PressKeysToolArgs represents the arguments for the press keys tool
type PressKeysToolArgs struct {
	Keys []string `json:"keys"`
}
