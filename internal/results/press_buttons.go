package results

// PressButtonsToolResult represents the result of the press buttons tool
type PressButtonsToolResult struct {
	Message   string               `json:"message"`
	Arguments PressButtonsToolArgs `json:"arguments"`
	State     CalculatorState      `json:"state"`
}

// PressButtonsToolArgs represents the arguments for the press buttons tool
type PressButtonsToolArgs struct {
	Buttons []string `json:"buttons"`
}
