package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressButtonsTool handles on-screen button input
type PressButtonsTool struct {
	session Session
}

// NewPressButtonsTool creates a new press buttons tool
func NewPressButtonsTool(session Session) *PressButtonsTool {
	return &PressButtonsTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *PressButtonsTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressButtons,
		mcp.WithDescription("Press on-screen calculator buttons in order. "+
			"Accepted buttons: 0-9, '.', '+', '-', '*', '/', '^' (power), '%' (percent of), '=', "+
			"'clear', 'backspace', 'sqrt', 'square', 'inverse', 'negate', 'percent', "+
			"'MC', 'MR', 'M+', 'M-', 'clear_history'."),
		mcp.WithString("buttons", mcp.Required(), mcp.Description("Whitespace separated button ids, e.g. \"9 sqrt M+\"")),
	)
	return tool
}

// Handle processes the tool request
func (t *PressButtonsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	buttons := ParseTokens(mcp.ParseString(req, "buttons", ""))
	if len(buttons) == 0 {
		return mcp.NewToolResultError("buttons parameter is required"), nil
	}

	inputs, err := calculator.Buttons(buttons)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid buttons: %v", err)), nil
	}

	var state calculator.State
	if err := t.session.Do(ctx, func(e *calculator.Engine) {
		e.Press(inputs...)
		state = e.Snapshot()
	}); err != nil {
		return sessionError(err), nil
	}

	return marshalResult(results.PressButtonsToolResult{
		Message:   fmt.Sprintf("Pressed %d buttons.", len(inputs)),
		Arguments: results.PressButtonsToolArgs{Buttons: buttons},
		State:     results.NewCalculatorState(state),
	}), nil
}
