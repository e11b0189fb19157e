package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressKeysTool handles keyboard input
type PressKeysTool struct {
	session Session
}

// NewPressKeysTool creates a new press keys tool
func NewPressKeysTool(session Session) *PressKeysTool {
	return &PressKeysTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *PressKeysTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolPressKeys,
		mcp.WithDescription("Press keyboard keys on the calculator in order. "+
			"Accepted keys: 0-9, '.', '+', '-', '*', '/', 'Enter' or '=' (equals), "+
			"'Escape', 'c' or 'C' (clear), 'Backspace'."),
		mcp.WithString("keys", mcp.Required(), mcp.Description("Whitespace separated key names, e.g. \"5 + 3 Enter\"")),
	)
	return tool
}

// Handle processes the tool request
func (t *PressKeysTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keys := ParseTokens(mcp.ParseString(req, "keys", ""))
	if len(keys) == 0 {
		return mcp.NewToolResultError("keys parameter is required"), nil
	}

	inputs, err := calculator.Keys(keys)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid keys: %v", err)), nil
	}

	var state calculator.State
	if err := t.session.Do(ctx, func(e *calculator.Engine) {
		e.Press(inputs...)
		state = e.Snapshot()
	}); err != nil {
		return sessionError(err), nil
	}

	return marshalResult(results.PressKeysToolResult{
		Message:   fmt.Sprintf("Pressed %d keys.", len(inputs)),
		Arguments: results.PressKeysToolArgs{Keys: keys},
		State:     results.NewCalculatorState(state),
	}), nil
}
