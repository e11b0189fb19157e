package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearHistoryTool empties the calculation history
type ClearHistoryTool struct {
	session Session
}

// NewClearHistoryTool creates a new clear history tool
func NewClearHistoryTool(session Session) *ClearHistoryTool {
	return &ClearHistoryTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearHistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolClearHistory,
		mcp.WithDescription("Clear the calculation history. Display, pending operation and memory are kept."),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var state calculator.State
	if err := t.session.Do(ctx, func(e *calculator.Engine) {
		e.ClearHistory()
		state = e.Snapshot()
	}); err != nil {
		return sessionError(err), nil
	}

	return marshalResult(results.GetStateToolResult{
		Message: "History cleared.",
		State:   results.NewCalculatorState(state),
	}), nil
}
