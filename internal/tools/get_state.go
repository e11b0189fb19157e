package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetStateTool reports the calculator state without changing it
type GetStateTool struct {
	session Session
}

// NewGetStateTool creates a new get state tool
func NewGetStateTool(session Session) *GetStateTool {
	return &GetStateTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *GetStateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolGetState,
		mcp.WithDescription("Get the calculator display, pending operation, history and memory"),
	)
	return tool
}

// Handle processes the tool request
func (t *GetStateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var state calculator.State
	if err := t.session.Do(ctx, func(e *calculator.Engine) {
		state = e.Snapshot()
	}); err != nil {
		return sessionError(err), nil
	}

	toolResult := results.GetStateToolResult{
		State: results.NewCalculatorState(state),
	}
	if len(state.History) == 0 {
		toolResult.Message = "No calculations yet."
	} else {
		toolResult.Message = fmt.Sprintf("%d calculations in history.", len(state.History))
	}

	return marshalResult(toolResult), nil
}
