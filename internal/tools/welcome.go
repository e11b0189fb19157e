package tools

import (
	"context"

	"github.com/averycrespi/calc-mcp/internal/access"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// WelcomeTool reports the caller's access to the experience
type WelcomeTool struct {
	session Session
}

// NewWelcomeTool creates a new welcome tool
func NewWelcomeTool(session Session) *WelcomeTool {
	return &WelcomeTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *WelcomeTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolWelcome,
		mcp.WithDescription("Check access to the calculator experience and get the welcome message"),
	)
	return tool
}

// Handle processes the tool request
func (t *WelcomeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	decision, err := t.session.Open(ctx)
	if err != nil {
		return sessionError(err), nil
	}

	toolResult := results.WelcomeToolResult{
		Access: decision,
	}
	if decision.HasAccess {
		toolResult.Message = access.WelcomeMessage(decision)
	} else {
		toolResult.Message = access.DenialMessage
	}

	return marshalResult(toolResult), nil
}
