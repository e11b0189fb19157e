package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/averycrespi/calc-mcp/internal/access"
	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool name prefix for all MCP tools
const ToolPrefix = "calculator."

// Tool names
const (
	ToolPressKeys    = ToolPrefix + "press_keys"
	ToolPressButtons = ToolPrefix + "press_buttons"
	ToolGetState     = ToolPrefix + "get_state"
	ToolClearHistory = ToolPrefix + "clear_history"
	ToolWelcome      = ToolPrefix + "welcome"
)

// Session is the gated calculator session the tools operate on
type Session interface {
	Open(ctx context.Context) (types.AccessDecision, error)
	Do(ctx context.Context, fn func(e *calculator.Engine)) error
}

var _ Session = &session.Manager{}

// ParseTokens splits a whitespace separated input sequence
func ParseTokens(input string) []string {
	return strings.Fields(input)
}

// sessionError converts a session failure into a tool error result
func sessionError(err error) *mcp.CallToolResult {
	if errors.Is(err, session.ErrAccessDenied) {
		return mcp.NewToolResultError(access.DenialMessage)
	}
	return mcp.NewToolResultError(fmt.Sprintf("Failed to open calculator session: %v", err))
}

// marshalResult renders a tool result as indented JSON text
func marshalResult(v any) *mcp.CallToolResult {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err))
	}
	return mcp.NewToolResultText(string(jsonBytes))
}
