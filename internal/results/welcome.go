package results

import "github.com/averycrespi/calc-mcp/pkg/types"

// WelcomeToolResult represents the result of the welcome tool
type WelcomeToolResult struct {
	Message string               `json:"message"`
	Access  types.AccessDecision `json:"access"`
}
