package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/access"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	gate      *access.Gate
	session   *session.Manager
	config    types.Config
}

// NewCalculatorServer creates a new calculator MCP server. The policy file
// is read once here; the access check itself runs on the first tool call.
func NewCalculatorServer(config types.Config) (*CalculatorServer, error) {
	policy, err := access.LoadPolicy(config.PolicyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load access policy: %w", err)
	}

	gate := access.NewGate(policy)
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
	)

	s := &CalculatorServer{
		mcpServer: mcpServer,
		gate:      gate,
		session:   session.NewManager(gate, config.UserID, config.ExperienceID),
		config:    config,
	}
	s.registerTools()

	return s, nil
}

func (s *CalculatorServer) registerTools() {
	pressKeysTool := tools.NewPressKeysTool(s.session)
	s.mcpServer.AddTool(pressKeysTool.GetTool(), pressKeysTool.Handle)

	pressButtonsTool := tools.NewPressButtonsTool(s.session)
	s.mcpServer.AddTool(pressButtonsTool.GetTool(), pressButtonsTool.Handle)

	getStateTool := tools.NewGetStateTool(s.session)
	s.mcpServer.AddTool(getStateTool.GetTool(), getStateTool.Handle)

	clearHistoryTool := tools.NewClearHistoryTool(s.session)
	s.mcpServer.AddTool(clearHistoryTool.GetTool(), clearHistoryTool.Handle)

	welcomeTool := tools.NewWelcomeTool(s.session)
	s.mcpServer.AddTool(welcomeTool.GetTool(), welcomeTool.Handle)
}

// Serve serves MCP over stdio until ctx is done or the client disconnects
func (s *CalculatorServer) Serve(ctx context.Context) error {
	slog.Info("Starting calculator MCP server",
		"session_id", s.session.ID(), "experience_id", s.config.ExperienceID, "policy_path", s.config.PolicyPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.config.WatchPolicy {
		watcher, err := access.NewWatcher(s.config.PolicyPath, s.gate)
		if err != nil {
			return fmt.Errorf("failed to watch access policy: %w", err)
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				slog.Error("Policy watcher stopped", "error", err)
			}
		}()
	}

	stdio := server.NewStdioServer(s.mcpServer)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}
