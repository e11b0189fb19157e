package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/server"
	"github.com/averycrespi/calc-mcp/pkg/types"
)

func main() {
	var (
		configPath   = flag.String("config", "calc-mcp.yaml", "Path to the optional YAML config file")
		policyPath   = flag.String("policy", "", "Path to the access policy file (default policy.yaml)")
		userID       = flag.String("user-id", "", "Caller user id (default $"+config.UserIDEnv+")")
		experienceID = flag.String("experience-id", "", "Experience id the calculator is embedded in")
		logLevel     = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		watchPolicy  = flag.Bool("watch-policy", false, "Reload the access policy when the file changes (grants apply to later calls; open sessions are not revoked)")
	)
	flag.Parse()

	fileConfig, err := config.LoadOptional(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg, err := config.Resolve(config.Merge(*fileConfig, types.Config{
		PolicyPath:   *policyPath,
		UserID:       *userID,
		ExperienceID: *experienceID,
		LogLevel:     *logLevel,
		WatchPolicy:  *watchPolicy,
	}))
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// stdout carries the MCP stream, so logs go to stderr
	level, _ := config.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(config.NewLogger(os.Stderr, level))

	mcpServer, err := server.NewCalculatorServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpServer.Serve(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	slog.Info("Server stopped")
}
