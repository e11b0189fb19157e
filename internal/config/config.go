// Package config loads the optional calc-mcp.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"gopkg.in/yaml.v3"
)

const (
	// UserIDEnv supplies the caller identity when no user id is configured
	UserIDEnv = "CALC_MCP_USER_ID"

	defaultPolicyFile = "policy.yaml"
	defaultLogLevel   = "info"
)

// LoadOptional reads a config file if present. A missing file yields an
// empty config.
func LoadOptional(path string) (*types.Config, error) {
	if path == "" {
		return &types.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &types.Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg types.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Relative policy paths are relative to the config file
	if cfg.PolicyPath != "" && !filepath.IsAbs(cfg.PolicyPath) {
		cfg.PolicyPath = filepath.Join(filepath.Dir(path), cfg.PolicyPath)
	}

	return &cfg, nil
}

// Merge returns base with every non-empty field of override applied
func Merge(base, override types.Config) types.Config {
	if override.PolicyPath != "" {
		base.PolicyPath = override.PolicyPath
	}
	if override.UserID != "" {
		base.UserID = override.UserID
	}
	if override.ExperienceID != "" {
		base.ExperienceID = override.ExperienceID
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.WatchPolicy {
		base.WatchPolicy = true
	}
	return base
}

// Resolve fills defaults and validates the result
func Resolve(cfg types.Config) (types.Config, error) {
	cfg.UserID = strings.TrimSpace(cfg.UserID)
	if cfg.UserID == "" {
		cfg.UserID = strings.TrimSpace(os.Getenv(UserIDEnv))
	}

	cfg.ExperienceID = strings.TrimSpace(cfg.ExperienceID)
	if cfg.ExperienceID == "" {
		return types.Config{}, fmt.Errorf("experience id is required")
	}

	if cfg.PolicyPath == "" {
		cfg.PolicyPath = defaultPolicyFile
	}
	if absPath, err := filepath.Abs(cfg.PolicyPath); err == nil {
		cfg.PolicyPath = absPath
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return types.Config{}, err
	}

	return cfg, nil
}
