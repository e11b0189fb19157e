// Package session owns the single calculator engine of a running server.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/google/uuid"
)

// ErrAccessDenied is returned for every operation once the gate has denied
// the caller
var ErrAccessDenied = errors.New("access denied")

// Manager runs the access check once and then owns the engine for the
// lifetime of the process
type Manager struct {
	checker      types.AccessChecker
	userID       string
	experienceID string

	id       string
	opened   bool
	decision types.AccessDecision
	engine   *calculator.Engine
	mu       sync.Mutex
}

// NewManager creates a session manager for one caller and experience
func NewManager(checker types.AccessChecker, userID, experienceID string) *Manager {
	return &Manager{
		checker:      checker,
		userID:       userID,
		experienceID: experienceID,
		id:           uuid.NewString(),
	}
}

// ID returns the session identifier used in logs
func (m *Manager) ID() string {
	return m.id
}

// Open runs the access check and returns its decision. The engine is
// constructed only when access is granted, and a grant is kept for the
// lifetime of the process. Denials and failed checks are not remembered,
// so a later call checks again against the current policy.
func (m *Manager) Open(ctx context.Context) (types.AccessDecision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.open(ctx)
}

func (m *Manager) open(ctx context.Context) (types.AccessDecision, error) {
	if m.opened {
		return m.decision, nil
	}

	decision, err := m.checker.Check(ctx, m.userID, m.experienceID)
	if err != nil {
		return types.AccessDecision{}, fmt.Errorf("failed to check access: %w", err)
	}

	if !decision.HasAccess {
		slog.Warn("Denied calculator session",
			"session_id", m.id, "user_id", decision.UserID, "experience_id", decision.ExperienceID)
		return decision, nil
	}

	m.decision = decision
	m.opened = true
	m.engine = calculator.New()
	slog.Info("Opened calculator session",
		"session_id", m.id, "user_id", decision.UserID, "access_level", decision.Level)

	return decision, nil
}

// Do runs fn against the engine. Calls are serialized so every
// transition runs to completion before the next one starts.
func (m *Manager) Do(ctx context.Context, fn func(e *calculator.Engine)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	decision, err := m.open(ctx)
	if err != nil {
		return err
	}
	if !decision.HasAccess {
		return fmt.Errorf("user %s, experience %s: %w", decision.UserID, decision.ExperienceID, ErrAccessDenied)
	}

	fn(m.engine)
	return nil
}

// IsOpen reports whether access was granted and the engine exists
func (m *Manager) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.opened
}
