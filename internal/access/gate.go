// Package access decides whether a caller may open the calculator for an
// experience.
package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/averycrespi/calc-mcp/pkg/types"
)

// DenialMessage is shown in place of the calculator when access is denied
const DenialMessage = "You do not have access to this experience."

// ErrMissingIdentity is returned when no caller identity was supplied
var ErrMissingIdentity = errors.New("missing caller identity")

var _ types.AccessChecker = &Gate{}

// Gate checks callers against a policy that can be replaced at runtime
type Gate struct {
	policy *Policy
	mu     sync.RWMutex
}

// NewGate creates a gate for the given policy
func NewGate(policy *Policy) *Gate {
	if policy == nil {
		policy = &Policy{}
	}
	return &Gate{policy: policy}
}

// SetPolicy replaces the policy used by later checks
func (g *Gate) SetPolicy(policy *Policy) {
	if policy == nil {
		policy = &Policy{}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.policy = policy
}

// Check resolves the caller's access level for an experience
func (g *Gate) Check(ctx context.Context, userID, experienceID string) (types.AccessDecision, error) {
	if err := ctx.Err(); err != nil {
		return types.AccessDecision{}, err
	}
	if userID == "" {
		return types.AccessDecision{}, fmt.Errorf("failed to verify caller: %w", ErrMissingIdentity)
	}

	g.mu.RLock()
	policy := g.policy
	g.mu.RUnlock()

	level := policy.level(userID, experienceID)
	decision := types.AccessDecision{
		UserID:         userID,
		UserName:       policy.userName(userID),
		ExperienceID:   experienceID,
		ExperienceName: policy.experienceName(experienceID),
		Level:          level,
		HasAccess:      level.HasAccess(),
	}

	slog.Debug("Checked experience access",
		"user_id", userID, "experience_id", experienceID, "access_level", level, "has_access", decision.HasAccess)

	return decision, nil
}

// WelcomeMessage is the greeting shown above the calculator
func WelcomeMessage(d types.AccessDecision) string {
	return fmt.Sprintf("Welcome %s! You have %s access to %s", d.UserName, d.Level, d.ExperienceName)
}
