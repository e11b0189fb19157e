package types

import "context"

// AccessLevel classifies a caller's relationship to an experience
type AccessLevel string

const (
	// AccessAdmin is an owner or moderator of the experience
	AccessAdmin AccessLevel = "admin"
	// AccessCustomer is a regular member of the experience
	AccessCustomer AccessLevel = "customer"
	// AccessNone means the caller has no access
	AccessNone AccessLevel = "no_access"
)

// HasAccess reports whether the level grants access
func (l AccessLevel) HasAccess() bool {
	return l == AccessAdmin || l == AccessCustomer
}

// AccessDecision is the outcome of an access check
type AccessDecision struct {
	UserID         string      `json:"user_id"`
	UserName       string      `json:"user_name"`
	ExperienceID   string      `json:"experience_id"`
	ExperienceName string      `json:"experience_name"`
	Level          AccessLevel `json:"access_level"`
	HasAccess      bool        `json:"has_access"`
}

// AccessChecker decides whether a caller may use an experience
type AccessChecker interface {
	Check(ctx context.Context, userID, experienceID string) (AccessDecision, error)
}
