package access

import (
	"errors"
	"fmt"
	"os"

	"github.com/averycrespi/calc-mcp/pkg/types"

	"gopkg.in/yaml.v3"
)

// Policy lists experiences, their members and the users' display names
type Policy struct {
	Users       map[string]User       `yaml:"users"`
	Experiences map[string]Experience `yaml:"experiences"`
}

// User is a known caller
type User struct {
	Name string `yaml:"name"`
}

// Experience is a gated page and the access level of each member
type Experience struct {
	Name    string                       `yaml:"name"`
	Members map[string]types.AccessLevel `yaml:"members"`
}

// ParsePolicy decodes a YAML policy document
func ParsePolicy(data []byte) (*Policy, error) {
	var policy Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("failed to parse access policy: %w", err)
	}

	for id, exp := range policy.Experiences {
		for userID, level := range exp.Members {
			switch level {
			case types.AccessAdmin, types.AccessCustomer, types.AccessNone:
			default:
				return nil, fmt.Errorf("experience %s: user %s: invalid access level %q", id, userID, level)
			}
		}
	}

	return &policy, nil
}

// LoadPolicy reads a policy file. A missing file yields an empty policy
// that denies everyone.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Policy{}, nil
		}
		return nil, fmt.Errorf("failed to read access policy: %w", err)
	}
	return ParsePolicy(data)
}

// level returns the caller's access level for an experience
func (p *Policy) level(userID, experienceID string) types.AccessLevel {
	exp, ok := p.Experiences[experienceID]
	if !ok {
		return types.AccessNone
	}
	level, ok := exp.Members[userID]
	if !ok {
		return types.AccessNone
	}
	return level
}

func (p *Policy) userName(userID string) string {
	if u, ok := p.Users[userID]; ok && u.Name != "" {
		return u.Name
	}
	return userID
}

func (p *Policy) experienceName(experienceID string) string {
	if exp, ok := p.Experiences[experienceID]; ok && exp.Name != "" {
		return exp.Name
	}
	return experienceID
}
