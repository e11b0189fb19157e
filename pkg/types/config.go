package types

// Config represents the configuration for the calc-mcp server
type Config struct {
	PolicyPath   string `yaml:"policy_path,omitempty" json:"policy_path,omitempty"`
	UserID       string `yaml:"user_id,omitempty" json:"user_id,omitempty"`
	ExperienceID string `yaml:"experience_id" json:"experience_id"`
	LogLevel     string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
	WatchPolicy  bool   `yaml:"watch_policy,omitempty" json:"watch_policy,omitempty"`
}
