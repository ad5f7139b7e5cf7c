package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config covers the console's tunables: where the backend lives, where the
// token is persisted, guard redirect targets, and the password policy
// threshold. Values come from an optional YAML file with environment
// variables taking precedence.
type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url" env:"SERVIQUEST_API_BASE_URL"`
		TimeoutSeconds int    `yaml:"timeout_seconds" env:"SERVIQUEST_API_TIMEOUT"`
	} `yaml:"api"`

	Token struct {
		File  string `yaml:"file" env:"SERVIQUEST_TOKEN_FILE"`
		Redis struct {
			Enabled     bool `yaml:"enabled" env:"SERVIQUEST_REDIS_ENABLED"`
			RedisConfig `yaml:",inline"`
		} `yaml:"redis"`
	} `yaml:"token"`

	Guard struct {
		LoginPath   string `yaml:"login_path" env:"SERVIQUEST_LOGIN_PATH"`
		DefaultPath string `yaml:"default_path" env:"SERVIQUEST_DEFAULT_PATH"`
	} `yaml:"guard"`

	Password struct {
		MinScore int `yaml:"min_score" env:"SERVIQUEST_PASSWORD_MIN_SCORE"`
	} `yaml:"password"`

	Metrics struct {
		Enabled bool `yaml:"enabled" env:"SERVIQUEST_METRICS_ENABLED"`
	} `yaml:"metrics"`
}

// DefaultConfig returns the configuration the console runs with when no
// file or environment overrides are present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = "http://localhost:5000/api"
	cfg.API.TimeoutSeconds = 30
	cfg.Token.File = defaultTokenFile()
	cfg.Guard.LoginPath = "/login"
	cfg.Guard.DefaultPath = "/dashboard"
	cfg.Password.MinScore = 3
	cfg.Metrics.Enabled = true
	return cfg
}

// LoadConfig reads the YAML file at path when it exists, applies
// environment overrides, and validates the result. An empty path skips the
// file step.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges the rest of the module assumes.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.TimeoutSeconds < 1 {
		return fmt.Errorf("api.timeout_seconds must be >= 1")
	}
	if c.Password.MinScore < 0 || c.Password.MinScore > 4 {
		return fmt.Errorf("password.min_score must be between 0 and 4")
	}
	if c.Token.Redis.Enabled && c.Token.Redis.Addr == "" {
		return fmt.Errorf("token.redis.addr must be set when redis is enabled")
	}
	return nil
}

// NewStore builds the token store the config selects: redis when enabled,
// otherwise the token file.
func (c *Config) NewStore() (Store, error) {
	if c.Token.Redis.Enabled {
		return NewRedisStore(c.Token.Redis.RedisConfig)
	}
	return NewFileStore(c.Token.File), nil
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "serviquest", "token")
}
