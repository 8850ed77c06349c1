package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jsamuelsen11/tasks-service/internal/platform/config"
)

// Backend modes.
const (
	ModeRemote = "remote"
	ModeLocal  = "local"
)

// ErrUnknownMode is returned when TASKCTL_MODE is neither remote nor local.
var ErrUnknownMode = errors.New("unknown mode")

// Config holds taskctl settings read from TASKCTL_* environment variables.
type Config struct {
	Mode        string        `env:"TASKCTL_MODE" envDefault:"remote"`
	BaseURL     string        `env:"TASKCTL_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout     time.Duration `env:"TASKCTL_TIMEOUT" envDefault:"10s"`
	MaxAttempts int           `env:"TASKCTL_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	DSN         string        `env:"TASKCTL_DB_DSN"`
	SessionFile string        `env:"TASKCTL_SESSION_FILE"`
	LogLevel    string        `env:"TASKCTL_LOG_LEVEL" envDefault:"warn"`
}

// LoadConfig parses TASKCTL_* variables from environment, or from the
// process environment when environment is nil, and fills in path defaults
// under the user config directory.
func LoadConfig(environment map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environment}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if cfg.Mode != ModeRemote && cfg.Mode != ModeLocal {
		return Config{}, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownMode, cfg.Mode, ModeRemote, ModeLocal)
	}

	if cfg.SessionFile == "" || (cfg.Mode == ModeLocal && cfg.DSN == "") {
		dir, err := configDir()
		if err != nil {
			return Config{}, err
		}
		if cfg.SessionFile == "" {
			cfg.SessionFile = filepath.Join(dir, "session.json")
		}
		if cfg.Mode == ModeLocal && cfg.DSN == "" {
			cfg.DSN = "file:" + filepath.Join(dir, "tasks.db") + "?_pragma=foreign_keys(1)"
		}
	}
	return cfg, nil
}

// ClientConfig converts the remote settings into an httpclient
// configuration, keeping the library defaults for everything taskctl does
// not expose.
func (c Config) ClientConfig() config.ClientConfig {
	cc := config.DefaultClientConfig()
	cc.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout > 0 {
		cc.Timeout = c.Timeout
	}
	if c.MaxAttempts > 0 {
		cc.Retry.MaxAttempts = c.MaxAttempts
	}
	return cc
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, "taskctl"), nil
}
