package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option adjusts how Load finds its files.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the server configuration for profile. Later layers win:
//
//	compiled-in defaults
//	{configDir}/base.yaml
//	{configDir}/{profile}.yaml
//	APP_* environment variables
//
// An environment variable applies only when it names a known key, with dots
// written as underscores: APP_SERVER_READ_TIMEOUT sets server.read_timeout,
// APP_STORAGE_DSN sets storage.dsn. Other APP_ variables, APP_PROFILE among
// them, are left alone. Keys in the YAML files that match no setting are an
// error, so a misspelt key fails startup instead of being silently dropped.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	// Resolved against the default keys only, so a YAML typo cannot make an
	// environment variable look known.
	known := envKeys(defaults())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			return known[strings.ToLower(strings.TrimPrefix(name, envPrefix))], value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// validateProfile keeps the profile a bare file name inside the config dir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile must be a plain name, got %q", profile)
	}
	return nil
}

// envKeys maps "server_read_timeout" style names to "server.read_timeout".
func envKeys(settings map[string]any) map[string]string {
	keys := make(map[string]string, len(settings))
	for key := range settings {
		keys[strings.ReplaceAll(key, ".", "_")] = key
	}
	return keys
}
