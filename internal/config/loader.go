package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "SHELFRANK_"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SHELFRANK_CONFIG is set
//  3. env (prefix SHELFRANK_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SHELFRANK_ADDR, SHELFRANK_DATA_PATH, ...
	// Map env keys like SHELFRANK_DATA_PATH -> data_path (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(envPrefix))
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("addr must not be empty: %w", ErrInvalidConfig)
	case cfg.AnchorVotes < 0:
		return nil, fmt.Errorf("anchor_votes must be non-negative: %w", ErrInvalidConfig)
	case cfg.PowerExponent < 0:
		return nil, fmt.Errorf("power_exponent must be non-negative: %w", ErrInvalidConfig)
	case cfg.DefaultLimit <= 0 || cfg.MaxLimit <= 0:
		return nil, fmt.Errorf("page limits must be positive: %w", ErrInvalidConfig)
	case cfg.DefaultLimit > cfg.MaxLimit:
		return nil, fmt.Errorf("default_limit exceeds max_limit: %w", ErrInvalidConfig)
	case cfg.RefreshIntervalMinutes < 0:
		return nil, fmt.Errorf("refresh_interval_minutes must be non-negative: %w", ErrInvalidConfig)
	}
	return &cfg, nil
}
