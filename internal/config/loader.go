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

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ROSTERD_CONFIG is set
//  3. env (prefix ROSTERD_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for provider contexts

	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ROSTERD_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: ROSTERD_ADDR, ROSTERD_ERROR_LIST_CAP, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("ROSTERD_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "rosterd_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.ErrorListCap < 1:
		return nil, fmt.Errorf("%w: error_list_cap must be positive", ErrInvalidConfig)
	case cfg.MinSuffixLen < 1:
		return nil, fmt.Errorf("%w: min_suffix_len must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
