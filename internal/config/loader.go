package config

import (
	"context"
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
//  2. file (YAML) if HISCORE_CONFIG is set
//  3. env (prefix HISCORE_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HISCORE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: HISCORE_ADDR, HISCORE_MAX_ENTRIES, ...
	// Keys map to the koanf tags with underscores preserved.
	envProvider := env.Provider("HISCORE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "hiscore_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return ErrEmptyAddr
	case c.Storage != StorageGCS && c.Storage != StorageMemory:
		return ErrUnknownStorage
	case c.Storage == StorageGCS && c.Bucket == "":
		return ErrEmptyBucket
	case c.Storage == StorageGCS && c.Object == "":
		return ErrEmptyObject
	case c.MaxEntries < 1 || c.WriteRetries < 1:
		return ErrInvalidBound
	}
	return nil
}
