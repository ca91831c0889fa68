package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvConfigPath names the environment variable pointing at a config file.
const EnvConfigPath = "CONTROLGEN_CONFIG"

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) — explicit path argument, or CONTROLGEN_CONFIG if set
//  3. env (prefix CONTROLGEN_)
func Load(path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: CONTROLGEN_OUTPUT_PATH, CONTROLGEN_SPLIT, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("CONTROLGEN_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "controlgen_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		return nil, errors.New("data_dir must not be empty")
	}

	if cfg.AircraftFile == "" {
		return nil, errors.New("aircraft_file must not be empty")
	}

	return &cfg, nil
}
