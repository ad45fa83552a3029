package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no path is given and SUBFREQ_CONFIG is unset.
const DefaultPath = "./subfreq.yaml"

// Load reads configuration from a YAML file and environment variables,
// applies overrides (command-line flags) and validates the result.
// Priority: overrides > ENV > YAML > defaults (via env-default tags).
//
// The file is path, or SUBFREQ_CONFIG when path is empty, or DefaultPath.
// A missing file is an error only when it was named explicitly.
func Load(path string, overrides ...func(*Config)) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("SUBFREQ_CONFIG")
	}
	explicitPath := path != ""
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	for _, override := range overrides {
		override(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
