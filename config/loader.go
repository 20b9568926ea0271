package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file search path.
const EnvConfigPath = "TRANSIT_CHECK_CONFIG"

const defaultMaxReported = 20

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads .env, then loads and validates the configuration from
// $TRANSIT_CHECK_CONFIG or config.yml
func LoadAppConfig() error {
	_ = godotenv.Load()

	paths := []string{"config.yml", "./configs/config.yml"}
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = []string{p}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes and validates a YAML configuration and applies defaults
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	v := validator.New()
	if err := v.Struct(cfg.Check); err != nil {
		return cfg, err
	}
	// sources are optional; if present validate each
	for _, s := range cfg.Sources {
		if err := v.Struct(s); err != nil {
			return cfg, err
		}
	}
	if cfg.Check.MaxReported == 0 {
		cfg.Check.MaxReported = defaultMaxReported
	}
	return cfg, nil
}

// SelectSource chooses a source by name; fallback to first; if none, use top-level paths.
func SelectSource(name string) Source {
	if name != "" {
		for _, s := range Config.Sources {
			if s.Name == name {
				return s
			}
		}
	}
	if len(Config.Sources) > 0 {
		return Config.Sources[0]
	}
	return Source{Name: "default", GraphPath: Config.GraphPath, SectionPath: Config.SectionPath}
}
