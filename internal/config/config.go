package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBSource string `yaml:"db_source"`
	Port     string `yaml:"port"`
	Env      string `yaml:"environment"`
}

// Load reads the optional yaml file at path, then applies environment
// overrides (DB_SOURCE, SERVER_PORT, ENVIRONMENT). An empty path skips the
// file step. DB_SOURCE must be set one way or the other.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Port: "8080",
		Env:  "development",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to env
		default:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("DB_SOURCE"); v != "" {
		cfg.DBSource = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Env = v
	}

	if cfg.DBSource == "" {
		return nil, fmt.Errorf("DB_SOURCE is required (env or config file)")
	}
	return cfg, nil
}
