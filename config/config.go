package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/crypto/bcrypt"
)

const (
	envPrefix  = "AUTH_"
	configFile = "config/config.yaml"
)

type Config struct {
	Env             string `koanf:"env"`
	Port            string `koanf:"port"`
	DBURL           string `koanf:"db_url"`
	TokenSecret     string `koanf:"token_secret"`
	TokenTTLMinutes int    `koanf:"token_ttl_minutes"`
	BcryptCost      int    `koanf:"bcrypt_cost"`
	AllowOrigins    string `koanf:"allow_origins"`
}

// Load reads config/config.yaml (when present) and overrides it with
// AUTH_-prefixed environment variables, e.g. AUTH_TOKEN_SECRET maps to
// token_secret.
func Load() (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", configFile, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{
		Env:             "development",
		Port:            "8080",
		TokenTTLMinutes: 300,
		BcryptCost:      bcrypt.DefaultCost,
		AllowOrigins:    "http://localhost:5000",
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DBURL == "" {
		return nil, fmt.Errorf("missing required configuration: db_url")
	}
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("missing required configuration: token_secret")
	}

	return cfg, nil
}
