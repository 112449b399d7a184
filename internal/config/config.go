// Package config loads zforge settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/zarlcorp/zforge/internal/account"
)

// Config holds all user-tunable settings. Every field has a working
// default; a config file is never required.
type Config struct {
	OutputFile  string `yaml:"output_file" env:"ZFORGE_OUTPUT_FILE" env-default:"account_details.txt"`
	TempMailURL string `yaml:"temp_mail_url" env:"ZFORGE_TEMP_MAIL_URL" env-default:"https://temp-mail.org/"`
	SignupURL   string `yaml:"signup_url" env:"ZFORGE_SIGNUP_URL" env-default:"https://www.epicgames.com/id/register"`

	PasswordLength int      `yaml:"password_length" env:"ZFORGE_PASSWORD_LENGTH" env-default:"12"`
	YearMin        int      `yaml:"year_min" env:"ZFORGE_YEAR_MIN" env-default:"1970"`
	YearMax        int      `yaml:"year_max" env:"ZFORGE_YEAR_MAX" env-default:"2004"`
	Countries      []string `yaml:"countries" env:"ZFORGE_COUNTRIES"`
	DefaultCountry string   `yaml:"default_country" env:"ZFORGE_DEFAULT_COUNTRY"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return d + "/zforge/config.yaml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "zforge.yaml"
	}
	return home + "/.config/zforge/config.yaml"
}

// Load reads the config file at path, falling back to defaults and env
// overrides when the file does not exist. An empty path uses DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env config: %w", err)
		}
	}

	return &cfg, nil
}

// GeneratorConfig converts app settings into generation parameters.
// Unset list fields fall back to the generator's built-in sets.
func (c *Config) GeneratorConfig() account.Config {
	gen := account.DefaultConfig()
	gen.PasswordLength = c.PasswordLength
	gen.YearMin = c.YearMin
	gen.YearMax = c.YearMax
	if len(c.Countries) > 0 {
		gen.Countries = c.Countries
	}
	if c.DefaultCountry != "" {
		gen.DefaultCountry = c.DefaultCountry
	}
	return gen
}
