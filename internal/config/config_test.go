package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// point at a path that does not exist so defaults apply
	cfg, err := Load(t.TempDir() + "/missing.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OutputFile != "account_details.txt" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}
	if cfg.TempMailURL == "" || cfg.SignupURL == "" {
		t.Error("URL defaults missing")
	}
	if cfg.PasswordLength != 12 {
		t.Errorf("PasswordLength = %d, want 12", cfg.PasswordLength)
	}
	if cfg.YearMin != 1970 || cfg.YearMax != 2004 {
		t.Errorf("year range = [%d,%d], want [1970,2004]", cfg.YearMin, cfg.YearMax)
	}
}

func TestLoadFile(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	yaml := `
output_file: /tmp/out.txt
password_length: 16
year_min: 1985
year_max: 1995
countries:
  - Canada
default_country: Canada
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OutputFile != "/tmp/out.txt" {
		t.Errorf("OutputFile = %q", cfg.OutputFile)
	}
	if cfg.PasswordLength != 16 {
		t.Errorf("PasswordLength = %d", cfg.PasswordLength)
	}
	if cfg.YearMin != 1985 || cfg.YearMax != 1995 {
		t.Errorf("year range = [%d,%d]", cfg.YearMin, cfg.YearMax)
	}
	if len(cfg.Countries) != 1 || cfg.Countries[0] != "Canada" {
		t.Errorf("Countries = %v", cfg.Countries)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ZFORGE_PASSWORD_LENGTH", "20")
	cfg, err := Load(t.TempDir() + "/missing.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PasswordLength != 20 {
		t.Errorf("PasswordLength = %d, want env override 20", cfg.PasswordLength)
	}
}

func TestGeneratorConfig(t *testing.T) {
	cfg := &Config{
		PasswordLength: 14,
		YearMin:        1980,
		YearMax:        1990,
	}
	gen := cfg.GeneratorConfig()

	if gen.PasswordLength != 14 {
		t.Errorf("PasswordLength = %d", gen.PasswordLength)
	}
	if gen.YearMin != 1980 || gen.YearMax != 1990 {
		t.Errorf("year range = [%d,%d]", gen.YearMin, gen.YearMax)
	}
	if len(gen.Countries) == 0 {
		t.Error("Countries should fall back to built-in set")
	}
	if gen.DefaultCountry == "" {
		t.Error("DefaultCountry should fall back to built-in default")
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got := DefaultPath(); got != "/custom/config/zforge/config.yaml" {
		t.Errorf("DefaultPath = %q", got)
	}
}
