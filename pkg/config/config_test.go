package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MUHASEBE_LEDGER_FILE", "")
	t.Setenv("MUHASEBE_CURRENCY", "")
	t.Setenv("DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Ledger.File != "ledger.json" {
		t.Errorf("Ledger.File = %q, expected ledger.json", cfg.Ledger.File)
	}
	if cfg.Ledger.Currency != "TL" {
		t.Errorf("Ledger.Currency = %q, expected TL", cfg.Ledger.Currency)
	}
	if cfg.Debug {
		t.Error("Debug = true, expected false by default")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MUHASEBE_LEDGER_FILE", "/tmp/defter.json")
	t.Setenv("MUHASEBE_DB_PATH", "/tmp/history.db")
	t.Setenv("MUHASEBE_CATEGORY_MAP", "/tmp/categories.yaml")
	t.Setenv("MUHASEBE_CURRENCY", "EUR")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Ledger.File != "/tmp/defter.json" {
		t.Errorf("Ledger.File = %q", cfg.Ledger.File)
	}
	if cfg.Ledger.DBPath != "/tmp/history.db" {
		t.Errorf("Ledger.DBPath = %q", cfg.Ledger.DBPath)
	}
	if cfg.Ledger.CategoryMap != "/tmp/categories.yaml" {
		t.Errorf("Ledger.CategoryMap = %q", cfg.Ledger.CategoryMap)
	}
	if cfg.Ledger.Currency != "EUR" {
		t.Errorf("Ledger.Currency = %q", cfg.Ledger.Currency)
	}
	if !cfg.Debug {
		t.Error("Debug = false, expected true")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Ledger: LedgerConfig{File: "ledger.json", Currency: "TL"}}

	if err := cfg.Validate("file", "currency"); err != nil {
		t.Errorf("Validate() error = %v, expected nil", err)
	}

	if err := cfg.Validate("categoryMap"); err == nil {
		t.Error("Validate(categoryMap) expected error for unset field")
	}

	if err := cfg.Validate("bogus"); err == nil {
		t.Error("Validate(bogus) expected error for unknown field")
	}
}
