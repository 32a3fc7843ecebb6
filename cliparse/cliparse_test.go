// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "Postgres")
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	os.Setenv("AWARD_SLUG_SALT", "test-slug")
	os.Setenv("CURRENCY", "ghs")
	os.Setenv("CEREMONY_OVERRIDE", "false")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.Currency != "GHS" {
		t.Errorf("expected GHS, got %s", cfg.Currency)
	}
	if cfg.CeremonyOverride {
		t.Error("expected ceremony override to be disabled")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-salt", "s1", "-slug-salt", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-admin-salt", "s1", "-slug-salt", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
	if !cfg.CeremonyOverride {
		t.Error("expected ceremony override on by default")
	}
	if cfg.Currency != "USD" {
		t.Errorf("expected USD, got %s", cfg.Currency)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.SlogLevel())
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing database", []string{"-admin-salt", "s1", "-slug-salt", "s2"}},
		{"missing admin salt", []string{"-d", "file:test.db", "-slug-salt", "s2"}},
		{"missing slug salt", []string{"-d", "file:test.db", "-admin-salt", "s1"}},
		{"unknown database type", []string{"-d", "x", "-t", "mysql", "-admin-salt", "s1", "-slug-salt", "s2"}},
		{"bad ceremony flag", []string{"-d", "x", "-admin-salt", "s1", "-slug-salt", "s2", "-ceremony-override", "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			defer os.Clearenv()

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("AWARD_SLUG_SALT=from-file\nCURRENCY=EUR\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	os.Setenv("CURRENCY", "GHS")

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("AWARD_SLUG_SALT"); got != "from-file" {
		t.Errorf("expected value from file, got %q", got)
	}
	if got := os.Getenv("CURRENCY"); got != "GHS" {
		t.Errorf("existing env should win, got %q", got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
