package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const validConfig = `
server:
  listen_addr: ":50051"
database:
  host: "localhost"
  port: 5432
  user: "simpeg"
  password: "secret"
  name: "simpeg"
  conn_max_lifetime: "30m"
auth:
  token_secret: "test-secret"
  token_ttl: "12h"
wilayah:
  base_url: "https://wilayah.id/api"
  timeout: "5s"
`

func TestLoad_Valid(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, validConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.ListenAddr != ":50051" {
		t.Fatalf("unexpected listen addr: %s", cfg.Server.ListenAddr)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Fatalf("expected default ssl mode, got %s", cfg.Database.SSLMode)
	}
	if cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("unexpected conn max lifetime: %v", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Fatalf("unexpected token ttl: %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.TokenIssuer != "simpeg" {
		t.Fatalf("expected default issuer, got %s", cfg.Auth.TokenIssuer)
	}
	if cfg.Wilayah.Timeout != 5*time.Second {
		t.Fatalf("unexpected wilayah timeout: %v", cfg.Wilayah.Timeout)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	contents := strings.ReplaceAll(validConfig, `  token_ttl: "12h"`, "")
	contents = strings.ReplaceAll(contents, `  timeout: "5s"`, "")
	path := writeConfigFile(t, contents)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Wilayah.Timeout != 10*time.Second {
		t.Fatalf("expected default wilayah timeout, got %v", cfg.Wilayah.Timeout)
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"listen_addr":  "listen_addr:",
		"db host":      "host:",
		"db password":  "password:",
		"token secret": "token_secret:",
		"wilayah url":  "base_url:",
	}

	for name, marker := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var contents strings.Builder
			for _, l := range strings.Split(validConfig, "\n") {
				if strings.Contains(l, marker) {
					continue
				}
				contents.WriteString(l + "\n")
			}

			path := writeConfigFile(t, contents.String())
			if _, err := Load(path); err == nil {
				t.Fatalf("expected error when %s is missing", name)
			}
		})
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Parallel()

	contents := strings.ReplaceAll(validConfig, `"30m"`, `"not-a-duration"`)
	path := writeConfigFile(t, contents)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "simpeg", SSLMode: "disable"}
	want := "postgres://u:p@db:5432/simpeg?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Fatalf("DSN mismatch: got %s want %s", got, want)
	}
}
