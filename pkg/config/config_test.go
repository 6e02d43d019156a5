package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	errs "dbpool/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestYAMLSource tests loading a YAML configuration file
func TestYAMLSource(t *testing.T) {
	path := writeFile(t, "db.yaml", "ip: db.internal\nport: 3307\ninitSize: 3\npassword: \"\"\n")

	src, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := src.GetString("ip", "localhost"); got != "db.internal" {
		t.Errorf("ip = %q", got)
	}
	if got := src.GetInt("port", 3306); got != 3307 {
		t.Errorf("port = %d", got)
	}
	if got := src.GetInt("initSize", 5); got != 3 {
		t.Errorf("initSize = %d", got)
	}
	if got := src.GetString("password", "fallback"); got != "" {
		t.Errorf("password should be empty, got %q", got)
	}
}

// TestTOMLSource tests loading a TOML configuration file
func TestTOMLSource(t *testing.T) {
	path := writeFile(t, "db.toml", "ip = \"10.0.0.2\"\nmaxSize = 20\n")

	src, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := src.GetString("ip", "localhost"); got != "10.0.0.2" {
		t.Errorf("ip = %q", got)
	}
	if got := src.GetInt("maxSize", 10); got != 20 {
		t.Errorf("maxSize = %d", got)
	}
}

// TestFlatSource tests the line-oriented key=value parser
func TestFlatSource(t *testing.T) {
	path := writeFile(t, "db_config.ini",
		"# comment\nip=127.0.0.1\nport=3308\nusername = root \nnot-a-pair\nmaxIdleTime=30\n")

	src, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := src.GetString("ip", ""); got != "127.0.0.1" {
		t.Errorf("ip = %q", got)
	}
	if got := src.GetInt("port", 0); got != 3308 {
		t.Errorf("port = %d", got)
	}
	if got := src.GetString("username", ""); got != "root" {
		t.Errorf("username not trimmed: %q", got)
	}
	if got := src.GetInt("maxIdleTime", 60); got != 30 {
		t.Errorf("maxIdleTime = %d", got)
	}
}

// TestStructuredFallsBackToFlat tests that a file with a structured extension
// but key=value content still loads through the fallback parser
func TestStructuredFallsBackToFlat(t *testing.T) {
	path := writeFile(t, "db.yaml", "ip=192.168.1.5\nport: [unbalanced\nport=3309\n")

	src, err := New(path)
	if err == nil {
		t.Fatal("expected a degradation error from the fallback chain")
	}
	if got := src.GetString("ip", ""); got != "192.168.1.5" {
		t.Errorf("fallback parser missed ip, got %q", got)
	}
	if got := src.GetInt("port", 0); got != 3309 {
		t.Errorf("fallback parser missed port, got %d", got)
	}
}

// TestMissingFileServesDefaults tests that a nonexistent path yields a usable
// defaults-only source rather than a fatal error
func TestMissingFileServesDefaults(t *testing.T) {
	src, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, errs.ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
	if src == nil {
		t.Fatal("source must be usable even without a file")
	}
	if got := src.GetString("ip", "localhost"); got != "localhost" {
		t.Errorf("expected default, got %q", got)
	}
	if got := src.GetInt("maxSize", 10); got != 10 {
		t.Errorf("expected default, got %d", got)
	}
}

// TestEnvOverride tests that environment variables win over file values
func TestEnvOverride(t *testing.T) {
	path := writeFile(t, "db.yaml", "ip: from-file\nport: 3307\n")
	t.Setenv("DBPOOL_IP", "from-env")
	t.Setenv("DBPOOL_PORT", "3310")

	src, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := src.GetString("ip", ""); got != "from-env" {
		t.Errorf("env override lost: %q", got)
	}
	if got := src.GetInt("port", 0); got != 3310 {
		t.Errorf("env override lost: %d", got)
	}
}

// TestAccessorTypeCoercion tests defaults for missing and mistyped keys
func TestAccessorTypeCoercion(t *testing.T) {
	path := writeFile(t, "db.yaml", "port: \"3311\"\nverbose: \"true\"\nbadint: notanumber\n")

	src, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got := src.GetInt("port", 0); got != 3311 {
		t.Errorf("string int not coerced: %d", got)
	}
	if !src.GetBool("verbose", false) {
		t.Error("string bool not coerced")
	}
	if got := src.GetInt("badint", 42); got != 42 {
		t.Errorf("unparseable int should fall back, got %d", got)
	}
	if got := src.GetInt("missing", 7); got != 7 {
		t.Errorf("missing key should fall back, got %d", got)
	}
}
