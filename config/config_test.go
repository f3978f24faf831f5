package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Fatalf("http port: got %d want 8080", cfg.HTTP.Port)
	}
	if cfg.DB.Name != "tanzo" {
		t.Fatalf("db name: got %q want tanzo", cfg.DB.Name)
	}
	if cfg.JWT.Secret != "dev-secret" || cfg.JWT.ExpMin != 60 {
		t.Fatalf("jwt defaults: %+v", cfg.JWT)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("http:\n  host: 0.0.0.0\n  port: 9000\ndb:\n  name: tanzo_test\njwt:\n  secret: file-secret\n  exp_min: 15\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Host != "0.0.0.0" || cfg.HTTP.Port != 9000 {
		t.Fatalf("http: %+v", cfg.HTTP)
	}
	if cfg.DB.Name != "tanzo_test" {
		t.Fatalf("db name: got %q", cfg.DB.Name)
	}
	if cfg.JWT.Secret != "file-secret" || cfg.JWT.ExpMin != 15 {
		t.Fatalf("jwt: %+v", cfg.JWT)
	}
	// untouched keys keep their defaults
	if cfg.DB.Port != 3306 {
		t.Fatalf("db port: got %d want 3306", cfg.DB.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
