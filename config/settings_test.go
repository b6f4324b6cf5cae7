package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMergesFileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
mongo:
  uri: mongodb://file:27017
  database: from_file
uploads:
  dir: media/
`)
	t.Setenv("MONGOURI", "")
	t.Setenv("DB", "from_env")
	t.Setenv("PUBLIC_BASE_URL", "https://cdn.example.com/media")
	t.Setenv("CACHE_TTL_MINUTES", "3")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("expected port 9000 from file, got %s", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://file:27017" {
		t.Errorf("expected uri from file, got %s", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "from_env" {
		t.Errorf("expected env to override database, got %s", cfg.Mongo.Database)
	}
	if cfg.Uploads.Dir != "media/" {
		t.Errorf("expected upload dir media/, got %s", cfg.Uploads.Dir)
	}
	if cfg.Uploads.PublicBaseURL != "https://cdn.example.com/media" {
		t.Errorf("unexpected public base url %s", cfg.Uploads.PublicBaseURL)
	}
	if cfg.Redis.CacheTTLMinutes != 3 {
		t.Errorf("expected cache ttl 3, got %d", cfg.Redis.CacheTTLMinutes)
	}
	if cfg.Server.ReadTimeoutSeconds != 10 {
		t.Errorf("expected default read timeout to survive, got %d", cfg.Server.ReadTimeoutSeconds)
	}
}

func TestLoadMissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("MONGOURI", "mongodb://env:27017")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.URI != "mongodb://env:27017" {
		t.Errorf("expected uri from env, got %s", cfg.Mongo.URI)
	}
	if cfg.Uploads.Dir != "public/" {
		t.Errorf("expected default upload dir, got %s", cfg.Uploads.Dir)
	}
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGOURI", "")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error without MONGOURI")
	}
}

func TestLoadRejectsBadInteger(t *testing.T) {
	t.Setenv("MONGOURI", "mongodb://env:27017")
	t.Setenv("TOKEN_TTL_MINUTES", "soon")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for non-numeric TOKEN_TTL_MINUTES")
	}
}
