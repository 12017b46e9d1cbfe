package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolateConfig points the config dir at a temp directory and clears env overrides.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HUBSTAFF_REFRESH_TOKEN", "")
	t.Setenv("HUBSTAFF_ORG_ID", "")
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Export.Output != "hubstaff_summary_by_client.csv" {
		t.Errorf("default output = %q", cfg.Export.Output)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	isolateConfig(t)

	want := DefaultConfig()
	want.Hubstaff.RefreshToken = "rt-secret"
	want.Hubstaff.OrgID = "12345"
	want.Export.Output = "out.csv"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolateConfig(t)
	if err := os.MkdirAll(filepath.Join(dir, "hubsum"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("not [valid toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolateConfig(t)

	cfg := DefaultConfig()
	cfg.Hubstaff.RefreshToken = "from-file"
	cfg.Hubstaff.OrgID = "file-org"

	if got := GetRefreshToken(cfg); got != "from-file" {
		t.Errorf("GetRefreshToken = %q, want from-file", got)
	}

	t.Setenv("HUBSTAFF_REFRESH_TOKEN", "from-env")
	t.Setenv("HUBSTAFF_ORG_ID", "env-org")

	if got := GetRefreshToken(cfg); got != "from-env" {
		t.Errorf("GetRefreshToken = %q, want from-env", got)
	}
	if got := GetOrgID(cfg); got != "env-org" {
		t.Errorf("GetOrgID = %q, want env-org", got)
	}
}

func TestTokenCachePath(t *testing.T) {
	dir := isolateConfig(t)

	cfg := DefaultConfig()
	if got, want := TokenCachePath(cfg), filepath.Join(dir, "hubsum", "token.json"); got != want {
		t.Errorf("default TokenCachePath = %q, want %q", got, want)
	}

	cfg.Export.TokenCache = "/tmp/elsewhere.json"
	if got := TokenCachePath(cfg); got != "/tmp/elsewhere.json" {
		t.Errorf("configured TokenCachePath = %q", got)
	}
}
