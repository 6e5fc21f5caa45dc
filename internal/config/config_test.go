package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
log:
  level: debug
  console: false
demo:
  users_file: testdata/users.yaml
  auto_seed: false
  prompt: "swipe> "
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Env != "dev" {
		t.Fatalf("env default lost: %s", cfg.Env)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if cfg.Log.Console {
		t.Fatalf("console should be overridden to false")
	}
	if cfg.Demo.UsersFile != "testdata/users.yaml" {
		t.Fatalf("unexpected users file: %s", cfg.Demo.UsersFile)
	}
	if cfg.Demo.AutoSeed {
		t.Fatalf("auto_seed should be overridden to false")
	}
	if cfg.Demo.Prompt != "swipe> " {
		t.Fatalf("unexpected prompt: %q", cfg.Demo.Prompt)
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("missing file should yield defaults: %+v", cfg)
	}
}

func TestEnvOverridesWinOverYAML(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_CONSOLE", "false")
	t.Setenv("DEMO_USERS_FILE", "/tmp/users.json")
	t.Setenv("DEMO_AUTO_SEED", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Env != "prod" {
		t.Fatalf("unexpected env: %s", cfg.Env)
	}
	if cfg.Log.Level != "error" {
		t.Fatalf("unexpected log level: %s", cfg.Log.Level)
	}
	if cfg.Log.Console {
		t.Fatalf("console should be false")
	}
	if cfg.Demo.UsersFile != "/tmp/users.json" {
		t.Fatalf("unexpected users file: %s", cfg.Demo.UsersFile)
	}
	if cfg.Demo.AutoSeed {
		t.Fatalf("auto_seed should be false")
	}
}

func TestLoadRejectsMalformedBool(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DEMO_AUTO_SEED", "not-a-bool")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for malformed bool override")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"LOG_LEVEL",
		"LOG_CONSOLE",
		"DEMO_USERS_FILE",
		"DEMO_AUTO_SEED",
		"DEMO_PROMPT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
