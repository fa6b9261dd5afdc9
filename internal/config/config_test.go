package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/wfind/wfind/internal/config"
)

func writeConfig(t *testing.T, home string, data map[string]any) string {
	t.Helper()
	configPath := config.GetConfigPath(home)

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}

	if err := os.WriteFile(configPath, out, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	return configPath
}

func TestLoadEmptyFileYieldsDefaults(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if !cfg.IgnoreHidden {
		t.Fatal("default config should ignore hidden files")
	}
	if cfg.CaseSensitive {
		t.Fatal("default config should be case-insensitive")
	}
	if len(cfg.IgnorePatterns) == 0 {
		t.Fatal("default config should carry ignore patterns")
	}
	if cfg.MaxDepth != 0 || cfg.MaxFileSize != 0 {
		t.Fatalf("default limits should be unlimited: depth=%d size=%d", cfg.MaxDepth, cfg.MaxFileSize)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := config.Load(t.TempDir()); err == nil {
		t.Fatal("expected load to fail without a config file")
	}
}

func TestLoadHonorsExplicitIgnoreHiddenFalse(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"ignore_hidden": false})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}
	if cfg.IgnoreHidden {
		t.Fatal("explicit ignore_hidden: false should be honored")
	}
}

func TestLoadAbsentIgnoreHiddenDefaultsTrue(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"case_sensitive": true})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}
	if !cfg.IgnoreHidden {
		t.Fatal("absent ignore_hidden should default to true")
	}
	if !cfg.CaseSensitive {
		t.Fatal("case_sensitive: true should be honored")
	}
}

func TestLoadRejectsUnsupportedOpener(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{"opener": "unsupported"})

	if _, err := config.Load(home); err == nil {
		t.Fatal("expected load to fail for an unsupported opener")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.SetCaseSensitive(true); err != nil {
		t.Fatalf("SetCaseSensitive failed: %v", err)
	}
	if err := cfg.SetMaxDepth(4); err != nil {
		t.Fatalf("SetMaxDepth failed: %v", err)
	}
	if err := cfg.SetMaxFileSize(1 << 20); err != nil {
		t.Fatalf("SetMaxFileSize failed: %v", err)
	}
	if err := cfg.AddIgnorePattern("*.bak"); err != nil {
		t.Fatalf("AddIgnorePattern failed: %v", err)
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected reload to succeed: %v", err)
	}

	if !reloaded.CaseSensitive {
		t.Fatal("case_sensitive did not round-trip")
	}
	if reloaded.MaxDepth != 4 {
		t.Fatalf("max_depth = %d, want 4", reloaded.MaxDepth)
	}
	if reloaded.MaxFileSize != 1<<20 {
		t.Fatalf("max_file_size = %d, want %d", reloaded.MaxFileSize, 1<<20)
	}

	found := false
	for _, p := range reloaded.IgnorePatterns {
		if p == "*.bak" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ignore pattern did not round-trip: %v", reloaded.IgnorePatterns)
	}
}

func TestAddIgnorePatternDeduplicates(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	before := len(cfg.IgnorePatterns)
	if err := cfg.AddIgnorePattern(cfg.IgnorePatterns[0]); err != nil {
		t.Fatalf("AddIgnorePattern failed: %v", err)
	}
	if len(cfg.IgnorePatterns) != before {
		t.Fatalf("duplicate pattern was appended: %v", cfg.IgnorePatterns)
	}
}

func TestRemoveIgnorePattern(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.RemoveIgnorePattern("*.tmp"); err != nil {
		t.Fatalf("RemoveIgnorePattern failed: %v", err)
	}
	for _, p := range cfg.IgnorePatterns {
		if p == "*.tmp" {
			t.Fatalf("pattern still present after removal: %v", cfg.IgnorePatterns)
		}
	}

	if err := cfg.RemoveIgnorePattern("not-there"); err == nil {
		t.Fatal("removing an absent pattern should fail")
	}
}

func TestChangeOpener(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("expected load to succeed: %v", err)
	}

	if err := cfg.ChangeOpener("xdg-open"); err != nil {
		t.Fatalf("ChangeOpener failed: %v", err)
	}
	if err := cfg.ChangeOpener("emacs"); err == nil {
		t.Fatal("unsupported opener should be rejected")
	}
}
