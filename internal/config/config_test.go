package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromPath(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}

	if cfg.Theme != "default" {
		t.Errorf("Expected Theme=%q, got %q", "default", cfg.Theme)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Expected Color=%q, got %q", ColorAuto, cfg.Color)
	}
	if cfg.Path != "" {
		t.Errorf("Expected empty Path for default config, got %q", cfg.Path)
	}
}

func TestLoad_CustomTheme(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := "theme: monokai\ncolor: never\n"
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	cfg, err := LoadFromPath(tmpDir)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}

	if cfg.Theme != "monokai" {
		t.Errorf("Expected Theme=%q, got %q", "monokai", cfg.Theme)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Expected Color=%q, got %q", ColorNever, cfg.Color)
	}
	if cfg.Path != configPath {
		t.Errorf("Expected Path=%q, got %q", configPath, cfg.Path)
	}
}

func TestLoad_WalksUpTree(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("theme: dark\n"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	cfg, err := LoadFromPath(nested)
	if err != nil {
		t.Fatalf("LoadFromPath() failed: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Expected Theme=%q, got %q", "dark", cfg.Theme)
	}
}

func TestLoad_UnknownThemeRejected(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("theme: nope\n"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	if _, err := LoadFromPath(tmpDir); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestLoad_InvalidColorRejected(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("color: sometimes\n"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	if _, err := LoadFromPath(tmpDir); err == nil {
		t.Error("expected error for invalid color mode")
	}
}

func TestLoad_InvalidYAMLRejected(t *testing.T) {
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte("theme: [unclosed\n"), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	if _, err := LoadFromPath(tmpDir); err == nil {
		t.Error("expected error for invalid YAML")
	}
}
