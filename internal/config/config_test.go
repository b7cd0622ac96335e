package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "inviscid" {
		t.Errorf("expected model inviscid, got %s", cfg.Model)
	}
	if cfg.Horizon <= 0 {
		t.Error("horizon should be positive")
	}
	if cfg.Samples < 2 {
		t.Error("samples should be at least 2")
	}
	if cfg.Projectile.V0 != DefaultV0 {
		t.Errorf("expected v0 %g, got %g", DefaultV0, cfg.Projectile.V0)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("inviscid", "reference")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Projectile.V0 != 928 {
		t.Errorf("expected v0 928, got %g", cfg.Projectile.V0)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("inviscid", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "reference"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("inviscid")
	if len(presets) == 0 {
		t.Error("expected presets for inviscid")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("model: viscous\nintegrator: rk45\nprojectile:\n  v0: 500\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Model != "viscous" {
		t.Errorf("expected model viscous, got %s", cfg.Model)
	}
	if cfg.Projectile.V0 != 500 {
		t.Errorf("expected v0 500, got %g", cfg.Projectile.V0)
	}
	// Unset fields keep their defaults.
	if cfg.Horizon != DefaultHorizon {
		t.Errorf("expected default horizon, got %g", cfg.Horizon)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
