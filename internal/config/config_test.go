package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Orbit.M1 != 1.0 {
		t.Errorf("expected primary mass 1.0, got %g", cfg.Orbit.M1)
	}
	if cfg.Orbit.M2 != 1e-6 {
		t.Errorf("expected secondary mass 1e-6, got %g", cfg.Orbit.M2)
	}
	if cfg.Orbit.SemiMajor != 1.0 || cfg.Orbit.Eccentricity != 0.1 {
		t.Errorf("unexpected default orbit: %+v", cfg.Orbit)
	}
	if cfg.Years != 2.0 {
		t.Errorf("expected 2 years, got %g", cfg.Years)
	}
	if cfg.DtFraction != 1e-2 {
		t.Errorf("expected dt fraction 1e-2, got %g", cfg.DtFraction)
	}
	if cfg.Output != "table.out" {
		t.Errorf("expected output table.out, got %s", cfg.Output)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("orbit:\n  m2: 0.5\n  ecc: 0.3\nyears: 10\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Orbit.M2 != 0.5 || cfg.Orbit.Eccentricity != 0.3 || cfg.Years != 10 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched fields keep defaults.
	if cfg.Orbit.M1 != DefaultM1 || cfg.DtFraction != DefaultDtFraction {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := DefaultConfig()
	cfg.Orbit.Eccentricity = 0.42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Orbit.Eccentricity != 0.42 {
		t.Errorf("expected eccentricity 0.42, got %g", loaded.Orbit.Eccentricity)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("earth")
	if cfg == nil {
		t.Fatal("expected earth preset, got nil")
	}
	if cfg.Orbit.Eccentricity != 0.0167 {
		t.Errorf("expected eccentricity 0.0167, got %g", cfg.Orbit.Eccentricity)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected at least one preset")
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("listed preset %q not retrievable", name)
		}
	}
}
