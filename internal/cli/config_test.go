package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spherelab/constellation/pkg/layout"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constellation.toml")
	content := `
[layout]
sphere_radius = 100.0
coverage_factor = 0.5
seed = 7

[cache]
disabled = true

[server]
addr = ":9090"
redis_url = "redis://localhost:6379/0"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cfg.Layout.SphereRadius != 100 {
		t.Errorf("SphereRadius = %g, want 100", cfg.Layout.SphereRadius)
	}
	if cfg.Layout.CoverageFactor != 0.5 {
		t.Errorf("CoverageFactor = %g, want 0.5", cfg.Layout.CoverageFactor)
	}
	if cfg.Layout.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Layout.Seed)
	}
	if !cfg.Cache.Disabled {
		t.Error("Cache.Disabled not parsed")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.RedisURL == "" {
		t.Error("Server.RedisURL not parsed")
	}
}

func TestLoadConfigFileMissingExplicit(t *testing.T) {
	if _, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("explicit missing path should error")
	}
}

func TestLoadConfigFileMissingDefault(t *testing.T) {
	// Run from an empty directory with no XDG config: should be a clean
	// zero config, not an error.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfigFile("")
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Layout.SphereRadius != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constellation.toml")
	if err := os.WriteFile(path, []byte("[layout\nbroken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfigFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestMergeLayoutConfig(t *testing.T) {
	var base layout.Config
	base.SphereRadius = 100
	base.Seed = 7

	var flags layout.Config
	flags.SphereRadius = 250

	merged := mergeLayoutConfig(base, flags)
	if merged.SphereRadius != 250 {
		t.Errorf("flag should override file: %g", merged.SphereRadius)
	}
	if merged.Seed != 7 {
		t.Errorf("file value should survive when flag unset: %d", merged.Seed)
	}
}
