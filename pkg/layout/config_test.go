package layout

import "testing"

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.CoverageFactor != DefaultCoverageFactor {
		t.Errorf("CoverageFactor = %g", cfg.CoverageFactor)
	}
	if cfg.SphereRadius != DefaultSphereRadius {
		t.Errorf("SphereRadius = %g", cfg.SphereRadius)
	}
	if cfg.ForceIterations != DefaultForceIterations {
		t.Errorf("ForceIterations = %d", cfg.ForceIterations)
	}
	if cfg.Seed != DefaultSeed {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.Logger == nil {
		t.Error("Logger not defaulted")
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := Config{SphereRadius: 100, ForceIterations: 7}
	cfg.ApplyDefaults()

	if cfg.SphereRadius != 100 {
		t.Errorf("SphereRadius = %g, want 100", cfg.SphereRadius)
	}
	if cfg.ForceIterations != 7 {
		t.Errorf("ForceIterations = %d, want 7", cfg.ForceIterations)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(*Config) {}, false},
		{"CoverageTooHigh", func(c *Config) { c.CoverageFactor = 1.5 }, true},
		{"CoverageZero", func(c *Config) { c.CoverageFactor = -0.1 }, true},
		{"NegativeMinRadius", func(c *Config) { c.MinRadius = -1 }, true},
		{"NegativeSphere", func(c *Config) { c.SphereRadius = -5 }, true},
		{"NegativeIterations", func(c *Config) { c.ForceIterations = -1 }, true},
		{"NegativeMargin", func(c *Config) { c.RefinementMargin = -0.1 }, true},
		{"DampingTooHigh", func(c *Config) { c.RefinementDamping = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
