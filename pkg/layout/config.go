package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/spherelab/constellation/pkg/errors"
)

// Defaults for Config fields. These are the single source of truth shared
// by the CLI, server, and pipeline.
const (
	// DefaultCoverageFactor is the fraction of sphere area clusters may
	// occupy together.
	DefaultCoverageFactor = 0.7

	// DefaultMinRadius is the minimum cluster angular radius, radians.
	DefaultMinRadius = 0.1

	// DefaultSphereRadius is the world-space output scale.
	DefaultSphereRadius = 5000.0

	// DefaultForceIterations is the local layout simulation step count.
	DefaultForceIterations = 100

	// DefaultRepulsionStrength scales node-pair repulsion.
	DefaultRepulsionStrength = 1.0

	// DefaultAttractionStrength scales edge attraction.
	DefaultAttractionStrength = 1.0

	// DefaultInitialTemperature is the annealing start value.
	DefaultInitialTemperature = 0.1

	// DefaultRefinementIterations bounds the overlap-elimination rounds.
	DefaultRefinementIterations = 50

	// DefaultRefinementMargin is the required angular separation margin.
	DefaultRefinementMargin = 0.02

	// DefaultRefinementDamping scales the per-round refinement step.
	DefaultRefinementDamping = 0.8

	// DefaultSeed makes layouts reproducible by default.
	DefaultSeed = uint64(42)
)

// Config holds the numeric parameters of the layout pipeline.
// The zero value is not usable; start from DefaultConfig or call
// ApplyDefaults to fill unset fields.
type Config struct {
	CoverageFactor       float64 `json:"coverage_factor,omitempty" toml:"coverage_factor"`
	MinRadius            float64 `json:"min_radius,omitempty" toml:"min_radius"`
	SphereRadius         float64 `json:"sphere_radius,omitempty" toml:"sphere_radius"`
	ForceIterations      int     `json:"force_iterations,omitempty" toml:"force_iterations"`
	RepulsionStrength    float64 `json:"repulsion_strength,omitempty" toml:"repulsion_strength"`
	AttractionStrength   float64 `json:"attraction_strength,omitempty" toml:"attraction_strength"`
	InitialTemperature   float64 `json:"initial_temperature,omitempty" toml:"initial_temperature"`
	RefinementIterations int     `json:"refinement_iterations,omitempty" toml:"refinement_iterations"`
	RefinementMargin     float64 `json:"refinement_margin,omitempty" toml:"refinement_margin"`
	RefinementDamping    float64 `json:"refinement_damping,omitempty" toml:"refinement_damping"`
	Seed                 uint64  `json:"seed,omitempty" toml:"seed"`

	// Logger receives progress events. Defaults to a discarding logger.
	Logger *log.Logger `json:"-" toml:"-"`
}

// DefaultConfig returns a Config populated with all defaults.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero-valued fields with their defaults.
// It is idempotent.
func (c *Config) ApplyDefaults() {
	if c.CoverageFactor == 0 {
		c.CoverageFactor = DefaultCoverageFactor
	}
	if c.MinRadius == 0 {
		c.MinRadius = DefaultMinRadius
	}
	if c.SphereRadius == 0 {
		c.SphereRadius = DefaultSphereRadius
	}
	if c.ForceIterations == 0 {
		c.ForceIterations = DefaultForceIterations
	}
	if c.RepulsionStrength == 0 {
		c.RepulsionStrength = DefaultRepulsionStrength
	}
	if c.AttractionStrength == 0 {
		c.AttractionStrength = DefaultAttractionStrength
	}
	if c.InitialTemperature == 0 {
		c.InitialTemperature = DefaultInitialTemperature
	}
	if c.RefinementIterations == 0 {
		c.RefinementIterations = DefaultRefinementIterations
	}
	if c.RefinementMargin == 0 {
		c.RefinementMargin = DefaultRefinementMargin
	}
	if c.RefinementDamping == 0 {
		c.RefinementDamping = DefaultRefinementDamping
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks that the configuration is structurally sound. It does
// not apply defaults; call ApplyDefaults first.
func (c *Config) Validate() error {
	switch {
	case c.CoverageFactor <= 0 || c.CoverageFactor > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "coverage factor %g outside (0, 1]", c.CoverageFactor)
	case c.MinRadius < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "negative minimum radius %g", c.MinRadius)
	case c.SphereRadius <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "sphere radius %g must be positive", c.SphereRadius)
	case c.ForceIterations < 0 || c.RefinementIterations < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "iteration counts must not be negative")
	case c.RefinementMargin < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "negative refinement margin %g", c.RefinementMargin)
	case c.RefinementDamping <= 0 || c.RefinementDamping > 1:
		return errors.New(errors.ErrCodeInvalidConfig, "refinement damping %g outside (0, 1]", c.RefinementDamping)
	}
	return nil
}
