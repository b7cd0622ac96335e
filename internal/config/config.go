package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHorizon   = 15.0
	DefaultSamples   = 10000
	DefaultGravity   = 9.8
	DefaultV0        = 928.0
	DefaultMass      = 4.2e-2
	DefaultDragCoeff = 0.82
	DefaultArea      = 3.14e-4
	DefaultDensity   = 1.225
	DefaultViscosity = 1.81e-5
	DefaultLength    = 4e-2
)

type Config struct {
	Model      string           `yaml:"model"`
	Integrator string           `yaml:"integrator"`
	Horizon    float64          `yaml:"horizon"`
	Samples    int              `yaml:"samples"`
	Tolerance  float64          `yaml:"tolerance"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

type ProjectileConfig struct {
	Gravity   float64 `yaml:"gravity"`
	V0        float64 `yaml:"v0"`
	Mass      float64 `yaml:"mass"`
	DragCoeff float64 `yaml:"drag_coeff"`
	Area      float64 `yaml:"area"`
	Density   float64 `yaml:"density"`
	Viscosity float64 `yaml:"viscosity"`
	Length    float64 `yaml:"length"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "inviscid",
		Integrator: "rk4",
		Horizon:    DefaultHorizon,
		Samples:    DefaultSamples,
		Projectile: ProjectileConfig{
			Gravity:   DefaultGravity,
			V0:        DefaultV0,
			Mass:      DefaultMass,
			DragCoeff: DefaultDragCoeff,
			Area:      DefaultArea,
			Density:   DefaultDensity,
			Viscosity: DefaultViscosity,
			Length:    DefaultLength,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
