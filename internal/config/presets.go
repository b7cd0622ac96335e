package config

import "sort"

var Presets = map[string]map[string]*Config{
	"inviscid": {
		"reference": {
			Model: "inviscid", Integrator: "rk4", Horizon: 15.0, Samples: 10000,
			Projectile: ProjectileConfig{
				Gravity: 9.8, V0: 928, Mass: 4.2e-2, DragCoeff: 0.82,
				Area: 3.14e-4, Density: 1.225,
			},
		},
		"dragfree": {
			Model: "inviscid", Integrator: "rk4", Horizon: 25.0, Samples: 10000,
			Projectile: ProjectileConfig{
				Gravity: 9.8, V0: 100, Mass: 4.2e-2, DragCoeff: 0,
				Area: 3.14e-4, Density: 1.225,
			},
		},
		"slow": {
			Model: "inviscid", Integrator: "rk4", Horizon: 15.0, Samples: 10000,
			Projectile: ProjectileConfig{
				Gravity: 9.8, V0: 100, Mass: 4.2e-2, DragCoeff: 0.82,
				Area: 3.14e-4, Density: 1.225,
			},
		},
	},
	"viscous": {
		"reference": {
			Model: "viscous", Integrator: "rk4", Horizon: 15.0, Samples: 10000,
			Projectile: ProjectileConfig{
				Gravity: 9.8, V0: 928, Mass: 4.2e-2, DragCoeff: 0.82,
				Area: 3.14e-4, Density: 1.225, Viscosity: 1.81e-5, Length: 4e-2,
			},
		},
	},
}

func GetPreset(model, name string) *Config {
	presets, ok := Presets[model]
	if !ok {
		return nil
	}
	return presets[name]
}

func ListPresets(model string) []string {
	presets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
