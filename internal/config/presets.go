package config

import "github.com/san-kum/orbitlab/internal/orbit"

var Presets = map[string]*Config{
	"earth": {
		Orbit:      orbit.Elements{M1: 1.0, M2: 3e-6, SemiMajor: 1.0, Eccentricity: 0.0167},
		Years:      2.0,
		DtFraction: 1e-3,
		Output:     DefaultOutput,
	},
	"eccentric": {
		Orbit:      orbit.Elements{M1: 1.0, M2: 1e-6, SemiMajor: 1.0, Eccentricity: 0.7},
		Years:      4.0,
		DtFraction: 1e-4,
		Output:     DefaultOutput,
	},
	"binary": {
		Orbit:      orbit.Elements{M1: 1.0, M2: 0.5, SemiMajor: 1.0, Eccentricity: 0.3},
		Years:      2.0,
		DtFraction: 1e-3,
		Output:     DefaultOutput,
	},
	"hot-jupiter": {
		Orbit:      orbit.Elements{M1: 1.0, M2: 1e-3, SemiMajor: 0.05, Eccentricity: 0.05},
		Years:      0.1,
		DtFraction: 1e-3,
		Output:     DefaultOutput,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
