package config

var Presets = map[string]*Config{
	"electron-solenoid": {
		Field:     FieldConfig{Type: "solenoid", Bz: 50.0, Z0: 200.0, L: 120.0},
		Charge:    -1.0,
		Momentum:  1.5,
		Z0:        0.0,
		Zf:        400.0,
		StepSize:  1.0,
		Tolerance: 1.0e-6,
		Advancer:  "halfstep",
		InitState: InitStateConfig{Tx: 0.05, Ty: 0.02},
	},
	"muon-uniform": {
		Field:     FieldConfig{Type: "uniform", Bz: 20.0},
		Charge:    1.0,
		Momentum:  4.0,
		Z0:        0.0,
		Zf:        600.0,
		StepSize:  2.0,
		Tolerance: 1.0e-7,
		Advancer:  "dopri54",
		InitState: InitStateConfig{Tx: -0.1, Ty: 0.0},
	},
	"straight-line": {
		Field:     FieldConfig{Type: "line"},
		Charge:    -1.0,
		Momentum:  2.0,
		Z0:        0.0,
		Zf:        100.0,
		StepSize:  1.0,
		Tolerance: 1.0e-4,
		Advancer:  "halfstep",
		InitState: InitStateConfig{Tx: 0.2, Ty: -0.1},
	},
	"backward": {
		Field:     FieldConfig{Type: "uniform", Bz: 10.0},
		Charge:    -1.0,
		Momentum:  2.5,
		Z0:        300.0,
		Zf:        0.0,
		StepSize:  1.0,
		Tolerance: 1.0e-6,
		Advancer:  "halfstep",
		InitState: InitStateConfig{X: 12.0, Y: -4.0, Tx: 0.03, Ty: 0.01},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
