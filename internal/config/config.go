package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCharge    = -1.0
	DefaultMomentum  = 2.0
	DefaultZ0        = 0.0
	DefaultZf        = 500.0
	DefaultStepSize  = 1.0
	DefaultTolerance = 1.0e-6
	DefaultBz        = 5.0
)

type Config struct {
	Field      FieldConfig     `yaml:"field"`
	Charge     float64         `yaml:"charge"`
	Momentum   float64         `yaml:"momentum"`
	Z0         float64         `yaml:"z0"`
	Zf         float64         `yaml:"zf"`
	StepSize   float64         `yaml:"step_size"`
	MinStep    float64         `yaml:"min_step"`
	MaxStep    float64         `yaml:"max_step"`
	Tolerance  float64         `yaml:"tolerance"`
	Advancer   string          `yaml:"advancer"`
	InitState  InitStateConfig `yaml:"init_state"`
	StopRadius float64         `yaml:"stop_radius"`
}

type FieldConfig struct {
	Type  string  `yaml:"type"` // uniform, solenoid, line
	Bx    float64 `yaml:"bx"`
	By    float64 `yaml:"by"`
	Bz    float64 `yaml:"bz"`
	Z0    float64 `yaml:"z0"`
	L     float64 `yaml:"l"`
	Angle float64 `yaml:"angle"` // rotation about y, radians
}

type InitStateConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	Tx float64 `yaml:"tx"`
	Ty float64 `yaml:"ty"`
}

func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Type: "uniform",
			Bz:   DefaultBz,
		},
		Charge:    DefaultCharge,
		Momentum:  DefaultMomentum,
		Z0:        DefaultZ0,
		Zf:        DefaultZf,
		StepSize:  DefaultStepSize,
		Tolerance: DefaultTolerance,
		Advancer:  "halfstep",
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

// GetInitState assembles the [x, y, tx, ty] state vector.
func (c *Config) GetInitState() []float64 {
	return []float64{c.InitState.X, c.InitState.Y, c.InitState.Tx, c.InitState.Ty}
}

// GetTolerance expands the scalar tolerance to the per-component vector
// the driver expects.
func (c *Config) GetTolerance() []float64 {
	return []float64{c.Tolerance, c.Tolerance, c.Tolerance, c.Tolerance}
}
