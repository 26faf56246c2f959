package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the run configuration for the mesher CLI.
type Config struct {
	Seed    int64  `yaml:"seed"`
	Radius  int    `yaml:"radius"` // chunk radius around the origin to generate and mesh
	Workers int    `yaml:"workers"`
	Greedy  bool   `yaml:"greedy"`
	Output  string `yaml:"output"` // OBJ file path

	Noise NoiseConfig `yaml:"noise"`
}

// NoiseConfig mirrors world.GeneratorParams in the config file.
type NoiseConfig struct {
	Alpha      float64 `yaml:"alpha"`
	Beta       float64 `yaml:"beta"`
	Octaves    int32   `yaml:"octaves"`
	Scale      float64 `yaml:"scale"`
	BaseHeight int     `yaml:"base_height"`
	Amplitude  float64 `yaml:"amplitude"`
}

// Load reads a YAML config file, applying defaults for anything unset. An
// empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Seed:    1,
		Radius:  4,
		Workers: runtime.NumCPU(),
		Greedy:  false,
		Output:  "world.obj",
		Noise: NoiseConfig{
			Alpha:      2.0,
			Beta:       2.0,
			Octaves:    3,
			Scale:      1.0 / 48.0,
			BaseHeight: 6,
			Amplitude:  6,
		},
	}
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("radius must be >= 0, got %d", c.Radius)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.Noise.Octaves < 1 {
		return fmt.Errorf("noise octaves must be >= 1, got %d", c.Noise.Octaves)
	}
	if c.Noise.Scale <= 0 {
		return fmt.Errorf("noise scale must be > 0, got %g", c.Noise.Scale)
	}
	return nil
}
