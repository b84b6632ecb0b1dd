// Package bench runs the solver backends over a directory of DIMACS
// instances and writes the measurements to CSV.
package bench

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Config drives a benchmark run. It is read from a JSON file and decoded
// through mapstructure so missing keys fall back to defaults.
type Config struct {
	DataDir string
	Output  string
	Solvers []string
	WalkSAT WalkSATConfig
	ILS     ILSConfig
}

type WalkSATConfig struct {
	MaxFlips         int
	MaxRestarts      int
	NoiseProbability float64
	Seed             uint64
}

type ILSConfig struct {
	MaxIterations        int
	LocalSearchFlips     int
	PerturbationStrength float64
	NoiseProbability     float64
	Seed                 uint64
}

func DefaultConfig() Config {
	return Config{
		DataDir: "data",
		Output:  "benchmark_results.csv",
		Solvers: []string{"dpll", "walksat"},
		WalkSAT: WalkSATConfig{
			MaxFlips:         10000,
			MaxRestarts:      50,
			NoiseProbability: 0.57,
		},
		ILS: ILSConfig{
			MaxIterations:        100,
			LocalSearchFlips:     1000,
			PerturbationStrength: 0.1,
			NoiseProbability:     0.57,
		},
	}
}

func LoadConfig(file string) (Config, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file: %w", err)
	}

	config := DefaultConfig()
	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file: %w", err)
	}
	return config, nil
}
