package utils

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a run
type Config struct {
	Rows                int           `json:"rows"`
	Cols                int           `json:"cols"`
	FrameRate           time.Duration `json:"frame_rate"`
	RandomDensity       float64       `json:"random_density"`
	PatternFile         string        `json:"pattern_file"`
	Seed                int64         `json:"seed"`
	Wrap                bool          `json:"wrap"`
	MaxGenerations      int           `json:"max_generations"`
	StagnationThreshold int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                40,
		Cols:                80,
		FrameRate:           250 * time.Millisecond,
		RandomDensity:       0.5,
		Seed:                0, // 0 means derive a seed from the clock
		MaxGenerations:      0, // 0 means run until the board dies out
		StagnationThreshold: 5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet, so command-line
// flags override file and default values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of rows in the grid")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of columns in the grid")
	fs.DurationVar(&c.FrameRate, "rate", c.FrameRate, "delay between refresh cycles, e.g. 250ms")
	fs.Float64Var(&c.RandomDensity, "density", c.RandomDensity, "probability in [0,1] that a cell starts alive")
	fs.StringVar(&c.PatternFile, "pattern", c.PatternFile, "pattern file to seed from; .json files use the JSON decoder, anything else RLE")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed; 0 derives one from the clock")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "join opposite edges into a torus instead of clipping")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations; 0 runs until extinction")
	fs.IntVar(&c.StagnationThreshold, "stagnation", c.StagnationThreshold, "consecutive static or cycling frames before the run stops; 0 never stops")
}
