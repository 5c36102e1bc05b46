package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"circles/pkg/approx"
)

const (
	EnvSeed      = "SEED"
	EnvPalette   = "PALETTE"
	EnvLogLevel  = "LOG_LEVEL"
	EnvWorkers   = "WORKERS"
	EnvStatsFile = "STATS_FILE"
	EnvMaxFiles  = "MAX_FILES"
)

const Usage = "usage: circles <input> <output> [iterations]"

var (
	ErrMissingInput  = errors.New("first argument must be the input image")
	ErrMissingOutput = errors.New("second argument must be the output image")
	ErrIterations    = errors.New("iterations must be a non-negative integer")
	ErrTooManyArgs   = errors.New("too many arguments")
)

// pcgStream is the second PCG word; the seed supplies the first.
const pcgStream = 0x9e3779b97f4a7c15

type Config struct {
	Input      string
	Output     string
	Iterations int

	Seed      uint64
	Palette   bool
	LogLevel  log.Level
	Workers   int
	MaxFiles  int
	StatsFile string
}

// Parse reads the positional arguments (without the program name) and the
// settings exposed through getenv.
func Parse(args []string, getenv func(string) string) (Config, error) {
	config := Config{
		Iterations: approx.DefaultIterations,
		LogLevel:   log.InfoLevel,
		Workers:    runtime.NumCPU(),
		StatsFile:  getenv(EnvStatsFile),
	}

	switch {
	case len(args) < 1 || args[0] == "":
		return config, ArgumentError(ErrMissingInput)
	case len(args) < 2 || args[1] == "":
		return config, ArgumentError(ErrMissingOutput)
	case len(args) > 3:
		return config, ArgumentError(fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(args[3:], " ")))
	}
	config.Input, config.Output = args[0], args[1]

	if len(args) == 3 {
		n, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return config, ArgumentError(fmt.Errorf("%w: %q", ErrIterations, args[2]))
		}
		config.Iterations = int(n)
	}

	if s := getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return config, ArgumentError(fmt.Errorf("invalid %s %q: %w", EnvSeed, s, err))
		}
		config.Seed = seed
	} else {
		config.Seed = rand.Uint64()
	}

	if s := getenv(EnvPalette); s != "" {
		enabled, err := strconv.ParseBool(s)
		if err != nil {
			return config, ArgumentError(fmt.Errorf("invalid %s %q: %w", EnvPalette, s, err))
		}
		config.Palette = enabled
	}

	if s := getenv(EnvLogLevel); s != "" {
		level, err := log.ParseLevel(s)
		if err != nil {
			return config, ArgumentError(fmt.Errorf("invalid %s %q: %w", EnvLogLevel, s, err))
		}
		config.LogLevel = level
	}

	if s := getenv(EnvWorkers); s != "" {
		workers, err := strconv.Atoi(s)
		if err != nil || workers < 1 {
			return config, ArgumentError(fmt.Errorf("invalid %s %q: must be a positive integer", EnvWorkers, s))
		}
		config.Workers = workers
	}

	if s := getenv(EnvMaxFiles); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return config, ArgumentError(fmt.Errorf("invalid %s %q: must be a non-negative integer", EnvMaxFiles, s))
		}
		config.MaxFiles = n
	}

	return config, nil
}

// Rand returns a fresh random source for the configured seed. Equal seeds
// yield equal sequences.
func (c Config) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(c.Seed, pcgStream))
}
