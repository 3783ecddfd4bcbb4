package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/ffnet/nn"
)

// Config holds the network options shared by every subcommand.
type Config struct {
	Dims             []int
	Seed             int64
	Activation       string
	OutputActivation string
	InitRange        float64
}

// DefaultConfig returns the library defaults with a random seed.
func DefaultConfig() Config {
	return Config{
		Seed:       -1,
		Activation: "relu",
		InitRange:  0.01,
	}
}

// registerFlags binds the config to a subcommand's flag set.
func (c *Config) registerFlags(fs *flag.FlagSet) {
	fs.Func("dims", `layer sizes, input first (e.g. "2 3 1" or "2,3,1")`, func(s string) error {
		dims, err := ParseDims(s)
		if err != nil {
			return err
		}
		c.Dims = dims
		return nil
	})
	fs.Int64Var(&c.Seed, "seed", c.Seed, "initialization seed, -1 for random")
	fs.StringVar(&c.Activation, "activation", c.Activation, "activation of every layer (relu, identity, sigmoid, tanh)")
	fs.StringVar(&c.OutputActivation, "output-activation", c.OutputActivation, "activation of the last layer (default: same as -activation)")
	fs.Float64Var(&c.InitRange, "init-range", c.InitRange, "parameters are drawn from [-r, r)")
}

// Validate checks the config before a network is built.
func (c *Config) Validate() error {
	if len(c.Dims) == 0 {
		return fmt.Errorf("-dims is required")
	}
	if c.InitRange < 0 {
		return fmt.Errorf("-init-range must not be negative, got %v", c.InitRange)
	}
	return nil
}

// Options converts the config into network options.
func (c *Config) Options() ([]nn.Option, error) {
	act, err := nn.ActivationByName(c.Activation)
	if err != nil {
		return nil, err
	}
	opts := []nn.Option{
		nn.WithActivation(act),
		nn.WithInitializer(nn.Uniform{Min: -c.InitRange, Max: c.InitRange}),
	}

	if c.OutputActivation != "" {
		out, err := nn.ActivationByName(c.OutputActivation)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nn.WithOutputActivation(out))
	}
	if c.Seed >= 0 {
		opts = append(opts, nn.WithSeed(uint64(c.Seed)))
	}
	return opts, nil
}

// Build validates the config and builds a randomly initialized network.
func (c *Config) Build() (*nn.Network, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return nn.New(c.Dims, opts...)
}

// ParseDims parses a list of layer sizes separated by spaces or commas.
func ParseDims(s string) ([]int, error) {
	fields := splitList(s)
	dims := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid layer size %q: %w", f, err)
		}
		dims[i] = n
	}
	return dims, nil
}

// ParseVector parses a list of floats separated by spaces or commas.
func ParseVector(s string) ([]float64, error) {
	fields := splitList(s)
	vec := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}
		vec[i] = v
	}
	return vec, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
