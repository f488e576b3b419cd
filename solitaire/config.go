package solitaire

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var ErrInvalidTrials = errors.New("trial count must be 1 or greater")

// Config holds the settings for a solve run, usually read from YAML.
type Config struct {
	Size      int       `yaml:"size"`
	Strategy  Strategy  `yaml:"strategy"`
	Expansion Expansion `yaml:"expansion"`
	Trials    int       `yaml:"trials"`
}

func DefaultConfig() Config {
	return Config{
		Size:      MinSize,
		Strategy:  BreadthFirst,
		Expansion: Eager,
		Trials:    1,
	}
}

// LoadConfig reads path on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if !ValidSize(c.Size) {
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalidSize)
	}
	if !c.Strategy.Valid() {
		return fmt.Errorf("%s: %w", c.Strategy, ErrUnknownStrategy)
	}
	if c.Expansion != Eager && c.Expansion != Lazy {
		return fmt.Errorf("%d: %w", c.Expansion, ErrUnknownExpansion)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%d trials: %w", c.Trials, ErrInvalidTrials)
	}
	return nil
}

// Solver builds a solver from the config.
func (c Config) Solver(opts ...Option) (*Solver, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(c.Size, c.Strategy, append([]Option{WithExpansion(c.Expansion)}, opts...)...)
}
