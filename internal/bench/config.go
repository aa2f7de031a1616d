// SPDX-License-Identifier: MIT
// Package bench - run configuration and YAML plans.
//
// A plan file lists runs; every field left out falls back to DefaultConfig:
//
//	runs:
//	  - size: 256
//	    threshold: 64
//	    verify: true
//	  - size: 100
//	    threshold: 1
//	    pad: true

package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strassen/matrix"
)

// Default run parameters.
const (
	DefaultSize   = 512
	DefaultSeed   = 1
	DefaultRepeat = 1
)

// Config describes one benchmark run.
type Config struct {
	Size      int   `yaml:"size"`
	Threshold int   `yaml:"threshold"`
	Seed      int64 `yaml:"seed"`
	Repeat    int   `yaml:"repeat"`
	Max       int   `yaml:"max"`
	Verify    bool  `yaml:"verify"`
	Print     bool  `yaml:"print"`
	Pad       bool  `yaml:"pad"`
}

// DefaultConfig returns the parameters used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Size:      DefaultSize,
		Threshold: matrix.DefaultThreshold,
		Seed:      DefaultSeed,
		Repeat:    DefaultRepeat,
		Max:       DefaultMax,
		Pad:       matrix.DefaultZeroPadding,
	}
}

// withDefaults fills zero numeric fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Size == 0 {
		c.Size = d.Size
	}
	if c.Threshold == 0 {
		c.Threshold = d.Threshold
	}
	if c.Seed == 0 {
		c.Seed = d.Seed
	}
	if c.Repeat == 0 {
		c.Repeat = d.Repeat
	}
	if c.Max == 0 {
		c.Max = d.Max
	}

	return c
}

// Validate checks that c can be executed. It does not check the halving
// precondition; MulStrassen reports that itself.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalidConfig)
	}
	if c.Threshold < 1 {
		return fmt.Errorf("threshold %d: %w", c.Threshold, ErrInvalidConfig)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat %d: %w", c.Repeat, ErrInvalidConfig)
	}
	if c.Max <= 0 {
		return fmt.Errorf("max %d: %w", c.Max, ErrInvalidMax)
	}

	return nil
}

// Options translates c into matrix options for MulStrassen.
func (c Config) Options() []matrix.Option {
	opts := []matrix.Option{matrix.WithThreshold(c.Threshold)}
	if c.Pad {
		opts = append(opts, matrix.WithZeroPadding())
	}

	return opts
}

// Plan is a list of runs decoded from YAML.
type Plan struct {
	Runs []Config `yaml:"runs"`
}

// ParsePlan decodes and validates a YAML plan.
func ParsePlan(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if len(p.Runs) == 0 {
		return nil, ErrEmptyPlan
	}
	for i := range p.Runs {
		p.Runs[i] = p.Runs[i].withDefaults()
		if err := p.Runs[i].Validate(); err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
	}

	return &p, nil
}

// LoadPlan reads a YAML plan from path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	return ParsePlan(data)
}
