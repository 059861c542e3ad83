// Package config loads the handrank CLI configuration from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// MaxCards bounds hand sizes; ranking cost grows with C(n, 5).
const MaxCards = 10

// Config represents the complete CLI configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Seed     int64         `hcl:"seed,optional"`
	Hunt     *HuntConfig   `hcl:"hunt,block"`
	Survey   *SurveyConfig `hcl:"survey,block"`
}

// HuntConfig controls the search for a target category.
type HuntConfig struct {
	Target      string `hcl:"target,optional"`
	Cards       int    `hcl:"cards,optional"`
	MaxAttempts int    `hcl:"max_attempts,optional"`
}

// SurveyConfig controls category frequency surveys.
type SurveyConfig struct {
	Hands   int    `hcl:"hands,optional"`
	Cards   int    `hcl:"cards,optional"`
	Workers int    `hcl:"workers,optional"`
	Format  string `hcl:"format,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Hunt == nil {
		c.Hunt = &HuntConfig{}
	}
	if c.Hunt.Target == "" {
		c.Hunt.Target = "straight-flush"
	}
	if c.Hunt.Cards == 0 {
		c.Hunt.Cards = 5
	}
	if c.Survey == nil {
		c.Survey = &SurveyConfig{}
	}
	if c.Survey.Hands == 0 {
		c.Survey.Hands = 100000
	}
	if c.Survey.Cards == 0 {
		c.Survey.Cards = 7
	}
	if c.Survey.Format == "" {
		c.Survey.Format = "text"
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	if c.Hunt.Cards < 5 || c.Hunt.Cards > MaxCards {
		return fmt.Errorf("hunt.cards must be between 5 and %d, got %d", MaxCards, c.Hunt.Cards)
	}
	if c.Hunt.MaxAttempts < 0 {
		return fmt.Errorf("hunt.max_attempts must not be negative, got %d", c.Hunt.MaxAttempts)
	}
	if c.Survey.Cards < 5 || c.Survey.Cards > MaxCards {
		return fmt.Errorf("survey.cards must be between 5 and %d, got %d", MaxCards, c.Survey.Cards)
	}
	if c.Survey.Hands < 0 {
		return fmt.Errorf("survey.hands must not be negative, got %d", c.Survey.Hands)
	}
	switch c.Survey.Format {
	case "text", "json":
	default:
		return fmt.Errorf("survey.format must be text or json, got %q", c.Survey.Format)
	}
	return nil
}
