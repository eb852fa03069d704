// Package config holds the run constants and the optional laws.yaml
// configuration consumed by the driver commands. The file overrides the
// operands fed into the law examples and the indexed-model step budget;
// when it is absent the defaults apply.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level laws.yaml structure.
type Config struct {
	// Commutativity holds the operands for a+b = b+a.
	Commutativity Pair `yaml:"commutativity"`

	// Associativity holds the operands for (a*b)*c = a*(b*c).
	Associativity Triple `yaml:"associativity"`

	// Naturals holds the operands for the numeral-encoded demos
	// (addition, multiplication, factorial).
	Naturals Triple `yaml:"naturals"`

	// StepLimit bounds the indexed-model reduction loop.
	StepLimit int `yaml:"stepLimit"`
}

// Pair is a two-operand law configuration.
type Pair struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// Triple is a three-operand law configuration.
type Triple struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
	C int `yaml:"c"`
}

// Default returns the configuration used when no laws.yaml is present.
func Default() Config {
	return Config{
		Commutativity: Pair{A: DefaultCommA, B: DefaultCommB},
		Associativity: Triple{A: DefaultAssocA, B: DefaultAssocB, C: DefaultAssocC},
		Naturals:      Triple{A: DefaultNatA, B: DefaultNatB, C: DefaultNatC},
		StepLimit:     MaxReductionSteps,
	}
}

// Load reads path and merges it over the defaults. A missing file is not an
// error; a malformed or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects operands that cannot be encoded as numerals and a
// non-positive step budget.
func (c Config) Validate() error {
	for _, n := range []int{
		c.Commutativity.A, c.Commutativity.B,
		c.Associativity.A, c.Associativity.B, c.Associativity.C,
		c.Naturals.A, c.Naturals.B, c.Naturals.C,
	} {
		if n < 0 {
			return fmt.Errorf("operands must be non-negative, got %d", n)
		}
	}
	if c.StepLimit <= 0 {
		return fmt.Errorf("stepLimit must be positive, got %d", c.StepLimit)
	}
	return nil
}
