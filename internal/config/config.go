// Package config loads CLI settings from an optional HCL file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"
)

const DefaultLogLevel = "info"

// Part selects which score the CLI prints. PartBoth runs both scorers.
const (
	PartBoth       = 0
	PartDifference = 1
	PartSimilarity = 2
)

// Config holds all CLI configuration.
type Config struct {
	// Input is a file read instead of the embedded puzzle input when set.
	Input    string `hcl:"input,optional"`
	Part     int    `hcl:"part,optional"`
	LogLevel string `hcl:"log_level,optional"`
	Verbose  bool   `hcl:"verbose,optional"`
	Trace    bool   `hcl:"trace,optional"`
}

// Load decodes the HCL (or HCL JSON) file at path, when path is non-empty,
// then applies PAIRUP_* environment overrides. Callers layer flags on top
// and call Validate once the final values are known.
func Load(path string) (Config, error) {
	cfg := Config{LogLevel: DefaultLogLevel}

	if path != "" {
		if err := hclsimple.DecodeFile(path, evalContext(), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if cfg.LogLevel == "" {
			cfg.LogLevel = DefaultLogLevel
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the CLI cannot act on.
func (c Config) Validate() error {
	switch c.Part {
	case PartBoth, PartDifference, PartSimilarity:
	default:
		return fmt.Errorf("config: invalid part %d (must be 0, 1 or 2)", c.Part)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: invalid log level %q", c.LogLevel)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Input = envOr("PAIRUP_INPUT", c.Input)
	c.LogLevel = envOr("PAIRUP_LOG_LEVEL", c.LogLevel)

	if v := os.Getenv("PAIRUP_PART"); v != "" {
		part, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid PAIRUP_PART %q: %w", v, err)
		}
		c.Part = part
	}

	var err error
	if c.Verbose, err = envBool("PAIRUP_VERBOSE", c.Verbose); err != nil {
		return err
	}
	if c.Trace, err = envBool("PAIRUP_TRACE", c.Trace); err != nil {
		return err
	}
	return nil
}

// evalContext exposes the process environment as env.NAME and the built-in
// defaults as defaults.NAME to expressions in the config file.
func evalContext() *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !utf8.ValidString(v) {
			continue
		}
		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"log_level": cty.StringVal(DefaultLogLevel),
				"part":      cty.NumberIntVal(PartBoth),
			}),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
