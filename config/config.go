/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config loads project configuration for zephyr.
package config

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/annieversary/zephyr/registry"
	"github.com/annieversary/zephyr/scan"
)

// DefaultOutput is the stylesheet written when no output is configured.
const DefaultOutput = "zephyr.css"

// Config is the project configuration.
type Config struct {
	// Output is the stylesheet path, relative to the project root.
	Output string `yaml:"output" json:"output" toml:"output" validate:"required"`

	// Include lists doublestar patterns of source files to scan. Empty
	// means every file.
	Include []string `yaml:"include" json:"include" toml:"include" validate:"dive,required"`

	// Exclude lists doublestar patterns of files to skip. A non-empty
	// list replaces scan.DefaultExclude; see Excludes.
	Exclude []string `yaml:"exclude" json:"exclude" toml:"exclude" validate:"dive,required"`

	// Regex scans every file with the class attribute pattern instead of
	// parsing it.
	Regex bool `yaml:"regex" json:"regex" toml:"regex"`

	// NoRecurse limits scanning to the top-level directory.
	NoRecurse bool `yaml:"noRecurse" json:"noRecurse" toml:"noRecurse"`

	// Pretty enables indented output.
	Pretty bool `yaml:"pretty" json:"pretty" toml:"pretty"`

	// Jobs bounds concurrent class expansion. Zero means one per CPU.
	Jobs int `yaml:"jobs" json:"jobs" toml:"jobs" validate:"gte=0"`

	// Debounce is the watch mode settle time, e.g. "500ms".
	Debounce string `yaml:"debounce" json:"debounce" toml:"debounce" validate:"omitempty,duration"`

	// NoDefaults starts from empty shorthand tables.
	NoDefaults bool `yaml:"noDefaults" json:"noDefaults" toml:"noDefaults"`

	// CSSColors registers the named CSS colors as classes.
	CSSColors bool `yaml:"cssColors" json:"cssColors" toml:"cssColors"`

	// Tables extend or override the shorthand tables.
	Tables Tables `yaml:"tables" json:"tables" toml:"tables"`
}

// Tables holds user shorthand definitions.
type Tables struct {
	Properties     map[string]string            `yaml:"properties" json:"properties" toml:"properties" validate:"dive,keys,required,endkeys,required"`
	Values         map[string]string            `yaml:"values" json:"values" toml:"values" validate:"dive,keys,required,endkeys,required"`
	ContextValues  map[string]map[string]string `yaml:"contextValues" json:"contextValues" toml:"contextValues" validate:"dive,keys,required,endkeys,required"`
	Modifiers      map[string]string            `yaml:"modifiers" json:"modifiers" toml:"modifiers" validate:"dive,keys,required,endkeys,required"`
	PseudoElements map[string]string            `yaml:"pseudoElements" json:"pseudoElements" toml:"pseudoElements" validate:"dive,keys,required,endkeys,required"`
	Declarations   map[string]string            `yaml:"declarations" json:"declarations" toml:"declarations" validate:"dive,keys,required,endkeys,required,declarations"`

	// Specials map a shorthand to the properties that all receive its
	// value, e.g. mx: [margin-left, margin-right].
	Specials map[string][]string `yaml:"specials" json:"specials" toml:"specials" validate:"dive,keys,required,endkeys,min=1,dive,required"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{Output: DefaultOutput}
}

// Validate checks field constraints and the syntax of declaration bodies.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("declarations", func(fl validator.FieldLevel) bool {
		return CheckDeclarations(fl.Field().String()) == nil
	}); err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DebounceDuration returns the parsed debounce, or zero when unset.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 0
	}
	return d
}

// Excludes returns the exclude patterns in effect: the configured ones,
// or scan.DefaultExclude when none are set. Scanning and watching both
// use this list.
func (c *Config) Excludes() []string {
	if len(c.Exclude) > 0 {
		return c.Exclude
	}
	return slices.Clone(scan.DefaultExclude)
}

// RegistryOptions converts the config into registry options. Table
// entries are applied in sorted key order so overrides are reproducible.
func (c *Config) RegistryOptions() []registry.Option {
	var opts []registry.Option
	if c.NoDefaults {
		opts = append(opts, registry.WithoutDefaults())
	}
	if c.CSSColors {
		opts = append(opts, registry.WithCSSColors())
	}

	t := c.Tables
	if len(t.Properties) > 0 {
		opts = append(opts, registry.WithProperties(t.Properties))
	}
	if len(t.Values) > 0 {
		opts = append(opts, registry.WithValues(t.Values))
	}
	for _, prop := range slices.Sorted(maps.Keys(t.ContextValues)) {
		opts = append(opts, registry.WithContextValues(prop, t.ContextValues[prop]))
	}
	if len(t.Modifiers) > 0 {
		opts = append(opts, registry.WithModifiers(t.Modifiers))
	}
	if len(t.PseudoElements) > 0 {
		opts = append(opts, registry.WithPseudoElements(t.PseudoElements))
	}
	if len(t.Declarations) > 0 {
		opts = append(opts, registry.WithDeclarations(t.Declarations))
	}
	for _, name := range slices.Sorted(maps.Keys(t.Specials)) {
		opts = append(opts, registry.WithSpecial(name, registry.MultiProperty(t.Specials[name]...)))
	}
	return opts
}

// Registry builds the registry described by the config.
func (c *Config) Registry() *registry.Registry {
	return registry.New(c.RegistryOptions()...)
}
