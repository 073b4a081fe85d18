// Package config provides configuration loading for the token pipeline.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/ivanyeors/solar-design-system/resolver"
	"github.com/ivanyeors/solar-design-system/token"
)

// Config represents the token pipeline configuration.
type Config struct {
	// Files specifies token files to load (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// MaxPasses caps resolution sweeps. Zero means the engine default.
	MaxPasses int `yaml:"maxPasses" json:"maxPasses"`

	// Fallbacks overrides entries of the per-type fallback table. Empty
	// fields keep their defaults.
	Fallbacks FallbackConfig `yaml:"fallbacks" json:"fallbacks"`

	// CommonPrecedence decides conflicts between shared common tokens and
	// brand-specific overrides. Valid values: "override" (default), "common".
	CommonPrecedence string `yaml:"commonPrecedence" json:"commonPrecedence"`

	// Themes lists the themes to emit. Defaults to light and dark.
	Themes []string `yaml:"themes" json:"themes"`

	// OutputDir is where generated token files are written.
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// Formats selects output syntaxes: "scss", "css", "js".
	Formats []string `yaml:"formats" json:"formats"`
}

// FallbackConfig mirrors resolver.Fallbacks with optional fields.
type FallbackConfig struct {
	Color     string `yaml:"color" json:"color"`
	Radius    string `yaml:"radius" json:"radius"`
	Padding   string `yaml:"padding" json:"padding"`
	Gap       string `yaml:"gap" json:"gap"`
	Margin    string `yaml:"margin" json:"margin"`
	Spacing   string `yaml:"spacing" json:"spacing"`
	Dimension string `yaml:"dimension" json:"dimension"`
}

// FileSpec represents a token file specification. It can be given as a
// simple string path or as an object.
type FileSpec struct {
	// Path is the file path; globs are supported.
	Path string `yaml:"path" json:"path"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}
	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}
	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Themes:    []string{"light", "dark"},
		OutputDir: "src/tokens",
		Formats:   []string{"scss"},
	}
}

// ResolverOptions builds engine options from the config, filling unset
// fallback entries from the documented defaults.
func (c *Config) ResolverOptions() resolver.Options {
	fallbacks := resolver.DefaultFallbacks()
	override := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	override(&fallbacks.Color, c.Fallbacks.Color)
	override(&fallbacks.Radius, c.Fallbacks.Radius)
	override(&fallbacks.Padding, c.Fallbacks.Padding)
	override(&fallbacks.Gap, c.Fallbacks.Gap)
	override(&fallbacks.Margin, c.Fallbacks.Margin)
	override(&fallbacks.Spacing, c.Fallbacks.Spacing)
	override(&fallbacks.Dimension, c.Fallbacks.Dimension)

	return resolver.Options{MaxPasses: c.MaxPasses, Fallbacks: fallbacks}
}

// Precedence returns the merge precedence for common tokens.
func (c *Config) Precedence() token.Precedence {
	if c.CommonPrecedence == "common" {
		return token.CommonWins
	}
	return token.OverrideWins
}
