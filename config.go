// Package release computes version bumps and changelogs from commit history.
// This file contains the per-type behavior configuration.
package release

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// TypeRule configures how commits of one type affect a release.
type TypeRule struct {
	// Bump is the version increment commits of this type trigger when no
	// breaking marker is present. Breaking commits always trigger BumpMajor
	// regardless of this value. Must be BumpNone, BumpPatch, or BumpMinor.
	Bump Bump `yaml:"bump"`

	// Section is the changelog heading entries of this type are grouped
	// under. An empty section hides the type from the rendered changelog
	// while leaving its bump effect intact.
	Section string `yaml:"section,omitempty"`
}

// Config maps commit types to their release behavior.
//
// Types absent from the map are treated as unrecognized: their commits are
// excluded from both bump computation and the changelog. New types can be
// added without touching engine logic.
type Config struct {
	// Types maps a conventional commit type token to its rule.
	Types map[string]TypeRule `yaml:"types"`

	// SectionOrder fixes the rendering precedence of changelog sections.
	// Sections not listed here render after the listed ones, in lexical
	// order, so output stays deterministic for any configuration.
	SectionOrder []string `yaml:"sections,omitempty"`

	// TagPrefix is the prefix release tags carry, e.g. "v" for v1.2.3.
	TagPrefix string `yaml:"tag-prefix,omitempty"`
}

// DefaultTagPrefix is the release tag prefix used when none is configured.
const DefaultTagPrefix = "v"

// Changelog section labels used by DefaultConfig.
const (
	SectionFeatures      = "Features"
	SectionBugFixes      = "Bug Fixes"
	SectionPerformance   = "Performance Improvements"
	SectionReverts       = "Reverts"
	SectionDocumentation = "Documentation"
)

// DefaultConfig returns the conventional-changelog defaults: feat is minor,
// fix, perf, and revert are patch, everything else leaves the version alone.
// Features, fixes, performance work, reverts, and documentation are visible
// in the changelog; maintenance types are consumed silently.
func DefaultConfig() *Config {
	return &Config{
		Types: map[string]TypeRule{
			"feat":     {Bump: BumpMinor, Section: SectionFeatures},
			"fix":      {Bump: BumpPatch, Section: SectionBugFixes},
			"perf":     {Bump: BumpPatch, Section: SectionPerformance},
			"revert":   {Bump: BumpPatch, Section: SectionReverts},
			"docs":     {Section: SectionDocumentation},
			"style":    {},
			"refactor": {},
			"test":     {},
			"build":    {},
			"ci":       {},
			"chore":    {},
		},
		SectionOrder: []string{
			SectionFeatures,
			SectionBugFixes,
			SectionPerformance,
			SectionReverts,
			SectionDocumentation,
		},
		TagPrefix: DefaultTagPrefix,
	}
}

// Validate checks that the configuration is well formed.
// It returns an error wrapping ErrInvalidConfig if any rule is invalid.
func (c *Config) Validate() error {
	for typ, rule := range c.Types {
		if typ == "" {
			return WrapError(ErrInvalidConfig, "empty commit type")
		}
		// Major is reserved for breaking changes; a type rule can contribute
		// at most a minor bump.
		if rule.Bump < BumpNone || rule.Bump > BumpMinor {
			return WrapErrorf(ErrInvalidConfig, "type %q has bump effect %q", typ, rule.Bump)
		}
	}

	seen := make(map[string]bool, len(c.SectionOrder))
	for _, section := range c.SectionOrder {
		if section == "" {
			return WrapError(ErrInvalidConfig, "empty section label in section order")
		}
		if seen[section] {
			return WrapErrorf(ErrInvalidConfig, "duplicate section %q in section order", section)
		}
		seen[section] = true
	}

	return nil
}

// tagPrefix returns the configured tag prefix, falling back to the default.
func (c *Config) tagPrefix() string {
	if c == nil || c.TagPrefix == "" {
		return DefaultTagPrefix
	}
	return c.TagPrefix
}

// LoadConfig reads and validates a YAML configuration.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, WrapError(err, "failed to decode configuration")
	}

	if cfg.Types == nil {
		cfg.Types = map[string]TypeRule{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads and validates a YAML configuration from a file path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WrapErrorf(err, "failed to open configuration %q", path)
	}
	defer f.Close()

	return LoadConfig(f)
}
