// Package release computes version bumps and changelogs from commit history.
// This file contains the bump decision type and its reduction over commit records.
package release

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Bump is the magnitude of version increment triggered by a set of commits.
// Values form a total order: BumpMajor > BumpMinor > BumpPatch > BumpNone.
type Bump int

const (
	// BumpNone indicates no releasable change.
	BumpNone Bump = iota

	// BumpPatch indicates a backwards-compatible fix.
	BumpPatch

	// BumpMinor indicates backwards-compatible new functionality.
	BumpMinor

	// BumpMajor indicates a breaking change.
	BumpMajor
)

// String returns the lowercase token for the bump, matching the tokens
// accepted by ParseBump.
func (b Bump) String() string {
	switch b {
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return "none"
	}
}

// ParseBump parses a bump token (none, patch, minor, major), case-insensitively.
// Returns ErrInvalidBump for unrecognized tokens.
func ParseBump(s string) (Bump, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BumpNone, nil
	case "patch":
		return BumpPatch, nil
	case "minor":
		return BumpMinor, nil
	case "major":
		return BumpMajor, nil
	default:
		return BumpNone, WrapErrorf(ErrInvalidBump, "unrecognized bump %q", s)
	}
}

// MarshalYAML encodes the bump as its lowercase token.
func (b Bump) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

// UnmarshalYAML decodes a bump from its lowercase token.
func (b *Bump) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return WrapError(err, "failed to decode bump")
	}
	parsed, err := ParseBump(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// max returns the greater of two bumps under the total order.
func (b Bump) max(other Bump) Bump {
	if other > b {
		return other
	}
	return b
}

// CalculateBump reduces a sequence of commit records to a single bump decision.
//
// The reduction is a maximum over the total order BumpMajor > BumpMinor >
// BumpPatch > BumpNone: any breaking record forces BumpMajor, otherwise each
// record contributes the bump effect its type is configured with. The result
// is independent of record order (commutative, associative reduction).
//
// Records that are not conventional, or whose type has no configured rule,
// contribute BumpNone. An empty sequence yields BumpNone.
func CalculateBump(records []CommitRecord, cfg *Config) Bump {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	decision := BumpNone
	for _, r := range records {
		decision = decision.max(recordBump(r, cfg))
		if decision == BumpMajor {
			// Already at the top of the order; nothing can raise it further.
			break
		}
	}
	return decision
}

// recordBump returns the bump a single record contributes.
func recordBump(r CommitRecord, cfg *Config) Bump {
	if !r.Conventional {
		return BumpNone
	}

	rule, ok := cfg.Types[r.Type]
	if !ok {
		// Type outside the configured set: excluded from bump computation.
		return BumpNone
	}

	if r.IsBreaking {
		return BumpMajor
	}
	return rule.Bump
}
