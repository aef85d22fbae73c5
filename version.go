// Package release computes version bumps and changelogs from commit history.
// This file contains semantic version resolution.
package release

import (
	"github.com/Masterminds/semver/v3"
)

// NextVersion applies a bump decision to a previous version.
//
//   - BumpMajor increments major and resets minor and patch to zero.
//   - BumpMinor increments minor and resets patch to zero.
//   - BumpPatch increments patch.
//   - BumpNone returns the previous version unchanged.
//
// Standard semantic-versioning precedence applies uniformly: a breaking
// change bumps major even on a pre-1.0 version line. Incrementing a version
// that carries a pre-release label finalizes it (the label is dropped), which
// still yields a strictly greater version under semver precedence.
func NextVersion(previous semver.Version, bump Bump) semver.Version {
	switch bump {
	case BumpMajor:
		return previous.IncMajor()
	case BumpMinor:
		return previous.IncMinor()
	case BumpPatch:
		return previous.IncPatch()
	default:
		return previous
	}
}

// ParseVersion parses a semantic version string, tolerating an optional "v"
// prefix. Returns ErrInvalidVersion when the string is not a valid version.
func ParseVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, WrapErrorf(ErrInvalidVersion, "failed to parse version %q", s)
	}
	return v, nil
}
