// Package release computes version bumps and changelogs from commit history.
// This file contains the release planning entry points.
package release

import (
	"github.com/Masterminds/semver/v3"
)

// ReleasePlan is the outcome of a planning run: the bump decision, the
// resolved next version, and the grouped changelog.
//
// NextVersion is strictly greater than PreviousVersion whenever
// HasReleasableChange is true, and equal to it otherwise. The plan is a pure
// function of its inputs: re-planning the same commits with the same
// configuration produces a byte-identical changelog.
type ReleasePlan struct {
	// PreviousVersion is the release the plan was computed against.
	PreviousVersion semver.Version

	// NextVersion is the version the planned release would carry.
	NextVersion semver.Version

	// Bump is the computed bump decision.
	Bump Bump

	// Sections is the grouped changelog in rendering order.
	Sections []ChangelogSection

	// HasReleasableChange is true when at least one commit triggered a
	// version bump. Changelog-visible commits without a bump effect (e.g.
	// documentation) can produce sections even when this is false.
	HasReleasableChange bool
}

// VersionString renders the next version as "major.minor.patch[-prerelease]".
func (p *ReleasePlan) VersionString() string {
	return p.NextVersion.String()
}

// Changelog renders the plan as a markdown document: the next version as a
// heading, then each section with its bullet list. Returns the empty string
// when no entry is visible.
func (p *ReleasePlan) Changelog() string {
	return renderChangelog(p.NextVersion.String(), p.Sections)
}

// Plan classifies raw commits and computes a release plan against the
// previous version.
//
// A nil previous version means no release exists yet and is planned against
// 0.0.0. A nil configuration uses DefaultConfig. An empty commit sequence is
// valid and yields a plan with BumpNone and no releasable change.
func Plan(previous *semver.Version, commits []Commit, cfg *Config) (*ReleasePlan, error) {
	return PlanRecords(previous, ClassifyAll(commits), cfg)
}

// PlanRecords computes a release plan from already classified records.
// Callers that classify commits themselves (or filter records beforehand)
// can use this directly; Plan is the raw-message convenience wrapper.
func PlanRecords(previous *semver.Version, records []CommitRecord, cfg *Config) (*ReleasePlan, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var prev semver.Version
	if previous != nil {
		prev = *previous
	}

	bump := CalculateBump(records, cfg)

	return &ReleasePlan{
		PreviousVersion:     prev,
		NextVersion:         NextVersion(prev, bump),
		Bump:                bump,
		Sections:            buildSections(records, cfg),
		HasReleasableChange: bump != BumpNone,
	}, nil
}
