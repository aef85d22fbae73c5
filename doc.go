// Package release turns conventional commit history into release decisions.
//
// Given the commits since the last release and the previous version, the
// package classifies each commit message, reduces the set to a semantic
// version bump, resolves the next version, and groups the visible commits
// into a deterministic changelog. Persisting tags, writing changelog files,
// and opening review requests stay with the caller.
//
// # Design Principles
//
// The package follows these core principles:
//   - The planning core is pure - no I/O, no shared state, safe for
//     concurrent use on independent inputs
//   - Malformed input degrades to exclusion - a broken commit message never
//     fails a planning run
//   - Behavior is configuration, not code - per-type bump effects and
//     changelog sections are supplied as data
//
// # Planning from Raw Commits
//
// Classify and plan in one call:
//
//	import (
//	    "github.com/Masterminds/semver/v3"
//	    "github.com/forgeworks/release"
//	)
//
//	previous := semver.MustParse("1.2.3")
//	plan, err := release.Plan(previous, []release.Commit{
//	    {SHA: "4bf5122f", Message: "fix: correct null pointer"},
//	    {SHA: "dbc1b4c9", Message: "docs: update readme"},
//	}, nil)
//
//	fmt.Println(plan.Bump)            // patch
//	fmt.Println(plan.VersionString()) // 1.2.4
//	fmt.Print(plan.Changelog())
//
// # Planning from a Repository
//
// Open a repository and plan against its latest release tag:
//
//	repo, err := release.Open(ctx, &release.Options{Path: "/path/to/repo"})
//	if err != nil {
//	    return err
//	}
//
//	plan, err := repo.PlanRelease(ctx, nil)
//	if err != nil {
//	    return err
//	}
//
//	if plan.HasReleasableChange {
//	    fmt.Printf("release %s\n", plan.VersionString())
//	}
//
// # Configuration
//
// Default behavior mirrors the conventional-changelog rules: feat is a minor
// bump under "Features", fix a patch bump under "Bug Fixes", breaking
// changes always bump major. Supply a Config to change per-type behavior:
//
//	cfg := release.DefaultConfig()
//	cfg.Types["deps"] = release.TypeRule{Bump: release.BumpPatch, Section: "Dependencies"}
//	cfg.SectionOrder = append(cfg.SectionOrder, "Dependencies")
//
//	plan, err := release.Plan(previous, commits, cfg)
//
// Or load it from YAML:
//
//	cfg, err := release.LoadConfigFile(".release.yml")
//
// # Error Handling
//
// Malformed or non-conventional commit messages are not errors: they are
// classified as non-conventional and excluded from both the bump decision
// and the changelog. Sentinel errors (ErrNoReleases, ErrInvalidConfig, ...)
// cover misuse and are checkable with errors.Is().
package release
