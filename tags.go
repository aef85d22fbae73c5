// Package release computes version bumps and changelogs from commit history.
// This file contains release tag discovery.
package release

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5/plumbing"
)

// ReleaseTag is a tag that names a semantic version.
type ReleaseTag struct {
	// Name is the full tag name, including any prefix (e.g. "v1.2.3").
	Name string

	// Version is the semantic version the tag names.
	Version semver.Version

	// Hash is the commit the tag points at. Annotated tags are peeled to
	// their target commit.
	Hash plumbing.Hash
}

// TagFilter is a predicate function for filtering tags.
// It returns true if the tag should be included in the results.
// Filters are applied progressively - if any filter returns false, the tag is excluded.
type TagFilter func(name string, ref *plumbing.Reference) bool

// TagExcludeFilter returns a filter that excludes tags with the given suffix.
// For example: TagExcludeFilter("-rc") excludes all release candidates.
func TagExcludeFilter(suffix string) TagFilter {
	return func(name string, ref *plumbing.Reference) bool {
		return !strings.HasSuffix(name, suffix)
	}
}

// StableTagFilter returns a filter that excludes tags whose name carries a
// pre-release label after the version triple (anything following a "-").
func StableTagFilter() TagFilter {
	return func(name string, ref *plumbing.Reference) bool {
		return !strings.Contains(name, "-")
	}
}

// ReleaseTags returns the repository's release tags: tags whose name is the
// given prefix followed by a valid semantic version, passing all provided
// filters. Tags that do not parse as versions are skipped, not reported as
// errors. Results are sorted by version ascending, ties by name.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) ReleaseTags(ctx context.Context, prefix string, filters ...TagFilter) ([]ReleaseTag, error) {
	refs, err := r.repo.Tags()
	if err != nil {
		return nil, WrapError(err, "failed to get tag references")
	}
	defer refs.Close()

	var tags []ReleaseTag
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		name := ref.Name().Short()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		if !shouldIncludeTag(name, ref, filters) {
			return nil
		}

		version, parseErr := semver.StrictNewVersion(strings.TrimPrefix(name, prefix))
		if parseErr != nil {
			// Not a release tag; skip it.
			return nil
		}

		hash, peelErr := r.peelTag(ref)
		if peelErr != nil {
			return peelErr
		}

		tags = append(tags, ReleaseTag{Name: name, Version: *version, Hash: hash})
		return nil
	})
	if err != nil {
		return nil, WrapError(err, "failed to iterate tag references")
	}

	sort.Slice(tags, func(i, j int) bool {
		if !tags[i].Version.Equal(&tags[j].Version) {
			return tags[i].Version.LessThan(&tags[j].Version)
		}
		return tags[i].Name < tags[j].Name
	})

	return tags, nil
}

// LatestRelease returns the highest-versioned release tag with the given
// prefix. Returns ErrNoReleases when the repository has no release tags.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) LatestRelease(ctx context.Context, prefix string, filters ...TagFilter) (*ReleaseTag, error) {
	tags, err := r.ReleaseTags(ctx, prefix, filters...)
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, WrapErrorf(ErrNoReleases, "no tags with prefix %q", prefix)
	}

	latest := tags[len(tags)-1]
	return &latest, nil
}

// peelTag resolves a tag reference to the commit it points at.
// Lightweight tags reference the commit directly; annotated tags are peeled
// through the tag object.
func (r *Repo) peelTag(ref *plumbing.Reference) (plumbing.Hash, error) {
	tagObj, err := r.repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		return tagObj.Target, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, WrapError(err, "failed to peel tag")
	}
}

// shouldIncludeTag checks if a tag passes all filters
func shouldIncludeTag(name string, ref *plumbing.Reference, filters []TagFilter) bool {
	for _, filter := range filters {
		if filter != nil && !filter(name, ref) {
			return false
		}
	}
	return true
}
