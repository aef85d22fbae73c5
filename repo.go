// Package release computes version bumps and changelogs from commit history.
// This file contains repository discovery and the planning facade over go-git.
package release

import (
	"context"
	"errors"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Options configures repository discovery for release planning.
type Options struct {
	// Path is the on-disk path to the repository root.
	// Ignored when FS is set.
	Path string

	// FS is an optional filesystem root containing the repository (OS-backed
	// or in-memory). When set, it takes precedence over Path.
	FS billy.Filesystem

	// MaxCount caps the number of commits scanned per planning run.
	// If 0, the full range since the last release is scanned. Very large
	// histories should be bounded here rather than inside the engine.
	MaxCount int
}

// Validate checks that the Options are properly configured.
// It returns an error if required fields are missing or invalid.
func (o *Options) Validate() error {
	if o.Path == "" && o.FS == nil {
		return WrapError(ErrRepoRequired, "either Path or FS is required")
	}

	if o.MaxCount < 0 {
		return WrapError(ErrRepoRequired, "MaxCount cannot be negative")
	}

	return nil
}

// Repo is a read-only view of a git repository for release planning.
// It discovers release tags and commit history; it never writes to the
// repository. Creating tags or persisting changelogs is the caller's job.
type Repo struct {
	repo *git.Repository
	opts Options
}

// Open opens an existing repository for release planning.
//
// Context timeout/cancellation is honored during subsequent operations.
func Open(ctx context.Context, opts *Options) (*Repo, error) {
	if opts == nil {
		return nil, WrapError(ErrRepoRequired, "options are required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.FS != nil {
		dot, err := opts.FS.Chroot(git.GitDirName)
		if err != nil {
			return nil, WrapError(err, "failed to access git directory")
		}

		storage := filesystem.NewStorage(dot, cache.NewObjectLRUDefault())
		repo, err := git.Open(storage, opts.FS)
		if err != nil {
			return nil, WrapError(err, "failed to open repository")
		}
		return &Repo{repo: repo, opts: *opts}, nil
	}

	repo, err := git.PlainOpen(opts.Path)
	if err != nil {
		return nil, WrapError(err, "failed to open repository")
	}
	return &Repo{repo: repo, opts: *opts}, nil
}

// NewRepo wraps an already opened go-git repository. Useful for callers that
// manage repository lifecycle themselves (including in-memory repositories).
func NewRepo(repo *git.Repository, opts *Options) *Repo {
	r := &Repo{repo: repo}
	if opts != nil {
		r.opts = *opts
	}
	return r
}

// PlanRelease computes a release plan for the repository: it finds the latest
// release tag matching the configured prefix, collects the commits since it,
// and reduces them to a bump decision and changelog.
//
// When the repository has no release tags yet, the full history is planned
// against version 0.0.0. A nil configuration uses DefaultConfig.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) PlanRelease(ctx context.Context, cfg *Config) (*ReleasePlan, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	boundary := plumbing.ZeroHash
	var previous *semver.Version

	latest, err := r.LatestRelease(ctx, cfg.tagPrefix())
	switch {
	case err == nil:
		v := latest.Version
		previous = &v
		boundary = latest.Hash
	case errors.Is(err, ErrNoReleases):
		// First release: plan the full history against 0.0.0.
	default:
		return nil, err
	}

	commits, err := r.CommitsSince(ctx, boundary)
	if err != nil {
		return nil, err
	}

	return Plan(previous, commits, cfg)
}
