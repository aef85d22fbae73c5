// Package release computes version bumps and changelogs from commit history.
// This file contains commit history collection.
package release

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// CommitsSince returns the commits reachable from HEAD down to, but not
// including, the boundary commit, newest first. A zero boundary hash returns
// the full history. The Options.MaxCount cap applies when set.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) CommitsSince(ctx context.Context, boundary plumbing.Hash) ([]Commit, error) {
	iter, err := r.repo.Log(&git.LogOptions{Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, WrapError(err, "failed to create commit iterator")
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if boundary != plumbing.ZeroHash && c.Hash == boundary {
			return storer.ErrStop
		}
		if r.opts.MaxCount > 0 && len(commits) >= r.opts.MaxCount {
			return storer.ErrStop
		}

		commits = append(commits, Commit{
			SHA:     c.Hash.String(),
			Message: c.Message,
			When:    c.Committer.When,
		})
		return nil
	})
	if err != nil {
		return nil, WrapError(err, "failed to iterate commits")
	}

	return commits, nil
}

// CommitsSinceRevision resolves a revision specifier (tag name, branch,
// commit hash) and returns the commits since it. An empty revision returns
// the full history.
//
// Context timeout/cancellation is honored during the operation.
func (r *Repo) CommitsSinceRevision(ctx context.Context, revision string) ([]Commit, error) {
	boundary := plumbing.ZeroHash
	if revision != "" {
		hash, err := r.repo.ResolveRevision(plumbing.Revision(revision))
		if err != nil {
			return nil, WrapErrorf(ErrResolveFailed, "failed to resolve revision %q", revision)
		}
		boundary = *hash
	}

	return r.CommitsSince(ctx, boundary)
}
