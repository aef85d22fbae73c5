// Package release provides sentinel errors for release planning operations.
// All errors can be checked using errors.Is() for programmatic handling.
package release

import (
	"errors"
	"fmt"
)

// Common sentinel errors that can be checked with errors.Is().
// These wrap underlying go-git and parsing errors while providing a stable API for consumers.

// ErrNoReleases is returned when a repository contains no semantic-version
// release tags, so there is no previous release to plan from.
var ErrNoReleases = errors.New("no release tags found")

// ErrInvalidConfig is returned when a release configuration fails validation
// (unknown bump effect, duplicate section ordering, etc.).
var ErrInvalidConfig = errors.New("invalid release configuration")

// ErrInvalidVersion is returned when a version string cannot be parsed as a
// semantic version.
var ErrInvalidVersion = errors.New("invalid semantic version")

// ErrInvalidBump is returned when a bump token is not one of the recognized
// values (none, patch, minor, major).
var ErrInvalidBump = errors.New("invalid bump")

// ErrRepoRequired is returned when repository options are missing both a
// filesystem root and an on-disk path.
var ErrRepoRequired = errors.New("repository location required")

// ErrResolveFailed is returned when a revision or reference cannot be resolved
// to a valid commit hash.
var ErrResolveFailed = errors.New("cannot resolve revision")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
