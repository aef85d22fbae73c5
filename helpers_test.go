package release

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/stretchr/testify/require"
)

// testRepo is a helper struct wrapping an in-memory repository for tests
type testRepo struct {
	repo  *Repo
	git   *git.Repository
	wt    *git.Worktree
	fs    billy.Filesystem
	ctx   context.Context
	clock time.Time
	seq   int
}

// setupTestRepo creates a repository backed by an in-memory filesystem
func setupTestRepo(t *testing.T) *testRepo {
	t.Helper()

	fs := memfs.New()
	dot, err := fs.Chroot(git.GitDirName)
	require.NoError(t, err, "failed to create git directory")

	storage := filesystem.NewStorage(dot, cache.NewObjectLRUDefault())
	gitRepo, err := git.Init(storage, fs)
	require.NoError(t, err, "failed to initialize test repository")

	wt, err := gitRepo.Worktree()
	require.NoError(t, err, "failed to get worktree")

	return &testRepo{
		repo:  NewRepo(gitRepo, nil),
		git:   gitRepo,
		wt:    wt,
		fs:    fs,
		ctx:   context.Background(),
		clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// commit writes a file change and commits it with the given message.
// Commit timestamps advance by one minute per commit for stable ordering.
func (tr *testRepo) commit(t *testing.T, message string) plumbing.Hash {
	t.Helper()

	tr.seq++
	f, err := tr.fs.Create("notes.txt")
	require.NoError(t, err, "failed to create test file")

	_, err = f.Write([]byte(fmt.Sprintf("change %d\n", tr.seq)))
	require.NoError(t, err, "failed to write test file")
	require.NoError(t, f.Close(), "failed to close test file")

	_, err = tr.wt.Add("notes.txt")
	require.NoError(t, err, "failed to stage test file")

	tr.clock = tr.clock.Add(time.Minute)
	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: tr.clock}
	hash, err := tr.wt.Commit(message, &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err, "failed to create commit")

	return hash
}

// tag creates a lightweight tag at the given commit
func (tr *testRepo) tag(t *testing.T, name string, hash plumbing.Hash) {
	t.Helper()

	_, err := tr.git.CreateTag(name, hash, nil)
	require.NoError(t, err, "failed to create tag")
}

// annotatedTag creates an annotated tag at the given commit
func (tr *testRepo) annotatedTag(t *testing.T, name string, hash plumbing.Hash, message string) {
	t.Helper()

	_, err := tr.git.CreateTag(name, hash, &git.CreateTagOptions{
		Tagger:  &object.Signature{Name: "Test", Email: "test@example.com", When: tr.clock},
		Message: message,
	})
	require.NoError(t, err, "failed to create annotated tag")
}
