// Package testutils provides utility functions for building testdata.
package testutils

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// testSignature is the author, committer and tagger of everything a
// [RepoBuilder] creates.
func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "Test User",
		Email: "test@example.com",
		When:  time.Now(),
	}
}

// RepoBuilder provides methods for building a git repository.
type RepoBuilder struct {
	dir  string
	repo *git.Repository
}

// NewRepoBuilder initializes a RepoBuilder.
func NewRepoBuilder(dir string) (*RepoBuilder, error) {
	// will create if dir dne
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return nil, fmt.Errorf("initializing plain git repository: %w", err)
	}

	return &RepoBuilder{dir: dir, repo: repo}, nil
}

// Repo returns the underlying git repository.
func (b *RepoBuilder) Repo() *git.Repository {
	return b.repo
}

// Dir returns the worktree directory.
func (b *RepoBuilder) Dir() string {
	return b.dir
}

// Commit writes files into the worktree, stages them and commits. A nil
// value removes the file.
func (b *RepoBuilder) Commit(msg string, files map[string]*string) (plumbing.Hash, error) {
	wt, err := b.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("getting repository worktree: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		content := files[name]
		if content == nil {
			if _, err := wt.Remove(name); err != nil {
				return plumbing.ZeroHash, fmt.Errorf("removing %s: %w", name, err)
			}
			continue
		}
		if dir := path.Dir(name); dir != "." {
			if err := wt.Filesystem.MkdirAll(dir, 0o755); err != nil {
				return plumbing.ZeroHash, fmt.Errorf("creating directory %s: %w", dir, err)
			}
		}
		f, err := wt.Filesystem.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("opening file: %w", err)
		}
		if _, err := io.WriteString(f, *content); err != nil {
			f.Close()
			return plumbing.ZeroHash, fmt.Errorf("writing %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return plumbing.ZeroHash, fmt.Errorf("closing file: %w", err)
		}
		if _, err := wt.Add(name); err != nil {
			return plumbing.ZeroHash, fmt.Errorf("adding file to worktree: %w", err)
		}
	}

	hash, err := wt.Commit(msg, &git.CommitOptions{
		Author:            testSignature(),
		AllowEmptyCommits: len(files) == 0,
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("committing files: %w", err)
	}

	return hash, nil
}

// CreateRandomCommit creates a commit adding one file of random data of the
// given size.
func (b *RepoBuilder) CreateRandomCommit(size int64) (plumbing.Hash, error) {
	if size < 0 {
		return plumbing.ZeroHash, fmt.Errorf("invalid file size %d expected > 0", size)
	}
	data, err := io.ReadAll(io.LimitReader(rand.Reader, size))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("reading random data: %w", err)
	}
	content := string(data)
	return b.Commit("test commit", map[string]*string{
		fmt.Sprintf("file_%s.txt", rand.Text()): &content,
	})
}

// CreateBranch creates a new branch.
func (b *RepoBuilder) CreateBranch(branchName string, commit plumbing.Hash) (*plumbing.Reference, error) {
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(branchName), commit)
	if err := b.repo.Storer.SetReference(ref); err != nil {
		return nil, fmt.Errorf("creating branch reference: %w", err)
	}
	return ref, nil
}

// CreateTag creates a lightweight tag.
func (b *RepoBuilder) CreateTag(tagName string, commit plumbing.Hash) (*plumbing.Reference, error) {
	ref := plumbing.NewHashReference(plumbing.NewTagReferenceName(tagName), commit)
	if err := b.repo.Storer.SetReference(ref); err != nil {
		return nil, fmt.Errorf("creating tag reference: %w", err)
	}
	return ref, nil
}

// CreateAnnotatedTag creates an annotated tag object pointing at target,
// which may be any object. The returned reference points at the tag object.
func (b *RepoBuilder) CreateAnnotatedTag(tagName string, target plumbing.Hash, msg string) (*plumbing.Reference, error) {
	ref, err := b.repo.CreateTag(tagName, target, &git.CreateTagOptions{
		Tagger:  testSignature(),
		Message: msg,
	})
	if err != nil {
		return nil, fmt.Errorf("creating annotated tag: %w", err)
	}
	return ref, nil
}

// Ptr returns a pointer to s, for use with [RepoBuilder.Commit].
func Ptr(s string) *string {
	return &s
}
