// Package git provides a repository handle over go-git.
package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

//go:generate go tool mockgen -package gitmock -destination ./gitmock/repositorymock.gen.go . Repository

// Repository represents a git repository.
//
// An interface for the [gogit.Repository] concrete type, limited to the read
// operations used to inspect objects, references and configuration.
type Repository interface {
	// Storer returns the underlying object and reference storage.
	//
	// An extension of [gogit.Repository].
	Storer() storage.Storer

	// GitDir returns the path of the .git directory, or "" for repositories
	// not backed by a filesystem.
	//
	// An extension of [gogit.Repository].
	GitDir() string

	// BlobObject returns a Blob with the given hash. If not found
	// plumbing.ErrObjectNotFound is returned.
	BlobObject(h plumbing.Hash) (*object.Blob, error)

	// CommitObject return a Commit with the given hash. If not found
	// plumbing.ErrObjectNotFound is returned.
	CommitObject(h plumbing.Hash) (*object.Commit, error)

	// TagObject returns an annotated Tag with the given hash. If not found
	// plumbing.ErrObjectNotFound is returned.
	TagObject(h plumbing.Hash) (*object.Tag, error)

	// TreeObject return a Tree with the given hash. If not found
	// plumbing.ErrObjectNotFound is returned.
	TreeObject(h plumbing.Hash) (*object.Tree, error)

	// Object returns an Object with the given hash. If not found
	// plumbing.ErrObjectNotFound is returned.
	Object(t plumbing.ObjectType, h plumbing.Hash) (object.Object, error)

	// Head returns the reference where HEAD is pointing to.
	Head() (*plumbing.Reference, error)

	// Reference returns the reference for a given reference name. If resolved is
	// true, any symbolic reference will be resolved.
	Reference(name plumbing.ReferenceName, resolved bool) (*plumbing.Reference, error)

	// ResolveRevision resolves revision to corresponding hash. It will always
	// resolve to a commit hash, not a tree or annotated tag.
	ResolveRevision(in plumbing.Revision) (*plumbing.Hash, error)

	// Config returns the repository config.
	Config() (*config.Config, error)

	// ConfigScoped returns the repository config, merged with requested scope and
	// lower.
	ConfigScoped(scope config.Scope) (*config.Config, error)
}

// Repo implements [Repository].
type Repo struct {
	*gogit.Repository
}

// Storer returns the underlying storage interface.
func (r *Repo) Storer() storage.Storer {
	return r.Repository.Storer
}

// GitDir returns the root of the filesystem storage.
func (r *Repo) GitDir() string {
	fs, ok := r.Repository.Storer.(*filesystem.Storage)
	if !ok {
		return ""
	}
	return fs.Filesystem().Root()
}

// NewRepository wraps a [gogit.Repository].
func NewRepository(repo *gogit.Repository) Repository {
	return &Repo{repo}
}

// Open opens the repository containing path, searching parent directories
// for a .git directory.
func Open(path string) (Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving repository path: %w", err)
	}
	r, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", abs, err)
	}
	return NewRepository(r), nil
}
