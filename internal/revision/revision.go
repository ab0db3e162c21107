// Package revision resolves revision strings to objects of a repository.
package revision

import (
	"context"
	"errors"
	"fmt"

	"github.com/act3-ai/go-common/pkg/logger"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/act3-ai/gitkit/pkg/git"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

// ErrUnknownRevision indicates a revision does not name an object.
var ErrUnknownRevision = errors.New("unknown revision")

// Revision is an object of a repository, named by the revision it was
// resolved from. Implements [gittypes.HasRepo].
type Revision struct {
	repo git.Repository

	// Spec is the revision string, e.g. "HEAD~1" or "v1.0.0".
	Spec string
	// Hash is the object Spec resolved to. Annotated tag names resolve to the
	// tag object, not its target.
	Hash plumbing.Hash
}

// Repo returns the repository the revision belongs to.
func (r *Revision) Repo() git.Repository {
	return r.repo
}

// ID returns the resolved object hash.
func (r *Revision) ID() plumbing.Hash {
	return r.Hash
}

// Object reads the resolved object.
func (r *Revision) Object() (gittypes.CommitIsh, error) {
	return gittypes.ResolveCommitIsh(r.repo.Storer(), r.Hash)
}

func (r *Revision) String() string {
	return fmt.Sprintf("%s (%s)", r.Spec, r.Hash)
}

// Resolve resolves spec in repo. An empty spec means HEAD.
//
// Full hashes name any object. Reference names are looked up the way
// git-rev-parse does: as given, then under refs/, refs/tags/, refs/heads/
// and refs/remotes/. Anything else, such as "HEAD~2", is handed to go-git
// and resolves to a commit.
func Resolve(ctx context.Context, repo git.Repository, spec string) (*Revision, error) {
	log := logger.FromContext(ctx)
	if spec == "" {
		spec = plumbing.HEAD.String()
	}

	if plumbing.IsHash(spec) {
		h := plumbing.NewHash(spec)
		if err := repo.Storer().HasEncodedObject(h); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnknownRevision, spec, err)
		}
		log.DebugContext(ctx, "resolved revision as hash", "spec", spec)
		return &Revision{repo: repo, Spec: spec, Hash: h}, nil
	}

	for _, name := range candidateRefs(spec) {
		ref, err := repo.Reference(name, true)
		switch {
		case errors.Is(err, plumbing.ErrReferenceNotFound):
			continue
		case err != nil:
			return nil, fmt.Errorf("resolving reference %s: %w", name, err)
		}
		log.DebugContext(ctx, "resolved revision as reference", "spec", spec, "ref", name.String(), "hash", ref.Hash().String())
		return &Revision{repo: repo, Spec: spec, Hash: ref.Hash()}, nil
	}

	h, err := repo.ResolveRevision(plumbing.Revision(spec))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownRevision, spec, err)
	}
	log.DebugContext(ctx, "resolved revision expression", "spec", spec, "hash", h.String())
	return &Revision{repo: repo, Spec: spec, Hash: *h}, nil
}

func candidateRefs(spec string) []plumbing.ReferenceName {
	return []plumbing.ReferenceName{
		plumbing.ReferenceName(spec),
		plumbing.ReferenceName("refs/" + spec),
		plumbing.NewTagReferenceName(spec),
		plumbing.NewBranchReferenceName(spec),
		plumbing.ReferenceName("refs/remotes/" + spec),
	}
}
