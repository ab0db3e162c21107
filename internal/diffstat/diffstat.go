// Package diffstat computes line change statistics of commits and trees.
package diffstat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/act3-ai/gitkit/pkg/gittypes"
)

// Source is an object of a repository stats can be computed for.
type Source interface {
	gittypes.HasRepo
	ID() plumbing.Hash
}

// ForCommit returns the changes commit introduced relative to its first
// parent. Root commits are compared with the empty tree.
func ForCommit(ctx context.Context, commit *object.Commit) (gittypes.Stats, error) {
	fs, err := commit.StatsContext(ctx)
	if err != nil {
		return gittypes.Stats{}, fmt.Errorf("computing stats of commit %s: %w", commit.Hash, err)
	}
	slog.DebugContext(ctx, "computed commit stats", "commit", commit.Hash.String(), "files", len(fs))
	return fromFileStats(fs), nil
}

// Between returns the changes needed to turn from into to. A nil from is the
// empty tree.
func Between(ctx context.Context, from, to gittypes.TreeIsh) (gittypes.Stats, error) {
	var a *object.Tree
	if from != nil {
		var err error
		a, err = from.Tree()
		if err != nil {
			return gittypes.Stats{}, err //nolint:wrapcheck
		}
	}
	b, err := to.Tree()
	if err != nil {
		return gittypes.Stats{}, err //nolint:wrapcheck
	}

	changes, err := object.DiffTreeWithOptions(ctx, a, b, object.DefaultDiffTreeOptions)
	if err != nil {
		return gittypes.Stats{}, fmt.Errorf("diffing trees: %w", err)
	}
	patch, err := changes.PatchContext(ctx)
	if err != nil {
		return gittypes.Stats{}, fmt.Errorf("computing patch: %w", err)
	}
	slog.DebugContext(ctx, "computed tree stats", "to", to.ID().String(), "changes", len(changes))
	return fromFileStats(patch.Stats()), nil
}

// ForSource computes the stats of the object src names. Annotated tags are
// peeled. Commits are compared with their first parent and trees with the
// empty tree.
func ForSource(ctx context.Context, src Source) (gittypes.Stats, error) {
	ti, err := gittypes.ResolveTreeIsh(src.Repo().Storer(), src.ID())
	if err != nil {
		return gittypes.Stats{}, err //nolint:wrapcheck
	}

	switch v := ti.(type) {
	case gittypes.Commit:
		return ForCommit(ctx, v.Object)
	case gittypes.Tree:
		return Between(ctx, nil, v)
	default:
		return gittypes.Stats{}, gittypes.Never(ti)
	}
}

func fromFileStats(fs object.FileStats) gittypes.Stats {
	stats := gittypes.NewStats()
	for _, f := range fs {
		stats.Add(f.Name, f.Addition, f.Deletion)
	}
	return stats
}
