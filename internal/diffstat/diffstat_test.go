package diffstat

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/act3-ai/gitkit/internal/revision"
	"github.com/act3-ai/gitkit/internal/testutils"
	"github.com/act3-ai/gitkit/pkg/git"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

type history struct {
	repo   git.Repository
	first  plumbing.Hash
	second plumbing.Hash
}

func newHistory(t *testing.T) history {
	t.Helper()

	rb, err := testutils.NewRepoBuilder(t.TempDir())
	require.NoError(t, err)

	first, err := rb.Commit("first", map[string]*string{
		"a.txt": testutils.Ptr("a\nb\n"),
	})
	require.NoError(t, err)
	second, err := rb.Commit("second", map[string]*string{
		"a.txt":     testutils.Ptr("a\nc\n"),
		"dir/b.txt": testutils.Ptr("x\n"),
	})
	require.NoError(t, err)

	return history{repo: git.NewRepository(rb.Repo()), first: first, second: second}
}

func secondStats() gittypes.Stats {
	return gittypes.Stats{
		Total: gittypes.TotalStats{Insertions: 2, Deletions: 1, Lines: 3, Files: 2},
		Files: map[string]gittypes.FileStats{
			"a.txt":     {Insertions: 1, Deletions: 1, Lines: 2},
			"dir/b.txt": {Insertions: 1, Lines: 1},
		},
	}
}

func TestForCommit(t *testing.T) {
	h := newHistory(t)

	t.Run("Root Commit", func(t *testing.T) {
		c, err := h.repo.CommitObject(h.first)
		require.NoError(t, err)

		stats, err := ForCommit(t.Context(), c)
		require.NoError(t, err)
		assert.Equal(t, gittypes.TotalStats{Insertions: 2, Lines: 2, Files: 1}, stats.Total)
	})

	t.Run("Success", func(t *testing.T) {
		c, err := h.repo.CommitObject(h.second)
		require.NoError(t, err)

		stats, err := ForCommit(t.Context(), c)
		require.NoError(t, err)
		assert.Equal(t, secondStats(), stats)
	})
}

func TestBetween(t *testing.T) {
	h := newHistory(t)
	from, err := gittypes.ResolveTreeIsh(h.repo.Storer(), h.first)
	require.NoError(t, err)
	to, err := gittypes.ResolveTreeIsh(h.repo.Storer(), h.second)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		stats, err := Between(t.Context(), from, to)
		require.NoError(t, err)
		assert.Equal(t, secondStats(), stats)
	})

	t.Run("Same Tree", func(t *testing.T) {
		stats, err := Between(t.Context(), to, to)
		require.NoError(t, err)
		assert.Equal(t, gittypes.NewStats(), stats)
	})

	t.Run("From Empty Tree", func(t *testing.T) {
		stats, err := Between(t.Context(), nil, to)
		require.NoError(t, err)
		assert.Equal(t, gittypes.TotalStats{Insertions: 3, Lines: 3, Files: 2}, stats.Total)
	})
}

func TestForSource(t *testing.T) {
	h := newHistory(t)

	t.Run("Commit", func(t *testing.T) {
		rev, err := revision.Resolve(t.Context(), h.repo, "HEAD")
		require.NoError(t, err)

		stats, err := ForSource(t.Context(), rev)
		require.NoError(t, err)
		assert.Equal(t, secondStats(), stats)
	})

	t.Run("Tree", func(t *testing.T) {
		c, err := h.repo.CommitObject(h.second)
		require.NoError(t, err)
		rev, err := revision.Resolve(t.Context(), h.repo, c.TreeHash.String())
		require.NoError(t, err)

		stats, err := ForSource(t.Context(), rev)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Total.Files)
	})

	t.Run("Blob", func(t *testing.T) {
		c, err := h.repo.CommitObject(h.second)
		require.NoError(t, err)
		f, err := c.File("a.txt")
		require.NoError(t, err)
		rev, err := revision.Resolve(t.Context(), h.repo, f.Hash.String())
		require.NoError(t, err)

		_, err = ForSource(t.Context(), rev)
		assert.ErrorIs(t, err, gittypes.ErrNotTreeIsh)
	})
}
