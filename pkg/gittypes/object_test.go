package gittypes_test

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/act3-ai/gitkit/internal/testutils"
	"github.com/act3-ai/gitkit/pkg/gittypes"
)

type fixture struct {
	rb     *testutils.RepoBuilder
	commit plumbing.Hash
	tree   plumbing.Hash
	blob   plumbing.Hash
	tag    plumbing.Hash
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	rb, err := testutils.NewRepoBuilder(t.TempDir())
	require.NoError(t, err)

	commitHash, err := rb.Commit("initial", map[string]*string{
		"hello.txt": testutils.Ptr("hello\n"),
	})
	require.NoError(t, err)

	commit, err := rb.Repo().CommitObject(commitHash)
	require.NoError(t, err)
	tree, err := commit.Tree()
	require.NoError(t, err)
	f, err := tree.File("hello.txt")
	require.NoError(t, err)

	tagRef, err := rb.CreateAnnotatedTag("v1", commitHash, "first release")
	require.NoError(t, err)

	return fixture{
		rb:     rb,
		commit: commitHash,
		tree:   tree.Hash,
		blob:   f.Hash,
		tag:    tagRef.Hash(),
	}
}

func TestResolveCommitIsh(t *testing.T) {
	fx := newFixture(t)
	s := fx.rb.Repo().Storer

	tests := []struct {
		name string
		hash plumbing.Hash
		kind gittypes.ObjectKind
	}{
		{"Commit", fx.commit, gittypes.KindCommit},
		{"Tree", fx.tree, gittypes.KindTree},
		{"Blob", fx.blob, gittypes.KindBlob},
		{"Tag", fx.tag, gittypes.KindTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := gittypes.ResolveCommitIsh(s, tt.hash)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, tt.hash, c.ID())

			id, ok := c.(gittypes.HasIDAttribute)
			assert.True(t, ok)
			assert.Equal(t, "hexsha", id.IDAttribute())
		})
	}

	t.Run("Not Found", func(t *testing.T) {
		_, err := gittypes.ResolveCommitIsh(s, plumbing.NewHash("0123456789012345678901234567890123456789"))
		assert.ErrorIs(t, err, plumbing.ErrObjectNotFound)
	})
}

func TestPeel(t *testing.T) {
	fx := newFixture(t)
	s := fx.rb.Repo().Storer

	t.Run("Tag Chain", func(t *testing.T) {
		outer, err := fx.rb.CreateAnnotatedTag("v1-signed", fx.tag, "tag of a tag")
		require.NoError(t, err)

		c, err := gittypes.ResolveCommitIsh(s, outer.Hash())
		require.NoError(t, err)

		peeled, err := gittypes.Peel(c)
		require.NoError(t, err)
		assert.Equal(t, gittypes.KindCommit, peeled.Kind())
		assert.Equal(t, fx.commit, peeled.ID())
	})

	t.Run("Non Tag", func(t *testing.T) {
		c, err := gittypes.ResolveCommitIsh(s, fx.blob)
		require.NoError(t, err)

		peeled, err := gittypes.Peel(c)
		require.NoError(t, err)
		assert.Equal(t, c, peeled)
	})
}

func TestResolveTreeIsh(t *testing.T) {
	fx := newFixture(t)
	s := fx.rb.Repo().Storer

	t.Run("Commit", func(t *testing.T) {
		ti, err := gittypes.ResolveTreeIsh(s, fx.commit)
		require.NoError(t, err)
		tree, err := ti.Tree()
		require.NoError(t, err)
		assert.Equal(t, fx.tree, tree.Hash)
	})

	t.Run("Tree", func(t *testing.T) {
		ti, err := gittypes.ResolveTreeIsh(s, fx.tree)
		require.NoError(t, err)
		assert.Equal(t, gittypes.KindTree, ti.Kind())
	})

	t.Run("Tag", func(t *testing.T) {
		ti, err := gittypes.ResolveTreeIsh(s, fx.tag)
		require.NoError(t, err)
		assert.Equal(t, gittypes.KindCommit, ti.Kind())
	})

	t.Run("Blob", func(t *testing.T) {
		_, err := gittypes.ResolveTreeIsh(s, fx.blob)
		assert.ErrorIs(t, err, gittypes.ErrNotTreeIsh)
	})
}

// foreignObject is an object.Object implementation unknown to gittypes.
type foreignObject struct {
	object.Object
}

func TestWrap(t *testing.T) {
	t.Run("Unhandled", func(t *testing.T) {
		_, err := gittypes.Wrap(foreignObject{})
		assert.ErrorIs(t, err, gittypes.ErrUnhandledLiteral)
	})
}

func describe(c gittypes.CommitIsh) string {
	switch v := c.(type) {
	case gittypes.Commit:
		return "commit " + v.Object.Message
	case gittypes.Tag:
		return "tag " + v.Object.Name
	case gittypes.Blob:
		return "blob"
	case gittypes.Tree:
		return "tree"
	default:
		gittypes.MustNever(c)
		return ""
	}
}

func TestCommitIsh_Switch(t *testing.T) {
	fx := newFixture(t)

	t.Run("Exhaustive", func(t *testing.T) {
		c, err := gittypes.ResolveCommitIsh(fx.rb.Repo().Storer, fx.tag)
		require.NoError(t, err)
		assert.Equal(t, "tag v1", describe(c))
	})
}
