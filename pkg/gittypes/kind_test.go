package gittypes

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
)

func TestParseObjectKind(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		for _, s := range []string{"commit", "tag", "blob", "tree"} {
			k, err := ParseObjectKind(s)
			assert.NoError(t, err)
			assert.Equal(t, s, k.String())
		}
	})

	t.Run("Unknown", func(t *testing.T) {
		k, err := ParseObjectKind("Commit")
		assert.ErrorIs(t, err, ErrUnknownObjectKind)
		assert.Empty(t, k)
	})
}

func TestObjectKind_ObjectType(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		for _, k := range ObjectKinds {
			got, err := ObjectKindFor(k.ObjectType())
			assert.NoError(t, err)
			assert.Equal(t, k, got)
		}
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		assert.Equal(t, plumbing.InvalidObject, ObjectKind("note").ObjectType())
	})
}

func TestObjectKindFor(t *testing.T) {
	t.Run("Delta", func(t *testing.T) {
		_, err := ObjectKindFor(plumbing.OFSDeltaObject)
		assert.ErrorIs(t, err, ErrUnknownObjectKind)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, err := ObjectKindFor(plumbing.ObjectType(5))
		assert.ErrorIs(t, err, ErrUnhandledLiteral)
	})
}
