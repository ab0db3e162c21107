package gittypes

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// CommitIsh is one of [Commit], [Tag], [Blob] or [Tree].
type CommitIsh interface {
	// Kind returns the variant's object kind.
	Kind() ObjectKind
	// ID returns the object hash.
	ID() plumbing.Hash

	commitIsh()
}

// TreeIsh is one of [Commit] or [Tree].
type TreeIsh interface {
	CommitIsh
	// Tree returns the tree the object names.
	Tree() (*object.Tree, error)

	treeIsh()
}

// Commit is the commit variant of [CommitIsh] and [TreeIsh].
type Commit struct {
	Object *object.Commit
}

// Tag is the annotated tag variant of [CommitIsh].
type Tag struct {
	Object *object.Tag
}

// Blob is the blob variant of [CommitIsh].
type Blob struct {
	Object *object.Blob
}

// Tree is the tree variant of [CommitIsh] and [TreeIsh].
type Tree struct {
	Object *object.Tree
}

func (Commit) Kind() ObjectKind { return KindCommit }
func (Tag) Kind() ObjectKind    { return KindTag }
func (Blob) Kind() ObjectKind   { return KindBlob }
func (Tree) Kind() ObjectKind   { return KindTree }

func (c Commit) ID() plumbing.Hash { return c.Object.Hash }
func (t Tag) ID() plumbing.Hash    { return t.Object.Hash }
func (b Blob) ID() plumbing.Hash   { return b.Object.Hash }
func (t Tree) ID() plumbing.Hash   { return t.Object.Hash }

// IDAttribute implements [HasIDAttribute].
func (Commit) IDAttribute() string { return hexsha }

// IDAttribute implements [HasIDAttribute].
func (Tag) IDAttribute() string { return hexsha }

// IDAttribute implements [HasIDAttribute].
func (Blob) IDAttribute() string { return hexsha }

// IDAttribute implements [HasIDAttribute].
func (Tree) IDAttribute() string { return hexsha }

func (Commit) commitIsh() {}
func (Tag) commitIsh()    {}
func (Blob) commitIsh()   {}
func (Tree) commitIsh()   {}

func (Commit) treeIsh() {}
func (Tree) treeIsh()   {}

// Tree returns the commit's root tree.
func (c Commit) Tree() (*object.Tree, error) {
	t, err := c.Object.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading tree of commit %s: %w", c.Object.Hash, err)
	}
	return t, nil
}

// Tree returns t's underlying tree.
func (t Tree) Tree() (*object.Tree, error) {
	return t.Object, nil
}

// Wrap converts a decoded go-git object into its [CommitIsh] variant.
func Wrap(obj object.Object) (CommitIsh, error) {
	switch o := obj.(type) {
	case *object.Commit:
		return Commit{Object: o}, nil
	case *object.Tag:
		return Tag{Object: o}, nil
	case *object.Blob:
		return Blob{Object: o}, nil
	case *object.Tree:
		return Tree{Object: o}, nil
	default:
		return nil, Never(obj)
	}
}

// ResolveCommitIsh reads the object h from s.
func ResolveCommitIsh(s storer.EncodedObjectStorer, h plumbing.Hash) (CommitIsh, error) {
	obj, err := object.GetObject(s, h)
	if err != nil {
		return nil, fmt.Errorf("reading object %s: %w", h, err)
	}
	return Wrap(obj)
}

// Peel follows annotated tags until it reaches a non tag object.
func Peel(c CommitIsh) (CommitIsh, error) {
	for {
		tag, ok := c.(Tag)
		if !ok {
			return c, nil
		}
		target, err := tag.Object.Object()
		if err != nil {
			return nil, fmt.Errorf("reading target of tag %s: %w", tag.Object.Name, err)
		}
		c, err = Wrap(target)
		if err != nil {
			return nil, err
		}
	}
}

// ResolveTreeIsh reads h from s, peeling annotated tags, and returns the
// commit or tree it names.
func ResolveTreeIsh(s storer.EncodedObjectStorer, h plumbing.Hash) (TreeIsh, error) {
	c, err := ResolveCommitIsh(s, h)
	if err != nil {
		return nil, err
	}
	c, err = Peel(c)
	if err != nil {
		return nil, err
	}

	switch v := c.(type) {
	case Commit:
		return v, nil
	case Tree:
		return v, nil
	case Blob:
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotTreeIsh, h, v.Kind())
	case Tag:
		return nil, Never(v)
	default:
		return nil, Never(c)
	}
}
