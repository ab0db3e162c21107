package gittypes

import (
	"fmt"
	"slices"

	"github.com/go-git/go-git/v5/plumbing"
)

// ObjectKind is the type label of a commit-ish Git object.
//
// See https://git-scm.com/book/en/v2/Git-Internals-Git-Objects.
type ObjectKind string

// Git object kinds.
const (
	KindCommit ObjectKind = "commit"
	KindTag    ObjectKind = "tag"
	KindBlob   ObjectKind = "blob"
	KindTree   ObjectKind = "tree"
)

// ObjectKinds defines every object kind.
var ObjectKinds = []ObjectKind{
	KindCommit,
	KindTag,
	KindBlob,
	KindTree,
}

// SupportedObjectKind returns true if k is a known [ObjectKind].
func SupportedObjectKind(k ObjectKind) bool {
	return slices.Contains(ObjectKinds, k)
}

// ParseObjectKind converts s into an [ObjectKind].
func ParseObjectKind(s string) (ObjectKind, error) {
	k := ObjectKind(s)
	if !SupportedObjectKind(k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownObjectKind, s)
	}
	return k, nil
}

func (k ObjectKind) String() string {
	return string(k)
}

// ObjectType converts k to its go-git equivalent. Unknown kinds map to
// [plumbing.InvalidObject].
func (k ObjectKind) ObjectType() plumbing.ObjectType {
	switch k {
	case KindCommit:
		return plumbing.CommitObject
	case KindTag:
		return plumbing.TagObject
	case KindBlob:
		return plumbing.BlobObject
	case KindTree:
		return plumbing.TreeObject
	default:
		return plumbing.InvalidObject
	}
}

// ObjectKindFor converts a go-git object type into an [ObjectKind]. Delta
// and invalid types have no kind.
func ObjectKindFor(t plumbing.ObjectType) (ObjectKind, error) {
	switch t {
	case plumbing.CommitObject:
		return KindCommit, nil
	case plumbing.TagObject:
		return KindTag, nil
	case plumbing.BlobObject:
		return KindBlob, nil
	case plumbing.TreeObject:
		return KindTree, nil
	case plumbing.InvalidObject, plumbing.OFSDeltaObject, plumbing.REFDeltaObject, plumbing.AnyObject:
		return "", fmt.Errorf("%w: %s", ErrUnknownObjectKind, t)
	default:
		return "", Never(t)
	}
}
