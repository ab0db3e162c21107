package gittypes

import "github.com/act3-ai/gitkit/pkg/git"

// HasRepo is implemented by values bound to a repository.
type HasRepo interface {
	Repo() git.Repository
}

// HasIDAttribute is implemented by values identified by one of their
// attributes. IDAttribute returns that attribute's name.
type HasIDAttribute interface {
	IDAttribute() string
}

// hexsha is the attribute identifying every Git object.
const hexsha = "hexsha"
