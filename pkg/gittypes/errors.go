package gittypes

import "errors"

var (
	// ErrUnhandledLiteral indicates a value of a closed set reached a branch
	// that should have been unreachable.
	ErrUnhandledLiteral = errors.New("unhandled literal")
	// ErrUnknownObjectKind indicates a string does not name a Git object kind.
	ErrUnknownObjectKind = errors.New("unknown object kind")
	// ErrUnknownConfigLevel indicates a string does not name a configuration level.
	ErrUnknownConfigLevel = errors.New("unknown config level")
	// ErrNotTreeIsh indicates an object cannot be resolved to a tree.
	ErrNotTreeIsh = errors.New("object is not tree-ish")
	// ErrInvalidNumstat indicates malformed `git diff --numstat` output.
	ErrInvalidNumstat = errors.New("invalid numstat output")
)
