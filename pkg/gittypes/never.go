package gittypes

import "fmt"

// UnhandledLiteralError reports a value that escaped an exhaustive switch.
type UnhandledLiteralError struct {
	Value any
}

func (e *UnhandledLiteralError) Error() string {
	return fmt.Sprintf("an unhandled literal (%#v) in a switch/if chain was found", e.Value)
}

// Is returns true if the target error is ErrUnhandledLiteral.
func (e *UnhandledLiteralError) Is(target error) bool {
	return target == ErrUnhandledLiteral
}

// AssertNever is called from the default branch of a switch over a closed set
// once every member has been handled, so reaching it means a member was
// forgotten or an invalid value came in from an untyped boundary.
//
// If raise is false AssertNever returns nil. Otherwise it returns err when
// err is non-nil, or an [*UnhandledLiteralError] describing inp.
func AssertNever(inp any, raise bool, err error) error {
	if !raise {
		return nil
	}
	if err != nil {
		return err
	}
	return &UnhandledLiteralError{Value: inp}
}

// Never is AssertNever(inp, true, nil).
func Never(inp any) error {
	return AssertNever(inp, true, nil)
}

// MustNever panics with the error returned by Never. Use it in switches
// inside functions that have no error result.
func MustNever(inp any) {
	panic(Never(inp))
}
