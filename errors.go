package lambdaioc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnregisteredDependency is returned when a key has no binding in the
	// namespace it is resolved from.
	ErrUnregisteredDependency = errors.New("unregistered dependency")

	// ErrWrongNamespace is returned when a key is only bound in the other
	// namespace, e.g. an async binding resolved with Resolve. It wraps
	// ErrUnregisteredDependency.
	ErrWrongNamespace = fmt.Errorf("%w: bound in the other namespace", ErrUnregisteredDependency)

	// ErrTypeMismatch is returned when a resolved value cannot be used as the
	// requested type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ResolutionError reports a key that could not be found.
type ResolutionError struct {
	Key Key
	// Async is true when the lookup ran against the async namespace.
	Async bool
	Err   error
}

func (e *ResolutionError) Error() string {
	namespace := "sync"
	if e.Async {
		namespace = "async"
	}
	return fmt.Sprintf("cannot resolve %s from the %s namespace: %v", describeKey(e.Key), namespace, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func typeMismatch(key Key, expected string, value any) error {
	return fmt.Errorf("%w: %s resolved to %T, expected %s", ErrTypeMismatch, describeKey(key), value, expected)
}
