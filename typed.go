package lambdaioc

import (
	"context"
	"fmt"
	"reflect"
)

// Go does not allow type parameters on methods, so the typed variants of the
// resolution methods are plain functions taking the container.

// Resolve resolves key from the sync namespace and asserts the result is a T.
//
// A nil result resolves to the zero value of T.
func Resolve[T any](r Resolver, key Key) (T, error) {
	value, err := r.Resolve(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](key, value)
}

// ResolveAsync resolves key from the async namespace and asserts the result
// is a T.
func ResolveAsync[T any](ctx context.Context, r Resolver, key Key) (T, error) {
	value, err := r.ResolveAsync(ctx, key)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](key, value)
}

// ResolveGroup resolves a sync group and asserts every member is a T.
func ResolveGroup[T any](r Resolver, prefix string) ([]T, error) {
	values, err := r.ResolveGroup(prefix)
	if err != nil {
		return nil, err
	}
	return castAll[T](prefix, values)
}

// ResolveGroupAsync resolves an async group and asserts every member is a T.
func ResolveGroupAsync[T any](ctx context.Context, r Resolver, prefix string) ([]T, error) {
	values, err := r.ResolveGroupAsync(ctx, prefix)
	if err != nil {
		return nil, err
	}
	return castAll[T](prefix, values)
}

func cast[T any](key Key, value any) (T, error) {
	if value == nil {
		var zero T
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		return typed, typeMismatch(key, reflect.TypeFor[T]().String(), value)
	}
	return typed, nil
}

func castAll[T any](prefix string, values []any) ([]T, error) {
	typed := make([]T, len(values))
	for i, value := range values {
		member, err := cast[T](fmt.Sprintf("%s%s#%d", prefix, GroupSeparator, i), value)
		if err != nil {
			return nil, err
		}
		typed[i] = member
	}
	return typed, nil
}
