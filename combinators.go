package lambdaioc

import "context"

// Value returns a factory that always resolves value.
func Value(value any) Factory {
	return func(*Container) (any, error) {
		return value, nil
	}
}

// Singleton wraps factory so it runs once: the first successful result is
// cached and returned by every later resolution.
//
// The cache belongs to the returned factory, not to a container. Containers
// derived from the one it was registered on share the same instance.
//
// Concurrent first resolutions are serialized, so factory never runs twice
// for the same returned Factory. An error is not cached.
func Singleton(factory Factory) Factory {
	if factory == nil {
		panic("factory must not be nil")
	}
	cell := &lazyCell{}
	return func(c *Container) (any, error) {
		return cell.get(func() (any, error) {
			return factory(c)
		})
	}
}

// AsyncSingleton is Singleton for async factories. The resolved value is
// cached, and concurrent first resolutions wait for the same call to factory.
//
// factory receives the context of the resolution that started it, without its
// cancellation: a caller giving up does not fail the others. Every caller
// still returns as soon as its own context is done.
func AsyncSingleton(factory AsyncFactory) AsyncFactory {
	if factory == nil {
		panic("factory must not be nil")
	}
	cell := &asyncLazyCell{}
	return func(ctx context.Context, c *Container) (any, error) {
		return cell.get(ctx, func(ctx context.Context) (any, error) {
			return factory(ctx, c)
		})
	}
}

// Func returns a factory resolving a parameterless function. Calling it calls
// fn with the dependencies resolved (synchronously) when the binding was
// resolved.
//
// If fn is func(int, string) (T, error), the resolved value is a
// func() (T, error). Every resolution returns a new function.
//
// Func panics if fn is not a function or the number of dependencies does not
// match its parameters.
func Func(fn any, dependencies ...Key) Factory {
	fc := newCallable("func", fn, dependencies)
	return func(c *Container) (any, error) {
		args, err := fc.resolveArguments(c)
		if err != nil {
			return nil, err
		}
		return fc.bind(args), nil
	}
}

// Constructor returns a factory calling constructor with its dependencies,
// resolved synchronously from the container the factory is invoked with.
// SelfKey can be used as a dependency to receive that container.
//
// constructor must return a single value or a (value, error) pair. Its error
// is returned unchanged.
func Constructor(constructor any, dependencies ...Key) Factory {
	fc := newConstructorCallable(constructor, dependencies)
	return func(c *Container) (any, error) {
		args, err := fc.resolveArguments(c)
		if err != nil {
			return nil, err
		}
		return fc.construct(args)
	}
}

// AsyncConstructor is Constructor for the async namespace. Dependencies are
// resolved concurrently: sync bindings synchronously, the others with
// ResolveAsync. The constructor runs once all of them are available.
func AsyncConstructor(constructor any, dependencies ...Key) AsyncFactory {
	fc := newConstructorCallable(constructor, dependencies)
	return func(ctx context.Context, c *Container) (any, error) {
		args, err := fc.resolveArgumentsAsync(ctx, c)
		if err != nil {
			return nil, err
		}
		return fc.construct(args)
	}
}
