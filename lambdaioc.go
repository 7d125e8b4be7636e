// Package lambdaioc is an immutable dependency injection container.
//
// Bindings map a Key to a factory. Registering a binding never changes the
// container it is called on; it returns a new container, so a base container
// can be extended or overridden freely (per request, per test) without
// affecting anybody else holding it.
//
//	c := lambdaioc.New().
//		RegisterValue("a", 3).
//		RegisterValue("b", 5).
//		Register("ab", func(c *lambdaioc.Container) (any, error) {
//			a, _ := lambdaioc.Resolve[int](c, "a")
//			b, _ := lambdaioc.Resolve[int](c, "b")
//			return a * b, nil
//		})
//
//	ab, err := lambdaioc.Resolve[int](c, "ab") // 15
//
// There are two disjoint namespaces: synchronous bindings (Register,
// RegisterValue, RegisterConstructor) are resolved with Resolve, asynchronous
// ones (RegisterAsync, RegisterAsyncConstructor) with ResolveAsync.
package lambdaioc

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Coder-Spirit/lambda-ioc/internal"
)

// Factory builds a dependency. c is the container the resolution runs
// against, which may be a descendant of the one the factory was registered
// on.
type Factory func(c *Container) (any, error)

// AsyncFactory builds a dependency that may block, typically because it does
// I/O or depends on other async bindings.
type AsyncFactory func(ctx context.Context, c *Container) (any, error)

// Resolver is the read side of a Container. Constructors that need to look up
// bindings lazily can depend on SelfKey and take a Resolver.
type Resolver interface {
	Resolve(key Key) (any, error)
	ResolveAsync(ctx context.Context, key Key) (any, error)
	ResolveGroup(prefix string) ([]any, error)
	ResolveGroupAsync(ctx context.Context, prefix string) ([]any, error)
	Has(key Key) bool
	HasAsync(key Key) bool
}

var _ Resolver = (*Container)(nil)

// Container is the main object to register and resolve dependencies.
//
// A Container is never modified after it is created, so it is safe to share
// between goroutines. The only mutable state reachable from it lives inside
// Singleton and AsyncSingleton factories.
type Container struct {
	registry registry
	options  options
}

// New creates an empty Container.
func New(opts ...Option) *Container {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Container{
		registry: newRegistry(),
		options:  o,
	}
}

func (c *Container) derive(r registry) *Container {
	return &Container{
		registry: r,
		options:  c.options,
	}
}

func (c *Container) logRegistration(key Key, namespace string, replaced bool) {
	c.options.logger.WithFields(logrus.Fields{
		"key":       describeKey(key),
		"namespace": namespace,
		"replaced":  replaced,
	}).Debug("binding registered")
}

// Register returns a new Container where key is bound to factory in the sync
// namespace. A previous binding for key, in either namespace, is replaced.
//
// Register panics if key is SelfKey, is not a valid Key, or factory is nil.
func (c *Container) Register(key Key, factory Factory) *Container {
	mustBeRegistrableKey(key)
	if factory == nil {
		panic("factory must not be nil")
	}
	r, replaced := c.registry.withSync(key, factory)
	c.logRegistration(key, "sync", replaced)
	return c.derive(r)
}

// RegisterValue binds key to an already built value.
func (c *Container) RegisterValue(key Key, value any) *Container {
	return c.Register(key, Value(value))
}

// RegisterAsync returns a new Container where key is bound to factory in the
// async namespace.
func (c *Container) RegisterAsync(key Key, factory AsyncFactory) *Container {
	mustBeRegistrableKey(key)
	if factory == nil {
		panic("factory must not be nil")
	}
	r, replaced := c.registry.withAsync(key, factory)
	c.logRegistration(key, "async", replaced)
	return c.derive(r)
}

// RegisterConstructor binds key to Constructor(constructor, dependencies...).
// Every resolution calls the constructor again; wrap it with Singleton through
// Register to reuse the instance.
func (c *Container) RegisterConstructor(key Key, constructor any, dependencies ...Key) *Container {
	return c.Register(key, Constructor(constructor, dependencies...))
}

// RegisterAsyncConstructor binds key to AsyncConstructor(constructor,
// dependencies...) in the async namespace.
func (c *Container) RegisterAsyncConstructor(key Key, constructor any, dependencies ...Key) *Container {
	return c.RegisterAsync(key, AsyncConstructor(constructor, dependencies...))
}

// Has reports whether key is bound in the sync namespace.
func (c *Container) Has(key Key) bool {
	_, found := c.registry.syncFactory(key)
	return found
}

// HasAsync reports whether key is bound in the async namespace.
func (c *Container) HasAsync(key Key) bool {
	_, found := c.registry.asyncFactory(key)
	return found
}

// Keys returns the sync keys in registration order.
func (c *Container) Keys() []Key {
	return c.registry.syncKeys(anyKey)
}

// AsyncKeys returns the async keys in registration order.
func (c *Container) AsyncKeys() []Key {
	return c.registry.asyncKeys(anyKey)
}

func (c *Container) notFound(key Key, async bool) error {
	err := ErrUnregisteredDependency
	if async && c.Has(key) || !async && c.HasAsync(key) {
		err = ErrWrongNamespace
	}
	resolutionErr := &ResolutionError{Key: key, Async: async, Err: err}
	c.options.logger.WithError(resolutionErr).Debug("resolution failed")
	return resolutionErr
}

// Resolve calls the sync factory bound to key with c. Resolving SelfKey
// returns c.
//
// Errors returned by the factory are returned as is.
func (c *Container) Resolve(key Key) (any, error) {
	if key == SelfKey {
		return c, nil
	}
	factory, found := c.registry.syncFactory(key)
	if !found {
		return nil, c.notFound(key, false)
	}
	return factory(c)
}

// ResolveAsync calls the async factory bound to key with c. Resolving SelfKey
// returns c.
func (c *Container) ResolveAsync(ctx context.Context, key Key) (any, error) {
	if key == SelfKey {
		return c, nil
	}
	factory, found := c.registry.asyncFactory(key)
	if !found {
		return nil, c.notFound(key, true)
	}
	return factory(ctx, c)
}

// ResolveGroup resolves every sync binding whose key is "<prefix>:<member>",
// in registration order. A prefix without members yields an empty slice.
//
// It fails fast: the first factory error is returned and the remaining
// members are not resolved.
func (c *Container) ResolveGroup(prefix string) ([]any, error) {
	keys := c.registry.syncKeys(func(key Key) bool { return groupMember(key, prefix) })
	values := make([]any, len(keys))
	for i, key := range keys {
		factory, _ := c.registry.syncFactory(key)
		value, err := factory(c)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return values, nil
}

// ResolveGroupAsync resolves every async binding of the group concurrently.
// Values are returned in registration order, whatever order the factories
// finish in.
func (c *Container) ResolveGroupAsync(ctx context.Context, prefix string) ([]any, error) {
	keys := c.registry.asyncKeys(func(key Key) bool { return groupMember(key, prefix) })
	factories := internal.Map(keys, func(key Key) AsyncFactory {
		factory, _ := c.registry.asyncFactory(key)
		return factory
	})
	return internal.Gather(ctx, len(factories), func(ctx context.Context, i int) (any, error) {
		return factories[i](ctx, c)
	})
}
