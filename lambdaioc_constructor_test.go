package lambdaioc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructor(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the correct type", func(t *testing.T) {
		t.Parallel()

		testData := []struct {
			name        string
			constructor any
		}{
			{
				name:        "safe constructor",
				constructor: NewService,
			},
			{
				name:        "unsafe constructor",
				constructor: NewServiceUnsafe,
			},
		}

		for _, tt := range testData {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				c := New().Register("service", Constructor(tt.constructor))
				service, err := Resolve[IService](c, "service")
				require.NoError(t, err)

				require.IsType(t, &Service{}, service)
				require.Equal(t, 12, service.GetValue())
			})
		}
	})

	t.Run("should build new instances on every resolution", func(t *testing.T) {
		t.Parallel()

		c := New().
			Register("one", Constructor(NewServiceOne)).
			Register("two", Constructor(NewServiceTwo)).
			Register("three", Constructor(NewServiceThree, "one", "two")).
			Register("singleThree", Singleton(Constructor(NewServiceThree, "one", "two")))

		three1, err := Resolve[IServiceThree](c, "three")
		require.NoError(t, err)
		three2, err := Resolve[IServiceThree](c, "three")
		require.NoError(t, err)

		require.Equal(t, 3, three1.GetValueThree())
		require.NotSame(t, three1, three2)

		single1, err := Resolve[IServiceThree](c, "singleThree")
		require.NoError(t, err)
		single2, err := Resolve[IServiceThree](c, "singleThree")
		require.NoError(t, err)

		require.Same(t, single1, single2)
	})

	t.Run("should return the constructor error as is", func(t *testing.T) {
		t.Parallel()

		c := New().RegisterConstructor("service", NewServiceError)

		_, err := c.Resolve("service")
		require.Same(t, customError, err)
	})

	t.Run("should accept concrete error types", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		succeeding := func() (int, *CustomError) { return 7, nil }
		failing := func() (int, *CustomError) { return 0, customError }

		c := New().
			RegisterConstructor("succeeding", succeeding).
			RegisterConstructor("failing", failing).
			RegisterAsyncConstructor("asyncSucceeding", succeeding).
			RegisterAsyncConstructor("asyncFailing", failing)

		value, err := Resolve[int](c, "succeeding")
		require.NoError(t, err)
		require.Equal(t, 7, value)

		value, err = ResolveAsync[int](ctx, c, "asyncSucceeding")
		require.NoError(t, err)
		require.Equal(t, 7, value)

		_, err = c.Resolve("failing")
		require.Same(t, customError, err)

		_, err = c.ResolveAsync(ctx, "asyncFailing")
		require.Same(t, customError, err)
	})

	t.Run("should register constructors directly", func(t *testing.T) {
		t.Parallel()

		c := New().
			RegisterValue("numeric", 10.0).
			RegisterValue("text", "hello").
			RegisterConstructor("C", NewPair, "numeric", "text")

		pair, err := Resolve[*Pair](c, "C")
		require.NoError(t, err)
		require.Equal(t, &Pair{Number: 10, Text: "hello"}, pair)

		second := c.
			RegisterValue("float", 34.5).
			RegisterValue("name", "Bob").
			RegisterConstructor("C", NewPair, "float", "name")

		pair, err = Resolve[*Pair](second, "C")
		require.NoError(t, err)
		require.Equal(t, &Pair{Number: 34.5, Text: "Bob"}, pair)
	})

	t.Run("should inject implementations of interface parameters", func(t *testing.T) {
		t.Parallel()

		c := New().
			RegisterValue("greeting", "hello").
			RegisterConstructor("A", NewGreeter, "greeting").
			RegisterConstructor("B", NewGreeterClient, "A")

		client, err := Resolve[*GreeterClient](c, "B")
		require.NoError(t, err)
		require.Equal(t, "hello", client.greeter.Greet())
	})

	t.Run("should pass nil values as zero values", func(t *testing.T) {
		t.Parallel()

		c := New().
			RegisterValue("greeter", nil).
			RegisterConstructor("client", NewGreeterClient, "greeter")

		client, err := Resolve[*GreeterClient](c, "client")
		require.NoError(t, err)
		require.Nil(t, client.greeter)
	})

	t.Run("should fail when a dependency has the wrong type", func(t *testing.T) {
		t.Parallel()

		c := New().
			RegisterValue("numeric", "not a number").
			RegisterValue("text", "hello").
			RegisterConstructor("C", NewPair, "numeric", "text")

		_, err := c.Resolve("C")
		require.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("should fail on unregistered dependencies", func(t *testing.T) {
		t.Parallel()

		c := New().RegisterConstructor("three", NewServiceThree, "one", "two")

		_, err := c.Resolve("three")
		require.ErrorIs(t, err, ErrUnregisteredDependency)
	})

	t.Run("should not resolve async dependencies", func(t *testing.T) {
		t.Parallel()

		c := New().
			RegisterAsync("one", AsyncConstructor(NewServiceOne)).
			RegisterConstructor("three", NewServiceThree, "one", "one")

		_, err := c.Resolve("three")
		require.ErrorIs(t, err, ErrWrongNamespace)
	})

	t.Run("should panic on invalid constructors", func(t *testing.T) {
		t.Parallel()

		testData := []struct {
			name        string
			constructor any
			deps        []Key
		}{
			{name: "not a function", constructor: 42},
			{name: "no result", constructor: func() {}},
			{name: "too many results", constructor: func() (int, int, error) { return 0, 0, nil }},
			{name: "second result is not an error", constructor: func() (int, int) { return 0, 0 }},
			{name: "missing dependencies", constructor: NewServiceThree, deps: []Key{"one"}},
			{name: "too many dependencies", constructor: NewService, deps: []Key{"one"}},
		}

		for _, tt := range testData {
			require.Panics(t, func() { Constructor(tt.constructor, tt.deps...) }, tt.name)
			require.Panics(t, func() { AsyncConstructor(tt.constructor, tt.deps...) }, tt.name)
		}
	})
}
