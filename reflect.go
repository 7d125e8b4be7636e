package lambdaioc

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Coder-Spirit/lambda-ioc/internal"
)

var errorType = reflect.TypeFor[error]()

// callable is a user function together with the keys of its arguments.
//
// Go cannot call a function with an arbitrary list of arguments without
// reflection, so Func and Constructor inspect the function once, when they
// are created, and use the stored reflect.Value on every resolution.
type callable struct {
	fType        reflect.Type
	function     reflect.Value
	dependencies []Key
	// arguments holds the parameter type matching each dependency, with
	// variadic parameters already expanded.
	arguments []reflect.Type
}

func newCallable(kind string, function any, dependencies []Key) callable {
	if function == nil {
		panic(fmt.Sprintf("%s must be a function, got nil", kind))
	}
	functionValue := reflect.ValueOf(function)
	functionType := functionValue.Type()
	if functionType.Kind() != reflect.Func {
		panic(fmt.Sprintf("%s must be a function, got %v", kind, functionType))
	}

	numIn := functionType.NumIn()
	if functionType.IsVariadic() {
		if len(dependencies) < numIn-1 {
			panic(fmt.Sprintf("%s %v needs at least %d dependencies, got %d", kind, functionType, numIn-1, len(dependencies)))
		}
	} else if len(dependencies) != numIn {
		panic(fmt.Sprintf("%s %v needs %d dependencies, got %d", kind, functionType, numIn, len(dependencies)))
	}

	arguments := make([]reflect.Type, len(dependencies))
	for i, dependency := range dependencies {
		if dependency != SelfKey && !isValidKey(dependency) {
			panic(fmt.Sprintf("invalid dependency key %#v for %s %v", dependency, kind, functionType))
		}
		if functionType.IsVariadic() && i >= numIn-1 {
			arguments[i] = functionType.In(numIn - 1).Elem()
		} else {
			arguments[i] = functionType.In(i)
		}
	}

	return callable{
		fType:        functionType,
		function:     functionValue,
		dependencies: dependencies,
		arguments:    arguments,
	}
}

// newConstructorCallable also checks the constructor returns T or (T, error).
func newConstructorCallable(constructor any, dependencies []Key) callable {
	fc := newCallable("constructor", constructor, dependencies)
	numOut := fc.fType.NumOut()
	if numOut < 1 || numOut > 2 || numOut == 2 && !fc.fType.Out(1).AssignableTo(errorType) {
		panic("constructor must be a function returning exactly one value, or a value and an error")
	}
	return fc
}

func (fc callable) argument(i int, value any) (reflect.Value, error) {
	argumentType := fc.arguments[i]
	if value == nil {
		return reflect.Zero(argumentType), nil
	}
	argumentValue := reflect.ValueOf(value)
	if !argumentValue.Type().AssignableTo(argumentType) {
		return reflect.Value{}, fmt.Errorf("%w: argument %d of %v is %s, which resolved to %T, expected %v",
			ErrTypeMismatch, i, fc.fType, describeKey(fc.dependencies[i]), value, argumentType)
	}
	return argumentValue, nil
}

func (fc callable) convert(values []any) ([]reflect.Value, error) {
	args := make([]reflect.Value, len(values))
	for i, value := range values {
		arg, err := fc.argument(i, value)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

// resolveArguments resolves every dependency from the sync namespace, in
// order. SelfKey resolves to c.
func (fc callable) resolveArguments(c *Container) ([]reflect.Value, error) {
	values := make([]any, len(fc.dependencies))
	for i, dependency := range fc.dependencies {
		value, err := c.Resolve(dependency)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return fc.convert(values)
}

// resolveArgumentsAsync resolves every dependency concurrently. Keys bound in
// the sync namespace are resolved synchronously, everything else from the
// async namespace.
func (fc callable) resolveArgumentsAsync(ctx context.Context, c *Container) ([]reflect.Value, error) {
	values, err := internal.Gather(ctx, len(fc.dependencies), func(ctx context.Context, i int) (any, error) {
		dependency := fc.dependencies[i]
		if dependency == SelfKey || c.Has(dependency) {
			return c.Resolve(dependency)
		}
		return c.ResolveAsync(ctx, dependency)
	})
	if err != nil {
		return nil, err
	}
	return fc.convert(values)
}

// construct calls a constructor checked by newConstructorCallable.
func (fc callable) construct(args []reflect.Value) (any, error) {
	results := fc.function.Call(args)
	if len(results) == 2 && !isNil(results[1]) {
		return nil, results[1].Interface().(error)
	}
	return results[0].Interface(), nil
}

// isNil also reports typed nils, so a constructor returning a nil *MyError
// succeeds.
func isNil(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	default:
		return false
	}
}

// bind returns a new parameterless function with the same results as the
// wrapped one, calling it with args.
func (fc callable) bind(args []reflect.Value) any {
	results := make([]reflect.Type, fc.fType.NumOut())
	for i := range results {
		results[i] = fc.fType.Out(i)
	}
	boundType := reflect.FuncOf(nil, results, false)
	return reflect.MakeFunc(boundType, func([]reflect.Value) []reflect.Value {
		return fc.function.Call(args)
	}).Interface()
}
