// Package scope provides application-wide flags that are only readable from
// inside the scope that provides them.
package scope

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrNotProvided is returned when a flag is read outside its providing scope.
var ErrNotProvided = errors.New("scoped flag not provided")

// Flag declares a named value of type T with a default. A Flag holds no
// state itself; values live in the Cell installed by Provide.
type Flag[T any] struct {
	name string
	def  T
	key  *flagKey
}

type flagKey struct{ name string }

// New declares a flag.
func New[T any](name string, def T) *Flag[T] {
	return &Flag[T]{name: name, def: def, key: &flagKey{name: name}}
}

// Name returns the flag name.
func (f *Flag[T]) Name() string { return f.name }

// Default returns the initial value of freshly provided cells.
func (f *Flag[T]) Default() T { return f.def }

// Provide installs a new cell holding the default value into ctx.
func (f *Flag[T]) Provide(ctx context.Context) (context.Context, *Cell[T]) {
	return f.ProvideValue(ctx, f.def)
}

// ProvideValue installs a new cell holding v into ctx.
func (f *Flag[T]) ProvideValue(ctx context.Context, v T) (context.Context, *Cell[T]) {
	c := &Cell[T]{name: f.name, value: v}
	return context.WithValue(ctx, f.key, c), c
}

// From returns the cell provided in ctx.
func (f *Flag[T]) From(ctx context.Context) (*Cell[T], error) {
	if ctx != nil {
		if c, ok := ctx.Value(f.key).(*Cell[T]); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotProvided, f.name)
}

// MustFrom is From for wiring code where a missing provider is a programming
// error.
func (f *Flag[T]) MustFrom(ctx context.Context) *Cell[T] {
	c, err := f.From(ctx)
	if err != nil {
		panic(err)
	}
	return c
}

// Cell is the mutable value behind a provided flag. It is safe for
// concurrent use.
type Cell[T any] struct {
	name string

	mu    sync.RWMutex
	value T
	subs  []func(T)
}

// Name returns the name of the flag this cell was provided for.
func (c *Cell[T]) Name() string { return c.name }

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
}

// Update applies fn to the current value atomically and returns the result.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	c.value = fn(c.value)
	v := c.value
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	for _, sub := range subs {
		sub(v)
	}
	return v
}

// Subscribe registers fn to receive every value passed to Set or Update.
func (c *Cell[T]) Subscribe(fn func(T)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}
