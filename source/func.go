package source

import "github.com/arloliu/parfill/types"

// Func adapts an infallible function to types.ValueSource.
//
// The function must be pure and safe for concurrent calls.
//
// Example:
//
//	src := source.Func(func(i int) int { return i % 7 })
type Func func(i int) int

var _ types.ValueSource = Func(nil)

// ValueAt calls f(i).
func (f Func) ValueAt(i int) (int, error) {
	return f(i), nil
}

// FallibleFunc adapts a function that can fail to types.ValueSource.
//
// A non-nil error fails the task computing index i and, with it, the whole
// fill call.
type FallibleFunc func(i int) (int, error)

var _ types.ValueSource = FallibleFunc(nil)

// ValueAt calls f(i).
func (f FallibleFunc) ValueAt(i int) (int, error) {
	return f(i)
}
