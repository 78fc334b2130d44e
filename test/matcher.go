package test

import (
	"fmt"

	"go.uber.org/mock/gomock"
)

type funcMatcher[T any] struct {
	description string
	match       func(val T) bool
	last        interface{}
}

func (f *funcMatcher[T]) Matches(val interface{}) bool {
	f.last = val
	v, ok := val.(T)
	if !ok {
		return false
	}

	return f.match(v)
}

func (f *funcMatcher[T]) String() string {
	return fmt.Sprintf("%s (last argument: %+v)", f.description, f.last)
}

// Match builds a gomock matcher from a predicate over the argument's concrete type.
// Arguments of any other type never match.
func Match[T any](description string, m func(v T) bool) gomock.Matcher {
	return &funcMatcher[T]{
		description: description,
		match:       m,
	}
}
