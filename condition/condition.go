// Package condition provides described predicates used by assertions such as "elements
// should be at most 2 times <a Jedi>".
package condition

import "fmt"

type Condition[T any] struct {
	description string
	matches     func(T) bool
}

func New[T any](description string, matches func(T) bool) Condition[T] {
	return Condition[T]{description: description, matches: matches}
}

// IsValid reports whether c has a predicate. The zero Condition is not valid.
func (c Condition[T]) IsValid() bool {
	return c.matches != nil
}

func (c Condition[T]) Matches(t T) bool {
	return c.matches(t)
}

func (c Condition[T]) String() string {
	if c.description == "" {
		return fmt.Sprintf("condition on %T", *new(T))
	}
	return c.description
}

func Not[T any](c Condition[T]) Condition[T] {
	return New("not :<"+c.String()+">", func(t T) bool {
		return !c.Matches(t)
	})
}

// Count returns how many of ts match c.
func Count[T any](ts []T, c Condition[T]) int {
	n := 0
	for _, t := range ts {
		if c.Matches(t) {
			n++
		}
	}
	return n
}
