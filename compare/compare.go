// Package compare provides the comparison strategies assertions delegate equality and
// ordering decisions to.
//
// The standard strategy relies on the natural order of a type (or deep equality when a
// type has none). A custom strategy is built from a Comparator and shows up in failure
// messages as "when comparing values using <description>".
package compare

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// Comparator returns a negative number, zero or a positive number as a is less than,
// equal to or greater than b.
type Comparator[T any] func(a, b T) int

// ErrNotOrdered is raised when ordering is requested from a strategy that has no order.
var ErrNotOrdered = errors.New("values have no natural order")

func Natural[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

func Times() Comparator[time.Time] {
	return func(a, b time.Time) int {
		return a.Compare(b)
	}
}

// Reverse returns a comparator with the inverted order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Describer is the part of a strategy that failure messages need.
type Describer interface {
	IsStandard() bool
	String() string
}

type Strategy[T any] interface {
	Describer
	AreEqual(actual, other T) bool
	IsGreaterThan(actual, other T) bool
	IsGreaterThanOrEqualTo(actual, other T) bool
	IsLessThan(actual, other T) bool
	IsLessThanOrEqualTo(actual, other T) bool
}

// Standard returns the strategy of natural comparison. natural may be nil for types without
// an order; such a strategy uses reflect.DeepEqual and panics when asked to order values.
func Standard[T any](natural Comparator[T]) Strategy[T] {
	return standard[T]{natural: natural}
}

type standard[T any] struct {
	natural Comparator[T]
}

func (s standard[T]) IsStandard() bool {
	return true
}

func (s standard[T]) String() string {
	return ""
}

func (s standard[T]) AreEqual(actual, other T) bool {
	if s.natural == nil {
		return reflect.DeepEqual(actual, other)
	}
	return s.natural(actual, other) == 0
}

func (s standard[T]) compare(actual, other T) int {
	if s.natural == nil {
		var t T
		panic(fmt.Errorf("%w: %T", ErrNotOrdered, t))
	}
	return s.natural(actual, other)
}

func (s standard[T]) IsGreaterThan(actual, other T) bool {
	return s.compare(actual, other) > 0
}

func (s standard[T]) IsGreaterThanOrEqualTo(actual, other T) bool {
	return s.compare(actual, other) >= 0
}

func (s standard[T]) IsLessThan(actual, other T) bool {
	return s.compare(actual, other) < 0
}

func (s standard[T]) IsLessThanOrEqualTo(actual, other T) bool {
	return s.compare(actual, other) <= 0
}

// Custom returns a strategy comparing by c. An empty description is derived from the name
// of the comparator function.
func Custom[T any](c Comparator[T], description string) Strategy[T] {
	if description == "" {
		description = FuncName(c)
	}
	return custom[T]{comparator: c, description: description}
}

type custom[T any] struct {
	comparator  Comparator[T]
	description string
}

func (c custom[T]) IsStandard() bool {
	return false
}

func (c custom[T]) String() string {
	return "when comparing values using " + c.description
}

func (c custom[T]) AreEqual(actual, other T) bool {
	return c.comparator(actual, other) == 0
}

func (c custom[T]) IsGreaterThan(actual, other T) bool {
	return c.comparator(actual, other) > 0
}

func (c custom[T]) IsGreaterThanOrEqualTo(actual, other T) bool {
	return c.comparator(actual, other) >= 0
}

func (c custom[T]) IsLessThan(actual, other T) bool {
	return c.comparator(actual, other) < 0
}

func (c custom[T]) IsLessThanOrEqualTo(actual, other T) bool {
	return c.comparator(actual, other) <= 0
}

// FuncName returns the package qualified name of fn, e.g. "dates.ByYearAndMonth".
func FuncName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return fmt.Sprintf("%T", fn)
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return fmt.Sprintf("%T", fn)
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
