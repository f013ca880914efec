package fluent

import (
	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/condition"
	"github.com/mazzegi/fluent/iterables"
	"github.com/mazzegi/fluent/objects"
)

var (
	_ State[*SliceAssert[int], []int]     = (*SliceAssert[int])(nil)
	_ Comparing[*SliceAssert[int], []int] = (*SliceAssert[int])(nil)
)

// SliceAssert asserts on a slice. UsingComparator applies to the slice as a whole,
// UsingElementComparator to its elements.
type SliceAssert[T any] struct {
	assertion[*SliceAssert[T]]
	actual    []T
	objects   *objects.Objects[[]T]
	iterables *iterables.Iterables[T]
}

func ThatSlice[T any](t TestingT, actual []T) *SliceAssert[T] {
	a := &SliceAssert[T]{actual: actual}
	a.assertion = newAssertion(t, a)
	a.objects = objects.New[[]T]()
	a.objects.Failures = a.failures
	a.iterables = iterables.New[T]()
	a.iterables.Failures = a.failures
	return a
}

func (a *SliceAssert[T]) Actual() []T {
	return a.actual
}

func (a *SliceAssert[T]) UsingComparator(c compare.Comparator[[]T]) *SliceAssert[T] {
	return a.UsingComparatorNamed(c, "")
}

func (a *SliceAssert[T]) UsingComparatorNamed(c compare.Comparator[[]T], description string) *SliceAssert[T] {
	requireComparator(c)
	a.objects.Strategy = compare.Custom(c, description)
	return a
}

// UsingDefaultComparator resets the slice and the element comparator.
func (a *SliceAssert[T]) UsingDefaultComparator() *SliceAssert[T] {
	a.objects.Strategy = compare.Standard[[]T](nil)
	a.iterables.Strategy = compare.Standard[T](nil)
	return a
}

func (a *SliceAssert[T]) UsingElementComparator(c compare.Comparator[T]) *SliceAssert[T] {
	requireComparator(c)
	a.iterables.Strategy = compare.Custom(c, "")
	return a
}

func (a *SliceAssert[T]) IsEqualTo(expected []T) *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.objects.AssertEqual(a.info, a.actual, expected) })
	return a
}

func (a *SliceAssert[T]) IsNotEqualTo(other []T) *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.objects.AssertNotEqual(a.info, a.actual, other) })
	return a
}

func (a *SliceAssert[T]) HasSize(expected int) *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.iterables.AssertHasSize(a.info, a.actual, expected) })
	return a
}

func (a *SliceAssert[T]) IsEmpty() *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.iterables.AssertIsEmpty(a.info, a.actual) })
	return a
}

func (a *SliceAssert[T]) IsNotEmpty() *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.iterables.AssertIsNotEmpty(a.info, a.actual) })
	return a
}

func (a *SliceAssert[T]) Contains(values ...T) *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.iterables.AssertContains(a.info, a.actual, values) })
	return a
}

func (a *SliceAssert[T]) AreAtMost(times int, cond condition.Condition[T]) *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.iterables.AssertAreAtMost(a.info, a.actual, times, cond) })
	return a
}

func (a *SliceAssert[T]) AreAtLeast(times int, cond condition.Condition[T]) *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.iterables.AssertAreAtLeast(a.info, a.actual, times, cond) })
	return a
}

func (a *SliceAssert[T]) AreExactly(times int, cond condition.Condition[T]) *SliceAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.iterables.AssertAreExactly(a.info, a.actual, times, cond) })
	return a
}
