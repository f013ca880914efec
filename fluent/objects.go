package fluent

import (
	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/condition"
	"github.com/mazzegi/fluent/objects"
)

var (
	_ State[*ObjectAssert[int], int]     = (*ObjectAssert[int])(nil)
	_ Comparing[*ObjectAssert[int], int] = (*ObjectAssert[int])(nil)
)

type ObjectAssert[T any] struct {
	assertion[*ObjectAssert[T]]
	actual  T
	objects *objects.Objects[T]
}

// That asserts on any value. Values are equal when reflect.DeepEqual says so, unless a
// comparator is set.
func That[T any](t TestingT, actual T) *ObjectAssert[T] {
	a := &ObjectAssert[T]{actual: actual}
	a.assertion = newAssertion(t, a)
	a.objects = objects.New[T]()
	a.objects.Failures = a.failures
	return a
}

func (a *ObjectAssert[T]) Actual() T {
	return a.actual
}

func (a *ObjectAssert[T]) UsingComparator(c compare.Comparator[T]) *ObjectAssert[T] {
	return a.UsingComparatorNamed(c, "")
}

func (a *ObjectAssert[T]) UsingComparatorNamed(c compare.Comparator[T], description string) *ObjectAssert[T] {
	requireComparator(c)
	a.objects.Strategy = compare.Custom(c, description)
	return a
}

func (a *ObjectAssert[T]) UsingDefaultComparator() *ObjectAssert[T] {
	a.objects.Strategy = compare.Standard[T](nil)
	return a
}

func (a *ObjectAssert[T]) IsEqualTo(expected T) *ObjectAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.objects.AssertEqual(a.info, a.actual, expected) })
	return a
}

func (a *ObjectAssert[T]) IsNotEqualTo(other T) *ObjectAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.objects.AssertNotEqual(a.info, a.actual, other) })
	return a
}

func (a *ObjectAssert[T]) IsNil() *ObjectAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.objects.AssertIsNil(a.info, a.actual) })
	return a
}

func (a *ObjectAssert[T]) IsNotNil() *ObjectAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.objects.AssertIsNotNil(a.info, a.actual) })
	return a
}

func (a *ObjectAssert[T]) Is(cond condition.Condition[T]) *ObjectAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.objects.AssertIs(a.info, a.actual, cond) })
	return a
}

func (a *ObjectAssert[T]) IsNot(cond condition.Condition[T]) *ObjectAssert[T] {
	a.t.Helper()
	a.check(func() error { return a.objects.AssertIsNot(a.info, a.actual, cond) })
	return a
}
