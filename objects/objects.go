// Package objects implements assertions on arbitrary values.
package objects

import (
	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/condition"
	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/failure"
	"github.com/mazzegi/fluent/presentation"
)

type Objects[T any] struct {
	Strategy compare.Strategy[T]
	Failures *failure.Failures
}

func New[T any]() *Objects[T] {
	return NewWithStrategy(compare.Standard[T](nil))
}

func NewWithStrategy[T any](strategy compare.Strategy[T]) *Objects[T] {
	return &Objects[T]{
		Strategy: strategy,
		Failures: &failure.Failures{},
	}
}

func (o *Objects[T]) AssertEqual(info failure.Info, actual, expected T) error {
	if o.Strategy.AreEqual(actual, expected) {
		return nil
	}
	return o.Failures.Failure(info, errmsg.ShouldBeEqual(actual, expected, o.Strategy))
}

func (o *Objects[T]) AssertNotEqual(info failure.Info, actual, other T) error {
	if !o.Strategy.AreEqual(actual, other) {
		return nil
	}
	return o.Failures.Failure(info, errmsg.ShouldNotBeEqual(actual, other, o.Strategy))
}

// AssertIsNil succeeds for nil interfaces, pointers, maps, slices, channels and funcs.
func (o *Objects[T]) AssertIsNil(info failure.Info, actual T) error {
	if presentation.IsNil(actual) {
		return nil
	}
	return o.Failures.Failure(info, errmsg.ShouldBeNil(actual))
}

func (o *Objects[T]) AssertIsNotNil(info failure.Info, actual T) error {
	if !presentation.IsNil(actual) {
		return nil
	}
	return o.Failures.Failure(info, errmsg.ShouldNotBeNil())
}

func (o *Objects[T]) AssertIs(info failure.Info, actual T, cond condition.Condition[T]) error {
	if !cond.IsValid() {
		return failure.Precondition(errmsg.ConditionIsNull)
	}
	if cond.Matches(actual) {
		return nil
	}
	return o.Failures.Failure(info, errmsg.ShouldBe(actual, cond))
}

func (o *Objects[T]) AssertIsNot(info failure.Info, actual T, cond condition.Condition[T]) error {
	if !cond.IsValid() {
		return failure.Precondition(errmsg.ConditionIsNull)
	}
	if !cond.Matches(actual) {
		return nil
	}
	return o.Failures.Failure(info, errmsg.ShouldNotBe(actual, cond))
}
