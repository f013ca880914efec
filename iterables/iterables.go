// Package iterables implements assertions on slices.
package iterables

import (
	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/condition"
	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/failure"
)

// Iterables uses Strategy to compare elements.
type Iterables[T any] struct {
	Strategy compare.Strategy[T]
	Failures *failure.Failures
}

func New[T any]() *Iterables[T] {
	return NewWithStrategy(compare.Standard[T](nil))
}

func NewWithStrategy[T any](strategy compare.Strategy[T]) *Iterables[T] {
	return &Iterables[T]{
		Strategy: strategy,
		Failures: &failure.Failures{},
	}
}

func (it *Iterables[T]) AssertHasSize(info failure.Info, actual []T, expected int) error {
	if expected < 0 {
		return failure.Precondition(errmsg.SizeIsNegative)
	}
	if len(actual) == expected {
		return nil
	}
	return it.Failures.Failure(info, errmsg.ShouldHaveSize(actual, len(actual), expected))
}

func (it *Iterables[T]) AssertIsEmpty(info failure.Info, actual []T) error {
	if len(actual) == 0 {
		return nil
	}
	return it.Failures.Failure(info, errmsg.ShouldBeEmpty(actual))
}

func (it *Iterables[T]) AssertIsNotEmpty(info failure.Info, actual []T) error {
	if len(actual) > 0 {
		return nil
	}
	return it.Failures.Failure(info, errmsg.ShouldNotBeEmpty())
}

// AssertContains checks that every value is an element of actual according to the strategy.
func (it *Iterables[T]) AssertContains(info failure.Info, actual []T, values []T) error {
	if len(values) == 0 {
		return failure.Precondition(errmsg.ValuesAreEmpty)
	}
	var notFound []T
	for _, v := range values {
		if !it.contains(actual, v) {
			notFound = append(notFound, v)
		}
	}
	if len(notFound) == 0 {
		return nil
	}
	return it.Failures.Failure(info, errmsg.ShouldContain(actual, values, notFound, it.Strategy))
}

func (it *Iterables[T]) contains(actual []T, v T) bool {
	for _, a := range actual {
		if it.Strategy.AreEqual(a, v) {
			return true
		}
	}
	return false
}

func (it *Iterables[T]) AssertAreAtMost(info failure.Info, actual []T, times int, cond condition.Condition[T]) error {
	if err := checkCondition(times, cond); err != nil {
		return err
	}
	if condition.Count(actual, cond) <= times {
		return nil
	}
	return it.Failures.Failure(info, errmsg.ElementsShouldBeAtMost(actual, times, cond))
}

func (it *Iterables[T]) AssertAreAtLeast(info failure.Info, actual []T, times int, cond condition.Condition[T]) error {
	if err := checkCondition(times, cond); err != nil {
		return err
	}
	if condition.Count(actual, cond) >= times {
		return nil
	}
	return it.Failures.Failure(info, errmsg.ElementsShouldBeAtLeast(actual, times, cond))
}

func (it *Iterables[T]) AssertAreExactly(info failure.Info, actual []T, times int, cond condition.Condition[T]) error {
	if err := checkCondition(times, cond); err != nil {
		return err
	}
	if condition.Count(actual, cond) == times {
		return nil
	}
	return it.Failures.Failure(info, errmsg.ElementsShouldBeExactly(actual, times, cond))
}

func checkCondition[T any](times int, cond condition.Condition[T]) error {
	if !cond.IsValid() {
		return failure.Precondition(errmsg.ConditionIsNull)
	}
	if times < 0 {
		return failure.Precondition(errmsg.TimesIsNegative)
	}
	return nil
}
