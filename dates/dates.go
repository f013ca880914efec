// Package dates implements the date assertions. Every operation takes pointers so that
// missing values can be told apart from the zero time.
package dates

import (
	"time"

	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/date"
	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/failure"
)

type Dates struct {
	Strategy compare.Strategy[time.Time]
	Failures *failure.Failures
	Now      func() time.Time
}

func New() *Dates {
	return NewWithStrategy(compare.Standard(compare.Times()))
}

func NewWithStrategy(strategy compare.Strategy[time.Time]) *Dates {
	return &Dates{
		Strategy: strategy,
		Failures: &failure.Failures{},
		Now:      time.Now,
	}
}

// ByYearAndMonth orders dates by year and month only.
func ByYearAndMonth(a, b time.Time) int {
	return date.YearMonthOf(a).Compare(date.YearMonthOf(b))
}

func (d *Dates) AssertIsAfter(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if d.Strategy.IsGreaterThan(*actual, *other) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeAfter(actual, other, d.Strategy))
}

func (d *Dates) AssertIsAfterOrEqualTo(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if d.Strategy.IsGreaterThanOrEqualTo(*actual, *other) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeAfterOrEqual(actual, other, d.Strategy))
}

func (d *Dates) AssertIsBefore(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if d.Strategy.IsLessThan(*actual, *other) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeBefore(actual, other, d.Strategy))
}

func (d *Dates) AssertIsBeforeOrEqualTo(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if d.Strategy.IsLessThanOrEqualTo(*actual, *other) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeBeforeOrEqual(actual, other, d.Strategy))
}

func (d *Dates) AssertIsEqualTo(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if d.Strategy.AreEqual(*actual, *other) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeEqual(actual, other, d.Strategy))
}

func (d *Dates) AssertIsNotEqualTo(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if !d.Strategy.AreEqual(*actual, *other) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldNotBeEqual(actual, other, d.Strategy))
}

func (d *Dates) AssertIsBetween(info failure.Info, actual, start, end *time.Time, inclusiveStart, inclusiveEnd bool) error {
	if err := d.checkPeriod(info, actual, start, end); err != nil {
		return err
	}
	if d.isBetween(*actual, *start, *end, inclusiveStart, inclusiveEnd) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeBetween(actual, start, end, inclusiveStart, inclusiveEnd, d.Strategy))
}

func (d *Dates) AssertIsNotBetween(info failure.Info, actual, start, end *time.Time, inclusiveStart, inclusiveEnd bool) error {
	if err := d.checkPeriod(info, actual, start, end); err != nil {
		return err
	}
	if !d.isBetween(*actual, *start, *end, inclusiveStart, inclusiveEnd) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldNotBeBetween(actual, start, end, inclusiveStart, inclusiveEnd, d.Strategy))
}

func (d *Dates) isBetween(actual, start, end time.Time, inclusiveStart, inclusiveEnd bool) bool {
	var afterStart, beforeEnd bool
	if inclusiveStart {
		afterStart = d.Strategy.IsGreaterThanOrEqualTo(actual, start)
	} else {
		afterStart = d.Strategy.IsGreaterThan(actual, start)
	}
	if inclusiveEnd {
		beforeEnd = d.Strategy.IsLessThanOrEqualTo(actual, end)
	} else {
		beforeEnd = d.Strategy.IsLessThan(actual, end)
	}
	return afterStart && beforeEnd
}

func (d *Dates) AssertIsInSameYearAs(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if date.SameYear(d.local(*actual), d.local(*other)) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeInSameYear(actual, other))
}

func (d *Dates) AssertIsInSameMonthAs(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if date.SameMonth(d.local(*actual), d.local(*other)) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeInSameMonth(actual, other))
}

func (d *Dates) AssertIsInSameDayAs(info failure.Info, actual, other *time.Time) error {
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	if date.SameDay(d.local(*actual), d.local(*other)) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeInSameDay(actual, other))
}

// AssertIsCloseTo passes when actual and other are at most delta apart.
func (d *Dates) AssertIsCloseTo(info failure.Info, actual, other *time.Time, delta time.Duration) error {
	if delta < 0 {
		return failure.Precondition(errmsg.DeltaIsNegative)
	}
	if err := d.check(info, actual, other); err != nil {
		return err
	}
	diff := actual.Sub(*other)
	if diff < 0 {
		diff = -diff
	}
	if diff <= delta {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeCloseTo(actual, other, delta, diff))
}

func (d *Dates) AssertIsInThePast(info failure.Info, actual *time.Time) error {
	if actual == nil {
		return d.Failures.Failure(info, errmsg.ShouldNotBeNil())
	}
	if d.Strategy.IsLessThan(*actual, d.now()) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeInThePast(actual))
}

func (d *Dates) AssertIsInTheFuture(info failure.Info, actual *time.Time) error {
	if actual == nil {
		return d.Failures.Failure(info, errmsg.ShouldNotBeNil())
	}
	if d.Strategy.IsGreaterThan(*actual, d.now()) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeInTheFuture(actual))
}

func (d *Dates) AssertIsToday(info failure.Info, actual *time.Time) error {
	if actual == nil {
		return d.Failures.Failure(info, errmsg.ShouldNotBeNil())
	}
	if date.SameDay(d.local(*actual), d.local(d.now())) {
		return nil
	}
	return d.Failures.Failure(info, errmsg.ShouldBeToday(actual))
}

// check validates the arguments of a comparison. A missing other date is a precondition
// violation whatever actual is, so it is checked first.
func (d *Dates) check(info failure.Info, actual, other *time.Time) error {
	if other == nil {
		return failure.Precondition(errmsg.DateToCompareActualWithIsNull)
	}
	if actual == nil {
		return d.Failures.Failure(info, errmsg.ShouldNotBeNil())
	}
	return nil
}

func (d *Dates) checkPeriod(info failure.Info, actual, start, end *time.Time) error {
	if start == nil {
		return failure.Precondition(errmsg.StartDateIsNull)
	}
	if end == nil {
		return failure.Precondition(errmsg.EndDateIsNull)
	}
	if actual == nil {
		return d.Failures.Failure(info, errmsg.ShouldNotBeNil())
	}
	return nil
}

func (d *Dates) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d *Dates) local(t time.Time) time.Time {
	return t.In(date.Location())
}
