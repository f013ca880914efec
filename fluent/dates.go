package fluent

import (
	"time"

	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/date"
	"github.com/mazzegi/fluent/dates"
	"github.com/mazzegi/fluent/failure"
)

var (
	_ State[*DateAssert, *time.Time]    = (*DateAssert)(nil)
	_ Comparing[*DateAssert, time.Time] = (*DateAssert)(nil)
)

// DateAssert asserts on a date. Dates to compare with are given as time.Time, *time.Time
// or as a string in one of the layouts accepted by date.Parse. A nil date to compare with
// violates the precondition of every comparison.
type DateAssert struct {
	assertion[*DateAssert]
	actual *time.Time
	dates  *dates.Dates
}

func ThatTime(t TestingT, actual time.Time) *DateAssert {
	return ThatTimePtr(t, &actual)
}

// ThatTimePtr asserts on actual which may be nil.
func ThatTimePtr(t TestingT, actual *time.Time) *DateAssert {
	a := &DateAssert{actual: actual}
	a.assertion = newAssertion(t, a)
	a.dates = dates.New()
	a.dates.Failures = a.failures
	return a
}

// ThatDate parses actual with date.Parse. It panics when actual cannot be parsed.
func ThatDate(t TestingT, actual string) *DateAssert {
	return ThatTimePtr(t, toTime(actual))
}

func toTime(v any) *time.Time {
	switch v := v.(type) {
	case nil:
		return nil
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		t, err := date.Parse(v)
		if err != nil {
			panic(failure.Preconditionf("Failed to parse %s: %v", v, err))
		}
		return &t
	default:
		panic(failure.Preconditionf("A date should be a time.Time, *time.Time or string but was %T", v))
	}
}

func (a *DateAssert) Actual() *time.Time {
	return a.actual
}

func (a *DateAssert) UsingComparator(c compare.Comparator[time.Time]) *DateAssert {
	return a.UsingComparatorNamed(c, "")
}

// UsingComparatorNamed compares with c. The description names c in failure messages;
// when empty, the name of c's function is used.
func (a *DateAssert) UsingComparatorNamed(c compare.Comparator[time.Time], description string) *DateAssert {
	requireComparator(c)
	a.dates.Strategy = compare.Custom(c, description)
	return a
}

func (a *DateAssert) UsingDefaultComparator() *DateAssert {
	a.dates.Strategy = compare.Standard(compare.Times())
	return a
}

func (a *DateAssert) IsAfter(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsAfter(a.info, a.actual, toTime(other)) })
	return a
}

func (a *DateAssert) IsAfterOrEqualTo(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsAfterOrEqualTo(a.info, a.actual, toTime(other)) })
	return a
}

func (a *DateAssert) IsBefore(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsBefore(a.info, a.actual, toTime(other)) })
	return a
}

func (a *DateAssert) IsBeforeOrEqualTo(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsBeforeOrEqualTo(a.info, a.actual, toTime(other)) })
	return a
}

func (a *DateAssert) IsEqualTo(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsEqualTo(a.info, a.actual, toTime(other)) })
	return a
}

func (a *DateAssert) IsNotEqualTo(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsNotEqualTo(a.info, a.actual, toTime(other)) })
	return a
}

// IsBetween checks start <= actual < end.
func (a *DateAssert) IsBetween(start, end any) *DateAssert {
	a.t.Helper()
	return a.IsBetweenWith(start, end, true, false)
}

func (a *DateAssert) IsBetweenWith(start, end any, inclusiveStart, inclusiveEnd bool) *DateAssert {
	a.t.Helper()
	a.check(func() error {
		return a.dates.AssertIsBetween(a.info, a.actual, toTime(start), toTime(end), inclusiveStart, inclusiveEnd)
	})
	return a
}

// IsNotBetween checks that actual is not in [start, end).
func (a *DateAssert) IsNotBetween(start, end any) *DateAssert {
	a.t.Helper()
	return a.IsNotBetweenWith(start, end, true, false)
}

func (a *DateAssert) IsNotBetweenWith(start, end any, inclusiveStart, inclusiveEnd bool) *DateAssert {
	a.t.Helper()
	a.check(func() error {
		return a.dates.AssertIsNotBetween(a.info, a.actual, toTime(start), toTime(end), inclusiveStart, inclusiveEnd)
	})
	return a
}

func (a *DateAssert) IsInSameYearAs(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsInSameYearAs(a.info, a.actual, toTime(other)) })
	return a
}

func (a *DateAssert) IsInSameMonthAs(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsInSameMonthAs(a.info, a.actual, toTime(other)) })
	return a
}

func (a *DateAssert) IsInSameDayAs(other any) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsInSameDayAs(a.info, a.actual, toTime(other)) })
	return a
}

func (a *DateAssert) IsCloseTo(other any, delta time.Duration) *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsCloseTo(a.info, a.actual, toTime(other), delta) })
	return a
}

func (a *DateAssert) IsInThePast() *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsInThePast(a.info, a.actual) })
	return a
}

func (a *DateAssert) IsInTheFuture() *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsInTheFuture(a.info, a.actual) })
	return a
}

func (a *DateAssert) IsToday() *DateAssert {
	a.t.Helper()
	a.check(func() error { return a.dates.AssertIsToday(a.info, a.actual) })
	return a
}
