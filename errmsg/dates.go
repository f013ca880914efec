package errmsg

import (
	"time"

	"github.com/mazzegi/fluent/compare"
)

func ShouldNotBeNil() Factory {
	return Message(ActualIsNull)
}

func ShouldBeAfter(actual, other any, strategy compare.Describer) Factory {
	return NewWithStrategy(strategy, "\nExpecting:\n <%s>\nto be strictly after:\n <%s>", actual, other)
}

func ShouldBeAfterOrEqual(actual, other any, strategy compare.Describer) Factory {
	return NewWithStrategy(strategy, "\nExpecting:\n <%s>\nto be after or equal to:\n <%s>", actual, other)
}

func ShouldBeBefore(actual, other any, strategy compare.Describer) Factory {
	return NewWithStrategy(strategy, "\nExpecting:\n <%s>\nto be strictly before:\n <%s>", actual, other)
}

func ShouldBeBeforeOrEqual(actual, other any, strategy compare.Describer) Factory {
	return NewWithStrategy(strategy, "\nExpecting:\n <%s>\nto be before or equal to:\n <%s>", actual, other)
}

// ShouldBeBetween renders the period with "[" / "]" for included and "]" / "[" for excluded boundaries.
func ShouldBeBetween(actual, start, end any, inclusiveStart, inclusiveEnd bool, strategy compare.Describer) Factory {
	return NewWithStrategy(strategy, "\nExpecting:\n <%s>\nto be in period:\n %s%s, %s%s",
		actual, Raw(openBracket(inclusiveStart)), start, end, Raw(closeBracket(inclusiveEnd)))
}

func ShouldNotBeBetween(actual, start, end any, inclusiveStart, inclusiveEnd bool, strategy compare.Describer) Factory {
	return NewWithStrategy(strategy, "\nExpecting:\n <%s>\nnot to be in period:\n %s%s, %s%s",
		actual, Raw(openBracket(inclusiveStart)), start, end, Raw(closeBracket(inclusiveEnd)))
}

func openBracket(inclusive bool) string {
	if inclusive {
		return "["
	}
	return "]"
}

func closeBracket(inclusive bool) string {
	if inclusive {
		return "]"
	}
	return "["
}

func ShouldBeInSameYear(actual, other any) Factory {
	return New("\nExpecting:\n <%s>\nto be on same year as:\n <%s>", actual, other)
}

func ShouldBeInSameMonth(actual, other any) Factory {
	return New("\nExpecting:\n <%s>\nto be on same year and month as:\n <%s>", actual, other)
}

func ShouldBeInSameDay(actual, other any) Factory {
	return New("\nExpecting:\n <%s>\nto be on same year, month and day as:\n <%s>", actual, other)
}

func ShouldBeCloseTo(actual, other any, delta, difference time.Duration) Factory {
	return New("\nExpecting:\n <%s>\nto be close to:\n <%s>\nby less than %s but difference was %s",
		actual, other, Raw(delta.String()), Raw(difference.String()))
}

func ShouldBeInThePast(actual any) Factory {
	return New("\nExpecting:\n <%s>\nto be in the past", actual)
}

func ShouldBeInTheFuture(actual any) Factory {
	return New("\nExpecting:\n <%s>\nto be in the future", actual)
}

func ShouldBeToday(actual any) Factory {
	return New("\nExpecting:\n <%s>\nto be today", actual)
}
