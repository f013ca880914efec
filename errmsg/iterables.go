package errmsg

import (
	"fmt"
	"strconv"

	"github.com/mazzegi/fluent/compare"
)

func ElementsShouldBeAtMost(actual any, times int, cond fmt.Stringer) Factory {
	return New("\nExpecting elements:\n<%s>\n to be at most %s times <%s>",
		actual, Raw(strconv.Itoa(times)), Raw(cond.String()))
}

func ElementsShouldBeAtLeast(actual any, times int, cond fmt.Stringer) Factory {
	return New("\nExpecting elements:\n<%s>\n to be at least %s times <%s>",
		actual, Raw(strconv.Itoa(times)), Raw(cond.String()))
}

func ElementsShouldBeExactly(actual any, times int, cond fmt.Stringer) Factory {
	return New("\nExpecting elements:\n<%s>\n to be exactly %s times <%s>",
		actual, Raw(strconv.Itoa(times)), Raw(cond.String()))
}

func ShouldHaveSize(actual any, actualSize, expectedSize int) Factory {
	return New("\nExpected size:<%s> but was:<%s> in:\n<%s>",
		Raw(strconv.Itoa(expectedSize)), Raw(strconv.Itoa(actualSize)), actual)
}

func ShouldBeEmpty(actual any) Factory {
	return New("\nExpecting empty but was:<%s>", actual)
}

func ShouldNotBeEmpty() Factory {
	return Message("\nExpecting actual not to be empty")
}

func ShouldContain(actual, expected, notFound any, strategy compare.Describer) Factory {
	return NewWithStrategy(strategy, "\nExpecting:\n <%s>\nto contain:\n <%s>\nbut could not find:\n <%s>",
		actual, expected, notFound)
}
