package errmsg

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/description"
	"github.com/mazzegi/fluent/presentation"
	"github.com/r3labs/diff/v3"
)

type shouldBeEqual struct {
	actual   any
	expected any
	strategy string
}

// ShouldBeEqual renders expected and actual. When both render the same, their types are
// added. Structs and maps of the same type get the list of differing fields.
func ShouldBeEqual(actual, expected any, strategy compare.Describer) Factory {
	return shouldBeEqual{actual: actual, expected: expected, strategy: strategyLine(strategy)}
}

func (f shouldBeEqual) Create(d description.Description, r presentation.Representation) string {
	if r == nil {
		r = presentation.Default()
	}
	actual, expected := r.ToStringOf(f.actual), r.ToStringOf(f.expected)
	if actual == expected {
		actual, expected = r.UnambiguousToStringOf(f.actual), r.UnambiguousToStringOf(f.expected)
	}
	var sb strings.Builder
	sb.WriteString(description.Format(d))
	fmt.Fprintf(&sb, "\nexpected: %s\n but was: %s", expected, actual)
	if changes := fieldChanges(f.expected, f.actual, r); len(changes) > 0 {
		sb.WriteString("\nwhen comparing fields:")
		for _, c := range changes {
			sb.WriteString("\n  - ")
			sb.WriteString(c)
		}
	}
	sb.WriteString(f.strategy)
	return sb.String()
}

func fieldChanges(expected, actual any, r presentation.Representation) (changes []string) {
	if !diffable(expected, actual) {
		return nil
	}
	defer func() {
		// diff may choke on exotic field types; the plain message is still complete
		if rec := recover(); rec != nil {
			changes = nil
		}
	}()
	cl, err := diff.Diff(expected, actual)
	if err != nil {
		return nil
	}
	for _, c := range cl {
		if len(c.Path) == 0 {
			continue
		}
		changes = append(changes, fmt.Sprintf("%s: expected <%s> but was <%s>",
			strings.Join(c.Path, "."), r.ToStringOf(c.From), r.ToStringOf(c.To)))
	}
	sort.Strings(changes)
	return changes
}

// diffable reports whether expected and actual are structs or maps of the same type whose
// fields are worth listing. Values rendering as a whole (dates, errors, Stringers) are not.
func diffable(expected, actual any) bool {
	if presentation.IsNil(expected) || presentation.IsNil(actual) {
		return false
	}
	switch expected.(type) {
	case time.Time, *time.Time, error, fmt.Stringer:
		return false
	}
	et, at := reflect.TypeOf(expected), reflect.TypeOf(actual)
	if et != at {
		return false
	}
	if et.Kind() == reflect.Pointer {
		et = et.Elem()
	}
	if et.Kind() != reflect.Struct && et.Kind() != reflect.Map {
		return false
	}
	return !presentation.HasCycle(expected) && !presentation.HasCycle(actual)
}

func ShouldNotBeEqual(actual, other any, strategy compare.Describer) Factory {
	return NewWithStrategy(strategy, "\nExpecting:\n <%s>\nnot to be equal to:\n <%s>", actual, other)
}

func ShouldBeNil(actual any) Factory {
	return New("\nExpecting actual to be null but was:\n <%s>", actual)
}

func ShouldBe(actual any, cond fmt.Stringer) Factory {
	return New("\nExpecting:\n <%s>\nto be <%s>", actual, Raw(cond.String()))
}

func ShouldNotBe(actual any, cond fmt.Stringer) Factory {
	return New("\nExpecting:\n <%s>\nnot to be <%s>", actual, Raw(cond.String()))
}
