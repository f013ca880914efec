package testx

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/exp/constraints"
)

func AssertEqual(t testing.TB, want, have any) {
	t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	t.Fatalf("want %#v, have %#v", want, have)
}

func AssertInRange[T constraints.Ordered](t testing.TB, val, lower, upper T) {
	t.Helper()
	if val >= lower && val <= upper {
		return
	}
	t.Fatalf("%v not in range [%v, %v]", val, lower, upper)
}

func AssertNoErr(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("error is not-nil but: %v", err)
}

func AssertErr(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Fatalf("expect err; got none")
}

func AssertErrIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		return
	}
	t.Fatalf("expect err to be %q; got %v", target, err)
}

func AssertContains(t testing.TB, s, sub string) {
	t.Helper()
	if strings.Contains(s, sub) {
		return
	}
	t.Fatalf("expect %q to contain %q", s, sub)
}

// AssertPanics runs fn and returns the recovered value. It fails if fn does not panic.
func AssertPanics(t testing.TB, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expect panic; got none")
		}
	}()
	fn()
	return nil
}
