// Package fluent is the entry point for assertions in tests:
//
//	fluent.ThatDate(t, "2011-01-01").IsBefore("2012-01-01").IsInSameYearAs("2011-12-31")
//
// A failed assertion is reported through t.Errorf and, with fail-fast configured, t.FailNow.
// Once an assertion of a chain failed, the remaining assertions of that chain are skipped.
// Calling an assertion with missing input (a nil comparator, a nil date to compare with)
// is a programming error and panics with a *failure.PreconditionError.
package fluent

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/config"
	"github.com/mazzegi/fluent/date"
	"github.com/mazzegi/fluent/description"
	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/failure"
	"github.com/mazzegi/fluent/presentation"
	"github.com/mazzegi/log"
)

// TestingT is the part of *testing.T used to report failures.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

type Descriptable[S any] interface {
	// As sets the description put in front of failure messages as "[description] ".
	As(format string, args ...any) S
	// WithFailMessage replaces the rendered failure message.
	WithFailMessage(format string, args ...any) S
}

// State is implemented by every assertion type.
type State[S, A any] interface {
	Descriptable[S]
	Myself() S
	Actual() A
	WithThreadDumpOnError() S
	WithRepresentation(r presentation.Representation) S
	Err() error
}

// Comparing is implemented by assertion types whose checks depend on a comparison strategy.
// The strategy is bound to the assertion instance.
type Comparing[S, E any] interface {
	UsingComparator(c compare.Comparator[E]) S
	UsingComparatorNamed(c compare.Comparator[E], description string) S
	UsingDefaultComparator() S
}

var setupOnce sync.Once

// setup applies the loaded config to the process wide defaults once.
func setup() config.Config {
	cfg := config.Global()
	setupOnce.Do(func() {
		if cfg.DateLocation != "" {
			if err := date.SetLocation(cfg.DateLocation); err != nil {
				log.Warnf("fluent: %v", err)
			}
		}
		r, err := presentation.Parse(cfg.Representation)
		if err != nil {
			log.Warnf("fluent: %v", err)
			return
		}
		presentation.SetDefault(r)
	})
	return cfg
}

// assertion carries the state every assertion type shares. S is the embedding type.
type assertion[S any] struct {
	myself   S
	t        TestingT
	info     failure.Info
	failures *failure.Failures
	failFast bool
	err      error
}

func newAssertion[S any](t TestingT, myself S) assertion[S] {
	cfg := setup()
	return assertion[S]{
		myself:   myself,
		t:        t,
		failures: &failure.Failures{ThreadDumpOnError: cfg.ThreadDumpOnError},
		failFast: cfg.FailFast,
	}
}

func (a *assertion[S]) Myself() S {
	return a.myself
}

func (a *assertion[S]) As(format string, args ...any) S {
	a.info.Description = description.Text(format, args...)
	return a.myself
}

func (a *assertion[S]) WithFailMessage(format string, args ...any) S {
	if len(args) == 0 {
		a.info.OverridingMessage = format
	} else {
		a.info.OverridingMessage = fmt.Sprintf(format, args...)
	}
	return a.myself
}

func (a *assertion[S]) WithThreadDumpOnError() S {
	a.failures.ThreadDumpOnError = true
	return a.myself
}

// WithRepresentation renders the values of failure messages through r. A nil r restores
// the default representation.
func (a *assertion[S]) WithRepresentation(r presentation.Representation) S {
	a.info.Representation = r
	return a.myself
}

// Err returns the error of the failed assertion of the chain, if any.
func (a *assertion[S]) Err() error {
	return a.err
}

// check runs fn unless an earlier assertion of the chain failed.
func (a *assertion[S]) check(fn func() error) {
	a.t.Helper()
	if a.err != nil {
		return
	}
	err := fn()
	if err == nil {
		return
	}
	var pe *failure.PreconditionError
	if errors.As(err, &pe) {
		panic(pe)
	}
	a.err = err
	a.t.Errorf("%s", err.Error())
	if a.failFast {
		a.t.FailNow()
	}
}

func requireComparator[E any](c compare.Comparator[E]) {
	if c == nil {
		panic(failure.Precondition(errmsg.ComparatorIsNull))
	}
}
