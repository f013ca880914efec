package fluent

import (
	"fmt"

	"github.com/mazzegi/fluent/errorx"
	"github.com/mazzegi/fluent/failure"
)

// Soft collects the failures of several assertions and reports them at once:
//
//	soft := fluent.NewSoft(t)
//	fluent.ThatDate(soft, "2011-01-01").IsAfter("2012-01-01")
//	fluent.That(soft, 1).IsEqualTo(2)
//	soft.AssertAll()
//
// Soft implements TestingT. FailNow does not stop the test.
type Soft struct {
	t    TestingT
	errs *errorx.Group
}

func NewSoft(t TestingT) *Soft {
	return &Soft{t: t, errs: errorx.NewGroup()}
}

func (s *Soft) Helper() {
	s.t.Helper()
}

func (s *Soft) Errorf(format string, args ...any) {
	s.errs.Append(&failure.AssertionError{Message: fmt.Sprintf(format, args...)})
}

func (s *Soft) FailNow() {}

// Errors returns the collected failures.
func (s *Soft) Errors() []error {
	return s.errs.Errors()
}

// AssertAll reports all collected failures, even a single one, as one "Multiple Failures"
// failure of the wrapped TestingT.
func (s *Soft) AssertAll() {
	s.t.Helper()
	if s.errs.IsEmpty() {
		return
	}
	s.t.Errorf("%s", (&errorx.MultiError{Errs: s.errs.Errors()}).Error())
}

// Err returns nil without failures, the failure itself for a single one, and an
// *errorx.MultiError otherwise.
func (s *Soft) Err() error {
	return s.errs.Err()
}
