// Package failure turns rendered messages into reported failures.
//
// Two kinds of errors leave an assertion: an *AssertionError when an expectation does not
// hold, and a *PreconditionError when the assertion was called with structurally missing
// input, e.g. a nil date to compare with. The latter is a programming error of the test
// author and never a failed expectation.
package failure

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mazzegi/fluent/description"
	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/presentation"
	"github.com/mazzegi/log"
)

var (
	ErrAssertionFailed = errors.New("assertion failed")
	ErrPrecondition    = errors.New("precondition violated")
)

type AssertionError struct {
	Message string
	// Factory is the factory the message was rendered from. It is nil for overriding messages.
	Factory errmsg.Factory
}

func (e *AssertionError) Error() string {
	return e.Message
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

func Precondition(msg string) *PreconditionError {
	return &PreconditionError{Message: msg}
}

func Preconditionf(format string, args ...any) *PreconditionError {
	return &PreconditionError{Message: fmt.Sprintf(format, args...)}
}

// Info carries what is known about the assertion being evaluated.
type Info struct {
	Description       description.Description
	Representation    presentation.Representation
	OverridingMessage string
}

func (info Info) RepresentationOrDefault() presentation.Representation {
	if info.Representation == nil {
		return presentation.Default()
	}
	return info.Representation
}

type Failures struct {
	ThreadDumpOnError bool
	// Out receives thread dumps; os.Stderr when nil.
	Out io.Writer
}

func (f *Failures) Failure(info Info, factory errmsg.Factory) *AssertionError {
	var err *AssertionError
	if info.OverridingMessage != "" {
		err = &AssertionError{Message: description.Format(info.Description) + info.OverridingMessage}
	} else {
		err = &AssertionError{
			Message: factory.Create(info.Description, info.RepresentationOrDefault()),
			Factory: factory,
		}
	}
	log.Debugf("assertion failed: %s", err.Message)
	f.dumpIfNeeded()
	return err
}

func (f *Failures) dumpIfNeeded() {
	if f == nil || !f.ThreadDumpOnError {
		return
	}
	out := f.Out
	if out == nil {
		out = os.Stderr
	}
	if _, err := out.Write(ThreadDump()); err != nil {
		log.Warnf("write thread dump: %v", err)
	}
}

// ThreadDump returns the stacks of all goroutines.
func ThreadDump() []byte {
	buf := make([]byte, 64*1024)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			return buf[:n]
		}
		buf = make([]byte, 2*len(buf))
	}
}
