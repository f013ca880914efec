// Package errorx collects errors.
package errorx

import (
	"fmt"
	"strings"
	"sync"
)

// Group collects errors. It is safe for concurrent use.
type Group struct {
	mu   sync.Mutex
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

// Append adds the non-nil errs.
func (g *Group) Append(errs ...error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

func (g *Group) Errors() []error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]error(nil), g.errs...)
}

func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.errs)
}

func (g *Group) IsEmpty() bool {
	return g.Len() == 0
}

// Err returns nil for an empty group, the single error for a group of one, and a
// *MultiError otherwise.
func (g *Group) Err() error {
	errs := g.Errors()
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return &MultiError{Errs: errs}
	}
}

type MultiError struct {
	Errs []error
}

func (e *MultiError) Error() string {
	var sb strings.Builder
	noun := "failures"
	if len(e.Errs) == 1 {
		noun = "failure"
	}
	fmt.Fprintf(&sb, "\nMultiple Failures (%d %s)", len(e.Errs), noun)
	for i, err := range e.Errs {
		fmt.Fprintf(&sb, "\n-- failure %d --%s", i+1, indentFirst(err.Error()))
	}
	return sb.String()
}

func (e *MultiError) Unwrap() []error {
	return e.Errs
}

func indentFirst(s string) string {
	if strings.HasPrefix(s, "\n") {
		return s
	}
	return "\n" + s
}
