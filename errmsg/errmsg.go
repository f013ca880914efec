// Package errmsg renders failure messages. A Factory holds the values of one failed
// assertion and renders them through a representation on demand.
package errmsg

import (
	"fmt"
	"reflect"

	"github.com/mazzegi/fluent/compare"
	"github.com/mazzegi/fluent/description"
	"github.com/mazzegi/fluent/presentation"
)

type Factory interface {
	Create(d description.Description, r presentation.Representation) string
}

// Equal reports whether a and b render the same message for every description and representation.
func Equal(a, b Factory) bool {
	return reflect.DeepEqual(a, b)
}

type raw string

// Raw marks an argument to be inserted verbatim instead of through the representation.
func Raw(s string) any {
	return raw(s)
}

// Basic renders format with its arguments, each argument through the representation.
type Basic struct {
	format   string
	args     []any
	strategy string
}

func New(format string, args ...any) *Basic {
	return &Basic{format: format, args: args}
}

// NewWithStrategy is New plus the strategy line of a non-standard comparison strategy.
func NewWithStrategy(strategy compare.Describer, format string, args ...any) *Basic {
	return &Basic{format: format, args: args, strategy: strategyLine(strategy)}
}

func (b *Basic) Create(d description.Description, r presentation.Representation) string {
	if r == nil {
		r = presentation.Default()
	}
	rendered := make([]any, len(b.args))
	for i, arg := range b.args {
		rendered[i] = render(arg, r)
	}
	return description.Format(d) + fmt.Sprintf(b.format, rendered...) + b.strategy
}

func (b *Basic) String() string {
	return b.Create(nil, presentation.Standard{})
}

func render(arg any, r presentation.Representation) string {
	if s, ok := arg.(raw); ok {
		return string(s)
	}
	return r.ToStringOf(arg)
}

func strategyLine(strategy compare.Describer) string {
	if strategy == nil || strategy.IsStandard() {
		return ""
	}
	return "\n" + strategy.String()
}

// Message is a factory with a fixed text.
type Message string

func (m Message) Create(d description.Description, r presentation.Representation) string {
	return description.Format(d) + string(m)
}
