// Package description holds the text describing an assertion. A non empty description
// prefixes every failure message as "[text] ".
package description

import "fmt"

type Description interface {
	Value() string
}

type text struct {
	value string
}

func (t text) Value() string {
	return t.value
}

func (t text) String() string {
	return t.value
}

// Text returns a description formatted with fmt.Sprintf semantics. Without args the format is taken verbatim.
func Text(format string, args ...any) Description {
	if len(args) == 0 {
		return text{value: format}
	}
	return text{value: fmt.Sprintf(format, args...)}
}

func Empty() Description {
	return text{}
}

// Format returns the message prefix for d.
func Format(d Description) string {
	if d == nil || d.Value() == "" {
		return ""
	}
	return "[" + d.Value() + "] "
}
