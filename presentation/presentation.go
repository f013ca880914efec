// Package presentation turns arbitrary values into the text shown in failure messages.
package presentation

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mazzegi/fluent/date"
)

const Null = "null"

// Cycle is rendered in place of a value that refers back to one of its enclosing values.
const Cycle = "(cycle)"

type Representation interface {
	ToStringOf(v any) string
	// UnambiguousToStringOf is used when two different values render to the same text.
	UnambiguousToStringOf(v any) string
}

// Standard is the default representation.
type Standard struct{}

func (s Standard) ToStringOf(v any) string {
	return s.toString(v, visited{})
}

func (s Standard) toString(v any, seen visited) string {
	return render(v, seen, s.toString)
}

func (s Standard) UnambiguousToStringOf(v any) string {
	return unambiguous(s, v)
}

func unambiguous(r Representation, v any) string {
	if v == nil {
		return Null
	}
	return fmt.Sprintf("%s (%T)", r.ToStringOf(v), v)
}

// renderer is implemented by the representations of this package, so that nested values
// are rendered with the addresses visited so far.
type renderer interface {
	toString(v any, seen visited) string
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// visited holds the pointers, maps and slices on the path from the rendered value down to
// the current element.
type visited map[visit]bool

// enter marks rv as visited. It returns false if rv is already on the path.
func (seen visited) enter(rv reflect.Value) (visit, bool) {
	k := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if seen[k] {
		return k, false
	}
	seen[k] = true
	return k, true
}

// render renders v and uses elem for elements of containers, so that representations
// wrapping Standard keep control over nested values.
func render(v any, seen visited, elem func(any, visited) string) string {
	if isNil(v) {
		return Null
	}
	switch v := v.(type) {
	case time.Time:
		return date.Format(v)
	case *time.Time:
		return date.Format(*v)
	case string:
		return strconv.Quote(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice {
			k, ok := seen.enter(rv)
			if !ok {
				return Cycle
			}
			defer delete(seen, k)
		}
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = elem(valueOf(rv.Index(i)), seen)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		k, ok := seen.enter(rv)
		if !ok {
			return Cycle
		}
		defer delete(seen, k)
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(parts, elem(valueOf(iter.Key()), seen)+": "+elem(valueOf(iter.Value()), seen))
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Pointer:
		k, ok := seen.enter(rv)
		if !ok {
			return Cycle
		}
		defer delete(seen, k)
		ev := rv.Elem()
		if ev.Kind() == reflect.Struct {
			return "&" + elem(valueOf(ev), seen)
		}
		return elem(valueOf(ev), seen)
	case reflect.Struct:
		ty := rv.Type()
		parts := make([]string, ty.NumField())
		for i := 0; i < ty.NumField(); i++ {
			parts[i] = ty.Field(i).Name + ": " + elem(valueOf(rv.Field(i)), seen)
		}
		return ty.String() + "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

// valueOf returns the interface value of rv. Values of unexported fields cannot be
// interfaced, they are rendered with fmt right away unless fmt would loop on them.
func valueOf(rv reflect.Value) any {
	if rv.CanInterface() {
		return rv.Interface()
	}
	if hasCycle(rv, visited{}) {
		return unexported(Cycle)
	}
	return unexported(fmt.Sprintf("%v", rv))
}

// HasCycle reports whether v refers back to itself through pointers, maps or slices.
func HasCycle(v any) bool {
	return hasCycle(reflect.ValueOf(v), visited{})
}

func hasCycle(rv reflect.Value, seen visited) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return false
		}
		k, ok := seen.enter(rv)
		if !ok {
			return true
		}
		defer delete(seen, k)
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return hasCycle(rv.Elem(), seen)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if hasCycle(rv.Index(i), seen) {
				return true
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if hasCycle(iter.Key(), seen) || hasCycle(iter.Value(), seen) {
				return true
			}
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if hasCycle(rv.Field(i), seen) {
				return true
			}
		}
	}
	return false
}

type unexported string

func (u unexported) String() string {
	return string(u)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNil reports whether v is nil or a typed nil.
func IsNil(v any) bool {
	return isNil(v)
}

var defaultMx sync.RWMutex
var defaultRepresentation Representation = Standard{}

func Default() Representation {
	defaultMx.RLock()
	defer defaultMx.RUnlock()
	return defaultRepresentation
}

// SetDefault replaces the process wide default representation. nil restores Standard.
func SetDefault(r Representation) {
	if r == nil {
		r = Standard{}
	}
	defaultMx.Lock()
	defer defaultMx.Unlock()
	defaultRepresentation = r
}
