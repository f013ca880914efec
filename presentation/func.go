package presentation

import "reflect"

// Func returns a representation which renders values through override first and falls
// back to fallback (Standard when nil) for values override does not handle.
// Elements of slices, arrays, maps and structs are rendered through override as well.
//
//	r := presentation.Func(func(v any) (string, bool) {
//		if s, ok := v.(string); ok {
//			return "$" + s + "$", true
//		}
//		return "", false
//	}, nil)
func Func(override func(v any) (string, bool), fallback Representation) Representation {
	if fallback == nil {
		fallback = Standard{}
	}
	return funcRepresentation{override: override, fallback: fallback}
}

type funcRepresentation struct {
	override func(v any) (string, bool)
	fallback Representation
}

func (f funcRepresentation) ToStringOf(v any) string {
	return f.toString(v, visited{})
}

func (f funcRepresentation) toString(v any, seen visited) string {
	if s, ok := f.override(v); ok {
		return s
	}
	if isContainer(v) {
		return render(v, seen, f.toString)
	}
	if r, ok := f.fallback.(renderer); ok {
		return r.toString(v, seen)
	}
	return f.fallback.ToStringOf(v)
}

func (f funcRepresentation) UnambiguousToStringOf(v any) string {
	return unambiguous(f, v)
}

func isContainer(v any) bool {
	if isNil(v) {
		return false
	}
	switch v.(type) {
	case error, interface{ String() string }:
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Pointer:
		return true
	default:
		return false
	}
}
