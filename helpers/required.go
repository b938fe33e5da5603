// Package helpers holds small fail-fast utilities used while wiring the service at startup.
package helpers

import "reflect"

// StrPanic returns s, or panics with msg when s is empty.
// Constructors use it for settings that have no sensible zero value (realm, database path).
func StrPanic(s string, msg string) string {
	if s == "" {
		panic(msg)
	}
	return s
}

// NilPanic returns v, or panics with msg when v is nil. Typed nils (nil pointer, map,
// slice, chan, func or interface held in v) count as nil.
//
// Used by the service and handler constructors to reject missing collaborators
// (stores, hashers, loggers) at startup instead of on the first request.
func NilPanic[T any](v T, msg string) T {
	if isNil(v) {
		panic(msg)
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
