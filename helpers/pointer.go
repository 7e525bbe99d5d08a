package helpers

import "reflect"

// StrPanic panics with panicMessage if p is empty (no TrimSpace — only p == "" is
// checked); otherwise returns p. Used for fail-fast validation of required config
// strings (base URLs, file paths).
//
// Called from constructors (e.g. adapters.RouterFleet, service.NewRouter).
func StrPanic(p string, panicMessage string) string {
	if p == "" {
		panic(panicMessage)
	}
	return p
}

// NilPanic panics with panicMessage if v is nil (nil interface, pointer, slice, map,
// chan, func; uses reflect for typed nils); otherwise returns v unchanged.
//
// Called from constructors when validating required dependencies
// (service.NewRouter, service.NewOrderPlacer, handlers.NewOrderHTTP and others).
func NilPanic[T any](v T, panicMessage string) T {
	if isNil(v) {
		panic(panicMessage)
	}
	return v
}

// isNil returns true if v is nil or a nil pointer/slice/map/chan/func/interface.
// Called only from NilPanic.
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

// Ptr returns a pointer to v; convenient for the optional-field update structs in tests
// and the workload translator.
func Ptr[T any](v T) *T { return &v }
