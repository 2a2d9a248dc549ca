package engine

import (
	"reflect"

	"go.polydawn.net/meep"

	"go.polydawn.net/revisr/api/def"
)

/*
	Provide makes `val` visible to every call nested within `within`,
	keyed by its dynamic type.  The provision lasts exactly the extent of
	`within`; a nested Provide of the same type shadows this one for its
	own extent only.

	Lookup is by exact type: provide the concrete type descendants will
	ask for (interface-typed lookups don't match concrete provisions).
*/
func Provide(fr *Frame, val interface{}, within func(*Frame)) {
	fr.env.Push(val)
	defer fr.env.Pop()
	within(fr)
}

// Expect fetches the nearest-ancestor-provided value of type T, or a
// def.ErrEnvMissing if no ancestor provided one.
func Expect[T any](fr *Frame) (T, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	v, ok := fr.env.Get(t)
	if !ok {
		var zero T
		return zero, meep.Meep(&def.ErrEnvMissing{Wanted: t.String()})
	}
	return v.(T), nil
}

// MustExpect is Expect, panicking on absence: the fault aborts the
// remaining logic of the asking call, and takes the whole revision down
// only if nothing above catches it.
func MustExpect[T any](fr *Frame) T {
	v, err := Expect[T](fr)
	if err != nil {
		panic(err)
	}
	return v
}
