package engine

import (
	"go.polydawn.net/revisr/api/def"
	"go.polydawn.net/revisr/state"
)

/*
	Key is a typed handle on a state cell.  Get reads the value committed
	as of the start of the current revision; Set buffers a write that
	becomes visible starting with the next revision and nudges the
	runtime's wake observers.

	Keys stay valid outside revisions -- hand them to callbacks, timers,
	other goroutines; that's how asynchronous results feed back into the
	computation.  A Key whose call site has been swept still accepts
	writes, silently (see state.Cell).

	The zero Key is not a cell; only State mints usable ones.
*/
type Key[V any] struct {
	cell *state.Cell
}

func (k Key[V]) Get() V {
	return k.cell.Peek().(V)
}

func (k Key[V]) Set(v V) {
	k.cell.Set(v)
}

/*
	State declares a state cell at this call site, committed to `initial`
	on first visit.  The cell itself is a memoized entry: it survives
	across revisions for as long as the site is reached, and when the site
	stops being reached the sweep orphans it.

	Like all per-site declarations, repeated State calls at one source
	location inside a loop need fr.CallSlot discrimination.
*/
func State[V any](fr *Frame, initial V) Key[V] {
	rt := fr.rt
	cell := memoAt(fr, callerSite(1), def.Unit, func() *state.Cell {
		var c *state.Cell
		c = state.New(initial, func() { rt.wake(c) })
		return c
	}, func(c *state.Cell) { c.Orphan() })
	return Key[V]{cell}
}
