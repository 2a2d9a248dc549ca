/*
	The `store` package is the memoization arena: a map from call address
	to a stored value plus the fingerprint that produced it, with
	mark-and-sweep collection per revision.

	Caching is based on Address.  Repeated visits to the same address with
	an equal fingerprint are satisfied instantly from the stored value, and
	this system has no knowledge of what the values *are*, so it can be
	used with any initializer.  Liveness is the whole lifecycle story:
	every visit during a revision marks its address, and at the end of the
	revision everything unmarked is removed and its disposer runs.  Storing
	a value whose existence represents an effect being "active" thus gives
	you deterministic teardown exactly when the controlling call site stops
	being reached.

	The arena exclusively owns stored values for the lifetime of the
	runtime instance.  `Peek` and `Snapshot` are escape hatches around
	that ownership; values they expose forfeit the memoization guarantees.

	Arenas follow the same single-walker discipline as the rest of the
	runtime: one goroutine at a time, coordinated by the engine.
*/
package store

import (
	"github.com/inconshreveable/log15"

	"go.polydawn.net/revisr/api/def"
)

type entry struct {
	fingerprint def.Fingerprint
	value       interface{}
	dispose     func(interface{})
	// revision this entry was last marked live in.  comparing against the
	// arena's current epoch stands in for a boolean mark flag, so opening
	// a new marking pass costs nothing per entry.
	lastMarked def.Revision
}

type Arena struct {
	entries map[def.Address]*entry
	epoch   def.Revision
	log     log15.Logger
}

func New(log log15.Logger) *Arena {
	if log == nil {
		log = log15.New()
		log.SetHandler(log15.DiscardHandler())
	}
	return &Arena{
		entries: make(map[def.Address]*entry),
		log:     log,
	}
}

/*
	BeginEpoch opens a new marking pass.  Entries marked under previous
	epochs are candidates for collection until re-marked; the engine calls
	this once per revision, with the fresh revision number.
*/
func (a *Arena) BeginEpoch(rev def.Revision) {
	a.epoch = rev
}

/*
	Memo is get-or-insert-or-replace:

		- no entry at `at`: run `init`, store the result, mark it live,
		  return it.
		- entry with equal fingerprint: mark it live and return the stored
		  value untouched; `init` does not run.
		- entry with a different fingerprint: dispose the old value, run
		  `init` on the new fingerprint, replace, mark, return.

	If `init` fails (error or panic), no entry remains at `at` -- never a
	partial one -- and the failure propagates to the caller.

	An address visited twice in one epoch is a collision: some caller
	omitted a slot discriminator.  The second visit gets the first visit's
	value as-is (even if it brought a different fingerprint) and a warning
	is logged; silently "fixing" the collision by re-initializing would
	just hide the misattribution.

	`dispose` may be nil for values with no teardown.
*/
func (a *Arena) Memo(
	at def.Address,
	fp def.Fingerprint,
	init func(def.Fingerprint) (interface{}, error),
	dispose func(interface{}),
) (interface{}, error) {
	if ent, ok := a.entries[at]; ok {
		if ent.lastMarked == a.epoch {
			a.log.Warn("memo address visited twice in one revision; missing slot discriminator?",
				"addr", at)
			return ent.value, nil
		}
		if ent.fingerprint == fp {
			ent.lastMarked = a.epoch
			return ent.value, nil
		}
		// fingerprint changed: the old value's effect is over.  dispose it
		// and remove the entry *before* initializing, so a failing init
		// can't leave a half-replaced entry behind.
		a.disposeEntry(at, ent)
	}
	value, err := init(fp)
	if err != nil {
		return nil, err
	}
	a.entries[at] = &entry{
		fingerprint: fp,
		value:       value,
		dispose:     dispose,
		lastMarked:  a.epoch,
	}
	return value, nil
}

/*
	Sweep removes every entry not marked in the current epoch and runs its
	disposer, exactly once each, in unspecified order.  Returns how many
	entries were collected.  The engine runs this at the end of every
	revision -- failed ones included; teardown takes priority over
	finishing the pass.
*/
func (a *Arena) Sweep() (collected int) {
	for at, ent := range a.entries {
		if ent.lastMarked == a.epoch {
			continue
		}
		a.log.Debug("sweeping unreached entry", "addr", at, "lastMarked", ent.lastMarked)
		a.disposeEntry(at, ent)
		collected++
	}
	return
}

// disposeEntry removes the entry from the map before running its disposer,
// so a panicking disposer can't be run a second time.
func (a *Arena) disposeEntry(at def.Address, ent *entry) {
	delete(a.entries, at)
	if ent.dispose != nil {
		ent.dispose(ent.value)
	}
}

// Len returns the number of live entries.
func (a *Arena) Len() int {
	return len(a.entries)
}

/*
	Peek returns the stored value at an address, if any.  This is an
	escape hatch: it does not mark the entry, and the value's lifecycle
	remains owned by the arena, so don't retain what you're handed.
*/
func (a *Arena) Peek(at def.Address) (interface{}, bool) {
	ent, ok := a.entries[at]
	if !ok {
		return nil, false
	}
	return ent.value, true
}
