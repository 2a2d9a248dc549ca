package engine

import (
	"fmt"

	"go.polydawn.net/meep"

	"go.polydawn.net/revisr/api/def"
)

/*
	Memo returns the value stored for this call site, running `init` only
	when the site is visited for the first time or when `fp` differs from
	the fingerprint that produced the stored value.  The entry stays alive
	for as long as the site keeps being reached each revision; once it
	isn't, the sweep drops it.

	Use MemoWith when the value's death needs to undo something.

	Repeated Memo calls at one source location inside a loop collide; wrap
	the loop body in fr.CallSlot to discriminate iterations.
*/
func Memo[V any](fr *Frame, fp def.Fingerprint, init func() V) V {
	return memoAt(fr, callerSite(1), fp, init, nil)
}

/*
	MemoWith is Memo plus a disposer: `dispose` runs exactly once when the
	stored value is replaced (fingerprint change) or collected (site no
	longer reached).  Values whose existence represents an active effect --
	an open subscription, an attribute set somewhere -- belong here, with
	the undo in `dispose`.
*/
func MemoWith[V any](fr *Frame, fp def.Fingerprint, init func() V, dispose func(V)) V {
	return memoAt(fr, callerSite(1), fp, init, dispose)
}

// Once runs `init` on the first visit and reuses the value every revision
// after, for as long as the site stays reachable.  (It's Memo with the
// no-inputs fingerprint.)
func Once[V any](fr *Frame, init func() V) V {
	return memoAt(fr, callerSite(1), def.Unit, init, nil)
}

// OnceWith is Once plus a disposer.
func OnceWith[V any](fr *Frame, init func() V, dispose func(V)) V {
	return memoAt(fr, callerSite(1), def.Unit, init, dispose)
}

func memoAt[V any](fr *Frame, site def.SiteID, fp def.Fingerprint, init func() V, dispose func(V)) V {
	at := fr.cursor.Enter(site, "")
	defer fr.cursor.Exit()

	var disposeRaw func(interface{})
	if dispose != nil {
		disposeRaw = func(v interface{}) { dispose(v.(V)) }
	}
	value, err := fr.rt.arena.Memo(at, fp, func(def.Fingerprint) (interface{}, error) {
		return protectInit(at, init)
	}, disposeRaw)
	if err != nil {
		// unwind the revision; environment frames release on the way up
		// and RunOnce surfaces this to whoever asked for the pass.
		panic(err)
	}
	return value.(V)
}

// protectInit fences a user initializer: whatever it panics with comes back
// as an ErrInitFailure carrying the failing address, so the store can
// guarantee no partial entry and the fault still names its call site.
func protectInit[V any](at def.Address, init func() V) (value interface{}, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("%v", r)
		}
		err = meep.Meep(&def.ErrInitFailure{Addr: at}, meep.Cause(cause))
	}()
	return init(), nil
}
