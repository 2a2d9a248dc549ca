package def

import (
	"go.polydawn.net/meep"
)

/*
	Raised by `engine.Expect` (and panicked by `engine.MustExpect`) when no
	ancestor call provided a value of the wanted type.

	This aborts the remaining logic of the nested call that asked; it only
	takes down the whole revision if nothing catches it on the way up.
*/
type ErrEnvMissing struct {
	meep.TraitAutodescribing
	meep.TraitTraceable
	Wanted string // name of the type asked for
}

/*
	Raised when a memo initializer fails.

	The failure unwinds through the call nesting like any other fault,
	releasing environment frames along the way.  The store guarantees the
	failing address is left with no entry at all -- never a partial one --
	so subsequent revisions may retry the site cleanly.
*/
type ErrInitFailure struct {
	meep.TraitAutodescribing
	meep.TraitCausable
	meep.TraitTraceable
	Addr Address
}

/*
	Raised when `RunOnce` is asked to start a revision while another is
	already in flight.  Revisions are strictly one-at-a-time; queueing and
	coalescing policy belongs to schedulers, above the engine.
*/
type ErrEngineBusy struct {
	meep.TraitAutodescribing
	meep.TraitTraceable
}
