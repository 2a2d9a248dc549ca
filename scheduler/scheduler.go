package scheduler

import (
	"go.polydawn.net/revisr/engine"
)

/*
	Schedulers decide *when* the engine's run-once primitive fires: on
	wake notifications, on a timer, on manual demand, once per animation
	frame in some embedder -- the engine doesn't care, and this interface
	is deliberately thin so it doesn't have to.

	The engine side of the contract is small: `RunOnce` runs exactly one
	revision synchronously and refuses overlap, and `ObserveWakes` nudges
	when state writes make another pass worthwhile.  Everything beyond
	that -- coalescing, pacing, backoff, deciding a wake isn't worth
	acting on -- is the scheduler's policy, and schedulers may surpass
	this interface freely.

	Conventionally, implementations also have a `run` loop, running in a
	dedicated goroutine once Start() is called.
*/
type Scheduler interface {

	/*
		Bind a runtime and the root function to schedule.  Must be called
		before Start.  Calling Configure after Start is left for the
		Scheduler to decide - it might rebind, panic, ignore, etc.
	*/
	Configure(rt *engine.Runtime, root engine.RootFn)

	// Begin scheduling revisions.
	Start()

	// Cease scheduling.  Blocks until any in-flight revision finishes.
	// Idempotent.
	Stop()
}
