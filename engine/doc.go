/*
	The `engine` package orchestrates revisions: one full execution of a
	root "description" function, plus the garbage-collection sweep that
	reconciles the memoization arena afterwards.

	The shape of the thing:

		rt := engine.New(engine.Options{Log: log})
		count := engine.Key[int]{}
		result, err := rt.RunOnce(func(fr *engine.Frame) {
			count = engine.State(fr, 0)
			greeting := engine.Memo(fr, def.Print(count.Get()), func() string {
				return expensiveRender(count.Get())
			})
			...
		})

	Each revision, the root function redeclares everything it wants to
	exist.  Declarations are keyed by call site (source location) and
	nesting path, so "the same line reached the same way" finds its cached
	value from last revision; sites not reached this revision get their
	values disposed by the sweep.  State cells buffer writes until the next
	revision, so one pass never observes a torn value, and writes nudge
	`ObserveWakes` subscribers -- that's the hook a scheduler uses to
	decide when to call RunOnce again (see the scheduler package).

	Everything here is single-threaded and cooperative: one revision at a
	time, no blocking inside a revision.  Asynchronous work completes
	outside and feeds results back through a Key.Set.
*/
package engine
