package engine

import (
	"sync"
	"sync/atomic"

	"github.com/inconshreveable/log15"
	"github.com/spacemonkeygo/errors/try"
	"go.polydawn.net/meep"

	"go.polydawn.net/revisr/addr"
	"go.polydawn.net/revisr/api/def"
	"go.polydawn.net/revisr/env"
	"go.polydawn.net/revisr/lib/guid"
	"go.polydawn.net/revisr/state"
	"go.polydawn.net/revisr/store"
)

// RootFn is a description function: it re-executes once per revision,
// declaring memoized work and state reads against the frame it's handed.
type RootFn func(*Frame)

/*
	Runtime owns one incremental computation: the memoization arena, the
	revision counter, the pending-write hand-off for state cells, and the
	wake notifications that external schedulers listen to.

	Revisions are strictly one-at-a-time.  The only parts of a Runtime that
	tolerate concurrent callers are cell writes (via Key.Set), `Revision`,
	and `ObserveWakes`; everything else belongs to whichever single
	goroutine is driving `RunOnce`.
*/
type Runtime struct {
	log   log15.Logger
	arena *store.Arena

	revision uint64 // atomic; read via Revision()
	running  int32  // atomic flag; guards against reentrant RunOnce

	// the wake hand-off.  this mutex is held for appends and flag flips
	// only, never across a revision.
	wakeMu    sync.Mutex
	woken     bool
	dirty     []*state.Cell
	observers []chan<- def.Revision
}

type Options struct {
	// Log receives revision accounting and store diagnostics.
	// Nil discards.
	Log log15.Logger
}

func New(opts Options) *Runtime {
	log := opts.Log
	if log == nil {
		log = log15.New()
		log.SetHandler(log15.DiscardHandler())
	}
	log = log.New("runtime", guid.New())
	return &Runtime{
		log:   log,
		arena: store.New(log),
	}
}

// Revision returns the current revision number: zero before the first run,
// and during a run, the number of the revision executing.  Callable from
// anywhere, including inside a revision (for deliberate cache-busting).
func (rt *Runtime) Revision() def.Revision {
	return def.Revision(atomic.LoadUint64(&rt.revision))
}

/*
	ObserveWakes subscribes a channel to invalidation notifications: the
	first effective state write since the last revision commit sends the
	then-current revision number.  Subsequent writes coalesce into that one
	nudge until the next RunOnce drains them.

	Sends never block -- subscribe with a buffered channel or lose nudges.
	(Losing one is survivable for a scheduler that re-checks WakePending,
	which is what the linear scheduler does.)
*/
func (rt *Runtime) ObserveWakes(ch chan<- def.Revision) {
	rt.wakeMu.Lock()
	rt.observers = append(rt.observers, ch)
	rt.wakeMu.Unlock()
}

// Result reports what one revision did.
type Result struct {
	Revision    def.Revision
	Collected   int  // entries disposed by the sweep
	WakePending bool // state was written during the run; another pass is warranted
}

/*
	RunOnce executes exactly one revision, synchronously:

		1. commit pending state-cell writes accumulated since the last pass
		2. increment the revision counter and open a fresh marking epoch
		3. run the root function in a fresh top-level frame
		4. sweep unmarked entries (this happens even when the root fails;
		   teardown takes priority over completing the pass)
		5. report the revision number and whether writes during execution
		   warrant scheduling another pass

	A failing root function surfaces here as the returned error; the arena
	is left consistent and the next successful revision proceeds normally.

	Calling RunOnce while a revision is in flight is refused with
	def.ErrEngineBusy; queueing policy belongs to schedulers.
*/
func (rt *Runtime) RunOnce(root RootFn) (result Result, err error) {
	if !atomic.CompareAndSwapInt32(&rt.running, 0, 1) {
		return Result{}, meep.Meep(&def.ErrEngineBusy{})
	}
	defer atomic.StoreInt32(&rt.running, 0)

	rt.commitPending()
	rev := def.Revision(atomic.AddUint64(&rt.revision, 1))
	rt.arena.BeginEpoch(rev)
	rt.log.Debug("revision beginning", "revision", rev)

	defer func() {
		result.Revision = rev
		result.Collected = rt.arena.Sweep()
		result.WakePending = rt.wakePending()
		rt.log.Debug("revision complete",
			"revision", rev,
			"collected", result.Collected,
			"entries", rt.arena.Len(),
			"failed", err != nil)
	}()

	try.Do(func() {
		defer normalizePanics()
		fr := &Frame{
			rt:     rt,
			cursor: addr.NewCursor(),
			env:    env.NewStack(),
		}
		fr.env.Push()
		defer fr.env.Pop()
		root(fr)
	}).CatchAll(func(e error) {
		err = e
	}).Done()
	return
}

// anything a revision panics with should already be an error (the memo and
// env surfaces raise meep'd errors); anything else gets wrapped here so the
// try plumbing above can hand it back uniformly.
func normalizePanics() {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		panic(e)
	}
	panic(Error.New("non-error panic during revision: %v", r))
}

// wake is the sink handed to every cell this runtime creates.
func (rt *Runtime) wake(c *state.Cell) {
	rt.wakeMu.Lock()
	rt.dirty = append(rt.dirty, c)
	first := !rt.woken
	rt.woken = true
	var obs []chan<- def.Revision
	if first {
		obs = append(obs, rt.observers...)
	}
	rt.wakeMu.Unlock()
	rev := rt.Revision()
	for _, ch := range obs {
		select {
		case ch <- rev:
		default:
		}
	}
}

func (rt *Runtime) commitPending() {
	rt.wakeMu.Lock()
	dirty := rt.dirty
	rt.dirty = nil
	rt.woken = false
	rt.wakeMu.Unlock()
	for _, c := range dirty {
		c.Commit()
	}
}

func (rt *Runtime) wakePending() bool {
	rt.wakeMu.Lock()
	defer rt.wakeMu.Unlock()
	return rt.woken
}

// SnapshotArena lists the live memoization entries, sorted by address.
// Inspection only; call it between revisions.
func (rt *Runtime) SnapshotArena() []store.EntryInfo {
	return rt.arena.Snapshot()
}
