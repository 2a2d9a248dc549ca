/*
	A linear scheduler: one goroutine, one revision at a time, a new
	revision whenever state wakes say one is due.

	Wakes coalesce by construction -- the wake channel holds one token,
	and any number of writes between revisions collapse into it.  There
	is no revision queue to drain: only the latest state matters, so a
	"missed" nudge while a token is already pending costs nothing.
*/
package linear

import (
	"sync"

	"github.com/inconshreveable/log15"

	"go.polydawn.net/revisr/api/def"
	"go.polydawn.net/revisr/engine"
	"go.polydawn.net/revisr/scheduler"
)

// interface assertion
var _ scheduler.Scheduler = &Scheduler{}

type Scheduler struct {
	log  log15.Logger
	rt   *engine.Runtime
	root engine.RootFn

	wakes    chan def.Revision
	results  []chan<- engine.Result
	quit     chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

func New(log log15.Logger) *Scheduler {
	if log == nil {
		log = log15.New()
		log.SetHandler(log15.DiscardHandler())
	}
	return &Scheduler{
		log:  log,
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (s *Scheduler) Configure(rt *engine.Runtime, root engine.RootFn) {
	s.rt = rt
	s.root = root
	// buffered by one: that token *is* the coalescing.
	s.wakes = make(chan def.Revision, 1)
	rt.ObserveWakes(s.wakes)
}

/*
	ObserveResults subscribes a channel to per-revision results.  Sends
	don't block; subscribe buffered if you care about every one.  Call
	before Start.
*/
func (s *Scheduler) ObserveResults(ch chan<- engine.Result) {
	s.results = append(s.results, ch)
}

// Start begins the run loop: one revision immediately, then one per wake.
func (s *Scheduler) Start() {
	if s.rt == nil || s.root == nil {
		panic(scheduler.NotConfiguredError.New("linear scheduler started before Configure"))
	}
	s.started = true
	go s.run()
}

/*
	Stop ceases scheduling and waits for any in-flight revision.  Legal in
	every lifecycle state: stopping a scheduler that was never started is
	a no-op, and stopping twice is fine.  Configure/Start/Stop are owner
	calls -- issue them from one goroutine.
*/
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		if !s.started {
			// the run loop never launched, so nobody else will close this.
			close(s.done)
		}
	})
	<-s.done
}

func (s *Scheduler) run() {
	defer close(s.done)
	for {
		res, err := s.rt.RunOnce(s.root)
		if err != nil {
			// a failed revision isn't fatal to the loop; the arena is
			// consistent and the next wake gets a clean try.
			s.log.Error("revision failed", "revision", res.Revision, "err", err)
		}
		for _, ch := range s.results {
			select {
			case ch <- res:
			default:
			}
		}
		// writes made *during* the run already parked a token in s.wakes
		// (we subscribed before anyone could write), so a plain wait here
		// covers the immediate-rerun case too.
		select {
		case <-s.wakes:
		case <-s.quit:
			return
		}
	}
}
