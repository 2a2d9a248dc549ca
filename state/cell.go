/*
	The `state` package holds the mutable half of the runtime: cells whose
	committed value is read during a revision and whose writes are buffered
	until the next one.

	A cell is a (committed value, pending write) pair behind one small
	mutex.  Reads during execution observe the value committed at the
	start of the current revision; writes -- from inside the revision, from
	callbacks, from other goroutines, whenever -- land in the pending slot
	and nudge the wake sink.  The engine commits pending writes in the gap
	between revisions, so one execution pass never observes a torn value.

	Writes coalesce: only the latest pending value matters (last write
	wins, in invocation order; racing writers are ordered by who takes the
	mutex first).  There is no merge and no queue.

	The mutex is held only for the hand-off itself, never across a
	revision, so writers are never blocked behind an execution pass.
*/
package state

import (
	"reflect"
	"sync"
)

type Cell struct {
	mu        sync.Mutex
	committed interface{}
	pending   interface{}
	dirty     bool
	wake      func()
}

/*
	New makes a cell whose committed value starts at `initial`.  `wake` is
	called (outside the cell's lock) on the first effective write since the
	last commit; nil is fine for cells nobody schedules off of.
*/
func New(initial interface{}, wake func()) *Cell {
	return &Cell{committed: initial, wake: wake}
}

// Peek returns the committed value: what reads in the current revision see.
func (c *Cell) Peek() interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.committed
}

/*
	Set buffers `v` as the pending write.  Writing a value equal to the
	committed value while nothing is pending is elided entirely -- no
	dirtying, no wake.  Equality is structural (reflect.DeepEqual), so keep
	cell values value-like.

	A write with no wake sink (or an orphaned cell) is legal and simply
	updates state silently until somebody next runs.
*/
func (c *Cell) Set(v interface{}) {
	c.mu.Lock()
	if !c.dirty && reflect.DeepEqual(v, c.committed) {
		c.mu.Unlock()
		return
	}
	first := !c.dirty
	c.pending = v
	c.dirty = true
	wake := c.wake
	c.mu.Unlock()
	// only the first write in a window wakes; the rest coalesce into it.
	if first && wake != nil {
		wake()
	}
}

/*
	Commit publishes the pending write as the new committed value.  The
	engine calls this between revisions.  Reports whether the committed
	value actually changed (a pending write can equal the committed value
	if later writes circled back).
*/
func (c *Cell) Commit() (changed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return false
	}
	changed = !reflect.DeepEqual(c.pending, c.committed)
	c.committed = c.pending
	c.pending = nil
	c.dirty = false
	return
}

/*
	Orphan severs the wake sink.  The arena disposer for a cell's entry
	calls this when the cell's call site is no longer reached, so stray
	writers holding old handles can't schedule revisions forever; their
	writes still land, silently.
*/
func (c *Cell) Orphan() {
	c.mu.Lock()
	c.wake = nil
	c.mu.Unlock()
}
