package def

/*
	Revision counts completed passes of a root function: one run plus the
	garbage-collection sweep that follows it.

	Revisions are strictly increasing and never reused within a runtime
	instance.  Memoized code may read the current revision for deliberate
	cache-busting (fingerprinting the revision forces recompute every pass).

	Revision zero means "before the first run"; no revision ever executes
	under it.
*/
type Revision uint64
