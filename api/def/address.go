package def

/*
	SiteID names a static call expression -- the same source location yields
	the same SiteID every time it's reached, in any revision.

	The engine normally derives these from caller file:line info, so user
	code never constructs them; synthetic sites (explicit strings) are fine
	too, as long as they're stable across revisions.
*/
type SiteID string

/*
	Slot discriminates logically-distinct repeated calls at a single site.

	The zero slot is the default.  Callers performing repeated sub-calls at
	one static site -- the body of a loop, typically -- must supply a
	distinguishing slot (a collection key, or a positional index).  Failing
	to do so collides the calls' addresses, which shows up as incorrect
	cache reuse between iterations.  This is a caller contract; the store
	detects re-marks in debug logs but does not enforce it.
*/
type Slot string

/*
	Address names one logical call occurrence: a static site reached via a
	particular sequence of ancestor sites and slots.

	Addresses are opaque strings: escaped `site@slot` segments joined by
	`/`, rooted at `~`.  They are hashable (usable as map keys), totally
	ordered (lexicographically -- an address always sorts before its
	descendants), and deterministic: identical control flow produces
	identical addresses.  They are recomputed fresh every revision and mean
	nothing across process runs.
*/
type Address string
