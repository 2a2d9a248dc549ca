/*
	The `addr` package assigns deterministic identities to call occurrences.

	A Cursor tracks the current position in the dynamic call nesting as a
	stack of (site, slot) segments; entering a nesting level yields the
	composite Address for everything keyed underneath it.  Identical
	control flow produces identical address sequences, which is the whole
	point: the memoization store uses these addresses as cache keys, so
	"the same logical call" must mean "the same address" on every revision.

	Cursors are recreated fresh for each revision and are not safe for
	concurrent use; exactly one goroutine walks a cursor at a time.
*/
package addr

import (
	"net/url"

	"go.polydawn.net/revisr/api/def"
)

// Root is the address of the top-level call scope, before any Enter.
const Root = def.Address("~")

type segment struct {
	site def.SiteID
	slot def.Slot
}

/*
	Cursor allocates call addresses as execution descends and returns
	through nested call scopes.  Enter and Exit must pair exactly; the
	engine does this with defers so unwinds can't skew the stack.
*/
type Cursor struct {
	segs []segment
	// rendered composite address per depth; index 0 is Root.
	// kept in lockstep with segs so Here() costs nothing.
	path []def.Address
}

func NewCursor() *Cursor {
	return &Cursor{
		segs: make([]segment, 0, 16),
		path: append(make([]def.Address, 0, 17), Root),
	}
}

/*
	Enter pushes a nesting level for a call at `site` discriminated by
	`slot`, and returns the composite address of that call occurrence.

	Reentrancy is fine: recursive calls at the same site produce distinct
	addresses because each level extends the path.  Repeated *sibling*
	calls at one site are on the caller to discriminate via slot.
*/
func (c *Cursor) Enter(site def.SiteID, slot def.Slot) def.Address {
	c.segs = append(c.segs, segment{site, slot})
	// sites and slots are arbitrary strings; escape them so the segment
	// separators stay unambiguous in the composite.
	composite := c.path[len(c.path)-1] +
		def.Address("/"+url.QueryEscape(string(site))+"@"+url.QueryEscape(string(slot)))
	c.path = append(c.path, composite)
	return composite
}

// Exit pops the innermost nesting level.  Panics if the cursor is at root.
func (c *Cursor) Exit() {
	if len(c.segs) == 0 {
		panic("addr: cursor exit without matching enter")
	}
	c.segs = c.segs[:len(c.segs)-1]
	c.path = c.path[:len(c.path)-1]
}

// Here returns the composite address of the current nesting level.
func (c *Cursor) Here() def.Address {
	return c.path[len(c.path)-1]
}

// Depth returns how many levels deep the cursor currently is.
func (c *Cursor) Depth() int {
	return len(c.segs)
}
