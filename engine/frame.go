package engine

import (
	"fmt"
	"runtime"

	"go.polydawn.net/revisr/addr"
	"go.polydawn.net/revisr/api/def"
	"go.polydawn.net/revisr/env"
)

/*
	Frame is the handle a description function composes against: it carries
	the call-address cursor and the environment stack for the revision in
	progress.  Frames are only valid for the duration of the RunOnce call
	that minted them; retaining one past the revision is meaningless.

	The composition surface (Memo, Once, State, Provide, Expect) is free
	functions over Frame rather than methods because Go methods can't take
	type parameters.
*/
type Frame struct {
	rt     *Runtime
	cursor *addr.Cursor
	env    *env.Stack
}

// Revision returns the revision currently executing.
func (fr *Frame) Revision() def.Revision {
	return fr.rt.Revision()
}

/*
	Call runs `fn` in a nested call scope: a new address nesting level and
	a new environment frame, both released when fn returns (on every exit
	path).  The scope's site identity is the source location of the Call
	expression.
*/
func (fr *Frame) Call(fn func(*Frame)) {
	fr.callAt(callerSite(1), "", fn)
}

/*
	CallSlot is Call with an explicit slot discriminator.  Use it around
	repeated sub-calls at one site -- loop bodies, keyed collections --
	so logically distinct iterations get distinct addresses.  Omitting it
	collides the iterations' addresses; see def.Slot.
*/
func (fr *Frame) CallSlot(slot def.Slot, fn func(*Frame)) {
	fr.callAt(callerSite(1), slot, fn)
}

// CallAt is Call with an explicit synthetic site.  For callers generating
// calls programmatically rather than from distinct source expressions.
func (fr *Frame) CallAt(site def.SiteID, slot def.Slot, fn func(*Frame)) {
	fr.callAt(site, slot, fn)
}

func (fr *Frame) callAt(site def.SiteID, slot def.Slot, fn func(*Frame)) {
	fr.cursor.Enter(site, slot)
	defer fr.cursor.Exit()
	fr.env.Push()
	defer fr.env.Pop()
	fn(fr)
}

/*
	callerSite derives a SiteID from the source location `skip+1` frames up
	the stack: the static identity of the call expression.  This is how
	"the same line of code" keys to the same memo entry every revision
	without callers naming their sites.
*/
func callerSite(skip int) def.SiteID {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown:0"
	}
	// the full path is kept: trimming it would invite collisions between
	// same-named files in different packages, and "never collide" is the
	// one promise a site identity has to keep.
	return def.SiteID(fmt.Sprintf("%s:%d", file, line))
}
