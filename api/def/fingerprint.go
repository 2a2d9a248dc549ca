package def

import (
	"crypto/sha512"

	"github.com/ugorji/go/codec"
)

/*
	Fingerprint is an equality-comparable snapshot of a memoized
	operation's declared inputs.

	If two consecutive revisions visit the same Address with equal
	fingerprints, the stored value is reused verbatim and the initializer
	is not re-invoked; a differing fingerprint disposes the old value and
	recomputes.

	Fingerprints are compared by string equality and nothing else, so they
	must be derived from the *values* of inputs, not their identities --
	pointer equality is not a fingerprint.  Use `Print` to derive one
	canonically, or cast any stable string you already have.
*/
type Fingerprint string

/*
	Unit is the fingerprint of "no inputs".  Run-once memoization uses it:
	a site fingerprinted with Unit initializes on first visit and is reused
	for as long as the site stays reachable.
*/
const Unit Fingerprint = "-"

/*
	Returns a fingerprint covering the given value, such that the
	fingerprint may be expected to converge for values that are
	structurally equal.

	The value is serialized canonically (CBOR; map keys sorted), hashed,
	and the digest rendered compactly.  The returned string is the base58
	encoding of a SHA-384 hash, though there is no reason you should treat
	it as anything but opaque.  The returned string may be relied upon to
	be all alphanumeric characters.

	Panics if handed a value the codec cannot walk (channels, funcs);
	declare such things out of your inputs, or cast your own string.
*/
func Print(input interface{}) Fingerprint {
	hasher := sha512.New384()
	enc := codec.NewEncoder(hasher, fingerprintHandle)
	enc.MustEncode(input)
	return Fingerprint(b58encode(hasher.Sum(nil)))
}

var fingerprintHandle = func() *codec.CborHandle {
	h := &codec.CborHandle{}
	h.Canonical = true
	return h
}()
