/*
	The `def` package holds the core vocabulary shared by all revisr
	components.  Use the `engine` package to see the verbs that relate them.

	Shortlist:

		- `Revision`s count complete passes of a root function

		- `SiteID`s name a static call expression in source

		- `Slot`s discriminate repeated calls at one site (loop keys)

		- `Address`es name one logical call occurrence: a site reached
		  through a particular path of ancestor sites and slots

		- `Fingerprint`s are comparable snapshots of a memoized
		  operation's inputs, used to decide reuse vs recompute
*/
package def
