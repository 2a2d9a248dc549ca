package addr

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"go.polydawn.net/revisr/api/def"
)

func TestCursorAddressing(t *testing.T) {
	Convey("Given a fresh cursor", t, func() {
		cursor := NewCursor()
		So(cursor.Here(), ShouldEqual, Root)
		So(cursor.Depth(), ShouldEqual, 0)

		Convey("Identical walks should produce identical addresses", func() {
			walk := func() []def.Address {
				c := NewCursor()
				var got []def.Address
				got = append(got, c.Enter("main.go:10", ""))
				got = append(got, c.Enter("main.go:11", "k1"))
				c.Exit()
				got = append(got, c.Enter("main.go:11", "k2"))
				c.Exit()
				c.Exit()
				return got
			}
			So(walk(), ShouldResemble, walk())
		})

		Convey("Different slots at one site should diverge", func() {
			a := cursor.Enter("loop.go:5", "alpha")
			cursor.Exit()
			b := cursor.Enter("loop.go:5", "beta")
			cursor.Exit()
			So(a, ShouldNotEqual, b)
		})

		Convey("Same site, same slot, same parent should collide (the documented hazard)", func() {
			a := cursor.Enter("loop.go:5", "")
			cursor.Exit()
			b := cursor.Enter("loop.go:5", "")
			cursor.Exit()
			So(a, ShouldEqual, b)
		})

		Convey("Recursive entry at one site should not collide", func() {
			outer := cursor.Enter("rec.go:1", "")
			inner := cursor.Enter("rec.go:1", "")
			So(inner, ShouldNotEqual, outer)
			So(cursor.Depth(), ShouldEqual, 2)
			cursor.Exit()
			cursor.Exit()
			So(cursor.Here(), ShouldEqual, Root)
		})

		Convey("An address should sort before its descendants", func() {
			parent := cursor.Enter("a.go:1", "")
			child := cursor.Enter("b.go:2", "")
			So(string(parent) < string(child), ShouldBeTrue)
			cursor.Exit()
			cursor.Exit()
		})

		Convey("Separator characters in sites and slots should not forge paths", func() {
			tricky := cursor.Enter("x/y@z", "")
			cursor.Exit()
			forged := cursor.Enter("x", "")
			cursor.Exit()
			So(tricky, ShouldNotEqual, forged)
			// and the escaped form keeps the tree shape: still one segment.
			So(cursor.Depth(), ShouldEqual, 0)
		})

		Convey("Exit at root should panic", func() {
			So(func() { cursor.Exit() }, ShouldPanic)
		})
	})
}
