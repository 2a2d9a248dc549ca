package env

import (
	"reflect"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type parentNode struct{ name string }
type themeColor string

func TestEnvStack(t *testing.T) {
	Convey("Given an environment stack", t, func() {
		s := NewStack()
		tParent := reflect.TypeOf(parentNode{})
		tTheme := reflect.TypeOf(themeColor(""))

		Convey("An empty stack should provide nothing", func() {
			_, ok := s.Get(tParent)
			So(ok, ShouldBeFalse)
		})

		Convey("A provided value should be visible from nested frames", func() {
			s.Push(parentNode{"root"})
			s.Push() // an intervening scope that provides nothing
			s.Push(themeColor("mauve"))

			v, ok := s.Get(tParent)
			So(ok, ShouldBeTrue)
			So(v.(parentNode).name, ShouldEqual, "root")
			v, ok = s.Get(tTheme)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, themeColor("mauve"))

			Convey("Shadowing should last only for the inner frame's extent", func() {
				s.Push(parentNode{"branch"})
				v, _ := s.Get(tParent)
				So(v.(parentNode).name, ShouldEqual, "branch")

				s.Pop()
				v, _ = s.Get(tParent)
				So(v.(parentNode).name, ShouldEqual, "root")
			})

			Convey("Popping a providing frame should drop its values", func() {
				s.Pop() // theme frame
				_, ok := s.Get(tTheme)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("Pop of an empty stack should panic", func() {
			So(func() { s.Pop() }, ShouldPanic)
		})
	})
}
