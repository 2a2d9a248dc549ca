/*
	The `env` package carries ambient, typed values down through nested
	call scopes without explicit parameter threading.

	A Stack holds one frame per call nesting level.  Ancestors provide
	values keyed by their dynamic type; descendants fetch the
	nearest-ancestor value of a type.  At most one value of a given type is
	active per frame; providing the same type again in a nested frame
	shadows the outer value for that frame's extent only.

	Frames are owned by the call that pushed them and are released when it
	returns -- the engine pairs Push/Pop with defers, so frames get
	released on every exit path, early returns and panics included.
	Nothing is retained past the call; this is stack discipline, not a
	registry.

	The typed lookup surface (`Provide`/`Expect` over concrete types) lives
	in the engine package; this package is the untyped mechanism.
*/
package env

import (
	"reflect"
)

type frame map[reflect.Type]interface{}

// Stack is a stack of typed-value frames.  Not safe for concurrent use;
// exactly one goroutine walks a stack at a time, same as the addr cursor.
type Stack struct {
	frames []frame
}

func NewStack() *Stack {
	return &Stack{frames: make([]frame, 0, 16)}
}

/*
	Push opens a new frame holding each of `vals`, keyed by dynamic type.
	Pushing no values opens an empty frame (a scope that provides nothing
	but still delimits shadowing).

	If two values in one Push share a type, the later one wins; that's a
	caller mistake, not a feature.
*/
func (s *Stack) Push(vals ...interface{}) {
	var fr frame
	if len(vals) > 0 {
		fr = make(frame, len(vals))
		for _, v := range vals {
			fr[reflect.TypeOf(v)] = v
		}
	}
	s.frames = append(s.frames, fr)
}

// Pop closes the innermost frame.  Panics if the stack is empty.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		panic("env: pop without matching push")
	}
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
}

/*
	Get fetches the nearest-ancestor value of type `t`, walking outward
	from the innermost frame.  Reports false if no frame in the stack
	provides one.
*/
func (s *Stack) Get(t reflect.Type) (interface{}, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][t]; ok {
			return v, true
		}
	}
	return nil, false
}

// Depth returns the number of open frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}
