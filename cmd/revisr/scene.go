package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.polydawn.net/revisr/api/def"
	"go.polydawn.net/revisr/engine"
)

/*
	The demo scene: a little status board, redescribed from scratch every
	revision.  It leans on each of the runtime's primitives so the CLI
	surfaces have something honest to show:

		- the banner is memoized on the clock's minute, so it only
		  reformats when the minute ticks over
		- each input word is declared under a slotted call, so words keep
		  their identity while the line around them changes
		- word rendering is an "active effect": creation prints the word,
		  disposal prints a retraction when the word stops being declared
*/
type demoBoard struct {
	clock engine.Key[time.Time]
	input engine.Key[string]
}

// lineSink is the output surface, provided down the call tree as ambient
// environment rather than threaded through every describe function.
type lineSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *lineSink) line(text string) {
	s.mu.Lock()
	fmt.Fprintln(s.w, text)
	s.mu.Unlock()
}

func (board *demoBoard) describe(sink *lineSink) engine.RootFn {
	return func(fr *engine.Frame) {
		engine.Provide(fr, sink, func(fr *engine.Frame) {
			board.clock = engine.State(fr, time.Time{})
			board.input = engine.State(fr, "")
			fr.Call(board.header)
			fr.Call(board.words)
		})
	}
}

func (board *demoBoard) header(fr *engine.Frame) {
	sink := engine.MustExpect[*lineSink](fr)
	t := board.clock.Get()
	banner := engine.Memo(fr, def.Print(t.Format("15:04")), func() string {
		return "== revisr demo @ " + t.Format("15:04") + " =="
	})
	sink.line(banner)
	sink.line(fmt.Sprintf("   revision %d", fr.Revision()))
}

func (board *demoBoard) words(fr *engine.Frame) {
	sink := engine.MustExpect[*lineSink](fr)
	input := board.input.Get()
	if input == "" {
		sink.line("   (no input yet)")
		return
	}
	for i, word := range words(input) {
		fr.CallSlot(def.Slot(strconv.Itoa(i)), func(fr *engine.Frame) {
			rendered := engine.MemoWith(fr, def.Print(word),
				func() string {
					return "   * " + strings.ToUpper(word)
				},
				func(old string) {
					sink.line("   (retracted" + strings.TrimPrefix(old, "   *") + ")")
				})
			sink.line(rendered)
		})
	}
}

func words(input string) []string {
	return strings.Fields(input)
}
