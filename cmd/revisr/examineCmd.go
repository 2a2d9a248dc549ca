package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/polydawn/refmt"
	"github.com/polydawn/refmt/json"
	"github.com/polydawn/refmt/obj/atlas"

	"go.polydawn.net/revisr/engine"
	"go.polydawn.net/revisr/store"
)

var arenaAtlas = atlas.MustBuild(
	atlas.BuildEntry(store.EntryInfo{}).StructMap().Autogenerate().Complete(),
)

/*
	Runs the demo scene for a few revisions with synthetic clock and input
	writes, then dumps the surviving memoization entries.  Handy for
	eyeballing what the call-tree addressing actually looks like.
*/
func ExamineCmd(stdout io.Writer, revisions int) error {
	rt := engine.New(engine.Options{})
	board := &demoBoard{}
	sink := &lineSink{w: ioutil.Discard}
	root := board.describe(sink)

	if _, err := rt.RunOnce(root); err != nil {
		return err
	}
	for i := 1; i < revisions; i++ {
		board.clock.Set(time.Unix(int64(i)*90, 0).UTC())
		board.input.Set(fmt.Sprintf("probe number %d", i))
		if _, err := rt.RunOnce(root); err != nil {
			return err
		}
	}

	return refmt.NewMarshallerAtlased(json.EncodeOptions{}, stdout, arenaAtlas).
		Marshal(rt.SnapshotArena())
}
