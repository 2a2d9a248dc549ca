package main

import (
	"io"
	"time"

	"github.com/inconshreveable/log15"

	"go.polydawn.net/revisr/engine"
	"go.polydawn.net/revisr/scheduler/linear"
)

func DemoCmd(stdout, stderr io.Writer, revisions int, interval time.Duration) error {
	log := log15.New()
	log.SetHandler(log15.LvlFilterHandler(log15.LvlInfo,
		log15.StreamHandler(stderr, log15.TerminalFormat())))

	rt := engine.New(engine.Options{Log: log})
	board := &demoBoard{}
	sink := &lineSink{w: stdout}

	results := make(chan engine.Result, 16)
	sched := linear.New(log)
	sched.Configure(rt, board.describe(sink))
	sched.ObserveResults(results)
	sched.Start()
	defer sched.Stop()

	// the first revision mints the board's keys; wait for it before any
	// writes.
	res := <-results
	log.Info("revision complete", "revision", res.Revision, "collected", res.Collected)

	// a rotation of inputs, so fingerprint reuse, replacement, and sweep
	// disposal all get screen time.
	inputs := []string{
		"hello incremental world",
		"hello mutable world",
		"hello",
		"goodbye",
	}
	ticks := 0
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for seen := 1; seen < revisions; {
		select {
		case res := <-results:
			seen++
			log.Info("revision complete",
				"revision", res.Revision, "collected", res.Collected)
		case t := <-ticker.C:
			board.clock.Set(t)
			board.input.Set(inputs[ticks%len(inputs)])
			ticks++
		}
	}
	return nil
}
