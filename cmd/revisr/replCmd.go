package main

import (
	"io"
	"time"

	"github.com/inconshreveable/log15"
	"github.com/peterh/liner"

	"go.polydawn.net/revisr/engine"
	"go.polydawn.net/revisr/scheduler/linear"
)

func ReplCmd(stdout, stderr io.Writer) error {
	log := log15.New()
	log.SetHandler(log15.LvlFilterHandler(log15.LvlWarn,
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
	<-results // first revision mints the keys.

	prompt := liner.NewLiner()
	defer prompt.Close()
	prompt.SetCtrlCAborts(true)
	for {
		text, err := prompt.Prompt("revisr> ")
		switch err {
		case nil:
			if text != "" {
				prompt.AppendHistory(text)
			}
			board.input.Set(text)
			board.clock.Set(time.Now())
			// let the redescription land before the next prompt paints.
			<-results
		case liner.ErrPromptAborted, io.EOF:
			return nil
		default:
			return err
		}
	}
}
