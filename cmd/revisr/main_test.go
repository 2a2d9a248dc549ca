package main

import (
	"bytes"
	"testing"
	"time"
)

// Returns the behavior from an invocation of Main.
func determineBehavior(args ...string) behavior {
	stdin := &bytes.Buffer{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return Main(args, stdin, stdout, stderr)
}

func TestCLIParse(t *testing.T) {
	bhv := determineBehavior("revisr", "wow")
	if _, isErr := bhv.parsedArgs.(error); !isErr {
		t.Errorf("unknown command should yield the error-bearing behavior, got %#v", bhv.parsedArgs)
	}
	if bhv.action() == nil {
		t.Errorf("the error-bearing behavior should error when acted on")
	}

	bhv = determineBehavior("revisr", "demo")
	demoArgs, ok := bhv.parsedArgs.(*struct {
		Revisions int
		Interval  time.Duration
	})
	if !ok {
		t.Fatalf("demo should parse to the demo args struct, got %#v", bhv.parsedArgs)
	}
	if demoArgs.Revisions != 12 || demoArgs.Interval != 500*time.Millisecond {
		t.Errorf("demo defaults should apply, got %#v", demoArgs)
	}

	bhv = determineBehavior("revisr", "examine", "--revisions", "5")
	examineArgs, ok := bhv.parsedArgs.(*struct {
		Revisions int
	})
	if !ok {
		t.Fatalf("examine should parse to the examine args struct, got %#v", bhv.parsedArgs)
	}
	if examineArgs.Revisions != 5 {
		t.Errorf("examine --revisions should land, got %d", examineArgs.Revisions)
	}
}
