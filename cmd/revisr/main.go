package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	bhv := Main(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err := bhv.action(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// Holder type which makes it easier for us to inspect
//  the args parser result in test code before running logic.
type behavior struct {
	parsedArgs interface{}
	action     func() error
}

func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) behavior {
	// CLI boilerplate.
	app := kingpin.New("revisr", "Incremental computation.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	// Args struct defs and flag declarations.
	bhvs := map[string]behavior{}
	{
		cmdDemo := app.Command("demo", "Run the demo scene on a ticker, printing each revision.")
		argsDemo := struct {
			Revisions int
			Interval  time.Duration
		}{}
		cmdDemo.Flag("revisions", "How many revisions to run before exiting.").
			Default("12").
			IntVar(&argsDemo.Revisions)
		cmdDemo.Flag("interval", "Tick interval feeding the clock cell.").
			Default("500ms").
			DurationVar(&argsDemo.Interval)
		bhvs[cmdDemo.FullCommand()] = behavior{&argsDemo, func() error {
			return DemoCmd(stdout, stderr, argsDemo.Revisions, argsDemo.Interval)
		}}
	}
	{
		cmdRepl := app.Command("repl", "Feed the demo scene interactively; each line you type is a state write.")
		bhvs[cmdRepl.FullCommand()] = behavior{nil, func() error {
			return ReplCmd(stdout, stderr)
		}}
	}
	{
		cmdExamine := app.Command("examine", "Run the demo scene headlessly and dump the memoization arena as json.")
		argsExamine := struct {
			Revisions int
		}{}
		cmdExamine.Flag("revisions", "How many revisions to run before dumping.").
			Default("3").
			IntVar(&argsExamine.Revisions)
		bhvs[cmdExamine.FullCommand()] = behavior{&argsExamine, func() error {
			return ExamineCmd(stdout, argsExamine.Revisions)
		}}
	}
	{
		cmdVersion := app.Command("version", "Print version info.")
		bhvs[cmdVersion.FullCommand()] = behavior{nil, func() error {
			return VersionCmd(stdout)
		}}
	}

	// Parse!
	parsedCmdStr, err := app.Parse(args[1:])
	if err != nil {
		return behavior{
			parsedArgs: err,
			action: func() error {
				return fmt.Errorf("error parsing args: %s", err)
			},
		}
	}
	// Return behavior named by the command and subcommand strings.
	if bhv, ok := bhvs[parsedCmdStr]; ok {
		return bhv
	}
	panic("unreachable, cli parser must error on unknown commands")
}
