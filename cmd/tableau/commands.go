package main

import (
	"github.com/scott-cotton/cli"
)

// Config holds the root command's state. There are no flags today; it
// exists, the way the teacher's MainConfig does, as the single place a
// future option would be threaded through.
type Config struct {
	Root *cli.Command
}

// RootCommand builds the single "tableau" command: it reads a mode line
// followed by one formula per line from its input and writes one
// report line per formula to its output (§6).
func RootCommand() *cli.Command {
	cfg := &Config{}
	return cli.NewCommandAt(&cfg.Root, "tableau").
		WithSynopsis("tableau").
		WithDescription("tableau classifies and decides satisfiability of propositional and first order logic formulas read line by line from stdin.").
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}
