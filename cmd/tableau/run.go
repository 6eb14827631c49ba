package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/scott-cotton/cli"

	"github.com/avl42/tableau/formula"
	"github.com/avl42/tableau/tableau"
)

// run is the line-oriented driver described by §6: the first line
// selects one or both of PARSE/SAT mode by substring containment, and
// every following line is one formula to report on.
func run(cfg *Config, cc *cli.Context, args []string) error {
	scanner := bufio.NewScanner(cc.In)
	if !scanner.Scan() {
		return nil
	}
	firstLine := scanner.Text()
	parseMode := strings.Contains(firstLine, "PARSE")
	satMode := strings.Contains(firstLine, "SAT")

	verdicts := verdictColors(cc.Out)
	for scanner.Scan() {
		line := scanner.Text()
		reportLine(cc.Out, verdicts, line, parseMode, satMode)
	}
	return scanner.Err()
}

func reportLine(w io.Writer, v colors, line string, parseMode, satMode bool) {
	f, err := formula.Parse(line)

	if parseMode {
		cat := formula.NotAFormula
		if err == nil {
			cat = f.Category()
		}
		out := fmt.Sprintf("%s is %s.", line, cat.Phrase())
		if cat.Binary() {
			out += fmt.Sprintf(" Its left hand side is %s, its connective is %s, and its right hand side is %s.",
				formula.Lhs(line), formula.Con(line), formula.Rhs(line))
		}
		fmt.Fprintln(w, out)
	}

	if satMode {
		if err != nil {
			fmt.Fprintf(w, "%s is not a formula.\n", line)
			return
		}
		verdict := tableau.Solve(f)
		fmt.Fprintf(w, "%s %s.\n", line, v.paint(verdict))
	}
}

// colors picks a coloring function per verdict, matching the way
// encode.Colors maps a (type, attribute) pair to a print function; here
// the key degenerates to the verdict itself.
type colors struct {
	sat   func(string, ...any) string
	unsat func(string, ...any) string
	undet func(string, ...any) string
}

func (c colors) paint(v tableau.Verdict) string {
	switch v {
	case tableau.Satisfiable:
		return c.sat(v.Phrase())
	case tableau.Unsatisfiable:
		return c.unsat(v.Phrase())
	default:
		return c.undet(v.Phrase())
	}
}

func plain(s string, _ ...any) string { return s }

// verdictColors enables color only when w is a terminal, the same check
// configs.go makes with isatty before handing an encoder its Colors.
func verdictColors(w io.Writer) colors {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return colors{sat: plain, unsat: plain, undet: plain}
	}
	return colors{
		sat:   color.GreenString,
		unsat: color.RedString,
		undet: color.YellowString,
	}
}
