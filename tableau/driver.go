package tableau

import (
	"github.com/avl42/tableau/debug"
	"github.com/avl42/tableau/formula"
	"github.com/avl42/tableau/satsolve"
)

// Verdict is the three-valued answer the search produces.
type Verdict int

const (
	Unsatisfiable Verdict = iota
	Satisfiable
	Undetermined
)

var verdictPhrases = [...]string{
	Unsatisfiable: "is not satisfiable",
	Satisfiable:   "is satisfiable",
	Undetermined:  "may or may not be satisfiable",
}

// Phrase returns the sentence fragment the command line interface reports
// for this verdict in SAT mode.
func (v Verdict) Phrase() string {
	if int(v) < 0 || int(v) >= len(verdictPhrases) {
		return verdictPhrases[Undetermined]
	}
	return verdictPhrases[v]
}

func (v Verdict) String() string {
	switch v {
	case Unsatisfiable:
		return "Unsatisfiable"
	case Satisfiable:
		return "Satisfiable"
	case Undetermined:
		return "Undetermined"
	default:
		return "Verdict(?)"
	}
}

// Solve runs the tableau search on phi and returns its verdict. When
// TABLEAU_DEBUG_CROSSCHECK is set and phi is purely propositional, the
// result is cross-checked against the independent gini-backed solver in
// package satsolve; a disagreement is logged but never changes the
// returned verdict, since satsolve has no way to see quantifiers and so
// is not authoritative.
func Solve(phi *formula.Formula) Verdict {
	v := search(phi)
	if debug.CrossCheck() && !phi.FOL() && v != Undetermined {
		if ok, err := satsolve.Agrees(phi, v == Satisfiable); err == nil && !ok {
			debug.LogAny(map[string]any{
				"crosscheck": "disagreement",
				"formula":    phi.String(),
				"tableau":    v.String(),
			})
		}
	}
	return v
}

// search runs the tableau itself. It uses a LIFO stack of open branches
// exactly as the worklist in kevinawalsh-datalog's query engine drives
// its own search: push work, pop the most recently pushed item, and only
// fall back to declaring defeat once the stack is empty.
func search(phi *formula.Formula) Verdict {
	stack := []*branch{newBranch(phi)}
	undetermined := false

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.closed() {
			if debug.Branch() {
				debug.Log.Info("branch closed on pop")
			}
			continue
		}

		for {
			if b.closed() {
				break
			}
			out := b.advance()
			if out.hitCap {
				undetermined = true
				if debug.Witness() {
					debug.Log.Info("witness cap reached")
				}
			}
			if !out.fired {
				break
			}
			if debug.Rules() {
				debug.Log.Info("rule fired", "split", out.split)
			}
			if out.split {
				stack = append(stack, out.left, out.right)
				b = nil
				break
			}
		}
		if b == nil {
			continue
		}
		if b.closed() {
			continue
		}
		if debug.Branch() {
			debug.Log.Info("open saturated branch found", "saturated", b.saturated())
		}
		return Satisfiable
	}

	if undetermined {
		return Undetermined
	}
	return Unsatisfiable
}
