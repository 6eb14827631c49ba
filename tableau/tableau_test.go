package tableau

import (
	"testing"

	"github.com/avl42/tableau/formula"
)

func solveString(t *testing.T, s string) Verdict {
	t.Helper()
	f, err := formula.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return Solve(f)
}

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Verdict
	}{
		{"bare atom", "p", Satisfiable},
		{"contradiction", "(p&~p)", Unsatisfiable},
		{"tautology", "(p->p)", Satisfiable},
		{"double negated disjunction", "~~(p\\/q)", Satisfiable},
		{"reflexive universal", "AxP(x,x)", Satisfiable},
		{"universal instance contradiction", "(AxP(x,x)&~P(c1,c1))", Unsatisfiable},
		{"existential over universal", "ExAyP(x,y)", Satisfiable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := solveString(t, tt.in); got != tt.want {
				t.Errorf("Solve(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSolveNeverReportsUndeterminedForTheseScenarios(t *testing.T) {
	for _, in := range []string{"p", "(p&~p)", "(p->p)", "~~(p\\/q)", "AxP(x,x)", "(AxP(x,x)&~P(c1,c1))", "ExAyP(x,y)"} {
		if got := solveString(t, in); got == Undetermined {
			t.Errorf("Solve(%q) = Undetermined, want a definite verdict", in)
		}
	}
}

func TestSmallWitnessCountResolvesSatisfiable(t *testing.T) {
	// AxP(x,x) only ever re-instantiates against the two witnesses ExP(x,x)
	// and its own bootstrap mint before fully saturating (n never exceeds
	// 2), so this resolves to a definite Satisfiable well short of the
	// witness cap at 10 — it does not exercise Undetermined at all.
	if got := solveString(t, "(AxP(x,x)&ExP(x,x))"); got != Satisfiable {
		t.Errorf("Solve((AxP(x,x)&ExP(x,x))) = %v, want Satisfiable", got)
	}
}

func TestWitnessCapBeforeClosingContradictionProducesUndetermined(t *testing.T) {
	// Eleven syntactically distinct existentials, conjoined right-nested so
	// the branch never splits, each mint one fresh witness in turn: the
	// first ten succeed (c1..c10, n reaches MaxConstants), the eleventh
	// hits the cap. Only after that capped existential does the scan reach
	// the sole contradiction (S(c11,c11)&~S(c11,c11)), closing the branch.
	// Since the branch that closed is also the only one ever pushed, the
	// stack empties with no branch ever found open and saturated, so the
	// cap hit recorded along the way is what decides the verdict.
	existentials := []string{
		"ExP(x,x)", "EyP(y,y)", "EzP(z,z)", "EwP(w,w)",
		"ExQ(x,x)", "EyQ(y,y)", "EzQ(z,z)", "EwQ(w,w)",
		"ExR(x,x)", "EyR(y,y)", "EzR(z,z)",
	}
	in := "(S(c11,c11)&~S(c11,c11))"
	for i := len(existentials) - 1; i >= 0; i-- {
		in = "(" + existentials[i] + "&" + in + ")"
	}
	if got := solveString(t, in); got != Undetermined {
		t.Errorf("Solve(%q) = %v, want Undetermined", in, got)
	}
}

func TestClosedDetectsSyntacticComplement(t *testing.T) {
	b := newBranch(mustParseT(t, "p"))
	b.f = append(b.f, mustParseT(t, "~p"))
	if !b.closed() {
		t.Error("branch with p and ~p should be closed")
	}
}

func TestClosedDoesNotTreatDoubleNegationAsComplement(t *testing.T) {
	b := newBranch(mustParseT(t, "p"))
	b.f = append(b.f, mustParseT(t, "~~p"))
	if b.closed() {
		t.Error("branch with p and ~~p should not be closed")
	}
}

func mustParseT(t *testing.T, s string) *formula.Formula {
	t.Helper()
	f, err := formula.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return f
}
