package main

import (
	"bytes"
	"strings"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// transcript runs reportLine over in with colors disabled, the shape the
// package's own plain-file path takes (verdictColors falls back to plain
// whenever stdout isn't a terminal), and returns the full multi-line
// output as a single string.
func transcript(t *testing.T, in []string, parseMode, satMode bool) string {
	t.Helper()
	var buf bytes.Buffer
	v := colors{sat: plain, unsat: plain, undet: plain}
	for _, line := range in {
		reportLine(&buf, v, line, parseMode, satMode)
	}
	return buf.String()
}

// requireTranscript compares got against want using diffmatchpatch the way
// libdiff/string.go builds its diffs, so a mismatch prints a readable
// character-level diff instead of two opaque multi-line blobs.
func requireTranscript(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want, got, true)
	t.Errorf("transcript mismatch (want -> got):\n%s", dmp.DiffPrettyText(diffs))
}

func TestRunSatModeTranscript(t *testing.T) {
	got := transcript(t, []string{"p", "(p&~p)", "(p->p)", "not)a(formula"}, false, true)
	want := strings.Join([]string{
		"p is satisfiable.",
		"(p&~p) is not satisfiable.",
		"(p->p) is satisfiable.",
		"not)a(formula is not a formula.",
	}, "\n") + "\n"
	requireTranscript(t, got, want)
}

func TestRunParseModeTranscript(t *testing.T) {
	got := transcript(t, []string{"p", "~p", "(p&q)", "AxP(x,x)"}, true, false)
	want := strings.Join([]string{
		"p is a proposition.",
		"~p is a negation of a propositional formula.",
		"(p&q) is a binary connective propositional formula. Its left hand side is p, its connective is &, and its right hand side is q.",
		"AxP(x,x) is a universally quantified formula.",
	}, "\n") + "\n"
	requireTranscript(t, got, want)
}

func TestRunBothModesTranscript(t *testing.T) {
	got := transcript(t, []string{"(p->q)"}, true, true)
	want := "(p->q) is a binary connective propositional formula." +
		" Its left hand side is p, its connective is ->, and its right hand side is q.\n" +
		"(p->q) is satisfiable.\n"
	requireTranscript(t, got, want)
}
