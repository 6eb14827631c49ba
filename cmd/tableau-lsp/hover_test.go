package main

import (
	"strings"
	"testing"
)

func TestHoverTextReportsCategoryAndVerdict(t *testing.T) {
	got := hoverText("(p&~p)")
	for _, want := range []string{
		"**Category:** a binary connective propositional formula",
		"**Left:** `p`",
		"**Connective:** `&`",
		"**Right:** `~p`",
		"**Satisfiability:** is not satisfiable",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("hoverText((p&~p)) = %q, want substring %q", got, want)
		}
	}
}

func TestHoverTextOmitsAccessorsForNonBinary(t *testing.T) {
	got := hoverText("AxP(x,x)")
	if strings.Contains(got, "**Left:**") {
		t.Errorf("hoverText(AxP(x,x)) = %q, should not include accessor fields", got)
	}
	if !strings.Contains(got, "**Satisfiability:** is satisfiable") {
		t.Errorf("hoverText(AxP(x,x)) = %q, want satisfiable verdict", got)
	}
}

func TestHoverTextReportsNotAFormula(t *testing.T) {
	got := hoverText("not)a(formula")
	if !strings.Contains(got, "not a formula") {
		t.Errorf("hoverText(not)a(formula) = %q, want \"not a formula\"", got)
	}
}

func TestDocumentLineIndexing(t *testing.T) {
	d := &document{content: "p\n(p&~p)\nAxP(x,x)"}
	if got := d.line(1); got != "(p&~p)" {
		t.Errorf("line(1) = %q, want (p&~p)", got)
	}
	if got := d.line(5); got != "" {
		t.Errorf("line(5) = %q, want empty for out-of-range", got)
	}
}
