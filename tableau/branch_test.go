package tableau

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avl42/tableau/formula"
)

// formulaComparer lets cmp.Diff compare *formula.Formula values by their
// surface syntax rather than reaching into the unexported AST, the same
// boundary fs_test.go respects by comparing paths.FormatLogSegment's
// string output rather than poking at index.LogSegment internals.
var formulaComparer = cmp.Comparer(func(a, b *formula.Formula) bool {
	return a.String() == b.String()
})

func TestBranchCloneDoesNotShareSlicesOrMaps(t *testing.T) {
	b := newBranch(mustParseT(t, "(p&q)"))
	b.advance() // one α-step: p and q appended, (p&q) marked expanded

	clone := b.clone()
	if diff := cmp.Diff(b.f, clone.f, formulaComparer); diff != "" {
		t.Fatalf("fresh clone.f should equal original (-orig +clone):\n%s", diff)
	}

	clone.f = append(clone.f, mustParseT(t, "r"))
	clone.k = append(clone.k, "c1")
	clone.n++
	clone.x["bogus"] = mustParseT(t, "r")
	clone.u["Axp"] = map[string]bool{"c1": true}

	origLen := len(b.f)
	if len(clone.f) == origLen {
		t.Errorf("mutating clone.f leaked into original branch")
	}
	if len(b.k) != 0 {
		t.Errorf("mutating clone.k leaked into original branch: %v", b.k)
	}
	if b.n != 0 {
		t.Errorf("mutating clone.n leaked into original branch: %d", b.n)
	}
	if _, ok := b.x["bogus"]; ok {
		t.Errorf("mutating clone.x leaked into original branch")
	}
	if _, ok := b.u["Axp"]; ok {
		t.Errorf("mutating clone.u leaked into original branch")
	}
}

func TestBranchCloneSharesFormulaNodesByValue(t *testing.T) {
	b := newBranch(mustParseT(t, "Ax(P(x,x)&Q(x,x))"))
	clone := b.clone()
	if diff := cmp.Diff(b.f, clone.f, formulaComparer); diff != "" {
		t.Errorf("clone of an untouched branch should match the original (-orig +clone):\n%s", diff)
	}
}
