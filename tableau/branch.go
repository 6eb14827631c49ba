// Package tableau implements the analytic tableau (semantic tree) search
// that decides satisfiability of a parsed formula.
package tableau

import (
	"github.com/avl42/tableau/debug"
	"github.com/avl42/tableau/formula"
)

// MaxConstants is the witness cap: the most distinct constants any single
// branch may introduce. A quantifier that would need one more is marked
// expanded without being instantiated and the search records the cap hit;
// the verdict is Undetermined only if no open saturated branch is found.
const MaxConstants = 10

// branch is one node of the tableau search tree: an ordered formula list
// F, the witness names in play K, the monotone witness counter n, the set
// of formulas already expanded X, and the per-universal instantiation
// ledger U.
type branch struct {
	f []*formula.Formula
	k []string
	n int
	x map[string]*formula.Formula
	u map[string]map[string]bool
}

func newBranch(phi *formula.Formula) *branch {
	return &branch{
		f: []*formula.Formula{phi},
		x: make(map[string]*formula.Formula),
		u: make(map[string]map[string]bool),
	}
}

// clone deep-copies the branch state so two children of a β-split search
// independently. Formula nodes themselves are immutable and are shared
// between clones, the same Clone/CloneTo split the teacher's ir.Node
// uses between structural copying and payload reuse.
func (b *branch) clone() *branch {
	nb := &branch{
		f: append([]*formula.Formula(nil), b.f...),
		k: append([]string(nil), b.k...),
		n: b.n,
		x: make(map[string]*formula.Formula, len(b.x)),
		u: make(map[string]map[string]bool, len(b.u)),
	}
	for key, f := range b.x {
		nb.x[key] = f
	}
	for key, set := range b.u {
		ns := make(map[string]bool, len(set))
		for c := range set {
			ns[c] = true
		}
		nb.u[key] = ns
	}
	return nb
}

// closed reports whether F holds a complementary pair ψ, ~ψ. The check is
// purely syntactic: ~~ψ and ψ are not a complementary pair unless ~ψ
// itself also appears literally in F.
func (b *branch) closed() bool {
	seen := make(map[string]bool, len(b.f))
	for _, f := range b.f {
		seen[f.String()] = true
	}
	for key := range seen {
		if len(key) > 0 && key[0] == '~' {
			if seen[key[1:]] {
				return true
			}
		} else if seen["~"+key] {
			return true
		}
	}
	return false
}

// isLiteral reports whether f is an atom or the negation of an atom —
// the only shapes the search never decomposes further.
func isLiteral(f *formula.Formula) bool {
	if f.IsAtom() {
		return true
	}
	if f.IsNegation() {
		return f.Operand().IsAtom()
	}
	return false
}

// isDoubleNegation reports whether f is ~~ψ.
func isDoubleNegation(f *formula.Formula) bool {
	return f.IsNegation() && f.Operand().IsNegation()
}

// witnessReset clears from X every universally-quantified formula and
// every formula of the shape ~Eν.ψ, the event triggered whenever a new
// witness constant enters play. U, the per-universal ledger, is never
// touched by a reset.
func (b *branch) witnessReset() {
	var before map[string]string
	if debug.Witness() {
		before = snapshotX(b.x)
	}
	for key, f := range b.x {
		if f.IsUniversal() {
			delete(b.x, key)
			continue
		}
		if f.IsNegation() && f.Operand().IsExistential() {
			delete(b.x, key)
		}
	}
	if debug.Witness() {
		if patch, err := debug.WitnessResetPatch(before, snapshotX(b.x)); err == nil {
			debug.Log.Info("witness reset", "patch", string(patch))
		}
	}
}

// snapshotX captures X's keys for WitnessResetPatch, which diffs two
// point-in-time string maps rather than reaching into formula.Formula's
// unexported fields.
func snapshotX(x map[string]*formula.Formula) map[string]string {
	m := make(map[string]string, len(x))
	for k, f := range x {
		m[k] = f.String()
	}
	return m
}

// saturated reports whether every formula in F is either a literal or
// already marked expanded. advance marks literals and dead-end
// quantifiers as it scans, so once it reports no progress the branch is
// saturated by construction.
func (b *branch) saturated() bool {
	for _, f := range b.f {
		if isLiteral(f) {
			continue
		}
		if _, ok := b.x[f.String()]; !ok {
			return false
		}
	}
	return true
}
