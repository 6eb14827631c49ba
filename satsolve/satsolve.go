// Package satsolve cross-checks the propositional fragment of the
// tableau engine against a real SAT solver, the same role
// schema.CheckAcceptSatisfiability plays for schema definitions: a
// validation utility layered on top of, never a replacement for, the
// primary decision procedure.
package satsolve

import (
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/avl42/tableau/formula"
)

// ErrNotPropositional is returned by Satisfiable when the formula
// contains a quantifier or predicate, which have no propositional
// encoding.
var ErrNotPropositional = errors.New("formula is not purely propositional")

// Satisfiable decides satisfiability of a purely propositional formula
// (categories PropAtom, PropNegation, PropBinary) by building a Tseitin
// circuit and asking gini to solve it, the same construction
// formulaBuilder.build uses for schema constraints: one boolean variable
// per distinct atom, Ands/Ors/Not for the connectives, ToCnf plus Solve
// to decide.
func Satisfiable(f *formula.Formula) (bool, error) {
	if f.FOL() {
		return false, ErrNotPropositional
	}
	c := logic.NewC()
	vars := make(map[string]z.Lit)
	lit := build(c, vars, f)

	g := gini.New()
	c.ToCnf(g)
	g.Assume(lit)
	return g.Solve() == 1, nil
}

func build(c *logic.C, vars map[string]z.Lit, f *formula.Formula) z.Lit {
	if f.IsAtom() {
		return getVar(c, vars, f.Name)
	}
	if f.IsNegation() {
		return build(c, vars, f.Operand()).Not()
	}
	left := build(c, vars, f.Left)
	right := build(c, vars, f.Right)
	switch f.Conn {
	case formula.ConnAnd:
		return c.Ands(left, right)
	case formula.ConnOr:
		return c.Ors(left, right)
	case formula.ConnImp:
		return c.Ors(left.Not(), right)
	default:
		return c.F
	}
}

func getVar(c *logic.C, vars map[string]z.Lit, name string) z.Lit {
	if lit, ok := vars[name]; ok {
		return lit
	}
	lit := c.Lit()
	vars[name] = lit
	return lit
}

// Agrees reports whether a tableau verdict over the propositional
// fragment agrees with gini's independent answer. It never overrides the
// tableau's verdict; its only caller is tableau.Solve, which uses it as a
// consistency assertion under the TABLEAU_DEBUG_CROSSCHECK flag. No test
// in the repository calls it.
func Agrees(f *formula.Formula, tableauSat bool) (bool, error) {
	sat, err := Satisfiable(f)
	if err != nil {
		return false, err
	}
	return sat == tableauSat, nil
}
