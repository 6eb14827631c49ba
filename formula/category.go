package formula

// Category classifies an input string into one of the syntactic shapes
// the grammar recognizes, or NotAFormula if it matches none of them.
type Category int

const (
	NotAFormula Category = iota
	FOLAtom
	FOLNegation
	Universal
	Existential
	FOLBinary
	PropAtom
	PropNegation
	PropBinary
)

var phrases = [...]string{
	NotAFormula:  "not a formula",
	FOLAtom:      "an atom",
	FOLNegation:  "a negation of a first order logic formula",
	Universal:    "a universally quantified formula",
	Existential:  "an existentially quantified formula",
	FOLBinary:    "a binary connective first order formula",
	PropAtom:     "a proposition",
	PropNegation: "a negation of a propositional formula",
	PropBinary:   "a binary connective propositional formula",
}

// Phrase returns the noun phrase the command line interface substitutes
// into "<line> is <phrase>." when reporting a classification in PARSE
// mode.
func (c Category) Phrase() string {
	if int(c) < 0 || int(c) >= len(phrases) {
		return phrases[NotAFormula]
	}
	return phrases[c]
}

func (c Category) String() string {
	switch c {
	case NotAFormula:
		return "NotAFormula"
	case FOLAtom:
		return "FOLAtom"
	case FOLNegation:
		return "FOLNegation"
	case Universal:
		return "Universal"
	case Existential:
		return "Existential"
	case FOLBinary:
		return "FOLBinary"
	case PropAtom:
		return "PropAtom"
	case PropNegation:
		return "PropNegation"
	case PropBinary:
		return "PropBinary"
	default:
		return "Category(?)"
	}
}

// Binary reports whether a category is one of the two binary shapes, the
// only ones lhs/con/rhs are defined for.
func (c Category) Binary() bool {
	return c == FOLBinary || c == PropBinary
}

// FOL reports whether a category belongs to the first-order fragment of
// the grammar.
func (c Category) FOL() bool {
	switch c {
	case FOLAtom, FOLNegation, Universal, Existential, FOLBinary:
		return true
	}
	return false
}
