package formula

import "errors"

// ErrNotAFormula is returned by Parse when the input string matches
// neither the propositional nor the first-order grammar.
var ErrNotAFormula = errors.New("not a formula")
