package formula

import "strings"

var propLetters = map[byte]bool{'p': true, 'q': true, 'r': true, 's': true}
var predLetters = map[byte]bool{'P': true, 'Q': true, 'R': true, 'S': true}
var folVars = map[byte]bool{'x': true, 'y': true, 'z': true, 'w': true}

// Classify reports the syntactic category of s, or NotAFormula if s
// matches neither the propositional nor the first-order grammar.
func Classify(s string) Category {
	f, err := Parse(s)
	if err != nil {
		return NotAFormula
	}
	return f.Category()
}

// Lhs returns the left operand of s's main connective, serialized back to
// surface syntax. It is only defined for the two binary categories; for
// anything else it returns "".
func Lhs(s string) string {
	f, ok := parseBinary(s)
	if !ok {
		return ""
	}
	return f.Left.String()
}

// Con returns the main connective of s ("&", "\/" or "->"). It is only
// defined for the two binary categories; for anything else it returns "".
func Con(s string) string {
	f, ok := parseBinary(s)
	if !ok {
		return ""
	}
	return f.Conn
}

// Rhs returns the right operand of s's main connective, serialized back
// to surface syntax. It is only defined for the two binary categories;
// for anything else it returns "".
func Rhs(s string) string {
	f, ok := parseBinary(s)
	if !ok {
		return ""
	}
	return f.Right.String()
}

func parseBinary(s string) (*Formula, bool) {
	f, err := Parse(s)
	if err != nil || !f.IsBinary() {
		return nil, false
	}
	return f, true
}

// Parse builds the AST for s, or returns ErrNotAFormula if s matches
// neither grammar.
func Parse(s string) (*Formula, error) {
	if f, ok := parseProp(s); ok {
		return f, nil
	}
	if f, ok := parseFOL(s); ok {
		return f, nil
	}
	return nil, ErrNotAFormula
}

func parseProp(s string) (*Formula, bool) {
	if len(s) == 1 && propLetters[s[0]] {
		return &Formula{kind: propAtomNode, Name: s}, true
	}
	if strings.HasPrefix(s, "~") {
		sub, ok := parseProp(s[1:])
		if !ok {
			return nil, false
		}
		return &Formula{kind: propNegNode, Sub: sub}, true
	}
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		pos, clen, ok := findMainConnective(s)
		if !ok {
			return nil, false
		}
		left, lok := parseProp(s[1:pos])
		right, rok := parseProp(s[pos+clen : len(s)-1])
		if lok && rok {
			return &Formula{kind: propBinNode, Left: left, Right: right, Conn: s[pos : pos+clen]}, true
		}
	}
	return nil, false
}

func parseFOL(s string) (*Formula, bool) {
	if f, ok := parseFOLAtom(s); ok {
		return f, true
	}
	if strings.HasPrefix(s, "~") {
		sub, ok := parseFOL(s[1:])
		if !ok {
			return nil, false
		}
		return &Formula{kind: folNegNode, Sub: sub}, true
	}
	if len(s) >= 3 && (s[0] == 'A' || s[0] == 'E') && folVars[s[1]] {
		sub, ok := parseFOL(s[2:])
		if !ok {
			return nil, false
		}
		k := universalNode
		if s[0] == 'E' {
			k = existentialNode
		}
		return &Formula{kind: k, Var: s[1:2], Sub: sub}, true
	}
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		pos, clen, ok := findMainConnective(s)
		if !ok {
			return nil, false
		}
		left, lok := parseFOL(s[1:pos])
		right, rok := parseFOL(s[pos+clen : len(s)-1])
		if lok && rok {
			return &Formula{kind: folBinNode, Left: left, Right: right, Conn: s[pos : pos+clen]}, true
		}
	}
	return nil, false
}

// parseFOLAtom recognizes X(t,u) where X is a predicate letter and each
// of t, u is a variable in {x,y,z,w} or a witness name c<digits>.
func parseFOLAtom(s string) (*Formula, bool) {
	if len(s) < 6 {
		return nil, false
	}
	if !predLetters[s[0]] || s[1] != '(' || s[len(s)-1] != ')' {
		return nil, false
	}
	body := s[2 : len(s)-1]
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return nil, false
	}
	left, right := body[:comma], body[comma+1:]
	if !validTerm(left) || !validTerm(right) {
		return nil, false
	}
	return &Formula{kind: folAtomNode, Name: s[0:1], Arg1: left, Arg2: right}, true
}

func validTerm(t string) bool {
	if len(t) == 1 {
		return folVars[t[0]]
	}
	return isWitnessName(t)
}

func isWitnessName(t string) bool {
	if len(t) < 2 || t[0] != 'c' {
		return false
	}
	for i := 1; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return false
		}
	}
	return true
}

// findMainConnective scans s for the first depth-1 occurrence of one of
// the three binary connectives, where s is assumed to start with '(' and
// end with ')'. It reports the connective's start position and length.
func findMainConnective(s string) (pos int, connLen int, ok bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '&':
			if depth == 1 {
				return i, 1, true
			}
		case '-':
			if depth == 1 && i+1 < len(s) && s[i+1] == '>' {
				return i, 2, true
			}
		case '\\':
			if depth == 1 && i+1 < len(s) && s[i+1] == '/' {
				return i, 2, true
			}
		}
	}
	return 0, 0, false
}
