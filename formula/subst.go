package formula

// Subst returns the formula obtained from f by replacing every free
// occurrence of variable v with constant c. It is capture-avoiding: a
// quantifier that rebinds v stops the recursion, leaving its operand
// untouched, the same way schema.InstantiateDef stops descending once a
// nested definition shadows a parameter of the same name.
func Subst(f *Formula, v, c string) *Formula {
	switch f.kind {
	case propAtomNode:
		return f
	case folAtomNode:
		arg1, arg2 := f.Arg1, f.Arg2
		if arg1 == v {
			arg1 = c
		}
		if arg2 == v {
			arg2 = c
		}
		if arg1 == f.Arg1 && arg2 == f.Arg2 {
			return f
		}
		return &Formula{kind: folAtomNode, Name: f.Name, Arg1: arg1, Arg2: arg2}
	case propNegNode, folNegNode:
		return &Formula{kind: f.kind, Sub: Subst(f.Sub, v, c)}
	case universalNode, existentialNode:
		if f.Var == v {
			return f
		}
		return &Formula{kind: f.kind, Var: f.Var, Sub: Subst(f.Sub, v, c)}
	case propBinNode, folBinNode:
		return &Formula{kind: f.kind, Conn: f.Conn, Left: Subst(f.Left, v, c), Right: Subst(f.Right, v, c)}
	default:
		return f
	}
}
