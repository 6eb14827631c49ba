package tableau

import "github.com/avl42/tableau/formula"

// outcome reports what a single advance() pass did: whether it made
// progress, whether that progress split the branch in two, and whether
// it hit the witness cap on some quantifier along the way (which can
// happen even on a pass that otherwise makes no progress, since a
// capped quantifier is marked expanded without ending the scan).
type outcome struct {
	fired   bool
	split   bool
	left    *branch
	right   *branch
	hitCap  bool
}

// advance runs one scan pass over F, mirroring the reference driver's
// control flow exactly: it marks every literal, and every quantifier that
// is capped or has nothing left to instantiate, as expanded without
// ending the pass, but stops and reports progress as soon as it applies
// a genuine decomposition or branching rule.
func (b *branch) advance() outcome {
	var out outcome
	for i := 0; i < len(b.f); i++ {
		f := b.f[i]
		key := f.String()
		if _, ok := b.x[key]; ok {
			continue
		}
		if isLiteral(f) {
			b.x[key] = f
			continue
		}
		if isDoubleNegation(f) {
			b.x[key] = f
			b.f = append(b.f, f.Operand().Operand())
			out.fired = true
			return out
		}
		if f.IsNegation() {
			inner := f.Operand()
			switch {
			case inner.IsBinary():
				b.x[key] = f
				return b.expandNegatedBinary(out, f, inner)
			case inner.IsUniversal():
				b.x[key] = f
				b.f = append(b.f, formula.NewExistential(inner.Var, formula.NewNegation(true, inner.Operand())))
				out.fired = true
				return out
			case inner.IsExistential():
				b.x[key] = f
				b.f = append(b.f, formula.NewUniversal(inner.Var, formula.NewNegation(true, inner.Operand())))
				out.fired = true
				return out
			}
		}
		if f.IsBinary() {
			b.x[key] = f
			return b.expandBinary(out, f)
		}
		if f.IsExistential() {
			if b.n >= MaxConstants {
				b.x[key] = f
				out.hitCap = true
				continue
			}
			c := freshConstant(b.k, b.n)
			b.k = append(b.k, c)
			b.n++
			b.witnessReset()
			b.x[key] = f
			b.f = append(b.f, formula.Subst(f.Operand(), f.Var, c))
			out.fired = true
			return out
		}
		if f.IsUniversal() {
			next, stop := b.expandUniversal(f, key)
			if stop {
				continue
			}
			return next
		}
	}
	return out
}

// expandNegatedBinary implements the ~(φ∘ψ) rule: α-expansion for ~(φ->ψ)
// and ~(φ\/ψ), β-split for ~(φ&ψ).
func (b *branch) expandNegatedBinary(out outcome, f, inner *formula.Formula) outcome {
	fol := inner.FOL()
	switch inner.Conn {
	case formula.ConnAnd:
		left := b.clone()
		right := b.clone()
		left.f = append(left.f, formula.NewNegation(fol, inner.Left))
		right.f = append(right.f, formula.NewNegation(fol, inner.Right))
		out.fired, out.split, out.left, out.right = true, true, left, right
		return out
	case formula.ConnOr:
		b.f = append(b.f, formula.NewNegation(fol, inner.Left), formula.NewNegation(fol, inner.Right))
		out.fired = true
		return out
	case formula.ConnImp:
		b.f = append(b.f, inner.Left, formula.NewNegation(fol, inner.Right))
		out.fired = true
		return out
	default:
		out.fired = true
		return out
	}
}

// expandBinary implements the (φ∘ψ) rule: α-expansion for φ&ψ, β-split
// for φ\/ψ and φ->ψ.
func (b *branch) expandBinary(out outcome, f *formula.Formula) outcome {
	fol := f.FOL()
	switch f.Conn {
	case formula.ConnAnd:
		b.f = append(b.f, f.Left, f.Right)
		out.fired = true
		return out
	case formula.ConnOr:
		left := b.clone()
		right := b.clone()
		left.f = append(left.f, f.Left)
		right.f = append(right.f, f.Right)
		out.fired, out.split, out.left, out.right = true, true, left, right
		return out
	case formula.ConnImp:
		left := b.clone()
		right := b.clone()
		left.f = append(left.f, formula.NewNegation(fol, f.Left))
		right.f = append(right.f, f.Right)
		out.fired, out.split, out.left, out.right = true, true, left, right
		return out
	default:
		out.fired = true
		return out
	}
}

// expandUniversal implements the Aνψ rule: if no witness exists yet, mint
// one (subject to the cap) before instantiating; otherwise instantiate
// against every witness not yet recorded in this formula's ledger entry.
// stop reports that the scan should move to the next formula without
// treating this call as a fired rule (a capped or fully-instantiated
// universal behaves like a literal for the rest of this pass).
func (b *branch) expandUniversal(f *formula.Formula, key string) (out outcome, stop bool) {
	used := b.u[key]
	if used == nil {
		used = make(map[string]bool)
		b.u[key] = used
	}
	if len(b.k) == 0 {
		if b.n >= MaxConstants {
			b.x[key] = f
			out.hitCap = true
			return out, true
		}
		c := freshConstant(b.k, b.n)
		b.k = append(b.k, c)
		b.n++
		b.witnessReset()
	}
	addedAny := false
	for _, c := range b.k {
		if used[c] {
			continue
		}
		b.f = append(b.f, formula.Subst(f.Operand(), f.Var, c))
		used[c] = true
		addedAny = true
	}
	if addedAny {
		out.fired = true
		return out, false
	}
	b.x[key] = f
	return out, true
}
