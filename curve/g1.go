// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

// G1Affine is a BN254 G1 point in affine coordinates.
type G1Affine struct {
	X, Y     Fq
	Infinity bool
}

// G1Jac is a BN254 G1 point in Jacobian coordinates, x=X/Z^2, y=Y/Z^3.
// Z == 0 encodes the point at infinity.
type G1Jac struct {
	X, Y, Z Fq
}

// IsInfinity reports whether p is the point at infinity.
func (p G1Jac) IsInfinity() bool { return p.Z.IsZero() }

// JacobianFromAffine lifts an affine point into Jacobian coordinates.
func JacobianFromAffine(q G1Affine) G1Jac {
	if q.Infinity {
		return G1Jac{}
	}
	return G1Jac{X: q.X, Y: q.Y, Z: FqOne()}
}

// ToAffine normalizes p back to affine coordinates in a single step,
// failing for the point at infinity. This is the one-shot reference used
// to check the two-phase normalization (AffineNormalize1/2) against.
func (p G1Jac) ToAffine() (G1Affine, error) {
	if p.Z.IsZero() {
		return G1Affine{}, ErrNotInvertible
	}
	zinv, err := p.Z.Inverse()
	if err != nil {
		return G1Affine{}, err
	}
	zinv2 := zinv.Square()
	zinv3 := zinv2.Mul(zinv)
	return G1Affine{X: p.X.Mul(zinv2), Y: p.Y.Mul(zinv3)}, nil
}

// DoubleInPlace doubles p using the dbl-2007-bl formulas (EFD), the same
// ones gnark-crypto's code-generation template emits for Jacobian Double.
func DoubleInPlace(p *G1Jac) {
	if p.Z.IsZero() {
		return
	}
	xx := p.X.Square()
	yy := p.Y.Square()
	yyyy := yy.Square()
	zz := p.Z.Square()

	s := p.X.Add(yy)
	s = s.Square().Sub(xx).Sub(yyyy).Double()

	m := xx.Double().Add(xx)

	newZ := p.Z.Add(p.Y).Square().Sub(yy).Sub(zz)

	newX := m.Square().Sub(s.Double())
	newY := s.Sub(newX).Mul(m).Sub(yyyy.Double().Double().Double())

	p.X, p.Y, p.Z = newX, newY, newZ
}

// AddMixed adds the affine point q into the Jacobian accumulator p using
// the madd-2007-bl formulas, handling both operands' points at infinity
// and the doubling-collision case exactly as spec.md §4.1 requires.
func AddMixed(p *G1Jac, q G1Affine) {
	if q.Infinity {
		return
	}
	if p.Z.IsZero() {
		p.X, p.Y, p.Z = q.X, q.Y, FqOne()
		return
	}

	z1z1 := p.Z.Square()
	u2 := q.X.Mul(z1z1)
	s2 := q.Y.Mul(p.Z).Mul(z1z1)

	if p.X.Equal(u2) && p.Y.Equal(s2) {
		DoubleInPlace(p)
		return
	}

	h := u2.Sub(p.X)
	hh := h.Square()
	i := hh.Double().Double()
	j := h.Mul(i)
	r := s2.Sub(p.Y).Double()
	v := p.X.Mul(i)

	newX := r.Square().Sub(j).Sub(v).Sub(v)
	newY := r.Mul(v.Sub(newX)).Sub(p.Y.Mul(j).Double())
	newZ := p.Z.Add(h).Square().Sub(z1z1).Sub(hh)

	p.X, p.Y, p.Z = newX, newY, newZ
}

// AddJac adds the Jacobian point q into the Jacobian accumulator p using
// the add-2007-bl formulas, the full-Jacobian counterpart to AddMixed used
// to fold a scalar's partial MSM result into the running g_ic.
func AddJac(p *G1Jac, q G1Jac) {
	if p.Z.IsZero() {
		*p = q
		return
	}
	if q.Z.IsZero() {
		return
	}

	z1z1 := p.Z.Square()
	z2z2 := q.Z.Square()
	u1 := p.X.Mul(z2z2)
	u2 := q.X.Mul(z1z1)
	s1 := p.Y.Mul(q.Z).Mul(z2z2)
	s2 := q.Y.Mul(p.Z).Mul(z1z1)

	if u1.Equal(u2) && s1.Equal(s2) {
		DoubleInPlace(p)
		return
	}

	h := u2.Sub(u1)
	i := h.Double().Square()
	j := h.Mul(i)
	r := s2.Sub(s1).Double()
	v := u1.Mul(i)

	newX := r.Square().Sub(j).Sub(v).Sub(v)
	newY := r.Mul(v.Sub(newX)).Sub(s1.Mul(j).Double())
	newZ := p.Z.Add(q.Z).Square().Sub(z1z1).Sub(z2z2).Mul(h)

	p.X, p.Y, p.Z = newX, newY, newZ
}
