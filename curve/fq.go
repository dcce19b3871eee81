// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve implements the BN254 field and group primitives the
// prepare-inputs MSM is built from: the base field Fq, the outer scalar
// field FrOuter used to encode public inputs, and G1 in both affine and
// Jacobian coordinates with the fixed add-2007-bl addition/doubling
// formulas. Field arithmetic is backed by gnark-crypto's Montgomery-form
// bn254 element types, the same dependency AlexandreBelling-gnark-crypto
// and anupsv-BBSplus-signatures build their own curve code on.
package curve

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// ErrNotInvertible is returned by Fq.Inverse for the zero element.
var ErrNotInvertible = errors.New("curve: zero has no multiplicative inverse")

// ErrNotCanonical is returned when decoding a byte range whose integer
// value is not strictly less than the field modulus.
var ErrNotCanonical = errors.New("curve: encoded value is not a canonical field element")

// Fq is an element of the BN254 base field.
type Fq struct {
	inner fp.Element
}

// FqZero returns the additive identity.
func FqZero() Fq { return Fq{} }

// FqOne returns the multiplicative identity.
func FqOne() Fq {
	var f Fq
	f.inner.SetOne()
	return f
}

// Add returns a+b.
func (a Fq) Add(b Fq) Fq {
	var r Fq
	r.inner.Add(&a.inner, &b.inner)
	return r
}

// Sub returns a-b.
func (a Fq) Sub(b Fq) Fq {
	var r Fq
	r.inner.Sub(&a.inner, &b.inner)
	return r
}

// Mul returns a*b.
func (a Fq) Mul(b Fq) Fq {
	var r Fq
	r.inner.Mul(&a.inner, &b.inner)
	return r
}

// Square returns a*a.
func (a Fq) Square() Fq {
	var r Fq
	r.inner.Square(&a.inner)
	return r
}

// Double returns a+a.
func (a Fq) Double() Fq {
	var r Fq
	r.inner.Double(&a.inner)
	return r
}

// Neg returns -a.
func (a Fq) Neg() Fq {
	var r Fq
	r.inner.Neg(&a.inner)
	return r
}

// IsZero reports whether a is the additive identity.
func (a Fq) IsZero() bool { return a.inner.IsZero() }

// Equal reports whether a and b represent the same field element.
func (a Fq) Equal(b Fq) bool { return a.inner.Equal(&b.inner) }

// Inverse returns a^-1, failing when a is zero (spec.md §4.1).
func (a Fq) Inverse() (Fq, error) {
	if a.inner.IsZero() {
		return Fq{}, ErrNotInvertible
	}
	var r Fq
	r.inner.Inverse(&a.inner)
	return r, nil
}

// Bytes returns the 32-byte little-endian canonical encoding (spec.md
// §4.2): gnark-crypto encodes big-endian, so the bytes are reversed.
func (a Fq) Bytes() [32]byte {
	be := a.inner.Bytes()
	var le [32]byte
	for i := range le {
		le[i] = be[31-i]
	}
	return le
}

// FqFromBytes decodes a 32-byte little-endian canonical encoding, rejecting
// values that are not strictly less than the field modulus.
func FqFromBytes(b [32]byte) (Fq, error) {
	var be [32]byte
	for i := range be {
		be[i] = b[31-i]
	}
	v := new(big.Int).SetBytes(be[:])
	if v.Cmp(fp.Modulus()) >= 0 {
		return Fq{}, ErrNotCanonical
	}
	var f Fq
	f.inner.SetBigInt(v)
	return f, nil
}
