// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// FrOuter is a public-input scalar: an element of BN254's scalar field,
// the base field of the embedded Edwards curve the original reference
// implementation calls the "outer" curve's Fq.
type FrOuter struct {
	inner fr.Element
}

// FrOuterZero returns the additive identity.
func FrOuterZero() FrOuter { return FrOuter{} }

// FrOuterFromUint64 builds a scalar from a small integer, used to derive
// deterministic test fixtures without fabricating raw field-element bytes.
func FrOuterFromUint64(v uint64) FrOuter {
	var f FrOuter
	f.inner.SetUint64(v)
	return f
}

// Sub returns a-b.
func (a FrOuter) Sub(b FrOuter) FrOuter {
	var r FrOuter
	r.inner.Sub(&a.inner, &b.inner)
	return r
}

// Bytes returns the 32-byte little-endian canonical encoding (spec.md
// §4.2).
func (a FrOuter) Bytes() [32]byte {
	be := a.inner.Bytes()
	var le [32]byte
	for i := range le {
		le[i] = be[31-i]
	}
	return le
}

// FrOuterFromBytes decodes a 32-byte little-endian canonical encoding,
// rejecting values that are not strictly less than the scalar field
// modulus.
func FrOuterFromBytes(b [32]byte) (FrOuter, error) {
	var be [32]byte
	for i := range be {
		be[i] = b[31-i]
	}
	v := new(big.Int).SetBytes(be[:])
	if v.Cmp(fr.Modulus()) >= 0 {
		return FrOuter{}, ErrNotCanonical
	}
	var f FrOuter
	f.inner.SetBigInt(v)
	return f, nil
}

// BitsBE returns the scalar's 256-bit big-endian representation, matching
// BitIteratorBE<BigInteger256> in the reference implementation: index 0 is
// the most significant bit of the fixed 256-bit width, regardless of how
// many of those leading bits are zero.
func (a FrOuter) BitsBE() [256]bool {
	var v big.Int
	a.inner.ToBigIntRegular(&v)

	var buf [32]byte
	v.FillBytes(buf[:])

	var bits [256]bool
	for i := 0; i < 256; i++ {
		byteIdx := i / 8
		bitIdx := uint(7 - i%8)
		bits[i] = (buf[byteIdx]>>bitIdx)&1 == 1
	}
	return bits
}
