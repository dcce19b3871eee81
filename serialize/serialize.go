// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package serialize implements the fixed-width wire encodings the
// prepare-inputs account layout is built from: field elements, scalars,
// and G1 points in both affine and Jacobian coordinates (spec.md §4.2).
package serialize

import (
	"errors"

	"github.com/luxfi/prepare-inputs/curve"
)

// ErrLength is returned when a byte range handed to a decoder does not
// match the encoding's fixed width.
var ErrLength = errors.New("serialize: wrong byte length for this encoding")

// EncodeFq returns the 32-byte little-endian encoding of a.
func EncodeFq(a curve.Fq) [32]byte { return a.Bytes() }

// DecodeFq decodes a 32-byte little-endian encoding, rejecting values not
// strictly less than the base field modulus.
func DecodeFq(b []byte) (curve.Fq, error) {
	if len(b) != 32 {
		return curve.Fq{}, ErrLength
	}
	var arr [32]byte
	copy(arr[:], b)
	return curve.FqFromBytes(arr)
}

// EncodeFr returns the 32-byte little-endian encoding of a.
func EncodeFr(a curve.FrOuter) [32]byte { return a.Bytes() }

// DecodeFr decodes a 32-byte little-endian encoding, rejecting values not
// strictly less than the scalar field modulus.
func DecodeFr(b []byte) (curve.FrOuter, error) {
	if len(b) != 32 {
		return curve.FrOuter{}, ErrLength
	}
	var arr [32]byte
	copy(arr[:], b)
	return curve.FrOuterFromBytes(arr)
}

// EncodeG1Affine returns encode(x)||encode(y), 64 bytes. The infinity flag
// is never persisted: every affine point this core stores or produces
// (IC points, the final normalized g_ic) is a finite point by construction.
func EncodeG1Affine(p curve.G1Affine) [64]byte {
	var out [64]byte
	x := EncodeFq(p.X)
	y := EncodeFq(p.Y)
	copy(out[0:32], x[:])
	copy(out[32:64], y[:])
	return out
}

// DecodeG1Affine decodes a 64-byte encode(x)||encode(y) range.
func DecodeG1Affine(b []byte) (curve.G1Affine, error) {
	if len(b) != 64 {
		return curve.G1Affine{}, ErrLength
	}
	x, err := DecodeFq(b[0:32])
	if err != nil {
		return curve.G1Affine{}, err
	}
	y, err := DecodeFq(b[32:64])
	if err != nil {
		return curve.G1Affine{}, err
	}
	return curve.G1Affine{X: x, Y: y}, nil
}

// EncodeG1Jacobian returns encode(x)||encode(y)||encode(z), 96 bytes. z==0
// encodes the point at infinity.
func EncodeG1Jacobian(p curve.G1Jac) [96]byte {
	var out [96]byte
	x := EncodeFq(p.X)
	y := EncodeFq(p.Y)
	z := EncodeFq(p.Z)
	copy(out[0:32], x[:])
	copy(out[32:64], y[:])
	copy(out[64:96], z[:])
	return out
}

// DecodeG1Jacobian decodes a 96-byte encode(x)||encode(y)||encode(z) range.
func DecodeG1Jacobian(b []byte) (curve.G1Jac, error) {
	if len(b) != 96 {
		return curve.G1Jac{}, ErrLength
	}
	x, err := DecodeFq(b[0:32])
	if err != nil {
		return curve.G1Jac{}, err
	}
	y, err := DecodeFq(b[32:64])
	if err != nil {
		return curve.G1Jac{}, err
	}
	z, err := DecodeFq(b[64:96])
	if err != nil {
		return curve.G1Jac{}, err
	}
	return curve.G1Jac{X: x, Y: y, Z: z}, nil
}
