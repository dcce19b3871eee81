// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/prepare-inputs/curve"
)

func TestEndToEndMatchesDirectMSM(t *testing.T) {
	vk := testVerifyingKey(t)
	scalars := [PairCount]curve.FrOuter{
		curve.FrOuterFromUint64(3),
		curve.FrOuterFromUint64(0),
		curve.FrOuterFromUint64(1),
		curve.FrOuterFromUint64(255),
		curve.FrOuterFromUint64(1 << 40),
		curve.FrOuterFromUint64(7),
		curve.FrOuterFromUint64(123456789),
	}

	acc := blankAccount(t)
	runProgram(t, acc, vk, BuildFullProgram(scalars))

	got, err := acc.ICPoint(0)
	require.NoError(t, err)
	want := referenceMSM(t, vk, scalars)
	require.True(t, got.X.Equal(want.X))
	require.True(t, got.Y.Equal(want.Y))
}

func TestAllZeroScalarsYieldsIC0(t *testing.T) {
	vk := testVerifyingKey(t)
	var scalars [PairCount]curve.FrOuter // all zero

	acc := blankAccount(t)
	runProgram(t, acc, vk, BuildFullProgram(scalars))

	got, err := acc.ICPoint(0)
	require.NoError(t, err)
	require.True(t, got.X.Equal(vk.IC[0].X))
	require.True(t, got.Y.Equal(vk.IC[0].Y))
}

func TestLeadingZeroStrippingIsInvariantToBitStepGranularity(t *testing.T) {
	vk := testVerifyingKey(t)
	var scalars [PairCount]curve.FrOuter
	scalars[2] = curve.FrOuterFromUint64(1) // top byte of the 256-bit width is all zero

	acc := blankAccount(t)
	runProgram(t, acc, vk, BuildFullProgram(scalars))

	got, err := acc.ICPoint(0)
	require.NoError(t, err)
	want := referenceMSM(t, vk, scalars)
	require.True(t, got.X.Equal(want.X))
	require.True(t, got.Y.Equal(want.Y))
}

func TestBitStepRejectsOutOfRangePairIndex(t *testing.T) {
	acc := blankAccount(t)
	err := BitStep(acc, PairCount, 0)
	require.ErrorIs(t, err, ErrInvalidPairIndex)
}

func TestBitStepRejectsMisalignedCurrentIndex(t *testing.T) {
	acc := blankAccount(t)
	err := BitStep(acc, 0, 3)
	require.ErrorIs(t, err, ErrInvalidBitIndex)
}

func TestFoldGICOfInfinityResIsNoop(t *testing.T) {
	acc := blankAccount(t)
	vk := testVerifyingKey(t)
	acc.SetGIC(curve.JacobianFromAffine(vk.IC[1]))
	before, err := acc.GIC()
	require.NoError(t, err)

	// res is still the point-at-infinity ResetRes seeds it with.
	ResetRes(acc)
	require.NoError(t, FoldGIC(acc))

	after, err := acc.GIC()
	require.NoError(t, err)
	require.True(t, before.X.Equal(after.X))
	require.True(t, before.Y.Equal(after.Y))
	require.True(t, before.Z.Equal(after.Z))
}

func TestFoldGICFromInfinityAdoptsRes(t *testing.T) {
	acc := blankAccount(t)
	vk := testVerifyingKey(t)
	acc.SetRes(curve.JacobianFromAffine(vk.IC[1]))

	require.NoError(t, FoldGIC(acc))

	gic, err := acc.GIC()
	require.NoError(t, err)
	aff, err := gic.ToAffine()
	require.NoError(t, err)
	require.True(t, aff.X.Equal(vk.IC[1].X))
	require.True(t, aff.Y.Equal(vk.IC[1].Y))
}

func TestAffineNormalizeZeroAccumulatorFails(t *testing.T) {
	acc := blankAccount(t)
	acc.SetGIC(curve.G1Jac{}) // point at infinity
	err := AffineNormalize1(acc)
	require.ErrorIs(t, err, ErrZeroAccumulator)
}

func TestTwoPhaseAffineMatchesOneShot(t *testing.T) {
	vk := testVerifyingKey(t)
	acc := blankAccount(t)
	gic := curve.JacobianFromAffine(vk.IC[3])
	curve.AddMixed(&gic, vk.IC[5])
	acc.SetGIC(gic)

	want, err := gic.ToAffine()
	require.NoError(t, err)

	require.NoError(t, AffineNormalize1(acc))
	require.NoError(t, AffineNormalize2(acc))

	got, err := acc.ICPoint(0)
	require.NoError(t, err)
	require.True(t, got.X.Equal(want.X))
	require.True(t, got.Y.Equal(want.Y))
}

func TestInitPairsRejectsNilVerifyingKey(t *testing.T) {
	acc := blankAccount(t)
	var scalars [PairCount]curve.FrOuter
	err := InitPairs(acc, nil, scalars)
	require.ErrorIs(t, err, ErrMalformedVerifyingKey)
}

func TestNewVerifyingKeyFromSliceRejectsWrongLength(t *testing.T) {
	_, err := NewVerifyingKeyFromSlice(make([]curve.G1Affine, ICCount-1))
	require.ErrorIs(t, err, ErrMalformedVerifyingKey)
}

func TestScalarAtGroupOrderMinusOne(t *testing.T) {
	vk := testVerifyingKey(t)
	var scalars [PairCount]curve.FrOuter
	// fr.Modulus()-1 is the largest scalar: BN254's scalar modulus is 254
	// bits wide, so only the two leading zero bits of the 256-bit width are
	// stripped.
	scalars[0] = curve.FrOuterZero().Sub(curve.FrOuterFromUint64(1))

	acc := blankAccount(t)
	runProgram(t, acc, vk, BuildFullProgram(scalars))

	got, err := acc.ICPoint(0)
	require.NoError(t, err)
	want := referenceMSM(t, vk, scalars)
	require.True(t, got.X.Equal(want.X))
	require.True(t, got.Y.Equal(want.Y))
}
