// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// generator returns the canonical BN254 G1 generator (1, 2).
func generator() G1Affine {
	return G1Affine{X: FqOne(), Y: FqOne().Double()}
}

func scalarMulAffine(t *testing.T, p G1Affine, scalar uint64) G1Jac {
	t.Helper()
	acc := G1Jac{}
	base := JacobianFromAffine(p)
	for i := 63; i >= 0; i-- {
		DoubleInPlace(&acc)
		if (scalar>>uint(i))&1 == 1 {
			AddJac(&acc, base)
		}
	}
	return acc
}

func TestDoubleInPlaceInfinityIsFixedPoint(t *testing.T) {
	p := G1Jac{}
	DoubleInPlace(&p)
	require.True(t, p.IsInfinity())
}

func TestAddMixedInfinityOperandIsNoop(t *testing.T) {
	g := JacobianFromAffine(generator())
	before := g
	AddMixed(&g, G1Affine{Infinity: true})
	require.True(t, before.X.Equal(g.X))
	require.True(t, before.Y.Equal(g.Y))
	require.True(t, before.Z.Equal(g.Z))
}

func TestAddMixedOntoInfinityLiftsOperand(t *testing.T) {
	var acc G1Jac
	AddMixed(&acc, generator())
	require.False(t, acc.IsInfinity())
	aff, err := acc.ToAffine()
	require.NoError(t, err)
	require.True(t, aff.X.Equal(generator().X))
	require.True(t, aff.Y.Equal(generator().Y))
}

func TestAddMixedDoublingCollisionMatchesDouble(t *testing.T) {
	g := JacobianFromAffine(generator())
	viaAdd := g
	aff, err := g.ToAffine()
	require.NoError(t, err)
	AddMixed(&viaAdd, aff)

	viaDouble := g
	DoubleInPlace(&viaDouble)

	gotAdd, err := viaAdd.ToAffine()
	require.NoError(t, err)
	gotDouble, err := viaDouble.ToAffine()
	require.NoError(t, err)
	require.True(t, gotAdd.X.Equal(gotDouble.X))
	require.True(t, gotAdd.Y.Equal(gotDouble.Y))
}

func TestAddJacAgreesWithScalarDoubling(t *testing.T) {
	g := generator()
	three := scalarMulAffine(t, g, 3)
	two := scalarMulAffine(t, g, 2)
	one := JacobianFromAffine(g)

	AddJac(&two, one)
	gotAff, err := two.ToAffine()
	require.NoError(t, err)
	wantAff, err := three.ToAffine()
	require.NoError(t, err)
	require.True(t, gotAff.X.Equal(wantAff.X))
	require.True(t, gotAff.Y.Equal(wantAff.Y))
}

func TestAddJacInfinityIdentities(t *testing.T) {
	g := JacobianFromAffine(generator())

	left := G1Jac{}
	AddJac(&left, g)
	gotAff, err := left.ToAffine()
	require.NoError(t, err)
	wantAff, err := g.ToAffine()
	require.NoError(t, err)
	require.True(t, gotAff.X.Equal(wantAff.X))

	right := g
	AddJac(&right, G1Jac{})
	gotAff, err = right.ToAffine()
	require.NoError(t, err)
	require.True(t, gotAff.X.Equal(wantAff.X))
}

func TestFqRoundTripBytes(t *testing.T) {
	v := FqOne().Double().Add(FqOne())
	b := v.Bytes()
	back, err := FqFromBytes(b)
	require.NoError(t, err)
	require.True(t, v.Equal(back))
}

func TestFqFromBytesRejectsNonCanonical(t *testing.T) {
	var max [32]byte
	for i := range max {
		max[i] = 0xff
	}
	_, err := FqFromBytes(max)
	require.ErrorIs(t, err, ErrNotCanonical)
}

func TestFqInverseOfZeroFails(t *testing.T) {
	_, err := FqZero().Inverse()
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestFrOuterBitsBEZeroIsAllZeroBits(t *testing.T) {
	bits := FrOuterZero().BitsBE()
	for _, b := range bits {
		require.False(t, b)
	}
}

func TestFrOuterBitsBEOneIsTrailingBitOnly(t *testing.T) {
	bits := FrOuterFromUint64(1).BitsBE()
	for i := 0; i < 255; i++ {
		require.False(t, bits[i])
	}
	require.True(t, bits[255])
}
