// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/prepare-inputs/curve"
)

// bn254Generator returns the canonical BN254 G1 generator (1, 2), used to
// derive small deterministic test points without fabricating raw
// field-element byte literals.
func bn254Generator() curve.G1Affine {
	return curve.G1Affine{X: curve.FqOne(), Y: curve.FqOne().Double()}
}

// scalarMulGenerator computes scalar * bn254Generator via double-and-add,
// returning an affine point.
func scalarMulGenerator(t *testing.T, scalar uint64) curve.G1Affine {
	t.Helper()
	var acc curve.G1Jac
	gen := bn254Generator()
	for i := 63; i >= 0; i-- {
		curve.DoubleInPlace(&acc)
		if (scalar>>uint(i))&1 == 1 {
			curve.AddMixed(&acc, gen)
		}
	}
	aff, err := acc.ToAffine()
	require.NoError(t, err)
	return aff
}

// testVerifyingKey builds a VerifyingKey whose IC[k] = (k+1)*generator,
// for k in 0..7 — small, deterministic, and distinct.
func testVerifyingKey(t *testing.T) *VerifyingKey {
	t.Helper()
	var ic [ICCount]curve.G1Affine
	for k := 0; k < ICCount; k++ {
		ic[k] = scalarMulGenerator(t, uint64(k+1))
	}
	vk, err := NewVerifyingKeyFromSlice(ic[:])
	require.NoError(t, err)
	return vk
}

// blankAccount returns an Account decoded from a freshly zeroed slab, the
// starting state a host hands this core for a brand-new request.
func blankAccount(t *testing.T) *Account {
	t.Helper()
	acc, err := Unpack(make([]byte, AccountLen))
	require.NoError(t, err)
	return acc
}

// referenceMSM computes g_ic the direct way: IC[0] + sum(scalar_k *
// IC[k+1]), independent of the checkpointed instruction machinery, as the
// ground truth the staged computation is checked against.
func referenceMSM(t *testing.T, vk *VerifyingKey, scalars [PairCount]curve.FrOuter) curve.G1Affine {
	t.Helper()
	gic := curve.JacobianFromAffine(vk.IC[0])
	for k := 0; k < PairCount; k++ {
		bits := scalars[k].BitsBE()
		var term curve.G1Jac
		for _, bit := range bits {
			curve.DoubleInPlace(&term)
			if bit {
				curve.AddMixed(&term, vk.IC[k+1])
			}
		}
		curve.AddJac(&gic, term)
	}
	aff, err := gic.ToAffine()
	require.NoError(t, err)
	return aff
}

// runProgram drives acc through every instruction in prog against vk,
// failing the test on the first error.
func runProgram(t *testing.T, acc *Account, vk *VerifyingKey, prog []Instruction) {
	t.Helper()
	for _, ix := range prog {
		require.NoError(t, Execute(acc, vk, ix))
	}
}
