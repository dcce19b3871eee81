// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"fmt"

	"github.com/luxfi/prepare-inputs/curve"
)

// InitPairs is the input initializer (spec.md §4.3). It checkpoints the
// seven public-input scalars and the verifying key's IC[1..7] points into
// the account, and seeds g_ic from IC[0].
func InitPairs(acc *Account, vk *VerifyingKey, publicInputs [PairCount]curve.FrOuter) error {
	if vk == nil {
		return ErrMalformedVerifyingKey
	}

	acc.SetGIC(curve.JacobianFromAffine(vk.IC[0]))
	for k := 0; k < PairCount; k++ {
		acc.SetScalar(k, publicInputs[k])
		acc.SetICPoint(k, vk.IC[k+1])
	}
	return nil
}

// ResetRes seeds the per-scalar accumulator with the point at infinity
// (spec.md §4.4), run once immediately before a scalar's bit unrolling.
func ResetRes(acc *Account) {
	acc.SetRes(curve.G1Jac{})
}

// BitStep processes four consecutive bit positions of pairIndex's scalar
// starting at currentIndex (spec.md §4.5): each position either performs
// no group operation (still inside the scalar's stripped leading zeroes)
// or doubles the accumulator and conditionally adds the pair's IC point.
func BitStep(acc *Account, pairIndex, currentIndex int) error {
	if pairIndex < 0 || pairIndex >= PairCount {
		return ErrInvalidPairIndex
	}
	if currentIndex < 0 || currentIndex > 252 || currentIndex%4 != 0 {
		return ErrInvalidBitIndex
	}

	res, err := acc.Res()
	if err != nil {
		return err
	}
	x, err := acc.ICPoint(pairIndex)
	if err != nil {
		return err
	}
	scalar, err := acc.Scalar(pairIndex)
	if err != nil {
		return err
	}

	bits := scalar.BitsBE()
	skipped := 0
	for skipped < len(bits) && !bits[skipped] {
		skipped++
	}

	for m := 0; m < 4; m++ {
		indexIn := currentIndex + m
		if indexIn >= skipped {
			curve.DoubleInPlace(&res)
			if bits[indexIn] {
				curve.AddMixed(&res, x)
			}
		}
	}

	acc.SetRes(res)
	return nil
}

// FoldGIC adds the completed per-scalar accumulator into the running MSM
// total (spec.md §4.6), run once per scalar after its 64 bit_step
// instructions complete.
func FoldGIC(acc *Account) error {
	gic, err := acc.GIC()
	if err != nil {
		return err
	}
	res, err := acc.Res()
	if err != nil {
		return err
	}
	curve.AddJac(&gic, res)
	acc.SetGIC(gic)
	return nil
}

// AffineNormalize1 is the first of two instructions that convert the final
// Jacobian g_ic into affine form (spec.md §4.7). It performs the single
// field inversion the conversion needs and repacks (x, y, 1/z) into the
// g_ic slot as a scratch checkpoint — not itself a Jacobian point — for
// AffineNormalize2 to finish. Fails with ErrZeroAccumulator if g_ic is the
// point at infinity, since a zero MSM result cannot be normalized.
func AffineNormalize1(acc *Account) error {
	gic, err := acc.GIC()
	if err != nil {
		return err
	}
	if gic.Z.IsZero() {
		return ErrZeroAccumulator
	}
	zinv, err := gic.Z.Inverse()
	if err != nil {
		return ErrZeroAccumulator
	}
	acc.SetGIC(curve.G1Jac{X: gic.X, Y: gic.Y, Z: zinv})
	return nil
}

// AffineNormalize2 finishes the conversion AffineNormalize1 started and
// overwrites the first pair's IC-point range with the resulting affine
// point — the value a downstream pairing check consumes as the prepared
// input.
func AffineNormalize2(acc *Account) error {
	scratch, err := acc.GIC()
	if err != nil {
		return err
	}
	zinv := scratch.Z
	zinv2 := zinv.Square()
	zinv3 := zinv2.Mul(zinv)
	acc.SetICPoint(0, curve.G1Affine{
		X: scratch.X.Mul(zinv2),
		Y: scratch.Y.Mul(zinv3),
	})
	return nil
}

// Execute applies exactly one instruction to acc: the pure (state, inputs)
// -> state' core every host-callable wrapper (contract.go's Run) sits on
// top of.
func Execute(acc *Account, vk *VerifyingKey, ix Instruction) error {
	switch ix.Op {
	case OpInitPairs:
		return InitPairs(acc, vk, ix.PublicInputs)
	case OpResetRes:
		ResetRes(acc)
		return nil
	case OpBitStep:
		return BitStep(acc, ix.PairIndex, ix.CurrentIndex)
	case OpFoldGIC:
		return FoldGIC(acc)
	case OpAffineNormalize1:
		return AffineNormalize1(acc)
	case OpAffineNormalize2:
		return AffineNormalize2(acc)
	default:
		return fmt.Errorf("prepareinputs: unknown opcode %d", ix.Op)
	}
}
