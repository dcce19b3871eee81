// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prepareinputs implements the staged, checkpointed computation of
// the Groth16 linear combination g_ic = IC[0] + sum(scalar_k * IC[k]) over
// BN254 G1, split into host-dispatched instructions small enough to fit a
// single transaction's compute budget.
package prepareinputs

import (
	"errors"

	"github.com/luxfi/prepare-inputs/curve"
)

// PairCount is the fixed number of (scalar, IC point) pairs this core
// accepts. Non-goal: no support for a variable number of public inputs.
const PairCount = 7

// ICCount is the fixed size of the verifying key's IC table: one more than
// PairCount, for IC[0].
const ICCount = PairCount + 1

// Fatal, unrecoverable errors a caller cannot make progress past (spec.md
// §7): the instruction that produced one must not be packed back.
var (
	ErrMalformedVerifyingKey = errors.New("prepareinputs: verifying key does not have exactly 8 IC points")
	ErrDecode                = errors.New("prepareinputs: account slab failed to decode")
	ErrZeroAccumulator       = errors.New("prepareinputs: g_ic is the point at infinity at affine normalization")
)

// Non-fatal argument errors, distinct from the account's own decode
// failures.
var (
	ErrInvalidPairIndex = errors.New("prepareinputs: pair index out of range")
	ErrInvalidBitIndex  = errors.New("prepareinputs: current_index out of range for bit_step")
)

// Opcode selects which of the six instruction variants Execute runs.
type Opcode uint8

const (
	OpInitPairs Opcode = iota
	OpResetRes
	OpBitStep
	OpFoldGIC
	OpAffineNormalize1
	OpAffineNormalize2
)

func (op Opcode) String() string {
	switch op {
	case OpInitPairs:
		return "init_pairs"
	case OpResetRes:
		return "reset_res"
	case OpBitStep:
		return "bit_step"
	case OpFoldGIC:
		return "fold_g_ic"
	case OpAffineNormalize1:
		return "affine_normalize_1"
	case OpAffineNormalize2:
		return "affine_normalize_2"
	default:
		return "unknown"
	}
}

// Instruction is one host-dispatched step: an opcode plus the operands
// that opcode needs. Unused fields are ignored by opcodes that don't need
// them.
type Instruction struct {
	Op           Opcode
	PairIndex    int
	CurrentIndex int
	PublicInputs [PairCount]curve.FrOuter
}
