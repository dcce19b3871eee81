// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import "github.com/luxfi/prepare-inputs/curve"

// bitStepCount is the number of bit_step instructions needed to unroll a
// 256-bit scalar four bits at a time.
const bitStepCount = 256 / 4

// BuildScalarProgram encodes one scalar's dispatch contract (spec.md
// §4.5): reset_res, 64 bit_step instructions four bits apart, then fold.
func BuildScalarProgram(pairIndex int) []Instruction {
	prog := make([]Instruction, 0, bitStepCount+2)
	prog = append(prog, Instruction{Op: OpResetRes, PairIndex: pairIndex})
	for idx := 0; idx < 256; idx += 4 {
		prog = append(prog, Instruction{Op: OpBitStep, PairIndex: pairIndex, CurrentIndex: idx})
	}
	prog = append(prog, Instruction{Op: OpFoldGIC, PairIndex: pairIndex})
	return prog
}

// BuildFullProgram chains the initializer, every scalar's program in
// order, and the two-phase affine normalization: the complete instruction
// sequence a host dispatcher runs to take a freshly initialized account to
// a finished affine g_ic.
func BuildFullProgram(publicInputs [PairCount]curve.FrOuter) []Instruction {
	prog := []Instruction{{Op: OpInitPairs, PublicInputs: publicInputs}}
	for k := 0; k < PairCount; k++ {
		prog = append(prog, BuildScalarProgram(k)...)
	}
	prog = append(prog, Instruction{Op: OpAffineNormalize1}, Instruction{Op: OpAffineNormalize2})
	return prog
}
