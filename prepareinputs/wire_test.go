// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/prepare-inputs/curve"
)

func TestEncodeDecodeInstructionRoundTrip(t *testing.T) {
	cases := []Instruction{
		{Op: OpResetRes, PairIndex: 3},
		{Op: OpBitStep, PairIndex: 5, CurrentIndex: 96},
		{Op: OpFoldGIC, PairIndex: 6},
		{Op: OpAffineNormalize1},
		{Op: OpAffineNormalize2},
	}
	for _, ix := range cases {
		encoded := EncodeInstruction(ix)
		decoded, err := DecodeInstruction(encoded)
		require.NoError(t, err)
		require.Equal(t, ix.Op, decoded.Op)
		require.Equal(t, ix.PairIndex, decoded.PairIndex)
		require.Equal(t, ix.CurrentIndex, decoded.CurrentIndex)
	}
}

func TestEncodeDecodeInitPairsRoundTrip(t *testing.T) {
	var scalars [PairCount]curve.FrOuter
	for k := range scalars {
		scalars[k] = curve.FrOuterFromUint64(uint64(k + 1))
	}
	ix := Instruction{Op: OpInitPairs, PublicInputs: scalars}

	decoded, err := DecodeInstruction(EncodeInstruction(ix))
	require.NoError(t, err)
	require.Equal(t, OpInitPairs, decoded.Op)
	for k := range scalars {
		require.Equal(t, scalars[k].Bytes(), decoded.PublicInputs[k].Bytes())
	}
}

func TestDecodeInstructionRejectsShortInput(t *testing.T) {
	_, err := DecodeInstruction([]byte{0x01, 0x02})
	require.ErrorIs(t, err, ErrDecode)
}

func TestDecodeInstructionRejectsWrongLengthInitPairs(t *testing.T) {
	buf := make([]byte, wireInitPairsLen-1)
	buf[0] = byte(OpInitPairs)
	_, err := DecodeInstruction(buf)
	require.ErrorIs(t, err, ErrDecode)
}
