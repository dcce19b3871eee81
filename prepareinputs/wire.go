// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/prepare-inputs/curve"
)

// Instruction wire layout, the opaque byte blob a host dispatcher passes
// as Run's input: [op(1)][pairIndex(1)][currentIndex(2 LE)][scalars...].
// Only OpInitPairs uses the trailing scalar block; only OpBitStep uses
// currentIndex; OpResetRes and OpFoldGIC carry pairIndex on the wire, but
// Execute does not read it for them.
const (
	wireOpOffset           = 0
	wirePairIndexOffset    = 1
	wireCurrentIndexOffset = 2
	wireFixedLen           = 4
	wireScalarsLen         = PairCount * 32
	wireInitPairsLen       = wireFixedLen + wireScalarsLen
)

// EncodeInstruction serializes ix into the fixed wire format Run decodes.
func EncodeInstruction(ix Instruction) []byte {
	if ix.Op == OpInitPairs {
		buf := make([]byte, wireInitPairsLen)
		buf[wireOpOffset] = byte(ix.Op)
		for k := 0; k < PairCount; k++ {
			enc := ix.PublicInputs[k].Bytes()
			copy(buf[wireFixedLen+k*32:wireFixedLen+(k+1)*32], enc[:])
		}
		return buf
	}

	buf := make([]byte, wireFixedLen)
	buf[wireOpOffset] = byte(ix.Op)
	buf[wirePairIndexOffset] = byte(ix.PairIndex)
	binary.LittleEndian.PutUint16(buf[wireCurrentIndexOffset:wireCurrentIndexOffset+2], uint16(ix.CurrentIndex))
	return buf
}

// DecodeInstruction parses the wire format EncodeInstruction produces.
func DecodeInstruction(input []byte) (Instruction, error) {
	if len(input) < wireFixedLen {
		return Instruction{}, fmt.Errorf("%w: instruction input shorter than %d bytes", ErrDecode, wireFixedLen)
	}
	op := Opcode(input[wireOpOffset])

	if op == OpInitPairs {
		if len(input) != wireInitPairsLen {
			return Instruction{}, fmt.Errorf("%w: init_pairs input must be %d bytes", ErrDecode, wireInitPairsLen)
		}
		var ix Instruction
		ix.Op = op
		for k := 0; k < PairCount; k++ {
			var arr [32]byte
			copy(arr[:], input[wireFixedLen+k*32:wireFixedLen+(k+1)*32])
			s, err := curve.FrOuterFromBytes(arr)
			if err != nil {
				return Instruction{}, err
			}
			ix.PublicInputs[k] = s
		}
		return ix, nil
	}

	if len(input) != wireFixedLen {
		return Instruction{}, fmt.Errorf("%w: instruction input must be %d bytes", ErrDecode, wireFixedLen)
	}
	return Instruction{
		Op:           op,
		PairIndex:    int(input[wirePairIndexOffset]),
		CurrentIndex: int(binary.LittleEndian.Uint16(input[wireCurrentIndexOffset : wireCurrentIndexOffset+2])),
	}, nil
}
