// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"encoding/binary"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/luxfi/prepare-inputs/curve"
	"github.com/luxfi/prepare-inputs/serialize"
)

// AccountLen is the total size of the persistent byte slab this core reads
// and writes, matching PrepareInputsState::LEN in the reference
// implementation.
const AccountLen = 3900

// Byte offsets of every named range in the slab (spec.md §6). Pair ranges
// are derived in pairOffsets rather than listed individually.
const (
	offIsInitialized           = 0
	offFoundRoot               = 1
	offFoundNullifier          = 2
	offExecutedWithdraw        = 3
	offSigningAddress          = 4
	offRelayerRefund           = offSigningAddress + 32          // 36
	offToAddress               = offRelayerRefund + 8            // 44
	offAmount                  = offToAddress + 32                // 76
	offNullifierHash           = offAmount + 8                    // 84
	offRootHash                = offNullifierHash + 32            // 116
	offDataHash                = offRootHash + 32                 // 148
	offTxIntegrityHash         = offDataHash + 32                 // 180
	offCurrentInstructionIndex = offTxIntegrityHash + 32          // 212
	offPairsStart              = offCurrentInstructionIndex + 8   // 220
	pairStride                 = 96                                // 32-byte scalar + 64-byte point
	offResX                    = offPairsStart + PairCount*pairStride // 892
	offResY                    = offResX + 32
	offResZ                    = offResY + 32
	offGICX                    = offResZ + 32
	offGICY                    = offGICX + 32
	offGICZ                    = offGICY + 32 // 1052
	offUnused                  = offGICZ + 32
	unusedLen                  = 2432
	offProofAndNullifiers      = offUnused + unusedLen // 3516
	proofAndNullifiersLen      = 384
)

// Bit indices into the 20-bit changed_variables mask, in i_1,x_1,...,i_7,
// x_7,res_x,res_y,res_z,g_ic_x,g_ic_y,g_ic_z order.
const (
	bitResX = 2 * PairCount
	bitResY = bitResX + 1
	bitResZ = bitResY + 1
	bitGICX = bitResZ + 1
	bitGICY = bitGICX + 1
	bitGICZ = bitGICY + 1
)

func bitScalar(pairIndex int) uint { return uint(2 * pairIndex) }
func bitICPoint(pairIndex int) uint { return uint(2*pairIndex + 1) }

// Bit indices into the 12-bit changed_constants mask.
const (
	constFoundRoot = iota
	constFoundNullifier
	constExecutedWithdraw
	constSigningAddress
	constRelayerRefund
	constToAddress
	constAmount
	constNullifierHash
	constRootHash
	constDataHash
	constTxIntegrityHash
	constProofAndNullifiers
)

// Pair holds one (scalar, IC point) range pair's raw encoding.
type Pair struct {
	I [32]byte
	X [64]byte
}

// Account is the decoded form of the persistent slab: the fields the core
// reads and writes, the pass-through fields it only round-trips, and the
// dirty-bit masks that let Pack write back only what changed.
type Account struct {
	IsInitialized bool

	FoundRoot        byte
	FoundNullifier   byte
	ExecutedWithdraw byte
	SigningAddress   [32]byte
	RelayerRefund    [8]byte
	ToAddress        [32]byte
	Amount           [8]byte
	NullifierHash    [32]byte
	RootHash         [32]byte
	DataHash         [32]byte
	TxIntegrityHash  [32]byte

	CurrentInstructionIndex uint64

	Pairs [PairCount]Pair

	ResX, ResY, ResZ [32]byte
	GICX, GICY, GICZ [32]byte

	// Unused is never read or written by this core; it is preserved
	// byte-for-byte because Pack only ever writes into the caller's own
	// buffer and never touches this range.
	Unused [unusedLen]byte
	// ProofAndNullifiers is a pass-through field the rest of a real
	// verifier reads and writes; this core exposes it and its dirty bit
	// through SetProofAndNullifiers but never sets that bit itself.
	ProofAndNullifiers [proofAndNullifiersLen]byte

	changedVariables *bitset.BitSet
	changedConstants *bitset.BitSet
}

// Unpack decodes a fixed-length slab into an Account. It never validates
// field elements eagerly — scalars and points are decoded lazily by the
// instruction that needs them, matching maths_instruction's decode-on-use
// style in the reference implementation.
func Unpack(data []byte) (*Account, error) {
	if len(data) != AccountLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrDecode, AccountLen, len(data))
	}

	a := &Account{
		IsInitialized:    true,
		changedVariables: bitset.New(2*PairCount + 6),
		changedConstants: bitset.New(constProofAndNullifiers + 1),
	}

	a.FoundRoot = data[offFoundRoot]
	a.FoundNullifier = data[offFoundNullifier]
	a.ExecutedWithdraw = data[offExecutedWithdraw]
	copy(a.SigningAddress[:], data[offSigningAddress:offSigningAddress+32])
	copy(a.RelayerRefund[:], data[offRelayerRefund:offRelayerRefund+8])
	copy(a.ToAddress[:], data[offToAddress:offToAddress+32])
	copy(a.Amount[:], data[offAmount:offAmount+8])
	copy(a.NullifierHash[:], data[offNullifierHash:offNullifierHash+32])
	copy(a.RootHash[:], data[offRootHash:offRootHash+32])
	copy(a.DataHash[:], data[offDataHash:offDataHash+32])
	copy(a.TxIntegrityHash[:], data[offTxIntegrityHash:offTxIntegrityHash+32])

	a.CurrentInstructionIndex = binary.LittleEndian.Uint64(data[offCurrentInstructionIndex : offCurrentInstructionIndex+8])

	for k := 0; k < PairCount; k++ {
		io, xo := pairOffsets(k)
		copy(a.Pairs[k].I[:], data[io:io+32])
		copy(a.Pairs[k].X[:], data[xo:xo+64])
	}

	copy(a.ResX[:], data[offResX:offResX+32])
	copy(a.ResY[:], data[offResY:offResY+32])
	copy(a.ResZ[:], data[offResZ:offResZ+32])
	copy(a.GICX[:], data[offGICX:offGICX+32])
	copy(a.GICY[:], data[offGICY:offGICY+32])
	copy(a.GICZ[:], data[offGICZ:offGICZ+32])

	copy(a.Unused[:], data[offUnused:offUnused+unusedLen])
	copy(a.ProofAndNullifiers[:], data[offProofAndNullifiers:offProofAndNullifiers+proofAndNullifiersLen])

	return a, nil
}

func pairOffsets(pairIndex int) (iOffset, xOffset int) {
	io := offPairsStart + pairIndex*pairStride
	return io, io + 32
}

// Pack writes every dirty range back into dst, which must be the same
// AccountLen-byte buffer the Account was unpacked from (or an equally
// sized buffer the caller intends to replace it with). Ranges that were
// never mutated since Unpack are left byte-identical to whatever dst
// already holds there, so an aborted instruction whose Pack is never
// called leaves no partial trace and Unused is never touched at all.
// current_instruction_index and is_initialized are always written,
// matching the reference implementation's unconditional writes for those
// two fields.
func (a *Account) Pack(dst []byte) error {
	if len(dst) != AccountLen {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrDecode, AccountLen, len(dst))
	}

	dst[offIsInitialized] = 1
	binary.LittleEndian.PutUint64(dst[offCurrentInstructionIndex:offCurrentInstructionIndex+8], a.CurrentInstructionIndex)

	for k := 0; k < PairCount; k++ {
		io, xo := pairOffsets(k)
		if a.changedVariables.Test(bitScalar(k)) {
			copy(dst[io:io+32], a.Pairs[k].I[:])
		}
		if a.changedVariables.Test(bitICPoint(k)) {
			copy(dst[xo:xo+64], a.Pairs[k].X[:])
		}
	}
	if a.changedVariables.Test(bitResX) {
		copy(dst[offResX:offResX+32], a.ResX[:])
	}
	if a.changedVariables.Test(bitResY) {
		copy(dst[offResY:offResY+32], a.ResY[:])
	}
	if a.changedVariables.Test(bitResZ) {
		copy(dst[offResZ:offResZ+32], a.ResZ[:])
	}
	if a.changedVariables.Test(bitGICX) {
		copy(dst[offGICX:offGICX+32], a.GICX[:])
	}
	if a.changedVariables.Test(bitGICY) {
		copy(dst[offGICY:offGICY+32], a.GICY[:])
	}
	if a.changedVariables.Test(bitGICZ) {
		copy(dst[offGICZ:offGICZ+32], a.GICZ[:])
	}

	if a.changedConstants.Test(constFoundRoot) {
		dst[offFoundRoot] = a.FoundRoot
	}
	if a.changedConstants.Test(constFoundNullifier) {
		dst[offFoundNullifier] = a.FoundNullifier
	}
	if a.changedConstants.Test(constExecutedWithdraw) {
		dst[offExecutedWithdraw] = a.ExecutedWithdraw
	}
	if a.changedConstants.Test(constSigningAddress) {
		copy(dst[offSigningAddress:offSigningAddress+32], a.SigningAddress[:])
	}
	if a.changedConstants.Test(constRelayerRefund) {
		copy(dst[offRelayerRefund:offRelayerRefund+8], a.RelayerRefund[:])
	}
	if a.changedConstants.Test(constToAddress) {
		copy(dst[offToAddress:offToAddress+32], a.ToAddress[:])
	}
	if a.changedConstants.Test(constAmount) {
		copy(dst[offAmount:offAmount+8], a.Amount[:])
	}
	if a.changedConstants.Test(constNullifierHash) {
		copy(dst[offNullifierHash:offNullifierHash+32], a.NullifierHash[:])
	}
	if a.changedConstants.Test(constRootHash) {
		copy(dst[offRootHash:offRootHash+32], a.RootHash[:])
	}
	if a.changedConstants.Test(constDataHash) {
		copy(dst[offDataHash:offDataHash+32], a.DataHash[:])
	}
	if a.changedConstants.Test(constTxIntegrityHash) {
		copy(dst[offTxIntegrityHash:offTxIntegrityHash+32], a.TxIntegrityHash[:])
	}
	if a.changedConstants.Test(constProofAndNullifiers) {
		copy(dst[offProofAndNullifiers:offProofAndNullifiers+proofAndNullifiersLen], a.ProofAndNullifiers[:])
	}

	a.changedVariables.ClearAll()
	a.changedConstants.ClearAll()
	return nil
}

// Scalar decodes the public-input scalar of pair k.
func (a *Account) Scalar(k int) (curve.FrOuter, error) {
	return serialize.DecodeFr(a.Pairs[k].I[:])
}

// SetScalar encodes and marks dirty the scalar of pair k.
func (a *Account) SetScalar(k int, s curve.FrOuter) {
	a.Pairs[k].I = serialize.EncodeFr(s)
	a.changedVariables.Set(bitScalar(k))
}

// ICPoint decodes the IC point of pair k.
func (a *Account) ICPoint(k int) (curve.G1Affine, error) {
	return serialize.DecodeG1Affine(a.Pairs[k].X[:])
}

// SetICPoint encodes and marks dirty the IC point of pair k.
func (a *Account) SetICPoint(k int, p curve.G1Affine) {
	a.Pairs[k].X = serialize.EncodeG1Affine(p)
	a.changedVariables.Set(bitICPoint(k))
}

// Res decodes the per-scalar Jacobian accumulator.
func (a *Account) Res() (curve.G1Jac, error) {
	return decodeJacTriple(a.ResX, a.ResY, a.ResZ)
}

// SetRes encodes and marks dirty the per-scalar Jacobian accumulator. All
// three coordinate ranges are always written together: no operation in
// this core ever mutates res one coordinate at a time.
func (a *Account) SetRes(p curve.G1Jac) {
	a.ResX, a.ResY, a.ResZ = encodeJacTriple(p)
	a.changedVariables.Set(bitResX)
	a.changedVariables.Set(bitResY)
	a.changedVariables.Set(bitResZ)
}

// GIC decodes the running MSM total.
func (a *Account) GIC() (curve.G1Jac, error) {
	return decodeJacTriple(a.GICX, a.GICY, a.GICZ)
}

// SetGIC encodes and marks dirty the running MSM total. During the two
// affine-normalization instructions the stored triple is not a true
// Jacobian point (see AffineNormalize1); SetGIC is still the right way to
// write it back, since the dirty bits and byte ranges are identical.
func (a *Account) SetGIC(p curve.G1Jac) {
	a.GICX, a.GICY, a.GICZ = encodeJacTriple(p)
	a.changedVariables.Set(bitGICX)
	a.changedVariables.Set(bitGICY)
	a.changedVariables.Set(bitGICZ)
}

// SetProofAndNullifiers lets a caller composing this core into a larger
// verifier update the pass-through proof/nullifier region and flip its
// dirty bit; the prepare-inputs core itself never calls this.
func (a *Account) SetProofAndNullifiers(b [proofAndNullifiersLen]byte) {
	a.ProofAndNullifiers = b
	a.changedConstants.Set(constProofAndNullifiers)
}

func encodeJacTriple(p curve.G1Jac) (x, y, z [32]byte) {
	enc := serialize.EncodeG1Jacobian(p)
	copy(x[:], enc[0:32])
	copy(y[:], enc[32:64])
	copy(z[:], enc[64:96])
	return x, y, z
}

func decodeJacTriple(x, y, z [32]byte) (curve.G1Jac, error) {
	var buf [96]byte
	copy(buf[0:32], x[:])
	copy(buf[32:64], y[:])
	copy(buf[64:96], z[:])
	return serialize.DecodeG1Jacobian(buf[:])
}
