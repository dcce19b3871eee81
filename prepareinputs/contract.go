// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"sync"

	"github.com/luxfi/prepare-inputs/contract"
)

// Compute-budget costs per opcode, proportioned the way spec.md §2 sizes
// each component: bit_step is by far the most expensive call since it is
// the MSM engine's inner loop and the entire reason the computation is
// split into checkpointed instructions at all.
const (
	GasInitPairs        = uint64(40_000)
	GasResetRes         = uint64(5_000)
	GasBitStep          = uint64(140_000)
	GasFoldGIC          = uint64(30_000)
	GasAffineNormalize1 = uint64(60_000)
	GasAffineNormalize2 = uint64(30_000)
)

// RequiredGas returns the compute budget an instruction of opcode op
// consumes.
func RequiredGas(op Opcode) uint64 {
	switch op {
	case OpInitPairs:
		return GasInitPairs
	case OpResetRes:
		return GasResetRes
	case OpBitStep:
		return GasBitStep
	case OpFoldGIC:
		return GasFoldGIC
	case OpAffineNormalize1:
		return GasAffineNormalize1
	case OpAffineNormalize2:
		return GasAffineNormalize2
	default:
		return 0
	}
}

// ProgramAddress identifies this program in the modules registry. It
// carries no EVM meaning; it's an opaque 32-byte program id in the same
// spirit as a Solana program id, since this core's host is account-based
// rather than EVM-based.
var ProgramAddress = [32]byte{'p', 'r', 'e', 'p', 'a', 'r', 'e', '-', 'i', 'n', 'p', 'u', 't', 's'}

// precompile is the host-callable wrapper around Execute, modeled on
// ring/contract.go's Run(accessibleState, caller, addr, input, suppliedGas,
// readOnly) shape. Its verifying key is set by configurator.Configure
// rather than fixed at construction, since VK provisioning belongs to the
// external collaborator deploying this program.
type precompile struct {
	mu sync.RWMutex
	vk *VerifyingKey
}

// PrepareInputsPrecompile is the singleton this package registers with
// modules.RegisterModule.
var PrepareInputsPrecompile = &precompile{}

// NewPrecompile builds a standalone host-callable wrapper around vk,
// bypassing the Config/Configurator machinery module.go wires the
// registered singleton through. Intended for embedding this core directly
// (tests, cmd/prepareinputs-sim) rather than through a modules-managed
// host.
func NewPrecompile(vk *VerifyingKey) contract.StatefulPrecompiledContract {
	p := &precompile{}
	p.setVerifyingKey(vk)
	return p
}

func (p *precompile) setVerifyingKey(vk *VerifyingKey) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vk = vk
}

func (p *precompile) verifyingKey() (*VerifyingKey, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.vk == nil {
		return nil, ErrMalformedVerifyingKey
	}
	return p.vk, nil
}

// Address returns the program's registry identity.
func (p *precompile) Address() [32]byte { return ProgramAddress }

// RequiredGas decodes just enough of input to report the opcode's cost.
func (p *precompile) RequiredGas(input []byte) uint64 {
	ix, err := DecodeInstruction(input)
	if err != nil {
		return 0
	}
	return RequiredGas(ix.Op)
}

// Run loads the account for addr from the host's StateDB, applies exactly
// one instruction, and writes the mutated account back. A readOnly call
// that decodes a state-mutating instruction fails before any Execute call,
// matching the EVM staticcall contract the teacher's Run signature carries
// over. A fatal Execute error is returned without ever calling Pack or
// SetAccountData, matching spec.md §6's "the host discards the whole
// transaction" contract for unrecoverable failures.
func (p *precompile) Run(
	accessibleState contract.AccessibleState,
	caller, addr [32]byte,
	input []byte,
	suppliedGas uint64,
	readOnly bool,
) ([]byte, uint64, error) {
	ix, err := DecodeInstruction(input)
	if err != nil {
		return nil, 0, err
	}

	required := RequiredGas(ix.Op)
	if suppliedGas < required {
		return nil, 0, contract.ErrOutOfGas
	}
	remaining := suppliedGas - required

	if readOnly {
		return nil, remaining, contract.ErrWriteProtection
	}

	vk, err := p.verifyingKey()
	if err != nil {
		return nil, remaining, err
	}

	state := accessibleState.StateDB()
	slab, err := state.GetAccountData(addr)
	if err != nil {
		return nil, remaining, err
	}

	acc, err := Unpack(slab)
	if err != nil {
		return nil, remaining, err
	}

	if err := Execute(acc, vk, ix); err != nil {
		return nil, remaining, err
	}

	if err := acc.Pack(slab); err != nil {
		return nil, remaining, err
	}
	if err := state.SetAccountData(addr, slab); err != nil {
		return nil, remaining, err
	}
	return nil, remaining, nil
}
