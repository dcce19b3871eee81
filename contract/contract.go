// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract defines the host-integration surface a program built on
// top of prepareinputs is called through, mirroring the teacher monorepo's
// contract.StatefulPrecompiledContract interface and the StateDB it is
// handed at call time. Accounts here are keyed by a 32-byte program-scoped
// id rather than an EVM common.Address, since this domain has no EVM
// underneath it.
package contract

import (
	"errors"

	"github.com/luxfi/prepare-inputs/precompileconfig"
)

// ErrOutOfGas is returned when suppliedGas is less than RequiredGas(input).
var ErrOutOfGas = errors.New("contract: supplied compute budget is less than required")

// ErrWriteProtection is returned when a state-mutating instruction runs
// inside a read-only call.
var ErrWriteProtection = errors.New("contract: state-mutating instruction attempted in a read-only call")

// ErrAccountNotFound is returned by StateDB implementations that have no
// data stored under the requested id.
var ErrAccountNotFound = errors.New("contract: no account data stored for this id")

// StateDB is the persistence interface the host exposes for a program's
// accounts: durable byte slabs addressed by a 32-byte id, borrowed for the
// duration of one Run call and handed back via SetAccountData.
type StateDB interface {
	GetAccountData(id [32]byte) ([]byte, error)
	SetAccountData(id [32]byte, data []byte) error
}

// ConfigurationBlockContext is the slice of block metadata a
// Configurator.Configure call may need.
type ConfigurationBlockContext interface {
	Number() uint64
	Timestamp() uint64
}

// AccessibleState is the per-invocation host context handed to Run.
type AccessibleState interface {
	StateDB() StateDB
}

// StatefulPrecompiledContract is the interface a host-callable program
// satisfies.
type StatefulPrecompiledContract interface {
	Address() [32]byte
	RequiredGas(input []byte) uint64
	Run(accessibleState AccessibleState, caller, addr [32]byte, input []byte, suppliedGas uint64, readOnly bool) (ret []byte, remainingGas uint64, err error)
}

// Configurator wires a decoded Config into a running
// StatefulPrecompiledContract.
type Configurator interface {
	MakeConfig() precompileconfig.Config
	Configure(chainConfig precompileconfig.ChainConfig, cfg precompileconfig.Config, state StateDB, blockContext ConfigurationBlockContext) error
}
