// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package precompileconfig defines the configuration surface a
// host-integrated program exposes, mirroring the Config/Configurator split
// the teacher monorepo's per-module packages (e.g. zk/module.go) use to
// let a chain operator enable, disable, and parameterize a program without
// touching its code.
package precompileconfig

// ChainConfig exposes whatever host chain parameters a Config.Verify call
// needs to consult. This repo's own Config has nothing to check against
// the chain itself, but the parameter is part of the shape every
// Configurator.Configure/Config.Verify caller expects.
type ChainConfig interface{}

// Config is a single program's on-chain parameters: when it activates,
// whether it is disabled, and the program-specific payload a Configurator
// decodes.
type Config interface {
	Key() string
	Timestamp() *uint64
	IsDisabled() bool
	Equal(Config) bool
	Verify(chainConfig ChainConfig) error
}

// Upgrade is the activation/deactivation envelope every Config embeds.
type Upgrade struct {
	BlockTimestamp *uint64 `json:"blockTimestamp,omitempty"`
	Disable        bool    `json:"disable,omitempty"`
}

// Timestamp returns the block timestamp this upgrade activates at, if any.
func (u *Upgrade) Timestamp() *uint64 { return u.BlockTimestamp }

// Equal reports whether two Upgrade envelopes activate the same program
// the same way.
func (u *Upgrade) Equal(other *Upgrade) bool {
	if other == nil {
		return false
	}
	if u.Disable != other.Disable {
		return false
	}
	if (u.BlockTimestamp == nil) != (other.BlockTimestamp == nil) {
		return false
	}
	if u.BlockTimestamp != nil && *u.BlockTimestamp != *other.BlockTimestamp {
		return false
	}
	return true
}
