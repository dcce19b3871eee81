// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"bytes"
	"errors"

	"github.com/luxfi/prepare-inputs/contract"
	"github.com/luxfi/prepare-inputs/curve"
	"github.com/luxfi/prepare-inputs/modules"
	"github.com/luxfi/prepare-inputs/precompileconfig"
	"github.com/luxfi/prepare-inputs/serialize"
)

// ConfigKey identifies this program's configuration in the modules
// registry.
const ConfigKey = "prepareInputsConfig"

// Module bundles the precompile, its address, and its Configurator for
// modules.RegisterModule, mirroring zk/module.go's Module variable.
var Module = modules.Module{
	ConfigKey:    ConfigKey,
	Address:      ProgramAddress,
	Contract:     PrepareInputsPrecompile,
	Configurator: &configurator{},
}

func init() {
	if err := modules.RegisterModule(Module); err != nil {
		panic(err)
	}
}

type configurator struct{}

// MakeConfig returns a zero-value Config for the host to unmarshal into.
func (*configurator) MakeConfig() precompileconfig.Config { return &Config{} }

// Configure decodes cfg's IC table into a VerifyingKey and installs it on
// the running precompile singleton.
func (*configurator) Configure(
	_ precompileconfig.ChainConfig,
	cfg precompileconfig.Config,
	_ contract.StateDB,
	_ contract.ConfigurationBlockContext,
) error {
	c, ok := cfg.(*Config)
	if !ok {
		return errors.New("prepareinputs: unexpected config type for prepareInputsConfig")
	}
	ic := make([]curve.G1Affine, len(c.IC))
	for i, enc := range c.IC {
		p, err := serialize.DecodeG1Affine(enc)
		if err != nil {
			return err
		}
		ic[i] = p
	}
	vk, err := NewVerifyingKeyFromSlice(ic)
	if err != nil {
		return err
	}
	PrepareInputsPrecompile.setVerifyingKey(vk)
	return nil
}

// Config is prepareinputs' on-chain configuration: an activation envelope
// plus the verifying key's eight 64-byte encoded IC points.
type Config struct {
	Upgrade precompileconfig.Upgrade `json:"upgrade,omitempty"`
	IC      [][]byte                 `json:"ic"`
}

// Key returns this config's registry key.
func (c *Config) Key() string { return ConfigKey }

// Timestamp returns the activation timestamp from the embedded Upgrade.
func (c *Config) Timestamp() *uint64 { return c.Upgrade.Timestamp() }

// IsDisabled reports whether the embedded Upgrade disables this program.
func (c *Config) IsDisabled() bool { return c.Upgrade.Disable }

// Equal reports whether two configs activate the same program with the
// same IC table.
func (c *Config) Equal(other precompileconfig.Config) bool {
	o, ok := other.(*Config)
	if !ok {
		return false
	}
	if !c.Upgrade.Equal(&o.Upgrade) {
		return false
	}
	if len(c.IC) != len(o.IC) {
		return false
	}
	for i := range c.IC {
		if !bytes.Equal(c.IC[i], o.IC[i]) {
			return false
		}
	}
	return true
}

// Verify checks the IC table has exactly ICCount points before this
// config is ever handed to Configure, so a misconfigured deployment fails
// at config-verify time rather than at first instruction.
func (c *Config) Verify(_ precompileconfig.ChainConfig) error {
	if len(c.IC) != ICCount {
		return ErrMalformedVerifyingKey
	}
	for _, enc := range c.IC {
		if _, err := serialize.DecodeG1Affine(enc); err != nil {
			return err
		}
	}
	return nil
}
