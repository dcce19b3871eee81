// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package modules is a registry of host-callable programs, adapted from
// the teacher's modules.RegisterModule but keyed on a 32-byte program id
// instead of an EVM common.Address, and without the reserved-address-range
// arbitration the teacher needs to keep dozens of sibling EVM precompiles
// from colliding in one shared address space — a concern that doesn't
// apply to a single-program repo.
package modules

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/luxfi/prepare-inputs/contract"
)

// Module bundles a program's identity, its callable contract, and the
// Configurator that wires runtime parameters (the verifying key, for
// prepareinputs) into it.
type Module struct {
	ConfigKey    string
	Address      [32]byte
	Contract     contract.StatefulPrecompiledContract
	Configurator contract.Configurator
}

var registeredModules = make([]Module, 0)

// RegisterModule adds m to the registry, rejecting a config key or address
// already claimed by a previously registered module.
func RegisterModule(m Module) error {
	for _, r := range registeredModules {
		if r.ConfigKey == m.ConfigKey {
			return fmt.Errorf("modules: config key %q already registered", m.ConfigKey)
		}
		if r.Address == m.Address {
			return fmt.Errorf("modules: address %x already registered", m.Address)
		}
	}
	registeredModules = insertSortedByAddress(registeredModules, m)
	return nil
}

// GetModuleByAddress looks up a registered module by its program address.
func GetModuleByAddress(addr [32]byte) (Module, bool) {
	for _, m := range registeredModules {
		if m.Address == addr {
			return m, true
		}
	}
	return Module{}, false
}

// GetModule looks up a registered module by its config key.
func GetModule(key string) (Module, bool) {
	for _, m := range registeredModules {
		if m.ConfigKey == key {
			return m, true
		}
	}
	return Module{}, false
}

// RegisteredModules returns every module registered so far, sorted by
// address.
func RegisteredModules() []Module {
	out := make([]Module, len(registeredModules))
	copy(out, registeredModules)
	return out
}

func insertSortedByAddress(data []Module, m Module) []Module {
	data = append(data, m)
	sort.Sort(moduleArray(data))
	return data
}

type moduleArray []Module

func (m moduleArray) Len() int           { return len(m) }
func (m moduleArray) Less(i, j int) bool { return bytes.Compare(m[i].Address[:], m[j].Address[:]) < 0 }
func (m moduleArray) Swap(i, j int)      { m[i], m[j] = m[j], m[i] }
