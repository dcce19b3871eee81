// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import "sync"

// MemoryState is a StateDB backed by an in-process map, standing in for a
// real host's persistent account store in tests and in cmd/prepareinputs-sim.
type MemoryState struct {
	mu   sync.Mutex
	data map[[32]byte][]byte
}

// NewMemoryState returns an empty MemoryState.
func NewMemoryState() *MemoryState {
	return &MemoryState{data: make(map[[32]byte][]byte)}
}

// GetAccountData returns a copy of the bytes stored under id.
func (m *MemoryState) GetAccountData(id [32]byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	out := make([]byte, len(d))
	copy(out, d)
	return out, nil
}

// SetAccountData stores a copy of data under id, overwriting any existing
// contents.
func (m *MemoryState) SetAccountData(id [32]byte, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[id] = cp
	return nil
}

// StateDB returns m itself, satisfying AccessibleState so MemoryState can
// be passed directly to StatefulPrecompiledContract.Run in tests.
func (m *MemoryState) StateDB() StateDB { return m }
