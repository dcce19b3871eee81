// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import "github.com/luxfi/prepare-inputs/curve"

// VerifyingKey is the fixed IC table this core's linear combination runs
// against. Provisioning a real VerifyingKey (deriving it from a circuit's
// trusted setup) is out of scope; this repo only validates and consumes
// one a caller supplies.
type VerifyingKey struct {
	IC [ICCount]curve.G1Affine
}

// NewVerifyingKeyFromSlice builds a VerifyingKey from a caller-supplied IC
// table, failing with ErrMalformedVerifyingKey unless it has exactly
// ICCount points — the runtime counterpart of init_pairs_instruction's
// MalformedVerifyingKey panic in the reference implementation.
func NewVerifyingKeyFromSlice(ic []curve.G1Affine) (*VerifyingKey, error) {
	if len(ic) != ICCount {
		return nil, ErrMalformedVerifyingKey
	}
	vk := &VerifyingKey{}
	copy(vk.IC[:], ic)
	return vk, nil
}
