// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepareinputs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/prepare-inputs/modules"
	"github.com/luxfi/prepare-inputs/serialize"
)

func TestModuleIsRegisteredOnInit(t *testing.T) {
	m, ok := modules.GetModule(ConfigKey)
	require.True(t, ok)
	require.Equal(t, ProgramAddress, m.Address)
	require.Same(t, PrepareInputsPrecompile, m.Contract)
}

func TestConfiguratorConfigureInstallsVerifyingKey(t *testing.T) {
	vk := testVerifyingKey(t)
	ic := make([][]byte, ICCount)
	for i, p := range vk.IC {
		enc := serialize.EncodeG1Affine(p)
		ic[i] = enc[:]
	}
	cfg := &Config{IC: ic}
	require.NoError(t, cfg.Verify(nil))

	c := &configurator{}
	require.NoError(t, c.Configure(nil, cfg, nil, nil))

	installed, err := PrepareInputsPrecompile.verifyingKey()
	require.NoError(t, err)
	require.True(t, installed.IC[0].X.Equal(vk.IC[0].X))
}
