// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command prepareinputs-sim drives a fixed-size instruction program
// through prepareinputs.Execute against an in-memory account, the way a
// real host would dispatch one instruction per transaction, and reports
// how many instructions the full computation took.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/luxfi/prepare-inputs/contract"
	"github.com/luxfi/prepare-inputs/curve"
	"github.com/luxfi/prepare-inputs/prepareinputs"
)

func main() {
	scalars := flag.String("scalars", "1,2,3,4,5,6,7", "seven comma-separated public-input scalars")
	flag.Parse()

	vals, err := parseScalars(*scalars)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	vk := demoVerifyingKey()
	state := contract.NewMemoryState()
	addr := [32]byte{'d', 'e', 'm', 'o'}
	if err := state.SetAccountData(addr, make([]byte, prepareinputs.AccountLen)); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	precompile := prepareinputs.NewPrecompile(vk)
	program := prepareinputs.BuildFullProgram(vals)

	var totalGas uint64
	for i, ix := range program {
		gas := prepareinputs.RequiredGas(ix.Op)
		totalGas += gas
		if _, _, err := precompile.Run(state, [32]byte{}, addr, prepareinputs.EncodeInstruction(ix), gas, false); err != nil {
			fmt.Fprintf(os.Stderr, "instruction %d (%s) failed: %v\n", i, ix.Op, err)
			os.Exit(1)
		}
	}

	slab, err := state.GetAccountData(addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	acc, err := prepareinputs.Unpack(slab)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	gIC, err := acc.ICPoint(0)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	gx := gIC.X.Bytes()
	gy := gIC.Y.Bytes()
	fmt.Printf("instructions run: %d\n", len(program))
	fmt.Printf("total compute budget: %d\n", totalGas)
	fmt.Printf("g_ic.x = %x\n", gx)
	fmt.Printf("g_ic.y = %x\n", gy)
}

func parseScalars(csv string) ([prepareinputs.PairCount]curve.FrOuter, error) {
	var out [prepareinputs.PairCount]curve.FrOuter
	start := 0
	idx := 0
	for i := 0; i <= len(csv); i++ {
		if i == len(csv) || csv[i] == ',' {
			if idx >= prepareinputs.PairCount {
				return out, fmt.Errorf("expected exactly %d scalars", prepareinputs.PairCount)
			}
			var v uint64
			if _, err := fmt.Sscanf(csv[start:i], "%d", &v); err != nil {
				return out, fmt.Errorf("invalid scalar %q: %w", csv[start:i], err)
			}
			out[idx] = curve.FrOuterFromUint64(v)
			idx++
			start = i + 1
		}
	}
	if idx != prepareinputs.PairCount {
		return out, fmt.Errorf("expected exactly %d scalars, got %d", prepareinputs.PairCount, idx)
	}
	return out, nil
}

// demoVerifyingKey builds a fixed IC table from small multiples of the
// BN254 generator, standing in for a circuit's real trusted-setup output.
func demoVerifyingKey() *prepareinputs.VerifyingKey {
	gen := curve.G1Affine{X: curve.FqOne(), Y: curve.FqOne().Double()}
	ic := make([]curve.G1Affine, prepareinputs.ICCount)
	for k := range ic {
		var acc curve.G1Jac
		for i := 0; i <= k; i++ {
			curve.AddMixed(&acc, gen)
		}
		aff, err := acc.ToAffine()
		if err != nil {
			panic(err)
		}
		ic[k] = aff
	}
	vk, err := prepareinputs.NewVerifyingKeyFromSlice(ic)
	if err != nil {
		panic(err)
	}
	return vk
}
