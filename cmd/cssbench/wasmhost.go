//go:build withwasmhost

package main

import (
	"fmt"
	"io"

	"github.com/bytecodealliance/wasmtime-go"
	"github.com/spf13/cobra"
	"github.com/wasmerio/wasmer-go/wasmer"
)

// newWasmHostCheckCmd adds a "wasmhost-check" subcommand, only compiled in
// with -tags withwasmhost. It constructs both wasmtime-go and wasmer-go
// engines/stores and tears them down, the same two constructors wazero's
// own vs/bench_fac_test.go uses (newWasmtimeForFacBench, newWasmerForFacBench)
// to cross-check against third-party wasm runtimes. There is no wasm
// binary in this repo for either engine to run — this lexer never
// compiles to wasm, nothing here is a wasm host — so the check is
// necessarily a construction smoke test: it proves the two runtimes
// referenced in go.mod actually link and initialize, rather than compare
// execution output.
func init() {
	wasmHostCheckCmd = newWasmHostCheckCmd
}

func newWasmHostCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wasmhost-check",
		Short: "Smoke-test the wasmtime-go and wasmer-go runtime bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wasmHostSmokeTest(cmd.OutOrStdout())
		},
	}
}

func wasmHostSmokeTest(out io.Writer) error {
	wasmerEngine := wasmer.NewEngine()
	wasmerStore := wasmer.NewStore(wasmerEngine)
	if wasmerStore == nil {
		return fmt.Errorf("wasmhost-check: wasmer.NewStore returned nil")
	}

	wasmtimeEngine := wasmtime.NewEngine()
	wasmtimeStore := wasmtime.NewStore(wasmtimeEngine)
	if wasmtimeStore == nil {
		return fmt.Errorf("wasmhost-check: wasmtime.NewStore returned nil")
	}

	fmt.Fprintln(out, "wasmer-go: ok")
	fmt.Fprintln(out, "wasmtime-go: ok")
	return nil
}
