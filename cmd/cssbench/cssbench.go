package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tetratelabs/speculss"
	"github.com/tetratelabs/speculss/internal/csslex"
	"github.com/tetratelabs/speculss/internal/tojson"
)

// newRootCmd builds the cssbench command tree: scan a directory of .css
// files, lex each one both sequentially and speculatively, and report
// elapsed time for both plus the observed misprediction count.
//
// Usage mirrors the original Rust benchmark harness (src/testing/main.rs),
// which walked a sample-data directory and printed one timing line per
// file; here the output is CSV so it composes with other tools.
func newRootCmd() *cobra.Command {
	var partitions int
	var dump bool

	cmd := &cobra.Command{
		Use:   "cssbench <dir>",
		Short: "Benchmark sequential vs. speculative CSS tokenization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dump {
				return dumpTokens(cmd.OutOrStdout(), args[0])
			}
			return runBench(cmd.OutOrStdout(), args[0], partitions)
		},
	}

	cmd.Flags().IntVarP(&partitions, "partitions", "n", 4, "number of speculative partitions")
	cmd.Flags().BoolVar(&dump, "dump", false, "print pretty-JSON tokens for each file instead of timing CSV")
	if wasmHostCheckCmd != nil {
		cmd.AddCommand(wasmHostCheckCmd())
	}
	return cmd
}

// dumpTokens prints pretty-JSON token lists for every .css file under dir,
// one file at a time, matching original_source's to_json.rs pretty-print
// debugging mode that the distilled spec dropped (see SPEC_FULL.md
// "Supplemented features").
func dumpTokens(out io.Writer, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cssbench: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".css" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("cssbench: %w", err)
		}
		nodes := csslex.All(string(data))
		pretty, err := tojson.Pretty(nodes)
		if err != nil {
			return fmt.Errorf("cssbench: %w", err)
		}
		fmt.Fprintf(out, "# %s\n%s\n", e.Name(), pretty)
	}
	return nil
}

// wasmHostCheckCmd is set from wasmhost.go's init only when built with
// -tags withwasmhost; otherwise it stays nil and the subcommand is omitted.
var wasmHostCheckCmd func() *cobra.Command

// runBench prints one CSV row per .css file found directly under dir:
// name, seq_ms, par_ms, size_bytes, mispredicts.
func runBench(out io.Writer, dir string, partitions int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cssbench: %w", err)
	}

	rt := speculss.NewRuntimeWithConfig(speculss.NewConfig().WithPartitions(partitions))

	fmt.Fprintln(out, "name,seq_ms,par_ms,size_bytes,mispredicts")
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".css" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(out, "%s,ERROR,ERROR,0,0\n", e.Name())
			continue
		}
		text := string(data)

		seqStart := time.Now()
		rt.Tokenize(text)
		seqElapsed := time.Since(seqStart)

		parStart := time.Now()
		stats, _, err := rt.SpecTokenize(text)
		parElapsed := time.Since(parStart)
		if err != nil {
			fmt.Fprintf(out, "%s,%s,ERROR,%d,0\n", e.Name(), formatMillis(seqElapsed), len(data))
			continue
		}

		mispredicts := 0
		for _, m := range stats.Mispredictions {
			if m {
				mispredicts++
			}
		}

		fmt.Fprintf(out, "%s,%s,%s,%d,%d\n",
			e.Name(), formatMillis(seqElapsed), formatMillis(parElapsed), len(data), mispredicts)
	}
	return nil
}

func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Microseconds())/1000, 'f', 3, 64)
}
