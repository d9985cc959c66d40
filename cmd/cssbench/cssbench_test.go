package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunBench(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("a { color: red }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.css"), []byte(".b::before { content: \"x\" }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not css"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runBench(&out, dir, 2))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, "name,seq_ms,par_ms,size_bytes,mispredicts", lines[0])
	require.Len(t, lines, 3) // header + a.css + b.css, ignored.txt skipped

	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 5)
	}
}

func TestRunBenchMissingDir(t *testing.T) {
	var out bytes.Buffer
	err := runBench(&out, filepath.Join(t.TempDir(), "nope"), 4)
	require.Error(t, err)
}

func TestDoMain(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("a {}"), 0o644))

	var stdOut, stdErr bytes.Buffer
	code := doMain([]string{dir}, &stdOut, &stdErr)
	require.Equal(t, 0, code)
	require.Contains(t, stdOut.String(), "a.css")
}

func TestDoMainMissingArgs(t *testing.T) {
	var stdOut, stdErr bytes.Buffer
	code := doMain(nil, &stdOut, &stdErr)
	require.Equal(t, 1, code)
}

func TestDumpTokens(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("a { color: red }"), 0o644))

	var out bytes.Buffer
	require.NoError(t, dumpTokens(&out, dir))

	text := out.String()
	require.Contains(t, text, "# a.css")
	require.Contains(t, text, `"ident"`)
	require.Contains(t, text, "color")
}

func TestDoMainDumpFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("a {}"), 0o644))

	var stdOut, stdErr bytes.Buffer
	code := doMain([]string{"--dump", dir}, &stdOut, &stdErr)
	require.Equal(t, 0, code)
	require.Contains(t, stdOut.String(), "# a.css")
}
