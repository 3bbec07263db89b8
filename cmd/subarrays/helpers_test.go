package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// referenceLine is the output of a run with no arguments.
const referenceLine = "[[1], [1, 2], [1, 2, 3], [2], [2, 3], [3]]\n"

// result captures one invocation of run.
type result struct {
	code   int
	stdout string
	stderr string
}

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// runCmd invokes run with a background context and captures both streams.
func runCmd(t *testing.T, args ...string) result {
	t.Helper()
	return runCmdContext(t, context.Background(), args...)
}

// runCmdContext is runCmd with a caller-supplied context.
func runCmdContext(t *testing.T, ctx context.Context, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(ctx, args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}
