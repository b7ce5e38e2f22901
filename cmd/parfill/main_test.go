package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arloliu/parfill"
	"github.com/arloliu/parfill/internal/hash"
	"github.com/stretchr/testify/require"
)

// execute runs the command with args and an optional config file body.
func execute(t *testing.T, configYAML string, args ...string) (string, string, error) {
	t.Helper()

	env := map[string]string{}
	if configYAML != "" {
		path := filepath.Join(t.TempDir(), "parfill.yaml")
		require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))
		env[configEnv] = path
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr, func(key string) string { return env[key] })
	cmd.SetArgs(append([]string{}, args...)) // nil would fall back to os.Args
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func checksumLine(values []int) string {
	return fmt.Sprintf("Checksum: %016x\n", hash.Digest(values))
}

func TestRun_Modes(t *testing.T) {
	want := make([]int, 16)
	for i := range want {
		want[i] = i
	}

	for _, mode := range []string{"single", "multi"} {
		t.Run(mode, func(t *testing.T) {
			stdout, _, err := execute(t, "", "--thread="+mode, "16")
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(stdout, "Filling time: "))
			require.Regexp(t, `(?m)^Filling time: [0-9]+\.0{8}$`, stdout) // whole nanoseconds
			require.Contains(t, stdout, checksumLine(want))
		})
	}
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		kind error
	}{
		{"no arguments", nil, parfill.ErrMissingArgument},
		{"missing length", []string{"--thread=multi"}, parfill.ErrMissingArgument},
		{"extra argument", []string{"--thread=multi", "16", "17"}, parfill.ErrMissingArgument},
		{"unknown mode", []string{"--thread=dual", "16"}, parfill.ErrUnrecognizedMode},
		{"non-numeric length", []string{"--thread=single", "sixteen"}, parfill.ErrNonNumericLength},
		{"negative length", []string{"--thread=single", "-4"}, parfill.ErrNonNumericLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "", tt.args...)
			require.ErrorIs(t, err, tt.kind)
			require.ErrorIs(t, err, parfill.ErrValidation)
			require.Equal(t, exitUsage, exitCode(err))
			require.Empty(t, stdout)
		})
	}
}

func TestRun_LengthAboveMaximum(t *testing.T) {
	stdout, _, err := execute(t, "maxLength: 1024\n", "--thread=multi", "9223372036854775807")
	require.ErrorIs(t, err, parfill.ErrInvalidLength)
	require.NotErrorIs(t, err, parfill.ErrValidation)
	require.Equal(t, exitFailure, exitCode(err))
	require.Empty(t, stdout)

	_, _, err = execute(t, "", "--thread=single", "9223372036854775807")
	require.ErrorIs(t, err, parfill.ErrInvalidLength)
}

func TestRun_Config(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.txt")
	textfile := filepath.Join(dir, "fill.prom")

	cfg := fmt.Sprintf(`
workers: 3
strategy: chunked
source:
  kind: affine
  a: 2
  b: 1
logLevel: debug
verify: true
output: %s
metrics:
  namespace: harness
  textfile: %s
`, output, textfile)

	stdout, stderr, err := execute(t, cfg, "--thread=multi", "4")
	require.NoError(t, err)
	require.Contains(t, stdout, checksumLine([]int{1, 3, 5, 7}))
	require.Contains(t, stdout, "Verified: sequential fill matches")
	require.Contains(t, stderr, "fill completed")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "1 3 5 7 \n", string(data))

	prom, err := os.ReadFile(textfile)
	require.NoError(t, err)
	require.Contains(t, string(prom), `harness_fill_results_total{mode="multi",result="success"} 1`)
	require.Contains(t, string(prom), `harness_fill_results_total{mode="single",result="success"} 1`)
	require.Contains(t, string(prom), "harness_worker_count 2")
}

func TestRun_EmptyBuffer(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")

	stdout, _, err := execute(t, "output: "+output+"\n", "--thread=multi", "0")
	require.NoError(t, err)
	require.Contains(t, stdout, checksumLine(nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "\n", string(data))
}

func TestRun_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "strategy: round-robin\n", "--thread=multi", "16")
	require.ErrorIs(t, err, parfill.ErrInvalidConfig)
	require.Equal(t, exitFailure, exitCode(err))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, []string{"parfill", "--thread=multi", "4096"}, "", &stdout, &stderr)
	require.ErrorIs(t, err, parfill.ErrFillFailed)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, exitFailure, exitCode(err))
	require.Empty(t, stdout.String())
}

func TestWriteBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buf.txt")
	require.NoError(t, writeBuffer(path, []int{-3, 0, 42}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "-3 0 42 \n", string(data))

	err = writeBuffer(filepath.Join(t.TempDir(), "missing", "buf.txt"), []int{1})
	require.ErrorIs(t, err, os.ErrNotExist)
}
