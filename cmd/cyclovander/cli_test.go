// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclovander/batch"
	"github.com/katalvlaran/cyclovander/config"
	"github.com/katalvlaran/cyclovander/cyclo"
)

// execute runs a fresh command tree and returns what it wrote to stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestGet(t *testing.T) {
	out, _, err := execute(t, "--trace", "get", "11")
	require.NoError(t, err)
	require.Equal(t, "20\n", out)

	out, _, err = execute(t, "get", "105")
	require.NoError(t, err)
	want, err := cyclo.ModeCond.Eval(105)
	require.NoError(t, err)
	require.Equal(t, want+"\n", out)

	out, _, err = execute(t, "get", "1")
	require.NoError(t, err)
	require.Equal(t, "1\n", out)
}

func TestGet_InvalidInput(t *testing.T) {
	for _, arg := range []string{"0", "abc", "1.5", "18446744073709551616"} {
		_, _, err := execute(t, "get", arg)
		require.ErrorIs(t, err, cyclo.ErrInvalidInput, arg)
	}

	_, _, err := execute(t, "get")
	require.Error(t, err, "missing argument")
}

func TestTable_TraceUnordered(t *testing.T) {
	path := writeInput(t, "11\nnot a number\n\n13\n0\n105\n")
	out, _, err := execute(t, "--trace", "table", path, "-t", "3")
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Equal(t, "n\tTr(H_n)", rows[0])
	body := rows[1:]
	sort.Strings(body)
	require.Equal(t, []string{"105\t1160", "11\t20", "13\t24"}, body)
}

func TestTable_CondOrdered(t *testing.T) {
	path := writeInput(t, "7\n5\n3\n2\n")
	out, _, err := execute(t, "table", path, "--threads", "4", "--ordered", "--memo", "-q")
	require.NoError(t, err)

	var want strings.Builder
	want.WriteString("n\tCond(V_n)\n")
	for _, n := range []uint64{7, 5, 3, 2} {
		v, err := cyclo.ModeCond.Eval(n)
		require.NoError(t, err)
		want.WriteString(strconv.FormatUint(n, 10) + "\t" + v + "\n")
	}
	require.Equal(t, want.String(), out)
}

func TestTable_MissingFile(t *testing.T) {
	_, _, err := execute(t, "table", filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, batch.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTable_InvalidThreads(t *testing.T) {
	path := writeInput(t, "3\n")
	for _, th := range []string{"0", "5000"} {
		_, _, err := execute(t, "table", path, "-t", th)
		require.ErrorIs(t, err, config.ErrConfig, th)
	}
}

func TestTable_MetricsFile(t *testing.T) {
	path := writeInput(t, "3\n5\nx\n")
	metricsPath := filepath.Join(t.TempDir(), "run.prom")
	_, _, err := execute(t, "--trace", "table", path, "--metrics-file", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `cyclovander_batch_lines_total{result="computed"} 2`)
	require.Contains(t, string(data), `cyclovander_batch_lines_total{result="skipped"} 1`)
}

func TestEnvironmentAndConfigFile(t *testing.T) {
	t.Setenv("CYCLOVANDER_MODE", "trace")
	out, _, err := execute(t, "get", "13")
	require.NoError(t, err)
	require.Equal(t, "24\n", out)

	t.Setenv("CYCLOVANDER_MODE", "")
	cfgPath := filepath.Join(t.TempDir(), "cyclovander.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("mode: trace\nlog-level: debug\n"), 0o600))
	out, logs, err := execute(t, "--config", cfgPath, "get", "7")
	require.NoError(t, err)
	require.Equal(t, "12\n", out)
	require.Contains(t, logs, "configuration loaded")
}

func TestShowSpinner(t *testing.T) {
	var buf bytes.Buffer
	require.False(t, showSpinner(false, &buf, &buf), "stderr is not a terminal")
	require.False(t, showSpinner(true, &buf, &buf))
}
