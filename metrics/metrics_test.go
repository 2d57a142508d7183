// SPDX-License-Identifier: MIT
package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclovander/metrics"
)

func TestCollector_Observe(t *testing.T) {
	c := metrics.New()
	c.Workers.Set(4)
	c.ObserveComputed(10, 2*time.Millisecond, true)
	c.ObserveComputed(480, time.Second, false)
	c.ObserveSkipped()
	c.ObserveFailed()
	c.ObserveFailed()

	require.Equal(t, 2.0, testutil.ToFloat64(c.LinesTotal.WithLabelValues(metrics.ResultComputed)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.LinesTotal.WithLabelValues(metrics.ResultSkipped)))
	require.Equal(t, 2.0, testutil.ToFloat64(c.LinesTotal.WithLabelValues(metrics.ResultFailed)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.UnreliableTotal))
	require.Equal(t, 4.0, testutil.ToFloat64(c.Workers))

	n, err := testutil.GatherAndCount(c.Registry(), "cyclovander_compute_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCollector_Isolated(t *testing.T) {
	a, b := metrics.New(), metrics.New()
	a.ObserveSkipped()
	require.Zero(t, testutil.ToFloat64(b.LinesTotal.WithLabelValues(metrics.ResultSkipped)))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := metrics.New()
	c.ObserveComputed(4, time.Millisecond, true)

	path := filepath.Join(t.TempDir(), "cyclovander.prom")
	require.NoError(t, c.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	require.Contains(t, text, `cyclovander_batch_lines_total{result="computed"} 1`)
	require.True(t, strings.Contains(text, "# TYPE cyclovander_gram_dimension histogram"))

	require.Error(t, c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
