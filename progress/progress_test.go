// SPDX-License-Identifier: MIT
package progress_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclovander/progress"
)

// syncBuffer guards bytes.Buffer: the Reporter writes from its own goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestTracker(t *testing.T) {
	var tr progress.Tracker
	_, ok := tr.Current()
	require.False(t, ok, "zero Tracker reports nothing")

	tr.Set(0)
	n, ok := tr.Current()
	require.True(t, ok)
	require.Zero(t, n)

	tr.Set(105)
	n, _ = tr.Current()
	require.Equal(t, uint64(105), n)
}

func TestTracker_Concurrent(t *testing.T) {
	var tr progress.Tracker
	var wg sync.WaitGroup
	for w := uint64(1); w <= 8; w++ {
		wg.Add(1)
		go func(w uint64) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				tr.Set(w)
			}
		}(w)
	}
	wg.Wait()
	n, ok := tr.Current()
	require.True(t, ok)
	require.True(t, n >= 1 && n <= 8)
}

func TestReporter_DrawsAndClears(t *testing.T) {
	var (
		out syncBuffer
		tr  progress.Tracker
	)
	r := progress.NewReporter(&out, &tr,
		progress.WithInterval(time.Millisecond),
		progress.WithFrames(spinner.Line),
	)
	r.Start()
	r.Start() // idempotent

	tr.Set(1155)
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "computing 1155...")
	}, 2*time.Second, time.Millisecond)

	r.Stop()
	r.Stop() // idempotent
	require.True(t, strings.HasSuffix(out.String(), "\r\033[K"), "Stop clears the line")

	written := out.String()
	r.Start() // a stopped Reporter stays stopped
	time.Sleep(5 * time.Millisecond)
	require.Equal(t, written, out.String())
}

func TestReporter_SilentUntilTracked(t *testing.T) {
	var (
		out syncBuffer
		tr  progress.Tracker
	)
	r := progress.NewReporter(&out, &tr, progress.WithInterval(time.Millisecond), nil)
	r.Start()
	time.Sleep(10 * time.Millisecond)
	r.Stop()
	require.Equal(t, "\r\033[K", out.String())
}
