// SPDX-License-Identifier: MIT

// Package progress is a best-effort "computing n..." indicator for long
// batch runs.
//
// Workers publish the input they start on a Tracker (one atomic store, never
// blocks). A Reporter samples the Tracker on its own ticker and redraws a
// single spinner line. Results never pass through this package, so a slow
// or absent terminal cannot delay them.
package progress

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// DefaultInterval is the redraw period of a Reporter.
const DefaultInterval = 120 * time.Millisecond

const clearLine = "\r\033[K"

// Tracker holds the most recently started input. Safe for concurrent use;
// the zero value reports nothing.
type Tracker struct {
	cur atomic.Uint64
	set atomic.Bool
}

// Set records n as the input currently being computed.
func (t *Tracker) Set(n uint64) {
	t.cur.Store(n)
	t.set.Store(true)
}

// Current returns the last value passed to Set and whether Set was called.
func (t *Tracker) Current() (uint64, bool) {
	if !t.set.Load() {
		return 0, false
	}

	return t.cur.Load(), true
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithInterval overrides DefaultInterval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(r *Reporter) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithFrames replaces the animation frames. An empty set is ignored.
func WithFrames(s spinner.Spinner) Option {
	return func(r *Reporter) {
		if len(s.Frames) > 0 {
			r.frames = s.Frames
		}
	}
}

// Reporter redraws "<frame> computing <n>..." on w until stopped.
type Reporter struct {
	w        io.Writer
	src      *Tracker
	interval time.Duration
	frames   []string
	style    lipgloss.Style

	stop chan struct{}
	done chan struct{}

	mu         sync.Mutex
	running    bool
	frameIndex int
}

// NewReporter returns a stopped Reporter drawing src onto w. Colors follow
// the capabilities of w, so a non-terminal w receives plain text.
func NewReporter(w io.Writer, src *Tracker, opts ...Option) *Reporter {
	r := &Reporter{
		w:        w,
		src:      src,
		interval: DefaultInterval,
		frames:   spinner.Dot.Frames,
		style:    lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color("6")),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Start launches the redraw loop. Calling Start on a running or already
// stopped Reporter does nothing.
func (r *Reporter) Start() {
	r.mu.Lock()
	if r.running || r.isClosed() {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.loop()
}

// Stop halts the loop, clears the line and waits for the goroutine to exit.
// Safe to call more than once.
func (r *Reporter) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stop)
	r.mu.Unlock()

	<-r.done
}

func (r *Reporter) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.done)

	for {
		select {
		case <-r.stop:
			_, _ = io.WriteString(r.w, clearLine)
			return
		case <-ticker.C:
			if line, ok := r.render(); ok {
				_, _ = io.WriteString(r.w, line)
			}
		}
	}
}

// render builds the next frame; false when nothing has been tracked yet.
func (r *Reporter) render() (string, bool) {
	n, ok := r.src.Current()
	if !ok {
		return "", false
	}
	frame := r.style.Render(r.frames[r.frameIndex])
	r.frameIndex = (r.frameIndex + 1) % len(r.frames)

	return fmt.Sprintf("%s%s computing %d...", clearLine, frame, n), true
}

// isClosed reports whether Stop already ran. Callers hold r.mu.
func (r *Reporter) isClosed() bool {
	select {
	case <-r.stop:
		return true
	default:
		return false
	}
}
