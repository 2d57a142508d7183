// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cyclovander/cyclo"
	"github.com/katalvlaran/cyclovander/metrics"
	"github.com/katalvlaran/cyclovander/progress"
)

// MaxLineBytes is the longest input line considered for parsing. Longer
// lines are skipped like any other malformed line.
const MaxLineBytes = 1 << 20

var (
	// ErrIO wraps failures reading the input stream.
	ErrIO = errors.New("batch: i/o failure")

	// ErrInvalidConfig is returned by New for a non-positive worker count.
	ErrInvalidConfig = errors.New("batch: invalid config")
)

// Config is fixed for the lifetime of a Runner.
type Config struct {
	Mode    cyclo.Mode // invariant to report
	Workers int        // pool size, ≥ 1
	Ordered bool       // emit in input order
	Header  bool       // write Mode.Header() before the first record
}

// Stats summarizes one Run.
type Stats struct {
	Read     int // lines read
	Computed int // records written
	Skipped  int // malformed lines
	Failed   int // valid inputs whose computation failed
	Elapsed  time.Duration
}

// LogValue groups the counters under one log attribute.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("read", s.Read),
		slog.Int("computed", s.Computed),
		slog.Int("skipped", s.Skipped),
		slog.Int("failed", s.Failed),
		slog.Duration("elapsed", s.Elapsed),
	)
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Default slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMemo shares m across workers so repeated inputs are computed once.
func WithMemo(m *cyclo.Memo) Option {
	return func(r *Runner) {
		if m != nil {
			r.trace = m.TraceH
		}
	}
}

// WithTraceFunc replaces the trace source. Mostly useful in tests.
func WithTraceFunc(fn cyclo.TraceFunc) Option {
	return func(r *Runner) {
		if fn != nil {
			r.trace = fn
		}
	}
}

// WithTracker publishes every input to t as its computation starts.
func WithTracker(t *progress.Tracker) Option {
	return func(r *Runner) { r.tracker = t }
}

// WithMetrics records per-line outcomes on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Runner) { r.metrics = c }
}

// Runner executes batches. It holds no per-run state and may be reused.
type Runner struct {
	cfg     Config
	log     *slog.Logger
	trace   cyclo.TraceFunc
	tracker *progress.Tracker
	metrics *metrics.Collector
}

// New validates cfg and returns a Runner.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: workers=%d, want >= 1", ErrInvalidConfig, cfg.Workers)
	}
	r := &Runner{
		cfg:   cfg,
		log:   slog.Default(),
		trace: cyclo.TraceH,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r, nil
}

// counters are shared by the workers of one Run.
type counters struct {
	computed atomic.Int64
	failed   atomic.Int64
}

// Run reads in to EOF, computes every valid input and writes the results to out.
//
// Implementation:
//   - Stage 1: write the header when configured.
//   - Stage 2: read lines on the calling goroutine; parse, skip or dispatch.
//     Over-long lines are skipped, never fatal.
//     errgroup.SetLimit blocks dispatch while Workers computations are running.
//   - Stage 3: wait for the pool, then resolve the error by priority:
//     sink write failure, then read failure (ErrIO), then ctx.
//
// Stats are valid even when an error is returned.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	start := time.Now()
	log := r.log.With(slog.String("run_id", uuid.NewString()))
	log.Info("batch started",
		slog.String("mode", r.cfg.Mode.String()),
		slog.Int("workers", r.cfg.Workers),
		slog.Bool("ordered", r.cfg.Ordered),
	)
	if r.metrics != nil {
		r.metrics.Workers.Set(float64(r.cfg.Workers))
	}

	var stats Stats
	if r.cfg.Header {
		if _, err := io.WriteString(out, r.cfg.Mode.Header()+"\n"); err != nil {
			return stats, fmt.Errorf("batch: write header: %w", err)
		}
	}

	var (
		snk = newSink(out, r.cfg.Ordered)
		cnt counters
		seq int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	var (
		lr      = newLineReader(in, MaxLineBytes)
		scanErr error
	)
	for {
		raw, long, err := lr.next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				scanErr = err
			}
			break
		}
		if gctx.Err() != nil {
			break
		}
		stats.Read++
		if long {
			r.skip(log, &stats, "skipping over-long line", "")
			continue
		}
		line := strings.TrimSpace(string(raw))
		n, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			r.skip(log, &stats, "skipping malformed line", line)
			continue
		}

		idx := seq
		seq++
		g.Go(func() error {
			return r.compute(log, snk, &cnt, idx, n)
		})
	}
	waitErr := g.Wait()

	stats.Computed = int(cnt.computed.Load())
	stats.Failed = int(cnt.failed.Load())
	stats.Elapsed = time.Since(start)

	var err error
	switch {
	case waitErr != nil:
		err = waitErr
	case scanErr != nil:
		err = fmt.Errorf("%w: read input: %w", ErrIO, scanErr)
	case ctx.Err() != nil:
		err = ctx.Err()
	}
	if err != nil {
		log.Error("batch aborted", slog.Any("stats", stats), slog.Any("err", err))
		return stats, err
	}
	log.Info("batch finished", slog.Any("stats", stats))

	return stats, nil
}

func (r *Runner) skip(log *slog.Logger, stats *Stats, msg, line string) {
	stats.Skipped++
	if r.metrics != nil {
		r.metrics.ObserveSkipped()
	}
	log.Debug(msg, slog.Int("line", stats.Read), slog.String("text", truncate(line, 64)))
}

// compute evaluates one input. Only sink write errors are returned; they
// cancel the group.
func (r *Runner) compute(log *slog.Logger, snk *sink, cnt *counters, idx int, n uint64) error {
	if r.tracker != nil {
		r.tracker.Set(n)
	}

	began := time.Now()
	tr, err := r.trace(n)
	took := time.Since(began)
	if err != nil {
		cnt.failed.Add(1)
		if r.metrics != nil {
			r.metrics.ObserveFailed()
		}
		log.Warn("computation failed", slog.Uint64("n", n), slog.Any("err", err))
		return snk.drop(idx)
	}

	reliable := tr.Reliable()
	if r.metrics != nil {
		r.metrics.ObserveComputed(tr.Dim, took, reliable)
	}
	if !reliable {
		log.Warn("residual above tolerance",
			slog.Uint64("n", n),
			slog.Int("dim", tr.Dim),
			slog.Float64("residual", tr.Residual),
			slog.Float64("tolerance", tr.Tolerance()),
		)
	} else {
		log.Debug("computed",
			slog.Uint64("n", n),
			slog.Int("dim", tr.Dim),
			slog.Float64("residual", tr.Residual),
			slog.Duration("took", took),
		)
	}

	if err := snk.emit(idx, Record{N: n, Value: r.cfg.Mode.Format(tr)}); err != nil {
		return err
	}
	cnt.computed.Add(1)

	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "..."
}
