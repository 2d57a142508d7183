// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"io"
	"sync"
)

// Record is one output line.
type Record struct {
	N     uint64
	Value string
}

// sink serializes writes to the shared output. In ordered mode it holds
// finished records until every earlier sequence number has been settled.
type sink struct {
	mu sync.Mutex
	w  io.Writer

	ordered bool
	next    int             // lowest sequence number not yet released
	pending map[int]*Record // nil value: settled without output
}

func newSink(w io.Writer, ordered bool) *sink {
	s := &sink{w: w, ordered: ordered}
	if ordered {
		s.pending = make(map[int]*Record)
	}

	return s
}

// emit settles seq with rec.
func (s *sink) emit(seq int, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ordered {
		return s.write(rec)
	}
	s.pending[seq] = &rec

	return s.flush()
}

// drop settles seq without output. Only ordered mode has to track it.
func (s *sink) drop(seq int) error {
	if !s.ordered {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[seq] = nil

	return s.flush()
}

// flush releases the settled prefix. Callers hold s.mu.
func (s *sink) flush() error {
	for {
		rec, ok := s.pending[s.next]
		if !ok {
			return nil
		}
		delete(s.pending, s.next)
		s.next++
		if rec == nil {
			continue
		}
		if err := s.write(*rec); err != nil {
			return err
		}
	}
}

func (s *sink) write(rec Record) error {
	if _, err := fmt.Fprintf(s.w, "%d\t%s\n", rec.N, rec.Value); err != nil {
		return fmt.Errorf("batch: write n=%d: %w", rec.N, err)
	}

	return nil
}
