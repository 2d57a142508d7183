// SPDX-License-Identifier: MIT

package cyclo

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo is an optional, concurrency-safe cache of TraceH results keyed by n.
// Concurrent requests for the same uncached n share one computation.
// Errors are returned to every waiter but never cached.
//
// The zero value is ready to use. A Memo must not be copied after first use.
type Memo struct {
	group singleflight.Group

	mu    sync.RWMutex
	cache map[uint64]Trace
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{cache: make(map[uint64]Trace)}
}

// TraceH returns the cached trace for n, computing it once on a miss.
func (m *Memo) TraceH(n uint64) (Trace, error) {
	if tr, ok := m.lookup(n); ok {
		return tr, nil
	}

	v, err, _ := m.group.Do(strconv.FormatUint(n, 10), func() (interface{}, error) {
		if tr, ok := m.lookup(n); ok {
			return tr, nil
		}
		tr, err := TraceH(n)
		if err != nil {
			return Trace{}, err
		}
		m.mu.Lock()
		if m.cache == nil {
			m.cache = make(map[uint64]Trace)
		}
		m.cache[n] = tr
		m.mu.Unlock()

		return tr, nil
	})
	if err != nil {
		return Trace{}, err
	}

	return v.(Trace), nil
}

// Len returns the number of cached entries.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.cache)
}

func (m *Memo) lookup(n uint64) (Trace, bool) {
	m.mu.RLock()
	tr, ok := m.cache[n]
	m.mu.RUnlock()

	return tr, ok
}
