package interview

import (
	"context"
	"sync"
	"time"
)

// DefaultIdleTTL is how long an untouched session survives before the
// sweeper drops it.
const DefaultIdleTTL = 2 * time.Hour

type entry struct {
	session *Session
	touched time.Time
}

// Registry holds live sessions in memory. Sessions are ephemeral: there is
// no backing store and no resume across restarts. Idle sessions are evicted
// so an abandoned conversation does not pin memory for the process lifetime.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	now func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

func (r *Registry) Create(id string) *Session {
	s := NewSession(id)
	r.mu.Lock()
	r.sessions[id] = &entry{session: s, touched: r.now()}
	r.mu.Unlock()
	return s
}

// Get marks the session as touched, so any activity resets its idle clock.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	e, ok := r.sessions[id]
	if ok {
		e.touched = r.now()
	}
	r.mu.Unlock()
	if !ok {
		return nil, false
	}
	return e.session, true
}

// Reset discards a session's state and starts a fresh one under the same id.
func (r *Registry) Reset(id string) *Session {
	return r.Create(id)
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// EvictIdle drops every session untouched for longer than maxIdle and
// reports how many were removed.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)
	evicted := 0

	r.mu.Lock()
	for id, e := range r.sessions {
		if e.touched.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	r.mu.Unlock()

	return evicted
}

// StartSweeper evicts idle sessions on a fixed interval until ctx is done.
func (r *Registry) StartSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				r.EvictIdle(maxIdle)
			}
		}
	}()
}
