package award

import (
	"sync"
	"time"
)

// RedirectScheduler manages pending redirect timers keyed by session.
// Answering "no" to a gating question schedules a redirect after the
// directive's delay; changing the answer back cancels it. At most one
// timer is pending per key.
type RedirectScheduler struct {
	mu      sync.Mutex
	pending map[string]*time.Timer
}

func NewRedirectScheduler() *RedirectScheduler {
	return &RedirectScheduler{pending: make(map[string]*time.Timer)}
}

// Schedule arms a redirect for key, replacing any pending one. fire runs
// on the timer goroutine after the directive's delay unless the redirect
// is cancelled or rescheduled first.
func (s *RedirectScheduler) Schedule(key string, r *Redirect, fire func(*Redirect)) {
	if r == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.pending[key]; ok {
		t.Stop()
	}
	s.pending[key] = time.AfterFunc(r.Delay, func() {
		s.mu.Lock()
		delete(s.pending, key)
		s.mu.Unlock()
		fire(r)
	})
}

// Cancel stops the pending redirect for key, if any. Reports whether a
// timer was actually cancelled before firing.
func (s *RedirectScheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pending[key]
	if !ok {
		return false
	}
	delete(s.pending, key)
	return t.Stop()
}

// Pending reports whether a redirect is currently armed for key.
func (s *RedirectScheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[key]
	return ok
}

// Stop cancels every pending redirect. Used during shutdown.
func (s *RedirectScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, t := range s.pending {
		t.Stop()
		delete(s.pending, k)
	}
}
