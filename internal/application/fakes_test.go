package application_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nodestree/studiosite/internal/application"
	"github.com/nodestree/studiosite/internal/domain/model"
)

// --- Fake clock ---

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) application.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and runs every timer that became due, in
// due order, outside the clock lock.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	var pending []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
			continue
		}
		if !t.stopped {
			pending = append(pending, t)
		}
	}
	c.timers = pending
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// --- Fake sender ---

type fakeSender struct {
	mu    sync.Mutex
	calls []model.Submission
	err   error

	// When non-nil, Send signals started and then blocks until release is closed.
	started chan struct{}
	release chan struct{}
}

func (s *fakeSender) Send(_ context.Context, sub model.Submission) error {
	s.mu.Lock()
	s.calls = append(s.calls, sub)
	err := s.err
	started, release := s.started, s.release
	s.mu.Unlock()

	if release != nil {
		started <- struct{}{}
		<-release
	}
	return err
}

func (s *fakeSender) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *fakeSender) Calls() []model.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Submission, len(s.calls))
	copy(out, s.calls)
	return out
}

func completeSubmission() model.Submission {
	return model.Submission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ProjectType: model.ProjectTypeMusicVideo,
		Message:     "We need a cut for our new single.",
	}
}
