package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nodestree/studiosite/internal/domain/model"
	"github.com/nodestree/studiosite/internal/domain/port/driven"
)

// ErrInvalidFormID is returned when a form instance id is not a UUID.
var ErrInvalidFormID = errors.New("invalid form id")

// Registry defaults.
const (
	DefaultFormTTL       = 30 * time.Minute
	DefaultMaxForms      = 10000
	DefaultSweepInterval = time.Minute
)

// FormRegistryConfig tunes form instance lifetimes.
type FormRegistryConfig struct {
	// TTL is how long an inactive form instance is kept.
	TTL time.Duration
	// MaxForms is a soft cap on live form instances. When reached, the least
	// recently active instance that is not sending is evicted. Sending
	// instances are never evicted, so the registry can exceed MaxForms by at
	// most the number of submits in flight.
	MaxForms int
	// SweepInterval is how often Start looks for expired instances.
	SweepInterval time.Duration
	// ResetDelay is the success-to-idle delay handed to every flow.
	ResetDelay time.Duration
}

func (c FormRegistryConfig) withDefaults() FormRegistryConfig {
	if c.TTL <= 0 {
		c.TTL = DefaultFormTTL
	}
	if c.MaxForms <= 0 {
		c.MaxForms = DefaultMaxForms
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = DefaultSweepInterval
	}
	if c.ResetDelay <= 0 {
		c.ResetDelay = SuccessResetDelay
	}
	return c
}

// FormRegistry owns one ContactFlow per rendered contact form, keyed by a
// random UUID that the page embeds in the form. Instances are discarded after
// a period of inactivity, which cancels any pending success reset.
type FormRegistry struct {
	sender driven.SubmissionSender
	clock  Clock
	cfg    FormRegistryConfig
	logger *slog.Logger

	mu    sync.Mutex
	flows map[string]*ContactFlow
}

// NewFormRegistry creates an empty registry. A nil clock uses SystemClock.
func NewFormRegistry(
	sender driven.SubmissionSender,
	clock Clock,
	cfg FormRegistryConfig,
	logger *slog.Logger,
) *FormRegistry {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FormRegistry{
		sender: sender,
		clock:  clock,
		cfg:    cfg.withDefaults(),
		logger: logger,
		flows:  make(map[string]*ContactFlow),
	}
}

// Open registers a new idle form instance under a fresh id.
func (r *FormRegistry) Open() (string, *ContactFlow) {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	return id, r.registerLocked(id)
}

// Lookup returns the live flow for id, if any. id may be any UUID form
// uuid.Parse accepts; a non-UUID is never found.
func (r *FormRegistry) Lookup(id string) (*ContactFlow, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	flow, ok := r.flows[parsed.String()]
	return flow, ok
}

// Resume returns the live flow for id, or registers a fresh idle flow under
// the same id when the previous one has expired. Returns ErrInvalidFormID if
// id is not a UUID.
func (r *FormRegistry) Resume(id string) (*ContactFlow, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidFormID
	}
	id = parsed.String()

	r.mu.Lock()
	defer r.mu.Unlock()
	if flow, ok := r.flows[id]; ok {
		return flow, nil
	}
	return r.registerLocked(id), nil
}

// Len returns the number of live form instances.
func (r *FormRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.flows)
}

// Sweep closes and forgets every instance inactive for at least the TTL.
// Instances that are sending are kept. Returns the number removed.
func (r *FormRegistry) Sweep() int {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, flow := range r.flows {
		snap := flow.Snapshot()
		if snap.Status == model.SubmissionStatusLoading {
			continue
		}
		if now.Sub(snap.LastActive) >= r.cfg.TTL {
			flow.Close()
			delete(r.flows, id)
			removed++
		}
	}
	return removed
}

// CloseAll closes and forgets every instance.
func (r *FormRegistry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, flow := range r.flows {
		flow.Close()
		delete(r.flows, id)
	}
}

// Start sweeps expired instances on the configured interval until ctx is
// canceled, then closes all remaining instances. Start blocks.
func (r *FormRegistry) Start(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			r.logger.Info("form registry stopped")
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("expired contact forms removed", "count", n, "remaining", r.Len())
			}
		}
	}
}

func (r *FormRegistry) registerLocked(id string) *ContactFlow {
	if len(r.flows) >= r.cfg.MaxForms && !r.evictOldestLocked() {
		r.logger.Warn("form registry over capacity, all instances sending",
			"forms", len(r.flows)+1,
			"max_forms", r.cfg.MaxForms,
		)
	}
	flow := NewContactFlow(id, r.sender, r.clock, r.cfg.ResetDelay, r.logger)
	r.flows[id] = flow
	return flow
}

// evictOldestLocked reports whether an instance was evicted.
func (r *FormRegistry) evictOldestLocked() bool {
	var (
		oldestID string
		oldestAt time.Time
	)
	for id, flow := range r.flows {
		snap := flow.Snapshot()
		if snap.Status == model.SubmissionStatusLoading {
			continue
		}
		if oldestID == "" || snap.LastActive.Before(oldestAt) {
			oldestID = id
			oldestAt = snap.LastActive
		}
	}
	if oldestID == "" {
		return false
	}
	r.flows[oldestID].Close()
	delete(r.flows, oldestID)
	return true
}
