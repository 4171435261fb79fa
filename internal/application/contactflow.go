package application

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/nodestree/studiosite/internal/domain/model"
	"github.com/nodestree/studiosite/internal/domain/port/driven"
)

// SuccessResetDelay is how long the confirmation of a successful submission
// stays visible before the form returns to idle.
const SuccessResetDelay = 5 * time.Second

var (
	// ErrSubmissionInProgress is returned when a submit arrives while the
	// previous one from the same form instance is still in flight.
	ErrSubmissionInProgress = errors.New("submission already in progress")

	// ErrFlowClosed is returned when submitting to a form instance that has
	// been discarded.
	ErrFlowClosed = errors.New("contact form closed")
)

// FlowSnapshot is a consistent view of a ContactFlow at one instant.
type FlowSnapshot struct {
	ID         string
	Status     model.SubmissionStatus
	Fields     model.Submission
	LastActive time.Time
}

// ContactFlow is the submission state machine of one contact form instance.
//
// States: idle -> loading -> success|error. success returns to idle on its
// own after the reset delay; error stays until the next submit. The mutex is
// never held across the outbound call, so readers always observe loading while
// a submission is in flight.
type ContactFlow struct {
	id         string
	sender     driven.SubmissionSender
	clock      Clock
	resetDelay time.Duration
	logger     *slog.Logger

	mu         sync.Mutex
	status     model.SubmissionStatus
	fields     model.Submission
	resetTimer Timer
	resetGen   uint64
	lastActive time.Time
	closed     bool
}

// NewContactFlow creates an idle flow. A nil clock uses SystemClock; a
// non-positive resetDelay uses SuccessResetDelay.
func NewContactFlow(
	id string,
	sender driven.SubmissionSender,
	clock Clock,
	resetDelay time.Duration,
	logger *slog.Logger,
) *ContactFlow {
	if clock == nil {
		clock = SystemClock()
	}
	if resetDelay <= 0 {
		resetDelay = SuccessResetDelay
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContactFlow{
		id:         id,
		sender:     sender,
		clock:      clock,
		resetDelay: resetDelay,
		logger:     logger,
		status:     model.SubmissionStatusIdle,
		fields:     model.Submission{ProjectType: model.ProjectTypes[0]},
		lastActive: clock.Now(),
	}
}

// ID returns the form instance identifier.
func (f *ContactFlow) ID() string { return f.id }

// Status returns the current submission status.
func (f *ContactFlow) Status() model.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Fields returns the field values the form should currently display.
func (f *ContactFlow) Fields() model.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Snapshot returns status, fields and last activity together.
func (f *ContactFlow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FlowSnapshot{
		ID:         f.id,
		Status:     f.status,
		Fields:     f.fields,
		LastActive: f.lastActive,
	}
}

// Submit validates s and, if it is complete, sends it through the
// SubmissionSender and records the outcome.
//
// A validation failure returns an error matching ErrInvalidSubmission and
// leaves the status unchanged. Sender failures are never returned: they put
// the flow into the error state. The send is detached from ctx cancellation;
// once issued it runs to completion.
func (f *ContactFlow) Submit(ctx context.Context, s model.Submission) (model.SubmissionStatus, error) {
	s = s.Normalized()

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return model.SubmissionStatusIdle, ErrFlowClosed
	}
	if !f.status.AcceptsSubmit() {
		status := f.status
		f.mu.Unlock()
		return status, ErrSubmissionInProgress
	}
	f.lastActive = f.clock.Now()

	if err := ValidateSubmission(s); err != nil {
		f.fields = s
		status := f.status
		f.mu.Unlock()
		return status, err
	}

	// success and error both pass through idle on the way to loading.
	f.cancelResetLocked()
	f.status = model.SubmissionStatusLoading
	f.fields = s
	f.mu.Unlock()

	sendErr := f.sender.Send(context.WithoutCancel(ctx), s)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastActive = f.clock.Now()

	if sendErr != nil {
		f.status = model.SubmissionStatusError
		f.logger.Warn("contact submission failed",
			"form_id", f.id,
			"reason", failureReason(sendErr),
			"project_type", s.ProjectType,
		)
		return f.status, nil
	}

	f.status = model.SubmissionStatusSuccess
	f.fields = model.Submission{ProjectType: model.ProjectTypes[0]}
	f.logger.Info("contact submission sent",
		"form_id", f.id,
		"project_type", s.ProjectType,
	)
	if !f.closed {
		f.scheduleResetLocked()
	}
	return f.status, nil
}

// Close discards the flow. A pending success reset is cancelled and later
// submits return ErrFlowClosed. Close is idempotent.
func (f *ContactFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.cancelResetLocked()
}

// Closed reports whether Close has been called.
func (f *ContactFlow) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *ContactFlow) scheduleResetLocked() {
	f.resetGen++
	gen := f.resetGen
	f.resetTimer = f.clock.AfterFunc(f.resetDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// A stopped timer may still fire if Stop lost the race; gen guards that.
		if f.closed || gen != f.resetGen || f.status != model.SubmissionStatusSuccess {
			return
		}
		f.status = model.SubmissionStatusIdle
		f.resetTimer = nil
	})
}

func (f *ContactFlow) cancelResetLocked() {
	if f.resetTimer == nil {
		return
	}
	f.resetTimer.Stop()
	f.resetTimer = nil
	f.resetGen++
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, driven.ErrSubmissionRejected):
		return "rejected"
	case errors.Is(err, driven.ErrSubmissionTransport):
		return "transport"
	default:
		return "unknown"
	}
}
