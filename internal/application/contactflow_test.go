package application_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodestree/studiosite/internal/application"
	"github.com/nodestree/studiosite/internal/domain/model"
	"github.com/nodestree/studiosite/internal/domain/port/driven"
)

func newFlow(sender *fakeSender, clock *fakeClock) *application.ContactFlow {
	return application.NewContactFlow("form-1", sender, clock, application.SuccessResetDelay, nil)
}

func TestContactFlow_InitialState(t *testing.T) {
	flow := newFlow(&fakeSender{}, newFakeClock())

	assert.Equal(t, "form-1", flow.ID())
	assert.Equal(t, model.SubmissionStatusIdle, flow.Status())
	assert.Equal(t, model.ProjectTypeCommercial, flow.Fields().ProjectType)
	assert.True(t, flow.Fields().IsZero())
}

func TestContactFlow_MissingRequiredFieldsStayIdle(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Submission)
		wantKey string
	}{
		{name: "empty name", mutate: func(s *model.Submission) { s.Name = "" }, wantKey: model.FieldName},
		{name: "blank name", mutate: func(s *model.Submission) { s.Name = "   " }, wantKey: model.FieldName},
		{name: "empty email", mutate: func(s *model.Submission) { s.Email = "" }, wantKey: model.FieldEmail},
		{name: "empty message", mutate: func(s *model.Submission) { s.Message = "\n\t" }, wantKey: model.FieldMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			flow := newFlow(sender, newFakeClock())

			sub := completeSubmission()
			tt.mutate(&sub)

			status, err := flow.Submit(context.Background(), sub)

			require.ErrorIs(t, err, application.ErrInvalidSubmission)
			var verr *application.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Message(tt.wantKey))
			assert.Equal(t, model.SubmissionStatusIdle, status)
			assert.Equal(t, model.SubmissionStatusIdle, flow.Status())
			assert.Empty(t, sender.Calls(), "nothing may be sent for an incomplete form")
		})
	}
}

func TestContactFlow_AllFieldsEmpty(t *testing.T) {
	sender := &fakeSender{}
	flow := newFlow(sender, newFakeClock())

	_, err := flow.Submit(context.Background(), model.Submission{})

	var verr *application.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, model.SubmissionStatusIdle, flow.Status())
	assert.Empty(t, sender.Calls())
}

func TestContactFlow_SuccessClearsFieldsAndResetsAfterDelay(t *testing.T) {
	sender := &fakeSender{}
	clock := newFakeClock()
	flow := newFlow(sender, clock)

	status, err := flow.Submit(context.Background(), completeSubmission())

	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusSuccess, status)
	assert.Equal(t, model.SubmissionStatusSuccess, flow.Status())
	assert.True(t, flow.Fields().IsZero(), "fields are cleared on success")
	require.Len(t, sender.Calls(), 1)
	assert.Equal(t, completeSubmission(), sender.Calls()[0])

	clock.Advance(application.SuccessResetDelay - time.Millisecond)
	assert.Equal(t, model.SubmissionStatusSuccess, flow.Status())

	clock.Advance(time.Millisecond)
	assert.Equal(t, model.SubmissionStatusIdle, flow.Status())
	assert.True(t, flow.Fields().IsZero())
	assert.Len(t, sender.Calls(), 1, "the reset has no further side effects")
	assert.Zero(t, clock.Pending())
}

func TestContactFlow_RejectionKeepsFields(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("status 422: %w", driven.ErrSubmissionRejected)}
	clock := newFakeClock()
	flow := newFlow(sender, clock)

	status, err := flow.Submit(context.Background(), completeSubmission())

	require.NoError(t, err, "sender errors are never returned")
	assert.Equal(t, model.SubmissionStatusError, status)
	assert.Equal(t, completeSubmission(), flow.Fields())

	clock.Advance(time.Hour)
	assert.Equal(t, model.SubmissionStatusError, flow.Status(), "error is sticky until retried")
}

func TestContactFlow_TransportFailureMatchesRejection(t *testing.T) {
	rejected := newFlow(&fakeSender{err: driven.ErrSubmissionRejected}, newFakeClock())
	failed := newFlow(&fakeSender{err: fmt.Errorf("dial tcp: connection refused: %w", driven.ErrSubmissionTransport)}, newFakeClock())

	s1, err1 := rejected.Submit(context.Background(), completeSubmission())
	s2, err2 := failed.Submit(context.Background(), completeSubmission())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, rejected.Snapshot().Fields, failed.Snapshot().Fields)
}

func TestContactFlow_RetryFromErrorSucceeds(t *testing.T) {
	sender := &fakeSender{err: driven.ErrSubmissionTransport}
	clock := newFakeClock()
	flow := newFlow(sender, clock)

	status, err := flow.Submit(context.Background(), completeSubmission())
	require.NoError(t, err)
	require.Equal(t, model.SubmissionStatusError, status)

	sender.setErr(nil)
	status, err = flow.Submit(context.Background(), flow.Fields())
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusSuccess, status)
	assert.True(t, flow.Fields().IsZero())
	assert.Len(t, sender.Calls(), 2)

	clock.Advance(application.SuccessResetDelay)
	assert.Equal(t, model.SubmissionStatusIdle, flow.Status())
}

func TestContactFlow_ConcurrentSubmitRefusedWhileLoading(t *testing.T) {
	sender := &fakeSender{started: make(chan struct{}), release: make(chan struct{})}
	flow := newFlow(sender, newFakeClock())

	type result struct {
		status model.SubmissionStatus
		err    error
	}
	done := make(chan result, 1)
	go func() {
		status, err := flow.Submit(context.Background(), completeSubmission())
		done <- result{status, err}
	}()

	<-sender.started
	assert.Equal(t, model.SubmissionStatusLoading, flow.Status())

	status, err := flow.Submit(context.Background(), completeSubmission())
	require.ErrorIs(t, err, application.ErrSubmissionInProgress)
	assert.Equal(t, model.SubmissionStatusLoading, status)

	close(sender.release)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, model.SubmissionStatusSuccess, res.status)
	assert.Len(t, sender.Calls(), 1, "exactly one send per accepted submit")
}

func TestContactFlow_SendSurvivesCallerCancellation(t *testing.T) {
	sender := &contextCheckingSender{}
	flow := application.NewContactFlow("form-1", sender, newFakeClock(), 0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, err := flow.Submit(ctx, completeSubmission())

	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusSuccess, status)
	assert.NoError(t, sender.seen)
}

type contextCheckingSender struct {
	seen error
}

func (s *contextCheckingSender) Send(ctx context.Context, _ model.Submission) error {
	s.seen = ctx.Err()
	if s.seen != nil {
		return errors.Join(driven.ErrSubmissionTransport, s.seen)
	}
	return nil
}

func TestContactFlow_SubmitDuringSuccessCancelsReset(t *testing.T) {
	sender := &fakeSender{}
	clock := newFakeClock()
	flow := newFlow(sender, clock)

	_, err := flow.Submit(context.Background(), completeSubmission())
	require.NoError(t, err)
	clock.Advance(3 * time.Second)

	sender.setErr(driven.ErrSubmissionRejected)
	status, err := flow.Submit(context.Background(), completeSubmission())
	require.NoError(t, err)
	require.Equal(t, model.SubmissionStatusError, status)

	clock.Advance(application.SuccessResetDelay)
	assert.Equal(t, model.SubmissionStatusError, flow.Status(), "the first reset must not clobber the new state")
}

func TestContactFlow_CloseCancelsPendingReset(t *testing.T) {
	clock := newFakeClock()
	flow := newFlow(&fakeSender{}, clock)

	_, err := flow.Submit(context.Background(), completeSubmission())
	require.NoError(t, err)
	require.Equal(t, 1, clock.Pending())

	flow.Close()
	assert.True(t, flow.Closed())
	assert.Zero(t, clock.Pending())

	clock.Advance(application.SuccessResetDelay)
	assert.Equal(t, model.SubmissionStatusSuccess, flow.Status(), "a closed flow is never mutated")

	_, err = flow.Submit(context.Background(), completeSubmission())
	assert.ErrorIs(t, err, application.ErrFlowClosed)
}

func TestContactFlow_SnapshotTracksActivity(t *testing.T) {
	clock := newFakeClock()
	flow := newFlow(&fakeSender{}, clock)
	created := flow.Snapshot().LastActive

	clock.Advance(time.Minute)
	_, err := flow.Submit(context.Background(), completeSubmission())
	require.NoError(t, err)

	snap := flow.Snapshot()
	assert.Equal(t, "form-1", snap.ID)
	assert.Equal(t, created.Add(time.Minute), snap.LastActive)
}
