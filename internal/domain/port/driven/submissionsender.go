package driven

import (
	"context"
	"errors"

	"github.com/nodestree/studiosite/internal/domain/model"
)

// ErrSubmissionRejected is matched by Send errors when the form service
// answered with a non-success status.
var ErrSubmissionRejected = errors.New("submission rejected by form service")

// ErrSubmissionTransport is matched by Send errors when no response was
// received (connection refused, DNS failure, timeout).
var ErrSubmissionTransport = errors.New("submission transport failure")

// SubmissionSender defines the driven port for delivering a contact
// submission to the external form-ingestion service.
type SubmissionSender interface {
	// Send transmits the submission once. A nil error means the service
	// accepted it. Errors match ErrSubmissionRejected or ErrSubmissionTransport.
	Send(ctx context.Context, s model.Submission) error
}
