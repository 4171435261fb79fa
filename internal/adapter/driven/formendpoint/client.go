// Package formendpoint implements the SubmissionSender port against a hosted
// form-ingestion service that accepts multipart form posts.
package formendpoint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/nodestree/studiosite/internal/domain/model"
	"github.com/nodestree/studiosite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SubmissionSender = (*Client)(nil)

// maxDrainBytes bounds how much of an ignored response body is read so the
// connection can be reused.
const maxDrainBytes = 64 << 10

// RejectedError reports a non-2xx answer from the form service.
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("form service responded %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is makes errors.Is(err, driven.ErrSubmissionRejected) report true.
func (e *RejectedError) Is(target error) bool {
	return target == driven.ErrSubmissionRejected
}

// Client posts contact submissions to a fixed endpoint.
type Client struct {
	http     *http.Client
	endpoint string
}

// NewClient creates a Client for endpoint with an instrumented transport. A
// zero timeout leaves the request bounded only by the transport defaults.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}
	return NewClientWithHTTPClient(httpClient, endpoint)
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, endpoint string) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing form endpoint: %w", err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, fmt.Errorf("form endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("form endpoint %q: missing host", endpoint)
	}

	return &Client{http: httpClient, endpoint: u.String()}, nil
}

// Endpoint returns the URL submissions are posted to.
func (c *Client) Endpoint() string { return c.endpoint }

// Send posts the submission as multipart/form-data with Accept:
// application/json. Any 2xx status is success. The response body is never
// parsed.
func (c *Client) Send(ctx context.Context, s model.Submission) error {
	body, contentType, err := encodeSubmission(s)
	if err != nil {
		return fmt.Errorf("encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return fmt.Errorf("building form request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(driven.ErrSubmissionTransport, fmt.Errorf("posting to form service: %w", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RejectedError{StatusCode: resp.StatusCode}
	}
	return nil
}

// encodeSubmission writes the four form fields into a multipart body.
func encodeSubmission(s model.Submission) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := []struct {
		key, value string
	}{
		{model.FieldName, s.Name},
		{model.FieldEmail, s.Email},
		{model.FieldProjectType, string(s.ProjectType)},
		{model.FieldMessage, s.Message},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.key, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.key, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
