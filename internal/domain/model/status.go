package model

// SubmissionStatus is the lifecycle state of a contact form instance.
type SubmissionStatus string

const (
	SubmissionStatusIdle    SubmissionStatus = "idle"
	SubmissionStatusLoading SubmissionStatus = "loading"
	SubmissionStatusSuccess SubmissionStatus = "success"
	SubmissionStatusError   SubmissionStatus = "error"
)

// AcceptsSubmit reports whether a new submission may start from this state.
// Only an in-flight submission blocks the form.
func (s SubmissionStatus) AcceptsSubmit() bool {
	return s != SubmissionStatusLoading
}
