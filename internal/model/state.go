package model

import "fmt"

// SubmissionStatus represents the state of the webhook submission workflow.
type SubmissionStatus string

const (
	SubmissionIdle    SubmissionStatus = "idle"
	SubmissionSending SubmissionStatus = "sending"
	SubmissionSuccess SubmissionStatus = "success"
	SubmissionError   SubmissionStatus = "error"
)

// RetryThreshold is the number of attempts that fail before a submission
// is accepted.
const RetryThreshold = 3

// MaxAttempts is the attempt number on which a submission succeeds.
const MaxAttempts = RetryThreshold + 1

// InvalidTransitionError indicates an event that the current state does not accept.
type InvalidTransitionError struct {
	From  SubmissionStatus
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s while submission is %s", e.Event, e.From)
}

// Submission tracks the scripted webhook submission. The zero value is idle
// with no attempts.
type Submission struct {
	Status   SubmissionStatus `json:"status"`
	Attempts int              `json:"attempts"`

	// evaluated is the attempt counter as it was when the in-flight attempt
	// began; it decides the outcome when the attempt settles.
	evaluated int
}

// NewSubmission returns an idle submission.
func NewSubmission() *Submission {
	return &Submission{Status: SubmissionIdle}
}

func (s *Submission) status() SubmissionStatus {
	if s.Status == "" {
		return SubmissionIdle
	}
	return s.Status
}

// CanSubmit returns true if a user-initiated submit is accepted.
func (s *Submission) CanSubmit() bool {
	st := s.status()
	return st == SubmissionIdle || st == SubmissionError
}

// Begin moves an idle or failed submission to sending and counts the attempt.
func (s *Submission) Begin() error {
	if !s.CanSubmit() {
		return &InvalidTransitionError{From: s.status(), Event: "submit"}
	}
	s.evaluated = s.Attempts
	s.Attempts++
	s.Status = SubmissionSending
	return nil
}

// Settle resolves an in-flight attempt. Attempts that began below the retry
// threshold fail; later ones succeed.
func (s *Submission) Settle() (SubmissionStatus, error) {
	if s.status() != SubmissionSending {
		return s.status(), &InvalidTransitionError{From: s.status(), Event: "settle"}
	}
	if s.evaluated < RetryThreshold {
		s.Status = SubmissionError
	} else {
		s.Status = SubmissionSuccess
	}
	return s.Status, nil
}

// Abort fails an in-flight attempt without consulting the counter.
func (s *Submission) Abort() {
	if s.status() == SubmissionSending {
		s.Status = SubmissionError
	}
}

// Reset returns the submission to idle with no attempts.
func (s *Submission) Reset() {
	*s = Submission{Status: SubmissionIdle}
}

// Banner returns the status title and description shown to the user.
func (s *Submission) Banner() (title, description string) {
	switch s.status() {
	case SubmissionSending:
		return "Sending to webhook...", "Submitting your solution to the webhook."
	case SubmissionError:
		return fmt.Sprintf("Webhook submission failed (Attempt %d/%d)", s.Attempts, MaxAttempts),
			"The server returned an error. Retry the submission."
	case SubmissionSuccess:
		return "Webhook submission successful!", "Your solution was accepted by the server."
	default:
		return "Ready to submit to webhook", "Send the solution to the provided webhook URL."
	}
}
