package ops

import (
	"context"

	"github.com/jacksmith/followgraph/internal/challenge"
	"github.com/jacksmith/followgraph/internal/model"
)

// AttemptFunc is called after each webhook attempt settles.
type AttemptFunc func(attempt int, status model.SubmissionStatus)

// SubmitUntilSettled submits, retrying after each error, until the
// submission succeeds or maxAttempts attempts have been made in this call.
// It returns the final status.
func (s *Session) SubmitUntilSettled(ctx context.Context, maxAttempts int, onAttempt AttemptFunc) (model.SubmissionStatus, error) {
	status := s.Snapshot().Submission.Status
	for i := 0; i < maxAttempts; i++ {
		var err error
		status, err = s.Submit(ctx)
		if err != nil {
			return status, err
		}
		if onAttempt != nil {
			onAttempt(s.Snapshot().Submission.Attempts, status)
		}
		if status == model.SubmissionSuccess {
			break
		}
	}
	return status, nil
}

// RunResult summarises a scripted walkthrough.
type RunResult struct {
	Response *model.Response
	Solution *challenge.Solution
	Status   model.SubmissionStatus
	Attempts int
}

// RunChallenge drives a full walkthrough on s: request, solve, then submit
// and retry until the submission succeeds.
func RunChallenge(ctx context.Context, s *Session, req model.Request, onAttempt AttemptFunc) (*RunResult, error) {
	resp, err := s.Request(ctx, req)
	if err != nil {
		return nil, err
	}

	sol, err := s.Solve()
	if err != nil {
		return nil, err
	}

	status, err := s.SubmitUntilSettled(ctx, model.MaxAttempts, onAttempt)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		Response: resp,
		Solution: sol,
		Status:   status,
		Attempts: s.Snapshot().Submission.Attempts,
	}, nil
}
