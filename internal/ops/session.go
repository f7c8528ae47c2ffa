// Package ops implements the challenge workflow on top of a session: the
// request stage, solving, and the scripted webhook submission.
package ops

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jacksmith/followgraph/internal/challenge"
	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/rs/zerolog"
)

// Options configures a Session.
type Options struct {
	// RequestDelay and SubmitDelay are the simulated stage latencies.
	RequestDelay time.Duration
	SubmitDelay  time.Duration

	// Problem, if set, is served by every request instead of the built-in
	// dataset chosen by registration number.
	Problem challenge.Problem

	// Sleep waits out simulated delays. Defaults to Sleep.
	Sleep SleepFunc

	// Logger receives workflow events. The zero value discards them.
	Logger zerolog.Logger
}

// Session holds all state for one run of the challenge: the loaded problem,
// its layout, the solution, and the submission. Operations are serialized;
// while one is waiting out its delay, others fail with BusyError.
type Session struct {
	id   string
	opts Options
	log  zerolog.Logger

	mu         sync.Mutex
	pending    string // operation currently waiting out its delay
	request    *model.Request
	problem    challenge.Problem
	response   *model.Response
	layout     *layout.Layout
	solution   *challenge.Solution
	submission model.Submission
}

// NewSession returns an empty session.
func NewSession(opts Options) *Session {
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}
	id := uuid.NewString()
	return &Session{
		id:         id,
		opts:       opts,
		log:        opts.Logger.With().Str("session", id).Logger(),
		submission: model.Submission{Status: model.SubmissionIdle},
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// begin marks op as pending. The caller must hold s.mu.
func (s *Session) begin(op string) error {
	if s.pending != "" {
		return &BusyError{Operation: op, Pending: s.pending}
	}
	s.pending = op
	return nil
}

// Request validates the identity, waits out the request delay, and loads
// the problem it selects. Loading a problem clears any previous solution and
// resets the submission.
func (s *Session) Request(ctx context.Context, req model.Request) (*model.Response, error) {
	if fieldErrs := req.Validate(); fieldErrs != nil {
		return nil, &InvalidRequestError{Fields: fieldErrs}
	}

	s.mu.Lock()
	if err := s.begin("request"); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	s.log.Debug().Str("reg_no", req.RegNo).Dur("delay", s.opts.RequestDelay).Msg("request sent")
	err := s.opts.Sleep(ctx, s.opts.RequestDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = ""
	if err != nil {
		s.log.Warn().Err(err).Msg("request abandoned")
		return nil, fmt.Errorf("request: %w", err)
	}

	problem := s.opts.Problem
	if problem == nil {
		problem = challenge.Select(req.RegNo)
	}

	r := req
	s.request = &r
	s.problem = problem
	s.response = &model.Response{
		Webhook:     model.WebhookURL,
		AccessToken: model.AccessToken,
		ProblemType: problem.Type(),
		Data:        problem.Data(),
	}
	s.layout = problem.Layout()
	s.solution = nil
	s.submission.Reset()

	s.log.Info().Str("problem", string(problem.Type())).Int("nodes", len(s.layout.Nodes)).Msg("problem loaded")
	return s.response, nil
}

// Solve computes the loaded problem's solution and applies its highlights
// to the layout. Positions are not recomputed.
func (s *Session) Solve() (*challenge.Solution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != "" {
		return nil, &BusyError{Operation: "solve", Pending: s.pending}
	}
	if s.problem == nil {
		return nil, &NoProblemError{Operation: "solve"}
	}

	sol := s.problem.Solve()
	s.solution = sol
	s.problem.Highlight(s.layout, sol)

	s.log.Info().Str("problem", string(sol.Type)).Str("solution", sol.String()).Msg("problem solved")
	return sol, nil
}

// Submit makes one webhook attempt: the submission moves to sending, the
// submit delay elapses, and the attempt settles as error or success. It
// returns the settled status. If ctx ends during the delay the attempt
// settles as error and ctx's error is returned.
func (s *Session) Submit(ctx context.Context) (model.SubmissionStatus, error) {
	s.mu.Lock()
	if s.pending != "" {
		s.mu.Unlock()
		return s.submission.Status, &BusyError{Operation: "submit", Pending: s.pending}
	}
	if s.problem == nil {
		s.mu.Unlock()
		return s.submission.Status, &NoProblemError{Operation: "submit"}
	}
	if s.solution == nil {
		s.mu.Unlock()
		return s.submission.Status, &NoSolutionError{Operation: "submit"}
	}
	if err := s.submission.Begin(); err != nil {
		s.mu.Unlock()
		return s.submission.Status, err
	}
	s.pending = "submit"
	attempt := s.submission.Attempts
	s.mu.Unlock()

	s.log.Debug().Int("attempt", attempt).Dur("delay", s.opts.SubmitDelay).Msg("submitting to webhook")
	err := s.opts.Sleep(ctx, s.opts.SubmitDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = ""
	if err != nil {
		s.submission.Abort()
		s.log.Warn().Err(err).Int("attempt", attempt).Msg("submission abandoned")
		return s.submission.Status, fmt.Errorf("submit: %w", err)
	}

	status, err := s.submission.Settle()
	if err != nil {
		return status, err
	}

	evt := s.log.Info()
	if status == model.SubmissionError {
		evt = s.log.Warn()
	}
	evt.Int("attempt", attempt).Str("status", string(status)).Msg("webhook attempt settled")
	return status, nil
}

// Payload returns the body the webhook submission would carry.
func (s *Session) Payload() (*model.WebhookPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.problem == nil {
		return nil, &NoProblemError{Operation: "build payload"}
	}
	if s.solution == nil {
		return nil, &NoSolutionError{Operation: "build payload"}
	}
	return &model.WebhookPayload{RegNo: s.request.RegNo, Outcome: s.solution.Outcome()}, nil
}

// Snapshot is a copy of session state for display.
type Snapshot struct {
	ID         string
	Request    *model.Request
	Response   *model.Response
	Problem    model.ProblemType
	Solution   *challenge.Solution
	Submission model.Submission
	Pending    string
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:         s.id,
		Response:   s.response,
		Solution:   s.solution,
		Submission: s.submission,
		Pending:    s.pending,
	}
	if s.request != nil {
		r := *s.request
		snap.Request = &r
	}
	if s.problem != nil {
		snap.Problem = s.problem.Type()
	}
	return snap
}

// Problem returns the loaded problem, or nil.
func (s *Session) Problem() challenge.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.problem
}

// Layout returns a copy of the current layout, or nil if no problem is loaded.
func (s *Session) Layout() *layout.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.layout == nil {
		return nil
	}
	return s.layout.Clone()
}
