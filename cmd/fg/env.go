package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jacksmith/followgraph/internal/logging"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/jacksmith/followgraph/internal/ops"
	"github.com/jacksmith/followgraph/internal/storage"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// env is what every command loads before touching a session.
type env struct {
	store *storage.Storage
	cfg   *storage.Config
	log   zerolog.Logger
}

func loadEnv() (*env, error) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, err
	}

	var cfg *storage.Config
	if flagConfig != "" {
		cfg, err = storage.LoadConfigFile(flagConfig)
	} else {
		cfg, err = s.LoadConfig()
	}
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	log := logging.New(logging.Config{Level: level, Format: cfg.LogFormat, NoColor: flagNoColor})

	return &env{store: s, cfg: cfg, log: log}, nil
}

// Identity flags shared by every command that sends a request.
var (
	idName    string
	idRegNo   string
	idEmail   string
	idDataset string
)

func addIdentityFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&idName, "name", "", "your name (default from config)")
	cmd.Flags().StringVar(&idRegNo, "reg-no", "", "registration number; an odd last digit selects mutual followers")
	cmd.Flags().StringVar(&idEmail, "email", "", "your email (default from config)")
	cmd.Flags().StringVar(&idDataset, "dataset", "", "serve this dataset file instead of the built-in one")
	cmd.RegisterFlagCompletionFunc("dataset", completeDatasets)
}

func resetIdentityFlags() {
	idName, idRegNo, idEmail, idDataset = "", "", "", ""
}

// request returns the identity to send, flags over config.
func (e *env) request() model.Request {
	req := model.Request{Name: e.cfg.Name, RegNo: e.cfg.RegNo, Email: e.cfg.Email}
	if idName != "" {
		req.Name = idName
	}
	if idRegNo != "" {
		req.RegNo = idRegNo
	}
	if idEmail != "" {
		req.Email = idEmail
	}
	return req
}

func (e *env) newSession() (*ops.Session, error) {
	opts := ops.Options{
		RequestDelay: e.cfg.RequestDelay,
		SubmitDelay:  e.cfg.SubmitDelay,
		Logger:       e.log,
	}
	if idDataset != "" {
		p, err := ops.LoadProblem(e.store, idDataset)
		if err != nil {
			return nil, err
		}
		opts.Problem = p
	}
	return ops.NewSession(opts), nil
}

// solvedSession sends the request and, if solve is set, solves it.
func solvedSession(ctx context.Context, solve bool) (*ops.Session, error) {
	e, err := loadEnv()
	if err != nil {
		return nil, err
	}
	sess, err := e.newSession()
	if err != nil {
		return nil, err
	}
	if _, err := sess.Request(ctx, e.request()); err != nil {
		return nil, err
	}
	if solve {
		if _, err := sess.Solve(); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
