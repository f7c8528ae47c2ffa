package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/followgraph/internal/cli"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/jacksmith/followgraph/internal/ops"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the whole challenge",
	Long: `Run the challenge end to end: send the request, solve the problem,
then submit and retry until the webhook accepts the answer.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	addIdentityFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	sess, err := e.newSession()
	if err != nil {
		return err
	}

	req := e.request()
	fmt.Printf("Running challenge for %s (%s)...\n", req.Name, req.RegNo)

	res, err := ops.RunChallenge(commandContext(cmd), sess, req, func(attempt int, status model.SubmissionStatus) {
		printAttempt(os.Stdout, attempt, status)
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Problem:  %s\n", cli.Bold(res.Response.ProblemType.Title()))
	fmt.Printf("Solution: %s\n", res.Solution)
	fmt.Printf("Attempts: %d\n", res.Attempts)
	sub := sess.Snapshot().Submission
	printBanner(os.Stdout, &sub)
	return nil
}
