package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/followgraph/internal/cli"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit the solution to the webhook",
	Long: `Send the request, solve, and submit the answer to the webhook.

The webhook is simulated: the first three attempts fail and the fourth
is accepted. A failed attempt is retried until it succeeds or --attempts
attempts have been made.

Examples:
  fg submit
  fg submit --attempts 1`,
	Args: cobra.NoArgs,
	RunE: runSubmit,
}

var submitAttempts int

func init() {
	addIdentityFlags(submitCmd)
	submitCmd.Flags().IntVar(&submitAttempts, "attempts", model.MaxAttempts, "maximum number of attempts")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if submitAttempts < 1 {
		return &cli.ValidationError{Field: "attempts", Message: "must be at least 1"}
	}

	ctx := commandContext(cmd)
	sess, err := solvedSession(ctx, true)
	if err != nil {
		return err
	}

	payload, err := sess.Payload()
	if err != nil {
		return err
	}
	fmt.Printf("POST %s\n", model.WebhookURL)
	if err := printJSON(os.Stdout, payload); err != nil {
		return err
	}
	fmt.Println()

	_, err = sess.SubmitUntilSettled(ctx, submitAttempts, func(attempt int, status model.SubmissionStatus) {
		printAttempt(os.Stdout, attempt, status)
	})
	if err != nil {
		return err
	}

	fmt.Println()
	sub := sess.Snapshot().Submission
	printBanner(os.Stdout, &sub)
	return nil
}

func printAttempt(w io.Writer, attempt int, status model.SubmissionStatus) {
	fmt.Fprintf(w, "Attempt %d: %s\n", attempt, cli.StatusColor(status, string(status)))
}

func printBanner(w io.Writer, sub *model.Submission) {
	title, desc := sub.Banner()
	fmt.Fprintln(w, cli.StatusColor(sub.Status, title))
	fmt.Fprintf(w, "  %s\n", desc)
}
