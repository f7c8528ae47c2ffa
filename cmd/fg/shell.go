package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/followgraph/internal/cli"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/jacksmith/followgraph/internal/ops"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Step through the challenge interactively",
	Long: `Start an interactive shell over a single challenge session.

Commands can be abbreviated to any unique prefix:
  request   send the challenge request (loads a problem)
  solve     solve the loaded problem
  submit    make one webhook attempt
  status    show the submission status
  layout    print the layout with current highlights
  payload   print the webhook payload
  help      list commands
  quit      leave the shell`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

var shellCommands = []string{"request", "solve", "submit", "status", "layout", "payload", "help", "quit"}

const shellPrompt = "fg> "

func init() {
	addIdentityFlags(shellCmd)
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	sess, err := e.newSession()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if cmd != nil {
		in = cmd.InOrStdin()
	}
	return shell(commandContext(cmd), sess, e.request(), in, os.Stdout)
}

// shell reads commands from in until quit or end of input.
func shell(ctx context.Context, sess *ops.Session, req model.Request, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Session %s for %s. Type help for commands.\n", sess.ID(), req.RegNo)

	sc := bufio.NewScanner(in)
	fmt.Fprint(out, shellPrompt)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			fmt.Fprint(out, shellPrompt)
			continue
		}

		name, err := cli.MatchCommand(fields[0], shellCommands)
		if err != nil {
			fmt.Fprintln(out, cli.FormatError(err))
			fmt.Fprint(out, shellPrompt)
			continue
		}
		if name == "quit" {
			return nil
		}

		if err := shellExec(ctx, sess, req, name, out); err != nil {
			fmt.Fprintln(out, cli.FormatError(err))
		}
		// An interrupt cancels the pending delay and ends the shell
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(out, shellPrompt)
	}
	fmt.Fprintln(out)
	return sc.Err()
}

func shellExec(ctx context.Context, sess *ops.Session, req model.Request, name string, out io.Writer) error {
	switch name {
	case "request":
		resp, err := sess.Request(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Loaded %s (%d users).\n", cli.Bold(resp.ProblemType.Title()), len(sess.Layout().Nodes))

	case "solve":
		sol, err := sess.Solve()
		if err != nil {
			return err
		}
		printSolution(out, sol, sess.Layout())

	case "submit":
		status, err := sess.Submit(ctx)
		if err != nil {
			return err
		}
		sub := sess.Snapshot().Submission
		printAttempt(out, sub.Attempts, status)
		printBanner(out, &sub)

	case "status":
		snap := sess.Snapshot()
		problem := "none"
		if snap.Problem != "" {
			problem = snap.Problem.Title()
		}
		solution := "not solved"
		if snap.Solution != nil {
			solution = snap.Solution.String()
		}
		fmt.Fprintf(out, "Problem:  %s\n", problem)
		fmt.Fprintf(out, "Solution: %s\n", solution)
		fmt.Fprintf(out, "Attempts: %d/%d\n", snap.Submission.Attempts, model.MaxAttempts)
		printBanner(out, &snap.Submission)

	case "layout":
		l := sess.Layout()
		if l == nil {
			return &ops.NoProblemError{Operation: "show layout"}
		}
		printLayout(out, l)

	case "payload":
		p, err := sess.Payload()
		if err != nil {
			return err
		}
		return printJSON(out, p)

	case "help":
		fmt.Fprintln(out, "Commands: "+strings.Join(shellCommands, ", "))
		fmt.Fprintln(out, "Any unique prefix works, e.g. \"so\" for solve.")
	}
	return nil
}
