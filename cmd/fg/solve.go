package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/followgraph/internal/challenge"
	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the assigned problem",
	Long: `Send the request, solve the problem it selects, and print the answer.

Mutual followers prints each pair once as [min,max], sorted. Nth-level
followers prints the ids exactly n hops from findId, sorted.

Examples:
  fg solve
  fg solve --reg-no REG12348 --json
  fg solve --dataset mygraph.yaml`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

var solveJSON bool

func init() {
	addIdentityFlags(solveCmd)
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "print the solution as JSON")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	sess, err := solvedSession(commandContext(cmd), true)
	if err != nil {
		return err
	}
	sol := sess.Snapshot().Solution

	if solveJSON {
		return printJSON(os.Stdout, sol)
	}
	printSolution(os.Stdout, sol, sess.Layout())
	return nil
}

func printSolution(w io.Writer, sol *challenge.Solution, l *layout.Layout) {
	fmt.Fprintf(w, "%s: %s\n", sol.Type.Title(), sol)

	if sol.Len() == 0 {
		fmt.Fprintln(w, "No matches.")
		return
	}

	if sol.Type == model.ProblemMutual {
		for _, p := range sol.Pairs {
			fmt.Fprintf(w, "  %s <-> %s\n", nodeLabel(l, p.Low()), nodeLabel(l, p.High()))
		}
		return
	}
	for _, id := range sol.IDs {
		fmt.Fprintf(w, "  %s\n", nodeLabel(l, id))
	}
}

// nodeLabel formats a user as "id name", falling back to the id alone.
func nodeLabel(l *layout.Layout, id int) string {
	if n := l.Node(id); n != nil && n.Name != "" {
		return fmt.Sprintf("%d %s", id, n.Name)
	}
	return fmt.Sprintf("%d", id)
}
