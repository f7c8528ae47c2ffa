package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jacksmith/followgraph/internal/cli"
	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print node positions and highlights",
	Long: `Print the drawing layout of the assigned problem.

Mutual followers places users on a circle; nth-level followers places
each BFS level on its own row. Positions are for a 500x400 canvas.

Without --solved, highlights are the ones shown before solving: none for
mutual followers, the target level for nth-level followers.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

var (
	layoutSolved bool
	layoutJSON   bool
)

func init() {
	addIdentityFlags(layoutCmd)
	layoutCmd.Flags().BoolVar(&layoutSolved, "solved", false, "apply the solution's highlights")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "print the layout as JSON")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	sess, err := solvedSession(commandContext(cmd), layoutSolved)
	if err != nil {
		return err
	}
	l := sess.Layout()

	if layoutJSON {
		return printJSON(os.Stdout, l)
	}
	printLayout(os.Stdout, l)
	return nil
}

func printLayout(w io.Writer, l *layout.Layout) {
	fmt.Fprintln(w, cli.Bold(l.Problem.Title()))
	fmt.Fprintln(w)

	nodes := cli.NewTable()
	nodes.SetMaxWidth(1, 20)
	nodes.AddRow("ID", "NAME", "X", "Y", "LEVEL", "")
	for _, n := range l.Nodes {
		level := "-"
		if n.Level != nil {
			level = strconv.Itoa(*n.Level)
		}
		nodes.AddRow(
			strconv.Itoa(n.ID),
			n.Name,
			formatCoord(n.X),
			formatCoord(n.Y),
			level,
			highlightMark(n.Highlighted),
		)
	}
	nodes.Render(w)

	fmt.Fprintln(w)

	edges := cli.NewTable()
	edges.AddRow("FROM", "TO", "MUTUAL", "")
	for _, e := range l.Edges {
		mutual := ""
		if e.Mutual {
			mutual = "yes"
		}
		to := strconv.Itoa(e.Target)
		if l.Node(e.Target) == nil {
			to += cli.Gray(" (missing)")
		}
		edges.AddRow(strconv.Itoa(e.Source), to, mutual, highlightMark(e.Highlighted))
	}
	edges.Render(w)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func highlightMark(on bool) string {
	if on {
		return cli.Highlight("*", true)
	}
	return ""
}
