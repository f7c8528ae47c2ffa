package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Generate follow graph",
	Long: `Generate a DOT format follow graph.

Nodes are pinned to their layout positions, so render with neato:
  fg graph | neato -n -Tpng -o graph.png
  fg graph --solved --reg-no REG12348 | neato -n -Tsvg -o level.svg

Styling:
- Highlighted users are filled blue, the rest white
- Highlighted follows are thick blue, the rest gray
- Mutual follows are drawn once, with both arrowheads`,
	Args: cobra.NoArgs,
	RunE: runGraph,
}

var graphSolved bool

func init() {
	addIdentityFlags(graphCmd)
	graphCmd.Flags().BoolVar(&graphSolved, "solved", false, "apply the solution's highlights")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	sess, err := solvedSession(commandContext(cmd), graphSolved)
	if err != nil {
		return err
	}
	writeDOT(sess.Layout())
	return nil
}

func writeDOT(l *layout.Layout) {
	fmt.Println("digraph followgraph {")
	fmt.Printf("  label=%q;\n", l.Problem.Title())
	fmt.Println("  node [shape=circle fontname=sans];")
	fmt.Println()

	for _, n := range l.Nodes {
		fmt.Printf("  \"%d\" %s;\n", n.ID, nodeAttrs(n))
	}

	fmt.Println()

	for _, e := range l.Edges {
		// Follows to unknown users have nowhere to be drawn
		if l.Node(e.Source) == nil || l.Node(e.Target) == nil {
			continue
		}
		// The reverse of a mutual follow is drawn by its partner edge
		if e.Mutual && e.Source > e.Target {
			continue
		}
		fmt.Printf("  \"%d\" -> \"%d\"%s;\n", e.Source, e.Target, edgeAttrs(e))
	}

	fmt.Println("}")
}

func nodeAttrs(n layout.Node) string {
	var attrs []string
	attrs = append(attrs, fmt.Sprintf("label=\"%d\\n%s\"", n.ID, escapeLabel(n.Name)))
	// DOT's y axis points up
	attrs = append(attrs, fmt.Sprintf("pos=\"%.0f,%.0f!\"", n.X, layout.Height-n.Y))

	if n.Highlighted {
		attrs = append(attrs, "style=filled", "fillcolor=\"#3b82f6\"", "fontcolor=white", "color=\"#1d4ed8\"")
	} else {
		attrs = append(attrs, "style=filled", "fillcolor=white", "color=gray40")
	}

	return "[" + strings.Join(attrs, " ") + "]"
}

func edgeAttrs(e layout.Edge) string {
	var attrs []string
	if e.Highlighted {
		attrs = append(attrs, "color=\"#2563eb\"", "penwidth=2.5")
	} else {
		attrs = append(attrs, "color=gray70")
	}
	if e.Mutual {
		attrs = append(attrs, "dir=both")
	}
	return " [" + strings.Join(attrs, " ") + "]"
}

func escapeLabel(s string) string {
	// Escape special DOT characters
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
