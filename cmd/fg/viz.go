package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/spf13/cobra"
)

//go:embed viz.html
var vizTemplate string

var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Open the follow graph in browser",
	Long: `Draw the assigned problem's follow graph in your browser.

Users are circles, follows are arrows. Highlighted users and follows are
blue: mutual pairs for mutual followers, the target level for nth-level
followers. Hover a user to see who they follow.

The page is written to a temporary file unless -o is given.`,
	Args: cobra.NoArgs,
	RunE: runViz,
}

var (
	vizSolved bool
	vizOutput string
	vizNoOpen bool
)

func init() {
	addIdentityFlags(vizCmd)
	vizCmd.Flags().BoolVar(&vizSolved, "solved", false, "apply the solution's highlights")
	vizCmd.Flags().StringVarP(&vizOutput, "output", "o", "", "write the page to this file")
	vizCmd.Flags().BoolVar(&vizNoOpen, "no-open", false, "write the page without opening a browser")
	rootCmd.AddCommand(vizCmd)
}

type vizData struct {
	Title    string        `json:"title"`
	Problem  string        `json:"problem"`
	Solution string        `json:"solution,omitempty"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Nodes    []layout.Node `json:"nodes"`
	Edges    []layout.Edge `json:"edges"`
}

func runViz(cmd *cobra.Command, args []string) error {
	sess, err := solvedSession(commandContext(cmd), vizSolved)
	if err != nil {
		return err
	}

	l := sess.Layout()
	gd := vizData{
		Title:   l.Problem.Title(),
		Problem: string(l.Problem),
		Width:   layout.Width,
		Height:  layout.Height,
		Nodes:   l.Nodes,
		Edges:   l.Edges,
	}
	if sol := sess.Snapshot().Solution; sol != nil {
		gd.Solution = sol.String()
	}

	if len(gd.Nodes) == 0 {
		fmt.Println("No users to visualize.")
		return nil
	}

	html, err := renderViz(gd)
	if err != nil {
		return err
	}

	path, err := writeViz(html)
	if err != nil {
		return err
	}

	if vizNoOpen {
		fmt.Printf("Wrote %s.\n", path)
		return nil
	}

	opener := "open"
	if runtime.GOOS == "linux" {
		opener = "xdg-open"
	}

	if err := exec.Command(opener, path).Start(); err != nil {
		return fmt.Errorf("opening browser: %w (file written to %s)", err, path)
	}

	fmt.Printf("Opened %s in browser.\n", path)
	return nil
}

func renderViz(gd vizData) (string, error) {
	jsonBytes, err := json.Marshal(gd)
	if err != nil {
		return "", fmt.Errorf("marshaling graph data: %w", err)
	}
	return strings.Replace(vizTemplate, "/*GRAPH_DATA*/", string(jsonBytes), 1), nil
}

// writeViz writes the page to vizOutput, or a temp file, and returns its path.
func writeViz(html string) (string, error) {
	if vizOutput != "" {
		if err := os.WriteFile(vizOutput, []byte(html), 0644); err != nil {
			return "", fmt.Errorf("writing %s: %w", vizOutput, err)
		}
		return vizOutput, nil
	}

	tmpFile, err := os.CreateTemp("", "fg-viz-*.html")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(html); err != nil {
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	return tmpFile.Name(), nil
}
