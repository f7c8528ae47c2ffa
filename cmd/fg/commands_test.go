package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/followgraph/internal/cli"
	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/jacksmith/followgraph/internal/model"
	"github.com/jacksmith/followgraph/internal/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `request_delay: 0s
submit_delay: 0s
log_level: "off"
`

// setupTestDir creates a temporary working directory with a config file
// that disables the simulated delays, and resets all command flags.
func setupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".fgconfig.yaml"), []byte(testConfig), 0644))

	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cli.SetColorEnabled(false)
	resetFlags()
	return tmpDir
}

func resetFlags() {
	flagConfig, flagLogLevel, flagNoColor = "", "", false
	resetIdentityFlags()
	requestJSON = false
	solveJSON = false
	layoutSolved, layoutJSON = false, false
	graphSolved = false
	vizSolved, vizOutput, vizNoOpen = false, "", false
	submitAttempts = model.MaxAttempts
	dumpProblem, dumpOutput = "", ""
}

// captureOutput runs fn with stdout redirected and returns what it printed.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	os.Stdout = old

	return buf.String(), runErr
}

func TestRequestCommand(t *testing.T) {
	tests := []struct {
		name     string
		regNo    string
		contains []string
	}{
		{
			name:     "config reg no selects mutual",
			regNo:    "",
			contains: []string{"Request accepted for REG12347", "Question 1: Mutual Followers", model.WebhookURL, model.AccessToken, `"Alice"`},
		},
		{
			name:     "even reg no selects level",
			regNo:    "REG12348",
			contains: []string{"Request accepted for REG12348", "Question 2: Nth-Level Followers", `"findId": 1`, `"n": 2`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestDir(t)
			idRegNo = tt.regNo

			output, err := captureOutput(t, func() error { return runRequest(nil, nil) })
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestRequestCommandJSON(t *testing.T) {
	setupTestDir(t)
	requestJSON = true
	idRegNo = "REG12349"

	output, err := captureOutput(t, func() error { return runRequest(nil, nil) })
	require.NoError(t, err)

	var resp struct {
		Webhook     string `json:"webhook"`
		AccessToken string `json:"accessToken"`
		ProblemType string `json:"problemType"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, model.WebhookURL, resp.Webhook)
	assert.Equal(t, "mutual", resp.ProblemType)
}

func TestRequestInvalidEmail(t *testing.T) {
	setupTestDir(t)
	idEmail = "not-an-email"

	_, err := captureOutput(t, func() error { return runRequest(nil, nil) })
	var ire *ops.InvalidRequestError
	require.True(t, errors.As(err, &ire))
	assert.Contains(t, err.Error(), "email must be a valid email address")
}

func TestSolveCommand(t *testing.T) {
	tests := []struct {
		name     string
		regNo    string
		contains []string
	}{
		{"mutual", "REG12347", []string{"[[1,2],[3,4]]", "1 Alice <-> 2 Bob", "3 Charlie <-> 4 David"}},
		{"level", "REG12348", []string{"[4,5]", "4 David", "5 Eva"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestDir(t)
			idRegNo = tt.regNo

			output, err := captureOutput(t, func() error { return runSolve(nil, nil) })
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestSolveCommandJSON(t *testing.T) {
	setupTestDir(t)
	solveJSON = true

	output, err := captureOutput(t, func() error { return runSolve(nil, nil) })
	require.NoError(t, err)

	var pairs [][]int
	require.NoError(t, json.Unmarshal([]byte(output), &pairs))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, pairs)
}

func TestSolveWithDataset(t *testing.T) {
	dir := setupTestDir(t)

	custom := `problem: level
n: 1
find_id: 3
users:
  - {id: 3, name: Charlie, follows: [4, 5]}
  - {id: 4, name: David, follows: []}
  - {id: 5, name: Eva, follows: [3]}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(custom), 0644))
	idDataset = "custom"
	solveJSON = true

	output, err := captureOutput(t, func() error { return runSolve(nil, nil) })
	require.NoError(t, err)

	var ids []int
	require.NoError(t, json.Unmarshal([]byte(output), &ids))
	assert.Equal(t, []int{4, 5}, ids, "the dataset overrides reg no selection")
}

func TestSolveWithMissingDataset(t *testing.T) {
	setupTestDir(t)
	idDataset = "nope"

	_, err := captureOutput(t, func() error { return runSolve(nil, nil) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), `dataset "nope" not found`)
}

func TestLayoutCommandJSON(t *testing.T) {
	setupTestDir(t)
	idRegNo = "REG12348"
	layoutJSON = true

	output, err := captureOutput(t, func() error { return runLayout(nil, nil) })
	require.NoError(t, err)

	var l layout.Layout
	require.NoError(t, json.Unmarshal([]byte(output), &l))
	require.Len(t, l.Nodes, 6)

	root := l.Node(1)
	require.NotNil(t, root)
	assert.Equal(t, 50.0, root.X)
	assert.Equal(t, 50.0, root.Y)

	charlie := l.Node(3)
	require.NotNil(t, charlie)
	assert.Equal(t, 550.0, charlie.X)
	assert.Equal(t, 150.0, charlie.Y)

	assert.Equal(t, []int{4, 5}, l.HighlightedNodes())
}

func TestLayoutCommandTable(t *testing.T) {
	setupTestDir(t)
	layoutSolved = true

	output, err := captureOutput(t, func() error { return runLayout(nil, nil) })
	require.NoError(t, err)

	assert.Contains(t, output, "Question 1: Mutual Followers")
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "400.0")
	assert.Contains(t, output, "MUTUAL")
	assert.Contains(t, output, "*")
}

func TestGraphDOTFormat(t *testing.T) {
	setupTestDir(t)

	output, err := captureOutput(t, func() error { return runGraph(nil, nil) })
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(output, "digraph followgraph {"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(output), "}"))
	assert.Contains(t, output, `"1" -> "2"`)
	assert.Contains(t, output, `"1" -> "3"`)
	assert.Contains(t, output, `"3" -> "4"`)
	assert.NotContains(t, output, `"2" -> "1"`, "mutual follows are drawn once")
	assert.Contains(t, output, "dir=both")
	assert.NotContains(t, output, "penwidth", "nothing highlighted before solving")
	assert.Contains(t, output, `label="1\nAlice"`)
}

func TestGraphSolvedHighlights(t *testing.T) {
	setupTestDir(t)
	graphSolved = true

	output, err := captureOutput(t, func() error { return runGraph(nil, nil) })
	require.NoError(t, err)

	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, `"1" -> "3"`) {
			assert.NotContains(t, line, "penwidth", "one-way follow is not highlighted")
		}
		if strings.Contains(line, `"3" -> "4"`) {
			assert.Contains(t, line, "penwidth")
		}
	}
}

func TestGraphLevelHighlightsTargetLevel(t *testing.T) {
	setupTestDir(t)
	idRegNo = "REG12348"

	output, err := captureOutput(t, func() error { return runGraph(nil, nil) })
	require.NoError(t, err)

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(strings.TrimSpace(line), `"4" [`), strings.HasPrefix(strings.TrimSpace(line), `"5" [`):
			assert.Contains(t, line, `fillcolor="#3b82f6"`)
		case strings.HasPrefix(strings.TrimSpace(line), `"1" [`):
			assert.Contains(t, line, "fillcolor=white")
			assert.Contains(t, line, `pos="50,350!"`)
		}
	}
}

func TestVizWritesPage(t *testing.T) {
	dir := setupTestDir(t)
	vizSolved = true
	vizNoOpen = true
	vizOutput = filepath.Join(dir, "graph.html")

	output, err := captureOutput(t, func() error { return runViz(nil, nil) })
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote "+vizOutput)

	page, err := os.ReadFile(vizOutput)
	require.NoError(t, err)
	html := string(page)

	assert.NotContains(t, html, "/*GRAPH_DATA*/")
	assert.Contains(t, html, `"problem":"mutual"`)
	assert.Contains(t, html, `"solution":"[[1,2],[3,4]]"`)
	assert.Contains(t, html, `"width":500`)
	assert.Contains(t, html, `"name":"Alice"`)
}

func TestVizUnsolvedHasNoSolution(t *testing.T) {
	setupTestDir(t)

	html, err := renderViz(vizData{Title: "t", Problem: "level", Nodes: []layout.Node{{ID: 1}}})
	require.NoError(t, err)
	assert.NotContains(t, html, `"solution":`)
	assert.Contains(t, html, `"problem":"level"`)
}

func TestSubmitCommand(t *testing.T) {
	setupTestDir(t)

	output, err := captureOutput(t, func() error { return runSubmit(nil, nil) })
	require.NoError(t, err)

	assert.Contains(t, output, "POST "+model.WebhookURL)
	assert.Contains(t, output, `"regNo": "REG12347"`)
	assert.Contains(t, output, "Attempt 1: error")
	assert.Contains(t, output, "Attempt 3: error")
	assert.Contains(t, output, "Attempt 4: success")
	assert.NotContains(t, output, "Attempt 5")
	assert.Contains(t, output, "Webhook submission successful!")
}

func TestSubmitLimitedAttempts(t *testing.T) {
	setupTestDir(t)
	submitAttempts = 2

	output, err := captureOutput(t, func() error { return runSubmit(nil, nil) })
	require.NoError(t, err)

	assert.Contains(t, output, "Attempt 2: error")
	assert.NotContains(t, output, "Attempt 3")
	assert.Contains(t, output, "Webhook submission failed (Attempt 2/4)")
}

func TestSubmitInvalidAttempts(t *testing.T) {
	setupTestDir(t)
	submitAttempts = 0

	err := runSubmit(nil, nil)
	var ve *cli.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "attempts", ve.Field)
}

func TestRunCommand(t *testing.T) {
	setupTestDir(t)
	idRegNo = "REG12348"

	output, err := captureOutput(t, func() error { return runRun(nil, nil) })
	require.NoError(t, err)

	assert.Contains(t, output, "Running challenge for John Doe (REG12348)")
	assert.Contains(t, output, "Question 2: Nth-Level Followers")
	assert.Contains(t, output, "Solution: [4,5]")
	assert.Contains(t, output, "Attempts: 4")
	assert.Contains(t, output, "Webhook submission successful!")
}

func TestDumpCommand(t *testing.T) {
	setupTestDir(t)
	dumpProblem = "level"

	output, err := captureOutput(t, func() error { return runDump(nil, nil) })
	require.NoError(t, err)

	df, err := model.ParseDataset([]byte(output))
	require.NoError(t, err)
	assert.Equal(t, model.ProblemLevel, df.Problem)
	assert.Equal(t, model.DefaultLevelN, df.N)
	assert.Equal(t, model.DefaultLevelFindID, df.FindID)
	assert.Equal(t, model.LevelDataset(), df.Users)
}

func TestDumpDefaultsToSelectedProblem(t *testing.T) {
	setupTestDir(t)

	output, err := captureOutput(t, func() error { return runDump(nil, nil) })
	require.NoError(t, err)
	assert.Contains(t, output, "problem: mutual")
}

func TestDumpToFileRoundTrip(t *testing.T) {
	dir := setupTestDir(t)
	dumpProblem = "mutual"
	dumpOutput = "mine"

	output, err := captureOutput(t, func() error { return runDump(nil, nil) })
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote mutual dataset to")
	assert.FileExists(t, filepath.Join(dir, "mine.yaml"))

	resetFlags()
	idDataset = "mine"
	idRegNo = "REG12348"
	solveJSON = true

	output, err = captureOutput(t, func() error { return runSolve(nil, nil) })
	require.NoError(t, err)
	var pairs [][]int
	require.NoError(t, json.Unmarshal([]byte(output), &pairs))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, pairs)
}

func TestDumpInvalidProblem(t *testing.T) {
	setupTestDir(t)
	dumpProblem = "cycles"

	err := runDump(nil, nil)
	var ve *cli.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, err.Error(), `"cycles" is not mutual or level`)
}

func TestConfigFlag(t *testing.T) {
	dir := setupTestDir(t)

	alt := filepath.Join(dir, "alt.yaml")
	require.NoError(t, os.WriteFile(alt, []byte(testConfig+"reg_no: REG00002\n"), 0644))
	flagConfig = alt

	output, err := captureOutput(t, func() error { return runRequest(nil, nil) })
	require.NoError(t, err)
	assert.Contains(t, output, "REG00002")
	assert.Contains(t, output, "Question 2: Nth-Level Followers")
}

func TestBadConfig(t *testing.T) {
	dir := setupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fgconfig.yaml"), []byte("submit_delay: -1s\n"), 0644))

	_, err := captureOutput(t, func() error { return runRequest(nil, nil) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delays must not be negative")
}

func newShellSession(t *testing.T) (*ops.Session, model.Request) {
	t.Helper()
	setupTestDir(t)
	e, err := loadEnv()
	require.NoError(t, err)
	sess, err := e.newSession()
	require.NoError(t, err)
	return sess, e.request()
}

func TestShell(t *testing.T) {
	sess, req := newShellSession(t)

	in := strings.NewReader("so\nrequest\nso\nsu\nst\npayload\nbogus\nq\nrequest\n")
	var out bytes.Buffer
	require.NoError(t, shell(context.Background(), sess, req, in, &out))

	output := out.String()
	assert.Contains(t, output, "Session "+sess.ID())
	assert.Contains(t, output, "error: cannot solve: no problem loaded")
	assert.Contains(t, output, "Loaded Question 1: Mutual Followers (4 users).")
	assert.Contains(t, output, "[[1,2],[3,4]]")
	assert.Contains(t, output, "Attempt 1: error")
	assert.Contains(t, output, "Webhook submission failed (Attempt 1/4)")
	assert.Contains(t, output, "Attempts: 1/4")
	assert.Contains(t, output, `"regNo": "REG12347"`)
	assert.Contains(t, output, `error: command "bogus" not found`)
	assert.Equal(t, 1, strings.Count(output, "Loaded"), "input after quit is ignored")
}

func TestShellAmbiguousPrefix(t *testing.T) {
	sess, req := newShellSession(t)

	var out bytes.Buffer
	require.NoError(t, shell(context.Background(), sess, req, strings.NewReader("s\n"), &out))
	assert.Contains(t, out.String(), `ambiguous command "s"`)
}

func TestShellSubmitUntilAccepted(t *testing.T) {
	sess, req := newShellSession(t)

	input := "request\nsolve\n" + strings.Repeat("submit\n", 5) + "layout\n"
	var out bytes.Buffer
	require.NoError(t, shell(context.Background(), sess, req, strings.NewReader(input), &out))

	output := out.String()
	assert.Contains(t, output, "Attempt 4: success")
	assert.Contains(t, output, "error: cannot submit while submission is success")
	assert.Contains(t, output, "MUTUAL")
	assert.Equal(t, model.SubmissionSuccess, sess.Snapshot().Submission.Status)
}

func TestShellLayoutWithoutProblem(t *testing.T) {
	sess, req := newShellSession(t)

	var out bytes.Buffer
	require.NoError(t, shell(context.Background(), sess, req, strings.NewReader("layout\n"), &out))
	assert.Contains(t, out.String(), "error: cannot show layout: no problem loaded")
}

func TestCompleteProblems(t *testing.T) {
	completions, _ := completeProblems(nil, nil, "m")
	assert.Equal(t, []string{"mutual\tQuestion 1: Mutual Followers"}, completions)

	completions, _ = completeProblems(nil, nil, "")
	assert.Len(t, completions, 2)
}

func TestCompleteDatasets(t *testing.T) {
	dir := setupTestDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "graph.yaml"), []byte("problem: mutual\nusers:\n  - {id: 1, name: A, follows: []}\n"), 0644))

	completions, _ := completeDatasets(nil, nil, "gr")
	assert.Equal(t, []string{"graph\tQuestion 1: Mutual Followers"}, completions)
}
