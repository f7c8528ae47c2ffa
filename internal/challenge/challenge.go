// Package challenge models the two challenge problems as variants of one
// Problem interface, so callers solve, lay out, and highlight without
// inspecting which problem they hold.
package challenge

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jacksmith/followgraph/internal/graph"
	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/jacksmith/followgraph/internal/model"
)

// Problem is a challenge dataset together with the operations it supports.
type Problem interface {
	// Type reports which problem this is.
	Type() model.ProblemType
	// Dataset returns the problem in its file form.
	Dataset() *model.DatasetFile
	// Data returns the JSON shape the simulated response carries.
	Data() any
	// Solve computes the answer.
	Solve() *Solution
	// Layout derives node positions and initial highlights.
	Layout() *layout.Layout
	// Highlight applies a solution's highlights to a layout from this problem.
	Highlight(l *layout.Layout, s *Solution)
}

// Solution is the answer to a problem. Exactly one of Pairs or IDs is
// meaningful, chosen by Type.
type Solution struct {
	Type  model.ProblemType
	Pairs []graph.Pair
	IDs   []int
}

// Outcome returns the value sent as the webhook outcome: [[min,max],...]
// for the mutual problem and [ids...] for the level problem.
func (s *Solution) Outcome() any {
	if s.Type == model.ProblemMutual {
		return s.Pairs
	}
	return s.IDs
}

// MarshalJSON encodes the solution as its outcome.
func (s *Solution) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Outcome())
}

// Len returns the number of pairs or IDs in the solution.
func (s *Solution) Len() int {
	if s.Type == model.ProblemMutual {
		return len(s.Pairs)
	}
	return len(s.IDs)
}

// String formats the solution compactly, e.g. "[[1,2],[3,4]]" or "[4,5]".
func (s *Solution) String() string {
	var parts []string
	if s.Type == model.ProblemMutual {
		for _, p := range s.Pairs {
			parts = append(parts, fmt.Sprintf("[%d,%d]", p.Low(), p.High()))
		}
	} else {
		for _, id := range s.IDs {
			parts = append(parts, fmt.Sprintf("%d", id))
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Select returns the built-in problem assigned to a registration number.
func Select(regNo string) Problem {
	p, _ := FromDataset(model.BuiltinDataset(model.SelectProblem(regNo)))
	return p
}

// FromDataset wraps a dataset file in its problem variant.
func FromDataset(df *model.DatasetFile) (Problem, error) {
	switch df.Problem {
	case model.ProblemMutual:
		return &MutualProblem{Users: df.Users}, nil
	case model.ProblemLevel:
		return &LevelProblem{N: df.N, FindID: df.FindID, Users: df.Users}, nil
	default:
		return nil, fmt.Errorf("unknown problem %q", df.Problem)
	}
}
