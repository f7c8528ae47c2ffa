package challenge

import (
	"github.com/jacksmith/followgraph/internal/graph"
	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/jacksmith/followgraph/internal/model"
)

// MutualProblem asks for every pair of users that follow each other.
type MutualProblem struct {
	Users []model.User
}

func (p *MutualProblem) Type() model.ProblemType { return model.ProblemMutual }

func (p *MutualProblem) Dataset() *model.DatasetFile {
	return &model.DatasetFile{Problem: model.ProblemMutual, Users: p.Users}
}

func (p *MutualProblem) Data() any {
	return struct {
		Users []model.User `json:"users"`
	}{p.Users}
}

func (p *MutualProblem) Solve() *Solution {
	return &Solution{Type: model.ProblemMutual, Pairs: graph.MutualPairs(p.Users)}
}

func (p *MutualProblem) Layout() *layout.Layout {
	return layout.Mutual(p.Users)
}

func (p *MutualProblem) Highlight(l *layout.Layout, s *Solution) {
	l.HighlightPairs(s.Pairs)
}
