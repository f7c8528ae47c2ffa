package challenge

import (
	"github.com/jacksmith/followgraph/internal/graph"
	"github.com/jacksmith/followgraph/internal/layout"
	"github.com/jacksmith/followgraph/internal/model"
)

// LevelProblem asks for the users exactly N follow hops from FindID.
type LevelProblem struct {
	N      int
	FindID int
	Users  []model.User
}

func (p *LevelProblem) Type() model.ProblemType { return model.ProblemLevel }

func (p *LevelProblem) Dataset() *model.DatasetFile {
	return &model.DatasetFile{Problem: model.ProblemLevel, N: p.N, FindID: p.FindID, Users: p.Users}
}

type levelData struct {
	N      int          `json:"n"`
	FindID int          `json:"findId"`
	Users  []model.User `json:"users"`
}

func (p *LevelProblem) Data() any {
	return struct {
		Users levelData `json:"users"`
	}{levelData{N: p.N, FindID: p.FindID, Users: p.Users}}
}

func (p *LevelProblem) Solve() *Solution {
	return &Solution{Type: model.ProblemLevel, IDs: graph.NthLevel(p.Users, p.FindID, p.N)}
}

func (p *LevelProblem) Layout() *layout.Layout {
	return layout.Level(p.Users, p.FindID, p.N)
}

func (p *LevelProblem) Highlight(l *layout.Layout, s *Solution) {
	l.HighlightIDs(s.IDs)
}
