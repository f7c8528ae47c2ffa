package layout

import (
	"math"

	"github.com/jacksmith/followgraph/internal/graph"
	"github.com/jacksmith/followgraph/internal/model"
)

// Circle geometry for the mutual layout.
const (
	CircleCenterX = 250
	CircleCenterY = 200
	CircleRadius  = 150
)

// Mutual places users evenly around a circle in dataset order and emits an
// edge per follows entry, tagged mutual when the followed user follows back.
// Nothing is highlighted until HighlightPairs runs.
func Mutual(users []model.User) *Layout {
	g := graph.Build(users)
	count := float64(len(users))

	nodes := make([]Node, 0, len(users))
	for i, u := range users {
		angle := float64(i) / count * 2 * math.Pi
		nodes = append(nodes, Node{
			ID:   u.ID,
			Name: u.Name,
			X:    CircleCenterX + CircleRadius*math.Cos(angle),
			Y:    CircleCenterY + CircleRadius*math.Sin(angle),
		})
	}

	edges := followEdges(users, func(from, to int) Edge {
		return Edge{
			Source: from,
			Target: to,
			Mutual: g.HasNode(to) && g.IsFollowing(to, from),
		}
	})

	return &Layout{Problem: model.ProblemMutual, Nodes: nodes, Edges: edges}
}

// HighlightPairs marks an edge highlighted iff it is mutual and its
// canonical pair is among pairs. Nodes and positions are left unchanged.
func (l *Layout) HighlightPairs(pairs []graph.Pair) {
	set := graph.NewPairSet(pairs)
	for i := range l.Edges {
		e := &l.Edges[i]
		e.Highlighted = e.Mutual && set.Has(e.Source, e.Target)
	}
}
