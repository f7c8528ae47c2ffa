package layout

import (
	"github.com/jacksmith/followgraph/internal/graph"
	"github.com/jacksmith/followgraph/internal/model"
)

// Band geometry for the level layout.
const (
	LevelMargin = 50
	LevelHeight = 100
	LevelWidth  = 500
)

// Level places each BFS level from findID on its own horizontal band, with
// unreachable users on level -1 above the start. Nodes at level n start
// highlighted. An edge is highlighted when it steps from one known level
// to the next; that flag is fixed here and HighlightIDs never touches it.
func Level(users []model.User, findID, n int) *Layout {
	g := graph.Build(users)
	levels := g.Levels(findID)

	// Group in order of first appearance so output order is stable.
	var order []int
	groups := make(map[int][]int)
	for _, u := range users {
		level := graph.LevelOf(levels, u.ID)
		if _, ok := groups[level]; !ok {
			order = append(order, level)
		}
		groups[level] = append(groups[level], u.ID)
	}

	nodes := make([]Node, 0, len(users))
	for _, level := range order {
		ids := groups[level]
		span := len(ids) - 1
		if span < 1 {
			span = 1
		}
		for idx, id := range ids {
			u := g.User(id)
			lvl := level
			nodes = append(nodes, Node{
				ID:          u.ID,
				Name:        u.Name,
				X:           LevelMargin + float64(LevelWidth*idx)/float64(span),
				Y:           float64(LevelMargin + level*LevelHeight),
				Level:       &lvl,
				Highlighted: level == n,
			})
		}
	}

	edges := followEdges(users, func(from, to int) Edge {
		src := graph.LevelOf(levels, from)
		dst := graph.LevelOf(levels, to)
		return Edge{
			Source:      from,
			Target:      to,
			Highlighted: src != graph.Unreached && dst != graph.Unreached && dst == src+1,
		}
	})

	return &Layout{Problem: model.ProblemLevel, Nodes: nodes, Edges: edges}
}

// HighlightIDs marks a node highlighted iff its ID is in ids. Edge flags and
// positions are left unchanged.
func (l *Layout) HighlightIDs(ids []int) {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	for i := range l.Nodes {
		l.Nodes[i].Highlighted = set[l.Nodes[i].ID]
	}
}
