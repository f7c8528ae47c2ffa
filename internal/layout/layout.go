// Package layout derives positioned nodes and highlighted edges for drawing
// a follow graph. Layouts are deterministic: the same dataset always yields
// the same positions.
package layout

import "github.com/jacksmith/followgraph/internal/model"

// Canvas dimensions the layouts are computed for.
const (
	Width  = 500
	Height = 400
)

// Node is a positioned user. Level is set only by the level layout.
type Node struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Level       *int    `json:"level,omitempty"`
	Highlighted bool    `json:"highlighted"`
}

// Edge is one directed follows entry. Mutual is set only by the mutual layout.
type Edge struct {
	Source      int  `json:"source"`
	Target      int  `json:"target"`
	Mutual      bool `json:"mutual,omitempty"`
	Highlighted bool `json:"highlighted"`
}

// Layout is the drawable form of a dataset.
type Layout struct {
	Problem model.ProblemType `json:"problem"`
	Nodes   []Node            `json:"nodes"`
	Edges   []Edge            `json:"edges"`
}

// Node returns the node for id, or nil. Edges may point at users that have
// no node; renderers skip those edges.
func (l *Layout) Node(id int) *Node {
	for i := range l.Nodes {
		if l.Nodes[i].ID == id {
			return &l.Nodes[i]
		}
	}
	return nil
}

// HighlightedNodes returns the IDs of highlighted nodes in layout order.
func (l *Layout) HighlightedNodes() []int {
	ids := []int{}
	for _, n := range l.Nodes {
		if n.Highlighted {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// HighlightedEdges returns the highlighted edges in layout order.
func (l *Layout) HighlightedEdges() []Edge {
	edges := []Edge{}
	for _, e := range l.Edges {
		if e.Highlighted {
			edges = append(edges, e)
		}
	}
	return edges
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	c := &Layout{
		Problem: l.Problem,
		Nodes:   make([]Node, len(l.Nodes)),
		Edges:   make([]Edge, len(l.Edges)),
	}
	copy(c.Nodes, l.Nodes)
	copy(c.Edges, l.Edges)
	for i := range c.Nodes {
		if c.Nodes[i].Level != nil {
			level := *c.Nodes[i].Level
			c.Nodes[i].Level = &level
		}
	}
	return c
}

// followEdges emits one edge per directed follows entry, in dataset order.
func followEdges(users []model.User, tag func(from, to int) Edge) []Edge {
	edges := []Edge{}
	for _, u := range users {
		for _, followID := range u.Follows {
			edges = append(edges, tag(u.ID, followID))
		}
	}
	return edges
}
