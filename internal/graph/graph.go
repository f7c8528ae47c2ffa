// Package graph provides follow graph analysis for followgraph.
package graph

import (
	"sort"

	"github.com/jacksmith/followgraph/internal/model"
)

// Graph is a directed follow graph. An edge u → v means u follows v and
// says nothing about v → u.
type Graph struct {
	// follows maps a user ID to the IDs it follows, in dataset order
	follows map[int][]int
	// users indexes user records by ID
	users map[int]*model.User
	// order keeps user IDs in dataset order
	order []int
}

// Build constructs a follow graph from a user list.
// Follows entries that point at unknown IDs are kept as edges; they simply
// lead nowhere. If two users share an ID the first one wins.
func Build(users []model.User) *Graph {
	g := &Graph{
		follows: make(map[int][]int, len(users)),
		users:   make(map[int]*model.User, len(users)),
		order:   make([]int, 0, len(users)),
	}

	for i := range users {
		u := &users[i]
		if _, dup := g.users[u.ID]; dup {
			continue
		}
		g.users[u.ID] = u
		g.order = append(g.order, u.ID)
		g.follows[u.ID] = append([]int{}, u.Follows...)
	}

	return g
}

// HasNode returns true if a user with the ID exists in the graph.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.users[id]
	return ok
}

// User returns the user record for id, or nil if there is none.
func (g *Graph) User(id int) *model.User {
	return g.users[id]
}

// Follows returns the IDs that id follows, in dataset order.
// Returns empty slice if the node doesn't exist or follows nobody.
func (g *Graph) Follows(id int) []int {
	f := g.follows[id]
	result := make([]int, len(f))
	copy(result, f)
	return result
}

// IsFollowing returns true if from lists to in its follows.
func (g *Graph) IsFollowing(from, to int) bool {
	for _, id := range g.follows[from] {
		if id == to {
			return true
		}
	}
	return false
}

// IsMutual returns true if a and b are distinct existing users that follow
// each other.
func (g *Graph) IsMutual(a, b int) bool {
	if a == b || !g.HasNode(a) || !g.HasNode(b) {
		return false
	}
	return g.IsFollowing(a, b) && g.IsFollowing(b, a)
}

// Nodes returns all user IDs in the graph (sorted for deterministic output).
func (g *Graph) Nodes() []int {
	result := make([]int, len(g.order))
	copy(result, g.order)
	sort.Ints(result)
	return result
}

// Order returns all user IDs in dataset order.
func (g *Graph) Order() []int {
	result := make([]int, len(g.order))
	copy(result, g.order)
	return result
}
