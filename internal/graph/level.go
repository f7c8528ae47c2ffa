package graph

import (
	"sort"

	"github.com/jacksmith/followgraph/internal/model"
)

// Unreached is the level reported for users not reachable from the start.
const Unreached = -1

// NthLevel returns the IDs exactly n follow hops from findID, sorted
// ascending. Distances are shortest-path: an ID reached at depth k is never
// counted again at a later depth. n <= 0 returns [findID].
func NthLevel(users []model.User, findID, n int) []int {
	return Build(users).NthLevel(findID, n)
}

// NthLevel returns the IDs exactly n hops from findID.
func (g *Graph) NthLevel(findID, n int) []int {
	visited := map[int]bool{findID: true}
	frontier := []int{findID}

	for i := 0; i < n; i++ {
		next := []int{}
		for _, id := range frontier {
			for _, followID := range g.follows[id] {
				if !visited[followID] {
					visited[followID] = true
					next = append(next, followID)
				}
			}
		}
		frontier = next
	}

	sort.Ints(frontier)
	return frontier
}

// Levels runs a full breadth-first search from findID and returns the hop
// distance of every reached ID, including findID itself at level 0. IDs
// that appear only as follows targets are included when reached.
func (g *Graph) Levels(findID int) map[int]int {
	levels := map[int]int{findID: 0}
	queue := []int{findID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, followID := range g.follows[id] {
			if _, seen := levels[followID]; !seen {
				levels[followID] = levels[id] + 1
				queue = append(queue, followID)
			}
		}
	}

	return levels
}

// LevelOf returns the level of id in a level map, or Unreached.
func LevelOf(levels map[int]int, id int) int {
	if l, ok := levels[id]; ok {
		return l
	}
	return Unreached
}
