package graph

import (
	"sort"

	"github.com/jacksmith/followgraph/internal/model"
)

// Pair is an unordered pair of user IDs stored with the smaller ID first.
// It encodes to JSON as [low, high].
type Pair [2]int

// NewPair returns the canonical pair for a and b.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

// Low returns the smaller ID.
func (p Pair) Low() int { return p[0] }

// High returns the larger ID.
func (p Pair) High() int { return p[1] }

// MutualPairs returns every pair of users that follow each other.
// Each pair appears once, sorted by its lower then higher ID.
// Self-follows and follows of unknown users never produce a pair.
func MutualPairs(users []model.User) []Pair {
	return Build(users).MutualPairs()
}

// MutualPairs returns every mutual follow pair in the graph.
func (g *Graph) MutualPairs() []Pair {
	seen := make(map[Pair]bool)
	result := []Pair{}

	for _, id := range g.order {
		for _, followID := range g.follows[id] {
			if !g.IsMutual(id, followID) {
				continue
			}
			p := NewPair(id, followID)
			if seen[p] {
				continue
			}
			seen[p] = true
			result = append(result, p)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i][0] != result[j][0] {
			return result[i][0] < result[j][0]
		}
		return result[i][1] < result[j][1]
	})
	return result
}

// PairSet indexes pairs for membership tests.
type PairSet map[Pair]bool

// NewPairSet builds a set from pairs, canonicalising each one.
func NewPairSet(pairs []Pair) PairSet {
	s := make(PairSet, len(pairs))
	for _, p := range pairs {
		s[NewPair(p[0], p[1])] = true
	}
	return s
}

// Has returns true if the canonical pair for a and b is in the set.
func (s PairSet) Has(a, b int) bool {
	return s[NewPair(a, b)]
}
