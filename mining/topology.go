// Package mining - village/mine connectivity.
package mining

import "github.com/katalvlaran/minebandit/jointact"

// Topology is the factored adjacency between villages and mines: for each
// village the ordered list of mines it may target, and for each mine the
// set of villages that may staff it. Immutable once built.
//
// The window rule: village i with cardinality k targets mines i .. i+k-1.
// Under the generator's convention (mines = villages + 3) every village
// has 4 mines available and the last village always reaches exactly 4.
type Topology struct {
	villages int
	mines    int
	minesOf  [][]int // per village, ordered reachable mines
	groups   [][]int // per mine, ascending connected villages
}

// NewTopology builds the full-window topology for the given counts:
// village i reaches min(4, mines-i) mines starting at mine i.
//
// Errors:
//   - ErrCounts when either count is non-positive.
//   - ErrVillageChoices when some village would reach fewer than 2 mines
//     (mines < villages+1).
//   - ErrOrphanMine when some mine is beyond every village's window
//     (mines > villages+3).
//
// Complexity: O(villages + mines).
func NewTopology(villages, mines int) (*Topology, error) {
	if villages <= 0 || mines <= 0 {
		return nil, ErrCounts
	}

	var (
		space = make(jointact.Space, villages)
		i, k  int
	)
	for i = 0; i < villages; i++ {
		k = mines - i
		if k > maxChoices {
			k = maxChoices
		}
		space[i] = k
	}

	return newTopology(space, mines)
}

// newTopology derives the adjacency implied by an action space: village i
// with cardinality space[i] targets mines i .. i+space[i]-1. Used by the
// Bandit constructor, where the generator may have restricted cardinalities
// below the full window.
func newTopology(space jointact.Space, mines int) (*Topology, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	if mines <= 0 {
		return nil, ErrCounts
	}

	var (
		minesOf = make([][]int, len(space))
		groups  = make([][]int, mines)
		i, j, k int
		row     []int
	)
	for i, k = range space {
		if k < minChoices || k > maxChoices {
			return nil, ErrVillageChoices
		}
		if i+k > mines {
			return nil, ErrMineRange
		}
		row = make([]int, k)
		for j = 0; j < k; j++ {
			row[j] = i + j
			groups[i+j] = append(groups[i+j], i)
		}
		minesOf[i] = row
	}

	// Every mine needs at least one possible worker source.
	for i = range groups {
		if len(groups[i]) == 0 {
			return nil, ErrOrphanMine
		}
	}

	return &Topology{
		villages: len(space),
		mines:    mines,
		minesOf:  minesOf,
		groups:   groups,
	}, nil
}

// NumVillages returns the number of villages.
func (t *Topology) NumVillages() int { return t.villages }

// NumMines returns the number of mines.
func (t *Topology) NumMines() int { return t.mines }

// MinesOf returns a copy of the ordered mine list village v may target.
// Panics are avoided: an out-of-range v returns nil.
func (t *Topology) MinesOf(v int) []int {
	if v < 0 || v >= t.villages {
		return nil
	}

	return append([]int(nil), t.minesOf[v]...)
}

// Groups returns a deep copy of the per-mine village sets, one ascending
// slice of village indices per mine.
func (t *Topology) Groups() [][]int {
	var (
		out = make([][]int, t.mines)
		m   int
	)
	for m = range t.groups {
		out[m] = append([]int(nil), t.groups[m]...)
	}

	return out
}

// Space returns the action space implied by the topology: one cardinality
// per village, equal to its reachable-mine count.
func (t *Topology) Space() jointact.Space {
	var (
		space = make(jointact.Space, t.villages)
		i     int
	)
	for i = range t.minesOf {
		space[i] = len(t.minesOf[i])
	}

	return space
}
