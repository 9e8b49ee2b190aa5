// Package jointact - Space and Action containers.
package jointact

import "errors"

// Sentinel errors for joint-action containers.
var (
	// ErrEmptySpace indicates a space with no agents.
	ErrEmptySpace = errors.New("jointact: action space must contain at least one agent")
	// ErrCardinality indicates a non-positive per-agent action count.
	ErrCardinality = errors.New("jointact: every action cardinality must be positive")
)

// Space is an ordered list of per-agent action cardinalities.
// Agent i's action ranges over 0..Space[i]-1. Treat a Space as immutable
// once it has been handed to a consumer; Clone before mutating.
type Space []int

// Action is one concrete choice per agent. Component i must satisfy
// 0 <= Action[i] < Space[i] for the space it belongs to.
type Action []int

// Validate checks the structural contract of the space:
// at least one agent, every cardinality strictly positive.
//
// Complexity: O(n).
func (s Space) Validate() error {
	if len(s) == 0 {
		return ErrEmptySpace
	}

	var k int // cardinality under inspection
	for _, k = range s {
		if k <= 0 {
			return ErrCardinality
		}
	}

	return nil
}

// Len returns the number of agents.
func (s Space) Len() int { return len(s) }

// Size returns the number of distinct joint actions, i.e. the product of
// all cardinalities. An empty space has size 0.
//
// Complexity: O(n).
func (s Space) Size() int {
	if len(s) == 0 {
		return 0
	}

	var (
		size = 1
		k    int
	)
	for _, k = range s {
		size *= k
	}

	return size
}

// Clone returns an independent copy of the space.
func (s Space) Clone() Space {
	return append(Space(nil), s...)
}

// Contains reports whether a is a member of the space: same length and
// every component within its cardinality.
//
// Complexity: O(n).
func (s Space) Contains(a Action) bool {
	if len(a) != len(s) {
		return false
	}

	var i int
	for i = range a {
		if a[i] < 0 || a[i] >= s[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the action.
func (a Action) Clone() Action {
	return append(Action(nil), a...)
}
