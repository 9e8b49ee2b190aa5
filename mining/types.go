// Package mining - core types and sentinel errors.
package mining

import (
	"errors"

	"github.com/katalvlaran/minebandit/jointact"
)

// workerGrowth is the per-worker output growth base: a mine staffed with w
// workers yields productivity * workerGrowth^w minerals.
const workerGrowth = 1.03

// Connectivity window: every village must be able to reach between
// minChoices and maxChoices mines, and village i's reachable mines are the
// contiguous window i .. i+k-1.
const (
	minChoices = 2
	maxChoices = 4
)

// Sentinel errors for construction and call-time validation. Invalid input
// fails fast with one of these; values are never silently clamped.
var (
	// ErrCounts indicates a non-positive village or mine count.
	ErrCounts = errors.New("mining: village and mine counts must be positive")
	// ErrDimensionMismatch indicates slice lengths inconsistent with the action space.
	ErrDimensionMismatch = errors.New("mining: slice length must match the action space")
	// ErrVillageChoices indicates a village reaching fewer than 2 or more than 4 mines.
	ErrVillageChoices = errors.New("mining: every village must reach between 2 and 4 mines")
	// ErrMineRange indicates a village whose mine window exceeds the mine count.
	ErrMineRange = errors.New("mining: village mine window exceeds the mine count")
	// ErrOrphanMine indicates a mine no village can route workers to.
	ErrOrphanMine = errors.New("mining: every mine must be reachable by at least one village")
	// ErrNegativeWorkers indicates a negative per-village worker count.
	ErrNegativeWorkers = errors.New("mining: worker counts must be non-negative")
	// ErrNegativeProductivity indicates a negative per-mine productivity.
	ErrNegativeProductivity = errors.New("mining: productivities must be non-negative")
	// ErrZeroNorm indicates a degenerate instance whose best total output is zero.
	ErrZeroNorm = errors.New("mining: maximum achievable output must be positive")
	// ErrActionLength indicates a joint action of the wrong length.
	ErrActionLength = errors.New("mining: joint action length must match the number of villages")
	// ErrActionOutOfRange indicates a joint-action component outside its cardinality.
	ErrActionOutOfRange = errors.New("mining: joint action component out of range")
	// ErrNilRNG indicates a sampling call without a random source.
	ErrNilRNG = errors.New("mining: sampling requires a non-nil random source")
)

// Rewards holds one sampled reward per mine (each entry 0 or 1).
type Rewards []float64

// Rule is one local reward factor of the true deterministic reward
// decomposition: the villages connected to a mine, one full assignment of
// their local actions, and the mine's unnormalized output under it.
// A joint action "matches" the rule when it agrees with Local on every
// village in Villages; each joint action matches exactly one rule per mine.
type Rule struct {
	// Villages lists the participating village indices, ascending.
	Villages []int
	// Local is the assignment Local[j] for village Villages[j].
	Local jointact.Action
	// Value is the mine's deterministic output under the assignment.
	Value float64
}
