// Package mining - randomized instance generation for experiment batches.
package mining

import "github.com/katalvlaran/minebandit/jointact"

// Generator ranges, matching the published mining-bandit benchmark:
// villages U[5,15], mines = villages+3, workers U[1,5], reachable mines
// per village U[2,4] (capped at availability), productivity U[0, 0.5).
const (
	minVillages = 5
	maxVillages = 15
	mineSurplus = 3

	minWorkers = 1
	maxWorkers = 5

	maxProductivity = 0.5
)

// MakeParameters deterministically generates the parameters of a random
// mining bandit from seed. The return shape matches New, so
//
//	b, err := mining.New(mining.MakeParameters(seed))
//
// builds a full instance in one line.
//
// Reproducibility contract: the same seed always yields the same action
// space, worker counts and productivities (seed 0 follows the NewRNG
// zero-seed policy). Draw order is fixed: village count, then per-village
// workers, then per-village cardinalities, then per-mine productivities.
//
// Complexity: O(villages + mines).
func MakeParameters(seed int64) (jointact.Space, []int, []float64) {
	var (
		rng      = NewRNG(seed)
		villages = minVillages + rng.Intn(maxVillages-minVillages+1)
		mines    = villages + mineSurplus
	)

	var (
		workers = make([]int, villages)
		i       int
	)
	for i = range workers {
		workers[i] = minWorkers + rng.Intn(maxWorkers-minWorkers+1)
	}

	var (
		space = make(jointact.Space, villages)
		k     int
	)
	for i = range space {
		k = minChoices + rng.Intn(maxChoices-minChoices+1)
		// Cap at availability; never triggers under mines = villages+3 but
		// keeps the generator total for smaller surpluses.
		if avail := mines - i; k > avail {
			k = avail
		}
		space[i] = k
	}

	var productivity = make([]float64, mines)
	for i = range productivity {
		productivity[i] = rng.Float64() * maxProductivity
	}

	return space, workers, productivity
}
