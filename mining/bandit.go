// Package mining - the MiningBandit environment.
//
// This file holds the Bandit type: staged construction-time validation,
// the one-time exhaustive optimum search that fixes the normalization
// constant, and the per-query operations (sampling, regret, accessors).
//
// Design principles:
//   - Deterministic ground truth: the optimum is found by exhaustive
//     enumeration, never by an approximate optimizer, because downstream
//     learners are graded against it.
//   - Strict sentinels: only errors from types.go; invalid input fails fast
//     and is never clamped.
//   - Read-only after construction: a Bandit carries no mutable state, so
//     every method is safe for concurrent use; the caller owns (and must
//     serialize) the *rand.Rand passed to sampling calls.
package mining

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/minebandit/jointact"
)

// Bandit is a factored mining bandit: villages simultaneously send their
// workers to one reachable mine each; mines convert incoming workers into
// deterministic output, which a normalization constant turns into per-mine
// Bernoulli success probabilities.
//
// Construction enumerates the full joint action space once to find the
// optimal joint action and the normalization constant (the maximum
// achievable total output); both are cached for the Bandit's lifetime.
type Bandit struct {
	space        jointact.Space
	workers      []int
	productivity []float64
	top          *Topology

	optimal jointact.Action // first maximizer in enumeration order
	norm    float64         // maximum achievable total raw output
}

// New builds a Bandit from an action space, per-village worker counts and
// per-mine productivities. The return shape of MakeParameters matches, so
// mining.New(mining.MakeParameters(seed)) composes directly.
//
// Validation stages:
//  1. Space shape (jointact sentinels) and len(workers)==len(space).
//  2. Value ranges: no negative workers, no negative productivities.
//  3. Topology derivation: window bounds, 2..4 choices per village, no
//     orphan mine (mine count is len(productivity)).
//  4. Exhaustive optimum search; a zero best total is rejected (ErrZeroNorm)
//     since it would make every success probability undefined.
//
// Complexity: O(Size(space) · (villages + mines)) — exponential in the
// village count by design; the generator bounds villages to 15.
func New(space jointact.Space, workers []int, productivity []float64) (*Bandit, error) {
	// Stage 1: shapes.
	if err := space.Validate(); err != nil {
		return nil, err
	}
	if len(workers) != space.Len() {
		return nil, ErrDimensionMismatch
	}

	// Stage 2: value ranges.
	var (
		w int
		p float64
	)
	for _, w = range workers {
		if w < 0 {
			return nil, ErrNegativeWorkers
		}
	}
	for _, p = range productivity {
		if p < 0 {
			return nil, ErrNegativeProductivity
		}
	}

	// Stage 3: connectivity.
	top, err := newTopology(space, len(productivity))
	if err != nil {
		return nil, err
	}

	b := &Bandit{
		space:        space.Clone(),
		workers:      append([]int(nil), workers...),
		productivity: append([]float64(nil), productivity...),
		top:          top,
	}

	// Stage 4: ground truth.
	if err = b.computeOptimum(); err != nil {
		return nil, err
	}

	return b, nil
}

// checkAction validates a joint action against the Bandit's space.
func (b *Bandit) checkAction(a jointact.Action) error {
	if len(a) != b.space.Len() {
		return ErrActionLength
	}

	var i int
	for i = range a {
		if a[i] < 0 || a[i] >= b.space[i] {
			return ErrActionOutOfRange
		}
	}

	return nil
}

// productionInto fills out with the deterministic per-mine output of a:
// each mine sums the workers of connected villages that selected it and
// yields 0 for an unstaffed mine, productivity * workerGrowth^workers
// otherwise. out must have one entry per mine.
func (b *Bandit) productionInto(a jointact.Action, out []float64) error {
	if err := b.checkAction(a); err != nil {
		return err
	}
	if len(out) != b.top.mines {
		return ErrDimensionMismatch
	}

	var i, m int
	for m = range out {
		out[m] = 0
	}
	// Accumulate staffing; village i's action a[i] selects minesOf[i][a[i]].
	for i = range a {
		out[b.top.minesOf[i][a[i]]] += float64(b.workers[i])
	}
	for m = range out {
		if out[m] == 0 {
			continue
		}
		out[m] = b.productivity[m] * math.Pow(workerGrowth, out[m])
	}

	return nil
}

// Production returns the deterministic, unnormalized per-mine output of a.
// Pure: freshly allocated result, safe for concurrent use.
//
// Complexity: O(villages + mines).
func (b *Bandit) Production(a jointact.Action) ([]float64, error) {
	out := make([]float64, b.top.mines)
	if err := b.productionInto(a, out); err != nil {
		return nil, err
	}

	return out, nil
}

// Probabilities returns the normalized per-mine output of a — the Bernoulli
// success probabilities SampleR draws from. Every entry lies in [0, 1]; the
// optimal action's entries sum to exactly 1.
//
// Complexity: O(villages + mines).
func (b *Bandit) Probabilities(a jointact.Action) ([]float64, error) {
	out, err := b.Production(a)
	if err != nil {
		return nil, err
	}

	var m int
	for m = range out {
		out[m] /= b.norm
	}

	return out, nil
}

// computeOptimum sweeps the full joint action space in canonical odometer
// order, recording the first maximizer of total output and its total.
// A strictly-greater comparison keeps the earliest maximizer on ties.
func (b *Bandit) computeOptimum() error {
	ctr, err := jointact.NewCounter(b.space)
	if err != nil {
		return err
	}

	var (
		out   = make([]float64, b.top.mines)
		best  = math.Inf(-1)
		bestA jointact.Action
		total float64
		m     int
	)
	for ctr.Next() {
		// Counter actions are valid by construction; productionInto cannot fail.
		if err = b.productionInto(ctr.Action(), out); err != nil {
			return err
		}
		total = 0
		for m = range out {
			total += out[m]
		}
		if total > best {
			best = total
			bestA = ctr.Action().Clone()
		}
	}

	if best <= 0 {
		return ErrZeroNorm
	}
	b.optimal = bestA
	b.norm = best

	return nil
}

// SampleR draws one stochastic reward per mine for the joint action a:
// an independent Bernoulli trial with the mine's normalized deterministic
// output as success probability. Rewards are per mine, not per village.
//
// The result is freshly allocated; rng is the caller's and must not be
// shared across goroutines without external synchronization. Summed draws
// of a suboptimal action can occasionally exceed the optimum's — accepted
// stochastic noise; only expectations are ordered.
//
// Complexity: O(villages + mines).
func (b *Bandit) SampleR(rng *rand.Rand, a jointact.Action) (Rewards, error) {
	return b.SampleRInto(rng, a, make(Rewards, b.top.mines))
}

// SampleRInto is SampleR with a caller-owned destination buffer, for
// zero-allocation sampling loops. dst must have one entry per mine; the
// filled dst is returned.
func (b *Bandit) SampleRInto(rng *rand.Rand, a jointact.Action, dst Rewards) (Rewards, error) {
	if rng == nil {
		return nil, ErrNilRNG
	}
	if err := b.productionInto(a, dst); err != nil {
		return nil, err
	}

	var m int
	for m = range dst {
		if rng.Float64() < dst[m]/b.norm {
			dst[m] = 1
		} else {
			dst[m] = 0
		}
	}

	return dst, nil
}

// Regret returns the deterministic gap to optimum: the maximum achievable
// total output minus a's total output, both unnormalized. It bypasses the
// Bernoulli layer entirely, so learners can be graded without sampling
// variance. Always >= 0; exactly 0 at the optimal action and at ties.
//
// Complexity: O(villages + mines).
func (b *Bandit) Regret(a jointact.Action) (float64, error) {
	out := make([]float64, b.top.mines)
	if err := b.productionInto(a, out); err != nil {
		return 0, err
	}

	var total float64
	for _, v := range out {
		total += v
	}

	return b.norm - total, nil
}

// OptimalAction returns a copy of the globally optimal joint action (the
// first maximizer in canonical enumeration order).
func (b *Bandit) OptimalAction() jointact.Action { return b.optimal.Clone() }

// ActionSpace returns a copy of the joint action space.
func (b *Bandit) ActionSpace() jointact.Space { return b.space.Clone() }

// Groups returns, for each mine, the ascending set of villages connected
// to it — the agent groups of the factored reward decomposition.
func (b *Bandit) Groups() [][]int { return b.top.Groups() }

// Topology returns the Bandit's village/mine connectivity.
func (b *Bandit) Topology() *Topology { return b.top }

// Workers returns a copy of the per-village worker counts.
func (b *Bandit) Workers() []int { return append([]int(nil), b.workers...) }

// Productivity returns a copy of the per-mine productivity constants.
func (b *Bandit) Productivity() []float64 {
	return append([]float64(nil), b.productivity...)
}

// Norm returns the normalization constant: the maximum achievable total
// deterministic output, i.e. the optimal action's unnormalized total.
func (b *Bandit) Norm() float64 { return b.norm }

// NumVillages returns the number of villages (agents).
func (b *Bandit) NumVillages() int { return b.top.villages }

// NumMines returns the number of mines (local reward factors).
func (b *Bandit) NumMines() int { return b.top.mines }
