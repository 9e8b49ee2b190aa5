package mining_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/minebandit/jointact"
	"github.com/katalvlaran/minebandit/mining"
	"github.com/stretchr/testify/require"
)

// handBandit is the reference scenario: 2 villages, 5 mines
// (village 0 → mines 0..3, village 1 → mines 1..4), workers [2,3],
// every productivity 0.1.
func handBandit(t *testing.T) *mining.Bandit {
	t.Helper()
	b, err := mining.New(
		jointact.Space{4, 4},
		[]int{2, 3},
		[]float64{0.1, 0.1, 0.1, 0.1, 0.1},
	)
	require.NoError(t, err)
	return b
}

// handOutput is the hand-derived raw output table for handBandit: village 0
// staffs mine a0 with 2 workers, village 1 staffs mine 1+a1 with 3 workers;
// a shared mine gets all 5.
func handOutput(a0, a1 int) []float64 {
	out := make([]float64, 5)
	m0, m1 := a0, 1+a1
	if m0 == m1 {
		out[m0] = 0.1 * math.Pow(1.03, 5)
	} else {
		out[m0] = 0.1 * math.Pow(1.03, 2)
		out[m1] = 0.1 * math.Pow(1.03, 3)
	}
	return out
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func TestBandit_ProductionMatchesHandTable(t *testing.T) {
	b := handBandit(t)

	for a0 := 0; a0 < 4; a0++ {
		for a1 := 0; a1 < 4; a1++ {
			got, err := b.Production(jointact.Action{a0, a1})
			require.NoError(t, err)
			require.Equal(t, handOutput(a0, a1), got, "action [%d %d]", a0, a1)
		}
	}
}

func TestBandit_OptimumAndNorm(t *testing.T) {
	b := handBandit(t)

	// Splitting the villages beats sharing a mine:
	// 0.1·1.03² + 0.1·1.03³ > 0.1·1.03⁵.
	wantNorm := 0.1*math.Pow(1.03, 2) + 0.1*math.Pow(1.03, 3)
	require.InDelta(t, wantNorm, b.Norm(), 1e-12)

	// Every non-colliding action ties; the first one in odometer order wins.
	require.Equal(t, jointact.Action{0, 0}, b.OptimalAction())
}

func TestBandit_RegretProperties(t *testing.T) {
	b := handBandit(t)

	// Regret is 0 exactly at the optimum.
	r, err := b.Regret(b.OptimalAction())
	require.NoError(t, err)
	require.Zero(t, r)

	// Regret is non-negative everywhere and matches the hand table.
	for a0 := 0; a0 < 4; a0++ {
		for a1 := 0; a1 < 4; a1++ {
			r, err = b.Regret(jointact.Action{a0, a1})
			require.NoError(t, err)
			require.GreaterOrEqual(t, r, 0.0)
			require.InDelta(t, b.Norm()-sum(handOutput(a0, a1)), r, 1e-12)
		}
	}

	// The worst actions share a single mine (all 5 workers together).
	worst, err := b.Regret(jointact.Action{1, 0}) // both to mine 1
	require.NoError(t, err)
	require.InDelta(t, b.Norm()-0.1*math.Pow(1.03, 5), worst, 1e-12)
}

func TestBandit_NormalizedOptimumSumsToOne(t *testing.T) {
	b := handBandit(t)

	probs, err := b.Probabilities(b.OptimalAction())
	require.NoError(t, err)
	require.InDelta(t, 1.0, sum(probs), 1e-12)
	for m, p := range probs {
		require.GreaterOrEqual(t, p, 0.0, "mine %d", m)
		require.LessOrEqual(t, p, 1.0, "mine %d", m)
	}
}

func TestBandit_SampleRMonteCarloExpectation(t *testing.T) {
	b := handBandit(t)
	rng := mining.NewRNG(1234)

	a := jointact.Action{2, 0} // village 0 → mine 2, village 1 → mine 1
	probs, err := b.Probabilities(a)
	require.NoError(t, err)

	const n = 200000
	sums := make([]float64, b.NumMines())
	buf := make(mining.Rewards, b.NumMines())
	for i := 0; i < n; i++ {
		r, sampleErr := b.SampleRInto(rng, a, buf)
		require.NoError(t, sampleErr)
		for m, v := range r {
			require.True(t, v == 0 || v == 1)
			sums[m] += v
		}
	}
	for m := range sums {
		require.InDelta(t, probs[m], sums[m]/n, 0.01, "mine %d", m)
	}
}

func TestBandit_SampleRAllocatesFreshVectors(t *testing.T) {
	b := handBandit(t)
	rng := mining.NewRNG(7)

	a := jointact.Action{0, 0}
	r1, err := b.SampleR(rng, a)
	require.NoError(t, err)
	r2, err := b.SampleR(rng, a)
	require.NoError(t, err)

	r1[0] = 42 // must not alias r2 or any internal state
	require.NotEqual(t, 42.0, r2[0])
	require.Len(t, r2, b.NumMines())
}

func TestBandit_SampleRDeterministicPerSeed(t *testing.T) {
	b := handBandit(t)
	a := jointact.Action{1, 2}

	draw := func() []float64 {
		rng := mining.NewRNG(99)
		var all []float64
		for i := 0; i < 50; i++ {
			r, err := b.SampleR(rng, a)
			require.NoError(t, err)
			all = append(all, r...)
		}
		return all
	}
	require.Equal(t, draw(), draw())
}

func TestNew_Rejections(t *testing.T) {
	space := jointact.Space{4, 4}
	workers := []int{2, 3}
	prods := []float64{0.1, 0.1, 0.1, 0.1, 0.1}

	_, err := mining.New(jointact.Space{}, nil, prods)
	require.ErrorIs(t, err, jointact.ErrEmptySpace)

	_, err = mining.New(space, []int{2}, prods)
	require.ErrorIs(t, err, mining.ErrDimensionMismatch)

	_, err = mining.New(space, []int{2, -3}, prods)
	require.ErrorIs(t, err, mining.ErrNegativeWorkers)

	_, err = mining.New(space, workers, []float64{0.1, -0.1, 0.1, 0.1, 0.1})
	require.ErrorIs(t, err, mining.ErrNegativeProductivity)

	// A village reaching a single mine is rejected.
	_, err = mining.New(jointact.Space{1, 4}, workers, prods)
	require.ErrorIs(t, err, mining.ErrVillageChoices)

	// So is one reaching more than four.
	_, err = mining.New(jointact.Space{5, 4}, workers, prods)
	require.ErrorIs(t, err, mining.ErrVillageChoices)

	// Village 1's window 1..4 needs 5 mines.
	_, err = mining.New(space, workers, []float64{0.1, 0.1, 0.1, 0.1})
	require.ErrorIs(t, err, mining.ErrMineRange)

	// Mines beyond every window are unreachable.
	_, err = mining.New(jointact.Space{2, 2}, workers, prods)
	require.ErrorIs(t, err, mining.ErrOrphanMine)

	// All-zero productivity makes the best total 0.
	_, err = mining.New(space, workers, make([]float64, 5))
	require.ErrorIs(t, err, mining.ErrZeroNorm)

	// As does an instance without any workers.
	_, err = mining.New(space, []int{0, 0}, prods)
	require.ErrorIs(t, err, mining.ErrZeroNorm)
}

func TestBandit_CallTimeValidation(t *testing.T) {
	b := handBandit(t)
	rng := mining.NewRNG(1)

	_, err := b.Regret(jointact.Action{0})
	require.ErrorIs(t, err, mining.ErrActionLength)

	_, err = b.Regret(jointact.Action{0, 4})
	require.ErrorIs(t, err, mining.ErrActionOutOfRange)

	_, err = b.SampleR(rng, jointact.Action{-1, 0})
	require.ErrorIs(t, err, mining.ErrActionOutOfRange)

	_, err = b.SampleR(nil, jointact.Action{0, 0})
	require.ErrorIs(t, err, mining.ErrNilRNG)

	_, err = b.SampleRInto(rng, jointact.Action{0, 0}, make(mining.Rewards, 3))
	require.ErrorIs(t, err, mining.ErrDimensionMismatch)
}

func TestBandit_AccessorsReturnCopies(t *testing.T) {
	b := handBandit(t)

	opt := b.OptimalAction()
	opt[0] = 3
	require.Equal(t, jointact.Action{0, 0}, b.OptimalAction())

	space := b.ActionSpace()
	space[0] = 1
	require.Equal(t, jointact.Space{4, 4}, b.ActionSpace())

	w := b.Workers()
	w[0] = 100
	require.Equal(t, []int{2, 3}, b.Workers())

	p := b.Productivity()
	p[0] = 100
	require.InDelta(t, 0.1, b.Productivity()[0], 0)

	require.Equal(t, 2, b.NumVillages())
	require.Equal(t, 5, b.NumMines())
	require.True(t, b.ActionSpace().Contains(b.OptimalAction()))
}
