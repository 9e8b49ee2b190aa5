// Command miningbench runs a batch regret experiment over generated
// mining-bandit instances: for each seed it builds the instance, plays
// uniformly random joint actions against it, and reports the average
// sampled reward and average true regret of random play next to the
// instance's ground truth.
//
// The dominant cost is the exhaustive optimum search at construction
// (exponential in the village count); -cpuprofile wraps the run in a CPU
// profile for inspecting it.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/pkg/profile"

	"github.com/katalvlaran/minebandit/jointact"
	"github.com/katalvlaran/minebandit/mining"
)

func main() {
	var (
		seed       = flag.Int64("seed", 1, "base seed for the experiment batch")
		instances  = flag.Int("instances", 5, "number of generated instances")
		samples    = flag.Int("samples", 10000, "random joint actions played per instance")
		maxVill    = flag.Int("max-villages", 10, "skip generated instances with more villages (construction is exponential)")
		cpuprofile = flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	)
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	base := mining.NewRNG(*seed)

	built := 0
	for instSeed := int64(1); built < *instances; instSeed++ {
		if instSeed > 1_000_000 {
			log.Fatalf("no %d instances with at most %d villages found", *instances, *maxVill)
		}

		space, workers, prods := mining.MakeParameters(*seed + instSeed)
		if space.Len() > *maxVill {
			continue
		}

		b, err := mining.New(space, workers, prods)
		if err != nil {
			log.Fatalf("instance seed %d: %v", *seed+instSeed, err)
		}
		built++

		rng := mining.DeriveRNG(base, uint64(instSeed))
		avgReward, avgRegret := playRandom(b, rng, *samples)

		fmt.Printf("seed %-6d villages=%-3d mines=%-3d actions=%-8d norm=%.4f\n",
			*seed+instSeed, b.NumVillages(), b.NumMines(), b.ActionSpace().Size(), b.Norm())
		fmt.Printf("            optimal=%v\n", b.OptimalAction())
		fmt.Printf("            random play: avg sampled reward=%.4f avg regret=%.4f\n",
			avgReward, avgRegret)
	}
}

// playRandom plays n uniformly random joint actions and returns the average
// summed sampled reward and the average deterministic regret.
func playRandom(b *mining.Bandit, rng *rand.Rand, n int) (avgReward, avgRegret float64) {
	var (
		space = b.ActionSpace()
		a     = make(jointact.Action, space.Len())
		buf   = make(mining.Rewards, b.NumMines())
	)
	for i := 0; i < n; i++ {
		for v := range a {
			a[v] = rng.Intn(space[v])
		}

		rewards, err := b.SampleRInto(rng, a, buf)
		if err != nil {
			log.Fatalf("sample: %v", err)
		}
		for _, r := range rewards {
			avgReward += r
		}

		regret, err := b.Regret(a)
		if err != nil {
			log.Fatalf("regret: %v", err)
		}
		avgRegret += regret
	}

	return avgReward / float64(n), avgRegret / float64(n)
}
