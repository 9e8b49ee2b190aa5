// Package mining - ground-truth factored rule export.
package mining

import (
	"math"

	"github.com/katalvlaran/minebandit/jointact"
)

// DeterministicRules exports the true reward structure as independent local
// factors, ignoring sampling stochasticity: for each mine, one Rule per
// full assignment of its connected villages' local actions, valued at the
// mine's unnormalized deterministic output under that assignment.
//
// The rule set is sound and complete: every joint action matches exactly
// one rule per mine, the matched values sum to the action's total raw
// output, and maximizing that sum over the joint action space reproduces
// the exhaustive optimum. Intended for grading factored-maximization
// (coordination-graph) algorithms against a known-correct decomposition.
//
// Pure and safe for concurrent use.
//
// Complexity: O(Σ_m Π_{i∈group(m)} |A_i|) — at most 4 villages of at most
// 4 actions per mine, so ≤ 256 rules per mine.
func (b *Bandit) DeterministicRules() []Rule {
	var rules []Rule

	var (
		m, j, v, sent int
		group         []int
		sub           jointact.Space
		local         jointact.Action
		value         float64
	)
	for m = 0; m < b.top.mines; m++ {
		group = b.top.groups[m]

		// Local sub-space: the connected villages' own cardinalities.
		sub = make(jointact.Space, len(group))
		for j, v = range group {
			sub[j] = b.space[v]
		}

		ctr, err := jointact.NewCounter(sub)
		if err != nil {
			// Groups are non-empty and cardinalities positive by construction.
			continue
		}
		for ctr.Next() {
			local = ctr.Action()

			// Workers this assignment routes to mine m.
			sent = 0
			for j, v = range group {
				if b.top.minesOf[v][local[j]] == m {
					sent += b.workers[v]
				}
			}
			value = 0
			if sent > 0 {
				value = b.productivity[m] * math.Pow(workerGrowth, float64(sent))
			}

			rules = append(rules, Rule{
				Villages: append([]int(nil), group...),
				Local:    local.Clone(),
				Value:    value,
			})
		}
	}

	return rules
}
