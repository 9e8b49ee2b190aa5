// Package jointact provides the joint-action vocabulary shared by the
// factored-bandit environments in github.com/katalvlaran/minebandit.
//
// What:
//
//   - Space — an ordered list of per-agent action cardinalities; agent i
//     picks an action in 0..Space[i]-1.
//   - Action — one concrete choice per agent.
//   - Counter — a mixed-radix odometer enumerating every joint action of a
//     Space exactly once, in a canonical ascending order.
//
// Why:
//
//   - Exhaustive ground-truth search: exact optimizers need a well-defined
//     enumeration order so that tie-breaks are reproducible.
//   - Factored rule export: local sub-spaces over agent subsets reuse the
//     same counter.
//
// Enumeration order:
//
//	Digit 0 is the fastest-moving digit. For Space{2, 2} the counter yields
//	[0 0], [1 0], [0 1], [1 1]. "First maximizer found" under this order is
//	the canonical tie-break policy of the mining package.
//
// Complexity:
//
//   - Counter.Next: amortized O(1) per joint action, O(Size) total.
//   - Space.Size:   O(len(Space)).
//
// Errors:
//
//   - ErrEmptySpace:  the space has no agents.
//   - ErrCardinality: some agent has a non-positive action count.
package jointact
