// Package mining implements the factored mining-bandit benchmark
// environment: villages simultaneously send their workers to one reachable
// mine each, mines convert incoming workers into deterministic output, and
// a normalization layer turns that output into a proper [0,1]-bounded
// stochastic bandit with known ground truth.
//
// What:
//
//   - Topology — which mines each village can reach (window rule: village i
//     targets mines i..i+k-1 with k between 2 and 4) and which villages
//     staff each mine.
//   - Bandit — the environment: exhaustive optimum search at construction,
//     Bernoulli reward sampling (SampleR), deterministic regret (Regret),
//     and ground-truth factored rule export (DeterministicRules).
//   - MakeParameters — seeded random instance generation for batches.
//
// Why:
//
//   - Benchmarking coordination-graph maximization and multi-agent bandit
//     learners against instances whose optimum is known exactly.
//   - The reward of each mine depends only on its connected villages, so the
//     global reward factors into independent local functions — the structure
//     those algorithms exploit.
//
// Model:
//
//	A mine staffed with w > 0 workers yields productivity · 1.03^w, and 0
//	otherwise. Outputs are normalized by the maximum achievable total, found
//	by exhaustively enumerating the joint action space (ascending mixed-radix
//	order, first maximizer kept on ties). SampleR draws one independent
//	Bernoulli per mine with the normalized output as success probability, so
//	the optimal action's expected total reward is exactly 1.
//
// Concurrency:
//
//	A Bandit is read-only after construction; all methods are safe for
//	concurrent use. Sampling consumes a caller-supplied *rand.Rand, which is
//	the caller's to serialize (see NewRNG / DeriveRNG).
//
// Complexity:
//
//   - New: O(Size(space) · (villages + mines)) — exponential in villages by
//     design (exhaustiveness is the ground-truth guarantee); the generator
//     bounds villages to 15, i.e. at most 4^15 joint actions.
//   - SampleR / Regret / Production: O(villages + mines).
//   - DeterministicRules: ≤ 256 rules per mine.
//
// Errors: sentinels in types.go; invalid input fails fast, never clamps.
package mining
