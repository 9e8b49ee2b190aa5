// Package minebandit is an in-memory benchmark generator for factored
// multi-agent bandit problems — synthetic "mining" instances with exactly
// known ground truth for coordination and maximization algorithms.
//
// 🚀 What is minebandit?
//
//	A small, deterministic-by-construction library that brings together:
//		• Joint-action vocabulary: spaces, actions, mixed-radix enumeration
//		• Topology: factored village→mine connectivity (window rule)
//		• The mining bandit: deterministic production, exhaustive optimum
//		  search, Bernoulli reward sampling, true regret
//		• Ground-truth export: the reward structure as independent local
//		  factors for coordination-graph maximizers
//		• Instance generation: seeded, reproducible experiment batches
//
// ✨ Why choose minebandit?
//
//   - Exact ground truth – the optimum comes from exhaustive search, never
//     from an approximation, so learners are graded against the real answer
//   - Reproducible – every random draw flows from an explicit seed
//   - Pure Go – no cgo, no network, no files; a programmatic API only
//   - Concurrency-friendly – environments are read-only after construction
//
// Everything is organized under two packages:
//
//	jointact/ — Space, Action and Counter: the shared joint-action containers
//	mining/   — Topology, Bandit, rule export and the parameter generator
//
// Quick example:
//
//	b, err := mining.New(mining.MakeParameters(42))
//	if err != nil { ... }
//	rng := mining.NewRNG(7)
//	r, _ := b.SampleR(rng, b.OptimalAction()) // E[sum(r)] == 1
//	g, _ := b.Regret(b.OptimalAction())       // exactly 0
//
// See examples/ for runnable scenarios and cmd/miningbench for a batch
// experiment runner.
package minebandit
