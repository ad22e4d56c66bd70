// Package dataflow is an embeddable, deterministic compute engine for
// node-and-wire dataflow graphs authored in a visual editor.
//
// 🚀 What is dataflow-engine?
//
//	A host (a browser UI, typically) builds a directed acyclic graph of
//	typed operation nodes and hands it to the engine. The engine validates
//	the graph, evaluates every node in dependency order, and returns the
//	value produced at each node alongside structured diagnostics. The
//	engine is long-lived: it holds a persistent graph, accepts small
//	structural patches, and re-evaluates only the affected region.
//
// ✨ Design highlights
//
//   - Deterministic    — canonical NaN and +0.0, bit-identical results
//     across repeated evaluation of the same graph.
//   - Incremental      — a dirty-set walk re-evaluates only nodes whose
//     inputs actually changed, pruning downstream work whose output did
//     not change.
//   - Cooperative      — evaluation never blocks on I/O or locks; the only
//     suspension point is a per-node progress callback that a host may use
//     to cancel a long-running evaluation.
//
// Under the hood, everything is organized into focused subpackages:
//
//	value/      — the Value algebra: scalar/vector/table/error, canonicalization, broadcasting
//	ops/        — the pure per-node operation catalog and its dispatcher
//	snapshot/   — the versioned wire format: Snapshot, Node, Edge, PatchOp
//	validate/   — structural validation and diagnostics
//	eval/       — the stateless, one-shot evaluator (Kahn topological order)
//	graphstate/ — the persistent graph: dirty tracking, lazy topology, dataset registry
//	sched/      — evaluation options, progress/cancellation, trace capture
//	engine/     — the public entry facade a host actually talks to
//
// Quick ASCII example, three nodes and two edges:
//
//	n1(3.0) ──┐
//	          ├─► add(n3) = 7.0
//	n2(4.0) ──┘
//
// See engine.Engine for the entry points (Run, Load, Patch, SetInput).
package dataflow
