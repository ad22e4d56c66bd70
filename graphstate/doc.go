// Package graphstate implements the engine's persistent graph: the
// long-lived state a host holds across many small edits (a slider drag,
// a node move, a wire reconnect) rather than re-submitting a whole
// snapshot each time.
//
// A Graph tracks a dirty set — the nodes whose output may have changed
// since the last EvaluateDirty call — and a cached topological order,
// rebuilt only when the structure (not just node data) changes. Marking
// a node dirty propagates to every downstream descendant; if a
// re-evaluated node's output turns out bit-identical to its previous
// value, EvaluateDirty prunes that propagation so an unrelated change
// doesn't cascade through the whole graph.
//
// Graph is not safe for concurrent use and holds no locks: the engine's
// single-writer contract (spec §5) leaves locking to the caller
// (engine.Engine guards its Graph with a mutex).
package graphstate
