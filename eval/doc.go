// Package eval implements the engine's stateless evaluator: one pass over
// a whole Snapshot, no persisted state across calls.
//
// It is the simple half of the engine's two evaluation strategies — the
// other, incremental half lives in graphstate, which keeps a persistent
// topological order and dirty set across repeated calls. Evaluate here
// recomputes the topological order from scratch every time, which is the
// right tradeoff for a one-shot "load and run" call and the wrong one for
// a UI re-evaluating after every keystroke.
package eval
