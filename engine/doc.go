// Package engine is the public facade a host embeds: validate, load,
// patch, and evaluate a graph without reaching into eval/graphstate/ops
// directly.
//
// Engine wraps a graphstate.Graph behind a mutex — unlike Graph itself,
// Engine is safe for concurrent use, because a host's dataset registry
// may legitimately be read (DatasetCount, DatasetTotalBytes) from one
// goroutine while a UI-driven edit is being patched in from another.
//
// Two entry points exist at different granularities:
//   - Run is the stateless, one-shot path: validate + evaluate a whole
//     snapshot with no persistent state, mirroring the engine's original
//     contract (validate-then-evaluate, §6/§7 envelope errors).
//   - Load/Patch/SetInput/Evaluate are the persistent, incremental path:
//     load once, then feed small edits and re-evaluate only what's dirty.
package engine
