// Package ops implements the engine's op catalog: a pure function from
// (op-id, resolved port inputs, node data, dataset registry) to a Value.
// Evaluate never fails — an unrecognized op-id or a guard-clause violation
// both produce a Value::Error, never a Go error.
package ops

import (
	"strings"

	"github.com/chainsolve/dataflow-engine/value"
)

// Evaluate dispatches opID to its implementation. Any input appearing as
// Error propagates immediately without invoking the op's numeric body,
// for the op families that go through binaryBroadcast/unaryBroadcast or
// requireVector/requireTable; domain formulas guard division and other
// preconditions explicitly and return Error{"<OpName>: <constraint>"}.
//
// Unknown op-ids produce Error{"Unknown block type: <op-id>"} — callers
// (eval, graphstate) recognize that prefix to raise an UNKNOWN_BLOCK
// diagnostic without Evaluate itself needing to know about diagnostics.
func Evaluate(opID string, inputs map[string]value.Value, data map[string]any, datasets DatasetLookup) value.Value {
	if v, ok := evaluateBase(opID, inputs, data, datasets); ok {
		return v
	}
	if v, ok := evaluateDomain(opID, inputs); ok {
		return v
	}
	return value.NewError("Unknown block type: %s", opID)
}

// IsUnknownBlock reports whether msg is the sentinel "Unknown block type"
// error text the orchestrator watches for to raise UNKNOWN_BLOCK.
func IsUnknownBlock(msg string) bool {
	return strings.HasPrefix(msg, "Unknown block type")
}
