package eval

import (
	"errors"
	"fmt"

	"github.com/chainsolve/dataflow-engine/ops"
	"github.com/chainsolve/dataflow-engine/snapshot"
	"github.com/chainsolve/dataflow-engine/value"
)

// ErrGraphNil is returned when Evaluate is given a nil snapshot pointer.
var ErrGraphNil = errors.New("eval: snapshot is nil")

// inEdge is one resolved incoming connection: source node, source output
// handle (currently every op has exactly one output, so this is carried
// but unused past bookkeeping), and the target's input port name.
type inEdge struct {
	sourceID     string
	sourceHandle string
	targetHandle string
}

// Evaluate runs a full, one-shot pass over snap using Kahn's algorithm to
// determine evaluation order. Nodes inside a cycle are skipped and
// reported via a CYCLE_DETECTED diagnostic instead of receiving a value.
//
// datasets resolves a dataset id to its backing slice for vectorInput
// nodes; it may be nil if the snapshot has none.
func Evaluate(snap *snapshot.Snapshot, datasets ops.DatasetLookup) snapshot.EvalResult {
	if snap == nil {
		return snapshot.EvalResult{Diagnostics: []snapshot.Diagnostic{{
			Level:   snapshot.DiagError,
			Code:    snapshot.CodeInvalidSnapshot,
			Message: ErrGraphNil.Error(),
		}}}
	}

	// 1. Build in_edges, in_degree, out_adj over the snapshot.
	inEdges := make(map[string][]inEdge, len(snap.Nodes))
	inDegree := make(map[string]int, len(snap.Nodes))
	outAdj := make(map[string][]string, len(snap.Nodes))

	for _, n := range snap.Nodes {
		if _, ok := inDegree[n.ID]; !ok {
			inDegree[n.ID] = 0
		}
	}
	for _, e := range snap.Edges {
		inEdges[e.Target] = append(inEdges[e.Target], inEdge{
			sourceID:     e.Source,
			sourceHandle: e.SourceHandle,
			targetHandle: e.TargetHandle,
		})
		inDegree[e.Target]++
		outAdj[e.Source] = append(outAdj[e.Source], e.Target)
	}

	// 2. Kahn's algorithm: seed the queue with in-degree-0 nodes in
	// snapshot order, so the emitted order (and its trace) is deterministic
	// rather than a function of Go's map iteration.
	queue := make([]string, 0, len(snap.Nodes))
	remaining := make(map[string]int, len(inDegree))
	for id, d := range inDegree {
		remaining[id] = d
	}
	for _, n := range snap.Nodes {
		if remaining[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	topoOrder := make([]string, 0, len(snap.Nodes))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		topoOrder = append(topoOrder, id)
		for _, next := range outAdj[id] {
			remaining[next]--
			if remaining[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	var diagnostics []snapshot.Diagnostic

	// 3. Any node not emitted is part of a cycle.
	if len(topoOrder) < len(snap.Nodes) {
		inTopo := make(map[string]bool, len(topoOrder))
		for _, id := range topoOrder {
			inTopo[id] = true
		}
		for _, n := range snap.Nodes {
			if !inTopo[n.ID] {
				diagnostics = append(diagnostics, snapshot.Diagnostic{
					NodeID:  n.ID,
					Level:   snapshot.DiagError,
					Code:    snapshot.CodeCycleDetected,
					Message: fmt.Sprintf("Node '%s' is part of a cycle", n.ID),
				})
			}
		}
	}

	nodeByID := make(map[string]snapshot.Node, len(snap.Nodes))
	for _, n := range snap.Nodes {
		nodeByID[n.ID] = n
	}

	// 4. Walk the emitted order, resolving inputs, applying manual/override
	// rules, calling evaluate_op, canonicalizing, and storing the result.
	values := make(map[string]value.Value, len(topoOrder))
	for _, id := range topoOrder {
		node, ok := nodeByID[id]
		if !ok {
			continue
		}

		edgeValues := make(map[string]value.Value, len(inEdges[id]))
		for _, e := range inEdges[id] {
			if v, ok := values[e.sourceID]; ok {
				edgeValues[e.targetHandle] = v
			}
		}
		inputs := ResolveInputs(edgeValues, node.ManualValues(), node.PortOverrides())

		result := value.Canonicalize(ops.Evaluate(node.BlockType, inputs, node.Data, datasets))

		// 5. Emit UNKNOWN_BLOCK whenever the op reports an unrecognized
		// block type.
		if result.IsError() && ops.IsUnknownBlock(result.Message) {
			diagnostics = append(diagnostics, snapshot.Diagnostic{
				NodeID:  id,
				Level:   snapshot.DiagWarning,
				Code:    snapshot.CodeUnknownBlock,
				Message: result.Message,
			})
		}

		values[id] = result
	}

	return snapshot.EvalResult{
		Values:      values,
		Diagnostics: diagnostics,
		Partial:     false,
	}
}

// ResolveInputs applies the engine's manual-value/port-override rule to a
// node's edge-resolved inputs (spec §4.2):
//   - a port with no edge value falls back to its manual value, if any;
//   - a port with an edge value is replaced by its manual value only when
//     portOverrides[port] == true;
//   - otherwise the edge value wins.
//
// Shared between eval and graphstate so both evaluation strategies apply
// the rule identically.
func ResolveInputs(edgeValues map[string]value.Value, manual map[string]float64, overrides map[string]bool) map[string]value.Value {
	if len(manual) == 0 {
		return edgeValues
	}
	out := make(map[string]value.Value, len(edgeValues)+len(manual))
	for port, v := range edgeValues {
		out[port] = v
	}
	for port, m := range manual {
		_, hasEdge := out[port]
		if !hasEdge || overrides[port] {
			out[port] = value.NewScalar(m)
		}
	}
	return out
}
