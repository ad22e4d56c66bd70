package graphstate

import (
	"github.com/chainsolve/dataflow-engine/eval"
	"github.com/chainsolve/dataflow-engine/ops"
	"github.com/chainsolve/dataflow-engine/sched"
	"github.com/chainsolve/dataflow-engine/snapshot"
	"github.com/chainsolve/dataflow-engine/value"
)

// outEdge is one outgoing connection from a node: the edge id (so it can
// be found again on removal), the downstream node, and the port it feeds.
type outEdge struct {
	edgeID       string
	targetID     string
	targetHandle string
}

// inEdgeRef is one incoming connection into a node.
type inEdgeRef struct {
	edgeID       string
	sourceID     string
	sourceHandle string
	targetHandle string
}

// Graph is the engine's persistent, dirty-tracked evaluation state.
//
// Invariants:
//   - dirty is always a superset of the truly stale nodes; pruneDownstream
//     narrows it, never the reverse.
//   - topoOrder is valid iff topoDirty == false. It is rebuilt lazily, on
//     the next EvaluateDirty call, not eagerly on every structural edit.
//   - values holds the last-known output of every evaluated node. A dirty
//     node's entry may be stale — callers should not read Values()
//     expecting freshness without having called EvaluateDirty first.
type Graph struct {
	nodes map[string]snapshot.Node
	edges map[string]snapshot.Edge

	outAdj map[string][]outEdge
	inAdj  map[string][]inEdgeRef

	topoOrder []string
	topoDirty bool

	values map[string]value.Value
	dirty  map[string]bool

	datasets map[string][]float64
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]snapshot.Node),
		edges:     make(map[string]snapshot.Edge),
		outAdj:    make(map[string][]outEdge),
		inAdj:     make(map[string][]inEdgeRef),
		values:    make(map[string]value.Value),
		dirty:     make(map[string]bool),
		topoDirty: true,
		datasets:  make(map[string][]float64),
	}
}

// LoadSnapshot replaces the entire graph from snap and marks every node
// dirty — a full reload always re-evaluates everything, since there is
// no prior state to diff against.
func (g *Graph) LoadSnapshot(snap snapshot.Snapshot) {
	g.nodes = make(map[string]snapshot.Node, len(snap.Nodes))
	g.edges = make(map[string]snapshot.Edge, len(snap.Edges))
	g.outAdj = make(map[string][]outEdge, len(snap.Nodes))
	g.inAdj = make(map[string][]inEdgeRef, len(snap.Nodes))
	g.values = make(map[string]value.Value, len(snap.Nodes))
	g.dirty = make(map[string]bool, len(snap.Nodes))

	for _, n := range snap.Nodes {
		g.dirty[n.ID] = true
		g.nodes[n.ID] = n
	}
	for _, e := range snap.Edges {
		g.addEdgeInternal(e)
		g.edges[e.ID] = e
	}

	g.topoDirty = true
}

// ApplyPatch applies an ordered batch of patch operations, marking
// affected nodes (and their downstream descendants) dirty per op.
//
// Several edges into the same (target, targetHandle) pair are all kept;
// at evaluation the last of them in the target's incoming list whose
// source has a value supplies the port (last writer wins).
func (g *Graph) ApplyPatch(patchOps []snapshot.PatchOp) {
	for _, op := range patchOps {
		switch o := op.(type) {
		case snapshot.AddNode:
			id := o.Node.ID
			if _, ok := g.outAdj[id]; !ok {
				g.outAdj[id] = nil
			}
			if _, ok := g.inAdj[id]; !ok {
				g.inAdj[id] = nil
			}
			g.nodes[id] = o.Node
			g.markDirty(id)
			g.topoDirty = true

		case snapshot.RemoveNode:
			var toRemove []string
			for eid, e := range g.edges {
				if e.Source == o.NodeID || e.Target == o.NodeID {
					toRemove = append(toRemove, eid)
				}
			}
			var targets []string
			for _, eid := range toRemove {
				if t := g.edges[eid].Target; t != o.NodeID {
					targets = append(targets, t)
				}
				g.removeEdgeInternal(eid)
				delete(g.edges, eid)
			}
			delete(g.nodes, o.NodeID)
			delete(g.outAdj, o.NodeID)
			delete(g.inAdj, o.NodeID)
			delete(g.values, o.NodeID)
			delete(g.dirty, o.NodeID)
			for _, t := range targets {
				g.markDirty(t)
			}
			g.topoDirty = true

		case snapshot.UpdateNodeData:
			if n, ok := g.nodes[o.NodeID]; ok {
				n.Data = o.Data
				g.nodes[o.NodeID] = n
				g.markDirty(o.NodeID)
			}

		case snapshot.AddEdge:
			g.addEdgeInternal(o.Edge)
			g.edges[o.Edge.ID] = o.Edge
			g.markDirty(o.Edge.Target)
			g.topoDirty = true

		case snapshot.RemoveEdge:
			if e, ok := g.edges[o.EdgeID]; ok {
				g.removeEdgeInternal(o.EdgeID)
				delete(g.edges, o.EdgeID)
				g.markDirty(e.Target)
				g.topoDirty = true
			}
		}
	}
}

// SetInput merges {portID: val} into nodeID's manualValues and marks it
// (and its downstream descendants) dirty.
func (g *Graph) SetInput(nodeID, portID string, val float64) {
	n, ok := g.nodes[nodeID]
	if !ok {
		return
	}
	if n.Data == nil {
		n.Data = make(map[string]any)
	}
	manuals, ok := n.Data["manualValues"].(map[string]any)
	if !ok {
		manuals = make(map[string]any)
	}
	manuals[portID] = val
	n.Data["manualValues"] = manuals
	g.nodes[nodeID] = n
	g.markDirty(nodeID)
}

// RegisterDataset stores data under id for vectorInput nodes to reference
// via data.datasetRef.
func (g *Graph) RegisterDataset(id string, data []float64) {
	g.datasets[id] = data
}

// ReleaseDataset removes a previously registered dataset. A miss is a
// no-op.
func (g *Graph) ReleaseDataset(id string) {
	delete(g.datasets, id)
}

// DatasetCount reports how many datasets are currently registered.
func (g *Graph) DatasetCount() int { return len(g.datasets) }

// DatasetTotalBytes reports the combined size of every registered
// dataset, 8 bytes per float64.
func (g *Graph) DatasetTotalBytes() int {
	total := 0
	for _, d := range g.datasets {
		total += len(d) * 8
	}
	return total
}

// Values returns the last-known output of every evaluated node. Dirty
// nodes may carry a stale entry; call EvaluateDirty first for freshness.
func (g *Graph) Values() map[string]value.Value { return g.values }

// Evaluate runs EvaluateDirty with default options and no progress
// callback — the common case for a host that doesn't need tracing or
// cancellation.
func (g *Graph) Evaluate() snapshot.IncrementalEvalResult {
	return g.EvaluateDirty(sched.DefaultOptions(), nil)
}

// EvaluateDirty re-evaluates only the dirty set, in topological order,
// and returns the value of every node it evaluated, including nodes whose
// output is bit-identical to the previous one. progress, if non-nil, is
// consulted after each node; an Abort (from progress, a time budget, or
// context cancellation) leaves the remaining dirty nodes dirty for the
// next call to resume from.
func (g *Graph) EvaluateDirty(opts sched.EvalOptions, progress sched.ProgressFunc) snapshot.IncrementalEvalResult {
	var diagnostics []snapshot.Diagnostic

	if g.topoDirty {
		diagnostics = append(diagnostics, g.rebuildTopo()...)
		g.topoDirty = false
	}

	totalCount := len(g.nodes)
	dirtyCount := len(g.dirty)
	changedValues := make(map[string]value.Value, dirtyCount)
	var trace []snapshot.TraceEntry
	evaluatedCount := 0
	partial := false
	traceTruncated := false

	deadline := sched.NewDeadliner(opts, progress)

	order := append([]string(nil), g.topoOrder...)
	for _, id := range order {
		if !g.dirty[id] {
			continue
		}
		delete(g.dirty, id)

		node, ok := g.nodes[id]
		if !ok {
			continue
		}

		edgeValues := make(map[string]value.Value, len(g.inAdj[id]))
		for _, e := range g.inAdj[id] {
			if v, ok := g.values[e.sourceID]; ok {
				edgeValues[e.targetHandle] = v
			}
		}
		inputs := eval.ResolveInputs(edgeValues, node.ManualValues(), node.PortOverrides())

		result := value.Canonicalize(ops.Evaluate(node.BlockType, inputs, node.Data, g.lookupDataset))
		evaluatedCount++

		if opts.Trace {
			withinLimit := opts.MaxTraceNodes <= 0 || len(trace) < opts.MaxTraceNodes
			if withinLimit {
				inputSummaries := make(map[string]snapshot.ValueSummary, len(inputs))
				for port, v := range inputs {
					inputSummaries[port] = snapshot.Summarize(v)
				}
				trace = append(trace, snapshot.TraceEntry{
					NodeID: id,
					OpID:   node.BlockType,
					Inputs: inputSummaries,
					Output: snapshot.Summarize(result),
				})
			} else if !traceTruncated {
				traceTruncated = true
				diagnostics = append(diagnostics, snapshot.Diagnostic{
					Level:   snapshot.DiagInfo,
					Code:    snapshot.CodeTraceTruncated,
					Message: "trace truncated at MaxTraceNodes",
				})
			}
		}

		if result.IsError() && ops.IsUnknownBlock(result.Message) {
			diagnostics = append(diagnostics, snapshot.Diagnostic{
				NodeID:  id,
				Level:   snapshot.DiagWarning,
				Code:    snapshot.CodeUnknownBlock,
				Message: result.Message,
			})
		}

		old, hadOld := g.values[id]
		valueChanged := !hadOld || !value.Equal(old, result)

		g.values[id] = result
		changedValues[id] = result

		if !valueChanged {
			g.pruneDownstream(id)
		}

		if deadline.Check(evaluatedCount, dirtyCount) == sched.Abort {
			partial = true
			break
		}
	}

	return snapshot.IncrementalEvalResult{
		ChangedValues:  changedValues,
		Diagnostics:    diagnostics,
		EvaluatedCount: evaluatedCount,
		TotalCount:     totalCount,
		Trace:          trace,
		Partial:        partial,
	}
}

func (g *Graph) lookupDataset(id string) ([]float64, bool) {
	d, ok := g.datasets[id]
	return d, ok
}

// markDirty inserts nodeID and every downstream descendant into the
// dirty set, stopping recursion as soon as a node is already dirty (it
// and everything past it were already queued by an earlier call).
func (g *Graph) markDirty(nodeID string) {
	queue := []string{nodeID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if g.dirty[id] {
			continue
		}
		g.dirty[id] = true
		for _, e := range g.outAdj[id] {
			queue = append(queue, e.targetID)
		}
	}
}

// pruneDownstream removes a node from the dirty set once it's established
// that none of its remaining parents are dirty — i.e. nothing upstream
// can still change its inputs this round — and recurses into its own
// descendants on the same basis.
func (g *Graph) pruneDownstream(nodeID string) {
	for _, e := range g.outAdj[nodeID] {
		allParentsClean := true
		for _, in := range g.inAdj[e.targetID] {
			if g.dirty[in.sourceID] {
				allParentsClean = false
				break
			}
		}
		if allParentsClean {
			delete(g.dirty, e.targetID)
			g.pruneDownstream(e.targetID)
		}
	}
}

func (g *Graph) addEdgeInternal(e snapshot.Edge) {
	g.outAdj[e.Source] = append(g.outAdj[e.Source], outEdge{
		edgeID: e.ID, targetID: e.Target, targetHandle: e.TargetHandle,
	})
	g.inAdj[e.Target] = append(g.inAdj[e.Target], inEdgeRef{
		edgeID: e.ID, sourceID: e.Source, sourceHandle: e.SourceHandle, targetHandle: e.TargetHandle,
	})
}

func (g *Graph) removeEdgeInternal(edgeID string) {
	e, ok := g.edges[edgeID]
	if !ok {
		return
	}
	out := g.outAdj[e.Source]
	for i, o := range out {
		if o.edgeID == edgeID {
			g.outAdj[e.Source] = append(out[:i], out[i+1:]...)
			break
		}
	}
	in := g.inAdj[e.Target]
	for i, ref := range in {
		if ref.edgeID == edgeID {
			g.inAdj[e.Target] = append(in[:i], in[i+1:]...)
			break
		}
	}
}

// rebuildTopo recomputes the cached topological order with Kahn's
// algorithm and returns a CYCLE_DETECTED diagnostic for every node the
// algorithm could not place.
func (g *Graph) rebuildTopo() []snapshot.Diagnostic {
	inDegree := make(map[string]int, len(g.nodes))
	for id := range g.nodes {
		inDegree[id] = 0
	}
	for _, e := range g.edges {
		inDegree[e.Target]++
	}

	queue := make([]string, 0, len(g.nodes))
	for id, d := range inDegree {
		if d == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]string, 0, len(g.nodes))
	remaining := make(map[string]int, len(inDegree))
	for id, d := range inDegree {
		remaining[id] = d
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, e := range g.outAdj[id] {
			remaining[e.targetID]--
			if remaining[e.targetID] == 0 {
				queue = append(queue, e.targetID)
			}
		}
	}

	var diagnostics []snapshot.Diagnostic
	if len(order) < len(g.nodes) {
		inTopo := make(map[string]bool, len(order))
		for _, id := range order {
			inTopo[id] = true
		}
		for id := range g.nodes {
			if !inTopo[id] {
				diagnostics = append(diagnostics, snapshot.Diagnostic{
					NodeID:  id,
					Level:   snapshot.DiagError,
					Code:    snapshot.CodeCycleDetected,
					Message: "Node '" + id + "' is part of a cycle",
				})
			}
		}
	}

	g.topoOrder = order
	return diagnostics
}
