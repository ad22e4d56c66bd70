package graphstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsolve/dataflow-engine/sched"
	"github.com/chainsolve/dataflow-engine/snapshot"
)

func numNode(id string, val float64) snapshot.Node {
	return snapshot.Node{ID: id, BlockType: "number", Data: map[string]any{"value": val}}
}

func opNode(id, blockType string) snapshot.Node {
	return snapshot.Node{ID: id, BlockType: blockType}
}

func mkEdge(id, src, srcHandle, tgt, tgtHandle string) snapshot.Edge {
	return snapshot.Edge{ID: id, Source: src, SourceHandle: srcHandle, Target: tgt, TargetHandle: tgtHandle}
}

func snapshot3Plus4() snapshot.Snapshot {
	return snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{numNode("n1", 3), numNode("n2", 4), opNode("add", "add")},
		Edges: []snapshot.Edge{
			mkEdge("e1", "n1", "out", "add", "a"),
			mkEdge("e2", "n2", "out", "add", "b"),
		},
	}
}

func TestLoadSnapshotEvaluatesAll(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot3Plus4())
	result := g.Evaluate()
	assert.Equal(t, 3, result.EvaluatedCount)
	assert.Equal(t, 3, result.TotalCount)
	s, ok := result.ChangedValues["add"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 7.0, s)
}

func TestSecondEvalNoDirtyEvaluatesNothing(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot3Plus4())
	g.Evaluate()

	result := g.Evaluate()
	assert.Equal(t, 0, result.EvaluatedCount)
	assert.Empty(t, result.ChangedValues)
}

func TestUpdateNodeDataReEvaluatesDownstream(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot3Plus4())
	g.Evaluate()

	g.ApplyPatch([]snapshot.PatchOp{
		snapshot.UpdateNodeData{NodeID: "n1", Data: map[string]any{"value": 10.0}},
	})

	result := g.Evaluate()
	assert.Equal(t, 2, result.EvaluatedCount)
	s1, _ := result.ChangedValues["n1"].AsScalar()
	assert.Equal(t, 10.0, s1)
	sAdd, _ := result.ChangedValues["add"].AsScalar()
	assert.Equal(t, 14.0, sAdd)
	_, hasN2 := result.ChangedValues["n2"]
	assert.False(t, hasN2)
}

func TestAddNodeViaPatch(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot3Plus4())
	g.Evaluate()

	g.ApplyPatch([]snapshot.PatchOp{
		snapshot.AddNode{Node: opNode("disp", "display")},
		snapshot.AddEdge{Edge: mkEdge("e3", "add", "out", "disp", "value")},
	})

	result := g.Evaluate()
	s, ok := result.ChangedValues["disp"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 7.0, s)
}

func TestRemoveNodeViaPatch(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot3Plus4())
	g.Evaluate()

	g.ApplyPatch([]snapshot.PatchOp{snapshot.RemoveNode{NodeID: "add"}})

	_, hasAdd := g.Values()["add"]
	assert.False(t, hasAdd)
	assert.Empty(t, g.edges)
}

func TestDirtyPropagationChain(t *testing.T) {
	snap := snapshot.Snapshot{
		Version: 1,
		Nodes: []snapshot.Node{
			numNode("n1", 1), opNode("neg1", "negate"), opNode("neg2", "negate"),
			opNode("neg3", "negate"), opNode("neg4", "negate"),
		},
		Edges: []snapshot.Edge{
			mkEdge("e1", "n1", "out", "neg1", "a"),
			mkEdge("e2", "neg1", "out", "neg2", "a"),
			mkEdge("e3", "neg2", "out", "neg3", "a"),
			mkEdge("e4", "neg3", "out", "neg4", "a"),
		},
	}

	g := New()
	g.LoadSnapshot(snap)
	g.Evaluate()

	g.ApplyPatch([]snapshot.PatchOp{
		snapshot.UpdateNodeData{NodeID: "n1", Data: map[string]any{"value": 2.0}},
	})

	result := g.Evaluate()
	assert.Equal(t, 5, result.EvaluatedCount)
}

func TestValueUnchangedPrunesDownstream(t *testing.T) {
	snap := snapshot.Snapshot{
		Version: 1,
		Nodes: []snapshot.Node{
			numNode("n1", 3), numNode("n2", 4), opNode("add", "add"), opNode("disp", "display"),
		},
		Edges: []snapshot.Edge{
			mkEdge("e1", "n1", "out", "add", "a"),
			mkEdge("e2", "n2", "out", "add", "b"),
			mkEdge("e3", "add", "out", "disp", "value"),
		},
	}

	g := New()
	g.LoadSnapshot(snap)
	g.Evaluate()

	g.ApplyPatch([]snapshot.PatchOp{
		snapshot.UpdateNodeData{NodeID: "n1", Data: map[string]any{"value": 3.0}},
	})

	result := g.Evaluate()
	_, hasDisp := result.ChangedValues["disp"]
	assert.False(t, hasDisp)
}

func TestCycleDetectionInIncrementalMode(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{opNode("a", "add"), opNode("b", "add")},
		Edges: []snapshot.Edge{
			mkEdge("e1", "a", "out", "b", "a"),
			mkEdge("e2", "b", "out", "a", "a"),
		},
	})

	result := g.Evaluate()
	found := false
	for _, d := range result.Diagnostics {
		if d.Code == snapshot.CodeCycleDetected {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSetInputMarksDirty(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{opNode("add", "add")},
	})
	g.Evaluate()

	g.SetInput("add", "a", 5.0)
	g.SetInput("add", "b", 3.0)
	result := g.Evaluate()
	assert.Equal(t, 1, result.EvaluatedCount)
	s, ok := result.ChangedValues["add"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 8.0, s)
}

func TestRegisterAndReleaseDataset(t *testing.T) {
	g := New()
	g.RegisterDataset("ds1", []float64{1, 2, 3})
	assert.Equal(t, 1, g.DatasetCount())
	g.ReleaseDataset("ds1")
	assert.Equal(t, 0, g.DatasetCount())
}

func TestDatasetRefInVectorInput(t *testing.T) {
	g := New()
	g.RegisterDataset("ds_v1", []float64{10, 20, 30})

	g.LoadSnapshot(snapshot.Snapshot{
		Version: 1,
		Nodes: []snapshot.Node{
			{ID: "vi", BlockType: "vectorInput", Data: map[string]any{"datasetRef": "ds_v1"}},
			opNode("sum", "vectorSum"),
		},
		Edges: []snapshot.Edge{mkEdge("e1", "vi", "out", "sum", "vec")},
	})

	result := g.Evaluate()
	s, ok := result.ChangedValues["sum"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 60.0, s)
}

func TestAddEdgeReEvaluatesTarget(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{numNode("n1", 5), opNode("disp", "display")},
	})
	g.Evaluate()

	g.ApplyPatch([]snapshot.PatchOp{
		snapshot.AddEdge{Edge: mkEdge("e1", "n1", "out", "disp", "value")},
	})

	result := g.Evaluate()
	s, ok := result.ChangedValues["disp"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 5.0, s)
}

func TestRemoveEdgeReEvaluatesTarget(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{numNode("n1", 5), opNode("disp", "display")},
		Edges:   []snapshot.Edge{mkEdge("e1", "n1", "out", "disp", "value")},
	})
	g.Evaluate()
	s, ok := g.Values()["disp"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 5.0, s)

	g.ApplyPatch([]snapshot.PatchOp{snapshot.RemoveEdge{EdgeID: "e1"}})

	result := g.Evaluate()
	_, hasDisp := result.ChangedValues["disp"]
	assert.True(t, hasDisp)
}

func TestTraceModeCollectsEntries(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot3Plus4())
	result := g.EvaluateDirty(sched.EvalOptions{Trace: true, Ctx: nil}, nil)
	assert.Len(t, result.Trace, 3)
}

func TestTraceOffByDefault(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot3Plus4())
	result := g.Evaluate()
	assert.Empty(t, result.Trace)
}

func TestMaxTraceNodesCaps(t *testing.T) {
	g := New()
	g.LoadSnapshot(snapshot3Plus4())
	result := g.EvaluateDirty(sched.EvalOptions{Trace: true, MaxTraceNodes: 2}, nil)
	assert.Len(t, result.Trace, 2)
}

func chainSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Version: 1,
		Nodes: []snapshot.Node{
			numNode("n1", 1), opNode("neg1", "negate"), opNode("neg2", "negate"),
			opNode("neg3", "negate"), opNode("neg4", "negate"),
		},
		Edges: []snapshot.Edge{
			mkEdge("e1", "n1", "out", "neg1", "a"),
			mkEdge("e2", "neg1", "out", "neg2", "a"),
			mkEdge("e3", "neg2", "out", "neg3", "a"),
			mkEdge("e4", "neg3", "out", "neg4", "a"),
		},
	}
}

func TestCallbackAbortProducesPartialResult(t *testing.T) {
	g := New()
	g.LoadSnapshot(chainSnapshot())

	count := 0
	result := g.EvaluateDirty(sched.DefaultOptions(), func(_, _ int) sched.Signal {
		count++
		if count >= 2 {
			return sched.Abort
		}
		return sched.Continue
	})

	assert.True(t, result.Partial)
	assert.Equal(t, 2, result.EvaluatedCount)
}

func TestPartialResumable(t *testing.T) {
	g := New()
	g.LoadSnapshot(chainSnapshot())

	count := 0
	g.EvaluateDirty(sched.DefaultOptions(), func(_, _ int) sched.Signal {
		count++
		if count >= 2 {
			return sched.Abort
		}
		return sched.Continue
	})

	result := g.Evaluate()
	assert.Equal(t, 3, result.EvaluatedCount)
	assert.False(t, result.Partial)
}

func TestDatasetIntrospectionCounts(t *testing.T) {
	g := New()
	assert.Equal(t, 0, g.DatasetCount())
	assert.Equal(t, 0, g.DatasetTotalBytes())

	g.RegisterDataset("a", make([]float64, 1000))
	assert.Equal(t, 1, g.DatasetCount())
	assert.Equal(t, 8000, g.DatasetTotalBytes())

	g.RegisterDataset("b", make([]float64, 500))
	assert.Equal(t, 2, g.DatasetCount())
	assert.Equal(t, 12000, g.DatasetTotalBytes())

	g.ReleaseDataset("a")
	assert.Equal(t, 1, g.DatasetCount())
	assert.Equal(t, 4000, g.DatasetTotalBytes())

	g.ReleaseDataset("b")
	assert.Equal(t, 0, g.DatasetCount())
	assert.Equal(t, 0, g.DatasetTotalBytes())
}

func TestReleaseNonexistentDatasetIsNoop(t *testing.T) {
	g := New()
	g.ReleaseDataset("nope")
	assert.Equal(t, 0, g.DatasetCount())
}
