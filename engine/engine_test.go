package engine

import (
	"encoding/json"
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

func addSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{numNode("a", 3), numNode("b", 4), opNode("op", "add")},
		Edges: []snapshot.Edge{
			mkEdge("e1", "a", "out", "op", "a"),
			mkEdge("e2", "b", "out", "op", "b"),
		},
	}
}

func TestRunStatelessEvaluation(t *testing.T) {
	e := New()
	body, err := json.Marshal(addSnapshot())
	require.NoError(t, err)

	result, engErr := e.Run(body)
	require.Nil(t, engErr)
	s, ok := result.Values["op"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 7.0, s)
}

func TestRunRejectsBadJSON(t *testing.T) {
	e := New()
	_, engErr := e.Run([]byte("not json"))
	require.NotNil(t, engErr)
	assert.Equal(t, ErrInvalidSnapshot, engErr.Code)
}

func TestRunRejectsUnsupportedVersion(t *testing.T) {
	e := New()
	snap := addSnapshot()
	snap.Version = 99
	body, err := json.Marshal(snap)
	require.NoError(t, err)

	_, engErr := e.Run(body)
	require.NotNil(t, engErr)
	assert.Equal(t, ErrUnsupportedVersion, engErr.Code)
}

func TestLoadAndEvaluate(t *testing.T) {
	e := New()
	diags, engErr := e.Load(addSnapshot())
	require.Nil(t, engErr)
	assert.Empty(t, diags)

	result := e.Evaluate(sched.DefaultOptions(), nil)
	assert.Equal(t, 3, result.EvaluatedCount)
	s, ok := result.ChangedValues["op"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 7.0, s)
}

func TestPatchReEvaluatesDownstream(t *testing.T) {
	e := New()
	_, engErr := e.Load(addSnapshot())
	require.Nil(t, engErr)
	e.Evaluate(sched.DefaultOptions(), nil)

	e.Patch([]snapshot.PatchOp{
		snapshot.UpdateNodeData{NodeID: "a", Data: map[string]any{"value": 10.0}},
	})

	result := e.Evaluate(sched.DefaultOptions(), nil)
	s, ok := result.ChangedValues["op"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 14.0, s)
}

func TestSetInputMarksDirty(t *testing.T) {
	e := New()
	_, engErr := e.Load(snapshot.Snapshot{Version: 1, Nodes: []snapshot.Node{opNode("op", "add")}})
	require.Nil(t, engErr)
	e.Evaluate(sched.DefaultOptions(), nil)

	e.SetInput("op", "a", 5.0)
	e.SetInput("op", "b", 3.0)
	result := e.Evaluate(sched.DefaultOptions(), nil)
	s, ok := result.ChangedValues["op"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 8.0, s)
}

func TestDatasetLifecycle(t *testing.T) {
	e := New()
	id := e.RegisterDatasetAuto([]float64{1, 2, 3, 4})
	assert.Equal(t, 1, e.DatasetCount())
	assert.Equal(t, 32, e.DatasetTotalBytes())

	e.ReleaseDataset(id)
	assert.Equal(t, 0, e.DatasetCount())
}

func TestGetCatalogNonEmpty(t *testing.T) {
	assert.NotEmpty(t, GetCatalog())
}

func TestEngineErrorString(t *testing.T) {
	engErr := newEngineError(ErrMissingInput, "port %q missing", "a")
	assert.Contains(t, engErr.Error(), "MISSING_INPUT")
	assert.Contains(t, engErr.Error(), "port \"a\" missing")

	env := engErr.Envelope()
	assert.Equal(t, "MISSING_INPUT", env.Code)
}
