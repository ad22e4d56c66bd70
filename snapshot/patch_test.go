package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsolve/dataflow-engine/snapshot"
)

func TestPatchRoundTrip(t *testing.T) {
	ops := []snapshot.PatchOp{
		snapshot.AddNode{Node: snapshot.Node{ID: "n1", BlockType: "number", Data: map[string]any{"value": 3.0}}},
		snapshot.UpdateNodeData{NodeID: "n1", Data: map[string]any{"value": 4.0}},
		snapshot.AddEdge{Edge: snapshot.Edge{ID: "e1", Source: "n1", SourceHandle: "out", Target: "n3", TargetHandle: "a"}},
		snapshot.RemoveEdge{EdgeID: "e1"},
		snapshot.RemoveNode{NodeID: "n1"},
	}

	b, err := snapshot.MarshalPatch(ops)
	require.NoError(t, err)

	back, err := snapshot.UnmarshalPatch(b)
	require.NoError(t, err)
	require.Equal(t, ops, back)
}

func TestPatchOpDiscriminatorField(t *testing.T) {
	b, err := snapshot.MarshalPatchOp(snapshot.RemoveNode{NodeID: "x"})
	require.NoError(t, err)
	require.JSONEq(t, `{"op":"removeNode","nodeId":"x"}`, string(b))
}

func TestUnmarshalUnknownOpErrors(t *testing.T) {
	_, err := snapshot.UnmarshalPatchOp([]byte(`{"op":"bogus"}`))
	require.Error(t, err)
}

func TestNodeManualValuesAndOverrides(t *testing.T) {
	n := snapshot.Node{
		ID: "n1",
		Data: map[string]any{
			"manualValues":  map[string]any{"a": 3.0},
			"portOverrides": map[string]any{"a": true},
		},
	}
	require.Equal(t, map[string]float64{"a": 3.0}, n.ManualValues())
	require.Equal(t, map[string]bool{"a": true}, n.PortOverrides())
}
