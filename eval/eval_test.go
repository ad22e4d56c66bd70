package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsolve/dataflow-engine/snapshot"
)

func numNode(id string, val float64) snapshot.Node {
	return snapshot.Node{ID: id, BlockType: "number", Data: map[string]any{"value": val}}
}

func opNode(id, blockType string) snapshot.Node {
	return snapshot.Node{ID: id, BlockType: blockType}
}

func edge(id, src, srcHandle, tgt, tgtHandle string) snapshot.Edge {
	return snapshot.Edge{ID: id, Source: src, SourceHandle: srcHandle, Target: tgt, TargetHandle: tgtHandle}
}

func TestHelloEvaluation3Plus4(t *testing.T) {
	snap := &snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{numNode("n1", 3), numNode("n2", 4), opNode("n3", "add")},
		Edges: []snapshot.Edge{
			edge("e1", "n1", "out", "n3", "a"),
			edge("e2", "n2", "out", "n3", "b"),
		},
	}

	result := Evaluate(snap, nil)
	assert.Empty(t, result.Diagnostics)

	s1, _ := result.Values["n1"].AsScalar()
	s2, _ := result.Values["n2"].AsScalar()
	s3, _ := result.Values["n3"].AsScalar()
	assert.Equal(t, 3.0, s1)
	assert.Equal(t, 4.0, s2)
	assert.Equal(t, 7.0, s3)
}

func TestChainEvaluation(t *testing.T) {
	// (3 + 4) * 2 = 14
	snap := &snapshot.Snapshot{
		Version: 1,
		Nodes: []snapshot.Node{
			numNode("n1", 3), numNode("n2", 4), opNode("n3", "add"),
			numNode("n4", 2), opNode("n5", "multiply"),
		},
		Edges: []snapshot.Edge{
			edge("e1", "n1", "out", "n3", "a"),
			edge("e2", "n2", "out", "n3", "b"),
			edge("e3", "n3", "out", "n5", "a"),
			edge("e4", "n4", "out", "n5", "b"),
		},
	}

	result := Evaluate(snap, nil)
	assert.Empty(t, result.Diagnostics)
	s5, _ := result.Values["n5"].AsScalar()
	assert.Equal(t, 14.0, s5)
}

func TestCycleDetected(t *testing.T) {
	snap := &snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{opNode("a", "add"), opNode("b", "add")},
		Edges: []snapshot.Edge{
			edge("e1", "a", "out", "b", "a"),
			edge("e2", "b", "out", "a", "a"),
		},
	}

	result := Evaluate(snap, nil)
	found := false
	for _, d := range result.Diagnostics {
		if d.Code == snapshot.CodeCycleDetected {
			found = true
		}
	}
	assert.True(t, found)
	assert.Empty(t, result.Values)
}

func TestUnknownBlockProducesWarning(t *testing.T) {
	snap := &snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{{ID: "x", BlockType: "bogus"}},
	}

	result := Evaluate(snap, nil)
	found := false
	for _, d := range result.Diagnostics {
		if d.Code == snapshot.CodeUnknownBlock {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDisplayPassthrough(t *testing.T) {
	snap := &snapshot.Snapshot{
		Version: 1,
		Nodes:   []snapshot.Node{numNode("n1", 42), opNode("d", "display")},
		Edges:   []snapshot.Edge{edge("e1", "n1", "out", "d", "value")},
	}

	result := Evaluate(snap, nil)
	s, ok := result.Values["d"].AsScalar()
	require.True(t, ok)
	assert.Equal(t, 42.0, s)
}

func TestManualValueFillsMissingPort(t *testing.T) {
	snap := &snapshot.Snapshot{
		Version: 1,
		Nodes: []snapshot.Node{
			numNode("n1", 3),
			{ID: "n2", BlockType: "add", Data: map[string]any{"manualValues": map[string]any{"b": 10.0}}},
		},
		Edges: []snapshot.Edge{edge("e1", "n1", "out", "n2", "a")},
	}

	result := Evaluate(snap, nil)
	s, _ := result.Values["n2"].AsScalar()
	assert.Equal(t, 13.0, s)
}

func TestPortOverrideReplacesEdgeValue(t *testing.T) {
	snap := &snapshot.Snapshot{
		Version: 1,
		Nodes: []snapshot.Node{
			numNode("n1", 3), numNode("n2", 4),
			{
				ID:        "n3",
				BlockType: "add",
				Data: map[string]any{
					"manualValues":  map[string]any{"b": 99.0},
					"portOverrides": map[string]any{"b": true},
				},
			},
		},
		Edges: []snapshot.Edge{
			edge("e1", "n1", "out", "n3", "a"),
			edge("e2", "n2", "out", "n3", "b"),
		},
	}

	result := Evaluate(snap, nil)
	s, _ := result.Values["n3"].AsScalar()
	assert.Equal(t, 102.0, s)
}
