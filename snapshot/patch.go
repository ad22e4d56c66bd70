package snapshot

import (
	"encoding/json"
	"fmt"
)

// PatchOp is one incremental mutation in an ordered patch. The closed
// variant set mirrors PatchOp's wire discriminator field "op":
// addNode, removeNode, updateNodeData, addEdge, removeEdge.
type PatchOp interface {
	patchOp()
}

// AddNode inserts a new node into the graph.
type AddNode struct {
	Node Node `json:"node"`
}

// RemoveNode deletes a node and cascades removal of every edge touching it.
type RemoveNode struct {
	NodeID string `json:"nodeId"`
}

// UpdateNodeData replaces a node's data map wholesale.
type UpdateNodeData struct {
	NodeID string         `json:"nodeId"`
	Data   map[string]any `json:"data"`
}

// AddEdge inserts a new edge into the graph.
type AddEdge struct {
	Edge Edge `json:"edge"`
}

// RemoveEdge deletes an edge by id.
type RemoveEdge struct {
	EdgeID string `json:"edgeId"`
}

func (AddNode) patchOp()        {}
func (RemoveNode) patchOp()     {}
func (UpdateNodeData) patchOp() {}
func (AddEdge) patchOp()        {}
func (RemoveEdge) patchOp()     {}

// MarshalPatchOp projects a PatchOp to its tagged wire object.
func MarshalPatchOp(op PatchOp) ([]byte, error) {
	switch o := op.(type) {
	case AddNode:
		return json.Marshal(struct {
			Op   string `json:"op"`
			Node Node   `json:"node"`
		}{"addNode", o.Node})
	case RemoveNode:
		return json.Marshal(struct {
			Op     string `json:"op"`
			NodeID string `json:"nodeId"`
		}{"removeNode", o.NodeID})
	case UpdateNodeData:
		return json.Marshal(struct {
			Op     string         `json:"op"`
			NodeID string         `json:"nodeId"`
			Data   map[string]any `json:"data"`
		}{"updateNodeData", o.NodeID, o.Data})
	case AddEdge:
		return json.Marshal(struct {
			Op   string `json:"op"`
			Edge Edge   `json:"edge"`
		}{"addEdge", o.Edge})
	case RemoveEdge:
		return json.Marshal(struct {
			Op     string `json:"op"`
			EdgeID string `json:"edgeId"`
		}{"removeEdge", o.EdgeID})
	default:
		return nil, fmt.Errorf("snapshot: unknown patch op %T", op)
	}
}

// MarshalPatch projects an ordered list of PatchOps to a JSON array.
func MarshalPatch(ops []PatchOp) ([]byte, error) {
	raw := make([]json.RawMessage, len(ops))
	for i, op := range ops {
		b, err := MarshalPatchOp(op)
		if err != nil {
			return nil, err
		}
		raw[i] = b
	}
	return json.Marshal(raw)
}

// UnmarshalPatch parses an ordered patch array, dispatching on the "op"
// discriminator field.
func UnmarshalPatch(data []byte) ([]PatchOp, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	ops := make([]PatchOp, len(raw))
	for i, r := range raw {
		op, err := UnmarshalPatchOp(r)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return ops, nil
}

// UnmarshalPatchOp parses a single tagged patch-op object.
func UnmarshalPatchOp(data []byte) (PatchOp, error) {
	var tag struct {
		Op string `json:"op"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}
	switch tag.Op {
	case "addNode":
		var v struct {
			Node Node `json:"node"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return AddNode{Node: v.Node}, nil
	case "removeNode":
		var v struct {
			NodeID string `json:"nodeId"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return RemoveNode{NodeID: v.NodeID}, nil
	case "updateNodeData":
		var v struct {
			NodeID string         `json:"nodeId"`
			Data   map[string]any `json:"data"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return UpdateNodeData{NodeID: v.NodeID, Data: v.Data}, nil
	case "addEdge":
		var v struct {
			Edge Edge `json:"edge"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return AddEdge{Edge: v.Edge}, nil
	case "removeEdge":
		var v struct {
			EdgeID string `json:"edgeId"`
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return RemoveEdge{EdgeID: v.EdgeID}, nil
	default:
		return nil, fmt.Errorf("snapshot: unknown patch op %q", tag.Op)
	}
}
