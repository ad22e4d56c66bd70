// Package validate checks a snapshot's structural integrity before the
// engine accepts it: version compatibility and dangling edges. Everything
// here is non-fatal diagnostics except the version check, which rejects
// the snapshot outright.
package validate

import (
	"fmt"

	"github.com/chainsolve/dataflow-engine/snapshot"
)

// ErrUnsupportedVersion is returned (wrapped with the offending version
// number) when a snapshot's version is not snapshot.Version.
type ErrUnsupportedVersion struct {
	Got int
}

func (e ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("expected snapshot version %d, got %d", snapshot.Version, e.Got)
}

// Validate checks snap for structural problems. A non-nil error means the
// snapshot was rejected outright (fatal); otherwise the returned
// diagnostics describe non-fatal issues such as dangling edges.
//
// Several edges into the same (target, targetHandle) pair are not
// reported; at evaluation the last of them in snap.Edges whose source has
// a value supplies the port (last writer wins).
func Validate(snap snapshot.Snapshot) ([]snapshot.Diagnostic, error) {
	if snap.Version != snapshot.Version {
		return nil, ErrUnsupportedVersion{Got: snap.Version}
	}

	nodeIDs := make(map[string]struct{}, len(snap.Nodes))
	for _, n := range snap.Nodes {
		nodeIDs[n.ID] = struct{}{}
	}

	var diags []snapshot.Diagnostic
	for _, e := range snap.Edges {
		if _, ok := nodeIDs[e.Source]; !ok {
			diags = append(diags, snapshot.Diagnostic{
				Level:   snapshot.DiagError,
				Code:    snapshot.CodeDanglingEdge,
				Message: fmt.Sprintf("edge %q references missing source node %q", e.ID, e.Source),
			})
		}
		if _, ok := nodeIDs[e.Target]; !ok {
			diags = append(diags, snapshot.Diagnostic{
				Level:   snapshot.DiagError,
				Code:    snapshot.CodeDanglingEdge,
				Message: fmt.Sprintf("edge %q references missing target node %q", e.ID, e.Target),
			})
		}
	}
	return diags, nil
}
