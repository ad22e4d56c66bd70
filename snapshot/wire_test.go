package snapshot_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsolve/dataflow-engine/snapshot"
	"github.com/chainsolve/dataflow-engine/value"
)

func TestWireValueScalarRoundTrip(t *testing.T) {
	w := snapshot.ToWireValue(value.NewScalar(7))
	b, err := json.Marshal(w)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"scalar","value":7}`, string(b))

	var back snapshot.WireValue
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, value.Equal(w.Value(), back.Value()))
}

func TestWireValueVectorRoundTrip(t *testing.T) {
	w := snapshot.ToWireValue(value.NewVector([]float64{1, 2, 3}))
	b, err := json.Marshal(w)
	require.NoError(t, err)

	var back snapshot.WireValue
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, value.Equal(w.Value(), back.Value()))
}

func TestWireValueTableRoundTrip(t *testing.T) {
	w := snapshot.ToWireValue(value.NewTable([]string{"a", "b"}, [][]float64{{1, 2}}))
	b, err := json.Marshal(w)
	require.NoError(t, err)

	var back snapshot.WireValue
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, value.Equal(w.Value(), back.Value()))
}

func TestWireValueErrorRoundTrip(t *testing.T) {
	w := snapshot.ToWireValue(value.NewError("Power: t = 0"))
	b, err := json.Marshal(w)
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"error","message":"Power: t = 0"}`, string(b))

	var back snapshot.WireValue
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, value.Equal(w.Value(), back.Value()))
}

func TestDiagnosticOmitsEmptyNodeID(t *testing.T) {
	d := snapshot.Diagnostic{Level: snapshot.DiagError, Code: snapshot.CodeUnsupportedVersion, Message: "bad"}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"level":"error","code":"UNSUPPORTED_VERSION","message":"bad"}`, string(b))
}

func TestDiagLevelLowercase(t *testing.T) {
	for _, lvl := range []snapshot.DiagLevel{snapshot.DiagInfo, snapshot.DiagWarning, snapshot.DiagError} {
		b, err := json.Marshal(lvl)
		require.NoError(t, err)
		require.Contains(t, []string{`"info"`, `"warning"`, `"error"`}, string(b))
	}
}
